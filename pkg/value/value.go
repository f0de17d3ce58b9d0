package value

// Comparer is the base capability every interval domain must provide: a
// total order over the value type. All other capabilities are optional and
// are discovered from the same domain value.
type Comparer[T any] interface {
	// Compare returns a negative number when a sorts before b, zero when
	// they are equal and a positive number when a sorts after b.
	Compare(a, b T) int
}

// Stepper is the discreteness capability. A domain implementing it declares
// that between a value and its successor no other value exists, which lets
// the comparator treat e.g. an exclusive upper bound at 5 and an inclusive
// upper bound at 4 as the same cut point for integers. Domains without it
// are treated as dense.
type Stepper[T any] interface {
	// Next returns the immediate successor of v, false when v is the
	// largest representable value.
	Next(v T) (T, bool)
	// Prev returns the immediate predecessor of v, false when v is the
	// smallest representable value.
	Prev(v T) (T, bool)
}

// Bounded is implemented by domains whose value type has representable
// extremes. It anchors iteration over intervals that are unbounded on one
// side.
type Bounded[T any] interface {
	MinValue() T
	MaxValue() T
}

// Distancer reports the number of steps from a to b without enumerating
// them, enabling exact iterator size reporting. It returns false when a
// sorts after b or when the distance does not fit in a uint64.
type Distancer[T any] interface {
	Distance(a, b T) (uint64, bool)
}
