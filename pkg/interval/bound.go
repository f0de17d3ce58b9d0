package interval

// Kind discriminates the three forms one endpoint of an interval can take.
type Kind uint8

const (
	// KindExcluded is a bounded endpoint whose value is not part of the
	// interval.
	KindExcluded Kind = iota
	// KindIncluded is a bounded endpoint whose value is part of the
	// interval.
	KindIncluded
	// KindUnbounded is an endpoint that extends to infinity on its side.
	KindUnbounded
)

func (k Kind) String() string {
	switch k {
	case KindExcluded:
		return "excluded"
	case KindIncluded:
		return "included"
	case KindUnbounded:
		return "unbounded"
	}
	return "invalid"
}

// Bound is one endpoint of an interval. It carries a value only when it is
// bounded and is immutable once constructed. Whether it acts as a lower or
// an upper bound is decided by the interval using it.
type Bound[T any] struct {
	kind  Kind
	value T
}

// Included returns a bounded endpoint that admits v.
func Included[T any](v T) Bound[T] { return Bound[T]{kind: KindIncluded, value: v} }

// Excluded returns a bounded endpoint that rejects v.
func Excluded[T any](v T) Bound[T] { return Bound[T]{kind: KindExcluded, value: v} }

// Unbounded returns an endpoint extending to infinity.
func Unbounded[T any]() Bound[T] { return Bound[T]{kind: KindUnbounded} }

func (b Bound[T]) Kind() Kind { return b.kind }

// Value returns the endpoint's value, false for an unbounded endpoint.
func (b Bound[T]) Value() (T, bool) {
	if b.kind == KindUnbounded {
		var zero T
		return zero, false
	}
	return b.value, true
}
