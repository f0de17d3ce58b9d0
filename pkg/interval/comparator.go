package interval

import (
	"github.com/henderiw/interval/pkg/value"
)

// cutKind orders the four cut positions an endpoint can occupy. The zero
// value belowAll makes the zero Interval empty without consulting a domain.
type cutKind uint8

const (
	belowAll cutKind = iota
	beforeValue
	afterValue
	aboveAll
)

// cut is a position between domain values: below everything, just before a
// value, just after a value, or above everything. Both endpoints of an
// interval are cuts, which reduces every algebraic question to a three-way
// cut comparison.
type cut[T any] struct {
	kind  cutKind
	value T
}

// Comparator carries the domain capabilities and implements all bound
// comparison logic. Adjacency decisions live here and nowhere else.
type Comparator[T any] struct {
	dom  value.Comparer[T]
	step value.Stepper[T]
}

// NewComparator builds a comparator for the domain d, discovering the
// optional discreteness capability from the same value.
func NewComparator[T any](d value.Comparer[T]) Comparator[T] {
	c := Comparator[T]{dom: d}
	if s, ok := d.(value.Stepper[T]); ok {
		c.step = s
	}
	return c
}

// Discrete reports whether the domain declared a successor function.
func (c Comparator[T]) Discrete() bool { return c.step != nil }

// nothingBetween reports that no representable value lies strictly between
// lo and hi. Dense domains always report false.
func (c Comparator[T]) nothingBetween(lo, hi T) bool {
	if c.step == nil {
		return false
	}
	next, ok := c.step.Next(lo)
	if !ok {
		return true
	}
	return c.dom.Compare(next, hi) >= 0
}

// leftCut maps a bound used as a lower endpoint to its cut.
func (c Comparator[T]) leftCut(b Bound[T]) cut[T] {
	switch b.kind {
	case KindUnbounded:
		return cut[T]{kind: belowAll}
	case KindIncluded:
		return cut[T]{kind: beforeValue, value: b.value}
	default:
		return cut[T]{kind: afterValue, value: b.value}
	}
}

// rightCut maps a bound used as an upper endpoint to its cut.
func (c Comparator[T]) rightCut(b Bound[T]) cut[T] {
	switch b.kind {
	case KindUnbounded:
		return cut[T]{kind: aboveAll}
	case KindIncluded:
		return cut[T]{kind: afterValue, value: b.value}
	default:
		return cut[T]{kind: beforeValue, value: b.value}
	}
}

// compareCut is the single three-way comparison everything reduces to.
// just-after(v) equals just-before(w) for v < w exactly when the domain has
// no value strictly between v and w.
func (c Comparator[T]) compareCut(a, b cut[T]) int {
	if a.kind == b.kind {
		switch a.kind {
		case belowAll, aboveAll:
			return 0
		}
		return c.dom.Compare(a.value, b.value)
	}
	switch {
	case a.kind == belowAll || b.kind == aboveAll:
		return -1
	case a.kind == aboveAll || b.kind == belowAll:
		return 1
	case a.kind == beforeValue: // b.kind == afterValue
		if c.dom.Compare(a.value, b.value) <= 0 {
			return -1
		}
		if c.nothingBetween(b.value, a.value) {
			return 0
		}
		return 1
	default: // a after, b before
		if c.dom.Compare(a.value, b.value) >= 0 {
			return 1
		}
		if c.nothingBetween(a.value, b.value) {
			return 0
		}
		return -1
	}
}

// CompareLeft orders two bounds both used as lower endpoints.
func (c Comparator[T]) CompareLeft(a, b Bound[T]) int {
	return c.compareCut(c.leftCut(a), c.leftCut(b))
}

// CompareRight orders two bounds both used as upper endpoints.
func (c Comparator[T]) CompareRight(a, b Bound[T]) int {
	return c.compareCut(c.rightCut(a), c.rightCut(b))
}

// LeftPrecedesRight reports whether an interval with lower bound l and upper
// bound r would admit at least one value.
func (c Comparator[T]) LeftPrecedesRight(l, r Bound[T]) bool {
	return c.compareCut(c.leftCut(l), c.rightCut(r)) < 0
}

// Touches reports whether no value exists strictly between the upper bound r
// of one interval and the lower bound l of the next one.
func (c Comparator[T]) Touches(r, l Bound[T]) bool {
	return c.compareCut(c.rightCut(r), c.leftCut(l)) == 0
}
