package interval

import (
	"fmt"
	"math"

	"github.com/henderiw/interval/pkg/value"
)

// Iterator walks the values of a discrete interval. Both ends can be popped
// and share the same shrinking remainder, so interleaved Next and NextBack
// calls never revisit a value.
type Iterator[T any] struct {
	rest Interval[T]
	step value.Stepper[T]
	bnd  value.Bounded[T]
	dist value.Distancer[T]
	val  T
}

// Iterate returns a fresh cursor over the interval's values in ascending
// order. It fails for dense domains and for intervals whose unbounded side
// cannot be anchored to a domain extreme.
func (iv Interval[T]) Iterate() (*Iterator[T], error) {
	if iv.cmp.step == nil {
		return nil, fmt.Errorf("domain is not discrete, cannot iterate")
	}
	it := &Iterator[T]{
		rest: iv,
		step: iv.cmp.step,
	}
	if b, ok := iv.cmp.dom.(value.Bounded[T]); ok {
		it.bnd = b
	}
	if d, ok := iv.cmp.dom.(value.Distancer[T]); ok {
		it.dist = d
	}
	if it.bnd == nil && !iv.IsEmpty() &&
		(iv.lo.kind == belowAll || iv.hi.kind == aboveAll) {
		return nil, fmt.Errorf("domain has no extremes, cannot anchor unbounded interval")
	}
	return it, nil
}

// front resolves the smallest remaining value.
func (it *Iterator[T]) front() (T, bool) {
	var zero T
	if it.rest.IsEmpty() {
		return zero, false
	}
	switch it.rest.lo.kind {
	case belowAll:
		return it.bnd.MinValue(), true
	case beforeValue:
		return it.rest.lo.value, true
	default:
		return it.step.Next(it.rest.lo.value)
	}
}

// back resolves the largest remaining value.
func (it *Iterator[T]) back() (T, bool) {
	var zero T
	if it.rest.IsEmpty() {
		return zero, false
	}
	switch it.rest.hi.kind {
	case aboveAll:
		return it.bnd.MaxValue(), true
	case afterValue:
		return it.rest.hi.value, true
	default:
		return it.step.Prev(it.rest.hi.value)
	}
}

// Next advances the front cursor; Value returns the popped value.
func (it *Iterator[T]) Next() bool {
	v, ok := it.front()
	if !ok {
		return false
	}
	it.val = v
	it.rest.lo = cut[T]{kind: afterValue, value: v}
	return true
}

// NextBack advances the back cursor; Value returns the popped value.
func (it *Iterator[T]) NextBack() bool {
	v, ok := it.back()
	if !ok {
		return false
	}
	it.val = v
	it.rest.hi = cut[T]{kind: beforeValue, value: v}
	return true
}

// Value returns the value popped by the last successful Next or NextBack.
func (it *Iterator[T]) Value() T { return it.val }

// Remaining returns the exact number of values left, false when the domain
// cannot count them.
func (it *Iterator[T]) Remaining() (uint64, bool) {
	if it.rest.IsEmpty() {
		return 0, true
	}
	if it.dist == nil {
		return 0, false
	}
	lo, ok := it.front()
	if !ok {
		return 0, true
	}
	hi, ok := it.back()
	if !ok {
		return 0, true
	}
	n, ok := it.dist.Distance(lo, hi)
	if !ok || n == math.MaxUint64 {
		return 0, false
	}
	return n + 1, true
}
