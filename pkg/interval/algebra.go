package interval

import (
	"errors"
)

// ErrDisjoint is returned by Union when the two operands neither overlap nor
// touch, so no single interval can represent their union.
var ErrDisjoint = errors.New("intervals are disjoint")

func (iv Interval[T]) minCut(a, b cut[T]) cut[T] {
	if iv.cmp.compareCut(a, b) <= 0 {
		return a
	}
	return b
}

func (iv Interval[T]) maxCut(a, b cut[T]) cut[T] {
	if iv.cmp.compareCut(a, b) >= 0 {
		return a
	}
	return b
}

// Contains reports whether v belongs to the interval.
func (iv Interval[T]) Contains(v T) bool {
	if iv.IsEmpty() {
		return false
	}
	return iv.cmp.compareCut(iv.lo, cut[T]{kind: beforeValue, value: v}) <= 0 &&
		iv.cmp.compareCut(cut[T]{kind: afterValue, value: v}, iv.hi) <= 0
}

// ContainsInterval reports whether every value of o belongs to the interval.
// The empty interval is contained in everything.
func (iv Interval[T]) ContainsInterval(o Interval[T]) bool {
	if o.IsEmpty() {
		return true
	}
	if iv.IsEmpty() {
		return false
	}
	return iv.cmp.compareCut(iv.lo, o.lo) <= 0 &&
		iv.cmp.compareCut(o.hi, iv.hi) <= 0
}

// Equivalent reports whether both intervals contain exactly the same values,
// regardless of how their endpoints are written. Over the integers [1,4]
// and [1,5) are equivalent.
func (iv Interval[T]) Equivalent(o Interval[T]) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return iv.IsEmpty() && o.IsEmpty()
	}
	return iv.cmp.compareCut(iv.lo, o.lo) == 0 &&
		iv.cmp.compareCut(iv.hi, o.hi) == 0
}

// Intersects reports whether the two intervals share at least one value.
func (iv Interval[T]) Intersects(o Interval[T]) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return false
	}
	return iv.cmp.compareCut(iv.lo, o.hi) < 0 &&
		iv.cmp.compareCut(o.lo, iv.hi) < 0
}

// Intersection returns the values common to both intervals, possibly empty.
func (iv Interval[T]) Intersection(o Interval[T]) Interval[T] {
	return Interval[T]{
		cmp: iv.cmp,
		lo:  iv.maxCut(iv.lo, o.lo),
		hi:  iv.minCut(iv.hi, o.hi),
	}
}

// ConvexHull returns the smallest interval containing both operands,
// including any gap between them.
func (iv Interval[T]) ConvexHull(o Interval[T]) Interval[T] {
	if iv.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return iv
	}
	return Interval[T]{
		cmp: iv.cmp,
		lo:  iv.minCut(iv.lo, o.lo),
		hi:  iv.maxCut(iv.hi, o.hi),
	}
}

// Connected reports whether the union of the two intervals is itself an
// interval: they overlap or touch with nothing between them. Empty operands
// are connected to everything.
func (iv Interval[T]) Connected(o Interval[T]) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return true
	}
	return iv.cmp.compareCut(iv.lo, o.hi) <= 0 &&
		iv.cmp.compareCut(o.lo, iv.hi) <= 0
}

// Contiguous reports whether the two intervals touch without sharing any
// value, e.g. [1,3) and [3,5].
func (iv Interval[T]) Contiguous(o Interval[T]) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return false
	}
	if iv.Intersects(o) {
		return false
	}
	return iv.cmp.compareCut(iv.hi, o.lo) == 0 ||
		iv.cmp.compareCut(o.hi, iv.lo) == 0
}

// Union returns the single interval holding the values of both operands. It
// fails with ErrDisjoint when the operands are separated by a gap; use an
// IntervalSet to hold disconnected unions.
func (iv Interval[T]) Union(o Interval[T]) (Interval[T], error) {
	if !iv.Connected(o) {
		return Empty[T](iv.cmp.dom), ErrDisjoint
	}
	return iv.ConvexHull(o), nil
}

// Difference returns the values of the interval not in o, as zero, one or
// two disjoint intervals.
func (iv Interval[T]) Difference(o Interval[T]) Pair[T] {
	if iv.IsEmpty() || o.IsEmpty() {
		return makePair(iv, Interval[T]{cmp: iv.cmp, lo: cut[T]{kind: aboveAll}, hi: cut[T]{kind: belowAll}})
	}
	left := Interval[T]{cmp: iv.cmp, lo: iv.lo, hi: iv.minCut(o.lo, iv.hi)}
	right := Interval[T]{cmp: iv.cmp, lo: iv.maxCut(o.hi, iv.lo), hi: iv.hi}
	return makePair(left, right)
}

// SymmetricDifference returns the values in exactly one of the two
// intervals.
func (iv Interval[T]) SymmetricDifference(o Interval[T]) Pair[T] {
	if iv.IsEmpty() || o.IsEmpty() {
		return makePair(iv, o)
	}
	minLo := iv.minCut(iv.lo, o.lo)
	maxLo := iv.maxCut(iv.lo, o.lo)
	minHi := iv.minCut(iv.hi, o.hi)
	maxHi := iv.maxCut(iv.hi, o.hi)
	left := Interval[T]{cmp: iv.cmp, lo: minLo, hi: iv.minCut(maxLo, minHi)}
	right := Interval[T]{cmp: iv.cmp, lo: iv.maxCut(minHi, maxLo), hi: maxHi}
	return makePair(left, right)
}

// Between returns the gap separating the two intervals, empty when they
// overlap or touch.
func (iv Interval[T]) Between(o Interval[T]) Interval[T] {
	if iv.IsEmpty() || o.IsEmpty() {
		return Interval[T]{cmp: iv.cmp, lo: cut[T]{kind: aboveAll}, hi: cut[T]{kind: belowAll}}
	}
	return Interval[T]{
		cmp: iv.cmp,
		lo:  iv.minCut(iv.hi, o.hi),
		hi:  iv.maxCut(iv.lo, o.lo),
	}
}

// StrictlyLeftOf reports whether every value of the interval sorts before v,
// with at least one value between the interval and v. Vacuously true when
// empty.
func (iv Interval[T]) StrictlyLeftOf(v T) bool {
	return iv.IsEmpty() ||
		iv.cmp.compareCut(iv.hi, cut[T]{kind: beforeValue, value: v}) < 0
}

// LeftOf reports whether every value of the interval sorts at or before v.
func (iv Interval[T]) LeftOf(v T) bool {
	return iv.IsEmpty() ||
		iv.cmp.compareCut(iv.hi, cut[T]{kind: afterValue, value: v}) <= 0
}

// RightOf reports whether every value of the interval sorts at or after v.
func (iv Interval[T]) RightOf(v T) bool {
	return iv.IsEmpty() ||
		iv.cmp.compareCut(cut[T]{kind: beforeValue, value: v}, iv.lo) <= 0
}

// StrictlyRightOf reports whether every value of the interval sorts after v,
// with at least one value between v and the interval.
func (iv Interval[T]) StrictlyRightOf(v T) bool {
	return iv.IsEmpty() ||
		iv.cmp.compareCut(cut[T]{kind: afterValue, value: v}, iv.lo) < 0
}

// StrictlyLeftOfInterval reports whether the interval lies entirely before
// o with a gap between them.
func (iv Interval[T]) StrictlyLeftOfInterval(o Interval[T]) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return true
	}
	return iv.cmp.compareCut(iv.hi, o.lo) < 0
}

// LeftOfInterval reports whether no value of the interval sorts after any
// value of o. Touching at a shared boundary value is allowed.
func (iv Interval[T]) LeftOfInterval(o Interval[T]) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return true
	}
	if iv.cmp.compareCut(iv.hi, o.lo) <= 0 {
		return true
	}
	// Overlap limited to a single shared endpoint value still counts.
	uv, uok := iv.Upper()
	lv, lok := o.Lower()
	return uok && lok && iv.cmp.dom.Compare(uv, lv) == 0
}

// RightOfInterval reports whether no value of the interval sorts before any
// value of o.
func (iv Interval[T]) RightOfInterval(o Interval[T]) bool {
	return o.LeftOfInterval(iv)
}

// StrictlyRightOfInterval reports whether the interval lies entirely after
// o with a gap between them.
func (iv Interval[T]) StrictlyRightOfInterval(o Interval[T]) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return true
	}
	return iv.cmp.compareCut(o.hi, iv.lo) < 0
}

// EntirelyBefore reports whether no value of the interval sorts after the
// start of o; overlap-free but touching counts.
func (iv Interval[T]) EntirelyBefore(o Interval[T]) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return true
	}
	return iv.cmp.compareCut(iv.hi, o.lo) <= 0
}

// Compare orders intervals for storage: empty first, then by lower cut,
// then by upper cut.
func (iv Interval[T]) Compare(o Interval[T]) int {
	ie, oe := iv.IsEmpty(), o.IsEmpty()
	if ie || oe {
		switch {
		case ie && oe:
			return 0
		case ie:
			return -1
		default:
			return 1
		}
	}
	if c := iv.cmp.compareCut(iv.lo, o.lo); c != 0 {
		return c
	}
	return iv.cmp.compareCut(iv.hi, o.hi)
}

// CompareUpper orders two intervals by their upper cut only.
func (iv Interval[T]) CompareUpper(o Interval[T]) int {
	return iv.cmp.compareCut(iv.hi, o.hi)
}
