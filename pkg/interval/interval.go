package interval

import (
	"fmt"

	"github.com/henderiw/interval/pkg/value"
)

// Interval is an immutable set of consecutive domain values, represented by
// two cuts. The zero Interval is empty and safe to use with any operation.
type Interval[T any] struct {
	cmp Comparator[T]
	lo  cut[T]
	hi  cut[T]
}

// Comparator returns the comparator the interval was built with.
func (iv Interval[T]) Comparator() Comparator[T] { return iv.cmp }

// Empty returns the canonical empty interval over d.
func Empty[T any](d value.Comparer[T]) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: aboveAll},
		hi:  cut[T]{kind: belowAll},
	}
}

// Single returns the interval containing exactly v.
func Single[T any](d value.Comparer[T], v T) Interval[T] {
	return Closed(d, v, v)
}

// Closed returns [lo, hi], empty when hi < lo.
func Closed[T any](d value.Comparer[T], lo, hi T) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: beforeValue, value: lo},
		hi:  cut[T]{kind: afterValue, value: hi},
	}
}

// ClosedOpen returns [lo, hi), empty when hi <= lo.
func ClosedOpen[T any](d value.Comparer[T], lo, hi T) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: beforeValue, value: lo},
		hi:  cut[T]{kind: beforeValue, value: hi},
	}
}

// OpenClosed returns (lo, hi], empty when hi <= lo.
func OpenClosed[T any](d value.Comparer[T], lo, hi T) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: afterValue, value: lo},
		hi:  cut[T]{kind: afterValue, value: hi},
	}
}

// Open returns (lo, hi).
func Open[T any](d value.Comparer[T], lo, hi T) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: afterValue, value: lo},
		hi:  cut[T]{kind: beforeValue, value: hi},
	}
}

// UnboundedClosed returns (-inf, hi].
func UnboundedClosed[T any](d value.Comparer[T], hi T) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: belowAll},
		hi:  cut[T]{kind: afterValue, value: hi},
	}
}

// UnboundedOpen returns (-inf, hi).
func UnboundedOpen[T any](d value.Comparer[T], hi T) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: belowAll},
		hi:  cut[T]{kind: beforeValue, value: hi},
	}
}

// ClosedUnbounded returns [lo, +inf).
func ClosedUnbounded[T any](d value.Comparer[T], lo T) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: beforeValue, value: lo},
		hi:  cut[T]{kind: aboveAll},
	}
}

// OpenUnbounded returns (lo, +inf).
func OpenUnbounded[T any](d value.Comparer[T], lo T) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: afterValue, value: lo},
		hi:  cut[T]{kind: aboveAll},
	}
}

// Full returns the interval covering the whole domain, unbounded on both
// sides.
func Full[T any](d value.Comparer[T]) Interval[T] {
	return Interval[T]{
		cmp: NewComparator(d),
		lo:  cut[T]{kind: belowAll},
		hi:  cut[T]{kind: aboveAll},
	}
}

// FromBounds builds an interval from explicit endpoint bounds. It rejects a
// pair whose bounded values are out of order; a well-ordered pair that
// happens to contain no value (e.g. an open integer gap) yields a valid
// empty interval.
func FromBounds[T any](d value.Comparer[T], lo, hi Bound[T]) (Interval[T], error) {
	if lo.kind != KindUnbounded && hi.kind != KindUnbounded &&
		d.Compare(lo.value, hi.value) > 0 {
		return Interval[T]{}, fmt.Errorf("lower bound sorts after upper bound")
	}
	c := NewComparator(d)
	return Interval[T]{
		cmp: c,
		lo:  c.leftCut(lo),
		hi:  c.rightCut(hi),
	}, nil
}

// FromRange builds an interval from a pair of values with per-side
// inclusivity flags.
func FromRange[T any](d value.Comparer[T], lo, hi T, loIncl, hiIncl bool) Interval[T] {
	switch {
	case loIncl && hiIncl:
		return Closed(d, lo, hi)
	case loIncl:
		return ClosedOpen(d, lo, hi)
	case hiIncl:
		return OpenClosed(d, lo, hi)
	default:
		return Open(d, lo, hi)
	}
}

// IsEmpty reports whether the interval contains no value.
func (iv Interval[T]) IsEmpty() bool {
	return iv.cmp.compareCut(iv.lo, iv.hi) >= 0
}

// IsSingle reports whether the interval contains exactly one value in
// inclusive form. A discrete interval like (0,2) holds a single value but is
// not in that form.
func (iv Interval[T]) IsSingle() bool {
	return iv.lo.kind == beforeValue && iv.hi.kind == afterValue &&
		iv.cmp.dom.Compare(iv.lo.value, iv.hi.value) == 0
}

// Lower returns the lower endpoint value, false when the interval is
// unbounded below.
func (iv Interval[T]) Lower() (T, bool) {
	if iv.lo.kind == belowAll || iv.lo.kind == aboveAll {
		var zero T
		return zero, false
	}
	return iv.lo.value, true
}

// LowerInclusive reports whether the lower endpoint value belongs to the
// interval.
func (iv Interval[T]) LowerInclusive() bool { return iv.lo.kind == beforeValue }

// LowerUnbounded reports whether the interval extends to -inf.
func (iv Interval[T]) LowerUnbounded() bool { return iv.lo.kind == belowAll }

// Upper returns the upper endpoint value, false when the interval is
// unbounded above.
func (iv Interval[T]) Upper() (T, bool) {
	if iv.hi.kind == belowAll || iv.hi.kind == aboveAll {
		var zero T
		return zero, false
	}
	return iv.hi.value, true
}

// UpperInclusive reports whether the upper endpoint value belongs to the
// interval.
func (iv Interval[T]) UpperInclusive() bool { return iv.hi.kind == afterValue }

// UpperUnbounded reports whether the interval extends to +inf.
func (iv Interval[T]) UpperUnbounded() bool { return iv.hi.kind == aboveAll }
