package intervalset

import (
	"github.com/henderiw/interval/pkg/interval"
)

// Iterator walks the stored intervals in ascending order.
type Iterator[T any] struct {
	current int
	ivs     []interval.Interval[T]
}

// Iterate returns a cursor over the set's intervals. The cursor sees a
// snapshot; mutating the set does not invalidate it.
func (r *IntervalSet[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{
		current: -1,
		ivs:     r.Intervals(),
	}
}

// Next advances to the next interval, false when exhausted.
func (r *Iterator[T]) Next() bool {
	r.current++
	return r.current < len(r.ivs)
}

// Value returns the interval at the cursor.
func (r *Iterator[T]) Value() interval.Interval[T] {
	return r.ivs[r.current]
}
