package intervalset

import (
	"sort"
	"strings"

	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/value"
)

// IntervalSet holds an arbitrary set of values as sorted, pairwise disjoint,
// non-contiguous, non-empty intervals. Every mutation restores that shape
// before returning, so two sets holding the same values always store the
// same intervals.
type IntervalSet[T any] struct {
	d   value.Comparer[T]
	ivs []interval.Interval[T]
}

// New builds a set over d holding the union of the given intervals.
func New[T any](d value.Comparer[T], ivs ...interval.Interval[T]) *IntervalSet[T] {
	s := &IntervalSet[T]{d: d}
	for _, iv := range ivs {
		s.AddInterval(iv)
	}
	return s
}

// Len returns the number of stored intervals.
func (r *IntervalSet[T]) Len() int { return len(r.ivs) }

// IsEmpty reports whether the set contains no value.
func (r *IntervalSet[T]) IsEmpty() bool { return len(r.ivs) == 0 }

// Clear removes all values.
func (r *IntervalSet[T]) Clear() { r.ivs = nil }

// Clone returns an independent copy.
func (r *IntervalSet[T]) Clone() *IntervalSet[T] {
	ivs := make([]interval.Interval[T], len(r.ivs))
	copy(ivs, r.ivs)
	return &IntervalSet[T]{d: r.d, ivs: ivs}
}

// Intervals returns the stored intervals in ascending order.
func (r *IntervalSet[T]) Intervals() []interval.Interval[T] {
	ivs := make([]interval.Interval[T], len(r.ivs))
	copy(ivs, r.ivs)
	return ivs
}

func (r *IntervalSet[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, iv := range r.ivs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(iv.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Add inserts the single value v.
func (r *IntervalSet[T]) Add(v T) {
	r.AddInterval(interval.Single(r.d, v))
}

// AddInterval inserts every value of iv, merging it with any stored interval
// it overlaps or touches.
func (r *IntervalSet[T]) AddInterval(iv interval.Interval[T]) {
	if iv.IsEmpty() {
		return
	}
	i := sort.Search(len(r.ivs), func(i int) bool {
		return !r.ivs[i].StrictlyLeftOfInterval(iv)
	})
	merged := iv
	j := i
	for j < len(r.ivs) && !merged.StrictlyLeftOfInterval(r.ivs[j]) {
		merged = merged.ConvexHull(r.ivs[j])
		j++
	}
	r.ivs = replaceRun(r.ivs, i, j, merged)
}

// Remove deletes the single value v.
func (r *IntervalSet[T]) Remove(v T) {
	r.RemoveInterval(interval.Single(r.d, v))
}

// RemoveInterval deletes every value of iv, splitting stored intervals where
// needed.
func (r *IntervalSet[T]) RemoveInterval(iv interval.Interval[T]) {
	if iv.IsEmpty() || len(r.ivs) == 0 {
		return
	}
	i := sort.Search(len(r.ivs), func(i int) bool {
		return !r.ivs[i].StrictlyLeftOfInterval(iv)
	})
	var pieces []interval.Interval[T]
	j := i
	for j < len(r.ivs) && !iv.StrictlyLeftOfInterval(r.ivs[j]) {
		d := r.ivs[j].Difference(iv)
		for k := 0; k < d.Len(); k++ {
			pieces = append(pieces, d.At(k))
		}
		j++
	}
	r.ivs = replaceRun(r.ivs, i, j, pieces...)
}

// replaceRun splices repl over ivs[i:j].
func replaceRun[T any](ivs []interval.Interval[T], i, j int, repl ...interval.Interval[T]) []interval.Interval[T] {
	out := make([]interval.Interval[T], 0, len(ivs)-(j-i)+len(repl))
	out = append(out, ivs[:i]...)
	out = append(out, repl...)
	out = append(out, ivs[j:]...)
	return out
}

// Contains reports whether v belongs to the set.
func (r *IntervalSet[T]) Contains(v T) bool {
	i := sort.Search(len(r.ivs), func(i int) bool {
		return !r.ivs[i].StrictlyLeftOf(v)
	})
	return i < len(r.ivs) && r.ivs[i].Contains(v)
}

// ContainsInterval reports whether every value of iv belongs to the set.
// Because stored intervals never touch, iv fits or it doesn't fit in one of
// them.
func (r *IntervalSet[T]) ContainsInterval(iv interval.Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	i := sort.Search(len(r.ivs), func(i int) bool {
		return !r.ivs[i].StrictlyLeftOfInterval(iv)
	})
	return i < len(r.ivs) && r.ivs[i].ContainsInterval(iv)
}

// IntersectsInterval reports whether iv shares at least one value with the
// set.
func (r *IntervalSet[T]) IntersectsInterval(iv interval.Interval[T]) bool {
	if iv.IsEmpty() {
		return false
	}
	i := sort.Search(len(r.ivs), func(i int) bool {
		return !r.ivs[i].StrictlyLeftOfInterval(iv)
	})
	for k := i; k < len(r.ivs) && !iv.StrictlyLeftOfInterval(r.ivs[k]); k++ {
		if iv.Intersects(r.ivs[k]) {
			return true
		}
	}
	return false
}

// IntersectsSet reports whether the two sets share at least one value.
func (r *IntervalSet[T]) IntersectsSet(o *IntervalSet[T]) bool {
	i, j := 0, 0
	for i < len(r.ivs) && j < len(o.ivs) {
		if r.ivs[i].Intersects(o.ivs[j]) {
			return true
		}
		if r.ivs[i].CompareUpper(o.ivs[j]) <= 0 {
			i++
		} else {
			j++
		}
	}
	return false
}

// Union returns a new set holding the values of both sets.
func (r *IntervalSet[T]) Union(o *IntervalSet[T]) *IntervalSet[T] {
	out := &IntervalSet[T]{d: r.d}
	i, j := 0, 0
	var pending interval.Interval[T]
	havePending := false
	for i < len(r.ivs) || j < len(o.ivs) {
		var next interval.Interval[T]
		if j >= len(o.ivs) || (i < len(r.ivs) && r.ivs[i].Compare(o.ivs[j]) <= 0) {
			next = r.ivs[i]
			i++
		} else {
			next = o.ivs[j]
			j++
		}
		if !havePending {
			pending = next
			havePending = true
			continue
		}
		if u, err := pending.Union(next); err == nil {
			pending = u
		} else {
			out.ivs = append(out.ivs, pending)
			pending = next
		}
	}
	if havePending {
		out.ivs = append(out.ivs, pending)
	}
	return out
}

// IntersectionInterval returns a new set holding the values shared by the
// set and iv.
func (r *IntervalSet[T]) IntersectionInterval(iv interval.Interval[T]) *IntervalSet[T] {
	out := &IntervalSet[T]{d: r.d}
	if iv.IsEmpty() {
		return out
	}
	i := sort.Search(len(r.ivs), func(i int) bool {
		return !r.ivs[i].StrictlyLeftOfInterval(iv)
	})
	for k := i; k < len(r.ivs) && !iv.StrictlyLeftOfInterval(r.ivs[k]); k++ {
		if x := iv.Intersection(r.ivs[k]); !x.IsEmpty() {
			out.ivs = append(out.ivs, x)
		}
	}
	return out
}

// IntersectionSet returns a new set holding the values shared by both sets.
func (r *IntervalSet[T]) IntersectionSet(o *IntervalSet[T]) *IntervalSet[T] {
	out := &IntervalSet[T]{d: r.d}
	i, j := 0, 0
	for i < len(r.ivs) && j < len(o.ivs) {
		if x := r.ivs[i].Intersection(o.ivs[j]); !x.IsEmpty() {
			out.ivs = append(out.ivs, x)
		}
		if r.ivs[i].CompareUpper(o.ivs[j]) <= 0 {
			i++
		} else {
			j++
		}
	}
	return out
}

// DifferenceInterval returns a new set holding the set's values not in iv.
func (r *IntervalSet[T]) DifferenceInterval(iv interval.Interval[T]) *IntervalSet[T] {
	out := r.Clone()
	out.RemoveInterval(iv)
	return out
}

// DifferenceSet returns a new set holding the values of the set that are not
// in o.
func (r *IntervalSet[T]) DifferenceSet(o *IntervalSet[T]) *IntervalSet[T] {
	out := &IntervalSet[T]{d: r.d}
	j := 0
	for _, cur := range r.ivs {
		rem := cur
		k := j
		for !rem.IsEmpty() {
			for k < len(o.ivs) && o.ivs[k].EntirelyBefore(rem) {
				k++
				j = k
			}
			if k >= len(o.ivs) || rem.EntirelyBefore(o.ivs[k]) {
				out.ivs = append(out.ivs, rem)
				break
			}
			d := rem.Difference(o.ivs[k])
			switch d.Len() {
			case 0:
				rem = interval.Empty(r.d)
			case 1:
				p := d.At(0)
				if p.EntirelyBefore(o.ivs[k]) {
					out.ivs = append(out.ivs, p)
					rem = interval.Empty(r.d)
				} else {
					rem = p
					k++
				}
			default:
				out.ivs = append(out.ivs, d.At(0))
				rem = d.At(1)
				k++
			}
		}
	}
	return out
}

// SymmetricDifferenceSet returns a new set holding the values in exactly one
// of the two sets.
func (r *IntervalSet[T]) SymmetricDifferenceSet(o *IntervalSet[T]) *IntervalSet[T] {
	return r.Union(o).DifferenceSet(r.IntersectionSet(o))
}

// Equivalent reports whether both sets contain exactly the same values. The
// stored form is canonical, so this is a pairwise interval comparison.
func (r *IntervalSet[T]) Equivalent(o *IntervalSet[T]) bool {
	if len(r.ivs) != len(o.ivs) {
		return false
	}
	for i := range r.ivs {
		if !r.ivs[i].Equivalent(o.ivs[i]) {
			return false
		}
	}
	return true
}

// Hull returns the smallest single interval covering the whole set.
func (r *IntervalSet[T]) Hull() interval.Interval[T] {
	if len(r.ivs) == 0 {
		return interval.Empty(r.d)
	}
	return r.ivs[0].ConvexHull(r.ivs[len(r.ivs)-1])
}

// StrictlyLeftOf reports whether every value of the set sorts before v with
// a gap.
func (r *IntervalSet[T]) StrictlyLeftOf(v T) bool {
	return len(r.ivs) == 0 || r.ivs[len(r.ivs)-1].StrictlyLeftOf(v)
}

// LeftOf reports whether every value of the set sorts at or before v.
func (r *IntervalSet[T]) LeftOf(v T) bool {
	return len(r.ivs) == 0 || r.ivs[len(r.ivs)-1].LeftOf(v)
}

// RightOf reports whether every value of the set sorts at or after v.
func (r *IntervalSet[T]) RightOf(v T) bool {
	return len(r.ivs) == 0 || r.ivs[0].RightOf(v)
}

// StrictlyRightOf reports whether every value of the set sorts after v with
// a gap.
func (r *IntervalSet[T]) StrictlyRightOf(v T) bool {
	return len(r.ivs) == 0 || r.ivs[0].StrictlyRightOf(v)
}

// StrictlyLeftOfInterval reports whether the whole set lies before iv with a
// gap.
func (r *IntervalSet[T]) StrictlyLeftOfInterval(iv interval.Interval[T]) bool {
	return len(r.ivs) == 0 || r.ivs[len(r.ivs)-1].StrictlyLeftOfInterval(iv)
}

// StrictlyRightOfInterval reports whether the whole set lies after iv with a
// gap.
func (r *IntervalSet[T]) StrictlyRightOfInterval(iv interval.Interval[T]) bool {
	return len(r.ivs) == 0 || r.ivs[0].StrictlyRightOfInterval(iv)
}

// StrictlyLeftOfSet reports whether the whole set lies before every value of
// o with a gap.
func (r *IntervalSet[T]) StrictlyLeftOfSet(o *IntervalSet[T]) bool {
	if len(r.ivs) == 0 || len(o.ivs) == 0 {
		return true
	}
	return r.ivs[len(r.ivs)-1].StrictlyLeftOfInterval(o.ivs[0])
}

// StrictlyRightOfSet reports whether the whole set lies after every value of
// o with a gap.
func (r *IntervalSet[T]) StrictlyRightOfSet(o *IntervalSet[T]) bool {
	if len(r.ivs) == 0 || len(o.ivs) == 0 {
		return true
	}
	return r.ivs[0].StrictlyRightOfInterval(o.ivs[len(o.ivs)-1])
}
