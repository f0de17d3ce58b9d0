package interval

import "fmt"

// Pair is the result of an operation that can split an interval, holding
// zero, one or two non-empty, disjoint intervals in ascending order.
type Pair[T any] struct {
	n int
	a Interval[T]
	b Interval[T]
}

// makePair keeps the non-empty operands, in order.
func makePair[T any](a, b Interval[T]) Pair[T] {
	p := Pair[T]{}
	if !a.IsEmpty() {
		p.a = a
		p.n = 1
	}
	if !b.IsEmpty() {
		if p.n == 0 {
			p.a = b
		} else {
			p.b = b
		}
		p.n++
	}
	return p
}

// Len returns the number of intervals in the pair.
func (p Pair[T]) Len() int { return p.n }

// At returns the i-th interval; it panics when i is out of range.
func (p Pair[T]) At(i int) Interval[T] {
	if i < 0 || i >= p.n {
		panic(fmt.Sprintf("pair index %d out of range [0,%d)", i, p.n))
	}
	if i == 0 {
		return p.a
	}
	return p.b
}

// Intervals returns the pair's entries as a slice.
func (p Pair[T]) Intervals() []Interval[T] {
	switch p.n {
	case 0:
		return nil
	case 1:
		return []Interval[T]{p.a}
	default:
		return []Interval[T]{p.a, p.b}
	}
}
