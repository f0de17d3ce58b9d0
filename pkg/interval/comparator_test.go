package interval

import (
	"testing"

	"github.com/henderiw/interval/pkg/value"
	"github.com/stretchr/testify/assert"
)

func TestCompareLeft(t *testing.T) {
	c := NewComparator(value.Int())
	cases := map[string]struct {
		a, b Bound[int]
		want int
	}{
		"UnboundedFirst":         {a: Unbounded[int](), b: Included(-1000), want: -1},
		"UnboundedEqual":         {a: Unbounded[int](), b: Unbounded[int](), want: 0},
		"ByValue":                {a: Included(1), b: Included(2), want: -1},
		"IncludedBeforeExcluded": {a: Included(5), b: Excluded(5), want: -1},
		"ExcludedAfterIncluded":  {a: Excluded(5), b: Included(5), want: 1},
		"Equal":                  {a: Excluded(5), b: Excluded(5), want: 0},
		"DiscreteAdjacent":       {a: Excluded(4), b: Included(5), want: 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.CompareLeft(tc.a, tc.b))
		})
	}
}

func TestCompareRight(t *testing.T) {
	c := NewComparator(value.Int())
	cases := map[string]struct {
		a, b Bound[int]
		want int
	}{
		"UnboundedLast":         {a: Unbounded[int](), b: Included(1000), want: 1},
		"ByValue":               {a: Included(1), b: Included(2), want: -1},
		"IncludedAfterExcluded": {a: Included(5), b: Excluded(5), want: 1},
		"DiscreteAdjacent":      {a: Included(4), b: Excluded(5), want: 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.CompareRight(tc.a, tc.b))
		})
	}
}

func TestCompareRightDense(t *testing.T) {
	c := NewComparator(value.Float64())
	assert.False(t, c.Discrete())
	// No adjacency without a successor function.
	assert.Equal(t, -1, c.CompareRight(Included(4.0), Excluded(5.0)))
	assert.Equal(t, -1, c.CompareLeft(Excluded(4.0), Included(5.0)))
}

func TestLeftPrecedesRight(t *testing.T) {
	c := NewComparator(value.Int())
	cases := map[string]struct {
		l, r Bound[int]
		want bool
	}{
		"Normal":         {l: Included(1), r: Included(5), want: true},
		"SingleValue":    {l: Included(5), r: Included(5), want: true},
		"BothExcluded":   {l: Excluded(5), r: Excluded(5), want: false},
		"DiscreteGap":    {l: Excluded(4), r: Excluded(5), want: false},
		"DiscreteNonGap": {l: Excluded(4), r: Excluded(6), want: true},
		"Inverted":       {l: Included(5), r: Included(4), want: false},
		"BothUnbounded":  {l: Unbounded[int](), r: Unbounded[int](), want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.LeftPrecedesRight(tc.l, tc.r))
		})
	}
}

func TestTouches(t *testing.T) {
	c := NewComparator(value.Int())
	cd := NewComparator(value.Float64())
	cases := map[string]struct {
		c    Comparator[int]
		r, l Bound[int]
		want bool
	}{
		"HalfOpen":     {c: c, r: Excluded(5), l: Included(5), want: true},
		"BothIncluded": {c: c, r: Included(5), l: Included(5), want: false},
		"Successor":    {c: c, r: Included(4), l: Included(5), want: true},
		"Gap":          {c: c, r: Included(3), l: Included(5), want: false},
		"BothExcluded": {c: c, r: Excluded(5), l: Excluded(4), want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Touches(tc.r, tc.l))
		})
	}
	// Dense domains touch only at a half-open boundary.
	assert.True(t, cd.Touches(Excluded[float64](5), Included[float64](5)))
	assert.False(t, cd.Touches(Included[float64](4), Included[float64](5)))
}

func TestBoundAccessors(t *testing.T) {
	b := Included(7)
	assert.Equal(t, KindIncluded, b.Kind())
	v, ok := b.Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	u := Unbounded[int]()
	assert.Equal(t, KindUnbounded, u.Kind())
	_, ok = u.Value()
	assert.False(t, ok)

	var zero Bound[int]
	assert.Equal(t, KindExcluded, zero.Kind())
}
