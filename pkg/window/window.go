package window

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/intervalset"
	"github.com/henderiw/interval/pkg/value"
	"k8s.io/apimachinery/pkg/labels"
)

// Claim is a named, labeled reservation of a time window.
type Claim struct {
	Name   string
	Window interval.Interval[time.Time]
	Labels labels.Set
}

type Table interface {
	Claim(name string, window interval.Interval[time.Time], d labels.Set) error
	Release(name string) error
	Get(name string) (Claim, error)

	Count() int
	Has(name string) bool

	Claimed() *intervalset.IntervalSet[time.Time]
	Free() *intervalset.IntervalSet[time.Time]
	FindFree(d time.Duration) (interval.Interval[time.Time], error)

	GetAll() []Claim
	GetByLabel(selector labels.Selector) []Claim
}

// New returns a claim table over the given horizon. Claims can only be
// placed inside the horizon. Free windows are searched from the horizon's
// start, so the horizon must be bounded below; it may extend to +inf.
func New(horizon interval.Interval[time.Time]) (Table, error) {
	if horizon.IsEmpty() {
		return nil, fmt.Errorf("horizon is empty, nothing can be claimed")
	}
	if horizon.LowerUnbounded() {
		return nil, fmt.Errorf("horizon has no start, free windows cannot be searched")
	}
	return &wTable{
		m:       new(sync.RWMutex),
		horizon: horizon,
		claims:  map[string]Claim{},
		claimed: intervalset.New(value.Time()),
	}, nil
}

type wTable struct {
	m       *sync.RWMutex
	horizon interval.Interval[time.Time]
	claims  map[string]Claim
	claimed *intervalset.IntervalSet[time.Time]
}

func (r *wTable) Claim(name string, window interval.Interval[time.Time], d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()
	if window.IsEmpty() {
		return fmt.Errorf("claim failed, window %s is empty", window.String())
	}
	if !r.horizon.ContainsInterval(window) {
		return fmt.Errorf("claim failed, window %s escapes the horizon %s", window.String(), r.horizon.String())
	}
	if _, ok := r.claims[name]; ok {
		return fmt.Errorf("claim failed, name %s is already claimed", name)
	}
	if r.claimed.IntersectsInterval(window) {
		return fmt.Errorf("claim failed, window %s overlaps an existing claim", window.String())
	}
	r.claims[name] = Claim{Name: name, Window: window, Labels: d}
	r.claimed.AddInterval(window)
	return nil
}

func (r *wTable) Release(name string) error {
	r.m.Lock()
	defer r.m.Unlock()
	c, ok := r.claims[name]
	if !ok {
		return fmt.Errorf("release failed, name %s is not claimed", name)
	}
	delete(r.claims, name)
	r.claimed.RemoveInterval(c.Window)
	return nil
}

func (r *wTable) Get(name string) (Claim, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	c, ok := r.claims[name]
	if !ok {
		return Claim{}, fmt.Errorf("name %s is not claimed", name)
	}
	return c, nil
}

func (r *wTable) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()
	return len(r.claims)
}

func (r *wTable) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()
	_, ok := r.claims[name]
	return ok
}

func (r *wTable) Claimed() *intervalset.IntervalSet[time.Time] {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.claimed.Clone()
}

func (r *wTable) Free() *intervalset.IntervalSet[time.Time] {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.free()
}

func (r *wTable) free() *intervalset.IntervalSet[time.Time] {
	return intervalset.New(value.Time(), r.horizon).DifferenceSet(r.claimed)
}

// FindFree returns the first free window of at least d, anchored at the
// start of the gap it was found in.
func (r *wTable) FindFree(d time.Duration) (interval.Interval[time.Time], error) {
	r.m.RLock()
	defer r.m.RUnlock()
	iter := r.free().Iterate()
	for iter.Next() {
		f := iter.Value()
		start, ok := f.Lower()
		if !ok {
			continue
		}
		if !f.LowerInclusive() {
			start = start.Add(time.Nanosecond)
		}
		candidate := interval.ClosedOpen(value.Time(), start, start.Add(d))
		if f.ContainsInterval(candidate) {
			return candidate, nil
		}
	}
	return interval.Empty(value.Time()), fmt.Errorf("no free window of %s available", d)
}

func (r *wTable) GetAll() []Claim {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.sortedClaims(labels.Everything())
}

func (r *wTable) GetByLabel(selector labels.Selector) []Claim {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.sortedClaims(selector)
}

func (r *wTable) sortedClaims(selector labels.Selector) []Claim {
	claims := make([]Claim, 0, len(r.claims))
	for _, c := range r.claims {
		if selector.Matches(c.Labels) {
			claims = append(claims, c)
		}
	}
	sort.Slice(claims, func(i, j int) bool {
		return claims[i].Window.Compare(claims[j].Window) < 0
	})
	return claims
}
