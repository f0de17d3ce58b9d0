package interval

import (
	"encoding/json"
	"fmt"

	"github.com/henderiw/interval/pkg/value"
)

type boundJSON[T any] struct {
	Kind  string `json:"kind"`
	Value *T     `json:"value,omitempty"`
}

type intervalJSON[T any] struct {
	Empty bool          `json:"empty,omitempty"`
	Lower *boundJSON[T] `json:"lower,omitempty"`
	Upper *boundJSON[T] `json:"upper,omitempty"`
}

func boundView[T any](v T, ok, incl bool) *boundJSON[T] {
	if !ok {
		return &boundJSON[T]{Kind: KindUnbounded.String()}
	}
	k := KindExcluded
	if incl {
		k = KindIncluded
	}
	return &boundJSON[T]{Kind: k.String(), Value: &v}
}

// MarshalJSON renders the interval as a structural view that round-trips
// without relying on any algebra: either {"empty":true} or the two bounds
// with their kinds.
func (iv Interval[T]) MarshalJSON() ([]byte, error) {
	if iv.IsEmpty() {
		return json.Marshal(intervalJSON[T]{Empty: true})
	}
	lo, lok := iv.Lower()
	hi, hok := iv.Upper()
	return json.Marshal(intervalJSON[T]{
		Lower: boundView(lo, lok, iv.LowerInclusive()),
		Upper: boundView(hi, hok, iv.UpperInclusive()),
	})
}

func boundFromView[T any](b *boundJSON[T], side string) (Bound[T], error) {
	if b == nil {
		return Bound[T]{}, fmt.Errorf("missing %s bound", side)
	}
	switch b.Kind {
	case KindUnbounded.String():
		return Unbounded[T](), nil
	case KindIncluded.String(), KindExcluded.String():
		if b.Value == nil {
			return Bound[T]{}, fmt.Errorf("%s bound of kind %s has no value", side, b.Kind)
		}
		if b.Kind == KindIncluded.String() {
			return Included(*b.Value), nil
		}
		return Excluded(*b.Value), nil
	default:
		return Bound[T]{}, fmt.Errorf("invalid %s bound kind %q", side, b.Kind)
	}
}

// UnmarshalInterval decodes the structural view produced by MarshalJSON,
// binding it to the domain d.
func UnmarshalInterval[T any](d value.Comparer[T], data []byte) (Interval[T], error) {
	var view intervalJSON[T]
	if err := json.Unmarshal(data, &view); err != nil {
		return Interval[T]{}, err
	}
	if view.Empty {
		return Empty(d), nil
	}
	lo, err := boundFromView(view.Lower, "lower")
	if err != nil {
		return Interval[T]{}, err
	}
	hi, err := boundFromView(view.Upper, "upper")
	if err != nil {
		return Interval[T]{}, err
	}
	return FromBounds(d, lo, hi)
}
