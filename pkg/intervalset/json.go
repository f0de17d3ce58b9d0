package intervalset

import (
	"encoding/json"

	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/value"
)

// MarshalJSON renders the set as an array of interval views.
func (r *IntervalSet[T]) MarshalJSON() ([]byte, error) {
	if len(r.ivs) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(r.ivs)
}

// UnmarshalIntervalSet decodes an array of interval views into a set bound
// to the domain d. Overlapping or unordered entries are tolerated; the
// result is canonical.
func UnmarshalIntervalSet[T any](d value.Comparer[T], data []byte) (*IntervalSet[T], error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	s := New(d)
	for _, raw := range raws {
		iv, err := interval.UnmarshalInterval(d, raw)
		if err != nil {
			return nil, err
		}
		s.AddInterval(iv)
	}
	return s, nil
}
