package intervalset

import (
	"encoding/json"
	"testing"

	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/value"
	"github.com/stretchr/testify/assert"
)

func TestJSONRoundTrip(t *testing.T) {
	d := value.Int()
	s := New(d, interval.Closed(d, 1, 3), interval.ClosedOpen(d, 7, 10))

	data, err := json.Marshal(s)
	assert.NoError(t, err)
	got, err := UnmarshalIntervalSet(d, data)
	assert.NoError(t, err)
	assert.True(t, got.Equivalent(s))

	data, err = json.Marshal(New(d))
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	got, err = UnmarshalIntervalSet(d, data)
	assert.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestJSONUnmarshalCanonicalizes(t *testing.T) {
	d := value.Int()
	// Out of order and overlapping entries still yield a canonical set.
	data := `[
		{"lower": {"kind": "included", "value": 7}, "upper": {"kind": "included", "value": 9}},
		{"lower": {"kind": "included", "value": 1}, "upper": {"kind": "included", "value": 5}},
		{"lower": {"kind": "included", "value": 4}, "upper": {"kind": "included", "value": 6}}
	]`
	got, err := UnmarshalIntervalSet(d, []byte(data))
	assert.NoError(t, err)
	assert.Equal(t, "{[1,9]}", got.String())
}
