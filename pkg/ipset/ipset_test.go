package ipset

import (
	"math"
	"net/netip"
	"testing"

	"github.com/tj/assert"
	"go4.org/netipx"
)

func TestAddRemove(t *testing.T) {
	cases := map[string]struct {
		addRanges    []string
		addPrefixes  []string
		removeRanges []string
		contains     []string
		missing      []string
		wantRanges   []string
	}{
		"Normal": {
			addRanges:  []string{"10.0.0.10-10.0.0.20"},
			contains:   []string{"10.0.0.10", "10.0.0.15", "10.0.0.20"},
			missing:    []string{"10.0.0.9", "10.0.0.21"},
			wantRanges: []string{"10.0.0.10-10.0.0.20"},
		},
		"AdjacentRangesMerge": {
			addRanges:  []string{"10.0.0.10-10.0.0.20", "10.0.0.21-10.0.0.30"},
			contains:   []string{"10.0.0.25"},
			wantRanges: []string{"10.0.0.10-10.0.0.30"},
		},
		"Prefix": {
			addPrefixes: []string{"10.0.0.0/24"},
			contains:    []string{"10.0.0.0", "10.0.0.255"},
			missing:     []string{"10.0.1.0"},
			wantRanges:  []string{"10.0.0.0-10.0.0.255"},
		},
		"RemoveSplits": {
			addRanges:    []string{"10.0.0.0-10.0.0.255"},
			removeRanges: []string{"10.0.0.100-10.0.0.199"},
			contains:     []string{"10.0.0.99", "10.0.0.200"},
			missing:      []string{"10.0.0.100", "10.0.0.150", "10.0.0.199"},
			wantRanges:   []string{"10.0.0.0-10.0.0.99", "10.0.0.200-10.0.0.255"},
		},
		"IPv6": {
			addPrefixes: []string{"2001:db8::/126"},
			contains:    []string{"2001:db8::", "2001:db8::3"},
			missing:     []string{"2001:db8::4"},
			wantRanges:  []string{"2001:db8::-2001:db8::3"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := New()
			for _, s := range tc.addRanges {
				rng, err := netipx.ParseIPRange(s)
				assert.NoError(t, err)
				r.AddRange(rng)
			}
			for _, s := range tc.addPrefixes {
				r.AddPrefix(netip.MustParsePrefix(s))
			}
			for _, s := range tc.removeRanges {
				rng, err := netipx.ParseIPRange(s)
				assert.NoError(t, err)
				r.RemoveRange(rng)
			}
			for _, s := range tc.contains {
				assert.True(t, r.Contains(netip.MustParseAddr(s)), "expecting %s in set", s)
			}
			for _, s := range tc.missing {
				assert.False(t, r.Contains(netip.MustParseAddr(s)), "not expecting %s in set", s)
			}
			got := []string{}
			for _, rng := range r.Ranges() {
				got = append(got, rng.String())
			}
			assert.Equal(t, tc.wantRanges, got)
		})
	}
}

func TestContainsRange(t *testing.T) {
	rng, err := netipx.ParseIPRange("10.0.0.0-10.0.0.255")
	assert.NoError(t, err)
	r := New(rng)

	sub, err := netipx.ParseIPRange("10.0.0.10-10.0.0.20")
	assert.NoError(t, err)
	assert.True(t, r.ContainsRange(sub))

	over, err := netipx.ParseIPRange("10.0.0.200-10.0.1.10")
	assert.NoError(t, err)
	assert.False(t, r.ContainsRange(over))
}

func TestCount(t *testing.T) {
	r := New()
	r.AddPrefix(netip.MustParsePrefix("10.0.0.0/24"))
	n, ok := r.Count()
	assert.True(t, ok)
	assert.Equal(t, uint64(256), n)

	r.Remove(netip.MustParseAddr("10.0.0.10"))
	n, ok = r.Count()
	assert.True(t, ok)
	assert.Equal(t, uint64(255), n)
}

func TestCountOverflow(t *testing.T) {
	// A /64 holds exactly 2^64 addresses, one more than uint64 can count.
	r := New()
	r.AddPrefix(netip.MustParsePrefix("2001:db8::/64"))
	_, ok := r.Count()
	assert.False(t, ok)

	// One address fewer counts fine.
	r.Remove(netip.MustParseAddr("2001:db8::"))
	n, ok := r.Count()
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), n)
}

func TestPrefixes(t *testing.T) {
	r := New()
	r.AddPrefix(netip.MustParsePrefix("10.0.0.0/25"))
	r.AddPrefix(netip.MustParsePrefix("10.0.0.128/25"))
	// Adjacent halves collapse into the covering prefix.
	got := []string{}
	for _, pfx := range r.Prefixes() {
		got = append(got, pfx.String())
	}
	assert.Equal(t, []string{"10.0.0.0/24"}, got)
}

func TestUnionEquivalent(t *testing.T) {
	a := New()
	a.AddPrefix(netip.MustParsePrefix("10.0.0.0/25"))
	b := New()
	b.AddPrefix(netip.MustParsePrefix("10.0.0.128/25"))

	u := a.Union(b)
	whole := New()
	whole.AddPrefix(netip.MustParsePrefix("10.0.0.0/24"))
	assert.True(t, u.Equivalent(whole))
	assert.False(t, u.Equivalent(a))
}

func TestIPSetExport(t *testing.T) {
	r := New()
	r.AddPrefix(netip.MustParsePrefix("10.0.0.0/24"))
	r.Remove(netip.MustParseAddr("10.0.0.10"))

	s, err := r.IPSet()
	assert.NoError(t, err)
	assert.True(t, s.Contains(netip.MustParseAddr("10.0.0.9")))
	assert.False(t, s.Contains(netip.MustParseAddr("10.0.0.10")))
}

func TestRoutes(t *testing.T) {
	r := New()
	r.AddPrefix(netip.MustParsePrefix("10.0.0.0/25"))
	routes := r.Routes(map[string]string{"purpose": "loopback"})
	assert.Len(t, routes, 1)
	assert.Equal(t, "loopback", routes[0].Labels()["purpose"])
}

func TestAddrDomain(t *testing.T) {
	d := AddrDomain{}
	a := netip.MustParseAddr("10.0.0.10")
	b := netip.MustParseAddr("10.0.0.20")

	assert.Equal(t, -1, d.Compare(a, b))
	n, ok := d.Next(a)
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.11", n.String())

	dist, ok := d.Distance(a, b)
	assert.True(t, ok)
	assert.Equal(t, uint64(10), dist)
	_, ok = d.Distance(b, a)
	assert.False(t, ok)
}
