package ipset

import (
	"math/big"
	"math/bits"
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/intervalset"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// AddrDomain is the discrete domain of netip.Addr values. Mixing address
// families in one set is outside its contract.
type AddrDomain struct{}

func (AddrDomain) Compare(a, b netip.Addr) int { return a.Compare(b) }

func (AddrDomain) Next(v netip.Addr) (netip.Addr, bool) {
	n := v.Next()
	return n, n.IsValid()
}

func (AddrDomain) Prev(v netip.Addr) (netip.Addr, bool) {
	p := v.Prev()
	return p, p.IsValid()
}

func (AddrDomain) Distance(a, b netip.Addr) (uint64, bool) {
	if a.Compare(b) > 0 {
		return 0, false
	}
	diff := new(big.Int).Sub(ipToInt(b), ipToInt(a))
	if !diff.IsUint64() {
		return 0, false
	}
	return diff.Uint64(), true
}

func ipToInt(ip netip.Addr) *big.Int {
	bytes := ip.As16()
	return new(big.Int).SetBytes(bytes[:])
}

// IPSet holds a set of IP addresses as disjoint address intervals, with
// conversions from and to prefixes and ranges.
type IPSet struct {
	set *intervalset.IntervalSet[netip.Addr]
}

// New returns a set holding the union of the given ranges.
func New(ranges ...netipx.IPRange) *IPSet {
	r := &IPSet{set: intervalset.New[netip.Addr](AddrDomain{})}
	for _, rng := range ranges {
		r.AddRange(rng)
	}
	return r
}

// Add inserts a single address.
func (r *IPSet) Add(addr netip.Addr) {
	r.set.Add(addr)
}

// AddPrefix inserts every address covered by the prefix.
func (r *IPSet) AddPrefix(pfx netip.Prefix) {
	r.AddRange(netipx.RangeOfPrefix(pfx))
}

// AddRange inserts every address of the range; invalid ranges are ignored.
func (r *IPSet) AddRange(rng netipx.IPRange) {
	if !rng.IsValid() {
		return
	}
	r.set.AddInterval(interval.Closed[netip.Addr](AddrDomain{}, rng.From(), rng.To()))
}

// Remove deletes a single address.
func (r *IPSet) Remove(addr netip.Addr) {
	r.set.Remove(addr)
}

// RemovePrefix deletes every address covered by the prefix.
func (r *IPSet) RemovePrefix(pfx netip.Prefix) {
	r.RemoveRange(netipx.RangeOfPrefix(pfx))
}

// RemoveRange deletes every address of the range.
func (r *IPSet) RemoveRange(rng netipx.IPRange) {
	if !rng.IsValid() {
		return
	}
	r.set.RemoveInterval(interval.Closed[netip.Addr](AddrDomain{}, rng.From(), rng.To()))
}

// Contains reports whether the address belongs to the set.
func (r *IPSet) Contains(addr netip.Addr) bool {
	return r.set.Contains(addr)
}

// ContainsRange reports whether every address of the range belongs to the
// set.
func (r *IPSet) ContainsRange(rng netipx.IPRange) bool {
	if !rng.IsValid() {
		return false
	}
	return r.set.ContainsInterval(interval.Closed[netip.Addr](AddrDomain{}, rng.From(), rng.To()))
}

// Equivalent reports whether both sets hold exactly the same addresses.
func (r *IPSet) Equivalent(o *IPSet) bool {
	return r.set.Equivalent(o.set)
}

// Union returns a new set holding the addresses of both sets.
func (r *IPSet) Union(o *IPSet) *IPSet {
	return &IPSet{set: r.set.Union(o.set)}
}

// Count returns the number of addresses in the set, false on overflow.
func (r *IPSet) Count() (uint64, bool) {
	var total uint64
	d := AddrDomain{}
	for _, rng := range r.Ranges() {
		n, ok := d.Distance(rng.From(), rng.To())
		if !ok {
			return 0, false
		}
		// A single range can hold 2^64 addresses, one more than the
		// distance fits.
		size, carry := bits.Add64(n, 1, 0)
		if carry == 0 {
			total, carry = bits.Add64(total, size, 0)
		}
		if carry != 0 {
			return 0, false
		}
	}
	return total, true
}

// toRange normalizes a stored interval to an inclusive address range.
func toRange(iv interval.Interval[netip.Addr]) (netipx.IPRange, bool) {
	from, ok := iv.Lower()
	if !ok {
		return netipx.IPRange{}, false
	}
	if !iv.LowerInclusive() {
		from = from.Next()
	}
	to, ok := iv.Upper()
	if !ok {
		return netipx.IPRange{}, false
	}
	if !iv.UpperInclusive() {
		to = to.Prev()
	}
	rng := netipx.IPRangeFrom(from, to)
	if !rng.IsValid() {
		return netipx.IPRange{}, false
	}
	return rng, true
}

// Ranges returns the set as sorted inclusive address ranges.
func (r *IPSet) Ranges() []netipx.IPRange {
	var out []netipx.IPRange
	iter := r.set.Iterate()
	for iter.Next() {
		if rng, ok := toRange(iter.Value()); ok {
			out = append(out, rng)
		}
	}
	return out
}

// Prefixes returns the set as the minimal list of CIDR prefixes.
func (r *IPSet) Prefixes() []netip.Prefix {
	var out []netip.Prefix
	for _, rng := range r.Ranges() {
		out = append(out, rng.Prefixes()...)
	}
	return out
}

// IPSet converts to the netipx set representation.
func (r *IPSet) IPSet() (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, rng := range r.Ranges() {
		b.AddRange(rng)
	}
	return b.IPSet()
}

// Routes returns one route per covered prefix, each carrying the given
// labels.
func (r *IPSet) Routes(lbls labels.Set) table.Routes {
	var routes table.Routes
	for _, pfx := range r.Prefixes() {
		routes = append(routes, table.NewRoute(pfx, lbls, map[string]any{}))
	}
	return routes
}
