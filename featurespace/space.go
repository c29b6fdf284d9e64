package featurespace

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/arborists/xregions/region"
)

// Limits is an explicit per-feature (lower, upper) domain bracket. When nil
// is passed to New, bounds are auto-computed as [min(thresholds)-100,
// max(thresholds)+100], matching the padding used by the source
// implementation's default construction.
type Limits map[int][2]float64

const autoLimitPadding = 100.0

// Space holds, per feature index, the sorted deduplicated thresholds and
// the resulting extended domain. It is immutable after New returns.
type Space struct {
	thresholds map[int][]float64
	limits     Limits
	domains    map[int][]float64
}

// New builds a Space from per-feature threshold lists. If limits is
// non-nil, it must contain every feature key present in thresholds
// (ErrMissingLimit otherwise); if nil, limits are auto-computed from each
// feature's own threshold range.
//
// Sentinel endpoints that coincide with the adjacent threshold are nudged
// apart by 1.0 so every elementary interval remains non-degenerate.
func New(thresholds map[int][]float64, limits Limits) (*Space, error) {
	sp := &Space{
		thresholds: make(map[int][]float64, len(thresholds)),
		limits:     make(Limits, len(thresholds)),
		domains:    make(map[int][]float64, len(thresholds)),
	}

	for f, vals := range thresholds {
		if len(vals) == 0 {
			return nil, fmt.Errorf("%w: feature %d", ErrEmptyThresholds, f)
		}
		dedup := sortedUnique(vals)
		sp.thresholds[f] = dedup

		var lo, hi float64
		if limits != nil {
			lim, ok := limits[f]
			if !ok {
				return nil, fmt.Errorf("%w: feature %d", ErrMissingLimit, f)
			}
			lo, hi = lim[0], lim[1]
		} else {
			lo, hi = dedup[0]-autoLimitPadding, dedup[len(dedup)-1]+autoLimitPadding
		}
		sp.limits[f] = [2]float64{lo, hi}

		domain := make([]float64, 0, len(dedup)+2)
		domain = append(domain, lo)
		domain = append(domain, dedup...)
		domain = append(domain, hi)
		if domain[0] == domain[1] {
			domain[0] -= 1
		}
		n := len(domain)
		if domain[n-1] == domain[n-2] {
			domain[n-1] += 1
		}
		sp.domains[f] = domain
	}

	return sp, nil
}

// Features returns the feature indices this Space was built over, sorted.
func (s *Space) Features() []int {
	out := make([]int, 0, len(s.domains))
	for f := range s.domains {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// Domain returns feature i's extended domain: [lo, thresholds..., hi].
// The returned slice must not be mutated by callers.
func (s *Space) Domain(i int) []float64 {
	return s.domains[i]
}

// Size returns m_i, the number of points in feature i's extended domain.
func (s *Space) Size(i int) int {
	return len(s.domains[i])
}

// DMin returns the natural minimum of feature i's domain.
func (s *Space) DMin(i int) float64 {
	d := s.domains[i]
	return d[0]
}

// DMax returns the natural maximum of feature i's domain.
func (s *Space) DMax(i int) float64 {
	d := s.domains[i]
	return d[len(d)-1]
}

// IndexOf returns the index of v within feature i's domain, if present.
func (s *Space) IndexOf(i int, v float64) (int, bool) {
	d := s.domains[i]
	for idx, x := range d {
		if x == v {
			return idx, true
		}
	}
	return -1, false
}

// PairCount returns Sum_i m_i*(m_i-1)/2, the number of elementary
// intervals across all features. Used only for progress reporting.
func (s *Space) PairCount() int64 {
	var total int64
	for _, d := range s.domains {
		m := int64(len(d))
		total += m * (m - 1) / 2
	}
	return total
}

// RegionCount returns Prod_i m_i*(m_i-1)/2, the number of possible
// elementary regions. Used only for progress reporting; computed with
// big.Int since it grows combinatorially across features.
func (s *Space) RegionCount() *big.Int {
	total := big.NewInt(1)
	for _, d := range s.domains {
		m := int64(len(d))
		pairs := big.NewInt(m * (m - 1) / 2)
		total.Mul(total, pairs)
	}
	return total
}

// Anchor returns the smallest elementary hyperrectangle with
// threshold-aligned corners containing x. x need not carry every feature
// this Space was built over; features it omits are left unconstrained.
// When x_i lands exactly on a domain point, the returned interval uses the
// half-open bracket for which that point is the lower endpoint.
func (s *Space) Anchor(x map[int]float64) region.Region {
	bounds := make(map[int]region.Interval, len(s.domains))
	for f, dom := range s.domains {
		xi, ok := x[f]
		if !ok {
			continue
		}
		j := sort.Search(len(dom), func(k int) bool { return dom[k] > xi })
		if j == 0 {
			j = 1
		}
		if j >= len(dom) {
			j = len(dom) - 1
		}
		bounds[f] = region.Interval{Lower: dom[j-1], Upper: dom[j]}
	}
	return region.FromBounds(bounds)
}

func sortedUnique(vals []float64) []float64 {
	cp := append([]float64(nil), vals...)
	sort.Float64s(cp)
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
