package generator

import (
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/region"
	"github.com/arborists/xregions/score"
)

// SMTLite implements the rand and min seed-generator policies as an
// exhaustive finite-domain backtracking search. The source specification
// backs both by a real SMT solver, but every bound a seed can take is
// already drawn from a feature's own small, pre-sorted domain index set:
// the search space is finite and enumerable, so a constraint solver buys
// nothing a plain DFS over domain-index pairs doesn't already give.
//
// rand returns the first unblocked assignment found, visiting each
// feature's candidate pairs in a freshly shuffled order. min instead
// explores every assignment and keeps the one with the lowest Volume
// score, so its cost is the full combinatorial product — acceptable for
// the domain sizes this module targets, but not a substitute for the
// MaxSAT-backed generators when that product is large.
type SMTLite struct {
	space    *featurespace.Space
	bs       *blockSet
	minimize bool
	rnd      *rand.Rand
	pairs    map[int][][2]int
}

// NewSMTLite builds an SMTLite generator over space. minimize selects the
// min policy (true) or the rand policy (false); seed controls the rand
// policy's shuffle order.
func NewSMTLite(space *featurespace.Space, minimize bool, seed int64) *SMTLite {
	g := &SMTLite{
		space:    space,
		bs:       newBlockSet(space),
		minimize: minimize,
		rnd:      rand.New(rand.NewSource(seed)),
		pairs:    make(map[int][][2]int),
	}
	for _, f := range space.Features() {
		m := space.Size(f)
		var ps [][2]int
		for j := 0; j < m; j++ {
			for k := j + 1; k < m; k++ {
				ps = append(ps, [2]int{j, k})
			}
		}
		g.pairs[f] = ps
	}
	return g
}

func (g *SMTLite) MustContain(r region.Region)  { g.bs.mustContain(r) }
func (g *SMTLite) BlockUp(r region.Region)      { g.bs.blockUp(r) }
func (g *SMTLite) BlockDown(r region.Region)    { g.bs.blockDown(r) }
func (g *SMTLite) BlockScore(s decimal.Decimal) { g.bs.blockScore(s) }
func (g *SMTLite) Reset()                       { g.bs.reset() }

// GetSeed searches the finite-domain product for an unblocked region.
func (g *SMTLite) GetSeed() (region.Region, bool) {
	features := g.space.Features()
	order := make(map[int][][2]int, len(features))
	for _, f := range features {
		ps := append([][2]int(nil), g.pairs[f]...)
		if g.minimize {
			dom := g.space.Domain(f)
			sort.Slice(ps, func(i, j int) bool {
				si := dom[ps[i][1]] - dom[ps[i][0]]
				sj := dom[ps[j][1]] - dom[ps[j][0]]
				return si < sj
			})
		} else {
			g.rnd.Shuffle(len(ps), func(i, j int) { ps[i], ps[j] = ps[j], ps[i] })
		}
		order[f] = ps
	}

	var best region.Region
	var bestScore decimal.Decimal
	found := false

	bounds := make(map[int]region.Interval, len(features))
	var rec func(i int) bool
	rec = func(i int) bool {
		if i == len(features) {
			cp := make(map[int]region.Interval, len(bounds))
			for k, v := range bounds {
				cp[k] = v
			}
			r := region.FromBounds(cp)
			if g.bs.blocked(r) {
				return false
			}
			if !g.minimize {
				best, found = r, true
				return true
			}
			v := score.Volume(r, g.space)
			if !found || v.LessThan(bestScore) {
				best, bestScore, found = r, v, true
			}
			return false
		}
		f := features[i]
		dom := g.space.Domain(f)
		for _, p := range order[f] {
			bounds[f] = region.Interval{Lower: dom[p[0]], Upper: dom[p[1]]}
			if rec(i + 1) {
				delete(bounds, f)
				return true
			}
		}
		delete(bounds, f)
		return false
	}
	rec(0)
	return best, found
}
