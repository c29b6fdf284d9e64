package generator

import (
	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/formula"
	"github.com/arborists/xregions/region"
	"github.com/arborists/xregions/score"
)

// Stratified implements the stratified-MaxSAT seed-generator policy:
// identical to MaxSAT's encoding, but candidates are only drawn from the
// current stratum — the cutoff+1 largest-span candidate intervals per
// feature — and the next stratum is admitted only once the current one
// is confirmed exhausted (no combination within it satisfies the
// accumulated hard constraints). This amortises the combinatorial cost
// of exploring low-volume candidates that would never be chosen anyway.
type Stratified struct {
	enc      *encoder
	blocking formula.CNF
	minScore *decimal.Decimal
	cutoff   int
}

// NewStratified builds a Stratified generator over space.
func NewStratified(space *featurespace.Space) *Stratified {
	return &Stratified{enc: newEncoder(space)}
}

func (g *Stratified) MustContain(r region.Region) {
	g.blocking = append(g.blocking, g.enc.mustContainClauses(r)...)
}

func (g *Stratified) BlockUp(r region.Region) {
	g.blocking = append(g.blocking, g.enc.blockUpClauses(r)...)
}

func (g *Stratified) BlockDown(r region.Region) {
	g.blocking = append(g.blocking, g.enc.blockDownClauses(r)...)
}

func (g *Stratified) BlockScore(s decimal.Decimal) { g.minScore = &s }

// Reset clears blocking state and restarts the stratum cutoff at 0.
func (g *Stratified) Reset() {
	g.blocking = nil
	g.minScore = nil
	g.cutoff = 0
}

// GetSeed widens the admitted stratum until a satisfying, unblocked
// candidate is found or every stratum has been exhausted.
func (g *Stratified) GetSeed() (region.Region, bool) {
	maxCutoff := 0
	for _, f := range g.enc.feats {
		if n := len(g.enc.pairs[f]) - 1; n > maxCutoff {
			maxCutoff = n
		}
	}
	for g.cutoff <= maxCutoff {
		if r, ok := g.searchStratum(); ok {
			return r, true
		}
		g.cutoff++
	}
	return region.Region{}, false
}

// searchStratum brute-forces the bounded product of candidates within the
// current stratum, returning the highest-scoring satisfiable one.
func (g *Stratified) searchStratum() (region.Region, bool) {
	features := g.enc.feats
	var best region.Region
	var bestScore decimal.Decimal
	found := false

	ridx := make(map[int]int, len(features))
	var rec func(i int)
	rec = func(i int) {
		if i == len(features) {
			r := g.enc.toRegion(ridx)
			if g.minScore != nil {
				v := score.Volume(r, g.enc.space)
				if !v.GreaterThan(*g.minScore) {
					return
				}
			}
			if !g.enc.satisfiable(g.blocking, g.enc.assumeLits(ridx)) {
				return
			}
			v := score.Volume(r, g.enc.space)
			if !found || v.GreaterThan(bestScore) {
				best, bestScore, found = r, v, true
			}
			return
		}
		f := features[i]
		limit := g.cutoff
		if n := len(g.enc.pairs[f]) - 1; limit > n {
			limit = n
		}
		for pi := 0; pi <= limit; pi++ {
			ridx[f] = pi
			rec(i + 1)
		}
		delete(ridx, f)
	}
	rec(0)
	return best, found
}
