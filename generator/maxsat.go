package generator

import (
	"container/heap"

	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/formula"
	"github.com/arborists/xregions/region"
	"github.com/arborists/xregions/score"
)

// MaxSAT implements the rc2-style weighted MaxSAT seed-generator policy.
// Every candidate is a choice of one I_{i,j,k} literal per feature;
// candidates are visited in strictly decreasing total soft weight (the
// same -sum(log span) order Greedy uses), and the first one whose
// literals satisfy the accumulated hard CNF — structural bound clauses
// plus every must_contain/block_up/block_down constraint, encoded the
// way rc2_generator.py encodes them — is the seed. Because candidates
// are visited best-first, that first satisfiable candidate is already
// the maximum-volume unblocked region: no weighted-MaxSAT
// branch-and-bound procedure is needed once gini is asked only to
// validate candidates in this order rather than to optimise directly.
type MaxSAT struct {
	enc      *encoder
	blocking formula.CNF
	minScore *decimal.Decimal
	h        *ridxHeap
	seen     map[string]bool
	seq      int
}

// NewMaxSAT builds a MaxSAT generator over space.
func NewMaxSAT(space *featurespace.Space) *MaxSAT {
	g := &MaxSAT{enc: newEncoder(space)}
	g.resetFrontier()
	return g
}

func (g *MaxSAT) resetFrontier() {
	g.seen = make(map[string]bool)
	g.h = &ridxHeap{}
	heap.Init(g.h)
	root := make(map[int]int, len(g.enc.feats))
	for _, f := range g.enc.feats {
		root[f] = 0
	}
	g.seen[g.enc.key(root)] = true
	heap.Push(g.h, &ridxItem{score: g.enc.heapScore(root), seq: 0, ridx: root})
	g.seq = 1
}

func (g *MaxSAT) MustContain(r region.Region) {
	g.blocking = append(g.blocking, g.enc.mustContainClauses(r)...)
}

func (g *MaxSAT) BlockUp(r region.Region) {
	g.blocking = append(g.blocking, g.enc.blockUpClauses(r)...)
}

func (g *MaxSAT) BlockDown(r region.Region) {
	g.blocking = append(g.blocking, g.enc.blockDownClauses(r)...)
}

func (g *MaxSAT) BlockScore(s decimal.Decimal) { g.minScore = &s }

// Reset clears accumulated blocking clauses and the score floor, and
// restarts the frontier from the root.
func (g *MaxSAT) Reset() {
	g.blocking = nil
	g.minScore = nil
	g.resetFrontier()
}

// GetSeed pops the highest-weight candidate off the frontier and confirms
// it against the accumulated hard CNF via gini before returning it.
func (g *MaxSAT) GetSeed() (region.Region, bool) {
	for g.h.Len() > 0 {
		best := heap.Pop(g.h).(*ridxItem).ridx
		g.expand(best)
		r := g.enc.toRegion(best)
		if g.minScore != nil {
			v := score.Volume(r, g.enc.space)
			if !v.GreaterThan(*g.minScore) {
				continue
			}
		}
		if g.enc.satisfiable(g.blocking, g.enc.assumeLits(best)) {
			return r, true
		}
	}
	return region.Region{}, false
}

func (g *MaxSAT) expand(best map[int]int) {
	for _, f := range g.enc.feats {
		if best[f] == len(g.enc.pairs[f])-1 {
			continue
		}
		nxt := make(map[int]int, len(best))
		for k, v := range best {
			nxt[k] = v
		}
		nxt[f]++
		key := g.enc.key(nxt)
		if g.seen[key] {
			continue
		}
		g.seen[key] = true
		heap.Push(g.h, &ridxItem{score: g.enc.heapScore(nxt), seq: g.seq, ridx: nxt})
		g.seq++
	}
}
