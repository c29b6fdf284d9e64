package generator

import (
	"container/heap"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/region"
	"github.com/arborists/xregions/score"
)

// IncrementalMaxSAT implements the hitting-set-flavoured seed-generator
// policy named incrmaxsat in spec.md: a single persistent gini instance
// holds the hard encoding, and every MustContain/BlockUp/BlockDown call
// hard-extends that same instance with new clauses instead of rebuilding
// it from scratch, matching "hard-extend the hitting-set instance after
// each blocking operation". As with MaxSAT, candidates are visited in
// decreasing weight order and validated by assumption-based solves, so
// the first satisfiable candidate is the maximum-volume unblocked
// region.
//
// The reference generator this is ported from leaves block_down
// unimplemented, so enumerate_explanations using it can revisit subsets
// of regions already yielded as entailing. BlockDown is implemented here
// as a symmetric hard-extension of the same persistent instance.
type IncrementalMaxSAT struct {
	enc      *encoder
	solver   *gini.Gini
	minScore *decimal.Decimal
	h        *ridxHeap
	seen     map[string]bool
	seq      int
}

// NewIncrementalMaxSAT builds an IncrementalMaxSAT generator over space.
func NewIncrementalMaxSAT(space *featurespace.Space) *IncrementalMaxSAT {
	g := &IncrementalMaxSAT{enc: newEncoder(space)}
	g.solver = gini.New()
	addCNF(g.solver, g.enc.hard)
	g.resetFrontier()
	return g
}

func (g *IncrementalMaxSAT) resetFrontier() {
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

func (g *IncrementalMaxSAT) MustContain(r region.Region) {
	addCNF(g.solver, g.enc.mustContainClauses(r))
}

func (g *IncrementalMaxSAT) BlockUp(r region.Region) {
	addCNF(g.solver, g.enc.blockUpClauses(r))
}

func (g *IncrementalMaxSAT) BlockDown(r region.Region) {
	addCNF(g.solver, g.enc.blockDownClauses(r))
}

func (g *IncrementalMaxSAT) BlockScore(s decimal.Decimal) { g.minScore = &s }

// Reset drops the persistent instance, rebuilding it from only the hard
// structural clauses, and restarts the frontier from the root.
func (g *IncrementalMaxSAT) Reset() {
	g.solver = gini.New()
	addCNF(g.solver, g.enc.hard)
	g.minScore = nil
	g.resetFrontier()
}

// GetSeed pops the highest-weight candidate off the frontier and confirms
// it against the persistent instance via an assumption-based solve.
func (g *IncrementalMaxSAT) GetSeed() (region.Region, bool) {
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
		lits := g.enc.assumeLits(best)
		ms := make([]z.Lit, len(lits))
		for i, l := range lits {
			ms[i] = z.Dimacs(int(l))
		}
		g.solver.Assume(ms...)
		if g.solver.Solve() == 1 {
			return r, true
		}
	}
	return region.Region{}, false
}

func (g *IncrementalMaxSAT) expand(best map[int]int) {
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
