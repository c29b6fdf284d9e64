package generator

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/region"
)

// pairSpan is one candidate (lower, upper) bound for a feature.
type pairSpan struct {
	span  float64
	lower float64
	upper float64
}

type ridxItem struct {
	score float64
	seq   int
	ridx  map[int]int
}

type ridxHeap []*ridxItem

func (h ridxHeap) Len() int { return len(h) }
func (h ridxHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].seq < h[j].seq
}
func (h ridxHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *ridxHeap) Push(x any)   { *h = append(*h, x.(*ridxItem)) }
func (h *ridxHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Greedy implements the heap-based seed-generator policy: the frontier
// starts at the widest (lower, upper) pair available on every feature and
// narrows one feature at a time, always offering the largest-volume
// unblocked candidate next. The heap key is -sum(log(span_f)) so the
// lowest-score (largest total span) candidate pops first; every pop
// expands one narrower neighbour per feature before the caller's blocking
// check runs, matching the reference generator's unconditional expansion.
type Greedy struct {
	space *featurespace.Space
	bs    *blockSet
	feats []int
	pairs map[int][]pairSpan
	seen  map[string]bool
	h     *ridxHeap
	seq   int
}

// NewGreedy builds a Greedy generator over space.
func NewGreedy(space *featurespace.Space) *Greedy {
	g := &Greedy{
		space: space,
		bs:    newBlockSet(space),
		feats: space.Features(),
		pairs: make(map[int][]pairSpan),
	}
	for _, f := range g.feats {
		dom := space.Domain(f)
		var ps []pairSpan
		for j := 0; j < len(dom); j++ {
			for k := j + 1; k < len(dom); k++ {
				ps = append(ps, pairSpan{span: dom[k] - dom[j], lower: dom[j], upper: dom[k]})
			}
		}
		sort.Slice(ps, func(i, j int) bool { return ps[i].span > ps[j].span })
		g.pairs[f] = ps
	}
	g.resetFrontier()
	return g
}

func (g *Greedy) resetFrontier() {
	g.seen = make(map[string]bool)
	g.h = &ridxHeap{}
	heap.Init(g.h)
	root := make(map[int]int, len(g.feats))
	for _, f := range g.feats {
		root[f] = 0
	}
	g.seen[g.key(root)] = true
	heap.Push(g.h, &ridxItem{score: g.heapScore(root), seq: 0, ridx: root})
	g.seq = 1
}

func (g *Greedy) MustContain(r region.Region)  { g.bs.mustContain(r) }
func (g *Greedy) BlockUp(r region.Region)      { g.bs.blockUp(r) }
func (g *Greedy) BlockDown(r region.Region)    { g.bs.blockDown(r) }
func (g *Greedy) BlockScore(s decimal.Decimal) { g.bs.blockScore(s) }

// Reset clears blocking state and restarts the frontier from the root.
func (g *Greedy) Reset() {
	g.bs.reset()
	g.resetFrontier()
}

// GetSeed pops the widest unblocked candidate off the frontier.
func (g *Greedy) GetSeed() (region.Region, bool) {
	for {
		r, ok := g.next()
		if !ok {
			return region.Region{}, false
		}
		if !g.bs.blocked(r) {
			return r, true
		}
	}
}

func (g *Greedy) next() (region.Region, bool) {
	if g.h.Len() == 0 {
		return region.Region{}, false
	}
	best := heap.Pop(g.h).(*ridxItem).ridx
	for _, f := range g.feats {
		if best[f] == len(g.pairs[f])-1 {
			continue
		}
		nxt := make(map[int]int, len(best))
		for k, v := range best {
			nxt[k] = v
		}
		nxt[f]++
		key := g.key(nxt)
		if g.seen[key] {
			continue
		}
		g.seen[key] = true
		heap.Push(g.h, &ridxItem{score: g.heapScore(nxt), seq: g.seq, ridx: nxt})
		g.seq++
	}
	return g.toRegion(best), true
}

func (g *Greedy) toRegion(ridx map[int]int) region.Region {
	bounds := make(map[int]region.Interval, len(ridx))
	for f, pi := range ridx {
		p := g.pairs[f][pi]
		bounds[f] = region.Interval{Lower: p.lower, Upper: p.upper}
	}
	return region.FromBounds(bounds)
}

func (g *Greedy) heapScore(ridx map[int]int) float64 {
	var total float64
	for f, pi := range ridx {
		total += math.Log(g.pairs[f][pi].span)
	}
	return -total
}

func (g *Greedy) key(ridx map[int]int) string {
	s := ""
	for _, f := range g.feats {
		s += fmt.Sprintf("%d:%d,", f, ridx[f])
	}
	return s
}
