package generator

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/formula"
	"github.com/arborists/xregions/region"
)

// ijk names one candidate (lower, upper) domain-index pair for a feature.
type ijk struct{ j, k int }

// encoder builds the l_{i,j}/u_{i,j}/I_{i,j,k} Boolean encoding of region
// bounds shared by the MaxSAT-family generators, following
// rc2_generator.py's _init_hard_bounds / _init_hard_intervals: exactly one
// lower-bound index and one upper-bound index per feature, l_{i,j}
// forbidding every u_{i,k} at k<=j, and I_{i,j,k} <-> (l_{i,j} and u_{i,k})
// with exactly one I true per feature.
type encoder struct {
	space   *featurespace.Space
	feats   []int
	nextVar int
	lVar    map[[2]int]int
	uVar    map[[2]int]int
	iVar    map[[3]int]int
	pairs   map[int][]ijk // per feature, sorted by span descending
	hard    formula.CNF
}

func newEncoder(space *featurespace.Space) *encoder {
	e := &encoder{
		space:   space,
		feats:   space.Features(),
		nextVar: 1,
		lVar:    make(map[[2]int]int),
		uVar:    make(map[[2]int]int),
		iVar:    make(map[[3]int]int),
		pairs:   make(map[int][]ijk),
	}
	e.build()
	return e
}

func (e *encoder) freshVar() int {
	v := e.nextVar
	e.nextVar++
	return v
}

func (e *encoder) l(f, j int) formula.Lit {
	key := [2]int{f, j}
	if v, ok := e.lVar[key]; ok {
		return formula.Lit(v)
	}
	v := e.freshVar()
	e.lVar[key] = v
	return formula.Lit(v)
}

func (e *encoder) u(f, j int) formula.Lit {
	key := [2]int{f, j}
	if v, ok := e.uVar[key]; ok {
		return formula.Lit(v)
	}
	v := e.freshVar()
	e.uVar[key] = v
	return formula.Lit(v)
}

func (e *encoder) interval(f, j, k int) formula.Lit {
	key := [3]int{f, j, k}
	if v, ok := e.iVar[key]; ok {
		return formula.Lit(v)
	}
	v := e.freshVar()
	e.iVar[key] = v
	return formula.Lit(v)
}

func (e *encoder) build() {
	var allHard []formula.Formula
	for _, f := range e.feats {
		dom := e.space.Domain(f)
		m := len(dom)
		for j := 0; j < m; j++ {
			e.l(f, j)
			e.u(f, j)
		}
		allHard = append(allHard, formula.Not{X: formula.Var(e.l(f, m-1))})
		allHard = append(allHard, formula.Not{X: formula.Var(e.u(f, 0))})
		for j := 1; j < m-1; j++ {
			var us []formula.Formula
			for k := 0; k <= j; k++ {
				us = append(us, formula.Var(e.u(f, k)))
			}
			allHard = append(allHard, formula.Implies{A: formula.Var(e.l(f, j)), B: formula.Not{X: formula.Or{Xs: us}}})

			var ls []formula.Formula
			for k := j; k < m; k++ {
				ls = append(ls, formula.Var(e.l(f, k)))
			}
			allHard = append(allHard, formula.Implies{A: formula.Var(e.u(f, j)), B: formula.Not{X: formula.Or{Xs: ls}}})
		}

		var iLits []formula.Lit
		var ps []ijk
		for j := 0; j < m; j++ {
			for k := j + 1; k < m; k++ {
				iv := e.interval(f, j, k)
				iLits = append(iLits, iv)
				allHard = append(allHard, formula.Iff{
					A: formula.And{Xs: []formula.Formula{formula.Var(e.l(f, j)), formula.Var(e.u(f, k))}},
					B: formula.Var(iv),
				})
				ps = append(ps, ijk{j, k})
			}
		}
		allHard = append(allHard, formula.EqualsOne{Xs: iLits})
		sort.Slice(ps, func(a, b int) bool {
			return (dom[ps[a].k] - dom[ps[a].j]) > (dom[ps[b].k] - dom[ps[b].j])
		})
		e.pairs[f] = ps
	}
	e.hard = formula.ToCNF(formula.And{Xs: allHard})
}

// didx maps r's bounds to (lowerIdx, upperIdx) pairs into each constrained
// feature's domain.
func (e *encoder) didx(r region.Region) map[int][2]int {
	out := make(map[int][2]int, len(r.Bounds))
	for f, b := range r.Bounds {
		lj, _ := e.space.IndexOf(f, b.Lower)
		uk, _ := e.space.IndexOf(f, b.Upper)
		out[f] = [2]int{lj, uk}
	}
	return out
}

// mustContainClauses encodes "every constrained feature's chosen bound
// brackets r's own bound", per SeedGenerator.must_contain.
func (e *encoder) mustContainClauses(r region.Region) formula.CNF {
	var conj []formula.Formula
	for f, idx := range e.didx(r) {
		dom := e.space.Domain(f)
		var ls []formula.Formula
		for j := 0; j <= idx[0]; j++ {
			ls = append(ls, formula.Var(e.l(f, j)))
		}
		conj = append(conj, formula.Or{Xs: ls})
		var us []formula.Formula
		for k := idx[1]; k < len(dom); k++ {
			us = append(us, formula.Var(e.u(f, k)))
		}
		conj = append(conj, formula.Or{Xs: us})
	}
	return formula.ToCNF(formula.And{Xs: conj})
}

// blockUpClauses forbids every superset of r: at least one feature's bound
// must move strictly outward relative to r.
func (e *encoder) blockUpClauses(r region.Region) formula.CNF {
	var disj []formula.Formula
	for f, idx := range e.didx(r) {
		dom := e.space.Domain(f)
		if idx[0] < len(dom)-1 {
			var ls []formula.Formula
			for j := idx[0] + 1; j < len(dom); j++ {
				ls = append(ls, formula.Var(e.l(f, j)))
			}
			disj = append(disj, formula.Or{Xs: ls})
		}
		if idx[1] > 0 {
			var us []formula.Formula
			for k := 0; k < idx[1]; k++ {
				us = append(us, formula.Var(e.u(f, k)))
			}
			disj = append(disj, formula.Or{Xs: us})
		}
	}
	return formula.ToCNF(formula.Or{Xs: disj})
}

// blockDownClauses forbids every subset of r: at least one feature's bound
// must move strictly inward relative to r.
func (e *encoder) blockDownClauses(r region.Region) formula.CNF {
	var disj []formula.Formula
	for f, idx := range e.didx(r) {
		dom := e.space.Domain(f)
		if idx[0] > 0 {
			var ls []formula.Formula
			for j := 0; j < idx[0]; j++ {
				ls = append(ls, formula.Var(e.l(f, j)))
			}
			disj = append(disj, formula.Or{Xs: ls})
		}
		if idx[1] < len(dom)-1 {
			var us []formula.Formula
			for k := idx[1] + 1; k < len(dom); k++ {
				us = append(us, formula.Var(e.u(f, k)))
			}
			disj = append(disj, formula.Or{Xs: us})
		}
	}
	return formula.ToCNF(formula.Or{Xs: disj})
}

// ridx indexes, per feature, into that feature's descending-span pairs
// list — ridx[f]==0 names the widest candidate interval for feature f.

func (e *encoder) heapScore(ridx map[int]int) float64 {
	var total float64
	for f, pi := range ridx {
		dom := e.space.Domain(f)
		p := e.pairs[f][pi]
		total += math.Log(dom[p.k] - dom[p.j])
	}
	return -total
}

func (e *encoder) key(ridx map[int]int) string {
	s := ""
	for _, f := range e.feats {
		s += fmt.Sprintf("%d:%d,", f, ridx[f])
	}
	return s
}

func (e *encoder) toRegion(ridx map[int]int) region.Region {
	bounds := make(map[int]region.Interval, len(ridx))
	for f, pi := range ridx {
		dom := e.space.Domain(f)
		p := e.pairs[f][pi]
		bounds[f] = region.Interval{Lower: dom[p.j], Upper: dom[p.k]}
	}
	return region.FromBounds(bounds)
}

func (e *encoder) assumeLits(ridx map[int]int) []formula.Lit {
	lits := make([]formula.Lit, 0, len(ridx))
	for f, pi := range ridx {
		p := e.pairs[f][pi]
		lits = append(lits, e.interval(f, p.j, p.k))
	}
	return lits
}

// satisfiable builds a fresh gini instance from e.hard plus extra, assumes
// assume, and reports whether the resulting instance is satisfiable.
func (e *encoder) satisfiable(extra formula.CNF, assume []formula.Lit) bool {
	g := gini.New()
	addCNF(g, e.hard)
	addCNF(g, extra)
	addAssumptions(g, assume)
	return g.Solve() == 1
}

func addCNF(g *gini.Gini, cnf formula.CNF) {
	for _, clause := range cnf {
		for _, l := range clause {
			g.Add(z.Dimacs(int(l)))
		}
		g.Add(z.Dimacs(0))
	}
}

func addAssumptions(g *gini.Gini, lits []formula.Lit) {
	ms := make([]z.Lit, len(lits))
	for i, l := range lits {
		ms[i] = z.Dimacs(int(l))
	}
	g.Assume(ms...)
}
