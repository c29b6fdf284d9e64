// Package explain implements the explanation program of spec.md §4.7:
// Program.Explain computes a single grown region around one anchor point,
// and Program.Enumerate drives the generator/oracle/traverser loop that
// yields a (possibly truncated) sequence of maximal entailing regions.
package explain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/generator"
	"github.com/arborists/xregions/oracle"
	"github.com/arborists/xregions/region"
	"github.com/arborists/xregions/score"
	"github.com/arborists/xregions/traverser"
	"github.com/arborists/xregions/xlog"
)

// Program bundles one run's collaborators: the feature-space metadata,
// the entailment oracle, the lattice traverser, and the seed generator
// named by the active configuration. All four are scoped to the
// program's lifetime, per spec.md §5.
type Program struct {
	space   *featurespace.Space
	oracle  *oracle.Oracle
	trav    *traverser.Traverser
	gen     generator.Generator
	trivial bool // whether gen's policy emits its maximum-volume seed first
	log     *xlog.Logger
}

// New builds a Program. trivial reports whether gen's policy is
// guaranteed to yield its maximum-volume candidate first (the MaxSAT,
// greedy, UCS and incremental families); callers typically pass
// config.TriviallyOptimal(seedGen). log may be nil, in which case
// xlog.Default (Info and above, to stderr) is used.
func New(space *featurespace.Space, o *oracle.Oracle, gen generator.Generator, trivial bool, log *xlog.Logger) *Program {
	if log == nil {
		log = xlog.Default()
	}
	return &Program{
		space:   space,
		oracle:  o,
		trav:    traverser.New(space, o),
		gen:     gen,
		trivial: trivial,
		log:     log,
	}
}

// Score returns r's normalised volume score with respect to p's feature
// space, per spec.md §4.7's "Volume score".
func (p *Program) Score(r region.Region) decimal.Decimal {
	return score.Volume(r, p.space)
}

func sliceToMap(x []float64) map[int]float64 {
	m := make(map[int]float64, len(x))
	for i, v := range x {
		m[i] = v
	}
	return m
}

// Explain computes c = predict(x), maps x to its anchor region, grows it
// once, and returns the grown region and predicted class.
func (p *Program) Explain(x []float64) (region.Region, int, error) {
	c, err := p.oracle.Predict(x)
	if err != nil {
		return region.Region{}, 0, fmt.Errorf("explain: predict: %w", err)
	}
	anchor := p.trav.Anchor(sliceToMap(x))
	grown, err := p.trav.Grow(anchor, c)
	if err != nil {
		return region.Region{}, 0, fmt.Errorf("explain: grow: %w", err)
	}
	return grown, c, nil
}

// Enumerate starts a Stream that yields the (possibly truncated) sequence
// of explanations for x, per spec.md §4.7's enumerate_explanations. When
// blockScore is true, each entailing yield tightens the generator to
// require strictly larger score on future seeds.
func (p *Program) Enumerate(x []float64, blockScore bool) (*Stream, error) {
	c, err := p.oracle.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("explain: predict: %w", err)
	}
	anchor := p.trav.Anchor(sliceToMap(x))
	p.gen.MustContain(anchor)
	return &Stream{
		p:          p,
		c:          c,
		blockScore: blockScore,
		maxScore:   decimal.Zero,
	}, nil
}

// Stats is the per-run statistics bundle mirrored into bench CSV rows,
// per SPEC_FULL.md §8's "Per-run statistics logging".
type Stats struct {
	OracleCalls       int
	EntailingCount    int
	NonEntailingCount int
	MaxScore          decimal.Decimal
}

func (p *Program) logStats(s Stats) {
	p.log.Info("explanation step",
		"oracle_calls", s.OracleCalls,
		"entailing", s.EntailingCount,
		"non_entailing", s.NonEntailingCount,
		"max_score", s.MaxScore.String(),
	)
}
