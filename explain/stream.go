package explain

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/region"
	"github.com/arborists/xregions/score"
)

// Stream is a pull-based, restartable sequence of explanations for one
// anchor point. Cancellation is external: the caller stops calling Next;
// internal generator/oracle/traverser state is held until the Stream is
// dropped, per spec.md §5.
type Stream struct {
	p          *Program
	c          int
	blockScore bool

	maxScore   decimal.Decimal
	bestRegion region.Region
	haveBest   bool

	entailingCount    int
	nonEntailingCount int
	sawFirstEntailing bool
	done              bool
}

// Stats returns the running statistics accumulated so far.
func (s *Stream) Stats() Stats {
	return Stats{
		OracleCalls:       s.p.oracle.CallCount(),
		EntailingCount:    s.entailingCount,
		NonEntailingCount: s.nonEntailingCount,
		MaxScore:          s.maxScore,
	}
}

// BestRegion returns the highest-scoring entailing region observed so
// far, and whether any entailing region has been observed at all.
func (s *Stream) BestRegion() (region.Region, bool) {
	return s.bestRegion, s.haveBest
}

// Next performs one seed+check+block cycle and returns the next region
// to emit, or ok=false once the generator is exhausted. ctx is checked
// once per cycle so long-running enumerations can be cancelled between
// seed requests.
func (s *Stream) Next(ctx context.Context) (region.Region, bool, error) {
	if s.done {
		return region.Region{}, false, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			s.done = true
			return region.Region{}, false, err
		}

		r, ok := s.p.gen.GetSeed()
		if !ok {
			s.done = true
			s.p.logStats(s.Stats())
			return region.Region{}, false, nil
		}

		entails, cexample, err := s.p.oracle.Entails(r, s.c)
		if err != nil {
			s.done = true
			return region.Region{}, false, fmt.Errorf("explain: entails: %w", err)
		}

		if !entails {
			if err := s.handleNonEntailing(r, cexample); err != nil {
				s.done = true
				return region.Region{}, false, err
			}
			s.p.logStats(s.Stats())
			continue
		}

		out, err := s.handleEntailing(r)
		if err != nil {
			s.done = true
			return region.Region{}, false, err
		}
		s.p.logStats(s.Stats())

		if s.p.trivial && s.entailingCount == 1 {
			// The first entailing seed from a trivially optimal generator
			// is, by construction, the maximum-volume region: nothing
			// later in the stream can beat it.
			s.done = true
		}
		return out, true, nil
	}
}

func (s *Stream) handleNonEntailing(r region.Region, cexample []float64) error {
	s.nonEntailingCount++

	other, err := s.p.oracle.Predict(cexample)
	if err != nil {
		return fmt.Errorf("explain: predict counterexample: %w", err)
	}
	witness := s.p.trav.Anchor(sliceToMap(cexample))
	reason, err := s.p.trav.EliminateVars(witness, other)
	if err != nil {
		return fmt.Errorf("explain: eliminate_vars: %w", err)
	}
	s.p.gen.BlockUp(reason)

	if s.blockScore {
		if improved, better, err := s.checkEntailingAdjacents(reason); err != nil {
			return err
		} else if improved {
			s.adopt(better)
		}
	}
	return nil
}

func (s *Stream) handleEntailing(r region.Region) (region.Region, error) {
	s.entailingCount++

	grown := r
	if !s.p.trivial {
		var err error
		grown, err = s.p.trav.Grow(r, s.c)
		if err != nil {
			return region.Region{}, fmt.Errorf("explain: grow: %w", err)
		}
	}
	grown = s.p.trav.DropFullDomain(grown)
	s.p.gen.BlockDown(grown)
	s.adopt(grown)

	if s.blockScore {
		s.p.gen.BlockScore(s.maxScore)
	}
	return grown, nil
}

// adopt records r as the new best region if it beats the running maximum.
func (s *Stream) adopt(r region.Region) {
	v := score.Volume(r, s.p.space)
	if !s.haveBest || v.GreaterThan(s.maxScore) {
		s.maxScore = v
		s.bestRegion = r
		s.haveBest = true
	}
}

// checkEntailingAdjacents implements SPEC_FULL.md §8's supplemented
// _check_entailing_adjacents: having just eliminated reason into a
// minimal non-entailing box, probe the single-step-wider region on each
// side of each of its features. If one already entails the target class
// and, once grown, would beat the running max_score, it is adopted
// directly without waiting for the generator to surface it.
func (s *Stream) checkEntailingAdjacents(reason region.Region) (bool, region.Region, error) {
	improved := false
	var best region.Region

	for _, f := range reason.Features() {
		b := reason.Bounds[f]
		dom := s.p.space.Domain(f)

		if idx, ok := s.p.space.IndexOf(f, b.Lower); ok && idx > 0 {
			widened := reason.Clone()
			widened.Bounds[f] = region.Interval{Lower: dom[idx-1], Upper: b.Upper}
			ok2, adopted, err := s.tryAdjacent(widened)
			if err != nil {
				return false, region.Region{}, err
			}
			if ok2 {
				improved = true
				best = adopted
			}
		}
		if idx, ok := s.p.space.IndexOf(f, b.Upper); ok && idx < len(dom)-1 {
			widened := reason.Clone()
			widened.Bounds[f] = region.Interval{Lower: b.Lower, Upper: dom[idx+1]}
			ok2, adopted, err := s.tryAdjacent(widened)
			if err != nil {
				return false, region.Region{}, err
			}
			if ok2 {
				improved = true
				best = adopted
			}
		}
	}
	return improved, best, nil
}

func (s *Stream) tryAdjacent(widened region.Region) (bool, region.Region, error) {
	entails, _, err := s.p.oracle.Entails(widened, s.c)
	if err != nil {
		return false, region.Region{}, err
	}
	if !entails {
		return false, region.Region{}, nil
	}

	grown := widened
	if !s.p.trivial {
		grown, err = s.p.trav.Grow(widened, s.c)
		if err != nil {
			return false, region.Region{}, err
		}
	}
	grown = s.p.trav.DropFullDomain(grown)

	v := score.Volume(grown, s.p.space)
	if s.haveBest && !v.GreaterThan(s.maxScore) {
		return false, region.Region{}, nil
	}
	return true, grown, nil
}
