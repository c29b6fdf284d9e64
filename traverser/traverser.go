package traverser

import (
	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/region"
)

// Oracle is the entailment collaborator a Traverser needs. oracle.Oracle
// satisfies it directly.
type Oracle interface {
	Entails(r region.Region, c int) (bool, []float64, error)
}

// Traverser grows, shrinks, and eliminates variables from regions over one
// feature space, using oracle to test entailment at each step.
type Traverser struct {
	space  *featurespace.Space
	oracle Oracle
}

// New builds a Traverser over space, querying oracle for entailment checks.
func New(space *featurespace.Space, oracle Oracle) *Traverser {
	return &Traverser{space: space, oracle: oracle}
}

// Grow expands r along every feature and side, in ascending feature-index
// order and lo-side-then-hi-side per feature, to the largest bound that
// keeps entails(r, c) true on each side independently. The result is
// grow-maximal: no single-feature, single-side expansion from it still
// entails c.
func (t *Traverser) Grow(r region.Region, c int) (region.Region, error) {
	cur := r.Clone()
	for _, f := range cur.Features() {
		var err error
		cur, err = t.growSide(cur, c, f, true)
		if err != nil {
			return region.Region{}, err
		}
		cur, err = t.growSide(cur, c, f, false)
		if err != nil {
			return region.Region{}, err
		}
	}
	return cur, nil
}

// growSide expands r's bound on feat's lo (lowSide) or hi side to the
// farthest domain point that keeps entailment, via binary search over the
// steps between the current bound and the domain's extreme on that side.
func (t *Traverser) growSide(r region.Region, c int, feat int, lowSide bool) (region.Region, error) {
	dom := t.space.Domain(feat)
	b, ok := r.Bounds[feat]
	if !ok {
		return r, nil
	}
	lowerIdx, lok := t.space.IndexOf(feat, b.Lower)
	upperIdx, uok := t.space.IndexOf(feat, b.Upper)
	if !lok || !uok {
		return r, nil
	}

	var maxSteps int
	if lowSide {
		maxSteps = lowerIdx
	} else {
		maxSteps = len(dom) - 1 - upperIdx
	}
	if maxSteps == 0 {
		return r, nil
	}

	test := func(steps int) (bool, error) {
		cand := r.Clone()
		if lowSide {
			cand.Bounds[feat] = region.Interval{Lower: dom[lowerIdx-steps], Upper: b.Upper}
		} else {
			cand.Bounds[feat] = region.Interval{Lower: b.Lower, Upper: dom[upperIdx+steps]}
		}
		ok, _, err := t.oracle.Entails(cand, c)
		return ok, err
	}

	best, err := bsearchFarthest(0, maxSteps, test)
	if err != nil {
		return region.Region{}, err
	}

	out := r.Clone()
	if lowSide {
		out.Bounds[feat] = region.Interval{Lower: dom[lowerIdx-best], Upper: b.Upper}
	} else {
		out.Bounds[feat] = region.Interval{Lower: b.Lower, Upper: dom[upperIdx+best]}
	}
	return out, nil
}

// Shrink contracts r toward anchor on every feature and side, to the
// largest per-side contraction that still fails to entail c. It mirrors
// Grow: the binary search moves from the (assumed non-entailing) current
// bound toward anchor's bound, stopping at the farthest point still
// non-entailing. Present for parity with the source specification; the
// explanation program does not call it directly, relying on EliminateVars
// instead to produce minimal non-entailing reasons.
func (t *Traverser) Shrink(r, anchor region.Region, c int) (region.Region, error) {
	cur := r.Clone()
	for _, f := range cur.Features() {
		var err error
		cur, err = t.shrinkSide(cur, anchor, c, f, true)
		if err != nil {
			return region.Region{}, err
		}
		cur, err = t.shrinkSide(cur, anchor, c, f, false)
		if err != nil {
			return region.Region{}, err
		}
	}
	return cur, nil
}

func (t *Traverser) shrinkSide(r, anchor region.Region, c int, feat int, lowSide bool) (region.Region, error) {
	dom := t.space.Domain(feat)
	b, ok := r.Bounds[feat]
	if !ok {
		return r, nil
	}
	ab, aok := anchor.Bounds[feat]
	if !aok {
		return r, nil
	}
	curIdx, cok := t.space.IndexOf(feat, b.Lower)
	curUIdx, cuok := t.space.IndexOf(feat, b.Upper)
	anchorLoIdx, alok := t.space.IndexOf(feat, ab.Lower)
	anchorHiIdx, ahok := t.space.IndexOf(feat, ab.Upper)
	if !cok || !cuok || !alok || !ahok {
		return r, nil
	}

	var maxSteps int
	if lowSide {
		maxSteps = anchorLoIdx - curIdx
	} else {
		maxSteps = curUIdx - anchorHiIdx
	}
	if maxSteps <= 0 {
		return r, nil
	}

	test := func(steps int) (bool, error) {
		cand := r.Clone()
		if lowSide {
			cand.Bounds[feat] = region.Interval{Lower: dom[curIdx+steps], Upper: b.Upper}
		} else {
			cand.Bounds[feat] = region.Interval{Lower: b.Lower, Upper: dom[curUIdx-steps]}
		}
		ok, _, err := t.oracle.Entails(cand, c)
		return !ok, err
	}

	best, err := bsearchFarthest(0, maxSteps, test)
	if err != nil {
		return region.Region{}, err
	}

	out := r.Clone()
	if lowSide {
		out.Bounds[feat] = region.Interval{Lower: dom[curIdx+best], Upper: b.Upper}
	} else {
		out.Bounds[feat] = region.Interval{Lower: b.Lower, Upper: dom[curUIdx-best]}
	}
	return out, nil
}

// EliminateVars generalizes a non-entailing witness r, known to be
// uniformly classified as other (the class the offending counter-example
// predicted), into a minimal non-entailing reason for the target class:
// it widens r one feature at a time to that feature's full domain,
// keeping the widened bound only when the larger box still entails
// other entirely. A feature survives the elimination pass (keeps its
// original, narrower bound) exactly when widening it would let some
// point outside class other into the box. The result is the most general
// region still guaranteed to avoid the target class, so block_up on it
// covers the largest possible superset of wasted future candidates.
func (t *Traverser) EliminateVars(r region.Region, other int) (region.Region, error) {
	result := r.Clone()
	for _, f := range r.Features() {
		trial := result.Clone()
		delete(trial.Bounds, f)
		ok, _, err := t.oracle.Entails(trial, other)
		if err != nil {
			return region.Region{}, err
		}
		if ok {
			result = trial
		}
	}
	return result, nil
}

// DropFullDomain removes every feature from r whose bound already spans
// that feature's full extended domain, per the boundary rule that a
// region spanning the whole domain on a feature drops that feature before
// blocking.
func (t *Traverser) DropFullDomain(r region.Region) region.Region {
	out := r.Clone()
	for f, b := range r.Bounds {
		if b.Lower <= t.space.DMin(f) && b.Upper >= t.space.DMax(f) {
			delete(out.Bounds, f)
		}
	}
	return out
}

// Anchor returns the smallest elementary hyperrectangle containing x.
func (t *Traverser) Anchor(x map[int]float64) region.Region {
	return t.space.Anchor(x)
}

// bsearchFarthest finds the farthest step in [0, maxSteps] for which test
// holds, given that test(0) is assumed true. It follows the source
// specification's binary-search shape: left is a known-valid step, right a
// known-invalid one (or, if test(maxSteps) holds, the whole range is
// valid and no search is needed); the loop narrows until right-left <= 1
// and returns left.
func bsearchFarthest(low, maxSteps int, test func(int) (bool, error)) (int, error) {
	farOK, err := test(maxSteps)
	if err != nil {
		return 0, err
	}
	if farOK {
		return maxSteps, nil
	}

	left, right := low, maxSteps
	for right-left > 1 {
		mid := (left + right) / 2
		ok, err := test(mid)
		if err != nil {
			return 0, err
		}
		if ok {
			left = mid
		} else {
			right = mid
		}
	}
	return left, nil
}
