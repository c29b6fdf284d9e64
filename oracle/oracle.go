package oracle

import (
	"math"

	"github.com/arborists/xregions/ensemble"
	"github.com/arborists/xregions/region"
)

// leafEnc is one non-deleted leaf of a tree: its weight and the
// intersection of its path's per-feature interval constraints. A feature
// absent from Bounds is unconstrained by this leaf's path.
type leafEnc struct {
	weight float64
	bounds map[int]region.Interval
}

// treeEnc is a tree's encoding: its output group and its reachable leaves.
type treeEnc struct {
	group  int
	leaves []leafEnc
}

// Oracle is the entailment oracle for one ensemble.Model.
type Oracle struct {
	model     *ensemble.Model
	trees     []treeEnc
	numFeat   int
	objective ensemble.Objective
	calls     int
}

// New builds an Oracle over model, precomputing each tree's leaf-path
// encoding. Construction never fails on an unsupported objective; that
// is reported lazily by Predict/Entails, matching the source's failure
// semantics (objective errors surface on use, not at load time).
func New(model *ensemble.Model) *Oracle {
	o := &Oracle{
		model:     model,
		numFeat:   model.NumFeature,
		objective: model.Objective,
	}
	o.trees = make([]treeEnc, len(model.Trees))
	for ti, tree := range model.Trees {
		grp := 0
		if ti < len(model.TreeInfo) {
			grp = model.TreeInfo[ti]
		}
		var leaves []leafEnc
		for nodeID := range tree.Nodes {
			if tree.IsLeaf(nodeID) && !tree.IsDeleted(nodeID) {
				leaves = append(leaves, leafEnc{
					weight: tree.SplitCondition(nodeID),
					bounds: pathBounds(tree, nodeID),
				})
			}
		}
		o.trees[ti] = treeEnc{group: grp, leaves: leaves}
	}
	return o
}

// CallCount returns the number of satisfiability checks performed so far;
// this is the dominant cost metric the source specification tracks.
func (o *Oracle) CallCount() int { return o.calls }

// Reset clears the oracle's call counter for reuse across repeated
// explanations against the same model.
func (o *Oracle) Reset() { o.calls = 0 }

// Predict returns the ensemble's class for x by walking each tree from its
// root according to x's per-feature values and summing leaf weights per
// group. Counts as a single oracle call, mirroring the source's "fix x,
// solve for the unique leaf weights" cost.
func (o *Oracle) Predict(x []float64) (int, error) {
	o.calls++
	sums := make(map[int]float64)
	for _, tree := range o.model.Trees {
		w, err := predictOne(tree, x)
		if err != nil {
			return 0, err
		}
		grp := o.model.TreeInfo[tree.ID]
		sums[grp] += w
	}

	switch o.objective {
	case ensemble.ObjBinaryLogistic:
		if sums[0] < 0 {
			return 0, nil
		}
		return 1, nil
	case ensemble.ObjMultiSoftmax, ensemble.ObjMultiSoftprob:
		best, bestW := -1, math.Inf(-1)
		for _, g := range o.model.Groups() {
			if sums[g] > bestW {
				bestW, best = sums[g], g
			}
		}
		return best, nil
	default:
		return 0, ErrUnsupportedObjective
	}
}

// predictOne walks tree from its root to a leaf by evaluating x against
// each internal split, returning the leaf's weight.
func predictOne(t *ensemble.Tree, x []float64) (float64, error) {
	node := 0
	for !t.IsLeaf(node) {
		si := int(t.SplitIndex(node))
		if x[si] < t.SplitCondition(node) {
			node = int(t.LeftChild(node))
		} else {
			node = int(t.RightChild(node))
		}
		if node < 0 || node >= len(t.Nodes) {
			return 0, ErrUnsatPrediction
		}
	}
	if t.IsDeleted(node) {
		return 0, ErrUnsatPrediction
	}
	return t.SplitCondition(node), nil
}

// Entails reports whether every point of r predicts class c. For the
// binary objective this issues one existence check; for multi-class
// objectives it issues one check per competing group, short-circuiting on
// the first competitor that can win somewhere in r. On a false result, the
// returned point is a counter-example inside r predicting a different
// class than c.
func (o *Oracle) Entails(r region.Region, c int) (bool, []float64, error) {
	switch o.objective {
	case ensemble.ObjBinaryLogistic:
		var cond func(map[int]float64) bool
		if c == 1 {
			cond = func(s map[int]float64) bool { return s[0] < 0 }
		} else {
			cond = func(s map[int]float64) bool { return s[0] >= 0 }
		}
		if ok, cex := o.existsCounterexample(r, cond); ok {
			return false, cex, nil
		}
		return true, nil, nil
	case ensemble.ObjMultiSoftmax, ensemble.ObjMultiSoftprob:
		for _, g2 := range o.model.Groups() {
			if g2 == c {
				continue
			}
			g2Local := g2
			cond := func(s map[int]float64) bool { return s[g2Local] > s[c] }
			if ok, cex := o.existsCounterexample(r, cond); ok {
				return false, cex, nil
			}
		}
		return true, nil, nil
	default:
		return false, nil, ErrUnsupportedObjective
	}
}

// existsCounterexample searches for an assignment of x within r (one leaf
// choice per tree, intervals intersected across trees as they're chosen)
// under which cond holds over the per-group weight sums. Counts as one
// oracle call regardless of the search depth it takes internally.
func (o *Oracle) existsCounterexample(r region.Region, cond func(map[int]float64) bool) (bool, []float64) {
	o.calls++
	base := make(map[int]region.Interval, len(r.Bounds))
	for f, b := range r.Bounds {
		base[f] = b
	}
	sums := make(map[int]float64)
	return o.search(0, base, sums, cond)
}

func (o *Oracle) search(i int, intervals map[int]region.Interval, sums map[int]float64, cond func(map[int]float64) bool) (bool, []float64) {
	if i == len(o.trees) {
		if cond(sums) {
			return true, materializePoint(intervals, o.numFeat)
		}
		return false, nil
	}
	t := o.trees[i]
	for _, lf := range t.leaves {
		merged, ok := intersectAll(intervals, lf.bounds)
		if !ok {
			continue
		}
		sums[t.group] += lf.weight
		if found, cex := o.search(i+1, merged, sums, cond); found {
			sums[t.group] -= lf.weight
			return true, cex
		}
		sums[t.group] -= lf.weight
	}
	return false, nil
}

// pathBounds walks nodeID up to the root, accumulating the per-feature
// interval implied by each left ("x < c") or right ("x >= c") edge.
func pathBounds(t *ensemble.Tree, nodeID int) map[int]region.Interval {
	bounds := make(map[int]region.Interval)
	node := nodeID
	for {
		parent := t.Parent(node)
		if parent == ensemble.NoParent {
			break
		}
		pID := int(parent)
		splitIdx := int(t.SplitIndex(pID))
		splitVal := t.SplitCondition(pID)

		cur, ok := bounds[splitIdx]
		if !ok {
			cur = region.Interval{Lower: math.Inf(-1), Upper: math.Inf(1)}
		}
		if int(t.LeftChild(pID)) == node {
			if splitVal < cur.Upper {
				cur.Upper = splitVal
			}
		} else {
			if splitVal > cur.Lower {
				cur.Lower = splitVal
			}
		}
		bounds[splitIdx] = cur
		node = pID
	}
	return bounds
}

// intersectAll intersects base with add, returning the merged bounds and
// whether every feature's interval remained non-empty.
func intersectAll(base, add map[int]region.Interval) (map[int]region.Interval, bool) {
	merged := make(map[int]region.Interval, len(base)+len(add))
	for f, b := range base {
		merged[f] = b
	}
	for f, ib := range add {
		cur, ok := merged[f]
		if !ok {
			cur = region.Interval{Lower: math.Inf(-1), Upper: math.Inf(1)}
		}
		lo := math.Max(cur.Lower, ib.Lower)
		hi := math.Min(cur.Upper, ib.Upper)
		if lo >= hi {
			return nil, false
		}
		merged[f] = region.Interval{Lower: lo, Upper: hi}
	}
	return merged, true
}

// materializePoint picks one concrete point inside intervals, midpointing
// finite sides and stepping 1 unit off of any unbounded side.
func materializePoint(intervals map[int]region.Interval, numFeat int) []float64 {
	x := make([]float64, numFeat)
	for i := 0; i < numFeat; i++ {
		iv, ok := intervals[i]
		if !ok {
			x[i] = 0
			continue
		}
		switch {
		case !math.IsInf(iv.Lower, 0) && !math.IsInf(iv.Upper, 0):
			x[i] = (iv.Lower + iv.Upper) / 2
		case !math.IsInf(iv.Lower, 0):
			x[i] = iv.Lower + 1
		case !math.IsInf(iv.Upper, 0):
			x[i] = iv.Upper - 1
		default:
			x[i] = 0
		}
	}
	return x
}
