package ensemble

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// rawModel mirrors the on-disk JSON schema: learner.gradient_booster.model
// holds the forest as parallel arrays per tree, tree_info assigns each
// tree to an output group, and the remaining fields are top-level.
type rawModel struct {
	Learner struct {
		GradientBooster struct {
			Model struct {
				Trees    []rawTree `json:"trees"`
				TreeInfo []int     `json:"tree_info"`
			} `json:"model"`
		} `json:"gradient_booster"`
	} `json:"learner"`
	Objective      string `json:"objective"`
	NumFeature     int    `json:"num_feature"`
	NumTrees       int    `json:"num_trees"`
	NumOutputGroup int    `json:"num_output_group"`
}

type rawTree struct {
	SplitIndices    []int32   `json:"split_indices"`
	SplitConditions []float64 `json:"split_conditions"`
	LeftChildren    []int32   `json:"left_children"`
	RightChildren   []int32   `json:"right_children"`
	Parents         []int32   `json:"parents"`
}

// Load parses an ensemble JSON file of the shape documented in package doc.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ensemble: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses ensemble JSON already held in memory.
func Parse(data []byte) (*Model, error) {
	var raw rawModel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ensemble: parse: %w", err)
	}

	trees := make([]*Tree, len(raw.Learner.GradientBooster.Model.Trees))
	thresholds := make(map[int][]float64)
	for ti, rt := range raw.Learner.GradientBooster.Model.Trees {
		n := len(rt.SplitIndices)
		nodes := make([]Node, n)
		for i := 0; i < n; i++ {
			nodes[i] = Node{
				SplitIndex:     rt.SplitIndices[i],
				SplitCondition: rt.SplitConditions[i],
				Left:           normalizeChild(rt.LeftChildren[i]),
				Right:          normalizeChild(rt.RightChildren[i]),
				Parent:         rt.Parents[i],
			}
		}
		tree := &Tree{ID: ti, Nodes: nodes}
		trees[ti] = tree

		for i := 0; i < n; i++ {
			if !tree.IsLeaf(i) {
				f := int(nodes[i].SplitIndex)
				thresholds[f] = append(thresholds[f], nodes[i].SplitCondition)
			}
		}
	}
	for f := range thresholds {
		thresholds[f] = sortedUnique(thresholds[f])
	}

	m := &Model{
		NumFeature:     raw.NumFeature,
		NumTrees:       raw.NumTrees,
		NumOutputGroup: raw.NumOutputGroup,
		Objective:      Objective(raw.Objective),
		Trees:          trees,
		TreeInfo:       raw.Learner.GradientBooster.Model.TreeInfo,
		Thresholds:     thresholds,
	}
	return m, nil
}

// normalizeChild maps a "no child" sentinel of -1 to itself; some exporters
// use 2147483647-style sentinels for missing children as well as for "no
// parent", so both are folded to -1 here for a single IsLeaf test.
func normalizeChild(c int32) int32 {
	if c == NoParent {
		return -1
	}
	return c
}

func sortedUnique(vals []float64) []float64 {
	cp := append([]float64(nil), vals...)
	sort.Float64s(cp)
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
