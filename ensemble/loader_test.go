package ensemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborists/xregions/ensemble"
)

const singleStumpJSON = `{
  "learner": {
    "gradient_booster": {
      "model": {
        "trees": [
          {
            "split_indices":    [0, -1, -1],
            "split_conditions": [0.5, -1.0, 1.0],
            "left_children":    [1, -1, -1],
            "right_children":   [2, -1, -1],
            "parents":          [2147483647, 0, 0]
          }
        ],
        "tree_info": [0]
      }
    }
  },
  "objective": "binary:logistic",
  "num_feature": 1,
  "num_trees": 1,
  "num_output_group": 1
}`

func TestParse_SingleStump(t *testing.T) {
	m, err := ensemble.Parse([]byte(singleStumpJSON))
	require.NoError(t, err)

	assert.Equal(t, ensemble.ObjBinaryLogistic, m.Objective)
	assert.Equal(t, 1, m.NumTrees)
	assert.Equal(t, []float64{0.5}, m.Thresholds[0])

	tree := m.Trees[0]
	assert.False(t, tree.IsLeaf(0))
	assert.True(t, tree.IsLeaf(1))
	assert.True(t, tree.IsLeaf(2))
	assert.Equal(t, ensemble.NoParent, tree.Parent(0))
	assert.False(t, tree.IsDeleted(1))
	assert.False(t, tree.IsDeleted(2))
}

func TestParse_DeletedLeaf(t *testing.T) {
	// Node 2 is never referenced as a child: it is an orphaned ("deleted") leaf.
	raw := `{
      "learner": {"gradient_booster": {"model": {
        "trees": [{
          "split_indices":    [0, -1, -1],
          "split_conditions": [0.5, 1.0, -1.0],
          "left_children":    [1, -1, -1],
          "right_children":   [1, -1, -1],
          "parents":          [2147483647, 0, 0]
        }],
        "tree_info": [0]
      }}},
      "objective": "binary:logistic",
      "num_feature": 1, "num_trees": 1, "num_output_group": 1
    }`
	m, err := ensemble.Parse([]byte(raw))
	require.NoError(t, err)

	tree := m.Trees[0]
	assert.False(t, tree.IsDeleted(1))
	assert.True(t, tree.IsDeleted(2))
}

func TestModel_Groups(t *testing.T) {
	m := &ensemble.Model{TreeInfo: []int{1, 0, 1, 2}}
	assert.Equal(t, []int{0, 1, 2}, m.Groups())
}
