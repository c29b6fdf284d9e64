package traverser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborists/xregions/ensemble"
	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/oracle"
	"github.com/arborists/xregions/region"
	"github.com/arborists/xregions/traverser"
)

const constantPositiveJSON = `{
  "learner": {"gradient_booster": {"model": {
    "trees": [{
      "split_indices":    [0, -1, -1],
      "split_conditions": [0.5, 1.0, 1.0],
      "left_children":    [1, -1, -1],
      "right_children":   [2, -1, -1],
      "parents":          [2147483647, 0, 0]
    }],
    "tree_info": [0]
  }}},
  "objective": "binary:logistic",
  "num_feature": 1, "num_trees": 1, "num_output_group": 1
}`

const quadrantJSON = `{
  "learner": {"gradient_booster": {"model": {
    "trees": [{
      "split_indices":    [0, 1, -1, -1, 1, -1, -1],
      "split_conditions": [0.5, 0.5, -1.0, 1.0, 0.5, 1.0, -1.0],
      "left_children":    [1, 2, -1, -1, 5, -1, -1],
      "right_children":   [4, 3, -1, -1, 6, -1, -1],
      "parents":          [2147483647, 0, 1, 1, 0, 4, 4]
    }],
    "tree_info": [0]
  }}},
  "objective": "binary:logistic",
  "num_feature": 2, "num_trees": 1, "num_output_group": 1
}`

func TestGrow_ConstantPositive(t *testing.T) {
	m, err := ensemble.Parse([]byte(constantPositiveJSON))
	require.NoError(t, err)
	o := oracle.New(m)
	sp, err := featurespace.New(map[int][]float64{0: {0.5}}, featurespace.Limits{0: {0, 1}})
	require.NoError(t, err)
	tr := traverser.New(sp, o)

	seed := tr.Anchor(map[int]float64{0: 0.3})
	require.Equal(t, region.Interval{Lower: 0, Upper: 0.5}, seed.Bounds[0])

	grown, err := tr.Grow(seed, 1)
	require.NoError(t, err)
	assert.True(t, grown.Equal(region.FromBounds(map[int]region.Interval{0: {Lower: 0, Upper: 1}}), 1e-9))
}

func TestGrow_QuadrantAlreadyMaximal(t *testing.T) {
	m, err := ensemble.Parse([]byte(quadrantJSON))
	require.NoError(t, err)
	o := oracle.New(m)
	sp, err := featurespace.New(
		map[int][]float64{0: {0.5}, 1: {0.5}},
		featurespace.Limits{0: {0, 1}, 1: {0, 1}},
	)
	require.NoError(t, err)
	tr := traverser.New(sp, o)

	seed := region.FromBounds(map[int]region.Interval{
		0: {Lower: 0, Upper: 0.5},
		1: {Lower: 0, Upper: 0.5},
	})
	grown, err := tr.Grow(seed, 0)
	require.NoError(t, err)
	assert.True(t, grown.Equal(seed, 1e-9), "the quadrant is already grow-maximal")
}

func TestEliminateVars_BothFeaturesEssential(t *testing.T) {
	m, err := ensemble.Parse([]byte(quadrantJSON))
	require.NoError(t, err)
	o := oracle.New(m)
	sp, err := featurespace.New(
		map[int][]float64{0: {0.5}, 1: {0.5}},
		featurespace.Limits{0: {0, 1}, 1: {0, 1}},
	)
	require.NoError(t, err)
	tr := traverser.New(sp, o)

	witness := region.FromBounds(map[int]region.Interval{
		0: {Lower: 0.5, Upper: 1},
		1: {Lower: 0.5, Upper: 1},
	})
	class, err := o.Predict([]float64{0.6, 0.6})
	require.NoError(t, err)

	reason, err := tr.EliminateVars(witness, class)
	require.NoError(t, err)
	assert.True(t, reason.Equal(witness, 1e-9), "neither feature can be dropped without admitting a different class")
}

func TestEliminateVars_DropsIrrelevantFeature(t *testing.T) {
	m, err := ensemble.Parse([]byte(quadrantJSON))
	require.NoError(t, err)
	o := oracle.New(m)
	sp, err := featurespace.New(
		map[int][]float64{0: {0.5}, 1: {0.5}},
		featurespace.Limits{0: {0, 1}, 1: {0, 1}},
	)
	require.NoError(t, err)
	tr := traverser.New(sp, o)

	witness := region.FromBounds(map[int]region.Interval{
		0: {Lower: 0.5, Upper: 1},
		1: {Lower: 0.5, Upper: 1},
		2: {Lower: 0.3, Upper: 0.7}, // no tree splits on feature 2
	})
	class, err := o.Predict([]float64{0.6, 0.6})
	require.NoError(t, err)

	reason, err := tr.EliminateVars(witness, class)
	require.NoError(t, err)
	_, stillBound := reason.Bounds[2]
	assert.False(t, stillBound, "an unreferenced feature must be eliminated")
	assert.Contains(t, reason.Bounds, 0)
	assert.Contains(t, reason.Bounds, 1)
}

func TestDropFullDomain(t *testing.T) {
	sp, err := featurespace.New(map[int][]float64{0: {0.5}}, featurespace.Limits{0: {0, 1}})
	require.NoError(t, err)
	tr := traverser.New(sp, nil)

	full := region.FromBounds(map[int]region.Interval{0: {Lower: 0, Upper: 1}})
	dropped := tr.DropFullDomain(full)
	assert.True(t, dropped.Empty())
}
