package score_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/region"
	"github.com/arborists/xregions/score"
)

func TestVolume_Universe(t *testing.T) {
	sp, err := featurespace.New(map[int][]float64{0: {0.5}}, featurespace.Limits{0: {0, 1}})
	require.NoError(t, err)

	v := score.Volume(region.New(), sp)
	assert.True(t, v.Equal(decimal.NewFromInt(1)))
}

func TestVolume_HalfSpan(t *testing.T) {
	sp, err := featurespace.New(map[int][]float64{0: {0.5}}, featurespace.Limits{0: {0, 1}})
	require.NoError(t, err)

	r := region.FromBounds(map[int]region.Interval{0: {Lower: 0, Upper: 0.5}})
	v := score.Volume(r, sp)
	assert.True(t, v.Equal(decimal.NewFromFloat(0.5)))
}

func TestVolume_Multiplicative(t *testing.T) {
	sp, err := featurespace.New(
		map[int][]float64{0: {0.5}, 1: {0.5}},
		featurespace.Limits{0: {0, 1}, 1: {0, 1}},
	)
	require.NoError(t, err)

	r := region.FromBounds(map[int]region.Interval{
		0: {Lower: 0, Upper: 0.5},
		1: {Lower: 0, Upper: 0.5},
	})
	v := score.Volume(r, sp)
	assert.True(t, v.Equal(decimal.NewFromFloat(0.25)))
}
