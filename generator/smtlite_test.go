package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/generator"
	"github.com/arborists/xregions/region"
)

func twoFeatureSpace(t *testing.T) *featurespace.Space {
	t.Helper()
	sp, err := featurespace.New(
		map[int][]float64{0: {0.5}, 1: {0.5}},
		featurespace.Limits{0: {0, 1}, 1: {0, 1}},
	)
	require.NoError(t, err)
	return sp
}

func TestSMTLite_RandFindsUnblockedSeed(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewSMTLite(sp, false, 1)

	r, ok := g.GetSeed()
	require.True(t, ok)
	for _, f := range r.Features() {
		b := r.Bounds[f]
		assert.Less(t, b.Lower, b.Upper)
	}
}

func TestSMTLite_RandExhaustsAfterBlockingEverything(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewSMTLite(sp, false, 1)

	for i := 0; i < 50; i++ {
		r, ok := g.GetSeed()
		if !ok {
			return
		}
		g.BlockUp(r)
	}
	t.Fatal("expected generator to exhaust within 50 blocked candidates")
}

func TestSMTLite_MinPrefersSmallestVolume(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewSMTLite(sp, true, 1)

	r, ok := g.GetSeed()
	require.True(t, ok)
	for _, f := range r.Features() {
		b := r.Bounds[f]
		assert.Equal(t, 0.5, b.Upper-b.Lower)
	}
}

func TestSMTLite_MustContainRestrictsCandidates(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewSMTLite(sp, false, 1)
	must := region.FromBounds(map[int]region.Interval{
		0: {Lower: 0, Upper: 0.5},
		1: {Lower: 0, Upper: 0.5},
	})
	g.MustContain(must)

	r, ok := g.GetSeed()
	require.True(t, ok)
	assert.True(t, r.Contains(must))
}

func TestSMTLite_Reset(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewSMTLite(sp, false, 1)
	r, ok := g.GetSeed()
	require.True(t, ok)
	g.BlockUp(r)
	g.Reset()

	_, ok = g.GetSeed()
	assert.True(t, ok)
}
