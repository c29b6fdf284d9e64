package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborists/xregions/generator"
	"github.com/arborists/xregions/region"
)

func TestGreedy_FirstSeedIsFullDomain(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewGreedy(sp)

	r, ok := g.GetSeed()
	require.True(t, ok)
	for _, f := range r.Features() {
		b := r.Bounds[f]
		assert.Equal(t, sp.DMin(f), b.Lower)
		assert.Equal(t, sp.DMax(f), b.Upper)
	}
}

func TestGreedy_BlockingNarrowsTowardSecondBest(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewGreedy(sp)

	first, ok := g.GetSeed()
	require.True(t, ok)
	g.BlockUp(first)

	second, ok := g.GetSeed()
	require.True(t, ok)
	assert.False(t, second.Equal(first, region.DefaultTolerance))
}

func TestGreedy_BlockingAppliesRegardlessOfMustContain(t *testing.T) {
	// Regression for the reference generator's blocking bug: block_up and
	// block_down must be honoured even when must_contain was never called.
	sp := twoFeatureSpace(t)
	g := generator.NewGreedy(sp)

	first, ok := g.GetSeed()
	require.True(t, ok)
	g.BlockUp(first)

	second, ok := g.GetSeed()
	require.True(t, ok)
	assert.False(t, second.Contains(first))
}

func TestGreedy_ExhaustsEventually(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewGreedy(sp)

	for i := 0; i < 50; i++ {
		r, ok := g.GetSeed()
		if !ok {
			return
		}
		g.BlockUp(r)
	}
	t.Fatal("expected generator to exhaust within 50 blocked candidates")
}
