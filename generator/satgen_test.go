package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborists/xregions/generator"
)

func TestMaxSAT_FirstSeedIsGloballyMaximal(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewMaxSAT(sp)

	r, ok := g.GetSeed()
	require.True(t, ok)
	for _, f := range r.Features() {
		b := r.Bounds[f]
		assert.Equal(t, sp.DMin(f), b.Lower)
		assert.Equal(t, sp.DMax(f), b.Upper)
	}
}

func TestMaxSAT_BlockUpNarrowsNextSeed(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewMaxSAT(sp)

	first, ok := g.GetSeed()
	require.True(t, ok)
	g.BlockUp(first)

	second, ok := g.GetSeed()
	require.True(t, ok)
	assert.NotEqual(t, first.Bounds, second.Bounds)
}

func TestMaxSAT_ExhaustsEventually(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewMaxSAT(sp)

	for i := 0; i < 50; i++ {
		r, ok := g.GetSeed()
		if !ok {
			return
		}
		g.BlockUp(r)
	}
	t.Fatal("expected generator to exhaust within 50 blocked candidates")
}

func TestStratified_FirstSeedIsGloballyMaximal(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewStratified(sp)

	r, ok := g.GetSeed()
	require.True(t, ok)
	for _, f := range r.Features() {
		b := r.Bounds[f]
		assert.Equal(t, sp.DMin(f), b.Lower)
		assert.Equal(t, sp.DMax(f), b.Upper)
	}
}

func TestStratified_EscalatesPastExhaustedStratum(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewStratified(sp)

	first, ok := g.GetSeed()
	require.True(t, ok)
	g.BlockUp(first)

	second, ok := g.GetSeed()
	require.True(t, ok)
	assert.NotEqual(t, first.Bounds, second.Bounds)
}

func TestIncrementalMaxSAT_FirstSeedIsGloballyMaximal(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewIncrementalMaxSAT(sp)

	r, ok := g.GetSeed()
	require.True(t, ok)
	for _, f := range r.Features() {
		b := r.Bounds[f]
		assert.Equal(t, sp.DMin(f), b.Lower)
		assert.Equal(t, sp.DMax(f), b.Upper)
	}
}

func TestIncrementalMaxSAT_BlockDownForbidsSubsets(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewIncrementalMaxSAT(sp)

	top, ok := g.GetSeed()
	require.True(t, ok)
	g.BlockUp(top) // move past the universe-maximal seed first

	second, ok := g.GetSeed()
	require.True(t, ok)
	g.BlockDown(second)

	third, ok := g.GetSeed()
	require.True(t, ok)
	assert.False(t, second.Contains(third))
}

func TestIncrementalMaxSAT_ExhaustsEventually(t *testing.T) {
	sp := twoFeatureSpace(t)
	g := generator.NewIncrementalMaxSAT(sp)

	for i := 0; i < 50; i++ {
		r, ok := g.GetSeed()
		if !ok {
			return
		}
		g.BlockUp(r)
	}
	t.Fatal("expected generator to exhaust within 50 blocked candidates")
}
