package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborists/xregions/region"
)

func TestContains_Universe(t *testing.T) {
	universe := region.New()
	r := region.FromBounds(map[int]region.Interval{0: {Lower: 0, Upper: 1}})

	assert.True(t, universe.Contains(r), "the universe must contain every region")
	assert.False(t, r.Contains(universe), "a bounded region must not contain the universe")
}

func TestContains_PerFeature(t *testing.T) {
	outer := region.FromBounds(map[int]region.Interval{
		0: {Lower: 0, Upper: 1},
		1: {Lower: 0, Upper: 1},
	})
	inner := region.FromBounds(map[int]region.Interval{
		0: {Lower: 0.2, Upper: 0.8},
		1: {Lower: 0.1, Upper: 0.9},
	})

	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))
	assert.True(t, inner.ContainedIn(outer))
}

func TestBlockedUpDown(t *testing.T) {
	blocker := region.FromBounds(map[int]region.Interval{0: {Lower: 0.2, Upper: 0.8}})

	superset := region.FromBounds(map[int]region.Interval{0: {Lower: 0.1, Upper: 0.9}})
	subset := region.FromBounds(map[int]region.Interval{0: {Lower: 0.3, Upper: 0.7}})

	assert.True(t, blocker.BlockedUpBy(subset), "blocker encloses subset, so blocker is inside subset's up-set")
	assert.False(t, blocker.BlockedUpBy(superset))

	assert.True(t, blocker.BlockedDownBy(superset), "blocker lies inside superset, so blocker is inside superset's down-set")
	assert.False(t, blocker.BlockedDownBy(subset))
}

func TestEqual_Tolerance(t *testing.T) {
	a := region.FromBounds(map[int]region.Interval{0: {Lower: 0, Upper: 1}})
	b := region.FromBounds(map[int]region.Interval{0: {Lower: 1e-12, Upper: 1 - 1e-12}})

	assert.True(t, a.Equal(b, region.DefaultTolerance))
}

func TestClone_Independence(t *testing.T) {
	a := region.FromBounds(map[int]region.Interval{0: {Lower: 0, Upper: 1}})
	b := a.Clone()
	b.Bounds[0] = region.Interval{Lower: 0.5, Upper: 1}

	assert.Equal(t, 0.0, a.Bounds[0].Lower, "clone must not alias the original's map")
}

func TestFeatures_Sorted(t *testing.T) {
	r := region.FromBounds(map[int]region.Interval{3: {}, 1: {}, 2: {}})
	assert.Equal(t, []int{1, 2, 3}, r.Features())
}
