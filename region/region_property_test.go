package region_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/arborists/xregions/region"
)

func genRegion(t *rapid.T, label string) region.Region {
	n := rapid.IntRange(0, 4).Draw(t, label+"_n")
	bounds := make(map[int]region.Interval, n)
	for i := 0; i < n; i++ {
		lo := rapid.Float64Range(-10, 10).Draw(t, label+"_lo")
		span := rapid.Float64Range(0.01, 10).Draw(t, label+"_span")
		bounds[i] = region.Interval{Lower: lo, Upper: lo + span}
	}
	return region.FromBounds(bounds)
}

// TestProperty_ContainsImpliesBlockedUpBy checks the documented direction
// of BlockedUpBy against Contains for arbitrary regions: a superset
// relationship in one framing must agree with the other.
func TestProperty_ContainsImpliesBlockedUpBy(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		outer := genRegion(t, "outer")
		inner := genRegion(t, "inner")

		if outer.Contains(inner) {
			if !outer.BlockedUpBy(inner) {
				t.Fatalf("outer contains inner, but outer.BlockedUpBy(inner) is false")
			}
		}
	})
}

// TestProperty_CloneIsIndependent checks that mutating a clone's bounds
// never affects the original, across arbitrary regions.
func TestProperty_CloneIsIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := genRegion(t, "r")
		clone := r.Clone()
		for f := range clone.Bounds {
			clone.Bounds[f] = region.Interval{Lower: -999, Upper: -998}
		}
		for f, b := range r.Bounds {
			if clone.Bounds[f] == b {
				t.Fatalf("mutating clone leaked into original at feature %d", f)
			}
		}
	})
}

// TestProperty_SelfContainment checks every region contains and is
// contained in itself.
func TestProperty_SelfContainment(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := genRegion(t, "r")
		if !r.Contains(r) {
			t.Fatalf("region does not contain itself: %v", r)
		}
		if !r.ContainedIn(r) {
			t.Fatalf("region is not contained in itself: %v", r)
		}
	})
}
