package generator

import (
	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/region"
)

// Generator is the capability set every seed-generator variant exposes.
type Generator interface {
	// MustContain constrains every future seed to contain r.
	MustContain(r region.Region)
	// GetSeed returns the next unblocked seed, or ok=false when exhausted.
	GetSeed() (region.Region, bool)
	// BlockUp forbids any future seed that is a superset of r.
	BlockUp(r region.Region)
	// BlockDown forbids any future seed that is a subset of r.
	BlockDown(r region.Region)
	// BlockScore requires every future seed to score strictly above s.
	BlockScore(s decimal.Decimal)
	// Reset clears cumulative blocking and containment state.
	Reset()
}
