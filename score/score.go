package score

import (
	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/region"
)

// Volume returns r's normalised volume score with respect to space:
// Prod_i (upper_i - lower_i) / (dmax_i - dmin_i), one factor per feature r
// constrains. A region that constrains nothing (the universe) scores 1.
func Volume(r region.Region, space *featurespace.Space) decimal.Decimal {
	total := decimal.NewFromInt(1)
	for f, b := range r.Bounds {
		span := decimal.NewFromFloat(b.Upper - b.Lower)
		full := decimal.NewFromFloat(space.DMax(f) - space.DMin(f))
		if full.IsZero() {
			continue
		}
		total = total.Mul(span.Div(full))
	}
	return total
}
