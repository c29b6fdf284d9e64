package generator

import (
	"github.com/shopspring/decimal"

	"github.com/arborists/xregions/featurespace"
	"github.com/arborists/xregions/region"
	"github.com/arborists/xregions/score"
)

// blockSet accumulates the must-contain constraint and the blocked-up /
// blocked-down region families shared by the backtracking generators
// (smtlite, greedy). Blocking is honoured unconditionally, regardless of
// whether MustContain was ever called, matching the fixed behaviour the
// source specification calls for over its buggy reference variant.
type blockSet struct {
	space     *featurespace.Space
	contain   *region.Region
	blockedUp []region.Region
	blockedDn []region.Region
	minScore  *decimal.Decimal
}

func newBlockSet(space *featurespace.Space) *blockSet {
	return &blockSet{space: space}
}

func (b *blockSet) mustContain(r region.Region) {
	cp := r.Clone()
	b.contain = &cp
}

func (b *blockSet) blockUp(r region.Region) {
	b.blockedUp = append(b.blockedUp, r.Clone())
}

func (b *blockSet) blockDown(r region.Region) {
	b.blockedDn = append(b.blockedDn, r.Clone())
}

func (b *blockSet) blockScore(s decimal.Decimal) {
	b.minScore = &s
}

func (b *blockSet) reset() {
	b.contain = nil
	b.blockedUp = nil
	b.blockedDn = nil
	b.minScore = nil
}

// blocked reports whether r fails any currently active constraint.
func (b *blockSet) blocked(r region.Region) bool {
	if b.contain != nil && !r.Contains(*b.contain) {
		return true
	}
	for _, bu := range b.blockedUp {
		// bu.BlockedDownBy(r) holds iff bu <= r, i.e. r is a superset of
		// bu — exactly the set block_up must forbid.
		if bu.BlockedDownBy(r) {
			return true
		}
	}
	for _, bd := range b.blockedDn {
		// bd.BlockedUpBy(r) holds iff bd >= r, i.e. r is a subset of bd —
		// exactly the set block_down must forbid.
		if bd.BlockedUpBy(r) {
			return true
		}
	}
	if b.minScore != nil {
		v := score.Volume(r, b.space)
		if !v.GreaterThan(*b.minScore) {
			return true
		}
	}
	return false
}
