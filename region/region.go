package region

import (
	"fmt"
	"math"
	"sort"
)

// DefaultTolerance is the absolute tolerance used by Equal when comparing
// interval endpoints. Thresholds originate from a finite, pre-sorted
// domain, so exact equality is expected in practice; the tolerance only
// absorbs floating-point drift introduced by traversal arithmetic.
const DefaultTolerance = 1e-9

// Interval is a half-open real interval [Lower, Upper).
type Interval struct {
	Lower float64
	Upper float64
}

// Region is an axis-aligned hyperrectangle: feature index -> Interval.
// A feature missing from Bounds is unconstrained ("spans the universe").
type Region struct {
	Bounds map[int]Interval
}

// New returns an empty Region (the universe: unconstrained on every feature).
func New() Region {
	return Region{Bounds: make(map[int]Interval)}
}

// FromBounds wraps an existing bounds map without copying it. Callers that
// need an independent Region should call Clone on the result.
func FromBounds(bounds map[int]Interval) Region {
	if bounds == nil {
		bounds = make(map[int]Interval)
	}
	return Region{Bounds: bounds}
}

// Clone returns a deep copy; mutating the clone never affects r.
func (r Region) Clone() Region {
	cp := make(map[int]Interval, len(r.Bounds))
	for k, v := range r.Bounds {
		cp[k] = v
	}
	return Region{Bounds: cp}
}

// Features returns the constrained feature indices in ascending order.
func (r Region) Features() []int {
	out := make([]int, 0, len(r.Bounds))
	for f := range r.Bounds {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// Empty reports whether r constrains no feature (the universe region).
func (r Region) Empty() bool {
	return len(r.Bounds) == 0
}

// Contains reports whether r contains other: for every feature other
// constrains, r's interval (if present) encloses it; a feature r leaves
// unconstrained trivially encloses anything, while a feature r constrains
// and other leaves unconstrained means r cannot contain other. The
// universe contains any region, and every region contains itself.
func (r Region) Contains(other Region) bool {
	if sameBounds(r, other) {
		return true
	}
	if r.Empty() {
		return true
	}
	for f := range r.Bounds {
		if _, ok := other.Bounds[f]; !ok {
			return false
		}
	}
	for f, ob := range other.Bounds {
		rb, ok := r.Bounds[f]
		if !ok {
			continue
		}
		if rb.Lower > ob.Lower || rb.Upper < ob.Upper {
			return false
		}
	}
	return true
}

// ContainedIn reports whether r is contained in other; the mirror of Contains.
func (r Region) ContainedIn(other Region) bool {
	if sameBounds(r, other) {
		return true
	}
	if other.Empty() {
		return true
	}
	if r.Empty() {
		return false
	}
	for f := range other.Bounds {
		if _, ok := r.Bounds[f]; !ok {
			return false
		}
	}
	for f, rb := range r.Bounds {
		ob, ok := other.Bounds[f]
		if !ok {
			continue
		}
		if rb.Lower < ob.Lower || rb.Upper > ob.Upper {
			return false
		}
	}
	return true
}

// BlockedUpBy reports whether r is blocked up by other: r encloses other
// on every feature both constrain, so r lies in the up-set (the supersets)
// that block_up(other) forbids.
func (r Region) BlockedUpBy(other Region) bool {
	if other.Empty() {
		return true
	}
	for f, ob := range other.Bounds {
		rb, ok := r.Bounds[f]
		if !ok {
			continue
		}
		if !(rb.Lower <= ob.Lower && rb.Upper >= ob.Upper) {
			return false
		}
	}
	return true
}

// BlockedDownBy reports whether r is blocked down by other: r lies inside
// other on every feature both constrain, so r is in the down-set (the
// subsets) that block_down(other) forbids.
func (r Region) BlockedDownBy(other Region) bool {
	if other.Empty() {
		return true
	}
	for f, ob := range other.Bounds {
		rb, ok := r.Bounds[f]
		if !ok {
			continue
		}
		if !(rb.Lower >= ob.Lower && rb.Upper <= ob.Upper) {
			return false
		}
	}
	return true
}

// Equal reports whether r and other agree on every constrained feature
// (each side's feature set must be a subset of the other's) within tol.
func (r Region) Equal(other Region, tol float64) bool {
	for f := range r.Bounds {
		if _, ok := other.Bounds[f]; !ok {
			return false
		}
	}
	for f, ob := range other.Bounds {
		rb, ok := r.Bounds[f]
		if !ok {
			return false
		}
		if !closeEnough(rb.Lower, ob.Lower, tol) || !closeEnough(rb.Upper, ob.Upper, tol) {
			return false
		}
	}
	return true
}

// String renders one "lower <= x_i < upper" line per constrained feature,
// in ascending feature order.
func (r Region) String() string {
	feats := r.Features()
	out := ""
	for idx, f := range feats {
		if idx > 0 {
			out += "\n"
		}
		b := r.Bounds[f]
		out += fmt.Sprintf("%g <= x%d < %g", b.Lower, f, b.Upper)
	}
	return out
}

func sameBounds(a, b Region) bool {
	if len(a.Bounds) != len(b.Bounds) {
		return false
	}
	for f, ab := range a.Bounds {
		bb, ok := b.Bounds[f]
		if !ok || ab != bb {
			return false
		}
	}
	return true
}

func closeEnough(a, b, tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return math.Abs(a-b) <= tol
}
