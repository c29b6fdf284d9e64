// Package region defines Region, an axis-aligned hyperrectangle over a
// sparse set of feature indices, and the containment/domination algebra
// the rest of xregions is built on.
//
// A Region is a value object: map[int]Interval from feature index to a
// half-open interval (lower, upper). A feature absent from the map is
// unconstrained on that axis ("the whole real line"). Regions are created
// fresh on every seed or traversal step and discarded once consumed; no
// Region method mutates the Region it is called on, and package traverser
// works on clones. FromBounds wraps the caller's map without copying it.
package region
