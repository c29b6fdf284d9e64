// Package score computes a region's normalised volume: the product, over
// every feature the region's containing feature space knows about, of the
// fraction of that feature's domain span the region occupies. A feature a
// region leaves unconstrained contributes a factor of 1.
//
// The product can involve hundreds of small fractions on high-dimensional
// models, which underflows float64 quickly; this package uses
// github.com/shopspring/decimal throughout to avoid that, matching the
// arbitrary-precision arithmetic the source specification calls for.
package score
