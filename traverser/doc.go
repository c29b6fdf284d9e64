// Package traverser grows a candidate region to a locally-maximal entailing
// box, shrinks a non-entailing region back toward an anchor, and eliminates
// variables from a non-entailing witness to find a minimal non-entailing
// reason. Every operation moves a region's bounds along the feature-space
// metadata's (package featurespace) extended domain, one threshold step at
// a time, using per-feature binary search rather than a linear scan: the
// entailment predicate is assumed monotonic along each axis independently
// (once growth crosses into non-entailment on a side, it never crosses
// back), the same assumption the source specification's binary-search
// description makes.
//
// Complexity: each Grow/Shrink call issues O(F log M) oracle calls, where F
// is the feature count and M the largest per-feature domain size.
package traverser
