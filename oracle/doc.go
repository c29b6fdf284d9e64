// Package oracle is the entailment oracle: it encodes a parsed ensemble
// (package ensemble) as a set of per-tree leaf-path constraints over the
// input features, and answers two questions against that encoding:
//
//   - Predict(x): which class does the ensemble assign to x?
//   - Entails(r, c): does every point in region r predict class c?
//
// No general SMT or linear-arithmetic solver exists anywhere in this
// module's retrieved reference corpus (the sole SAT engine present,
// github.com/go-air/gini, is purely propositional). Because every
// constraint here is an axis-aligned interval membership test induced by
// a tree path, satisfiability reduces to choosing one leaf per tree such
// that the intersection of their path intervals (restricted to r) is
// non-empty and the resulting weight sums violate class c — a
// depth-first search over leaf choices that abandons a branch as soon as
// the intersected path intervals become empty, standing in for a DPLL(T)
// loop without requiring a theory solver. No weight-bound pruning is
// applied. See DESIGN.md for the corpus-grounding of this choice.
//
// The oracle's call counter grows by one per satisfiability check,
// matching the "one call per satisfiability check" cost model of the
// source specification: Predict and a binary Entails count one call each,
// and a multi-class Entails counts one call per competing group it checks.
package oracle
