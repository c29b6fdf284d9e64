// Package formula is a small algebra of propositional formulas over
// integer literals (positive = variable, negative = its negation), with a
// conversion to conjunctive normal form (CNF) via negation-normal-form
// rewriting followed by standard distribution of Or over And.
//
// The MaxSAT-based seed generators in package generator build formulas
// here and hand the resulting CNF to github.com/go-air/gini.
package formula
