// Package ensemble loads and represents a gradient-boosted tree ensemble:
// a forest of trees partitioned into groups (one per output class for
// multi-class objectives, one group for binary logistic), parsed from the
// JSON document a standard gradient-boosting library produces.
//
// This package is an external collaborator in the sense of the region
// search engine: it holds no search logic, only the parsed data structure
// package oracle encodes into entailment constraints.
package ensemble
