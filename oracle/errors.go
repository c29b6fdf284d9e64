package oracle

import "errors"

// ErrUnsatPrediction indicates predict found no reachable leaf for some
// tree — a violation of the path-cover invariant every well-formed
// ensemble must satisfy. This is a fatal encoding bug, never expected
// against a correctly exported ensemble.
var ErrUnsatPrediction = errors.New("oracle: unsat prediction (ensemble violates path-cover invariant)")

// ErrUnsupportedObjective indicates the ensemble declares an objective
// outside {binary:logistic, multi:softmax, multi:softprob}.
var ErrUnsupportedObjective = errors.New("oracle: unsupported objective")
