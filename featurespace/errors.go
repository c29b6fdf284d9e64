package featurespace

import "errors"

// ErrMissingLimit indicates an explicit limits mapping was supplied but
// omits a feature index that appears in the threshold set. This is a
// configuration error, fatal at construction time.
var ErrMissingLimit = errors.New("featurespace: limits missing feature index")

// ErrEmptyThresholds indicates a feature was declared with no thresholds at all.
var ErrEmptyThresholds = errors.New("featurespace: feature has no thresholds")
