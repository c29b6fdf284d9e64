package limits_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborists/xregions/limits"
)

func TestParse_ValidRows(t *testing.T) {
	r := strings.NewReader("0,0,1\n1,-5.5,5.5\n")
	out, err := limits.Parse(r)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, 1}, out[0])
	assert.Equal(t, [2]float64{-5.5, 5.5}, out[1])
}

func TestParse_RejectsInvertedBounds(t *testing.T) {
	r := strings.NewReader("0,1,0\n")
	_, err := limits.Parse(r)
	assert.ErrorIs(t, err, limits.ErrMalformedLimits)
}

func TestParse_RejectsNonNumericField(t *testing.T) {
	r := strings.NewReader("0,abc,1\n")
	_, err := limits.Parse(r)
	assert.ErrorIs(t, err, limits.ErrMalformedLimits)
}

func TestParse_RejectsWrongFieldCount(t *testing.T) {
	r := strings.NewReader("0,1\n")
	_, err := limits.Parse(r)
	assert.ErrorIs(t, err, limits.ErrMalformedLimits)
}

func TestValidate_MissingFeature(t *testing.T) {
	loaded := map[int][2]float64{0: {0, 1}}
	err := limits.Validate(loaded, []int{0, 1})
	assert.ErrorIs(t, err, limits.ErrMissingFeature)
}

func TestValidate_AllPresent(t *testing.T) {
	loaded := map[int][2]float64{0: {0, 1}, 1: {0, 1}}
	assert.NoError(t, limits.Validate(loaded, []int{0, 1}))
}
