package rantsoen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitution_TableRate(t *testing.T) {
	calc := newTestCalculator(t)

	// 6 kg DS concentrate at the table rate displaces 2.7 kg DS roughage.
	result, err := calc.Substitution(6, 14, 11, 0.45)
	require.NoError(t, err)

	assert.InDelta(t, 2.7, result.DisplacementKgDS, 1e-9)
	assert.InDelta(t, 11.3, result.AdjustedRoughageKgDS, 1e-9)
	assert.False(t, result.Overfeeding)
}

func TestSubstitution_NoConcentrateChangesNothing(t *testing.T) {
	calc := newTestCalculator(t)

	result, err := calc.Substitution(0, 14, 13, 0.45)
	require.NoError(t, err)

	assert.Zero(t, result.DisplacementKgDS)
	assert.InDelta(t, 14, result.AdjustedRoughageKgDS, 1e-9)
	assert.False(t, result.Overfeeding)
}

func TestSubstitution_OverfeedingDetection(t *testing.T) {
	calc := newTestCalculator(t)

	// Adjusted roughage ceiling 14 − 0.45×8 = 10.4; feeding 12 overshoots it.
	result, err := calc.Substitution(8, 14, 12, 0.45)
	require.NoError(t, err)
	assert.True(t, result.Overfeeding)

	result, err = calc.Substitution(8, 14, 10.0, 0.45)
	require.NoError(t, err)
	assert.False(t, result.Overfeeding)
}

func TestSubstitution_AdjustedRoughageNeverNegative(t *testing.T) {
	calc := newTestCalculator(t)

	result, err := calc.Substitution(40, 10, 0, 0.45)
	require.NoError(t, err)
	assert.Zero(t, result.AdjustedRoughageKgDS)
}

func TestSubstitution_RejectsRateOutOfBounds(t *testing.T) {
	calc := newTestCalculator(t)

	_, err := calc.Substitution(6, 14, 11, -0.1)
	assert.Error(t, err)
	_, err = calc.Substitution(6, 14, 11, 1.1)
	assert.Error(t, err)
}

func TestRecommendConcentrate_InvertsSubstitution(t *testing.T) {
	calc := newTestCalculator(t)

	gift, err := calc.RecommendConcentrate(14, 11.3, 0.45)
	require.NoError(t, err)
	assert.InDelta(t, 6, gift, 1e-9)

	// Feeding the recommended gift brings the adjusted ceiling to the target.
	result, err := calc.Substitution(gift, 14, 11.3, 0.45)
	require.NoError(t, err)
	assert.InDelta(t, 11.3, result.AdjustedRoughageKgDS, 1e-9)
}

func TestRecommendConcentrate_TargetAtOrAboveMax(t *testing.T) {
	calc := newTestCalculator(t)

	gift, err := calc.RecommendConcentrate(14, 14, 0.45)
	require.NoError(t, err)
	assert.Zero(t, gift)

	gift, err = calc.RecommendConcentrate(14, 16, 0.45)
	require.NoError(t, err)
	assert.Zero(t, gift)
}

func TestRecommendConcentrate_RejectsZeroRate(t *testing.T) {
	calc := newTestCalculator(t)

	_, err := calc.RecommendConcentrate(14, 10, 0)
	assert.Error(t, err)
}
