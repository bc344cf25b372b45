package rantsoen

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldman/rantsoen/pkg/cvb"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := New(cvb.CVB2025())
	require.NoError(t, err)
	return calc
}

func TestNew_RejectsInvalidConstants(t *testing.T) {
	broken := cvb.CVB2025()
	broken.VEMPerKgFPCM = 0

	_, err := New(broken)
	assert.Error(t, err)
}

func TestMetabolicWeight(t *testing.T) {
	calc := newTestCalculator(t)

	mw, err := calc.MetabolicWeight(650)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(650, 0.75), mw, 1e-9)

	// Strictly increasing in body weight.
	previous := 0.0
	for _, weight := range []float64{400, 500, 600, 700, 800} {
		mw, err := calc.MetabolicWeight(weight)
		require.NoError(t, err)
		assert.Greater(t, mw, previous)
		previous = mw
	}
}

func TestMetabolicWeight_RejectsNonPositiveWeight(t *testing.T) {
	calc := newTestCalculator(t)

	for _, weight := range []float64{0, -1, -650} {
		_, err := calc.MetabolicWeight(weight)
		require.Error(t, err)

		var validationError *ValidationError
		assert.True(t, errors.As(err, &validationError))
		assert.Equal(t, "weightKg", validationError.Field)
	}
}

func TestFPCM(t *testing.T) {
	calc := newTestCalculator(t)

	// 30 kg at 4.4% fat and 3.5% protein.
	fpcm, err := calc.FPCM(30, 4.4, 3.5)
	require.NoError(t, err)
	assert.InDelta(t, 31.72, fpcm, 0.01)
}

func TestFPCM_RejectsNegativeMilk(t *testing.T) {
	calc := newTestCalculator(t)

	_, err := calc.FPCM(-1, 4.4, 3.5)
	var validationError *ValidationError
	require.True(t, errors.As(err, &validationError))
	assert.Equal(t, "milkKg", validationError.Field)
}

func TestFPCM_RejectsImpossiblePercentages(t *testing.T) {
	calc := newTestCalculator(t)

	_, err := calc.FPCM(30, -0.1, 3.5)
	assert.Error(t, err)
	_, err = calc.FPCM(30, 4.4, 101)
	assert.Error(t, err)
}

func TestProteinYield(t *testing.T) {
	calc := newTestCalculator(t)

	py, err := calc.ProteinYield(30, 3.5)
	require.NoError(t, err)
	assert.InDelta(t, 1050, py, 1e-9)
}
