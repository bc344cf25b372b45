package rantsoen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

func TestIntakeCapacity_FactorFormulas(t *testing.T) {
	calc := newTestCalculator(t)

	state := entities.LactationState{Parity: 2, DaysInMilk: 120, DaysPregnant: 40, Lactating: true}
	voc, err := calc.IntakeCapacity(state)
	require.NoError(t, err)

	a := 1.0 + 120.0/365.0
	expectedMaturity := 8.743 + 3.563*(1-math.Exp(-1.140*a))
	expectedLactation := 1 - 0.3156*math.Exp(-0.05889*120)
	expectedPregnancy := 1 - 0.05529*math.Pow(40.0/220.0, 2)

	assert.InDelta(t, expectedMaturity, voc.Maturity, 1e-9)
	assert.InDelta(t, expectedLactation, voc.LactationFactor, 1e-9)
	assert.InDelta(t, expectedPregnancy, voc.PregnancyFactor, 1e-9)
	assert.InDelta(t, expectedMaturity*expectedLactation*expectedPregnancy, voc.FillingUnits, 1e-9)
	assert.Greater(t, voc.FillingUnits, 0.0)
}

func TestIntakeCapacity_CapacityIsTwiceFillingUnits(t *testing.T) {
	calc := newTestCalculator(t)

	states := []entities.LactationState{
		{Parity: 1, DaysInMilk: 0},
		{Parity: 1, DaysInMilk: 30, DaysPregnant: 0},
		{Parity: 4, DaysInMilk: 200, DaysPregnant: 120},
		{Parity: 8, DaysInMilk: 350, DaysPregnant: 250},
	}
	for _, state := range states {
		voc, err := calc.IntakeCapacity(state)
		require.NoError(t, err)
		assert.InDelta(t, 2.0*voc.FillingUnits, voc.CapacityKgDS, 1e-9)
	}
}

func TestIntakeCapacity_PregnancyMonotonicity(t *testing.T) {
	calc := newTestCalculator(t)

	// Increasing days pregnant beyond 220 strictly decreases the factor.
	previous := math.Inf(1)
	for days := 220; days <= 283; days += 7 {
		voc, err := calc.IntakeCapacity(entities.LactationState{
			Parity: 3, DaysInMilk: 250, DaysPregnant: days, Lactating: true,
		})
		require.NoError(t, err)
		assert.Less(t, voc.PregnancyFactor, previous, "day %d", days)
		previous = voc.PregnancyFactor
	}
}

func TestIntakeCapacity_RejectsInvalidState(t *testing.T) {
	calc := newTestCalculator(t)

	invalid := []entities.LactationState{
		{Parity: 0, DaysInMilk: 10},
		{Parity: 1, DaysInMilk: -1},
		{Parity: 1, DaysInMilk: 10, DaysPregnant: -5},
		{Parity: 1, DaysInMilk: 10, DaysPregnant: 300},
	}
	for _, state := range invalid {
		_, err := calc.IntakeCapacity(state)
		assert.Error(t, err, "state %+v", state)
	}
}

func TestSaturate_Classification(t *testing.T) {
	calc := newTestCalculator(t)

	testCases := []struct {
		name     string
		filling  float64
		expected entities.SaturationStatus
	}{
		{"well below capacity", 9.0, entities.SaturationOK},
		{"just under capacity", 9.6, entities.SaturationWarning},
		{"at capacity", 10.0, entities.SaturationWarning},
		{"over capacity", 10.2, entities.SaturationExceeded},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			voc := &entities.VOCResult{FillingUnits: 10, CapacityKgDS: 20}
			require.NoError(t, calc.Saturate(voc, tc.filling))
			assert.Equal(t, tc.expected, voc.Status)
			assert.InDelta(t, tc.filling/10*100, voc.SaturationPercent, 1e-9)
		})
	}
}

func TestSaturate_OversaturationIsReportedNotClipped(t *testing.T) {
	calc := newTestCalculator(t)

	voc := &entities.VOCResult{FillingUnits: 10}
	require.NoError(t, calc.Saturate(voc, 13))
	assert.InDelta(t, 130, voc.SaturationPercent, 1e-9)
	assert.Equal(t, entities.SaturationExceeded, voc.Status)
}

func TestSaturate_RejectsInvalidInputs(t *testing.T) {
	calc := newTestCalculator(t)

	assert.Error(t, calc.Saturate(nil, 5))
	assert.Error(t, calc.Saturate(&entities.VOCResult{FillingUnits: 10}, -1))
	assert.Error(t, calc.Saturate(&entities.VOCResult{FillingUnits: 0}, 5))
}
