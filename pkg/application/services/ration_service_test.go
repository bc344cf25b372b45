package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/veldman/rantsoen/pkg/cvb"
	"github.com/veldman/rantsoen/pkg/domain/entities"
)

func newTestService(t *testing.T) *RationService {
	t.Helper()
	service, err := NewRationService(cvb.CVB2025(), zap.NewNop())
	require.NoError(t, err)
	return service
}

func standaardProfile() entities.AnimalProfile {
	return entities.AnimalProfile{
		ID: "standaard", Name: "Standaard melkkoe",
		WeightKg: 650, VEMTarget: 17500, DVETargetGrams: 1650, MaxDryMatterKg: 22,
	}
}

func testLines() []entities.RationLine {
	graskuil := entities.Feed{
		ID: "graskuil", Name: "Graskuil", VEMPerKgDS: 960, DVEPerKgDS: 70, OEBPerKgDS: 45,
		CaPerKgDS: 5.2, PPerKgDS: 4.0, StructuurPerKgDS: 1.25, DefaultDSPercent: 45,
		Basis: entities.BasisPerKgProduct, Category: entities.CategoryRoughage,
	}
	snijmais := entities.Feed{
		ID: "snijmais", Name: "Snijmaïs", VEMPerKgDS: 985, DVEPerKgDS: 52, OEBPerKgDS: -25,
		CaPerKgDS: 1.8, PPerKgDS: 2.1, StructuurPerKgDS: 1.05, DefaultDSPercent: 34,
		Basis: entities.BasisPerKgProduct, Category: entities.CategoryRoughage,
	}
	brok := entities.Feed{
		ID: "brok", Name: "Standaardbrok", VEMPerKgDS: 1080, DVEPerKgDS: 105, OEBPerKgDS: 10,
		CaPerKgDS: 8.0, PPerKgDS: 4.5, StructuurPerKgDS: 0.25, DefaultDSPercent: 88,
		Basis: entities.BasisPerKgDryMatter, Category: entities.CategoryConcentrate,
	}
	return []entities.RationLine{
		{Feed: graskuil, Input: entities.FeedInput{AmountKg: 22}},
		{Feed: snijmais, Input: entities.FeedInput{AmountKg: 16}},
		{Feed: brok, Input: entities.FeedInput{AmountKg: 6}},
	}
}

func TestCalculate_ProfileDefaultStrategy(t *testing.T) {
	service := newTestService(t)

	result, err := service.Calculate(context.Background(), RationRequest{
		Profile:  standaardProfile(),
		Strategy: ProfileDefaultRequirement,
		Lines:    testLines(),
	})
	require.NoError(t, err)

	assert.Equal(t, "profiel-standaard", result.Strategy)
	assert.Equal(t, 17500.0, result.Requirement.VEM)
	assert.Equal(t, 22.0, result.Requirement.DryMatterMaxKg)
	assert.NotEqual(t, "", result.ID.String())
	assert.Equal(t, "CVB-2025", result.ConstantsVersion)
	assert.Len(t, result.Contributions, 3)
	assert.Len(t, result.Balances, 6)
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.Audit.Steps)

	// No lactation state: no intake capacity result in the output.
	assert.Nil(t, result.VOC)
	require.NotNil(t, result.Substitution)
	assert.InDelta(t, 0.45, result.Substitution.Rate, 1e-9)
}

func TestCalculate_DynamicStrategy(t *testing.T) {
	service := newTestService(t)

	lactation := entities.LactationState{Parity: 2, DaysInMilk: 120, DaysPregnant: 40, Lactating: true}
	result, err := service.Calculate(context.Background(), RationRequest{
		Profile:   standaardProfile(),
		Strategy:  DynamicRequirement,
		Lactation: &lactation,
		Milk:      &entities.MilkProduction{MilkKg: 28, FatPercent: 4.4, ProteinPercent: 3.5},
		Lines:     testLines(),
	})
	require.NoError(t, err)

	assert.Equal(t, "dynamisch", result.Strategy)
	assert.NotEmpty(t, result.Requirement.VEMComponents)
	require.NotNil(t, result.VOC)
	assert.Greater(t, result.VOC.CapacityKgDS, 0.0)
	assert.InDelta(t, result.VOC.CapacityKgDS, result.Requirement.DryMatterMaxKg, 1e-9)
}

func TestCalculate_DynamicStrategyNeedsLactation(t *testing.T) {
	service := newTestService(t)

	_, err := service.Calculate(context.Background(), RationRequest{
		Profile:  standaardProfile(),
		Strategy: DynamicRequirement,
		Lines:    testLines(),
	})
	assert.Error(t, err)
}

func TestCalculate_GrazingAddsVEMOnBothSides(t *testing.T) {
	service := newTestService(t)

	base, err := service.Calculate(context.Background(), RationRequest{
		Profile:   standaardProfile(),
		Strategy:  ProfileDefaultRequirement,
		Lactation: &entities.LactationState{Parity: 2, DaysInMilk: 120, Lactating: true},
		Lines:     testLines(),
	})
	require.NoError(t, err)

	grazing, err := service.Calculate(context.Background(), RationRequest{
		Profile:   standaardProfile(),
		Strategy:  ProfileDefaultRequirement,
		Lactation: &entities.LactationState{Parity: 2, DaysInMilk: 120, Lactating: true, Grazing: true},
		Lines:     testLines(),
	})
	require.NoError(t, err)

	assert.InDelta(t, base.Requirement.VEM+1175, grazing.Requirement.VEM, 1e-9)
	assert.InDelta(t, base.Supply.VEM+1175, grazing.Supply.VEM, 1e-9)
}

func TestCalculate_InfeasibleRationStillProducesResult(t *testing.T) {
	service := newTestService(t)

	// Concentrate-only ration far over the intake capacity: low structure,
	// saturation exceeded and roughage overfeeding are reported as warnings,
	// never as errors.
	brok := entities.Feed{
		ID: "brok", Name: "Standaardbrok", VEMPerKgDS: 1080, DVEPerKgDS: 105,
		StructuurPerKgDS: 0.25, DefaultDSPercent: 88,
		Basis: entities.BasisPerKgDryMatter, Category: entities.CategoryConcentrate,
	}
	lactation := entities.LactationState{Parity: 2, DaysInMilk: 120, Lactating: true}

	result, err := service.Calculate(context.Background(), RationRequest{
		Profile:   standaardProfile(),
		Strategy:  ProfileDefaultRequirement,
		Lactation: &lactation,
		Lines: []entities.RationLine{
			{Feed: brok, Input: entities.FeedInput{AmountKg: 30}},
		},
	})
	require.NoError(t, err)

	assert.True(t, result.Structure.AcidosisRisk)
	assert.NotEmpty(t, result.Warnings)
}

func TestCalculate_EmptyRation(t *testing.T) {
	service := newTestService(t)

	result, err := service.Calculate(context.Background(), RationRequest{
		Profile:  standaardProfile(),
		Strategy: ProfileDefaultRequirement,
	})
	require.NoError(t, err)

	assert.Zero(t, result.Supply.VEM)
	assert.False(t, result.TargetMet)
	assert.Empty(t, result.Contributions)
}

func TestCalculate_CustomSubstitutionRate(t *testing.T) {
	service := newTestService(t)

	result, err := service.Calculate(context.Background(), RationRequest{
		Profile:          standaardProfile(),
		Strategy:         ProfileDefaultRequirement,
		Lines:            testLines(),
		SubstitutionRate: 0.5,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Substitution)
	assert.InDelta(t, 0.5, result.Substitution.Rate, 1e-9)
}

func TestCalculate_CancelledContext(t *testing.T) {
	service := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Calculate(ctx, RationRequest{
		Profile:  standaardProfile(),
		Strategy: ProfileDefaultRequirement,
		Lines:    testLines(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculate_InvalidFeedInputFailsWithFeedContext(t *testing.T) {
	service := newTestService(t)

	lines := testLines()
	lines[1].Input.AmountKg = -3

	_, err := service.Calculate(context.Background(), RationRequest{
		Profile:  standaardProfile(),
		Strategy: ProfileDefaultRequirement,
		Lines:    lines,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snijmais")
}

func TestStrategyKind_String(t *testing.T) {
	assert.Equal(t, "profiel-standaard", ProfileDefaultRequirement.String())
	assert.Equal(t, "dynamisch", DynamicRequirement.String())
}
