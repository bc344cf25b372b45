package cvb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

func TestCVB2025_Validates(t *testing.T) {
	constants := CVB2025()
	require.NoError(t, constants.Validate())
	assert.Equal(t, Version2025, constants.Version)
}

func TestCVB2025_GrazingVEM(t *testing.T) {
	constants := CVB2025()
	assert.InDelta(t, 1175.0, constants.GrazingVEM(), 1e-9)
}

func TestConstantSet_FillingValue(t *testing.T) {
	constants := CVB2025()

	measured := 0.98
	withValue := entities.Feed{Category: entities.CategoryRoughage, FillingPerKgDS: &measured}
	assert.Equal(t, 0.98, constants.FillingValue(withValue))

	withoutValue := entities.Feed{Category: entities.CategoryConcentrate}
	assert.Equal(t, 0.32, constants.FillingValue(withoutValue))

	mineral := entities.Feed{Category: entities.CategoryMineral}
	assert.Zero(t, constants.FillingValue(mineral))
}

func TestConstantSet_Validate_Failures(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*ConstantSet)
	}{
		{"missing version", func(c *ConstantSet) { c.Version = "" }},
		{"zero metabolic exponent", func(c *ConstantSet) { c.MetabolicWeightExponent = 0 }},
		{"negative maintenance", func(c *ConstantSet) { c.VEMMaintenanceLactating = -1 }},
		{"substitution rate above 1", func(c *ConstantSet) { c.DefaultSubstitutionRate = 1.2 }},
		{"pregnancy threshold beyond term", func(c *ConstantSet) { c.PregnancyThresholdDays = 300 }},
		{"inverted structure thresholds", func(c *ConstantSet) { c.StructureWarningThreshold = 1.5 }},
		{"missing filling defaults", func(c *ConstantSet) { c.FillingValueDefaults = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			constants := CVB2025()
			tc.mutate(&constants)
			assert.Error(t, constants.Validate())
		})
	}
}
