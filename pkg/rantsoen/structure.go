package rantsoen

import "github.com/veldman/rantsoen/pkg/domain/entities"

// StructureValue evaluates the ration's fiber adequacy: the dry-matter
// weighted average structure value against the rumen-health thresholds.
// A zero-dry-matter ration is valid (nothing entered yet) and reports a
// structure value of 0.
func (c *Calculator) StructureValue(contributions []entities.FeedContribution) *entities.StructureValueResult {
	result := &entities.StructureValueResult{}

	for _, contribution := range contributions {
		result.TotalStructuur += contribution.StructuurTotal
		result.TotalDryMatterKg += contribution.Supply.DryMatterKg
	}

	if result.TotalDryMatterKg == 0 {
		// Nothing entered yet: structure value falls back to 0 and no
		// acidosis verdict is possible.
		result.Status = entities.StatusOK
		return result
	}
	result.StructuurPerKgDS = result.TotalStructuur / result.TotalDryMatterKg

	switch {
	case result.StructuurPerKgDS >= c.constants.StructureOKThreshold:
		result.Status = entities.StatusOK
	case result.StructuurPerKgDS >= c.constants.StructureWarningThreshold:
		result.Status = entities.StatusWarning
	default:
		result.Status = entities.StatusDeficient
		result.AcidosisRisk = true
	}

	return result
}
