package rantsoen

import (
	"math"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

// IntakeCapacity evaluates the multi-factor voluntary intake capacity model.
// Inputs are validated first: the exponentials are not defensive against
// negative days or parities.
func (c *Calculator) IntakeCapacity(state entities.LactationState) (*entities.VOCResult, error) {
	if err := state.Validate(); err != nil {
		return nil, validationErr("lactation", state, err.Error())
	}
	k := c.constants

	// Age in lactation-years since first calving.
	a := float64(state.Parity-1) + float64(state.DaysInMilk)/365

	maturity := k.VOCBase + k.VOCMaturityGain*(1-math.Exp(-k.VOCMaturityRate*a))
	lactationFactor := 1 - k.VOCLactationDepth*math.Exp(-k.VOCLactationRate*float64(state.DaysInMilk))
	pregnancyRatio := float64(state.DaysPregnant) / k.VOCPregnancyScaleDays
	pregnancyFactor := 1 - k.VOCPregnancyDepth*pregnancyRatio*pregnancyRatio

	units := maturity * lactationFactor * pregnancyFactor

	return &entities.VOCResult{
		Maturity:        maturity,
		LactationFactor: lactationFactor,
		PregnancyFactor: pregnancyFactor,
		FillingUnits:    units,
		CapacityKgDS:    units * k.KgDSPerFillingUnit,
	}, nil
}

// Saturate fills in the saturation of a capacity result against the ration's
// total filling value. Over-saturation is surfaced, never clipped: an
// infeasible ration is a valid, reportable state.
func (c *Calculator) Saturate(voc *entities.VOCResult, totalFillingValue float64) error {
	if voc == nil {
		return validationErr("voc", nil, "intake capacity result is required")
	}
	if totalFillingValue < 0 {
		return validationErr("totalFillingValue", totalFillingValue, "filling value cannot be negative")
	}
	if voc.FillingUnits <= 0 {
		return validationErr("voc.fillingUnits", voc.FillingUnits, "intake capacity must be positive")
	}

	voc.TotalFillingValue = totalFillingValue
	voc.SaturationPercent = totalFillingValue / voc.FillingUnits * 100

	switch {
	case voc.SaturationPercent > c.constants.SaturationExceededPct:
		voc.Status = entities.SaturationExceeded
	case voc.SaturationPercent >= c.constants.SaturationWarningPct:
		voc.Status = entities.SaturationWarning
	default:
		voc.Status = entities.SaturationOK
	}
	return nil
}
