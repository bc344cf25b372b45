// Package rantsoen implements the CVB 2025 nutrient requirement, supply and
// balance calculations for dairy rations. Every entry point is a pure
// function of its inputs: the Calculator holds only the injected coefficient
// table, never state, so independent calls may run concurrently without
// coordination.
package rantsoen

import (
	"math"

	"github.com/veldman/rantsoen/pkg/cvb"
)

// Calculator evaluates the CVB formulas against one coefficient table.
type Calculator struct {
	constants cvb.ConstantSet
}

// New creates a Calculator for the given coefficient table.
func New(constants cvb.ConstantSet) (*Calculator, error) {
	if err := constants.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{constants: constants}, nil
}

// Constants returns the injected coefficient table.
func (c *Calculator) Constants() cvb.ConstantSet {
	return c.constants
}

// MetabolicWeight returns weightKg^0.75, defined only for positive weights.
func (c *Calculator) MetabolicWeight(weightKg float64) (float64, error) {
	if weightKg <= 0 {
		return 0, validationErr("weightKg", weightKg, "weight must be positive")
	}
	return math.Pow(weightKg, c.constants.MetabolicWeightExponent), nil
}

// FPCM returns the fat- and protein-corrected milk yield in kg/day.
// A negative milk yield is a validation error, not a silently-signed result.
func (c *Calculator) FPCM(milkKg, fatPercent, proteinPercent float64) (float64, error) {
	if milkKg < 0 {
		return 0, validationErr("milkKg", milkKg, "milk yield cannot be negative")
	}
	if fatPercent < 0 || fatPercent > 100 {
		return 0, validationErr("fatPercent", fatPercent, "fat percent must be within [0,100]")
	}
	if proteinPercent < 0 || proteinPercent > 100 {
		return 0, validationErr("proteinPercent", proteinPercent, "protein percent must be within [0,100]")
	}
	k := c.constants
	return milkKg * (k.FPCMBase + k.FPCMFatCoefficient*fatPercent + k.FPCMProteinCoefficient*proteinPercent), nil
}

// ProteinYield returns the daily milk protein yield in grams.
func (c *Calculator) ProteinYield(milkKg, proteinPercent float64) (float64, error) {
	if milkKg < 0 {
		return 0, validationErr("milkKg", milkKg, "milk yield cannot be negative")
	}
	if proteinPercent < 0 || proteinPercent > 100 {
		return 0, validationErr("proteinPercent", proteinPercent, "protein percent must be within [0,100]")
	}
	// percent of kg milk -> grams/day
	return milkKg * proteinPercent * 10, nil
}
