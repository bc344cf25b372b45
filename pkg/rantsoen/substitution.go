package rantsoen

import (
	"math"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

// Substitution models how concentrate displaces roughage intake. The rate is
// the kg DS of roughage pushed out per kg DS of concentrate; the table
// default is 0.45 with a practical domain of [0.4,0.5]. Rates outside [0,1]
// are rejected.
func (c *Calculator) Substitution(concentrateKgDS, maxRoughageKgDS, actualRoughageKgDS, rate float64) (*entities.SubstitutionResult, error) {
	if rate < 0 || rate > 1 {
		return nil, validationErr("rate", rate, "substitution rate must be within [0,1]")
	}
	if concentrateKgDS < 0 {
		return nil, validationErr("concentrateKgDS", concentrateKgDS, "concentrate intake cannot be negative")
	}
	if maxRoughageKgDS < 0 {
		return nil, validationErr("maxRoughageKgDS", maxRoughageKgDS, "max roughage intake cannot be negative")
	}
	if actualRoughageKgDS < 0 {
		return nil, validationErr("actualRoughageKgDS", actualRoughageKgDS, "actual roughage intake cannot be negative")
	}

	displacement := concentrateKgDS * rate
	adjusted := math.Max(0, maxRoughageKgDS-displacement)

	return &entities.SubstitutionResult{
		ConcentrateKgDS:      concentrateKgDS,
		Rate:                 rate,
		DisplacementKgDS:     displacement,
		MaxRoughageKgDS:      maxRoughageKgDS,
		AdjustedRoughageKgDS: adjusted,
		ActualRoughageKgDS:   actualRoughageKgDS,
		Overfeeding:          actualRoughageKgDS > adjusted,
	}, nil
}

// RecommendConcentrate inverts the substitution model: the concentrate gift
// that brings the adjusted roughage intake down to the target. Zero when the
// target is already at or above the maximum.
func (c *Calculator) RecommendConcentrate(maxRoughageKgDS, targetRoughageKgDS, rate float64) (float64, error) {
	if rate <= 0 || rate > 1 {
		return 0, validationErr("rate", rate, "substitution rate must be within (0,1]")
	}
	if maxRoughageKgDS < 0 {
		return 0, validationErr("maxRoughageKgDS", maxRoughageKgDS, "max roughage intake cannot be negative")
	}
	if targetRoughageKgDS < 0 {
		return 0, validationErr("targetRoughageKgDS", targetRoughageKgDS, "target roughage intake cannot be negative")
	}
	if targetRoughageKgDS >= maxRoughageKgDS {
		return 0, nil
	}
	return (maxRoughageKgDS - targetRoughageKgDS) / rate, nil
}
