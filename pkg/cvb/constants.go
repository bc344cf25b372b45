// Package cvb holds the CVB 2025 coefficient table used by the calculation
// core. The table is a plain value, injected per call, so a future standard
// revision can coexist with this one without code changes.
package cvb

import (
	"fmt"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

// Version2025 labels the coefficient set shipped with this module.
const Version2025 = "CVB-2025"

// Source citations attached to audit steps. Every computed figure cites the
// table chapter its coefficients come from.
const (
	SourceEnergy       = "CVB Tabellenboek Voeding Herkauwers 2025, hoofdstuk 2 (energiebehoefte VEM)"
	SourceProtein      = "CVB Tabellenboek Voeding Herkauwers 2025, hoofdstuk 3 (eiwitbehoefte DVE/OEB)"
	SourceMinerals     = "CVB Tabellenboek Voeding Herkauwers 2025, hoofdstuk 5 (mineralen Ca/P)"
	SourceIntake       = "CVB Tabellenboek Voeding Herkauwers 2025, hoofdstuk 6 (voeropnamecapaciteit)"
	SourceStructure    = "CVB Tabellenboek Voeding Herkauwers 2025, hoofdstuk 7 (structuurwaarde)"
	SourceSubstitution = "CVB Tabellenboek Voeding Herkauwers 2025, hoofdstuk 6 (verdringing ruwvoer)"
	SourceFeedTable    = "CVB Veevoedertabel 2025 (voederwaarde per kg droge stof)"
)

// ConstantSet is the complete, consolidated coefficient table for one
// standard version. Earlier sources carried conflicting duplicates of some
// of these figures; the resolutions are documented in DESIGN.md and every
// contested figure is a named field here so a domain-expert correction is a
// data change, not a code change.
type ConstantSet struct {
	Version string

	// Metabolic and FPCM primitives.
	MetabolicWeightExponent float64
	FPCMBase                float64
	FPCMFatCoefficient      float64
	FPCMProteinCoefficient  float64

	// VEM requirement.
	VEMMaintenanceLactating float64 // VEM per kg metabolic weight
	VEMMaintenanceDry       float64 // VEM per kg metabolic weight
	VEMPerKgFPCM            float64
	PregnancyVEMCoefficient float64 // VEM at the pregnancy threshold day
	PregnancyVEMExponent    float64 // per day beyond the threshold
	PregnancyThresholdDays  int
	GrowthVEMFirstParity    float64
	GrowthVEMSecondParity   float64
	GrowthMaxDaysInMilk     int
	GrazingMaintenanceVEM   float64
	GrazingActivityVEM      float64

	// DVE requirement (grams/day).
	DVEMaintenanceBase        float64
	DVEMaintenancePerKgWeight float64
	DVEProductionLinear       float64 // per gram protein yield
	DVEProductionQuadratic    float64 // per gram protein yield squared
	PregnancyDVEGrams         float64
	GrowthDVEFirstParity      float64
	GrowthDVESecondParity     float64

	// Mineral requirements (grams/day).
	CaMaintenancePerKgWeight float64
	CaPerKgMilk              float64
	PMaintenancePerKgWeight  float64
	PPerKgMilk               float64

	// Voluntary intake capacity.
	VOCBase               float64
	VOCMaturityGain       float64
	VOCMaturityRate       float64
	VOCLactationDepth     float64
	VOCLactationRate      float64
	VOCPregnancyDepth     float64
	VOCPregnancyScaleDays float64
	KgDSPerFillingUnit    float64
	SaturationWarningPct  float64
	SaturationExceededPct float64

	// Structure value thresholds (per kg DS).
	StructureOKThreshold      float64
	StructureWarningThreshold float64

	// Concentrate/roughage substitution.
	DefaultSubstitutionRate float64

	// Balance classification.
	BalanceDeficientBelowPct float64
	BalanceOKFromPct         float64
	BalanceExcessAbovePct    float64
	OEBDeficientBelowGrams   float64
	OEBWarningBelowGrams     float64
	TargetMetPct             float64

	// Filling-value defaults per feed category, applied when a feed record
	// carries no measured value.
	FillingValueDefaults map[entities.FeedCategory]float64
}

// CVB2025 returns the authoritative 2025 coefficient set.
func CVB2025() ConstantSet {
	return ConstantSet{
		Version: Version2025,

		MetabolicWeightExponent: 0.75,
		FPCMBase:                0.337,
		FPCMFatCoefficient:      0.116,
		FPCMProteinCoefficient:  0.06,

		VEMMaintenanceLactating: 53.0,
		VEMMaintenanceDry:       42.4,
		VEMPerKgFPCM:            390,
		PregnancyVEMCoefficient: 950,
		PregnancyVEMExponent:    0.0123,
		PregnancyThresholdDays:  190,
		GrowthVEMFirstParity:    625,
		GrowthVEMSecondParity:   325,
		GrowthMaxDaysInMilk:     100,
		GrazingMaintenanceVEM:   500,
		GrazingActivityVEM:      675,

		DVEMaintenanceBase:        54,
		DVEMaintenancePerKgWeight: 0.1,
		DVEProductionLinear:       1.396,
		DVEProductionQuadratic:    0.000195,
		PregnancyDVEGrams:         150,
		GrowthDVEFirstParity:      64,
		GrowthDVESecondParity:     37,

		CaMaintenancePerKgWeight: 0.04,
		CaPerKgMilk:              1.2,
		PMaintenancePerKgWeight:  0.03,
		PPerKgMilk:               0.9,

		VOCBase:               8.743,
		VOCMaturityGain:       3.563,
		VOCMaturityRate:       1.140,
		VOCLactationDepth:     0.3156,
		VOCLactationRate:      0.05889,
		VOCPregnancyDepth:     0.05529,
		VOCPregnancyScaleDays: 220,
		KgDSPerFillingUnit:    2.0,
		SaturationWarningPct:  95,
		SaturationExceededPct: 100,

		StructureOKThreshold:      1.00,
		StructureWarningThreshold: 0.85,

		DefaultSubstitutionRate: 0.45,

		BalanceDeficientBelowPct: 90,
		BalanceOKFromPct:         100,
		BalanceExcessAbovePct:    110,
		OEBDeficientBelowGrams:   -50,
		OEBWarningBelowGrams:     0,
		TargetMetPct:             95,

		FillingValueDefaults: map[entities.FeedCategory]float64{
			entities.CategoryRoughage:    1.05,
			entities.CategoryConcentrate: 0.32,
			entities.CategoryByproduct:   0.55,
			entities.CategoryMineral:     0.0,
		},
	}
}

// GrazingVEM is the flat grazing surcharge: extra maintenance plus walking
// activity at pasture.
func (c ConstantSet) GrazingVEM() float64 {
	return c.GrazingMaintenanceVEM + c.GrazingActivityVEM
}

// FillingValue resolves a feed's filling value, falling back to the category
// default when the record carries none.
func (c ConstantSet) FillingValue(feed entities.Feed) float64 {
	if feed.FillingPerKgDS != nil {
		return *feed.FillingPerKgDS
	}
	return c.FillingValueDefaults[feed.Category]
}

// Validate rejects a coefficient set that cannot produce meaningful results.
func (c ConstantSet) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("constant set has no version label")
	}
	positive := []struct {
		name  string
		value float64
	}{
		{"metabolic weight exponent", c.MetabolicWeightExponent},
		{"VEM maintenance (lactating)", c.VEMMaintenanceLactating},
		{"VEM maintenance (dry)", c.VEMMaintenanceDry},
		{"VEM per kg FPCM", c.VEMPerKgFPCM},
		{"kg DS per filling unit", c.KgDSPerFillingUnit},
		{"VOC base", c.VOCBase},
		{"structure OK threshold", c.StructureOKThreshold},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s: %s must be positive, got %g", c.Version, p.name, p.value)
		}
	}
	if c.DefaultSubstitutionRate < 0 || c.DefaultSubstitutionRate > 1 {
		return fmt.Errorf("%s: substitution rate must be within [0,1], got %g", c.Version, c.DefaultSubstitutionRate)
	}
	if c.PregnancyThresholdDays <= 0 || c.PregnancyThresholdDays >= entities.MaxDaysPregnant {
		return fmt.Errorf("%s: pregnancy threshold must be within (0,%d), got %d",
			c.Version, entities.MaxDaysPregnant, c.PregnancyThresholdDays)
	}
	if c.StructureWarningThreshold > c.StructureOKThreshold {
		return fmt.Errorf("%s: structure warning threshold %g above OK threshold %g",
			c.Version, c.StructureWarningThreshold, c.StructureOKThreshold)
	}
	if len(c.FillingValueDefaults) == 0 {
		return fmt.Errorf("%s: filling value defaults are missing", c.Version)
	}
	return nil
}
