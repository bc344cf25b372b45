package rantsoen

import (
	"math"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

// RequirementComponent is one additive term of a requirement. Components are
// exposed individually so each empirical term can be audited and tested on
// its own; composition is plain addition with no cross-term rounding.
type RequirementComponent struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// NutrientRequirement is the daily requirement of one animal or group.
type NutrientRequirement struct {
	VEM            float64                `json:"vem"`
	DVEGrams       float64                `json:"dve_grams"`
	CaGrams        float64                `json:"ca_grams"`
	PGrams         float64                `json:"p_grams"`
	DryMatterMaxKg float64                `json:"dry_matter_max_kg"`
	VEMComponents  []RequirementComponent `json:"vem_components"`
	DVEComponents  []RequirementComponent `json:"dve_components"`
	Strategy       string                 `json:"strategy"`
}

// RequirementStrategy computes a requirement. The caller selects the
// strategy explicitly; it is never inferred from which optional fields
// happen to be populated.
type RequirementStrategy interface {
	Name() string
	Requirements(c *Calculator) (*NutrientRequirement, error)
}

// Strategy names as reported on results and audit trails.
const (
	StrategyProfileDefault = "profiel-standaard"
	StrategyDynamic        = "dynamisch"
)

// VEMMaintenance returns the maintenance energy requirement.
func (c *Calculator) VEMMaintenance(weightKg float64, lactating bool) (float64, error) {
	mw, err := c.MetabolicWeight(weightKg)
	if err != nil {
		return 0, err
	}
	if lactating {
		return c.constants.VEMMaintenanceLactating * mw, nil
	}
	return c.constants.VEMMaintenanceDry * mw, nil
}

// VEMProduction returns the energy requirement for milk production.
func (c *Calculator) VEMProduction(fpcmKg float64) (float64, error) {
	if fpcmKg < 0 {
		return 0, validationErr("fpcmKg", fpcmKg, "FPCM cannot be negative")
	}
	return c.constants.VEMPerKgFPCM * fpcmKg, nil
}

// VEMPregnancy returns the gestation surcharge: zero through the threshold
// day, then a continuous exponential reaching roughly 2000 VEM by day 250
// and 3000 VEM near term.
func (c *Calculator) VEMPregnancy(daysPregnant int) (float64, error) {
	if daysPregnant < 0 {
		return 0, validationErr("daysPregnant", daysPregnant, "days pregnant cannot be negative")
	}
	if daysPregnant > entities.MaxDaysPregnant {
		return 0, validationErr("daysPregnant", daysPregnant, "days pregnant exceeds gestation length")
	}
	k := c.constants
	if daysPregnant <= k.PregnancyThresholdDays {
		return 0, nil
	}
	return k.PregnancyVEMCoefficient * math.Exp(k.PregnancyVEMExponent*float64(daysPregnant-k.PregnancyThresholdDays)), nil
}

// VEMGrowth returns the youth-growth surcharge for first and second parity
// animals in early lactation.
func (c *Calculator) VEMGrowth(parity, daysInMilk int) (float64, error) {
	if parity < 1 {
		return 0, validationErr("parity", parity, "parity must be at least 1")
	}
	if daysInMilk < 0 {
		return 0, validationErr("daysInMilk", daysInMilk, "days in milk cannot be negative")
	}
	if daysInMilk > c.constants.GrowthMaxDaysInMilk {
		return 0, nil
	}
	switch parity {
	case 1:
		return c.constants.GrowthVEMFirstParity, nil
	case 2:
		return c.constants.GrowthVEMSecondParity, nil
	default:
		return 0, nil
	}
}

// VEMGrazing returns the flat grazing surcharge.
func (c *Calculator) VEMGrazing() float64 {
	return c.constants.GrazingVEM()
}

// DVEMaintenance returns the maintenance protein requirement in grams/day.
func (c *Calculator) DVEMaintenance(weightKg float64) (float64, error) {
	if weightKg <= 0 {
		return 0, validationErr("weightKg", weightKg, "weight must be positive")
	}
	return c.constants.DVEMaintenanceBase + c.constants.DVEMaintenancePerKgWeight*weightKg, nil
}

// DVEProduction returns the protein requirement for milk production in
// grams/day, from the daily protein yield.
func (c *Calculator) DVEProduction(milkKg, proteinPercent float64) (float64, error) {
	py, err := c.ProteinYield(milkKg, proteinPercent)
	if err != nil {
		return 0, err
	}
	return c.constants.DVEProductionLinear*py + c.constants.DVEProductionQuadratic*py*py, nil
}

// DVEPregnancy returns the fixed gestation protein surcharge in grams/day.
func (c *Calculator) DVEPregnancy(daysPregnant int) (float64, error) {
	if daysPregnant < 0 {
		return 0, validationErr("daysPregnant", daysPregnant, "days pregnant cannot be negative")
	}
	if daysPregnant <= c.constants.PregnancyThresholdDays {
		return 0, nil
	}
	return c.constants.PregnancyDVEGrams, nil
}

// DVEGrowth returns the youth-growth protein surcharge in grams/day.
func (c *Calculator) DVEGrowth(parity, daysInMilk int) (float64, error) {
	if parity < 1 {
		return 0, validationErr("parity", parity, "parity must be at least 1")
	}
	if daysInMilk < 0 {
		return 0, validationErr("daysInMilk", daysInMilk, "days in milk cannot be negative")
	}
	if daysInMilk > c.constants.GrowthMaxDaysInMilk {
		return 0, nil
	}
	switch parity {
	case 1:
		return c.constants.GrowthDVEFirstParity, nil
	case 2:
		return c.constants.GrowthDVESecondParity, nil
	default:
		return 0, nil
	}
}

// CaRequirement returns the daily calcium requirement in grams.
func (c *Calculator) CaRequirement(weightKg, milkKg float64) float64 {
	return c.constants.CaMaintenancePerKgWeight*weightKg + c.constants.CaPerKgMilk*milkKg
}

// PRequirement returns the daily phosphorus requirement in grams.
func (c *Calculator) PRequirement(weightKg, milkKg float64) float64 {
	return c.constants.PMaintenancePerKgWeight*weightKg + c.constants.PPerKgMilk*milkKg
}

// ProfileDefaultStrategy takes the requirement straight from the reference
// profile, plus the flat grazing surcharge.
type ProfileDefaultStrategy struct {
	Profile entities.AnimalProfile
	Grazing bool
}

// Name implements RequirementStrategy.
func (s ProfileDefaultStrategy) Name() string { return StrategyProfileDefault }

// Requirements implements RequirementStrategy.
func (s ProfileDefaultStrategy) Requirements(c *Calculator) (*NutrientRequirement, error) {
	if s.Profile.WeightKg <= 0 {
		return nil, validationErr("profile.weightKg", s.Profile.WeightKg, "weight must be positive")
	}

	req := &NutrientRequirement{
		VEM:            s.Profile.VEMTarget,
		DVEGrams:       s.Profile.DVETargetGrams,
		CaGrams:        c.CaRequirement(s.Profile.WeightKg, 0),
		PGrams:         c.PRequirement(s.Profile.WeightKg, 0),
		DryMatterMaxKg: s.Profile.MaxDryMatterKg,
		Strategy:       StrategyProfileDefault,
		VEMComponents: []RequirementComponent{
			{Name: "profielnorm", Value: s.Profile.VEMTarget, Unit: "VEM"},
		},
		DVEComponents: []RequirementComponent{
			{Name: "profielnorm", Value: s.Profile.DVETargetGrams, Unit: "g"},
		},
	}
	if s.Grazing {
		grazing := c.VEMGrazing()
		req.VEM += grazing
		req.VEMComponents = append(req.VEMComponents,
			RequirementComponent{Name: "weidegang", Value: grazing, Unit: "VEM"})
	}
	return req, nil
}

// DynamicStrategy derives the requirement from the animal's lactation state
// and a milk production record, superseding the profile defaults.
type DynamicStrategy struct {
	Profile   entities.AnimalProfile
	Lactation entities.LactationState
	Milk      *entities.MilkProduction
}

// Name implements RequirementStrategy.
func (s DynamicStrategy) Name() string { return StrategyDynamic }

// Requirements implements RequirementStrategy.
func (s DynamicStrategy) Requirements(c *Calculator) (*NutrientRequirement, error) {
	if s.Profile.WeightKg <= 0 {
		return nil, validationErr("profile.weightKg", s.Profile.WeightKg, "weight must be positive")
	}
	if err := s.Lactation.Validate(); err != nil {
		return nil, validationErr("lactation", s.Lactation, err.Error())
	}
	if s.Milk == nil {
		return nil, validationErr("milk", nil, "dynamic requirement needs a milk production record")
	}
	if err := s.Milk.Validate(); err != nil {
		return nil, validationErr("milk", *s.Milk, err.Error())
	}

	maintenance, err := c.VEMMaintenance(s.Profile.WeightKg, s.Lactation.Lactating)
	if err != nil {
		return nil, err
	}
	fpcm, err := c.FPCM(s.Milk.MilkKg, s.Milk.FatPercent, s.Milk.ProteinPercent)
	if err != nil {
		return nil, err
	}
	production, err := c.VEMProduction(fpcm)
	if err != nil {
		return nil, err
	}
	pregnancy, err := c.VEMPregnancy(s.Lactation.DaysPregnant)
	if err != nil {
		return nil, err
	}
	growth, err := c.VEMGrowth(s.Lactation.Parity, s.Lactation.DaysInMilk)
	if err != nil {
		return nil, err
	}
	var grazing float64
	if s.Lactation.Grazing {
		grazing = c.VEMGrazing()
	}

	dveMaintenance, err := c.DVEMaintenance(s.Profile.WeightKg)
	if err != nil {
		return nil, err
	}
	dveProduction, err := c.DVEProduction(s.Milk.MilkKg, s.Milk.ProteinPercent)
	if err != nil {
		return nil, err
	}
	dvePregnancy, err := c.DVEPregnancy(s.Lactation.DaysPregnant)
	if err != nil {
		return nil, err
	}
	dveGrowth, err := c.DVEGrowth(s.Lactation.Parity, s.Lactation.DaysInMilk)
	if err != nil {
		return nil, err
	}

	voc, err := c.IntakeCapacity(s.Lactation)
	if err != nil {
		return nil, err
	}

	req := &NutrientRequirement{
		VEM:            maintenance + production + pregnancy + growth + grazing,
		DVEGrams:       dveMaintenance + dveProduction + dvePregnancy + dveGrowth,
		CaGrams:        c.CaRequirement(s.Profile.WeightKg, s.Milk.MilkKg),
		PGrams:         c.PRequirement(s.Profile.WeightKg, s.Milk.MilkKg),
		DryMatterMaxKg: voc.CapacityKgDS,
		Strategy:       StrategyDynamic,
		VEMComponents: []RequirementComponent{
			{Name: "onderhoud", Value: maintenance, Unit: "VEM"},
			{Name: "melkproductie", Value: production, Unit: "VEM"},
			{Name: "dracht", Value: pregnancy, Unit: "VEM"},
			{Name: "jeugdgroei", Value: growth, Unit: "VEM"},
			{Name: "weidegang", Value: grazing, Unit: "VEM"},
		},
		DVEComponents: []RequirementComponent{
			{Name: "onderhoud", Value: dveMaintenance, Unit: "g"},
			{Name: "melkproductie", Value: dveProduction, Unit: "g"},
			{Name: "dracht", Value: dvePregnancy, Unit: "g"},
			{Name: "jeugdgroei", Value: dveGrowth, Unit: "g"},
		},
	}
	return req, nil
}
