package rantsoen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

func auditFixture(t *testing.T) (AuditInputs, *NutrientRequirement, *SupplyResult, *entities.StructureValueResult, *entities.VOCResult, *entities.SubstitutionResult, []entities.NutrientBalance) {
	t.Helper()
	calc := newTestCalculator(t)

	lactation := entities.LactationState{Parity: 2, DaysInMilk: 120, DaysPregnant: 40, Lactating: true}
	milk := &entities.MilkProduction{MilkKg: 28, FatPercent: 4.4, ProteinPercent: 3.5}

	graskuil := entities.Feed{
		ID: "graskuil", Name: "Graskuil", VEMPerKgDS: 960, DVEPerKgDS: 70, OEBPerKgDS: 45,
		CaPerKgDS: 5.2, PPerKgDS: 4.0, StructuurPerKgDS: 1.25, DefaultDSPercent: 45,
		Basis: entities.BasisPerKgProduct, Category: entities.CategoryRoughage,
	}
	brok := entities.Feed{
		ID: "brok", Name: "Standaardbrok", VEMPerKgDS: 1080, DVEPerKgDS: 105, OEBPerKgDS: 10,
		CaPerKgDS: 8.0, PPerKgDS: 4.5, StructuurPerKgDS: 0.25, DefaultDSPercent: 88,
		Basis: entities.BasisPerKgDryMatter, Category: entities.CategoryConcentrate,
	}
	lines := []entities.RationLine{
		{Feed: graskuil, Input: entities.FeedInput{AmountKg: 28}},
		{Feed: brok, Input: entities.FeedInput{AmountKg: 6}},
	}

	in := AuditInputs{Profile: testProfile(), Lactation: &lactation, Milk: milk, Lines: lines}

	req, err := DynamicStrategy{Profile: in.Profile, Lactation: lactation, Milk: milk}.Requirements(calc)
	require.NoError(t, err)
	supply, err := calc.AggregateSupply(lines, false)
	require.NoError(t, err)
	structure := calc.StructureValue(supply.Contributions)
	voc, err := calc.IntakeCapacity(lactation)
	require.NoError(t, err)
	require.NoError(t, calc.Saturate(voc, supply.TotalFillingValue))
	substitution, err := calc.Substitution(
		ConcentrateDryMatter(supply.Contributions), req.DryMatterMaxKg,
		RoughageDryMatter(supply.Contributions), 0.45)
	require.NoError(t, err)
	balances := calc.Balances(req, supply.Total)

	return in, req, supply, structure, voc, substitution, balances
}

func TestBuildAuditTrail_StepOrder(t *testing.T) {
	calc := newTestCalculator(t)
	in, req, supply, structure, voc, substitution, balances := auditFixture(t)

	trail := calc.BuildAuditTrail(in, req, supply, structure, voc, substitution, balances, "samenvatting")

	names := make([]string, 0, len(trail.Steps))
	for _, step := range trail.Steps {
		names = append(names, step.Name)
	}
	assert.Equal(t, []string{
		"invoer",
		"VEM-behoefte",
		"DVE-behoefte",
		"voeropnamecapaciteit (VOC)",
		"voederbijdragen",
		"rantsoentotalen",
		"verdringing ruwvoer",
		"balansen",
		"samenvatting",
	}, names)
}

func TestBuildAuditTrail_StepsCiteFormulaAndSource(t *testing.T) {
	calc := newTestCalculator(t)
	in, req, supply, structure, voc, substitution, balances := auditFixture(t)

	trail := calc.BuildAuditTrail(in, req, supply, structure, voc, substitution, balances, "samenvatting")

	var vemStep *entities.CalculationStep
	for i := range trail.Steps {
		if trail.Steps[i].Name == "VEM-behoefte" {
			vemStep = &trail.Steps[i]
		}
	}
	require.NotNil(t, vemStep)
	assert.NotEmpty(t, vemStep.Formula)
	assert.NotEmpty(t, vemStep.Source)
	require.NotEmpty(t, vemStep.Substeps)

	// Every derivation substep carries formula, substituted arithmetic and a
	// table citation.
	for _, substep := range vemStep.Substeps {
		assert.NotEmpty(t, substep.Formula, substep.Name)
		assert.NotEmpty(t, substep.Calculation, substep.Name)
		assert.NotEmpty(t, substep.Source, substep.Name)
	}
}

func TestBuildAuditTrail_ResultsAreDisplayRounded(t *testing.T) {
	calc := newTestCalculator(t)
	in, req, supply, structure, voc, substitution, balances := auditFixture(t)

	trail := calc.BuildAuditTrail(in, req, supply, structure, voc, substitution, balances, "samenvatting")

	// Displayed VEM requirement is the unrounded total rounded to 2 decimals,
	// not a re-summation of rounded components.
	var vemStep entities.CalculationStep
	for _, step := range trail.Steps {
		if step.Name == "VEM-behoefte" {
			vemStep = step
		}
	}
	assert.Equal(t, displayRound(req.VEM), vemStep.Result)

	var checkRounded func(step entities.CalculationStep)
	checkRounded = func(step entities.CalculationStep) {
		assert.Equal(t, displayRound(step.Result), step.Result, step.Name)
		for _, substep := range step.Substeps {
			checkRounded(substep)
		}
	}
	for _, step := range trail.Steps {
		checkRounded(step)
	}
}

func TestBuildAuditTrail_SkipsOptionalSteps(t *testing.T) {
	calc := newTestCalculator(t)
	in, req, supply, structure, _, _, balances := auditFixture(t)

	trail := calc.BuildAuditTrail(in, req, supply, structure, nil, nil, balances, "samenvatting")

	for _, step := range trail.Steps {
		assert.NotEqual(t, "voeropnamecapaciteit (VOC)", step.Name)
		assert.NotEqual(t, "verdringing ruwvoer", step.Name)
	}
}

func TestAuditTrail_Flatten(t *testing.T) {
	calc := newTestCalculator(t)
	in, req, supply, structure, voc, substitution, balances := auditFixture(t)

	trail := calc.BuildAuditTrail(in, req, supply, structure, voc, substitution, balances, "het rantsoen past")
	report := trail.Flatten()

	// The flat report keeps the step order and the labelled lines.
	assert.Contains(t, report, "invoer")
	assert.Contains(t, report, "VEM-behoefte")
	assert.Contains(t, report, "berekening:")
	assert.Contains(t, report, "resultaat:")
	assert.Contains(t, report, "bron:")
	assert.Contains(t, report, "voedermiddel Graskuil")
	assert.Less(t,
		strings.Index(report, "VEM-behoefte"),
		strings.Index(report, "balansen"))
}

func TestBuildAuditTrail_FeedStepsFollowBasis(t *testing.T) {
	calc := newTestCalculator(t)
	in, req, supply, structure, voc, substitution, balances := auditFixture(t)

	trail := calc.BuildAuditTrail(in, req, supply, structure, voc, substitution, balances, "samenvatting")

	var feedStep entities.CalculationStep
	for _, step := range trail.Steps {
		if step.Name == "voederbijdragen" {
			feedStep = step
		}
	}
	require.Len(t, feedStep.Substeps, 2)

	// Product-basis feed shows the DS conversion; DS-basis feed does not.
	graskuil := feedStep.Substeps[0]
	require.NotEmpty(t, graskuil.Substeps)
	assert.Contains(t, graskuil.Substeps[0].Calculation, "% DS / 100")

	brok := feedStep.Substeps[1]
	require.NotEmpty(t, brok.Substeps)
	assert.Contains(t, brok.Substeps[0].Calculation, "basis is al droge stof")
}
