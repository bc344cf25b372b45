package rantsoen

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/veldman/rantsoen/pkg/cvb"
	"github.com/veldman/rantsoen/pkg/domain/entities"
)

// AuditInputs carries the raw inputs a calculation ran with, so the trail
// can echo them and substitute them into formula text.
type AuditInputs struct {
	Profile   entities.AnimalProfile
	Lactation *entities.LactationState
	Milk      *entities.MilkProduction
	Lines     []entities.RationLine
	Grazing   bool
}

// AuditTrail is the ordered step tree behind one calculation. Steps are
// emitted in report order: inputs, VEM derivation, DVE derivation, VOC
// derivation, per-feed contributions, totals, balances, summary.
type AuditTrail struct {
	Steps []entities.CalculationStep `json:"steps"`
}

// displayRound rounds a value for step display. Rounding happens only here,
// at the display boundary; all arithmetic between dependent steps uses the
// unrounded float64 values.
func displayRound(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// fnum renders a number for substituted-calculation text.
func fnum(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}

// fnumExact renders a coefficient literal without rounding.
func fnumExact(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func newStep(name, formula string, inputs []entities.StepInput, calculation string, result float64, unit, source string, substeps ...entities.CalculationStep) entities.CalculationStep {
	return entities.CalculationStep{
		Name:        name,
		Formula:     formula,
		Inputs:      inputs,
		Calculation: calculation,
		Result:      displayRound(result),
		Unit:        unit,
		Source:      source,
		Substeps:    substeps,
	}
}

// BuildAuditTrail wraps an already computed calculation into its reproducible
// step tree. The trail cites formula, named inputs, substituted arithmetic,
// display-rounded result and source for every number the caller will see.
func (c *Calculator) BuildAuditTrail(
	in AuditInputs,
	req *NutrientRequirement,
	supply *SupplyResult,
	structure *entities.StructureValueResult,
	voc *entities.VOCResult,
	substitution *entities.SubstitutionResult,
	balances []entities.NutrientBalance,
	summary string,
) AuditTrail {
	trail := AuditTrail{}
	trail.Steps = append(trail.Steps, c.inputsStep(in))
	trail.Steps = append(trail.Steps, c.vemRequirementStep(in, req))
	trail.Steps = append(trail.Steps, c.dveRequirementStep(in, req))
	if voc != nil && in.Lactation != nil {
		trail.Steps = append(trail.Steps, c.vocStep(*in.Lactation, voc))
	}
	trail.Steps = append(trail.Steps, c.feedSteps(in, supply))
	trail.Steps = append(trail.Steps, c.totalsStep(supply, structure))
	if substitution != nil {
		trail.Steps = append(trail.Steps, c.substitutionStep(substitution))
	}
	trail.Steps = append(trail.Steps, c.balanceSteps(balances))
	trail.Steps = append(trail.Steps, newStep("samenvatting", "adviesregel per profiel", nil, summary, 0, "", ""))
	return trail
}

func (c *Calculator) inputsStep(in AuditInputs) entities.CalculationStep {
	inputs := []entities.StepInput{
		{Name: "lichaamsgewicht", Value: in.Profile.WeightKg, Unit: "kg"},
	}
	if in.Lactation != nil {
		inputs = append(inputs,
			entities.StepInput{Name: "pariteit", Value: float64(in.Lactation.Parity)},
			entities.StepInput{Name: "dagen in lactatie", Value: float64(in.Lactation.DaysInMilk), Unit: "d"},
			entities.StepInput{Name: "dagen drachtig", Value: float64(in.Lactation.DaysPregnant), Unit: "d"},
		)
	}
	if in.Milk != nil {
		inputs = append(inputs,
			entities.StepInput{Name: "melkgift", Value: in.Milk.MilkKg, Unit: "kg/d"},
			entities.StepInput{Name: "vetgehalte", Value: in.Milk.FatPercent, Unit: "%"},
			entities.StepInput{Name: "eiwitgehalte", Value: in.Milk.ProteinPercent, Unit: "%"},
		)
	}
	grazing := 0.0
	if in.Grazing {
		grazing = 1.0
	}
	inputs = append(inputs, entities.StepInput{Name: "weidegang", Value: grazing})

	return newStep("invoer", fmt.Sprintf("profiel %q, %d voedermiddelen", in.Profile.Name, len(in.Lines)),
		inputs, "", 0, "", "")
}

func (c *Calculator) vemRequirementStep(in AuditInputs, req *NutrientRequirement) entities.CalculationStep {
	k := c.constants
	var substeps []entities.CalculationStep

	if req.Strategy == StrategyProfileDefault {
		for _, component := range req.VEMComponents {
			switch component.Name {
			case "profielnorm":
				substeps = append(substeps, newStep("VEM profielnorm", "norm uit referentieprofiel",
					[]entities.StepInput{{Name: "profielnorm", Value: component.Value, Unit: "VEM"}},
					fnum(component.Value), component.Value, "VEM", cvb.SourceEnergy))
			case "weidegang":
				substeps = append(substeps, c.grazingSubstep(component.Value))
			}
		}
	} else {
		mw, _ := c.MetabolicWeight(in.Profile.WeightKg)
		for _, component := range req.VEMComponents {
			switch component.Name {
			case "onderhoud":
				coefficient := k.VEMMaintenanceDry
				if in.Lactation != nil && in.Lactation.Lactating {
					coefficient = k.VEMMaintenanceLactating
				}
				substeps = append(substeps, newStep("VEM onderhoud", "coefficient × LG^0.75",
					[]entities.StepInput{
						{Name: "coefficient", Value: coefficient, Unit: "VEM/kg^0.75"},
						{Name: "lichaamsgewicht", Value: in.Profile.WeightKg, Unit: "kg"},
					},
					fmt.Sprintf("%s × %s^%s = %s × %s", fnumExact(coefficient), fnumExact(in.Profile.WeightKg),
						fnumExact(k.MetabolicWeightExponent), fnumExact(coefficient), fnum(mw)),
					component.Value, "VEM", cvb.SourceEnergy))
			case "melkproductie":
				if in.Milk == nil {
					continue
				}
				fpcm, _ := c.FPCM(in.Milk.MilkKg, in.Milk.FatPercent, in.Milk.ProteinPercent)
				fpcmStep := newStep("FPCM", "melk × (0.337 + 0.116×vet% + 0.06×eiwit%)",
					[]entities.StepInput{
						{Name: "melkgift", Value: in.Milk.MilkKg, Unit: "kg/d"},
						{Name: "vetgehalte", Value: in.Milk.FatPercent, Unit: "%"},
						{Name: "eiwitgehalte", Value: in.Milk.ProteinPercent, Unit: "%"},
					},
					fmt.Sprintf("%s × (%s + %s×%s + %s×%s)",
						fnumExact(in.Milk.MilkKg), fnumExact(k.FPCMBase),
						fnumExact(k.FPCMFatCoefficient), fnumExact(in.Milk.FatPercent),
						fnumExact(k.FPCMProteinCoefficient), fnumExact(in.Milk.ProteinPercent)),
					fpcm, "kg", cvb.SourceEnergy)
				substeps = append(substeps, newStep("VEM melkproductie", "390 × FPCM",
					[]entities.StepInput{{Name: "FPCM", Value: fpcm, Unit: "kg"}},
					fmt.Sprintf("%s × %s", fnumExact(k.VEMPerKgFPCM), fnum(fpcm)),
					component.Value, "VEM", cvb.SourceEnergy, fpcmStep))
			case "dracht":
				days := 0
				if in.Lactation != nil {
					days = in.Lactation.DaysPregnant
				}
				calculation := "0 (dracht ≤ drempeldag)"
				if component.Value > 0 {
					calculation = fmt.Sprintf("%s × e^(%s × (%d − %d))",
						fnumExact(k.PregnancyVEMCoefficient), fnumExact(k.PregnancyVEMExponent),
						days, k.PregnancyThresholdDays)
				}
				substeps = append(substeps, newStep("VEM dracht", "toeslag vanaf dag 190, exponentieel",
					[]entities.StepInput{{Name: "dagen drachtig", Value: float64(days), Unit: "d"}},
					calculation, component.Value, "VEM", cvb.SourceEnergy))
			case "jeugdgroei":
				parity := 0
				if in.Lactation != nil {
					parity = in.Lactation.Parity
				}
				substeps = append(substeps, newStep("VEM jeugdgroei", "toeslag pariteit 1/2, t/m dag 100",
					[]entities.StepInput{{Name: "pariteit", Value: float64(parity)}},
					fnum(component.Value), component.Value, "VEM", cvb.SourceEnergy))
			case "weidegang":
				if component.Value > 0 {
					substeps = append(substeps, c.grazingSubstep(component.Value))
				}
			}
		}
	}

	return newStep("VEM-behoefte", "som van de behoeftecomponenten", nil,
		sumCalculation(req.VEMComponents), req.VEM, "VEM", cvb.SourceEnergy, substeps...)
}

func (c *Calculator) grazingSubstep(value float64) entities.CalculationStep {
	k := c.constants
	return newStep("VEM weidegang", "onderhoudstoeslag + looptoeslag",
		[]entities.StepInput{
			{Name: "onderhoudstoeslag", Value: k.GrazingMaintenanceVEM, Unit: "VEM"},
			{Name: "looptoeslag", Value: k.GrazingActivityVEM, Unit: "VEM"},
		},
		fmt.Sprintf("%s + %s", fnumExact(k.GrazingMaintenanceVEM), fnumExact(k.GrazingActivityVEM)),
		value, "VEM", cvb.SourceEnergy)
}

func (c *Calculator) dveRequirementStep(in AuditInputs, req *NutrientRequirement) entities.CalculationStep {
	k := c.constants
	var substeps []entities.CalculationStep

	if req.Strategy == StrategyProfileDefault {
		substeps = append(substeps, newStep("DVE profielnorm", "norm uit referentieprofiel",
			[]entities.StepInput{{Name: "profielnorm", Value: req.DVEGrams, Unit: "g"}},
			fnum(req.DVEGrams), req.DVEGrams, "g", cvb.SourceProtein))
	} else {
		for _, component := range req.DVEComponents {
			switch component.Name {
			case "onderhoud":
				substeps = append(substeps, newStep("DVE onderhoud", "54 + 0.1 × LG",
					[]entities.StepInput{{Name: "lichaamsgewicht", Value: in.Profile.WeightKg, Unit: "kg"}},
					fmt.Sprintf("%s + %s × %s", fnumExact(k.DVEMaintenanceBase),
						fnumExact(k.DVEMaintenancePerKgWeight), fnumExact(in.Profile.WeightKg)),
					component.Value, "g", cvb.SourceProtein))
			case "melkproductie":
				if in.Milk == nil {
					continue
				}
				py, _ := c.ProteinYield(in.Milk.MilkKg, in.Milk.ProteinPercent)
				pyStep := newStep("eiwitopbrengst", "melk × eiwit% × 10",
					[]entities.StepInput{
						{Name: "melkgift", Value: in.Milk.MilkKg, Unit: "kg/d"},
						{Name: "eiwitgehalte", Value: in.Milk.ProteinPercent, Unit: "%"},
					},
					fmt.Sprintf("%s × %s × 10", fnumExact(in.Milk.MilkKg), fnumExact(in.Milk.ProteinPercent)),
					py, "g/d", cvb.SourceProtein)
				substeps = append(substeps, newStep("DVE melkproductie", "1.396×E + 0.000195×E²",
					[]entities.StepInput{{Name: "eiwitopbrengst", Value: py, Unit: "g/d"}},
					fmt.Sprintf("%s×%s + %s×%s²", fnumExact(k.DVEProductionLinear), fnum(py),
						fnumExact(k.DVEProductionQuadratic), fnum(py)),
					component.Value, "g", cvb.SourceProtein, pyStep))
			case "dracht":
				days := 0
				if in.Lactation != nil {
					days = in.Lactation.DaysPregnant
				}
				substeps = append(substeps, newStep("DVE dracht", "vaste toeslag vanaf dag 190",
					[]entities.StepInput{{Name: "dagen drachtig", Value: float64(days), Unit: "d"}},
					fnum(component.Value), component.Value, "g", cvb.SourceProtein))
			case "jeugdgroei":
				parity := 0
				if in.Lactation != nil {
					parity = in.Lactation.Parity
				}
				substeps = append(substeps, newStep("DVE jeugdgroei", "toeslag pariteit 1/2, t/m dag 100",
					[]entities.StepInput{{Name: "pariteit", Value: float64(parity)}},
					fnum(component.Value), component.Value, "g", cvb.SourceProtein))
			}
		}
	}

	return newStep("DVE-behoefte", "som van de behoeftecomponenten", nil,
		sumCalculation(req.DVEComponents), req.DVEGrams, "g", cvb.SourceProtein, substeps...)
}

func (c *Calculator) vocStep(state entities.LactationState, voc *entities.VOCResult) entities.CalculationStep {
	k := c.constants
	a := float64(state.Parity-1) + float64(state.DaysInMilk)/365

	maturityStep := newStep("rijpheid", "8.743 + 3.563 × (1 − e^(−1.140×a))",
		[]entities.StepInput{{Name: "a (lactatiejaren)", Value: a}},
		fmt.Sprintf("%s + %s × (1 − e^(−%s × %s))", fnumExact(k.VOCBase), fnumExact(k.VOCMaturityGain),
			fnumExact(k.VOCMaturityRate), fnum(a)),
		voc.Maturity, "VW-eenheden", cvb.SourceIntake)
	lactationStep := newStep("lactatiefactor", "1 − 0.3156 × e^(−0.05889×DIM)",
		[]entities.StepInput{{Name: "dagen in lactatie", Value: float64(state.DaysInMilk), Unit: "d"}},
		fmt.Sprintf("1 − %s × e^(−%s × %d)", fnumExact(k.VOCLactationDepth), fnumExact(k.VOCLactationRate), state.DaysInMilk),
		voc.LactationFactor, "", cvb.SourceIntake)
	pregnancyStep := newStep("drachtfactor", "1 − 0.05529 × (dagen/220)²",
		[]entities.StepInput{{Name: "dagen drachtig", Value: float64(state.DaysPregnant), Unit: "d"}},
		fmt.Sprintf("1 − %s × (%d/%s)²", fnumExact(k.VOCPregnancyDepth), state.DaysPregnant, fnumExact(k.VOCPregnancyScaleDays)),
		voc.PregnancyFactor, "", cvb.SourceIntake)
	capacityStep := newStep("opnamecapaciteit", "rijpheid × lactatiefactor × drachtfactor × 2.0 kg DS/VW",
		[]entities.StepInput{
			{Name: "rijpheid", Value: voc.Maturity},
			{Name: "lactatiefactor", Value: voc.LactationFactor},
			{Name: "drachtfactor", Value: voc.PregnancyFactor},
		},
		fmt.Sprintf("%s × %s × %s × %s", fnum(voc.Maturity), fnum(voc.LactationFactor),
			fnum(voc.PregnancyFactor), fnumExact(k.KgDSPerFillingUnit)),
		voc.CapacityKgDS, "kg DS", cvb.SourceIntake)

	substeps := []entities.CalculationStep{maturityStep, lactationStep, pregnancyStep, capacityStep}
	if voc.FillingUnits > 0 {
		substeps = append(substeps, newStep("verzadiging", "totale VW / capaciteit × 100",
			[]entities.StepInput{
				{Name: "totale verzadigingswaarde", Value: voc.TotalFillingValue, Unit: "VW"},
				{Name: "capaciteit", Value: voc.FillingUnits, Unit: "VW"},
			},
			fmt.Sprintf("%s / %s × 100 (%s)", fnum(voc.TotalFillingValue), fnum(voc.FillingUnits), voc.Status),
			voc.SaturationPercent, "%", cvb.SourceIntake))
	}

	return newStep("voeropnamecapaciteit (VOC)", "rijpheid × lactatiefactor × drachtfactor", nil,
		"", voc.FillingUnits, "VW-eenheden", cvb.SourceIntake, substeps...)
}

func (c *Calculator) feedSteps(in AuditInputs, supply *SupplyResult) entities.CalculationStep {
	var substeps []entities.CalculationStep
	for _, contribution := range supply.Contributions {
		var dsCalculation string
		if contribution.Basis == entities.BasisPerKgProduct {
			dsCalculation = fmt.Sprintf("%s kg product × %s%% DS / 100", fnumExact(contribution.AmountKg), fnumExact(contribution.DSPercent))
		} else {
			dsCalculation = fmt.Sprintf("%s kg DS (basis is al droge stof)", fnumExact(contribution.AmountKg))
		}
		dsStep := newStep("droge stof", "hoeveelheid → kg DS",
			[]entities.StepInput{
				{Name: "hoeveelheid", Value: contribution.AmountKg, Unit: "kg"},
				{Name: "DS-percentage", Value: contribution.DSPercent, Unit: "%"},
			},
			dsCalculation, contribution.Supply.DryMatterKg, "kg DS", cvb.SourceFeedTable)
		vemStep := newStep("VEM-bijdrage", "kg DS × VEM/kg DS",
			[]entities.StepInput{{Name: "droge stof", Value: contribution.Supply.DryMatterKg, Unit: "kg DS"}},
			fmt.Sprintf("%s × %s", fnum(contribution.Supply.DryMatterKg), fnum(vemDensity(contribution))),
			contribution.Supply.VEM, "VEM", cvb.SourceFeedTable)
		dveStep := newStep("DVE-bijdrage", "kg DS × DVE/kg DS", nil,
			"", contribution.Supply.DVEGrams, "g", cvb.SourceFeedTable)
		substeps = append(substeps, newStep(fmt.Sprintf("voedermiddel %s", contribution.Name),
			"bijdrage per voedermiddel", nil, "", contribution.Supply.VEM, "VEM", cvb.SourceFeedTable,
			dsStep, vemStep, dveStep))
	}
	if supply.GrazingVEM > 0 {
		substeps = append(substeps, newStep("weidegras", "vaste bijdrage, eenmalig na sommatie",
			nil, fnum(supply.GrazingVEM), supply.GrazingVEM, "VEM", cvb.SourceEnergy))
	}
	return newStep("voederbijdragen", fmt.Sprintf("%d voedermiddelen", len(supply.Contributions)),
		nil, "", supply.Total.VEM, "VEM", cvb.SourceFeedTable, substeps...)
}

func vemDensity(contribution entities.FeedContribution) float64 {
	if contribution.Supply.DryMatterKg == 0 {
		return 0
	}
	return contribution.Supply.VEM / contribution.Supply.DryMatterKg
}

func (c *Calculator) totalsStep(supply *SupplyResult, structure *entities.StructureValueResult) entities.CalculationStep {
	structureStep := newStep("structuurwaarde", "Σ(kg DS × SW) / Σ kg DS",
		[]entities.StepInput{
			{Name: "totale structuurwaarde", Value: structure.TotalStructuur},
			{Name: "totale droge stof", Value: structure.TotalDryMatterKg, Unit: "kg DS"},
		},
		fmt.Sprintf("%s / %s (%s)", fnum(structure.TotalStructuur), fnum(structure.TotalDryMatterKg), structure.Status),
		structure.StructuurPerKgDS, "SW/kg DS", cvb.SourceStructure)

	return newStep("rantsoentotalen", "som over alle voedermiddelen",
		[]entities.StepInput{
			{Name: "droge stof", Value: supply.Total.DryMatterKg, Unit: "kg DS"},
			{Name: "VEM", Value: supply.Total.VEM, Unit: "VEM"},
			{Name: "DVE", Value: supply.Total.DVEGrams, Unit: "g"},
			{Name: "OEB", Value: supply.Total.OEBGrams, Unit: "g"},
			{Name: "Ca", Value: supply.Total.CaGrams, Unit: "g"},
			{Name: "P", Value: supply.Total.PGrams, Unit: "g"},
		},
		"", supply.Total.VEM, "VEM", cvb.SourceFeedTable, structureStep)
}

func (c *Calculator) substitutionStep(substitution *entities.SubstitutionResult) entities.CalculationStep {
	adjustedStep := newStep("gecorrigeerde ruwvoeropname", "max(0, maximale opname − verdringing)",
		[]entities.StepInput{
			{Name: "maximale ruwvoeropname", Value: substitution.MaxRoughageKgDS, Unit: "kg DS"},
			{Name: "verdringing", Value: substitution.DisplacementKgDS, Unit: "kg DS"},
		},
		fmt.Sprintf("max(0, %s − %s)", fnum(substitution.MaxRoughageKgDS), fnum(substitution.DisplacementKgDS)),
		substitution.AdjustedRoughageKgDS, "kg DS", cvb.SourceSubstitution)

	return newStep("verdringing ruwvoer", "krachtvoer kg DS × verdringingsfactor",
		[]entities.StepInput{
			{Name: "krachtvoer", Value: substitution.ConcentrateKgDS, Unit: "kg DS"},
			{Name: "verdringingsfactor", Value: substitution.Rate},
		},
		fmt.Sprintf("%s × %s", fnumExact(substitution.ConcentrateKgDS), fnumExact(substitution.Rate)),
		substitution.DisplacementKgDS, "kg DS", cvb.SourceSubstitution, adjustedStep)
}

func (c *Calculator) balanceSteps(balances []entities.NutrientBalance) entities.CalculationStep {
	var substeps []entities.CalculationStep
	for _, balance := range balances {
		substeps = append(substeps, newStep(balance.Parameter, "aanbod − behoefte",
			[]entities.StepInput{
				{Name: "behoefte", Value: balance.Requirement, Unit: balance.Unit},
				{Name: "aanbod", Value: balance.Supply, Unit: balance.Unit},
			},
			fmt.Sprintf("%s − %s (%s)", fnum(balance.Supply), fnum(balance.Requirement), balance.Status),
			balance.Balance, balance.Unit, balanceSource(balance.Parameter)))
	}
	return newStep("balansen", "aanbod versus behoefte per parameter", nil, "", 0, "", "", substeps...)
}

// balanceSource cites the table chapter a balance parameter is normed in.
func balanceSource(parameter string) string {
	switch parameter {
	case ParamDVE, ParamOEB:
		return cvb.SourceProtein
	case ParamCa, ParamP:
		return cvb.SourceMinerals
	case ParamDryMatter:
		return cvb.SourceIntake
	default:
		return cvb.SourceEnergy
	}
}

func sumCalculation(components []RequirementComponent) string {
	parts := make([]string, 0, len(components))
	for _, component := range components {
		parts = append(parts, fnum(component.Value))
	}
	return strings.Join(parts, " + ")
}

// Flatten serializes the trail as an ordered plain-text report for export
// and print.
func (t AuditTrail) Flatten() string {
	var b strings.Builder
	for _, step := range t.Steps {
		flattenStep(&b, step, 0)
	}
	return b.String()
}

func flattenStep(b *strings.Builder, step entities.CalculationStep, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(step.Name)
	if step.Formula != "" {
		fmt.Fprintf(b, " — %s", step.Formula)
	}
	b.WriteString("\n")

	if len(step.Inputs) > 0 {
		for _, input := range step.Inputs {
			fmt.Fprintf(b, "%s  invoer: %s = %s %s\n", indent, input.Name, fnum(input.Value), input.Unit)
		}
	}
	if step.Calculation != "" {
		fmt.Fprintf(b, "%s  berekening: %s\n", indent, step.Calculation)
	}
	if step.Unit != "" {
		fmt.Fprintf(b, "%s  resultaat: %s %s\n", indent, fnum(step.Result), step.Unit)
	}
	if step.Source != "" {
		fmt.Fprintf(b, "%s  bron: %s\n", indent, step.Source)
	}
	for _, substep := range step.Substeps {
		flattenStep(b, substep, depth+1)
	}
}
