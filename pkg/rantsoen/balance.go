package rantsoen

import "github.com/veldman/rantsoen/pkg/domain/entities"

// Balance parameter names as they appear in results and reports.
const (
	ParamDryMatter = "Droge stof opname"
	ParamVEM       = "Energie (VEM)"
	ParamDVE       = "Eiwit (DVE)"
	ParamOEB       = "OEB"
	ParamCa        = "Calcium"
	ParamP         = "Fosfor"
)

// Balances compares the requirement with the supplied nutrients and
// classifies every parameter. Status is a pure function of supply,
// requirement and the parameter-specific thresholds.
func (c *Calculator) Balances(req *NutrientRequirement, supply entities.NutrientSupply) []entities.NutrientBalance {
	return []entities.NutrientBalance{
		c.dryMatterBalance(req.DryMatterMaxKg, supply.DryMatterKg),
		c.ratioBalance(ParamVEM, "VEM", req.VEM, supply.VEM),
		c.ratioBalance(ParamDVE, "g", req.DVEGrams, supply.DVEGrams),
		c.oebBalance(supply.OEBGrams),
		c.ratioBalance(ParamCa, "g", req.CaGrams, supply.CaGrams),
		c.ratioBalance(ParamP, "g", req.PGrams, supply.PGrams),
	}
}

// dryMatterBalance flags intake above the ceiling; under-filling is normal.
func (c *Calculator) dryMatterBalance(maxKg, supplyKg float64) entities.NutrientBalance {
	balance := entities.NutrientBalance{
		Parameter:   ParamDryMatter,
		Unit:        "kg DS",
		Requirement: maxKg,
		Supply:      supplyKg,
		Balance:     supplyKg - maxKg,
		Status:      entities.StatusOK,
	}
	if supplyKg > maxKg {
		balance.Status = entities.StatusWarning
		balance.Note = "opname boven de maximale droge stof capaciteit"
	}
	return balance
}

// ratioBalance classifies a parameter by its supply as a percentage of the
// requirement: <90 deficient, 90-100 warning, 100-110 ok, >110 warning for
// wasteful excess. A zero requirement is trivially met.
func (c *Calculator) ratioBalance(parameter, unit string, requirement, supply float64) entities.NutrientBalance {
	balance := entities.NutrientBalance{
		Parameter:   parameter,
		Unit:        unit,
		Requirement: requirement,
		Supply:      supply,
		Balance:     supply - requirement,
	}
	if requirement <= 0 {
		balance.Status = entities.StatusOK
		return balance
	}

	percent := supply / requirement * 100
	k := c.constants
	switch {
	case percent < k.BalanceDeficientBelowPct:
		balance.Status = entities.StatusDeficient
		balance.Note = "dekking onder 90% van de behoefte"
	case percent < k.BalanceOKFromPct:
		balance.Status = entities.StatusWarning
		balance.Note = "dekking net onder de behoefte"
	case percent > k.BalanceExcessAbovePct:
		balance.Status = entities.StatusWarning
		balance.Note = "ruim boven de behoefte (overmaat)"
	default:
		balance.Status = entities.StatusOK
	}
	return balance
}

// oebBalance judges the rumen-degradable protein balance on supply alone:
// the requirement is zero, the supply itself is the balance.
func (c *Calculator) oebBalance(supplyGrams float64) entities.NutrientBalance {
	balance := entities.NutrientBalance{
		Parameter:   ParamOEB,
		Unit:        "g",
		Requirement: 0,
		Supply:      supplyGrams,
		Balance:     supplyGrams,
	}
	k := c.constants
	switch {
	case supplyGrams < k.OEBDeficientBelowGrams:
		balance.Status = entities.StatusDeficient
		balance.Note = "pensmicroben komen stikstof tekort"
	case supplyGrams < k.OEBWarningBelowGrams:
		balance.Status = entities.StatusWarning
		balance.Note = "OEB licht negatief"
	default:
		balance.Status = entities.StatusOK
	}
	return balance
}

// TargetMet reports whether both energy and protein supply reach the
// coverage threshold of the requirement.
func (c *Calculator) TargetMet(req *NutrientRequirement, supply entities.NutrientSupply) bool {
	threshold := c.constants.TargetMetPct / 100
	vemMet := req.VEM <= 0 || supply.VEM >= req.VEM*threshold
	dveMet := req.DVEGrams <= 0 || supply.DVEGrams >= req.DVEGrams*threshold
	return vemMet && dveMet
}

// summaryMessages maps profile names to advisory narratives.
var summaryMessages = map[string]struct{ met, notMet string }{
	"Hoogproductieve melkkoe": {
		met:    "Het rantsoen dekt de hoge energie- en eiwitbehoefte van deze productiegroep.",
		notMet: "Hoogproductieve dieren komen met dit rantsoen tekort; verhoog de energiedichtheid of de krachtvoergift.",
	},
	"Standaard melkkoe": {
		met:    "Het rantsoen past bij een gemiddeld producerende melkkoe.",
		notMet: "Het rantsoen dekt de behoefte van een gemiddelde melkkoe nog niet volledig.",
	},
	"Droogstaande koe": {
		met:    "Het rantsoen past bij de droogstand; bewaak de energieovermaat richting afkalven.",
		notMet: "Ook in de droogstand moet de basisbehoefte gedekt zijn; controleer de ruwvoerkwaliteit.",
	},
	"Vaars": {
		met:    "Het rantsoen ondersteunt productie en jeugdgroei van deze vaars.",
		notMet: "Vaarzen hebben naast productie ook groeibehoefte; dit rantsoen dekt die nog niet.",
	},
}

// SummaryMessage returns the advisory narrative for a profile, with a
// generic fallback for unrecognized profile names.
func SummaryMessage(profileName string, targetMet bool) string {
	if messages, ok := summaryMessages[profileName]; ok {
		if targetMet {
			return messages.met
		}
		return messages.notMet
	}
	if targetMet {
		return "Het rantsoen dekt de energie- en eiwitbehoefte."
	}
	return "Het rantsoen dekt de energie- en eiwitbehoefte nog niet; zie de balansen voor de tekorten."
}
