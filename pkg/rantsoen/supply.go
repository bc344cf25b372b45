package rantsoen

import (
	"fmt"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

// SupplyResult aggregates the nutrient contribution of a full feed list.
type SupplyResult struct {
	Total             entities.NutrientSupply     `json:"total"`
	Contributions     []entities.FeedContribution `json:"contributions"`
	TotalStructuur    float64                     `json:"total_structuur"`
	TotalFillingValue float64                     `json:"total_filling_value"`
	GrazingVEM        float64                     `json:"grazing_vem"`
}

// FeedContribution computes one feed's share of the ration.
//
// Basis "per kg DS": the entered amount already is dry matter. Basis "per kg
// product": dry matter is amount times DS percent. In both cases the nutrient
// multiplier is the dry matter mass: CVB densities are defined per kg dry
// matter regardless of the basis label, never per kg raw product.
func (c *Calculator) FeedContribution(line entities.RationLine) (*entities.FeedContribution, error) {
	if err := line.Feed.Validate(); err != nil {
		return nil, validationErr("feed", line.Feed.ID, err.Error())
	}
	if err := line.Input.Validate(); err != nil {
		return nil, validationErr("feedInput", line.Feed.ID, err.Error())
	}

	dsPercent := line.Input.DSPercent
	if dsPercent == 0 {
		dsPercent = line.Feed.DefaultDSPercent
	}

	var dryMatterKg float64
	switch line.Feed.Basis {
	case entities.BasisPerKgDryMatter:
		dryMatterKg = line.Input.AmountKg
	case entities.BasisPerKgProduct:
		dryMatterKg = line.Input.AmountKg * dsPercent / 100
	default:
		return nil, validationErr("feed.basis", line.Feed.Basis, "unknown feed basis")
	}

	multiplier := dryMatterKg

	contribution := &entities.FeedContribution{
		FeedID:    line.Feed.ID,
		Name:      line.Feed.Name,
		AmountKg:  line.Input.AmountKg,
		DSPercent: dsPercent,
		Basis:     line.Feed.Basis,
		Category:  line.Feed.Category,
		Supply: entities.NutrientSupply{
			DryMatterKg: dryMatterKg,
			VEM:         multiplier * line.Feed.VEMPerKgDS,
			DVEGrams:    multiplier * line.Feed.DVEPerKgDS,
			OEBGrams:    multiplier * line.Feed.OEBPerKgDS,
			CaGrams:     multiplier * line.Feed.CaPerKgDS,
			PGrams:      multiplier * line.Feed.PPerKgDS,
		},
		StructuurTotal: dryMatterKg * line.Feed.StructuurPerKgDS,
		FillingTotal:   dryMatterKg * c.constants.FillingValue(line.Feed),
	}
	return contribution, nil
}

// AggregateSupply sums the contributions of a feed list. An empty list is a
// valid ration (nothing entered yet) and yields a zero supply. When grazing,
// the pasture VEM contribution is added exactly once, after summation,
// independent of how the feed list is partitioned.
func (c *Calculator) AggregateSupply(lines []entities.RationLine, grazing bool) (*SupplyResult, error) {
	result := &SupplyResult{
		Contributions: make([]entities.FeedContribution, 0, len(lines)),
	}

	for i, line := range lines {
		contribution, err := c.FeedContribution(line)
		if err != nil {
			return nil, fmt.Errorf("feed %d (%s): %w", i+1, line.Feed.ID, err)
		}
		result.Contributions = append(result.Contributions, *contribution)
		result.Total = result.Total.Add(contribution.Supply)
		result.TotalStructuur += contribution.StructuurTotal
		result.TotalFillingValue += contribution.FillingTotal
	}

	if grazing {
		result.GrazingVEM = c.constants.GrazingVEM()
		result.Total.VEM += result.GrazingVEM
	}

	return result, nil
}

// RoughageDryMatter returns the kg DS supplied by roughage feeds.
func RoughageDryMatter(contributions []entities.FeedContribution) float64 {
	var total float64
	for _, contribution := range contributions {
		if contribution.Category == entities.CategoryRoughage {
			total += contribution.Supply.DryMatterKg
		}
	}
	return total
}

// ConcentrateDryMatter returns the kg DS supplied by concentrate feeds.
func ConcentrateDryMatter(contributions []entities.FeedContribution) float64 {
	var total float64
	for _, contribution := range contributions {
		if contribution.Category == entities.CategoryConcentrate {
			total += contribution.Supply.DryMatterKg
		}
	}
	return total
}
