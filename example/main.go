// Example of using the rantsoen calculation engine as a library: a
// mid-lactation cow on grass silage, maize and concentrate, calculated with
// the dynamic requirement strategy.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/veldman/rantsoen/pkg/application/services"
	"github.com/veldman/rantsoen/pkg/cvb"
	"github.com/veldman/rantsoen/pkg/domain/entities"
	"github.com/veldman/rantsoen/pkg/interfaces/cli/output"
	"github.com/veldman/rantsoen/pkg/logger"
)

func main() {
	log := logger.Must(logger.NewDevelopment())
	defer func() { _ = log.Sync() }()

	service, err := services.NewRationService(cvb.CVB2025(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	graskuil := entities.Feed{
		ID: "graskuil", Name: "Graskuil voorjaar",
		VEMPerKgDS: 890, DVEPerKgDS: 75, OEBPerKgDS: 45,
		CaPerKgDS: 5.2, PPerKgDS: 3.9,
		StructuurPerKgDS: 1.25, DefaultDSPercent: 42,
		Basis: entities.BasisPerKgProduct, Category: entities.CategoryRoughage,
	}
	snijmais := entities.Feed{
		ID: "snijmais", Name: "Snijmais",
		VEMPerKgDS: 960, DVEPerKgDS: 50, OEBPerKgDS: -25,
		CaPerKgDS: 1.5, PPerKgDS: 2.0,
		StructuurPerKgDS: 1.05, DefaultDSPercent: 34,
		Basis: entities.BasisPerKgProduct, Category: entities.CategoryRoughage,
	}
	brok := entities.Feed{
		ID: "standaardbrok", Name: "Standaardbrok",
		VEMPerKgDS: 1080, DVEPerKgDS: 105, OEBPerKgDS: 10,
		CaPerKgDS: 8.0, PPerKgDS: 4.5,
		StructuurPerKgDS: 0.25, DefaultDSPercent: 88,
		Basis: entities.BasisPerKgDryMatter, Category: entities.CategoryConcentrate,
	}

	result, err := service.Calculate(context.Background(), services.RationRequest{
		Profile: entities.AnimalProfile{
			ID: "standaard", Name: "Standaard melkkoe",
			WeightKg: 650, VEMTarget: 17500, DVETargetGrams: 1650, MaxDryMatterKg: 22,
		},
		Strategy: services.DynamicRequirement,
		Lactation: &entities.LactationState{
			Parity: 3, DaysInMilk: 120, DaysPregnant: 40, Lactating: true,
		},
		Milk: &entities.MilkProduction{
			MilkKg: 30, FatPercent: 4.4, ProteinPercent: 3.5, Ureum: 22,
		},
		Lines: []entities.RationLine{
			{Feed: graskuil, Input: entities.FeedInput{AmountKg: 30, DSPercent: 42}},
			{Feed: snijmais, Input: entities.FeedInput{AmountKg: 18, DSPercent: 34}},
			{Feed: brok, Input: entities.FeedInput{AmountKg: 6.5}},
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output.RenderResult(os.Stdout, result)
	fmt.Println()
	fmt.Print(result.FlattenedReport())
}
