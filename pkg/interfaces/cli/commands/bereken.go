package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldman/rantsoen/pkg/application/dto"
	"github.com/veldman/rantsoen/pkg/application/services"
	"github.com/veldman/rantsoen/pkg/infrastructure/repositories/yamlfile"
	"github.com/veldman/rantsoen/pkg/interfaces/cli/output"
)

var (
	// Bereken flags
	withReport bool
	asJSON     bool
)

// berekenCmd calculates a full ration
var berekenCmd = &cobra.Command{
	Use:   "bereken <rantsoen.yaml>",
	Short: "Bereken behoefte, aanbod en balansen voor een rantsoen",
	Long: `Leest een rantsoenbestand (profiel, lactatiestatus, melkproductie en
voederlijst), berekent de behoefte volgens de gekozen strategie en zet het
voederaanbod, de balansen en de voeropnamecapaciteit ernaast.

Voorbeeld rantsoenbestand:

  profile: Standaard melkkoe
  strategy: dynamisch
  lactation: {parity: 2, days_in_milk: 120, days_pregnant: 40, lactating: true}
  milk: {milk_kg: 28, fat_percent: 4.4, protein_percent: 3.5}
  feeds:
    - {feed: graskuil, amount_kg: 35, ds_percent: 42}
    - {feed: standaardbrok, amount_kg: 7}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBereken(args[0])
	},
}

func init() {
	rootCmd.AddCommand(berekenCmd)

	berekenCmd.Flags().BoolVar(&withReport, "rapport", false, "Print het volledige rekenrapport na de balansen")
	berekenCmd.Flags().BoolVar(&asJSON, "json", false, "Schrijf het resultaat als JSON")
}

func runBereken(rationFile string) error {
	result, err := calculateRation(rationFile)
	if err != nil {
		return err
	}

	if asJSON {
		return output.RenderJSON(os.Stdout, result)
	}
	output.RenderResult(os.Stdout, result)
	if withReport {
		fmt.Fprintln(os.Stdout)
		fmt.Fprint(os.Stdout, result.FlattenedReport())
	}
	return nil
}

// calculateRation wires file loading, repositories and the service together
// for the bereken and rapport commands.
func calculateRation(rationFile string) (*dto.RationResult, error) {
	service, err := newService()
	if err != nil {
		return nil, err
	}
	feedRepo, profileRepo, err := loadRepositories()
	if err != nil {
		return nil, err
	}

	loader := yamlfile.NewLoader()
	ration, err := loader.LoadRation(rationFile)
	if err != nil {
		return nil, err
	}

	profile, err := profileRepo.GetProfileByName(ration.Profile)
	if err != nil {
		return nil, err
	}
	lines, err := ration.Lines(feedRepo.GetFeed)
	if err != nil {
		return nil, err
	}

	strategy := services.ProfileDefaultRequirement
	if ration.Strategy == "dynamisch" {
		strategy = services.DynamicRequirement
	}

	return service.Calculate(rootCmd.Context(), services.RationRequest{
		Profile:          *profile,
		Strategy:         strategy,
		Lactation:        ration.LactationState(),
		Milk:             ration.MilkProduction(),
		Lines:            lines,
		SubstitutionRate: cfg.SubstitutionRate,
	})
}
