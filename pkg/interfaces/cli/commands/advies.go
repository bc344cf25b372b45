package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Advies flags
	adviesMaxRoughage    float64
	adviesTargetRoughage float64
	adviesRate           float64
)

// adviesCmd recommends a concentrate gift via the substitution model
var adviesCmd = &cobra.Command{
	Use:   "advies",
	Short: "Adviseer de krachtvoergift die de ruwvoeropname naar het doel brengt",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvies()
	},
}

func init() {
	rootCmd.AddCommand(adviesCmd)

	adviesCmd.Flags().Float64Var(&adviesMaxRoughage, "max", 0, "Maximale ruwvoeropname (kg DS)")
	adviesCmd.Flags().Float64Var(&adviesTargetRoughage, "doel", 0, "Gewenste ruwvoeropname (kg DS)")
	adviesCmd.Flags().Float64Var(&adviesRate, "factor", 0, "Verdringingsfactor (0 = standaard 0.45)")
	_ = adviesCmd.MarkFlagRequired("max")
	_ = adviesCmd.MarkFlagRequired("doel")
}

func runAdvies() error {
	service, err := newService()
	if err != nil {
		return err
	}

	rate := adviesRate
	if rate == 0 {
		rate = service.Calculator().Constants().DefaultSubstitutionRate
	}
	concentrate, err := service.Calculator().RecommendConcentrate(adviesMaxRoughage, adviesTargetRoughage, rate)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Krachtvoeradvies: %.2f kg DS (verdringingsfactor %.2f)\n", concentrate, rate)
	if concentrate == 0 {
		fmt.Fprintln(os.Stdout, "Het doel ligt op of boven de maximale ruwvoeropname; geen krachtvoer nodig.")
	}
	return nil
}
