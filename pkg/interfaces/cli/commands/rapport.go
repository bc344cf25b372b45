package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rapportCmd prints only the flattened audit report
var rapportCmd = &cobra.Command{
	Use:   "rapport <rantsoen.yaml>",
	Short: "Print het volledige herleidbare rekenrapport",
	Long: `Voert dezelfde berekening uit als bereken, maar print uitsluitend het
geordende rekenrapport: invoer, VEM-afleiding, DVE-afleiding, VOC-afleiding,
bijdragen per voedermiddel, totalen, balansen en samenvatting. Elk getal
staat er met formule, ingevulde waarden en bronvermelding.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := calculateRation(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Rekenrapport %s — %s (%s)\n\n",
			result.ID, result.Profile.Name, result.ConstantsVersion)
		fmt.Fprint(os.Stdout, result.FlattenedReport())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rapportCmd)
}
