package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

var (
	// VOC flags
	vocParity       int
	vocDaysInMilk   int
	vocDaysPregnant int
)

// vocCmd calculates only the voluntary intake capacity
var vocCmd = &cobra.Command{
	Use:   "voc",
	Short: "Bereken de voeropnamecapaciteit voor een lactatiestatus",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVOC()
	},
}

func init() {
	rootCmd.AddCommand(vocCmd)

	vocCmd.Flags().IntVar(&vocParity, "pariteit", 1, "Lactatienummer (1 = vaars)")
	vocCmd.Flags().IntVar(&vocDaysInMilk, "dagen-in-lactatie", 0, "Dagen sinds afkalven")
	vocCmd.Flags().IntVar(&vocDaysPregnant, "dagen-drachtig", 0, "Dagen drachtig")
}

func runVOC() error {
	service, err := newService()
	if err != nil {
		return err
	}

	voc, err := service.Calculator().IntakeCapacity(entities.LactationState{
		Parity:       vocParity,
		DaysInMilk:   vocDaysInMilk,
		DaysPregnant: vocDaysPregnant,
		Lactating:    vocDaysInMilk > 0,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Voeropnamecapaciteit\n")
	fmt.Fprintf(os.Stdout, "  rijpheid:        %8.3f\n", voc.Maturity)
	fmt.Fprintf(os.Stdout, "  lactatiefactor:  %8.3f\n", voc.LactationFactor)
	fmt.Fprintf(os.Stdout, "  drachtfactor:    %8.3f\n", voc.PregnancyFactor)
	fmt.Fprintf(os.Stdout, "  capaciteit:      %8.2f VW-eenheden\n", voc.FillingUnits)
	fmt.Fprintf(os.Stdout, "  capaciteit:      %8.2f kg DS\n", voc.CapacityKgDS)
	return nil
}
