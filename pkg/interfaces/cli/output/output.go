package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/veldman/rantsoen/pkg/application/dto"
	"github.com/veldman/rantsoen/pkg/domain/entities"
)

// RenderResult writes the human-readable balance overview.
func RenderResult(w io.Writer, result *dto.RationResult) {
	fmt.Fprintf(w, "Rantsoenberekening — %s (%s, %s)\n", result.Profile.Name, result.Strategy, result.ConstantsVersion)
	fmt.Fprintf(w, "==============================================\n\n")

	if len(result.Contributions) > 0 {
		fmt.Fprintf(w, "Voedermiddelen:\n")
		fmt.Fprintf(w, "%-28s %10s %10s %12s %10s\n", "Naam", "kg", "kg DS", "VEM", "DVE (g)")
		fmt.Fprintf(w, "%-28s %10s %10s %12s %10s\n", "----------------------------", "----------", "----------", "------------", "----------")
		for _, contribution := range result.Contributions {
			fmt.Fprintf(w, "%-28s %10.1f %10.2f %12.0f %10.0f\n",
				contribution.Name,
				contribution.AmountKg,
				contribution.Supply.DryMatterKg,
				contribution.Supply.VEM,
				contribution.Supply.DVEGrams)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Balansen:\n")
	fmt.Fprintf(w, "%-20s %12s %12s %12s %-10s\n", "Parameter", "Behoefte", "Aanbod", "Balans", "Status")
	fmt.Fprintf(w, "%-20s %12s %12s %12s %-10s\n", "--------------------", "------------", "------------", "------------", "----------")
	for _, balance := range result.Balances {
		fmt.Fprintf(w, "%-20s %12.0f %12.0f %+12.0f %-10s\n",
			balance.Parameter,
			balance.Requirement,
			balance.Supply,
			balance.Balance,
			balance.Status)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Structuurwaarde: %.2f per kg DS (%s)\n", result.Structure.StructuurPerKgDS, result.Structure.Status)
	if result.VOC != nil {
		fmt.Fprintf(w, "Voeropnamecapaciteit: %.1f kg DS, verzadiging %.1f%% (%s)\n",
			result.VOC.CapacityKgDS, result.VOC.SaturationPercent, result.VOC.Status)
	}
	if result.Substitution != nil {
		fmt.Fprintf(w, "Verdringing: %.2f kg DS ruwvoer door %.2f kg DS krachtvoer (factor %.2f)\n",
			result.Substitution.DisplacementKgDS, result.Substitution.ConcentrateKgDS, result.Substitution.Rate)
	}
	fmt.Fprintln(w)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "LET OP: %s\n", warning)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w)
	}

	verdict := "doel niet gehaald"
	if result.TargetMet {
		verdict = "doel gehaald"
	}
	fmt.Fprintf(w, "Samenvatting (%s): %s\n", verdict, result.Summary)
}

// RenderJSON writes the full result, audit trail included, as JSON.
func RenderJSON(w io.Writer, result *dto.RationResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// RenderBalance writes one balance row, used for interactive recalculation.
func RenderBalance(w io.Writer, balance entities.NutrientBalance) {
	fmt.Fprintf(w, "%s: behoefte %.0f %s, aanbod %.0f %s, balans %+.0f %s (%s)\n",
		balance.Parameter,
		balance.Requirement, balance.Unit,
		balance.Supply, balance.Unit,
		balance.Balance, balance.Unit,
		balance.Status)
}
