package entities

// NutrientSupply holds the nutrients delivered by a feed or a whole ration.
// It is derived data, recomputed on every call.
type NutrientSupply struct {
	DryMatterKg float64 `json:"dry_matter_kg"`
	VEM         float64 `json:"vem"`
	DVEGrams    float64 `json:"dve_grams"`
	OEBGrams    float64 `json:"oeb_grams"`
	CaGrams     float64 `json:"ca_grams"`
	PGrams      float64 `json:"p_grams"`
}

// Add returns the element-wise sum of two supplies.
func (s NutrientSupply) Add(o NutrientSupply) NutrientSupply {
	return NutrientSupply{
		DryMatterKg: s.DryMatterKg + o.DryMatterKg,
		VEM:         s.VEM + o.VEM,
		DVEGrams:    s.DVEGrams + o.DVEGrams,
		OEBGrams:    s.OEBGrams + o.OEBGrams,
		CaGrams:     s.CaGrams + o.CaGrams,
		PGrams:      s.PGrams + o.PGrams,
	}
}

// BalanceStatus classifies a requirement/supply comparison.
type BalanceStatus int

const (
	StatusOK BalanceStatus = iota
	StatusWarning
	StatusDeficient
)

// String method for BalanceStatus enum
func (s BalanceStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusDeficient:
		return "deficient"
	default:
		return "Unknown"
	}
}

// NutrientBalance is one row of the requirement-versus-supply table.
type NutrientBalance struct {
	Parameter   string        `json:"parameter"`
	Unit        string        `json:"unit"`
	Requirement float64       `json:"requirement"`
	Supply      float64       `json:"supply"`
	Balance     float64       `json:"balance"`
	Status      BalanceStatus `json:"status"`
	Note        string        `json:"note,omitempty"`
}

// FeedContribution is the per-feed share of the ration's nutrient supply.
type FeedContribution struct {
	FeedID         FeedID         `json:"feed_id"`
	Name           string         `json:"name"`
	AmountKg       float64        `json:"amount_kg"`
	DSPercent      float64        `json:"ds_percent"`
	Basis          FeedBasis      `json:"basis"`
	Category       FeedCategory   `json:"category"`
	Supply         NutrientSupply `json:"supply"`
	StructuurTotal float64        `json:"structuur_total"`
	FillingTotal   float64        `json:"filling_total"`
}

// StructureValueResult reports fiber adequacy of the whole ration.
type StructureValueResult struct {
	TotalStructuur   float64       `json:"total_structuur"`
	TotalDryMatterKg float64       `json:"total_dry_matter_kg"`
	StructuurPerKgDS float64       `json:"structuur_per_kg_ds"`
	Status           BalanceStatus `json:"status"`
	AcidosisRisk     bool          `json:"acidosis_risk"`
}

// SaturationStatus classifies intake-capacity utilisation. An exceeded
// ration is a valid, reportable state, never silently clipped.
type SaturationStatus int

const (
	SaturationOK SaturationStatus = iota
	SaturationWarning
	SaturationExceeded
)

// String method for SaturationStatus enum
func (s SaturationStatus) String() string {
	switch s {
	case SaturationOK:
		return "ok"
	case SaturationWarning:
		return "warning"
	case SaturationExceeded:
		return "exceeded"
	default:
		return "Unknown"
	}
}

// VOCResult holds the voluntary intake capacity and its factor breakdown.
type VOCResult struct {
	Maturity          float64          `json:"maturity"`
	LactationFactor   float64          `json:"lactation_factor"`
	PregnancyFactor   float64          `json:"pregnancy_factor"`
	FillingUnits      float64          `json:"filling_units"`
	CapacityKgDS      float64          `json:"capacity_kg_ds"`
	TotalFillingValue float64          `json:"total_filling_value"`
	SaturationPercent float64          `json:"saturation_percent"`
	Status            SaturationStatus `json:"status"`
}

// SubstitutionResult describes how concentrate displaces roughage intake.
type SubstitutionResult struct {
	ConcentrateKgDS      float64 `json:"concentrate_kg_ds"`
	Rate                 float64 `json:"rate"`
	DisplacementKgDS     float64 `json:"displacement_kg_ds"`
	MaxRoughageKgDS      float64 `json:"max_roughage_kg_ds"`
	AdjustedRoughageKgDS float64 `json:"adjusted_roughage_kg_ds"`
	ActualRoughageKgDS   float64 `json:"actual_roughage_kg_ds"`
	Overfeeding          bool    `json:"overfeeding"`
}
