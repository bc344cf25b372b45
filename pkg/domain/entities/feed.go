package entities

import "fmt"

// FeedID identifies a feed product in the feed library.
type FeedID string

// FeedBasis indicates the quantity basis of a feed's input amounts.
// Nutrient densities are always per kg dry matter regardless of basis; the
// basis only determines how an entered amount converts to dry matter.
type FeedBasis int

const (
	BasisPerKgDryMatter FeedBasis = iota
	BasisPerKgProduct
)

// String method for FeedBasis enum
func (b FeedBasis) String() string {
	switch b {
	case BasisPerKgDryMatter:
		return "per kg DS"
	case BasisPerKgProduct:
		return "per kg product"
	default:
		return "Unknown"
	}
}

// FeedCategory classifies a feed for substitution and filling-value rules.
type FeedCategory int

const (
	CategoryRoughage FeedCategory = iota
	CategoryConcentrate
	CategoryByproduct
	CategoryMineral
)

// String method for FeedCategory enum
func (c FeedCategory) String() string {
	switch c {
	case CategoryRoughage:
		return "ruwvoer"
	case CategoryConcentrate:
		return "krachtvoer"
	case CategoryByproduct:
		return "bijproduct"
	case CategoryMineral:
		return "mineraal"
	default:
		return "Unknown"
	}
}

// ParseFeedCategory maps a feed-library category label to its enum value.
// An empty label defaults to roughage.
func ParseFeedCategory(label string) (FeedCategory, error) {
	switch label {
	case "", "ruwvoer", "roughage":
		return CategoryRoughage, nil
	case "krachtvoer", "concentrate":
		return CategoryConcentrate, nil
	case "bijproduct", "byproduct":
		return CategoryByproduct, nil
	case "mineraal", "mineral":
		return CategoryMineral, nil
	default:
		return CategoryRoughage, fmt.Errorf("unknown feed category: %q", label)
	}
}

// ParseFeedBasis maps a feed-library basis label to its enum value.
func ParseFeedBasis(label string) (FeedBasis, error) {
	switch label {
	case "", "ds", "per kg DS", "per_kg_ds":
		return BasisPerKgDryMatter, nil
	case "product", "per kg product", "per_kg_product":
		return BasisPerKgProduct, nil
	default:
		return BasisPerKgDryMatter, fmt.Errorf("unknown feed basis: %q", label)
	}
}

// Feed holds the canonical per-unit nutrient densities of one feed product.
// All densities are expressed per kg dry matter.
type Feed struct {
	ID               FeedID       `json:"id"`
	Name             string       `json:"name"`
	VEMPerKgDS       float64      `json:"vem_per_kg_ds"`
	DVEPerKgDS       float64      `json:"dve_per_kg_ds"`
	OEBPerKgDS       float64      `json:"oeb_per_kg_ds"`
	CaPerKgDS        float64      `json:"ca_per_kg_ds"`
	PPerKgDS         float64      `json:"p_per_kg_ds"`
	StructuurPerKgDS float64      `json:"structuur_per_kg_ds"`
	FillingPerKgDS   *float64     `json:"filling_per_kg_ds,omitempty"` // nil = category default
	DefaultDSPercent float64      `json:"default_ds_percent"`
	Basis            FeedBasis    `json:"basis"`
	Category         FeedCategory `json:"category"`
}

// Validate checks the feed record's declared densities.
func (f Feed) Validate() error {
	if string(f.ID) == "" {
		return fmt.Errorf("feed id cannot be empty")
	}
	if f.Name == "" {
		return fmt.Errorf("feed name cannot be empty")
	}
	if f.DefaultDSPercent < 0 || f.DefaultDSPercent > 100 {
		return fmt.Errorf("feed %s: default DS percent must be within [0,100], got %g", f.ID, f.DefaultDSPercent)
	}
	if f.VEMPerKgDS < 0 {
		return fmt.Errorf("feed %s: VEM density cannot be negative, got %g", f.ID, f.VEMPerKgDS)
	}
	if f.StructuurPerKgDS < 0 {
		return fmt.Errorf("feed %s: structure value cannot be negative, got %g", f.ID, f.StructuurPerKgDS)
	}
	if f.FillingPerKgDS != nil && *f.FillingPerKgDS < 0 {
		return fmt.Errorf("feed %s: filling value cannot be negative, got %g", f.ID, *f.FillingPerKgDS)
	}
	return nil
}

// FeedInput is one entered quantity of a feed, in the feed's natural unit.
type FeedInput struct {
	AmountKg  float64 `json:"amount_kg"`
	DSPercent float64 `json:"ds_percent"`
}

// Validate checks the input quantity and dry-matter percentage.
func (in FeedInput) Validate() error {
	if in.AmountKg < 0 {
		return fmt.Errorf("amount cannot be negative, got %g", in.AmountKg)
	}
	if in.DSPercent < 0 || in.DSPercent > 100 {
		return fmt.Errorf("DS percent must be within [0,100], got %g", in.DSPercent)
	}
	return nil
}

// RationLine pairs a feed with its entered quantity.
type RationLine struct {
	Feed  Feed      `json:"feed"`
	Input FeedInput `json:"input"`
}

// ParsedFeedData is the typed output of the external lab-report extraction
// service. Document parsing itself happens outside this module; only the
// extracted figures cross the boundary.
type ParsedFeedData struct {
	ProductName string   `json:"product_name"`
	ProductType string   `json:"product_type"`
	VEM         float64  `json:"vem"`
	DVE         float64  `json:"dve"`
	OEB         float64  `json:"oeb"`
	DSPercent   float64  `json:"ds_percent"`
	SW          float64  `json:"sw"`
	RawProtein  *float64 `json:"raw_protein,omitempty"`
	RawFiber    *float64 `json:"raw_fiber,omitempty"`
	Sugar       *float64 `json:"sugar,omitempty"`
	Starch      *float64 `json:"starch,omitempty"`
}

// ToFeed converts an extracted lab report to a Feed record, applying the
// boundary defaults: an unrecognized product type maps to roughage and the
// filling value stays unset so the category default applies downstream.
func (p ParsedFeedData) ToFeed(id FeedID) (*Feed, error) {
	if p.ProductName == "" {
		return nil, fmt.Errorf("parsed feed data has no product name")
	}
	category, err := ParseFeedCategory(p.ProductType)
	if err != nil {
		category = CategoryRoughage
	}
	feed := &Feed{
		ID:               id,
		Name:             p.ProductName,
		VEMPerKgDS:       p.VEM,
		DVEPerKgDS:       p.DVE,
		OEBPerKgDS:       p.OEB,
		StructuurPerKgDS: p.SW,
		DefaultDSPercent: p.DSPercent,
		Basis:            BasisPerKgProduct,
		Category:         category,
	}
	if err := feed.Validate(); err != nil {
		return nil, fmt.Errorf("parsed feed data for %s is invalid: %w", p.ProductName, err)
	}
	return feed, nil
}
