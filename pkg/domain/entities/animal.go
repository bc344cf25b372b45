package entities

import "fmt"

// ProfileID identifies a reference animal class.
type ProfileID string

// AnimalProfile represents a reference animal class with its default
// requirement targets. Profiles are resolved by the caller; the calculation
// core never fetches them itself.
type AnimalProfile struct {
	ID             ProfileID `json:"id"`
	Name           string    `json:"name"`
	WeightKg       float64   `json:"weight_kg"`
	VEMTarget      float64   `json:"vem_target"`
	DVETargetGrams float64   `json:"dve_target_grams"`
	MaxDryMatterKg float64   `json:"max_dry_matter_kg"`
	Description    string    `json:"description,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

// NewAnimalProfile creates a validated AnimalProfile
func NewAnimalProfile(
	id ProfileID,
	name string,
	weightKg, vemTarget, dveTargetGrams, maxDryMatterKg float64,
	description, notes string,
) (*AnimalProfile, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("profile id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("profile name cannot be empty")
	}
	if weightKg <= 0 {
		return nil, fmt.Errorf("weight must be positive, got %g", weightKg)
	}
	if vemTarget < 0 {
		return nil, fmt.Errorf("VEM target cannot be negative, got %g", vemTarget)
	}
	if dveTargetGrams < 0 {
		return nil, fmt.Errorf("DVE target cannot be negative, got %g", dveTargetGrams)
	}
	if maxDryMatterKg < 0 {
		return nil, fmt.Errorf("max dry matter intake cannot be negative, got %g", maxDryMatterKg)
	}

	return &AnimalProfile{
		ID:             id,
		Name:           name,
		WeightKg:       weightKg,
		VEMTarget:      vemTarget,
		DVETargetGrams: dveTargetGrams,
		MaxDryMatterKg: maxDryMatterKg,
		Description:    description,
		Notes:          notes,
	}, nil
}

// MaxDaysPregnant is the gestation length used as the upper bound for
// pregnancy-day inputs.
const MaxDaysPregnant = 283

// LactationState describes the animal's current lactation and gestation
// status. It is supplied per call and never persisted by the core.
type LactationState struct {
	Parity       int  `json:"parity"`
	DaysInMilk   int  `json:"days_in_milk"`
	DaysPregnant int  `json:"days_pregnant"`
	Lactating    bool `json:"lactating"`
	Grazing      bool `json:"grazing"`
}

// Validate checks that the lactation state is inside its physical domain.
func (s LactationState) Validate() error {
	if s.Parity < 1 {
		return fmt.Errorf("parity must be at least 1, got %d", s.Parity)
	}
	if s.DaysInMilk < 0 {
		return fmt.Errorf("days in milk cannot be negative, got %d", s.DaysInMilk)
	}
	if s.DaysPregnant < 0 {
		return fmt.Errorf("days pregnant cannot be negative, got %d", s.DaysPregnant)
	}
	if s.DaysPregnant > MaxDaysPregnant {
		return fmt.Errorf("days pregnant cannot exceed %d, got %d", MaxDaysPregnant, s.DaysPregnant)
	}
	return nil
}

// MilkProduction is an MPR-style test-day record. When present it supersedes
// the profile's default targets via the dynamic requirement strategy.
type MilkProduction struct {
	MilkKg         float64 `json:"milk_kg"`
	FatPercent     float64 `json:"fat_percent"`
	ProteinPercent float64 `json:"protein_percent"`
	Ureum          float64 `json:"ureum,omitempty"`
}

// Validate checks the milk record for physically impossible values.
func (m MilkProduction) Validate() error {
	if m.MilkKg < 0 {
		return fmt.Errorf("milk yield cannot be negative, got %g", m.MilkKg)
	}
	if m.FatPercent < 0 || m.FatPercent > 100 {
		return fmt.Errorf("fat percent must be within [0,100], got %g", m.FatPercent)
	}
	if m.ProteinPercent < 0 || m.ProteinPercent > 100 {
		return fmt.Errorf("protein percent must be within [0,100], got %g", m.ProteinPercent)
	}
	return nil
}
