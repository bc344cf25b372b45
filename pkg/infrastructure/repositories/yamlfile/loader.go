// Package yamlfile loads feed libraries, profiles and ration definitions
// from YAML files into the in-memory repositories. The calculation core
// never reads files itself; callers resolve data here first.
package yamlfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veldman/rantsoen/pkg/domain/entities"
)

// Loader handles loading ration data from YAML files
type Loader struct{}

// NewLoader creates a new YAML loader
func NewLoader() *Loader {
	return &Loader{}
}

// feedRecord is the on-disk shape of one feed-library entry.
type feedRecord struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	VEMPerKgDS       float64  `yaml:"vem_per_kg_ds"`
	DVEPerKgDS       float64  `yaml:"dve_per_kg_ds"`
	OEBPerKgDS       float64  `yaml:"oeb_per_kg_ds"`
	CaPerKgDS        float64  `yaml:"ca_per_kg_ds"`
	PPerKgDS         float64  `yaml:"p_per_kg_ds"`
	StructuurPerKgDS float64  `yaml:"sw_per_kg_ds"`
	FillingPerKgDS   *float64 `yaml:"vw_per_kg_ds"`
	DefaultDSPercent float64  `yaml:"default_ds_percent"`
	Basis            string   `yaml:"basis"`
	Category         string   `yaml:"category"`
}

type feedLibraryFile struct {
	Feeds []feedRecord `yaml:"feeds"`
}

// LoadFeeds loads the feed library from a YAML file. Missing categories
// default to roughage and a missing filling value stays unset so the
// category default applies during calculation.
func (l *Loader) LoadFeeds(filename string) ([]*entities.Feed, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed library %s: %w", filename, err)
	}

	var file feedLibraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse feed library %s: %w", filename, err)
	}
	if len(file.Feeds) == 0 {
		return nil, fmt.Errorf("feed library %s contains no feeds", filename)
	}

	feeds := make([]*entities.Feed, 0, len(file.Feeds))
	for i, record := range file.Feeds {
		feed, err := record.toEntity()
		if err != nil {
			return nil, fmt.Errorf("feed library %s entry %d: %w", filename, i+1, err)
		}
		feeds = append(feeds, feed)
	}
	return feeds, nil
}

func (r feedRecord) toEntity() (*entities.Feed, error) {
	category, err := entities.ParseFeedCategory(r.Category)
	if err != nil {
		return nil, err
	}
	basis, err := entities.ParseFeedBasis(r.Basis)
	if err != nil {
		return nil, err
	}
	feed := &entities.Feed{
		ID:               entities.FeedID(r.ID),
		Name:             r.Name,
		VEMPerKgDS:       r.VEMPerKgDS,
		DVEPerKgDS:       r.DVEPerKgDS,
		OEBPerKgDS:       r.OEBPerKgDS,
		CaPerKgDS:        r.CaPerKgDS,
		PPerKgDS:         r.PPerKgDS,
		StructuurPerKgDS: r.StructuurPerKgDS,
		FillingPerKgDS:   r.FillingPerKgDS,
		DefaultDSPercent: r.DefaultDSPercent,
		Basis:            basis,
		Category:         category,
	}
	if err := feed.Validate(); err != nil {
		return nil, err
	}
	return feed, nil
}

// profileRecord is the on-disk shape of one reference profile.
type profileRecord struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	WeightKg       float64 `yaml:"weight_kg"`
	VEMTarget      float64 `yaml:"vem_target"`
	DVETargetGrams float64 `yaml:"dve_target_grams"`
	MaxDryMatterKg float64 `yaml:"max_dry_matter_kg"`
	Description    string  `yaml:"description"`
	Notes          string  `yaml:"notes"`
}

type profilesFile struct {
	Profiles []profileRecord `yaml:"profiles"`
}

// LoadProfiles loads reference animal profiles from a YAML file.
func (l *Loader) LoadProfiles(filename string) ([]*entities.AnimalProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profiles file %s: %w", filename, err)
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file %s: %w", filename, err)
	}

	profiles := make([]*entities.AnimalProfile, 0, len(file.Profiles))
	for i, record := range file.Profiles {
		profile, err := entities.NewAnimalProfile(
			entities.ProfileID(record.ID), record.Name,
			record.WeightKg, record.VEMTarget, record.DVETargetGrams, record.MaxDryMatterKg,
			record.Description, record.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("profiles file %s entry %d: %w", filename, i+1, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// RationFile is the on-disk shape of one ration to calculate.
type RationFile struct {
	Profile   string `yaml:"profile"`
	Strategy  string `yaml:"strategy"` // "profiel" or "dynamisch"
	Lactation *struct {
		Parity       int  `yaml:"parity"`
		DaysInMilk   int  `yaml:"days_in_milk"`
		DaysPregnant int  `yaml:"days_pregnant"`
		Lactating    bool `yaml:"lactating"`
		Grazing      bool `yaml:"grazing"`
	} `yaml:"lactation"`
	Milk *struct {
		MilkKg         float64 `yaml:"milk_kg"`
		FatPercent     float64 `yaml:"fat_percent"`
		ProteinPercent float64 `yaml:"protein_percent"`
		Ureum          float64 `yaml:"ureum"`
	} `yaml:"milk"`
	Feeds []struct {
		Feed      string  `yaml:"feed"`
		AmountKg  float64 `yaml:"amount_kg"`
		DSPercent float64 `yaml:"ds_percent"`
	} `yaml:"feeds"`
}

// LoadRation loads a ration definition from a YAML file.
func (l *Loader) LoadRation(filename string) (*RationFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open ration file %s: %w", filename, err)
	}

	var ration RationFile
	if err := yaml.Unmarshal(data, &ration); err != nil {
		return nil, fmt.Errorf("failed to parse ration file %s: %w", filename, err)
	}
	if ration.Profile == "" {
		return nil, fmt.Errorf("ration file %s names no profile", filename)
	}
	return &ration, nil
}

// Lines resolves the ration's feed references against a feed lookup.
func (r *RationFile) Lines(lookup func(entities.FeedID) (*entities.Feed, error)) ([]entities.RationLine, error) {
	lines := make([]entities.RationLine, 0, len(r.Feeds))
	for i, entry := range r.Feeds {
		feed, err := lookup(entities.FeedID(entry.Feed))
		if err != nil {
			return nil, fmt.Errorf("ration feed %d: %w", i+1, err)
		}
		lines = append(lines, entities.RationLine{
			Feed:  *feed,
			Input: entities.FeedInput{AmountKg: entry.AmountKg, DSPercent: entry.DSPercent},
		})
	}
	return lines, nil
}

// LactationState converts the optional lactation block.
func (r *RationFile) LactationState() *entities.LactationState {
	if r.Lactation == nil {
		return nil
	}
	return &entities.LactationState{
		Parity:       r.Lactation.Parity,
		DaysInMilk:   r.Lactation.DaysInMilk,
		DaysPregnant: r.Lactation.DaysPregnant,
		Lactating:    r.Lactation.Lactating,
		Grazing:      r.Lactation.Grazing,
	}
}

// MilkProduction converts the optional milk block.
func (r *RationFile) MilkProduction() *entities.MilkProduction {
	if r.Milk == nil {
		return nil
	}
	return &entities.MilkProduction{
		MilkKg:         r.Milk.MilkKg,
		FatPercent:     r.Milk.FatPercent,
		ProteinPercent: r.Milk.ProteinPercent,
		Ureum:          r.Milk.Ureum,
	}
}
