package memory

import (
	"fmt"

	"github.com/veldman/rantsoen/pkg/domain/entities"
	"github.com/veldman/rantsoen/pkg/domain/repositories"
)

// ProfileRepository provides in-memory storage of reference animal profiles
type ProfileRepository struct {
	profiles    []entities.AnimalProfile
	profilesMap map[entities.ProfileID]int
	namesMap    map[string]int
}

// NewProfileRepository creates a new in-memory profile repository
func NewProfileRepository(expectedProfiles int) *ProfileRepository {
	return &ProfileRepository{
		profiles:    make([]entities.AnimalProfile, 0, expectedProfiles),
		profilesMap: make(map[entities.ProfileID]int, expectedProfiles),
		namesMap:    make(map[string]int, expectedProfiles),
	}
}

// Verify interface compliance
var _ repositories.ProfileRepository = (*ProfileRepository)(nil)

// LoadProfiles loads profiles into the repository
func (r *ProfileRepository) LoadProfiles(profiles []*entities.AnimalProfile) error {
	for _, profile := range profiles {
		r.AddProfile(*profile)
	}
	return nil
}

// AddProfile adds a profile to the repository
func (r *ProfileRepository) AddProfile(profile entities.AnimalProfile) {
	if index, exists := r.profilesMap[profile.ID]; exists {
		r.profiles[index] = profile
		r.namesMap[profile.Name] = index
		return
	}
	r.profilesMap[profile.ID] = len(r.profiles)
	r.namesMap[profile.Name] = len(r.profiles)
	r.profiles = append(r.profiles, profile)
}

// GetProfile returns the profile for an id
func (r *ProfileRepository) GetProfile(id entities.ProfileID) (*entities.AnimalProfile, error) {
	index, exists := r.profilesMap[id]
	if !exists {
		return nil, fmt.Errorf("profile not found: %s", id)
	}
	return &r.profiles[index], nil
}

// GetProfileByName returns the profile with the given display name
func (r *ProfileRepository) GetProfileByName(name string) (*entities.AnimalProfile, error) {
	index, exists := r.namesMap[name]
	if !exists {
		return nil, fmt.Errorf("profile not found: %s", name)
	}
	return &r.profiles[index], nil
}

// GetAllProfiles returns all profiles
func (r *ProfileRepository) GetAllProfiles() ([]*entities.AnimalProfile, error) {
	var profiles []*entities.AnimalProfile
	for i := range r.profiles {
		profiles = append(profiles, &r.profiles[i])
	}
	return profiles, nil
}

// SeedStandardProfiles loads the CVB reference profiles used when no profile
// file is configured.
func (r *ProfileRepository) SeedStandardProfiles() {
	r.AddProfile(entities.AnimalProfile{
		ID: "hoogproductief", Name: "Hoogproductieve melkkoe",
		WeightKg: 650, VEMTarget: 21500, DVETargetGrams: 2100, MaxDryMatterKg: 24,
		Description: "Melkkoe rond 35 kg melk per dag",
	})
	r.AddProfile(entities.AnimalProfile{
		ID: "standaard", Name: "Standaard melkkoe",
		WeightKg: 625, VEMTarget: 17500, DVETargetGrams: 1650, MaxDryMatterKg: 22,
		Description: "Melkkoe rond 28 kg melk per dag",
	})
	r.AddProfile(entities.AnimalProfile{
		ID: "droogstand", Name: "Droogstaande koe",
		WeightKg: 675, VEMTarget: 7200, DVETargetGrams: 400, MaxDryMatterKg: 13,
		Description: "Droogstaande koe in de laatste zes weken voor afkalven",
	})
	r.AddProfile(entities.AnimalProfile{
		ID: "vaars", Name: "Vaars",
		WeightKg: 550, VEMTarget: 15500, DVETargetGrams: 1450, MaxDryMatterKg: 19,
		Description: "Eerstekalfs dier met jeugdgroeitoeslag",
	})
}
