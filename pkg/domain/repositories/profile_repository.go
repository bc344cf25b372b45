package repositories

import "github.com/veldman/rantsoen/pkg/domain/entities"

// ProfileRepository provides access to the reference animal profiles
type ProfileRepository interface {
	GetProfile(id entities.ProfileID) (*entities.AnimalProfile, error)
	GetProfileByName(name string) (*entities.AnimalProfile, error)
	GetAllProfiles() ([]*entities.AnimalProfile, error)
	LoadProfiles(profiles []*entities.AnimalProfile) error
}
