package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/veldman/rantsoen/pkg/domain/entities"
	"github.com/veldman/rantsoen/pkg/rantsoen"
)

// RationResult contains the complete, auditable output of one ration
// calculation. Everything in it is derived from the call's inputs; nothing
// is persisted or shared.
type RationResult struct {
	ID               uuid.UUID                     `json:"id"`
	GeneratedAt      time.Time                     `json:"generated_at"`
	ConstantsVersion string                        `json:"constants_version"`
	Strategy         string                        `json:"strategy"`
	Profile          entities.AnimalProfile        `json:"profile"`
	Requirement      rantsoen.NutrientRequirement  `json:"requirement"`
	Supply           entities.NutrientSupply       `json:"supply"`
	Contributions    []entities.FeedContribution   `json:"contributions"`
	Structure        entities.StructureValueResult `json:"structure"`
	VOC              *entities.VOCResult           `json:"voc,omitempty"`
	Substitution     *entities.SubstitutionResult  `json:"substitution,omitempty"`
	Balances         []entities.NutrientBalance    `json:"balances"`
	TargetMet        bool                          `json:"target_met"`
	Summary          string                        `json:"summary"`
	Warnings         []string                      `json:"warnings,omitempty"`
	Audit            rantsoen.AuditTrail           `json:"audit"`
}

// FlattenedReport returns the ordered plain-text audit report.
func (r *RationResult) FlattenedReport() string {
	return r.Audit.Flatten()
}
