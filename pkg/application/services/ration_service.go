package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veldman/rantsoen/pkg/application/dto"
	"github.com/veldman/rantsoen/pkg/cvb"
	"github.com/veldman/rantsoen/pkg/domain/entities"
	"github.com/veldman/rantsoen/pkg/rantsoen"
)

// StrategyKind selects the requirement calculation path. The caller chooses
// explicitly; the service never infers the path from which optional fields
// happen to be populated.
type StrategyKind int

const (
	ProfileDefaultRequirement StrategyKind = iota
	DynamicRequirement
)

// String method for StrategyKind enum
func (k StrategyKind) String() string {
	switch k {
	case ProfileDefaultRequirement:
		return rantsoen.StrategyProfileDefault
	case DynamicRequirement:
		return rantsoen.StrategyDynamic
	default:
		return "Unknown"
	}
}

// RationRequest carries all inputs of one calculation. Feeds and profiles
// are resolved by the caller before invocation.
type RationRequest struct {
	Profile          entities.AnimalProfile
	Strategy         StrategyKind
	Lactation        *entities.LactationState
	Milk             *entities.MilkProduction
	Lines            []entities.RationLine
	SubstitutionRate float64 // 0 = table default
}

// RationService runs the full requirement/supply/balance pipeline and wraps
// it in an audit trail. The service is stateless; independent calls may run
// concurrently.
type RationService struct {
	calc   *rantsoen.Calculator
	logger *zap.Logger
}

// NewRationService creates a service around one coefficient table.
func NewRationService(constants cvb.ConstantSet, logger *zap.Logger) (*RationService, error) {
	calc, err := rantsoen.New(constants)
	if err != nil {
		return nil, fmt.Errorf("failed to create calculator: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RationService{calc: calc, logger: logger}, nil
}

// Calculator exposes the underlying calculator for callers that need a
// single component (intake capacity, concentrate advice).
func (s *RationService) Calculator() *rantsoen.Calculator {
	return s.calc
}

// Calculate runs one complete ration calculation.
func (s *RationService) Calculate(ctx context.Context, req RationRequest) (*dto.RationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grazing := req.Lactation != nil && req.Lactation.Grazing

	// Step 1: requirement, per the explicitly selected strategy.
	strategy, err := s.strategy(req)
	if err != nil {
		return nil, err
	}
	requirement, err := strategy.Requirements(s.calc)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate requirement: %w", err)
	}

	// Step 2: supply from the feed list, independent of the requirement.
	supply, err := s.calc.AggregateSupply(req.Lines, grazing)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate feed supply: %w", err)
	}

	// Step 3: structure value of the ration.
	structure := s.calc.StructureValue(supply.Contributions)

	// Step 4: intake capacity and saturation, when a lactation state exists.
	var voc *entities.VOCResult
	if req.Lactation != nil {
		voc, err = s.calc.IntakeCapacity(*req.Lactation)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate intake capacity: %w", err)
		}
		if err := s.calc.Saturate(voc, supply.TotalFillingValue); err != nil {
			return nil, fmt.Errorf("failed to calculate saturation: %w", err)
		}
	}

	// Step 5: concentrate/roughage substitution over the actual ration.
	substitutionRate := req.SubstitutionRate
	if substitutionRate == 0 {
		substitutionRate = s.calc.Constants().DefaultSubstitutionRate
	}
	maxRoughage := requirement.DryMatterMaxKg
	substitution, err := s.calc.Substitution(
		rantsoen.ConcentrateDryMatter(supply.Contributions),
		maxRoughage,
		rantsoen.RoughageDryMatter(supply.Contributions),
		substitutionRate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate substitution: %w", err)
	}

	// Step 6: balances and verdict.
	balances := s.calc.Balances(requirement, supply.Total)
	targetMet := s.calc.TargetMet(requirement, supply.Total)
	summary := rantsoen.SummaryMessage(req.Profile.Name, targetMet)

	// Step 7: audit trail over everything above.
	trail := s.calc.BuildAuditTrail(rantsoen.AuditInputs{
		Profile:   req.Profile,
		Lactation: req.Lactation,
		Milk:      req.Milk,
		Lines:     req.Lines,
		Grazing:   grazing,
	}, requirement, supply, structure, voc, substitution, balances, summary)

	result := &dto.RationResult{
		ID:               uuid.New(),
		GeneratedAt:      time.Now().UTC(),
		ConstantsVersion: s.calc.Constants().Version,
		Strategy:         requirement.Strategy,
		Profile:          req.Profile,
		Requirement:      *requirement,
		Supply:           supply.Total,
		Contributions:    supply.Contributions,
		Structure:        *structure,
		VOC:              voc,
		Substitution:     substitution,
		Balances:         balances,
		TargetMet:        targetMet,
		Summary:          summary,
		Audit:            trail,
	}
	result.Warnings = collectWarnings(structure, voc, substitution)

	s.logger.Debug("ration calculated",
		zap.String("result_id", result.ID.String()),
		zap.String("profile", req.Profile.Name),
		zap.String("strategy", result.Strategy),
		zap.Int("feeds", len(req.Lines)),
		zap.Bool("target_met", targetMet),
		zap.Int("warnings", len(result.Warnings)),
	)
	for _, warning := range result.Warnings {
		s.logger.Warn("ration infeasibility", zap.String("result_id", result.ID.String()), zap.String("warning", warning))
	}

	return result, nil
}

func (s *RationService) strategy(req RationRequest) (rantsoen.RequirementStrategy, error) {
	switch req.Strategy {
	case ProfileDefaultRequirement:
		grazing := req.Lactation != nil && req.Lactation.Grazing
		return rantsoen.ProfileDefaultStrategy{Profile: req.Profile, Grazing: grazing}, nil
	case DynamicRequirement:
		if req.Lactation == nil {
			return nil, fmt.Errorf("dynamic requirement needs a lactation state")
		}
		return rantsoen.DynamicStrategy{Profile: req.Profile, Lactation: *req.Lactation, Milk: req.Milk}, nil
	default:
		return nil, fmt.Errorf("unknown requirement strategy: %d", req.Strategy)
	}
}

// collectWarnings gathers the non-fatal infeasibility diagnoses. A bad
// ration still produces a full result; these warnings travel with it as
// data, never as errors.
func collectWarnings(structure *entities.StructureValueResult, voc *entities.VOCResult, substitution *entities.SubstitutionResult) []string {
	var warnings []string
	if voc != nil && voc.Status == entities.SaturationExceeded {
		warnings = append(warnings, fmt.Sprintf(
			"verzadiging %0.1f%%: het rantsoen overschrijdt de voeropnamecapaciteit", voc.SaturationPercent))
	}
	if structure.AcidosisRisk {
		warnings = append(warnings, fmt.Sprintf(
			"structuurwaarde %0.2f per kg DS: risico op pensverzuring", structure.StructuurPerKgDS))
	}
	if substitution != nil && substitution.Overfeeding {
		warnings = append(warnings, fmt.Sprintf(
			"ruwvoergift %0.1f kg DS boven de gecorrigeerde opname van %0.1f kg DS",
			substitution.ActualRoughageKgDS, substitution.AdjustedRoughageKgDS))
	}
	return warnings
}
