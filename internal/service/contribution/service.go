package contribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
)

type ContributionServiceImpl struct {
	paramRepo contribution.ParameterSetRepository
}

func NewContributionService(paramRepo contribution.ParameterSetRepository) contribution.ContributionService {
	return &ContributionServiceImpl{paramRepo: paramRepo}
}

func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// ========== PARAMETER SETS ==========

func (s *ContributionServiceImpl) CreateParameterSet(ctx context.Context, req contribution.CreateParameterSetRequest) (contribution.ParameterSetResponse, error) {
	if err := req.Validate(); err != nil {
		return contribution.ParameterSetResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return contribution.ParameterSetResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	// Versions are append-only per company; the next version is one past the
	// latest stored one.
	version := 1
	existing, err := s.paramRepo.ListByCompany(ctx, companyID)
	if err != nil && !errors.Is(err, contribution.ErrUnknownParameterSet) {
		return contribution.ParameterSetResponse{}, err
	}
	for _, set := range existing {
		if set.Version >= version {
			version = set.Version + 1
		}
	}

	lines := make([]contribution.ContributionLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, contribution.ContributionLine{
			Code:                l.Code,
			Label:               l.Label,
			EmployerRate:        l.EmployerRate,
			EmployeeRate:        l.EmployeeRate,
			AppliesAboveCeiling: l.AppliesAboveCeiling,
		})
	}

	set, err := s.paramRepo.Create(ctx, contribution.SocialParameterSet{
		CompanyID:               companyID,
		Version:                 version,
		EffectiveFrom:           effectiveFrom,
		MonthlyCeiling:          req.MonthlyCeiling,
		Lines:                   lines,
		OvertimeTier1Rate:       req.OvertimeTier1Rate,
		OvertimeTier2Rate:       req.OvertimeTier2Rate,
		Tier1ThresholdMinutes:   req.Tier1ThresholdMinutes,
		AnnualContingentMinutes: req.AnnualContingentMinutes,
	})
	if err != nil {
		return contribution.ParameterSetResponse{}, err
	}

	return contribution.ToParameterSetResponse(set), nil
}

func (s *ContributionServiceImpl) GetParameterSet(ctx context.Context, id string) (contribution.ParameterSetResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return contribution.ParameterSetResponse{}, err
	}

	set, err := s.paramRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return contribution.ParameterSetResponse{}, err
	}

	return contribution.ToParameterSetResponse(set), nil
}

func (s *ContributionServiceImpl) ListParameterSets(ctx context.Context) ([]contribution.ParameterSetResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sets, err := s.paramRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]contribution.ParameterSetResponse, 0, len(sets))
	for _, set := range sets {
		out = append(out, contribution.ToParameterSetResponse(set))
	}
	return out, nil
}

// ========== SIMULATION ==========

func (s *ContributionServiceImpl) Simulate(ctx context.Context, req contribution.SimulateRequest) (contribution.SimulationResponse, error) {
	if err := req.Validate(); err != nil {
		return contribution.SimulationResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return contribution.SimulationResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	params, err := s.paramRepo.GetForDate(ctx, companyID, date)
	if err != nil {
		return contribution.SimulationResponse{}, err
	}

	result, err := contribution.Compute(req.Gross, params)
	if err != nil {
		return contribution.SimulationResponse{}, err
	}

	return contribution.ToSimulationResponse(params.ID, result), nil
}
