package contribution

import (
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PARAMETER SET DTOs ==========

type ContributionLineRequest struct {
	Code                string          `json:"code"`
	Label               string          `json:"label"`
	EmployerRate        decimal.Decimal `json:"employer_rate"`
	EmployeeRate        decimal.Decimal `json:"employee_rate"`
	AppliesAboveCeiling bool            `json:"applies_above_ceiling"`
}

type CreateParameterSetRequest struct {
	EffectiveFrom           string                    `json:"effective_from"`
	MonthlyCeiling          int64                     `json:"monthly_ceiling"`
	Lines                   []ContributionLineRequest `json:"lines"`
	OvertimeTier1Rate       decimal.Decimal           `json:"overtime_tier1_rate"`
	OvertimeTier2Rate       decimal.Decimal           `json:"overtime_tier2_rate"`
	Tier1ThresholdMinutes   int                       `json:"tier1_threshold_minutes"`
	AnnualContingentMinutes int                       `json:"annual_contingent_minutes"`
}

func (r *CreateParameterSetRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.MonthlyCeiling <= 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_ceiling", Message: "must be positive"})
	}
	if len(r.Lines) == 0 {
		errs = append(errs, validator.ValidationError{Field: "lines", Message: "at least one contribution line is required"})
	}
	for _, line := range r.Lines {
		if validator.IsEmpty(line.Code) {
			errs = append(errs, validator.ValidationError{Field: "lines", Message: "line code is required"})
		}
		if line.EmployerRate.IsNegative() || line.EmployeeRate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "lines", Message: "rates must be non-negative"})
		}
	}
	if r.OvertimeTier1Rate.IsNegative() || r.OvertimeTier2Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rates", Message: "must be non-negative"})
	}
	if r.Tier1ThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "tier1_threshold_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SimulateRequest struct {
	Gross int64  `json:"gross"`
	Date  string `json:"date"`
}

func (r *SimulateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Gross < 0 {
		errs = append(errs, validator.ValidationError{Field: "gross", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LineResultResponse struct {
	Code           string `json:"code"`
	Label          string `json:"label"`
	Base           int64  `json:"base"`
	EmployerAmount int64  `json:"employer_amount"`
	EmployeeAmount int64  `json:"employee_amount"`
}

type SimulationResponse struct {
	ParameterSetID string               `json:"parameter_set_id"`
	Gross          int64                `json:"gross"`
	Tranche1       int64                `json:"tranche1"`
	EmployerTotal  int64                `json:"employer_total"`
	EmployeeTotal  int64                `json:"employee_total"`
	Net            int64                `json:"net"`
	Lines          []LineResultResponse `json:"lines"`
}

func ToSimulationResponse(parameterSetID string, res Result) SimulationResponse {
	lines := make([]LineResultResponse, 0, len(res.Lines))
	for _, l := range res.Lines {
		lines = append(lines, LineResultResponse{
			Code:           l.Code,
			Label:          l.Label,
			Base:           l.Base,
			EmployerAmount: l.EmployerAmount,
			EmployeeAmount: l.EmployeeAmount,
		})
	}
	return SimulationResponse{
		ParameterSetID: parameterSetID,
		Gross:          res.Gross,
		Tranche1:       res.Tranche1,
		EmployerTotal:  res.EmployerTotal,
		EmployeeTotal:  res.EmployeeTotal,
		Net:            res.Net,
		Lines:          lines,
	}
}

type ContributionLineResponse struct {
	Code                string          `json:"code"`
	Label               string          `json:"label"`
	EmployerRate        decimal.Decimal `json:"employer_rate"`
	EmployeeRate        decimal.Decimal `json:"employee_rate"`
	AppliesAboveCeiling bool            `json:"applies_above_ceiling"`
}

type ParameterSetResponse struct {
	ID                      string                     `json:"id"`
	CompanyID               string                     `json:"company_id"`
	Version                 int                        `json:"version"`
	EffectiveFrom           string                     `json:"effective_from"`
	MonthlyCeiling          int64                      `json:"monthly_ceiling"`
	Lines                   []ContributionLineResponse `json:"lines"`
	OvertimeTier1Rate       decimal.Decimal            `json:"overtime_tier1_rate"`
	OvertimeTier2Rate       decimal.Decimal            `json:"overtime_tier2_rate"`
	Tier1ThresholdMinutes   int                        `json:"tier1_threshold_minutes"`
	AnnualContingentMinutes int                        `json:"annual_contingent_minutes"`
}

func ToParameterSetResponse(s SocialParameterSet) ParameterSetResponse {
	lines := make([]ContributionLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, ContributionLineResponse{
			Code:                l.Code,
			Label:               l.Label,
			EmployerRate:        l.EmployerRate,
			EmployeeRate:        l.EmployeeRate,
			AppliesAboveCeiling: l.AppliesAboveCeiling,
		})
	}
	return ParameterSetResponse{
		ID:                      s.ID,
		CompanyID:               s.CompanyID,
		Version:                 s.Version,
		EffectiveFrom:           s.EffectiveFrom.Format("2006-01-02"),
		MonthlyCeiling:          s.MonthlyCeiling,
		Lines:                   lines,
		OvertimeTier1Rate:       s.OvertimeTier1Rate,
		OvertimeTier2Rate:       s.OvertimeTier2Rate,
		Tier1ThresholdMinutes:   s.Tier1ThresholdMinutes,
		AnnualContingentMinutes: s.AnnualContingentMinutes,
	}
}
