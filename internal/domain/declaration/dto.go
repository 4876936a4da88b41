package declaration

import (
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/validator"
)

// ========== DECLARATION DTOs ==========

type GenerateDeclarationRequest struct {
	PeriodYear  int `json:"period_year"`
	PeriodMonth int `json:"period_month"`
}

func (r *GenerateDeclarationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ValidationIssueResponse struct {
	Code     string `json:"code"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

type RemunerationBlockResponse struct {
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	RegistrationNumber string  `json:"registration_number"`
	WorkedMinutes      int     `json:"worked_minutes"`
	Gross              int64   `json:"gross"`
	Net                int64   `json:"net"`
	ContractStart      string  `json:"contract_start"`
	ContractEnd        *string `json:"contract_end,omitempty"`
}

type AggregateLineResponse struct {
	Code           string `json:"code"`
	Label          string `json:"label"`
	Base           int64  `json:"base"`
	EmployerAmount int64  `json:"employer_amount"`
	EmployeeAmount int64  `json:"employee_amount"`
}

type ContributionBlockResponse struct {
	Lines                []AggregateLineResponse `json:"lines"`
	TotalGross           int64                   `json:"total_gross"`
	TotalEmployerContrib int64                   `json:"total_employer_contributions"`
	TotalEmployeeContrib int64                   `json:"total_employee_contributions"`
	TotalNet             int64                   `json:"total_net"`
}

type DeclarationResponse struct {
	ID            string                      `json:"id"`
	CompanyID     string                      `json:"company_id"`
	PeriodYear    int                         `json:"period_year"`
	PeriodMonth   int                         `json:"period_month"`
	PayrollRunID  string                      `json:"payroll_run_id"`
	Status        string                      `json:"status"`
	Valid         bool                        `json:"valid"`
	Employer      EmployerIdentification      `json:"employer"`
	Remunerations []RemunerationBlockResponse `json:"remunerations"`
	Aggregate     ContributionBlockResponse   `json:"aggregate"`
	Issues        []ValidationIssueResponse   `json:"issues"`
}

func ToIssueResponses(issues []ValidationIssue) []ValidationIssueResponse {
	out := make([]ValidationIssueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, ValidationIssueResponse{
			Code:     i.Code,
			Category: i.Category,
			Severity: string(i.Severity),
			Message:  i.Message,
			Location: i.Location,
		})
	}
	return out
}

func ToDeclarationResponse(d DeclarationDocument) DeclarationResponse {
	blocks := make([]RemunerationBlockResponse, 0, len(d.Remunerations))
	for _, b := range d.Remunerations {
		blocks = append(blocks, RemunerationBlockResponse{
			EmployeeID:         b.EmployeeID,
			EmployeeName:       b.EmployeeName,
			RegistrationNumber: b.RegistrationNumber,
			WorkedMinutes:      b.WorkedMinutes,
			Gross:              b.Gross,
			Net:                b.Net,
			ContractStart:      b.ContractStart,
			ContractEnd:        b.ContractEnd,
		})
	}
	lines := make([]AggregateLineResponse, 0, len(d.Aggregate.Lines))
	for _, l := range d.Aggregate.Lines {
		lines = append(lines, AggregateLineResponse{
			Code:           l.Code,
			Label:          l.Label,
			Base:           l.Base,
			EmployerAmount: l.EmployerAmount,
			EmployeeAmount: l.EmployeeAmount,
		})
	}
	return DeclarationResponse{
		ID:            d.ID,
		CompanyID:     d.CompanyID,
		PeriodYear:    d.PeriodYear,
		PeriodMonth:   d.PeriodMonth,
		PayrollRunID:  d.PayrollRunID,
		Status:        string(d.Status),
		Valid:         d.IsValid(),
		Employer:      d.Header.Employer,
		Remunerations: blocks,
		Aggregate: ContributionBlockResponse{
			Lines:                lines,
			TotalGross:           d.Aggregate.TotalGross,
			TotalEmployerContrib: d.Aggregate.TotalEmployerContrib,
			TotalEmployeeContrib: d.Aggregate.TotalEmployeeContrib,
			TotalNet:             d.Aggregate.TotalNet,
		},
		Issues: ToIssueResponses(d.Issues),
	}
}
