package payroll

import (
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/validator"
)

// ========== RUN DTOs ==========

type ComputeRunRequest struct {
	PeriodYear  int `json:"period_year"`
	PeriodMonth int `json:"period_month"`
}

func (r *ComputeRunRequest) Validate() error {
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

type ContributionLineDetail struct {
	Code           string `json:"code"`
	Label          string `json:"label"`
	Base           int64  `json:"base"`
	EmployerAmount int64  `json:"employer_amount"`
	EmployeeAmount int64  `json:"employee_amount"`
}

type PayrollLineResponse struct {
	EmployeeID        string                   `json:"employee_id"`
	EmployeeName      string                   `json:"employee_name"`
	BaseSalary        int64                    `json:"base_salary"`
	Tier1Minutes      int                      `json:"tier1_minutes"`
	Tier2Minutes      int                      `json:"tier2_minutes"`
	OvertimePay       int64                    `json:"overtime_pay"`
	Gross             int64                    `json:"gross"`
	Tranche1          int64                    `json:"tranche1"`
	EmployerContrib   int64                    `json:"employer_contributions"`
	EmployeeContrib   int64                    `json:"employee_contributions"`
	Net               int64                    `json:"net"`
	WorkedMinutes     int                      `json:"worked_minutes"`
	ContributionLines []ContributionLineDetail `json:"contribution_lines"`
}

type PayrollRunResponse struct {
	ID                   string                `json:"id"`
	CompanyID            string                `json:"company_id"`
	PeriodYear           int                   `json:"period_year"`
	PeriodMonth          int                   `json:"period_month"`
	ParameterSetID       string                `json:"parameter_set_id"`
	Status               string                `json:"status"`
	Lines                []PayrollLineResponse `json:"lines"`
	TotalGross           int64                 `json:"total_gross"`
	TotalEmployerContrib int64                 `json:"total_employer_contributions"`
	TotalEmployeeContrib int64                 `json:"total_employee_contributions"`
	TotalNet             int64                 `json:"total_net"`
	TotalEmployerCost    int64                 `json:"total_employer_cost"`
	Warnings             map[string]int        `json:"warnings"`
	LedgerDocumentRef    string                `json:"ledger_document_ref"`
}

type ListPayrollRunResponse struct {
	Data       []PayrollRunResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

func toLineDetails(lines []contribution.LineResult) []ContributionLineDetail {
	out := make([]ContributionLineDetail, 0, len(lines))
	for _, l := range lines {
		out = append(out, ContributionLineDetail{
			Code:           l.Code,
			Label:          l.Label,
			Base:           l.Base,
			EmployerAmount: l.EmployerAmount,
			EmployeeAmount: l.EmployeeAmount,
		})
	}
	return out
}

func ToRunResponse(run PayrollRun) PayrollRunResponse {
	lines := make([]PayrollLineResponse, 0, len(run.Lines))
	for _, l := range run.Lines {
		lines = append(lines, PayrollLineResponse{
			EmployeeID:        l.EmployeeID,
			EmployeeName:      l.EmployeeName,
			BaseSalary:        l.BaseSalary,
			Tier1Minutes:      l.Tier1Minutes,
			Tier2Minutes:      l.Tier2Minutes,
			OvertimePay:       l.OvertimePay,
			Gross:             l.Gross,
			Tranche1:          l.Tranche1,
			EmployerContrib:   l.EmployerContrib,
			EmployeeContrib:   l.EmployeeContrib,
			Net:               l.Net,
			WorkedMinutes:     l.WorkedMinutes,
			ContributionLines: toLineDetails(l.ContributionLines),
		})
	}
	return PayrollRunResponse{
		ID:                   run.ID,
		CompanyID:            run.CompanyID,
		PeriodYear:           run.PeriodYear,
		PeriodMonth:          run.PeriodMonth,
		ParameterSetID:       run.ParameterSetID,
		Status:               string(run.Status),
		Lines:                lines,
		TotalGross:           run.TotalGross,
		TotalEmployerContrib: run.TotalEmployerContrib,
		TotalEmployeeContrib: run.TotalEmployeeContrib,
		TotalNet:             run.TotalNet,
		TotalEmployerCost:    run.TotalEmployerCost,
		Warnings:             run.Warnings,
		LedgerDocumentRef:    run.LedgerDocumentRef,
	}
}

func ToRunResponses(runs []PayrollRun) []PayrollRunResponse {
	out := make([]PayrollRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, ToRunResponse(r))
	}
	return out
}
