package payroll

import (
	"sort"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/employee"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
)

// BuildInput carries everything a run computation needs, resolved up front so
// the build itself is a pure, deterministic transformation.
type BuildInput struct {
	CompanyID   string
	PeriodYear  int
	PeriodMonth int
	Employees   []employee.Employee
	// Weekly overtime results per employee for the weeks of the period.
	Weekly map[string][]worktime.WeeklyOvertimeResult
	Params contribution.SocialParameterSet
}

// BuildRun assembles the payroll lines and aggregates for one period.
// Employees are processed in ID order so recomputing with identical inputs
// yields identical output. Employees without a base salary are skipped and
// counted as a run warning; gross is base salary plus majorated overtime pay,
// contributions are computed on that gross.
func BuildRun(in BuildInput) (PayrollRun, error) {
	if in.PeriodMonth < 1 || in.PeriodMonth > 12 || in.PeriodYear < 2000 {
		return PayrollRun{}, ErrInvalidPeriod
	}

	employees := make([]employee.Employee, len(in.Employees))
	copy(employees, in.Employees)
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })

	run := PayrollRun{
		CompanyID:      in.CompanyID,
		PeriodYear:     in.PeriodYear,
		PeriodMonth:    in.PeriodMonth,
		ParameterSetID: in.Params.ID,
		Status:         RunStatusComputed,
		Warnings:       map[string]int{},
	}

	for _, emp := range employees {
		if !emp.Active {
			continue
		}
		if emp.MonthlyBaseSalary <= 0 {
			run.Warnings["missing_base_salary"]++
			continue
		}

		var tier1, tier2, worked int
		for _, wk := range in.Weekly[emp.ID] {
			tier1 += wk.Tier1Minutes
			tier2 += wk.Tier2Minutes
			worked += wk.WorkedMinutes
			if wk.ContingentExceeded {
				run.Warnings["annual_contingent_exceeded"]++
			}
		}

		overtimePay := contribution.OvertimePay(emp.MonthlyBaseSalary, emp.ContractualWeeklyMinutes, tier1, tier2, in.Params)
		gross := emp.MonthlyBaseSalary + overtimePay

		result, err := contribution.Compute(gross, in.Params)
		if err != nil {
			// Ceiling/tranche failures indicate a logic or parameter defect,
			// not bad per-employee input: abort the whole run.
			return PayrollRun{}, err
		}

		line := PayrollLine{
			EmployeeID:        emp.ID,
			EmployeeName:      emp.FullName(),
			BaseSalary:        emp.MonthlyBaseSalary,
			Tier1Minutes:      tier1,
			Tier2Minutes:      tier2,
			OvertimePay:       overtimePay,
			Gross:             result.Gross,
			Tranche1:          result.Tranche1,
			EmployerContrib:   result.EmployerTotal,
			EmployeeContrib:   result.EmployeeTotal,
			Net:               result.Net,
			WorkedMinutes:     worked,
			ContributionLines: result.Lines,
		}
		if worked == 0 && line.Gross > 0 {
			run.Warnings["zero_worked_hours"]++
		}

		run.Lines = append(run.Lines, line)
		run.TotalGross += line.Gross
		run.TotalEmployerContrib += line.EmployerContrib
		run.TotalEmployeeContrib += line.EmployeeContrib
		run.TotalNet += line.Net
	}

	run.TotalEmployerCost = run.TotalGross + run.TotalEmployerContrib

	// net = gross - employee contributions must hold at aggregate level; a
	// violation is a logic defect and must never be silently corrected.
	if run.TotalNet != run.TotalGross-run.TotalEmployeeContrib {
		return PayrollRun{}, ErrAggregateMismatch
	}

	return run, nil
}
