package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/employee"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
)

func rate(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func buildParams() contribution.SocialParameterSet {
	return contribution.SocialParameterSet{
		ID:             "ps-1",
		MonthlyCeiling: 350000,
		Lines: []contribution.ContributionLine{
			{Code: "HEALTH", EmployerRate: rate("0.13"), EmployeeRate: rate("0.0075"), AppliesAboveCeiling: true},
			{Code: "PENSION_T1", EmployerRate: rate("0.0855"), EmployeeRate: rate("0.0690"), AppliesAboveCeiling: false},
		},
		OvertimeTier1Rate:     rate("0.25"),
		OvertimeTier2Rate:     rate("0.50"),
		Tier1ThresholdMinutes: 8 * 60,
	}
}

func buildEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "e2", CompanyID: "c1", FirstName: "B", LastName: "Second", ContractualWeeklyMinutes: 35 * 60, MonthlyBaseSalary: 280000, Active: true, HireDate: time.Now()},
		{ID: "e1", CompanyID: "c1", FirstName: "A", LastName: "First", ContractualWeeklyMinutes: 35 * 60, MonthlyBaseSalary: 420000, Active: true, HireDate: time.Now()},
	}
}

func TestBuildRun_AggregatesReconcile(t *testing.T) {
	in := BuildInput{
		CompanyID:   "c1",
		PeriodYear:  2025,
		PeriodMonth: 5,
		Employees:   buildEmployees(),
		Weekly:      map[string][]worktime.WeeklyOvertimeResult{},
		Params:      buildParams(),
	}

	run, err := BuildRun(in)
	require.NoError(t, err)

	require.Len(t, run.Lines, 2)
	// Sorted by employee ID regardless of input order.
	assert.Equal(t, "e1", run.Lines[0].EmployeeID)
	assert.Equal(t, "e2", run.Lines[1].EmployeeID)

	var gross, employer, employeeC, net int64
	for _, l := range run.Lines {
		gross += l.Gross
		employer += l.EmployerContrib
		employeeC += l.EmployeeContrib
		net += l.Net
	}
	assert.Equal(t, gross, run.TotalGross)
	assert.Equal(t, employer, run.TotalEmployerContrib)
	assert.Equal(t, employeeC, run.TotalEmployeeContrib)
	assert.Equal(t, net, run.TotalNet)
	assert.Equal(t, gross+employer, run.TotalEmployerCost)
	assert.Equal(t, run.TotalGross-run.TotalEmployeeContrib, run.TotalNet)
	assert.Equal(t, "ps-1", run.ParameterSetID)
	assert.Equal(t, RunStatusComputed, run.Status)
}

func TestBuildRun_OvertimeAddedToGross(t *testing.T) {
	weekly := map[string][]worktime.WeeklyOvertimeResult{
		"e1": {
			{EmployeeID: "e1", ISOYear: 2025, ISOWeek: 19, WorkedMinutes: 44 * 60, OvertimeMinutes: 9 * 60, Tier1Minutes: 8 * 60, Tier2Minutes: 1 * 60},
		},
	}
	in := BuildInput{
		CompanyID:   "c1",
		PeriodYear:  2025,
		PeriodMonth: 5,
		Employees:   buildEmployees(),
		Weekly:      weekly,
		Params:      buildParams(),
	}

	run, err := BuildRun(in)
	require.NoError(t, err)

	withOT := run.Lines[0] // e1
	withoutOT := run.Lines[1]

	assert.Positive(t, withOT.OvertimePay)
	assert.Equal(t, withOT.BaseSalary+withOT.OvertimePay, withOT.Gross)
	assert.Equal(t, 8*60, withOT.Tier1Minutes)
	assert.Equal(t, 1*60, withOT.Tier2Minutes)
	assert.Zero(t, withoutOT.OvertimePay)
	assert.Equal(t, withoutOT.BaseSalary, withoutOT.Gross)
}

func TestBuildRun_Idempotent(t *testing.T) {
	in := BuildInput{
		CompanyID:   "c1",
		PeriodYear:  2025,
		PeriodMonth: 5,
		Employees:   buildEmployees(),
		Weekly: map[string][]worktime.WeeklyOvertimeResult{
			"e1": {{EmployeeID: "e1", Tier1Minutes: 120, WorkedMinutes: 37 * 60}},
		},
		Params: buildParams(),
	}

	first, err := BuildRun(in)
	require.NoError(t, err)
	second, err := BuildRun(in)
	require.NoError(t, err)

	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, first.TotalGross, second.TotalGross)
	assert.Equal(t, first.TotalNet, second.TotalNet)
}

func TestBuildRun_SkipsInactiveAndUnsalaried(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", Active: true, MonthlyBaseSalary: 300000, ContractualWeeklyMinutes: 35 * 60},
		{ID: "e2", Active: false, MonthlyBaseSalary: 300000, ContractualWeeklyMinutes: 35 * 60},
		{ID: "e3", Active: true, MonthlyBaseSalary: 0, ContractualWeeklyMinutes: 35 * 60},
	}
	in := BuildInput{
		CompanyID:   "c1",
		PeriodYear:  2025,
		PeriodMonth: 5,
		Employees:   employees,
		Params:      buildParams(),
	}

	run, err := BuildRun(in)
	require.NoError(t, err)

	require.Len(t, run.Lines, 1)
	assert.Equal(t, "e1", run.Lines[0].EmployeeID)
	assert.Equal(t, 1, run.Warnings["missing_base_salary"])
	assert.Equal(t, 1, run.Warnings["zero_worked_hours"])
}

func TestBuildRun_InvalidPeriod(t *testing.T) {
	_, err := BuildRun(BuildInput{PeriodYear: 2025, PeriodMonth: 13})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = BuildRun(BuildInput{PeriodYear: 1999, PeriodMonth: 1})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
