package declaration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/employee"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/payroll"
)

func sampleRun() payroll.PayrollRun {
	return payroll.PayrollRun{
		ID:          "run-1",
		CompanyID:   "c1",
		PeriodYear:  2025,
		PeriodMonth: 5,
		Status:      payroll.RunStatusPosted,
		Lines: []payroll.PayrollLine{
			{
				EmployeeID:    "e1",
				EmployeeName:  "A First",
				WorkedMinutes: 151 * 60,
				Gross:         420000,
				Net:           325000,
				ContributionLines: []contribution.LineResult{
					{Code: "HEALTH", Label: "Health", Base: 420000, EmployerAmount: 54600, EmployeeAmount: 3150},
					{Code: "PENSION_T1", Label: "Pension T1", Base: 350000, EmployerAmount: 29925, EmployeeAmount: 24150},
				},
			},
			{
				EmployeeID:    "e2",
				EmployeeName:  "B Second",
				WorkedMinutes: 151 * 60,
				Gross:         280000,
				Net:           215000,
				ContributionLines: []contribution.LineResult{
					{Code: "PENSION_T1", Label: "Pension T1", Base: 280000, EmployerAmount: 23940, EmployeeAmount: 19320},
					{Code: "HEALTH", Label: "Health", Base: 280000, EmployerAmount: 36400, EmployeeAmount: 2100},
				},
			},
		},
		TotalGross:           700000,
		TotalEmployerContrib: 144865,
		TotalEmployeeContrib: 48720,
		TotalNet:             540000,
	}
}

func sampleRoster() []employee.Employee {
	end := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	return []employee.Employee{
		{ID: "e1", RegistrationNumber: "1850575123456", HireDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "e2", RegistrationNumber: "2900775654321", HireDate: time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), TerminationDate: &end},
	}
}

func TestSynthesize_BlocksMirrorRunLines(t *testing.T) {
	doc := Synthesize(sampleRun(), validEmployer(), sampleRoster())

	assert.Equal(t, StatusGenerated, doc.Status)
	assert.Equal(t, "run-1", doc.PayrollRunID)
	assert.Equal(t, 2025, doc.Header.PeriodYear)
	require.Len(t, doc.Remunerations, 2)

	first := doc.Remunerations[0]
	assert.Equal(t, "1850575123456", first.RegistrationNumber)
	assert.Equal(t, "2020-01-01", first.ContractStart)
	assert.Nil(t, first.ContractEnd)
	assert.Equal(t, int64(420000), first.Gross)

	second := doc.Remunerations[1]
	require.NotNil(t, second.ContractEnd)
	assert.Equal(t, "2025-05-20", *second.ContractEnd)
}

func TestSynthesize_AggregatesContributionsByCode(t *testing.T) {
	doc := Synthesize(sampleRun(), validEmployer(), sampleRoster())

	require.Len(t, doc.Aggregate.Lines, 2)
	// Lines come out sorted by scheme code.
	assert.Equal(t, "HEALTH", doc.Aggregate.Lines[0].Code)
	assert.Equal(t, "PENSION_T1", doc.Aggregate.Lines[1].Code)

	health := doc.Aggregate.Lines[0]
	assert.Equal(t, int64(700000), health.Base)
	assert.Equal(t, int64(91000), health.EmployerAmount)
	assert.Equal(t, int64(5250), health.EmployeeAmount)

	pension := doc.Aggregate.Lines[1]
	assert.Equal(t, int64(630000), pension.Base)
	assert.Equal(t, int64(53865), pension.EmployerAmount)
	assert.Equal(t, int64(43470), pension.EmployeeAmount)
}

func TestSynthesize_TotalsComeFromRun(t *testing.T) {
	run := sampleRun()
	doc := Synthesize(run, validEmployer(), sampleRoster())

	assert.Equal(t, run.TotalGross, doc.Aggregate.TotalGross)
	assert.Equal(t, run.TotalEmployerContrib, doc.Aggregate.TotalEmployerContrib)
	assert.Equal(t, run.TotalEmployeeContrib, doc.Aggregate.TotalEmployeeContrib)
	assert.Equal(t, run.TotalNet, doc.Aggregate.TotalNet)
}

func TestSynthesize_ThenValidate_IsClean(t *testing.T) {
	doc := Synthesize(sampleRun(), validEmployer(), sampleRoster())
	issues := Validate(doc)
	assert.False(t, HasErrors(issues))
}
