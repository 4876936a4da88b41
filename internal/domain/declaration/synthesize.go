package declaration

import (
	"sort"
	"time"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/employee"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/payroll"
)

// Synthesize builds the declaration block structure from a payroll run and
// the employer identification. The aggregate block is derived from the same
// run the ledger poster consumes, so both outputs agree by construction.
func Synthesize(run payroll.PayrollRun, employer EmployerIdentification, roster []employee.Employee) DeclarationDocument {
	byID := make(map[string]employee.Employee, len(roster))
	for _, emp := range roster {
		byID[emp.ID] = emp
	}

	doc := DeclarationDocument{
		CompanyID:    run.CompanyID,
		PeriodYear:   run.PeriodYear,
		PeriodMonth:  run.PeriodMonth,
		PayrollRunID: run.ID,
		Status:       StatusGenerated,
		Header: HeaderBlock{
			Employer:    employer,
			PeriodYear:  run.PeriodYear,
			PeriodMonth: run.PeriodMonth,
			GeneratedAt: time.Now().UTC(),
		},
	}

	aggregate := make(map[string]*AggregateLine)
	var lineOrder []string

	for _, line := range run.Lines {
		emp := byID[line.EmployeeID]

		block := RemunerationBlock{
			EmployeeID:         line.EmployeeID,
			EmployeeName:       line.EmployeeName,
			RegistrationNumber: emp.RegistrationNumber,
			WorkedMinutes:      line.WorkedMinutes,
			Gross:              line.Gross,
			Net:                line.Net,
		}
		if !emp.HireDate.IsZero() {
			block.ContractStart = emp.HireDate.Format("2006-01-02")
		}
		if emp.TerminationDate != nil {
			end := emp.TerminationDate.Format("2006-01-02")
			block.ContractEnd = &end
		}
		doc.Remunerations = append(doc.Remunerations, block)

		for _, cl := range line.ContributionLines {
			agg, ok := aggregate[cl.Code]
			if !ok {
				agg = &AggregateLine{Code: cl.Code, Label: cl.Label}
				aggregate[cl.Code] = agg
				lineOrder = append(lineOrder, cl.Code)
			}
			agg.Base += cl.Base
			agg.EmployerAmount += cl.EmployerAmount
			agg.EmployeeAmount += cl.EmployeeAmount
		}
	}

	sort.Strings(lineOrder)
	for _, code := range lineOrder {
		doc.Aggregate.Lines = append(doc.Aggregate.Lines, *aggregate[code])
	}
	doc.Aggregate.TotalGross = run.TotalGross
	doc.Aggregate.TotalEmployerContrib = run.TotalEmployerContrib
	doc.Aggregate.TotalEmployeeContrib = run.TotalEmployeeContrib
	doc.Aggregate.TotalNet = run.TotalNet

	return doc
}
