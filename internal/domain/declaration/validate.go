package declaration

import (
	"fmt"

	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/validator"
)

// Issue categories.
const (
	CategoryStructure    = "structure"
	CategoryField        = "field"
	CategoryConsistency  = "consistency"
	CategoryPlausibility = "plausibility"
	CategoryIdentifier   = "identifier"
)

type check func(d DeclarationDocument) []ValidationIssue

// Validate runs the structural check pipeline and returns every issue found.
// Checks are independent; the pipeline never stops at the first finding and
// never mutates the document.
func Validate(d DeclarationDocument) []ValidationIssue {
	pipeline := []check{
		checkRequiredBlocks,
		checkMandatoryFields,
		checkCrossTotals,
		checkPlausibility,
		checkIdentifierFormats,
	}

	var issues []ValidationIssue
	for _, c := range pipeline {
		issues = append(issues, c(d)...)
	}
	return issues
}

func checkRequiredBlocks(d DeclarationDocument) []ValidationIssue {
	var issues []ValidationIssue
	if d.Header.Employer.LegalName == "" && d.Header.Employer.RegistrationNumber == "" {
		issues = append(issues, ValidationIssue{
			Code:     "DECL-001",
			Category: CategoryStructure,
			Severity: SeverityError,
			Message:  "header/identification block is missing",
			Location: "header",
		})
	}
	if len(d.Remunerations) == 0 {
		issues = append(issues, ValidationIssue{
			Code:     "DECL-002",
			Category: CategoryStructure,
			Severity: SeverityError,
			Message:  "at least one remuneration block is required",
			Location: "remunerations",
		})
	}
	return issues
}

func checkMandatoryFields(d DeclarationDocument) []ValidationIssue {
	var issues []ValidationIssue

	missing := func(location, field string) ValidationIssue {
		return ValidationIssue{
			Code:     "DECL-010",
			Category: CategoryField,
			Severity: SeverityError,
			Message:  fmt.Sprintf("mandatory field %s is missing", field),
			Location: location,
		}
	}

	if d.Header.Employer.LegalName == "" {
		issues = append(issues, missing("header", "legal_name"))
	}
	if d.Header.Employer.RegistrationNumber == "" {
		issues = append(issues, missing("header", "registration_number"))
	}
	if d.Header.Employer.SchemeCode == "" {
		issues = append(issues, missing("header", "scheme_code"))
	}

	for i, block := range d.Remunerations {
		loc := fmt.Sprintf("remunerations[%d]", i)
		if block.EmployeeName == "" {
			issues = append(issues, missing(loc, "employee_name"))
		}
		if block.RegistrationNumber == "" {
			issues = append(issues, missing(loc, "registration_number"))
		}
		if block.ContractStart == "" {
			issues = append(issues, missing(loc, "contract_start"))
		}
	}
	return issues
}

func checkCrossTotals(d DeclarationDocument) []ValidationIssue {
	var gross, net int64
	for _, block := range d.Remunerations {
		gross += block.Gross
		net += block.Net
	}

	var issues []ValidationIssue
	if gross != d.Aggregate.TotalGross {
		issues = append(issues, ValidationIssue{
			Code:     "DECL-020",
			Category: CategoryConsistency,
			Severity: SeverityError,
			Message:  fmt.Sprintf("aggregate gross %d does not equal sum of remuneration blocks %d", d.Aggregate.TotalGross, gross),
			Location: "aggregate.total_gross",
		})
	}
	if net != d.Aggregate.TotalNet {
		issues = append(issues, ValidationIssue{
			Code:     "DECL-021",
			Category: CategoryConsistency,
			Severity: SeverityError,
			Message:  fmt.Sprintf("aggregate net %d does not equal sum of remuneration blocks %d", d.Aggregate.TotalNet, net),
			Location: "aggregate.total_net",
		})
	}

	var employer, employee int64
	for _, line := range d.Aggregate.Lines {
		employer += line.EmployerAmount
		employee += line.EmployeeAmount
	}
	if employer != d.Aggregate.TotalEmployerContrib || employee != d.Aggregate.TotalEmployeeContrib {
		issues = append(issues, ValidationIssue{
			Code:     "DECL-022",
			Category: CategoryConsistency,
			Severity: SeverityError,
			Message:  "aggregate contribution totals do not equal the sum of scheme lines",
			Location: "aggregate.lines",
		})
	}
	return issues
}

func checkPlausibility(d DeclarationDocument) []ValidationIssue {
	var issues []ValidationIssue
	for i, block := range d.Remunerations {
		if block.WorkedMinutes == 0 && block.Gross > 0 {
			issues = append(issues, ValidationIssue{
				Code:     "DECL-030",
				Category: CategoryPlausibility,
				Severity: SeverityWarning,
				Message:  "remuneration block has zero worked hours with non-zero gross",
				Location: fmt.Sprintf("remunerations[%d]", i),
			})
		}
		if block.Net > block.Gross {
			issues = append(issues, ValidationIssue{
				Code:     "DECL-031",
				Category: CategoryPlausibility,
				Severity: SeverityWarning,
				Message:  "net exceeds gross",
				Location: fmt.Sprintf("remunerations[%d]", i),
			})
		}
	}
	return issues
}

func checkIdentifierFormats(d DeclarationDocument) []ValidationIssue {
	var issues []ValidationIssue

	badFormat := func(location, field string, length int) ValidationIssue {
		return ValidationIssue{
			Code:     "DECL-040",
			Category: CategoryIdentifier,
			Severity: SeverityError,
			Message:  fmt.Sprintf("%s must be exactly %d numeric digits", field, length),
			Location: location,
		}
	}

	if reg := d.Header.Employer.RegistrationNumber; reg != "" && !validator.IsFixedLengthNumeric(reg, 14) {
		issues = append(issues, badFormat("header", "registration_number", 14))
	}
	if pc := d.Header.Employer.PostalCode; pc != "" && !validator.IsFixedLengthNumeric(pc, 5) {
		issues = append(issues, badFormat("header", "postal_code", 5))
	}
	for i, block := range d.Remunerations {
		if block.RegistrationNumber != "" && !validator.IsFixedLengthNumeric(block.RegistrationNumber, 13) {
			issues = append(issues, badFormat(fmt.Sprintf("remunerations[%d]", i), "registration_number", 13))
		}
	}
	return issues
}

// HasErrors reports whether any issue is error severity.
func HasErrors(issues []ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
