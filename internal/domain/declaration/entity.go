package declaration

import "time"

// Status enum - declaration lifecycle. Transmitted is terminal and only ever
// set from an external acknowledgement; the engine never triggers it itself.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusGenerated   Status = "generated"
	StatusValidated   Status = "validated"
	StatusTransmitted Status = "transmitted"
)

// Severity enum - closed two-level severity. Validity is strictly "zero
// error-severity issues"; warnings never block.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue - one finding from the structural validator.
type ValidationIssue struct {
	Code     string
	Category string
	Severity Severity
	Message  string
	Location string
}

// EmployerIdentification - legal identifiers for the declaration header,
// provided by company administration.
type EmployerIdentification struct {
	LegalName          string
	RegistrationNumber string // 14-digit establishment identifier
	SchemeCode         string // affiliated collection scheme
	AddressLine        string
	PostalCode         string
	City               string
}

// HeaderBlock - identification block of the declaration.
type HeaderBlock struct {
	Employer    EmployerIdentification
	PeriodYear  int
	PeriodMonth int
	GeneratedAt time.Time
}

// RemunerationBlock - one per-employee block.
type RemunerationBlock struct {
	EmployeeID         string
	EmployeeName       string
	RegistrationNumber string // 13-digit personal identifier
	WorkedMinutes      int
	Gross              int64
	Net                int64
	ContractStart      string
	ContractEnd        *string
}

// AggregateLine - one contribution scheme line totalled over all employees.
type AggregateLine struct {
	Code           string
	Label          string
	Base           int64
	EmployerAmount int64
	EmployeeAmount int64
}

// ContributionBlock - the aggregate block; its totals must match both the
// sum of the remuneration blocks and the payroll journal totals.
type ContributionBlock struct {
	Lines                []AggregateLine
	TotalGross           int64
	TotalEmployerContrib int64
	TotalEmployeeContrib int64
	TotalNet             int64
}

// DeclarationDocument - one per (company, period).
type DeclarationDocument struct {
	ID            string
	CompanyID     string
	PeriodYear    int
	PeriodMonth   int
	PayrollRunID  string
	Status        Status
	Header        HeaderBlock
	Remunerations []RemunerationBlock
	Aggregate     ContributionBlock
	Issues        []ValidationIssue
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsValid reports whether the last validation found zero error-severity
// issues. Warnings do not affect validity.
func (d DeclarationDocument) IsValid() bool {
	for _, issue := range d.Issues {
		if issue.Severity == SeverityError {
			return false
		}
	}
	return true
}

// CanTransition checks the declaration state machine: draft -> generated ->
// validated -> transmitted, with validated falling back to generated after a
// resynthesis. Transmitted is terminal.
func (d DeclarationDocument) CanTransition(to Status) bool {
	switch d.Status {
	case StatusDraft:
		return to == StatusGenerated
	case StatusGenerated:
		return to == StatusGenerated || to == StatusValidated
	case StatusValidated:
		return to == StatusGenerated || to == StatusTransmitted
	case StatusTransmitted:
		return false
	}
	return false
}
