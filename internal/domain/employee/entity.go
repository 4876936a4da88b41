package employee

import "time"

// Employee - roster entry, maintained by external HR administration and
// read-only to the engine. Salary amounts are integer minor currency units.
type Employee struct {
	ID                       string
	CompanyID                string
	Code                     string
	FirstName                string
	LastName                 string
	RegistrationNumber       string // social-security registration identifier
	ContractualWeeklyMinutes int
	MonthlyBaseSalary        int64
	Active                   bool
	HireDate                 time.Time
	TerminationDate          *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// FullName joins first and last name for display blocks.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
