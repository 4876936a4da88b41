package payroll

import (
	"time"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
)

// RunStatus enum
type RunStatus string

const (
	RunStatusComputed   RunStatus = "computed"
	RunStatusPosted     RunStatus = "posted"
	RunStatusSuperseded RunStatus = "superseded"
)

// PayrollLine - one employee's figures inside a run. All amounts are integer
// minor currency units; the contribution lines carry the per-line audit.
type PayrollLine struct {
	EmployeeID        string
	EmployeeName      string
	BaseSalary        int64
	Tier1Minutes      int
	Tier2Minutes      int
	OvertimePay       int64
	Gross             int64
	Tranche1          int64
	EmployerContrib   int64
	EmployeeContrib   int64
	Net               int64
	WorkedMinutes     int
	ContributionLines []contribution.LineResult
}

// PayrollRun - one computed payroll for one (company, period). The parameter
// set is snapshotted by ID at creation time so historical runs stay
// reproducible. Recomputation supersedes the previous run after retracting
// its ledger entries.
type PayrollRun struct {
	ID                   string
	CompanyID            string
	PeriodYear           int
	PeriodMonth          int
	ParameterSetID       string
	Status               RunStatus
	Lines                []PayrollLine
	TotalGross           int64
	TotalEmployerContrib int64
	TotalEmployeeContrib int64
	TotalNet             int64
	TotalEmployerCost    int64
	Warnings             map[string]int
	LedgerDocumentRef    string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
