package payroll

import "context"

// PayrollRunRepository defines data access for payroll runs and their lines.
// All methods include companyID to prevent cross-company data access.
type PayrollRunRepository interface {
	// Create inserts the run and all its lines.
	Create(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetByID(ctx context.Context, id string, companyID string) (PayrollRun, error)
	// GetActiveByPeriod returns the non-superseded run for a period, or
	// ErrRunNotFound.
	GetActiveByPeriod(ctx context.Context, companyID string, year, month int) (PayrollRun, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]PayrollRun, int64, error)
	// Supersede marks every active run of the period superseded.
	Supersede(ctx context.Context, companyID string, year, month int) error
	UpdateStatus(ctx context.Context, id string, companyID string, status RunStatus, ledgerDocumentRef string) error
	// AcquirePeriodLock takes the period-scoped advisory lock serializing
	// retract-then-repost for one (company, period). Held until the
	// surrounding transaction ends.
	AcquirePeriodLock(ctx context.Context, companyID string, year, month int) error
}
