package payroll

import (
	"context"
)

// PayrollService defines business logic for payroll run operations
type PayrollService interface {
	// ComputeRun computes the payroll for a period, supersedes any previous
	// run and posts the payroll journal, all atomically
	ComputeRun(ctx context.Context, req ComputeRunRequest) (PayrollRunResponse, error)

	// GetRun retrieves a single run with its lines
	GetRun(ctx context.Context, id string) (PayrollRunResponse, error)

	// GetActiveRun retrieves the non-superseded run for a period
	GetActiveRun(ctx context.Context, year, month int) (PayrollRunResponse, error)

	// ListRuns retrieves runs for the company, newest period first
	ListRuns(ctx context.Context, page, limit int) (ListPayrollRunResponse, error)
}
