package employee

import "context"

// EmployeeRepository defines read-only roster access. The engine never
// creates or mutates employees; HR administration owns that lifecycle.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
