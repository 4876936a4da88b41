package declaration

import "context"

// DeclarationRepository defines data access for declaration documents.
type DeclarationRepository interface {
	// Upsert stores the document for its (company, period), replacing a
	// previous non-transmitted document.
	Upsert(ctx context.Context, doc DeclarationDocument) (DeclarationDocument, error)
	GetByID(ctx context.Context, id string, companyID string) (DeclarationDocument, error)
	GetByPeriod(ctx context.Context, companyID string, year, month int) (DeclarationDocument, error)
	UpdateStatusAndIssues(ctx context.Context, id string, companyID string, status Status, issues []ValidationIssue) error
}

// EmployerRepository loads the employer identification parameters used for
// declaration headers. Maintained by company administration, read-only here.
type EmployerRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (EmployerIdentification, error)
}
