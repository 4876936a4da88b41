package declaration

import (
	"context"
)

// DeclarationService defines business logic for declaration documents
type DeclarationService interface {
	// Generate synthesizes the declaration from the period's active payroll
	// run, validates it and stores it in generated status
	Generate(ctx context.Context, req GenerateDeclarationRequest) (DeclarationResponse, error)

	// GetDeclaration retrieves a declaration by ID
	GetDeclaration(ctx context.Context, id string) (DeclarationResponse, error)

	// GetByPeriod retrieves the declaration of a period
	GetByPeriod(ctx context.Context, year, month int) (DeclarationResponse, error)

	// MarkValidated re-runs validation and moves the declaration to
	// validated when zero error-severity issues remain
	MarkValidated(ctx context.Context, id string) (DeclarationResponse, error)

	// MarkTransmitted records the external transmission acknowledgement
	MarkTransmitted(ctx context.Context, id string) (DeclarationResponse, error)
}
