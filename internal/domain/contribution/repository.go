package contribution

import (
	"context"
	"time"
)

// ParameterSetRepository defines data access for social parameter sets.
// Sets are append-only versions; there is no update or delete.
type ParameterSetRepository interface {
	Create(ctx context.Context, set SocialParameterSet) (SocialParameterSet, error)
	GetByID(ctx context.Context, id string, companyID string) (SocialParameterSet, error)
	// GetForDate returns the latest set effective on or before the given
	// date, or ErrUnknownParameterSet when none covers it.
	GetForDate(ctx context.Context, companyID string, date time.Time) (SocialParameterSet, error)
	ListByCompany(ctx context.Context, companyID string) ([]SocialParameterSet, error)
}
