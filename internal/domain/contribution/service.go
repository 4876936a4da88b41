package contribution

import (
	"context"
)

// ContributionService defines business logic for social parameter sets and
// contribution simulation
type ContributionService interface {
	// CreateParameterSet stores a new versioned rate set
	CreateParameterSet(ctx context.Context, req CreateParameterSetRequest) (ParameterSetResponse, error)

	// GetParameterSet retrieves a single set by ID
	GetParameterSet(ctx context.Context, id string) (ParameterSetResponse, error)

	// ListParameterSets retrieves every version for the company
	ListParameterSets(ctx context.Context) ([]ParameterSetResponse, error)

	// Simulate computes contribution lines for a gross amount under the set
	// effective at the given date, without persisting anything
	Simulate(ctx context.Context, req SimulateRequest) (SimulationResponse, error)
}
