package operation

import (
	"context"

	"inventuagro/internal/core/id"
	"inventuagro/internal/domain"
	"inventuagro/internal/domain/costing"
)

// Repository defines the interface for Operation persistence.
type Repository interface {
	domain.CatalogRepository[*Operation]

	// RefMap loads every active operation keyed by id, in the shape the
	// costing engine consumes. Lookup misses inside the engine degrade
	// to unknown placeholders, so the map is simply what exists.
	RefMap(ctx context.Context) (map[id.ID]costing.OperationRef, error)
}
