package material

import (
	"context"

	"inventuagro/internal/domain"
)

// Repository defines the interface for Material persistence.
type Repository interface {
	domain.CatalogRepository[*Material]

	// FindByName retrieves a material by its exact name.
	// Products reference materials by name, so this is the hot lookup.
	FindByName(ctx context.Context, name string) (*Material, error)
}
