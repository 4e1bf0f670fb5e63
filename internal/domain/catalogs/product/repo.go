package product

import (
	"context"

	"inventuagro/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindByReference retrieves a product by its reference code.
	FindByReference(ctx context.Context, reference string) (*Product, error)
}
