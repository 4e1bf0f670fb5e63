// Package material provides the Material reference catalog.
// Materials are referenced by name (not id) from catalog products, so
// renaming a material orphans any product whose name no longer matches.
package material

import (
	"context"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/entity"
	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/costing"
)

// Material represents a raw material with its price and density.
type Material struct {
	entity.Catalog

	// PricePerKg is the material price in USD per kilogram
	PricePerKg types.Money `db:"price_per_kg" json:"pricePerKg"`

	// Density is stored in either kg/m3 or g/cm3 depending on the record's
	// origin; costing.NormalizeDensity resolves the ambiguity on read.
	Density float64 `db:"density" json:"density"`
}

// NewMaterial creates a new Material with required fields.
func NewMaterial(code, name string) *Material {
	return &Material{
		Catalog:    entity.NewCatalog(code, name),
		PricePerKg: types.Zero(),
	}
}

// Validate implements entity.Validatable interface.
func (m *Material) Validate(ctx context.Context) error {
	if err := m.Catalog.Validate(ctx); err != nil {
		return err
	}

	if m.PricePerKg.IsNegative() {
		return apperror.NewValidation("price per kg cannot be negative").
			WithDetail("field", "pricePerKg")
	}

	if m.Density < 0 {
		return apperror.NewValidation("density cannot be negative").
			WithDetail("field", "density")
	}

	return nil
}

// Ref converts the catalog record to the costing engine's reference shape.
func (m *Material) Ref() costing.MaterialRef {
	return costing.MaterialRef{
		Name:       m.Name,
		PricePerKg: m.PricePerKg,
		Density:    m.Density,
	}
}
