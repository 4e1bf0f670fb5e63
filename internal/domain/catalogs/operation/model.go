// Package operation provides the Operation reference catalog.
// An operation is a billable process (heat treatment, grinding, painting)
// with a measurement unit and a unit price. Products reference operations
// by id; a deleted operation leaves a dangling id that consumers render
// as an unknown placeholder, never as a failure.
package operation

import (
	"context"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/entity"
	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/costing"
)

// Provider identifies who performs the operation.
type Provider string

const (
	ProviderInHouse  Provider = "inventu_lab"
	ProviderExternal Provider = "externo"
)

// Operation represents a billable post-processing service.
type Operation struct {
	entity.Catalog

	// UnitPrice is the price in USD per unit of measure
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// Unit is the measurement unit the price applies to
	Unit costing.Unit `db:"unit" json:"unit"`

	// Provider is who performs the work, in-house or subcontracted
	Provider Provider `db:"provider" json:"provider"`

	Description string `db:"description" json:"description,omitempty"`
}

// NewOperation creates a new Operation with required fields.
func NewOperation(code, name string, unit costing.Unit) *Operation {
	return &Operation{
		Catalog:   entity.NewCatalog(code, name),
		Unit:      unit,
		UnitPrice: types.Zero(),
		Provider:  ProviderInHouse,
	}
}

// Validate implements entity.Validatable interface.
func (o *Operation) Validate(ctx context.Context) error {
	if err := o.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidUnit(o.Unit) {
		return apperror.NewValidation("invalid operation unit").
			WithDetail("field", "unit").
			WithDetail("value", string(o.Unit))
	}

	if o.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	switch o.Provider {
	case "", ProviderInHouse, ProviderExternal:
	default:
		return apperror.NewValidation("invalid provider").
			WithDetail("field", "provider").
			WithDetail("value", string(o.Provider))
	}

	return nil
}

// Ref converts the catalog record to the costing engine's reference shape.
func (o *Operation) Ref() costing.OperationRef {
	return costing.OperationRef{
		ID:        o.ID,
		Name:      o.Name,
		UnitPrice: o.UnitPrice,
		Unit:      o.Unit,
	}
}

func isValidUnit(u costing.Unit) bool {
	switch u {
	case costing.UnitPiece, costing.UnitKilogram, costing.UnitSquareMeter,
		costing.UnitLinearMeter, costing.UnitHoleCount, costing.UnitFixed,
		costing.UnitQuantity:
		return true
	}
	return false
}
