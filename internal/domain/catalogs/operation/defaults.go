package operation

import (
	"context"

	"inventuagro/internal/core/types"
	"inventuagro/internal/domain"
	"inventuagro/internal/domain/costing"
	"inventuagro/pkg/logger"
)

// Defaults returns the starter operations seeded into an empty catalog.
func Defaults() []*Operation {
	seed := func(code, name string, unit costing.Unit, price string, provider Provider) *Operation {
		o := NewOperation(code, name, unit)
		o.UnitPrice = types.MustMoney(price)
		o.Provider = provider
		return o
	}

	return []*Operation{
		seed("corte", "Corte", costing.UnitPiece, "1.00", ProviderInHouse),
		seed("plegado", "Plegado", costing.UnitPiece, "0.80", ProviderInHouse),
		seed("soldado", "Soldado", costing.UnitPiece, "1.50", ProviderInHouse),
		seed("pintura", "Pintura", costing.UnitPiece, "0.50", ProviderInHouse),
		seed("mecanizado", "Mecanizado de filo", costing.UnitPiece, "1.00", ProviderInHouse),
		seed("tratamiento", "Tratamiento Térmico", costing.UnitKilogram, "1.50", ProviderExternal),
	}
}

// SeedDefaults inserts the starter operations when the catalog is empty.
// A non-empty catalog is left untouched.
func (s *Service) SeedDefaults(ctx context.Context) error {
	result, err := s.List(ctx, domain.ListFilter{Limit: 1, IncludeDeleted: true})
	if err != nil {
		return err
	}
	if result.TotalCount > 0 {
		return nil
	}

	seeds := Defaults()
	for _, o := range seeds {
		if err := s.Create(ctx, o); err != nil {
			return err
		}
	}
	logger.Info(ctx, "seeded default operations", "count", len(seeds))
	return nil
}
