package material

import (
	"context"

	"inventuagro/internal/core/types"
	"inventuagro/internal/domain"
	"inventuagro/pkg/logger"
)

// Defaults returns the starter materials seeded into an empty catalog.
// Densities are stored in g/cm3.
func Defaults() []*Material {
	acero1045 := NewMaterial("acero-1045", "Acero 1045")
	acero1045.PricePerKg = types.MustMoney("1.70")
	acero1045.Density = 7.85

	acero15b30 := NewMaterial("acero-15b30", "Acero 15B30")
	acero15b30.PricePerKg = types.MustMoney("3.00")
	acero15b30.Density = 7.85

	return []*Material{acero1045, acero15b30}
}

// SeedDefaults inserts the starter materials when the catalog is empty.
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
	for _, m := range seeds {
		if err := s.Create(ctx, m); err != nil {
			return err
		}
	}
	logger.Info(ctx, "seeded default materials", "count", len(seeds))
	return nil
}
