package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/infrastructure/storage/postgres"
)

const materialTable = "cat_materials"

// MaterialRepo implements material.Repository.
type MaterialRepo struct {
	*BaseCatalogRepo[*material.Material]
}

// NewMaterialRepo creates a new material repository.
func NewMaterialRepo(txManager *postgres.TxManager) *MaterialRepo {
	return &MaterialRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*material.Material](
			txManager,
			materialTable,
			postgres.ExtractDBColumns[material.Material](),
			func() *material.Material { return &material.Material{} },
		),
	}
}

// FindByName retrieves a material by exact name. Products reference
// materials by name, not id.
func (r *MaterialRepo) FindByName(ctx context.Context, name string) (*material.Material, error) {
	q := r.Builder().
		Select(r.SelectColumns()...).
		From(materialTable).
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}
