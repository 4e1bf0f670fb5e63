package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*product.Product](
			txManager,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// FindByReference retrieves a product by its reference code.
func (r *ProductRepo) FindByReference(ctx context.Context, reference string) (*product.Product, error) {
	q := r.Builder().
		Select(r.SelectColumns()...).
		From(productTable).
		Where(squirrel.Eq{"reference": reference}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}
