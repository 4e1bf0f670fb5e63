package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"inventuagro/internal/core/id"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/domain/costing"
	"inventuagro/internal/infrastructure/storage/postgres"
)

const operationTable = "cat_operations"

// OperationRepo implements operation.Repository.
type OperationRepo struct {
	*BaseCatalogRepo[*operation.Operation]
}

// NewOperationRepo creates a new operation repository.
func NewOperationRepo(txManager *postgres.TxManager) *OperationRepo {
	return &OperationRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*operation.Operation](
			txManager,
			operationTable,
			postgres.ExtractDBColumns[operation.Operation](),
			func() *operation.Operation { return &operation.Operation{} },
		),
	}
}

// RefMap loads all active operations keyed by id in costing shape.
func (r *OperationRepo) RefMap(ctx context.Context) (map[id.ID]costing.OperationRef, error) {
	q := r.Builder().
		Select(r.SelectColumns()...).
		From(operationTable).
		Where(squirrel.Eq{"deletion_mark": false})

	items, err := r.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}

	refs := make(map[id.ID]costing.OperationRef, len(items))
	for _, op := range items {
		refs[op.ID] = op.Ref()
	}
	return refs, nil
}
