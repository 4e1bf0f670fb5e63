package operation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/id"
	"inventuagro/internal/domain"
	"inventuagro/internal/domain/costing"
)

type noopTx struct{}

func (noopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memRepo struct {
	items []*Operation
}

func (r *memRepo) Create(_ context.Context, o *Operation) error {
	r.items = append(r.items, o)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, entityID id.ID) (*Operation, error) {
	for _, o := range r.items {
		if o.ID == entityID {
			return o, nil
		}
	}
	return nil, apperror.NewNotFound("operation", entityID)
}

func (r *memRepo) GetByCode(_ context.Context, code string) (*Operation, error) {
	for _, o := range r.items {
		if o.Code == code {
			return o, nil
		}
	}
	return nil, apperror.NewNotFound("operation", code)
}

func (r *memRepo) Update(_ context.Context, _ *Operation) error { return nil }

func (r *memRepo) Delete(_ context.Context, _ id.ID) error { return nil }

func (r *memRepo) SetDeletionMark(_ context.Context, _ id.ID, _ bool) error { return nil }

func (r *memRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*Operation], error) {
	return domain.ListResult[*Operation]{Items: r.items, TotalCount: int64(len(r.items))}, nil
}

func (r *memRepo) Exists(_ context.Context, _ id.ID) (bool, error) { return false, nil }

func (r *memRepo) ExistsByCode(_ context.Context, _ string) (bool, error) { return false, nil }

func (r *memRepo) RefMap(_ context.Context) (map[id.ID]costing.OperationRef, error) {
	refs := make(map[id.ID]costing.OperationRef, len(r.items))
	for _, o := range r.items {
		refs[o.ID] = o.Ref()
	}
	return refs, nil
}

func TestSeedDefaults_EmptyCatalog(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, noopTx{})

	require.NoError(t, svc.SeedDefaults(context.Background()))

	require.Len(t, repo.items, 6)

	corte, err := repo.GetByCode(context.Background(), "corte")
	require.NoError(t, err)
	assert.Equal(t, costing.UnitPiece, corte.Unit)
	assert.Equal(t, ProviderInHouse, corte.Provider)

	tratamiento, err := repo.GetByCode(context.Background(), "tratamiento")
	require.NoError(t, err)
	assert.Equal(t, costing.UnitKilogram, tratamiento.Unit)
	assert.Equal(t, ProviderExternal, tratamiento.Provider)
	assert.Equal(t, "1.5", tratamiento.UnitPrice.String())
}

func TestSeedDefaults_NonEmptyCatalogUntouched(t *testing.T) {
	existing := NewOperation("granallado", "Granallado", costing.UnitPiece)
	repo := &memRepo{items: []*Operation{existing}}
	svc := NewService(repo, noopTx{})

	require.NoError(t, svc.SeedDefaults(context.Background()))

	assert.Len(t, repo.items, 1)
}
