package material

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/id"
	"inventuagro/internal/domain"
)

type noopTx struct{}

func (noopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memRepo struct {
	items []*Material
}

func (r *memRepo) Create(_ context.Context, m *Material) error {
	r.items = append(r.items, m)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, entityID id.ID) (*Material, error) {
	for _, m := range r.items {
		if m.ID == entityID {
			return m, nil
		}
	}
	return nil, apperror.NewNotFound("material", entityID)
}

func (r *memRepo) GetByCode(_ context.Context, code string) (*Material, error) {
	for _, m := range r.items {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, apperror.NewNotFound("material", code)
}

func (r *memRepo) Update(_ context.Context, _ *Material) error { return nil }

func (r *memRepo) Delete(_ context.Context, _ id.ID) error { return nil }

func (r *memRepo) SetDeletionMark(_ context.Context, _ id.ID, _ bool) error { return nil }

func (r *memRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*Material], error) {
	return domain.ListResult[*Material]{Items: r.items, TotalCount: int64(len(r.items))}, nil
}

func (r *memRepo) Exists(_ context.Context, _ id.ID) (bool, error) { return false, nil }

func (r *memRepo) ExistsByCode(_ context.Context, _ string) (bool, error) { return false, nil }

func (r *memRepo) FindByName(_ context.Context, name string) (*Material, error) {
	for _, m := range r.items {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, apperror.NewNotFound("material", name)
}

func TestSeedDefaults_EmptyCatalog(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, noopTx{})

	require.NoError(t, svc.SeedDefaults(context.Background()))

	require.Len(t, repo.items, 2)
	acero, err := repo.FindByName(context.Background(), "Acero 1045")
	require.NoError(t, err)
	assert.Equal(t, "1.7", acero.PricePerKg.String())
	assert.Equal(t, 7.85, acero.Density)
}

func TestSeedDefaults_NonEmptyCatalogUntouched(t *testing.T) {
	existing := NewMaterial("inox", "Acero Inoxidable")
	repo := &memRepo{items: []*Material{existing}}
	svc := NewService(repo, noopTx{})

	require.NoError(t, svc.SeedDefaults(context.Background()))

	assert.Len(t, repo.items, 1)
}
