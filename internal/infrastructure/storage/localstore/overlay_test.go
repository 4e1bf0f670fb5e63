package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/id"
	"inventuagro/internal/domain"
	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/domain/config"
	"inventuagro/internal/domain/documents/quotation"
)

type stubMaterialRepo struct {
	items []*material.Material
}

func (r *stubMaterialRepo) Create(_ context.Context, m *material.Material) error {
	r.items = append(r.items, m)
	return nil
}

func (r *stubMaterialRepo) GetByID(_ context.Context, entityID id.ID) (*material.Material, error) {
	for _, m := range r.items {
		if m.ID == entityID {
			return m, nil
		}
	}
	return nil, apperror.NewNotFound("material", entityID)
}

func (r *stubMaterialRepo) GetByCode(_ context.Context, code string) (*material.Material, error) {
	for _, m := range r.items {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, apperror.NewNotFound("material", code)
}

func (r *stubMaterialRepo) Update(_ context.Context, _ *material.Material) error { return nil }

func (r *stubMaterialRepo) Delete(_ context.Context, _ id.ID) error { return nil }

func (r *stubMaterialRepo) SetDeletionMark(_ context.Context, _ id.ID, _ bool) error { return nil }

func (r *stubMaterialRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*material.Material], error) {
	return domain.ListResult[*material.Material]{Items: r.items, TotalCount: int64(len(r.items))}, nil
}

func (r *stubMaterialRepo) Exists(_ context.Context, _ id.ID) (bool, error) { return false, nil }

func (r *stubMaterialRepo) ExistsByCode(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *stubMaterialRepo) FindByName(_ context.Context, name string) (*material.Material, error) {
	for _, m := range r.items {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, apperror.NewNotFound("material", name)
}

type stubQuotationRepo struct {
	items []*quotation.Quotation
}

func (r *stubQuotationRepo) Create(_ context.Context, q *quotation.Quotation) error {
	r.items = append(r.items, q)
	return nil
}

func (r *stubQuotationRepo) GetByID(_ context.Context, docID id.ID) (*quotation.Quotation, error) {
	for _, q := range r.items {
		if q.ID == docID {
			return q, nil
		}
	}
	return nil, apperror.NewNotFound("quotation", docID)
}

func (r *stubQuotationRepo) GetByNumber(_ context.Context, number string) (*quotation.Quotation, error) {
	for _, q := range r.items {
		if q.Number == number {
			return q, nil
		}
	}
	return nil, apperror.NewNotFound("quotation", number)
}

func (r *stubQuotationRepo) Update(_ context.Context, _ *quotation.Quotation) error { return nil }

func (r *stubQuotationRepo) SetDeletionMark(_ context.Context, _ id.ID, _ bool) error { return nil }

func (r *stubQuotationRepo) List(_ context.Context, _ quotation.ListFilter) (domain.ListResult[*quotation.Quotation], error) {
	return domain.ListResult[*quotation.Quotation]{Items: r.items, TotalCount: int64(len(r.items))}, nil
}

func (r *stubQuotationRepo) NumbersWithPrefix(_ context.Context, prefix string) ([]string, error) {
	var out []string
	for _, q := range r.items {
		if len(q.Number) >= len(prefix) && q.Number[:len(prefix)] == prefix {
			out = append(out, q.Number)
		}
	}
	return out, nil
}

func (r *stubQuotationRepo) Between(_ context.Context, from, to time.Time) ([]*quotation.Quotation, error) {
	var out []*quotation.Quotation
	for _, q := range r.items {
		if !q.Date.Before(from) && q.Date.Before(to) {
			out = append(out, q)
		}
	}
	return out, nil
}

type stubConfigRepo struct {
	stored *config.Configuration
}

func (r *stubConfigRepo) Get(_ context.Context) (*config.Configuration, error) {
	if r.stored == nil {
		return nil, apperror.NewNotFound("configuration", "singleton")
	}
	return r.stored, nil
}

func (r *stubConfigRepo) Save(_ context.Context, cfg *config.Configuration) error {
	r.stored = cfg
	return nil
}

func TestMaterialOverlay_ListLocalWins(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	shared := material.NewMaterial("acero-1045", "Acero 1045")
	remoteOnly := material.NewMaterial("acero-15b30", "Acero 15B30")
	remote := &stubMaterialRepo{items: []*material.Material{shared, remoteOnly}}

	localShared := *shared
	localShared.Name = "Acero 1045 (editado)"
	localOnly := material.NewMaterial("fundicion", "Fundición gris")
	require.NoError(t, s.SaveMaterials(ctx, []*material.Material{&localShared, localOnly}))

	overlay := s.OverlayMaterials(remote)
	res, err := overlay.List(ctx, domain.ListFilter{})
	require.NoError(t, err)

	require.Len(t, res.Items, 3)
	assert.Equal(t, int64(3), res.TotalCount)
	assert.Equal(t, "Acero 1045 (editado)", res.Items[0].Name)
	assert.Equal(t, "Fundición gris", res.Items[2].Name)
}

func TestMaterialOverlay_ListSkipsMarkedLocal(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	remote := &stubMaterialRepo{}
	marked := material.NewMaterial("viejo", "Material retirado")
	marked.DeletionMark = true
	require.NoError(t, s.SaveMaterials(ctx, []*material.Material{marked}))

	overlay := s.OverlayMaterials(remote)

	res, err := overlay.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)

	res, err = overlay.List(ctx, domain.ListFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
}

func TestMaterialOverlay_GetByIDPrefersLocal(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	remoteCopy := material.NewMaterial("acero-1045", "Acero 1045")
	remote := &stubMaterialRepo{items: []*material.Material{remoteCopy}}

	localCopy := *remoteCopy
	localCopy.Name = "Acero 1045 (local)"
	require.NoError(t, s.SaveMaterials(ctx, []*material.Material{&localCopy}))

	got, err := s.OverlayMaterials(remote).GetByID(ctx, remoteCopy.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acero 1045 (local)", got.Name)
}

func TestMaterialOverlay_FindByNameFallsBackToRemote(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	remoteOnly := material.NewMaterial("acero-15b30", "Acero 15B30")
	remote := &stubMaterialRepo{items: []*material.Material{remoteOnly}}

	got, err := s.OverlayMaterials(remote).FindByName(ctx, "Acero 15B30")
	require.NoError(t, err)
	assert.Equal(t, remoteOnly.ID, got.ID)
}

func TestQuotationOverlay_NumbersUnion(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	remoteQ := quotation.NewQuotation("Campo Verde")
	remoteQ.Number = "InventuAgro260310-01"
	remote := &stubQuotationRepo{items: []*quotation.Quotation{remoteQ}}

	localQ := quotation.NewQuotation("La Rural")
	localQ.Number = "InventuAgro260310-02"
	require.NoError(t, s.SaveQuotations(ctx, []*quotation.Quotation{localQ}))

	numbers, err := s.OverlayQuotations(remote).NumbersWithPrefix(ctx, "InventuAgro260310")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"InventuAgro260310-01", "InventuAgro260310-02"}, numbers)
}

func TestQuotationOverlay_BetweenRefiltersAfterMerge(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	remoteQ := quotation.NewQuotation("Campo Verde")
	remoteQ.Date = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	remote := &stubQuotationRepo{items: []*quotation.Quotation{remoteQ}}

	// Local override moved the shared quotation out of the window.
	localShared := *remoteQ
	localShared.Date = time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	localInWindow := quotation.NewQuotation("La Rural")
	localInWindow.Date = time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveQuotations(ctx, []*quotation.Quotation{&localShared, localInWindow}))

	got, err := s.OverlayQuotations(remote).Between(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, localInWindow.ID, got[0].ID)
}

func TestConfigOverlay_MergesSubCollections(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	stored := config.Defaults()
	remote := &stubConfigRepo{stored: stored}

	local := *stored
	local.Brands = append([]config.Brand{}, stored.Brands...)
	local.Brands = append(local.Brands, config.Brand{ID: id.New(), Name: "Apache", CreatedAt: time.Now().UTC()})
	require.NoError(t, s.SaveConfiguration(ctx, &local))

	got, err := s.OverlayConfiguration(remote).Get(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Brands, len(stored.Brands)+1)
}

func TestConfigOverlay_NotFoundWhenBothEmpty(t *testing.T) {
	s := newStore(t)

	_, err := s.OverlayConfiguration(&stubConfigRepo{}).Get(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
