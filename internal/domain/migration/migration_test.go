package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/catalogs/client"
	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/domain/config"
	"inventuagro/internal/domain/documents/quotation"
)

type fakeSource struct {
	done      bool
	materials []*material.Material
	products  []*product.Product
}

func (s *fakeSource) Done(context.Context) (bool, error) { return s.done, nil }
func (s *fakeSource) MarkDone(context.Context) error     { s.done = true; return nil }

func (s *fakeSource) Materials(context.Context) ([]*material.Material, error) {
	return s.materials, nil
}
func (s *fakeSource) Operations(context.Context) ([]*operation.Operation, error) { return nil, nil }
func (s *fakeSource) Clients(context.Context) ([]*client.Client, error)          { return nil, nil }
func (s *fakeSource) Products(context.Context) ([]*product.Product, error) {
	return s.products, nil
}
func (s *fakeSource) Quotations(context.Context) ([]*quotation.Quotation, error) { return nil, nil }
func (s *fakeSource) Configuration(context.Context) (*config.Configuration, error) {
	return nil, nil
}

type fakeTarget struct {
	materials  int
	products   int
	failOnName string
}

func (t *fakeTarget) UpsertMaterial(_ context.Context, m *material.Material) error {
	if m.Name == t.failOnName {
		return errors.New("connection reset")
	}
	t.materials++
	return nil
}
func (t *fakeTarget) UpsertOperation(context.Context, *operation.Operation) error { return nil }
func (t *fakeTarget) UpsertClient(context.Context, *client.Client) error          { return nil }
func (t *fakeTarget) UpsertProduct(_ context.Context, _ *product.Product) error {
	t.products++
	return nil
}
func (t *fakeTarget) UpsertQuotation(context.Context, *quotation.Quotation) error   { return nil }
func (t *fakeTarget) SaveConfiguration(context.Context, *config.Configuration) error { return nil }

func steel(t *testing.T) *material.Material {
	t.Helper()
	m := material.NewMaterial("MAT-1", "Acero 1045")
	m.PricePerKg = types.MustMoney("1.80")
	m.Density = 7.85
	return m
}

func TestRun_MovesCollectionsAndMarksDone(t *testing.T) {
	src := &fakeSource{
		materials: []*material.Material{steel(t)},
		products:  []*product.Product{product.NewProduct("P001", "Cuchilla")},
	}
	dst := &fakeTarget{}

	result, err := NewService(src, dst).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Skipped)
	assert.Equal(t, 1, result.Materials)
	assert.Equal(t, 1, result.Products)
	assert.Equal(t, 1, dst.materials)
	assert.Equal(t, 1, dst.products)
	assert.True(t, src.done)
}

func TestRun_SkipsWhenAlreadyDone(t *testing.T) {
	src := &fakeSource{done: true, materials: []*material.Material{steel(t)}}
	dst := &fakeTarget{}

	result, err := NewService(src, dst).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Equal(t, 0, dst.materials)
}

func TestRun_PartialFailureLeavesFlagUnset(t *testing.T) {
	src := &fakeSource{materials: []*material.Material{steel(t)}}
	dst := &fakeTarget{failOnName: "Acero 1045"}

	_, err := NewService(src, dst).Run(context.Background())
	require.Error(t, err)
	assert.False(t, src.done, "a failed run must stay retryable")
}

// Compile-time interface checks for the fakes.
var (
	_ Source = (*fakeSource)(nil)
	_ Target = (*fakeTarget)(nil)
)
