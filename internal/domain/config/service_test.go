package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/apperror"
)

type memRepo struct {
	stored *Configuration
	saves  int
}

func (r *memRepo) Get(_ context.Context) (*Configuration, error) {
	if r.stored == nil {
		return nil, apperror.NewNotFound("configuration", "singleton")
	}
	return r.stored, nil
}

func (r *memRepo) Save(_ context.Context, cfg *Configuration) error {
	r.stored = cfg
	r.saves++
	return nil
}

func TestGet_SeedsDefaultsOnFirstAccess(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 1, repo.saves)

	assert.Len(t, cfg.Brands, 7)
	assert.Equal(t, "Metalbert", cfg.Brands[0].Name)
	assert.Len(t, cfg.MachineTypes, 7)
	assert.Equal(t, []float64{6.35, 7.94, 9.53, 12.7}, thicknessValues(cfg))

	// Second access returns the stored aggregate without reseeding.
	again, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, cfg, again)
}

func TestUpdate_RejectsInvalidAggregate(t *testing.T) {
	repo := &memRepo{stored: Defaults()}
	svc := NewService(repo)

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)

	cfg.Brands[0].Name = ""
	err = svc.Update(context.Background(), cfg)
	assert.Error(t, err)

	bad := Defaults()
	bad.Thicknesses[0].ValueMM = 0
	assert.Error(t, svc.Update(context.Background(), bad))
}

func TestAddBrand(t *testing.T) {
	repo := &memRepo{stored: Defaults()}
	svc := NewService(repo)

	cfg, err := svc.AddBrand(context.Background(), "Apache")
	require.NoError(t, err)
	assert.Equal(t, "Apache", cfg.Brands[len(cfg.Brands)-1].Name)
	assert.False(t, cfg.LastUpdated.IsZero())
}

func thicknessValues(cfg *Configuration) []float64 {
	out := make([]float64, 0, len(cfg.Thicknesses))
	for _, th := range cfg.Thicknesses {
		out = append(out, th.ValueMM)
	}
	return out
}
