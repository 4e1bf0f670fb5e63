package config

import (
	"context"
	"time"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/id"
	"inventuagro/pkg/logger"
)

// Repository persists the configuration aggregate as a single record.
type Repository interface {
	// Get returns the stored configuration or a NotFound error.
	Get(ctx context.Context) (*Configuration, error)
	Save(ctx context.Context, cfg *Configuration) error
}

// Service manages the configuration aggregate.
type Service struct {
	repo Repository
}

// NewService creates a configuration service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get loads the configuration, seeding defaults on first access.
func (s *Service) Get(ctx context.Context) (*Configuration, error) {
	cfg, err := s.repo.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	cfg = Defaults()
	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	logger.Info(ctx, "seeded default configuration",
		"brands", len(cfg.Brands),
		"machineTypes", len(cfg.MachineTypes),
		"thicknesses", len(cfg.Thicknesses))
	return cfg, nil
}

// Update validates and stores the full aggregate.
func (s *Service) Update(ctx context.Context, cfg *Configuration) error {
	if err := cfg.Validate(ctx); err != nil {
		return err
	}
	cfg.Touch()
	return s.repo.Save(ctx, cfg)
}

// AddBrand appends a brand and saves.
func (s *Service) AddBrand(ctx context.Context, name string) (*Configuration, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Brands = append(cfg.Brands, Brand{ID: id.New(), Name: name, CreatedAt: time.Now().UTC()})
	if err := s.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AddMachineType appends a machine type and saves.
func (s *Service) AddMachineType(ctx context.Context, name string) (*Configuration, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.MachineTypes = append(cfg.MachineTypes, MachineType{ID: id.New(), Name: name, CreatedAt: time.Now().UTC()})
	if err := s.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AddThickness appends a plate thickness and saves.
func (s *Service) AddThickness(ctx context.Context, valueMM float64) (*Configuration, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Thicknesses = append(cfg.Thicknesses, Thickness{ID: id.New(), ValueMM: valueMM, CreatedAt: time.Now().UTC()})
	if err := s.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
