// Package migration implements the one-time push of locally cached data
// into the remote store. Deployments start on the local snapshot store
// and later gain a database; this moves everything across exactly once.
package migration

import (
	"context"
	"fmt"

	"inventuagro/internal/domain/catalogs/client"
	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/domain/config"
	"inventuagro/internal/domain/documents/quotation"
	"inventuagro/pkg/logger"
)

// DoneFlag is the local store key recording a completed migration.
const DoneFlag = "inventu_migration_done"

// Source is the local store side of the migration.
type Source interface {
	Done(ctx context.Context) (bool, error)
	MarkDone(ctx context.Context) error

	Materials(ctx context.Context) ([]*material.Material, error)
	Operations(ctx context.Context) ([]*operation.Operation, error)
	Clients(ctx context.Context) ([]*client.Client, error)
	Products(ctx context.Context) ([]*product.Product, error)
	Quotations(ctx context.Context) ([]*quotation.Quotation, error)
	Configuration(ctx context.Context) (*config.Configuration, error)
}

// Target is the remote store side. Upserts must be idempotent by id so a
// retried run after a partial failure never duplicates records.
type Target interface {
	UpsertMaterial(ctx context.Context, m *material.Material) error
	UpsertOperation(ctx context.Context, o *operation.Operation) error
	UpsertClient(ctx context.Context, c *client.Client) error
	UpsertProduct(ctx context.Context, p *product.Product) error
	UpsertQuotation(ctx context.Context, q *quotation.Quotation) error
	SaveConfiguration(ctx context.Context, cfg *config.Configuration) error
}

// Result reports what one run moved.
type Result struct {
	Skipped    bool `json:"skipped"`
	Materials  int  `json:"materials"`
	Operations int  `json:"operations"`
	Clients    int  `json:"clients"`
	Products   int  `json:"products"`
	Quotations int  `json:"quotations"`
}

// Service runs the migration.
type Service struct {
	source Source
	target Target
}

// NewService creates a migration service.
func NewService(source Source, target Target) *Service {
	return &Service{source: source, target: target}
}

// Run pushes every local collection to the remote store, then marks the
// migration done. A second call is a no-op.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	done, err := s.source.Done(ctx)
	if err != nil {
		return nil, fmt.Errorf("check migration flag: %w", err)
	}
	if done {
		logger.Info(ctx, "migration already completed, skipping")
		return &Result{Skipped: true}, nil
	}

	result := &Result{}

	materials, err := s.source.Materials(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local materials: %w", err)
	}
	for _, m := range materials {
		if err := s.target.UpsertMaterial(ctx, m); err != nil {
			return nil, fmt.Errorf("migrate material %q: %w", m.Name, err)
		}
		result.Materials++
	}

	operations, err := s.source.Operations(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local operations: %w", err)
	}
	for _, o := range operations {
		if err := s.target.UpsertOperation(ctx, o); err != nil {
			return nil, fmt.Errorf("migrate operation %q: %w", o.Name, err)
		}
		result.Operations++
	}

	clients, err := s.source.Clients(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local clients: %w", err)
	}
	for _, c := range clients {
		if err := s.target.UpsertClient(ctx, c); err != nil {
			return nil, fmt.Errorf("migrate client %q: %w", c.Name, err)
		}
		result.Clients++
	}

	products, err := s.source.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local products: %w", err)
	}
	for _, p := range products {
		if err := s.target.UpsertProduct(ctx, p); err != nil {
			return nil, fmt.Errorf("migrate product %q: %w", p.Name, err)
		}
		result.Products++
	}

	quotations, err := s.source.Quotations(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local quotations: %w", err)
	}
	for _, q := range quotations {
		if err := s.target.UpsertQuotation(ctx, q); err != nil {
			return nil, fmt.Errorf("migrate quotation %s: %w", q.Number, err)
		}
		result.Quotations++
	}

	cfg, err := s.source.Configuration(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local configuration: %w", err)
	}
	if cfg != nil {
		if err := s.target.SaveConfiguration(ctx, cfg); err != nil {
			return nil, fmt.Errorf("migrate configuration: %w", err)
		}
	}

	if err := s.source.MarkDone(ctx); err != nil {
		return nil, fmt.Errorf("mark migration done: %w", err)
	}

	logger.Info(ctx, "migration completed",
		"materials", result.Materials,
		"operations", result.Operations,
		"clients", result.Clients,
		"products", result.Products,
		"quotations", result.Quotations)
	return result, nil
}
