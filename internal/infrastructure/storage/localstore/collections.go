package localstore

import (
	"context"

	"inventuagro/internal/core/merge"
	"inventuagro/internal/domain/catalogs/client"
	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/domain/config"
	"inventuagro/internal/domain/documents/quotation"
	"inventuagro/internal/domain/migration"
)

// Collection names. One snapshot file each.
const (
	colMaterials  = "materials"
	colOperations = "operations"
	colClients    = "clients"
	colProducts   = "products"
	colQuotations = "quotations"
	colConfig     = "configuration"
)

// Compile-time check: the store is the migration source.
var _ migration.Source = (*Store)(nil)

// Done reports whether the one-time migration has run.
func (s *Store) Done(context.Context) (bool, error) {
	return s.Flag(migration.DoneFlag)
}

// MarkDone records the migration as completed.
func (s *Store) MarkDone(context.Context) error {
	return s.SetFlag(migration.DoneFlag)
}

func (s *Store) Materials(context.Context) ([]*material.Material, error) {
	var items []*material.Material
	err := s.Read(colMaterials, &items)
	return items, err
}

func (s *Store) SaveMaterials(_ context.Context, items []*material.Material) error {
	return s.Write(colMaterials, items)
}

func (s *Store) Operations(context.Context) ([]*operation.Operation, error) {
	var items []*operation.Operation
	err := s.Read(colOperations, &items)
	return items, err
}

func (s *Store) SaveOperations(_ context.Context, items []*operation.Operation) error {
	return s.Write(colOperations, items)
}

func (s *Store) Clients(context.Context) ([]*client.Client, error) {
	var items []*client.Client
	err := s.Read(colClients, &items)
	return items, err
}

func (s *Store) SaveClients(_ context.Context, items []*client.Client) error {
	return s.Write(colClients, items)
}

func (s *Store) Products(context.Context) ([]*product.Product, error) {
	var items []*product.Product
	err := s.Read(colProducts, &items)
	return items, err
}

func (s *Store) SaveProducts(_ context.Context, items []*product.Product) error {
	return s.Write(colProducts, items)
}

func (s *Store) Quotations(context.Context) ([]*quotation.Quotation, error) {
	var items []*quotation.Quotation
	err := s.Read(colQuotations, &items)
	return items, err
}

func (s *Store) SaveQuotations(_ context.Context, items []*quotation.Quotation) error {
	return s.Write(colQuotations, items)
}

// Configuration returns the stored aggregate, or nil when none exists.
func (s *Store) Configuration(context.Context) (*config.Configuration, error) {
	var cfg *config.Configuration
	if err := s.Read(colConfig, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Store) SaveConfiguration(_ context.Context, cfg *config.Configuration) error {
	return s.Write(colConfig, cfg)
}

// MergedMaterials reconciles remote rows with the local snapshot. Local
// edits win on id collision; rows unique to either side are kept.
func (s *Store) MergedMaterials(ctx context.Context, remote []*material.Material) ([]*material.Material, error) {
	local, err := s.Materials(ctx)
	if err != nil {
		return nil, err
	}
	return merge.LocalWinsFunc(remote, local, func(m *material.Material) string {
		return m.ID.String()
	}), nil
}

// MergedOperations reconciles remote rows with the local snapshot.
func (s *Store) MergedOperations(ctx context.Context, remote []*operation.Operation) ([]*operation.Operation, error) {
	local, err := s.Operations(ctx)
	if err != nil {
		return nil, err
	}
	return merge.LocalWinsFunc(remote, local, func(o *operation.Operation) string {
		return o.ID.String()
	}), nil
}

// MergedClients reconciles remote rows with the local snapshot.
func (s *Store) MergedClients(ctx context.Context, remote []*client.Client) ([]*client.Client, error) {
	local, err := s.Clients(ctx)
	if err != nil {
		return nil, err
	}
	return merge.LocalWinsFunc(remote, local, func(c *client.Client) string {
		return c.ID.String()
	}), nil
}

// MergedProducts reconciles remote rows with the local snapshot.
func (s *Store) MergedProducts(ctx context.Context, remote []*product.Product) ([]*product.Product, error) {
	local, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return merge.LocalWinsFunc(remote, local, func(p *product.Product) string {
		return p.ID.String()
	}), nil
}

// MergedQuotations reconciles remote rows with the local snapshot.
func (s *Store) MergedQuotations(ctx context.Context, remote []*quotation.Quotation) ([]*quotation.Quotation, error) {
	local, err := s.Quotations(ctx)
	if err != nil {
		return nil, err
	}
	return merge.LocalWinsFunc(remote, local, func(q *quotation.Quotation) string {
		return q.ID.String()
	}), nil
}

// MergedConfiguration reconciles the configuration aggregate per
// sub-collection, local wins by element id.
func (s *Store) MergedConfiguration(ctx context.Context, remote *config.Configuration) (*config.Configuration, error) {
	local, err := s.Configuration(ctx)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return remote, nil
	}
	if remote == nil {
		return local, nil
	}

	merged := *remote
	merged.Brands = merge.LocalWins(remote.Brands, local.Brands)
	merged.MachineTypes = merge.LocalWins(remote.MachineTypes, local.MachineTypes)
	merged.Thicknesses = merge.LocalWins(remote.Thicknesses, local.Thicknesses)
	if local.LastUpdated.After(remote.LastUpdated) {
		merged.LastUpdated = local.LastUpdated
	}
	return &merged, nil
}
