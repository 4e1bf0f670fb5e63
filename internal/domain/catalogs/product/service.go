package product

import (
	"context"
	"fmt"

	"inventuagro/internal/core/id"
	"inventuagro/internal/core/tx"
	"inventuagro/internal/domain"
	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/domain/costing"
	"inventuagro/pkg/logger"
)

// Service provides business logic for the Product catalog.
// Weight and unit cost are recomputed on every create and update unless
// the corresponding manual-override flag is set.
type Service struct {
	*domain.CatalogService[*Product]
	repo       Repository
	materials  material.Repository
	operations operation.Repository
}

// NewService creates a new Product service.
func NewService(
	repo Repository,
	materials material.Repository,
	operations operation.Repository,
	txManager tx.Manager,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		materials:      materials,
		operations:     operations,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForSave)
	base.Hooks().OnBeforeUpdate(svc.prepareForSave)

	return svc
}

// prepareForSave re-derives weight and unit cost before persisting.
func (s *Service) prepareForSave(ctx context.Context, p *Product) error {
	if p.Code == "" {
		p.Code = p.ID.String()[:8]
	}

	if _, err := s.recalculate(ctx, p); err != nil {
		return err
	}
	return nil
}

// recalculate loads reference data and runs the derivation. A material
// name lookup miss yields weight 0 and material cost 0, not an error.
func (s *Service) recalculate(ctx context.Context, p *Product) (costing.Result, error) {
	var matRef *costing.MaterialRef
	if p.MaterialName != "" {
		mat, err := s.materials.FindByName(ctx, p.MaterialName)
		if err == nil && mat != nil {
			ref := mat.Ref()
			matRef = &ref
		} else if err != nil {
			logger.Debug(ctx, "material lookup miss", "material", p.MaterialName)
		}
	}

	ops, err := s.operations.RefMap(ctx)
	if err != nil {
		return costing.Result{}, fmt.Errorf("load operations: %w", err)
	}

	return Recalculate(p, matRef, ops), nil
}

// Derive runs a full cost derivation without persisting, for live preview.
func (s *Service) Derive(ctx context.Context, p *Product) (costing.Result, error) {
	return s.recalculate(ctx, p)
}

// SelectOperation adds an operation selection with its default quantity
// and re-derives the product cost.
func (s *Service) SelectOperation(ctx context.Context, p *Product, opID id.ID) error {
	ops, err := s.operations.RefMap(ctx)
	if err != nil {
		return fmt.Errorf("load operations: %w", err)
	}

	if ref, ok := ops[opID]; ok {
		SelectOperation(p, ref)
	}
	// Unknown ids stay unselected; nothing to price.

	return nil
}

// RecordSale appends a sale record and persists the product.
func (s *Service) RecordSale(ctx context.Context, productID id.ID, rec SaleRecord) error {
	p, err := s.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	p.AddSale(rec)
	return s.Update(ctx, p)
}

// FindByReference retrieves a product by reference code.
func (s *Service) FindByReference(ctx context.Context, reference string) (*Product, error) {
	return s.repo.FindByReference(ctx, reference)
}
