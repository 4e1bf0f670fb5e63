package operation

import (
	"context"

	"inventuagro/internal/core/id"
	"inventuagro/internal/core/tx"
	"inventuagro/internal/domain"
	"inventuagro/internal/domain/costing"
)

// Service provides business logic for the Operation catalog.
type Service struct {
	*domain.CatalogService[*Operation]
	repo Repository
}

// NewService creates a new Operation service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Operation]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "operation",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, o *Operation) error {
	if o.Code == "" {
		o.Code = o.ID.String()[:8]
	}
	return nil
}

// RefMap loads the full operation reference map for the costing engine.
func (s *Service) RefMap(ctx context.Context) (map[id.ID]costing.OperationRef, error) {
	return s.repo.RefMap(ctx)
}
