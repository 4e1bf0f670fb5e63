package material

import (
	"context"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/id"
	"inventuagro/internal/core/tx"
	"inventuagro/internal/domain"
)

// Service provides business logic for the Material catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Material]
	repo Repository
}

// NewService creates a new Material service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Material]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "material",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForSave)
	base.Hooks().OnBeforeUpdate(svc.prepareForSave)

	return svc
}

// prepareForSave enforces name uniqueness. Names are the lookup key from
// products, so duplicates would make cost derivation ambiguous.
func (s *Service) prepareForSave(ctx context.Context, m *Material) error {
	if m.Code == "" {
		m.Code = shortCode(m.ID)
	}

	if exists, _ := s.checkNameExists(ctx, m.Name, m.ID); exists {
		return apperror.NewDuplicate("material", "name", m.Name)
	}

	return nil
}

// FindByName retrieves a material by name.
func (s *Service) FindByName(ctx context.Context, name string) (*Material, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *Service) checkNameExists(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}

// shortCode derives a default catalog code from the entity id.
func shortCode(entityID id.ID) string {
	return entityID.String()[:8]
}
