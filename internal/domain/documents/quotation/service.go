// Package quotation provides the Quotation document service.
package quotation

import (
	"context"
	"fmt"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/id"
	"inventuagro/internal/core/tx"
	"inventuagro/internal/domain"
	"inventuagro/pkg/logger"
	"inventuagro/pkg/quotenum"
)

// createRetries bounds the retry loop when two concurrent creations
// compute the same number from stale snapshots.
const createRetries = 3

// Service provides business operations for quotation documents.
type Service struct {
	repo      Repository
	sequencer *quotenum.Service
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Quotation]
}

// NewService creates a new quotation service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		sequencer: quotenum.New(repo),
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Quotation](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Quotation] {
	return s.hooks
}

// Create creates a new quotation, generating its number from the snapshot
// of existing numbers for its date. A duplicate-number conflict from a
// concurrent creation triggers regeneration against a fresh snapshot.
func (s *Service) Create(ctx context.Context, doc *Quotation) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	doc.EnsureBaseCosts()
	doc.RecalculateTotal()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	generated := doc.Number == ""
	var lastErr error
	for attempt := 0; attempt < createRetries; attempt++ {
		if generated {
			number, err := s.sequencer.Generate(ctx, doc.Date)
			if err != nil {
				return fmt.Errorf("generate number: %w", err)
			}
			doc.Number = number
		}

		lastErr = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			if err := s.repo.Create(ctx, doc); err != nil {
				return fmt.Errorf("create quotation: %w", err)
			}
			return nil
		})
		if lastErr == nil {
			break
		}
		if !generated || !apperror.IsDuplicateNumber(lastErr) {
			return lastErr
		}
		logger.Warn(ctx, "quotation number collision, regenerating",
			"number", doc.Number)
		doc.Number = ""
	}
	if lastErr != nil {
		return lastErr
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "quotation created",
		"id", doc.ID,
		"number", doc.Number)

	return nil
}

// GetByID retrieves a quotation, backfilling missing item base costs.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Quotation, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	doc.EnsureBaseCosts()
	return doc, nil
}

// GetByNumber retrieves a quotation by its number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Quotation, error) {
	doc, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	doc.EnsureBaseCosts()
	return doc, nil
}

// Update re-saves a quotation with recalculated totals.
func (s *Service) Update(ctx context.Context, doc *Quotation) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	doc.EnsureBaseCosts()
	doc.RecalculateTotal()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update quotation: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterUpdate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}

	return nil
}

// UpdateStatus transitions a quotation's status with an optional reason.
// The UI only moves pending to won or lost, but re-opening is not
// forbidden by the data model.
func (s *Service) UpdateStatus(ctx context.Context, docID id.ID, status Status, reason string) (*Quotation, error) {
	if !status.IsValid() || status == "" {
		return nil, apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(status))
	}

	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	doc.Status = status
	doc.Reason = reason
	doc.Touch()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "quotation status updated",
		"id", doc.ID,
		"status", string(status))

	return doc, nil
}

// Delete performs a soft delete.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.hooks.RunBeforeDelete(ctx, doc); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.SetDeletionMark(ctx, docID, true)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterDelete(ctx, doc); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "error", err)
	}

	return nil
}

// List retrieves quotations with filtering, backfilling base costs.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Quotation], error) {
	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return result, err
	}

	for _, doc := range result.Items {
		doc.EnsureBaseCosts()
	}
	return result, nil
}
