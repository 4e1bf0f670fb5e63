package quotation

import (
	"context"
	"time"

	"inventuagro/internal/core/id"
	"inventuagro/internal/domain"
)

// Repository defines operations for quotation documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Quotation) error
	GetByID(ctx context.Context, docID id.ID) (*Quotation, error)
	GetByNumber(ctx context.Context, number string) (*Quotation, error)
	Update(ctx context.Context, doc *Quotation) error
	SetDeletionMark(ctx context.Context, docID id.ID, marked bool) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Quotation], error)

	// NumbersWithPrefix returns every quotation number sharing the date
	// prefix; implements quotenum.NumberSource for the sequencer.
	NumbersWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// ListFilter for filtering quotations.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	ClientName *string
	Status     *Status
	DateFrom   *time.Time
	DateTo     *time.Time
}
