package reports

import (
	"context"
	"time"

	"inventuagro/internal/domain/documents/quotation"
)

// Repository defines report data access interface.
type Repository interface {
	// ListQuotations returns quotations matching the summary filter,
	// newest first.
	ListQuotations(ctx context.Context, filter SummaryFilter) ([]*quotation.Quotation, int, error)

	// QuotationsBetween returns all quotations dated inside [from, to).
	QuotationsBetween(ctx context.Context, from, to time.Time) ([]*quotation.Quotation, error)
}
