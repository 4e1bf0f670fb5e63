// Package report_repo provides PostgreSQL implementations for report repositories.
package report_repo

import (
	"context"
	"time"

	"inventuagro/internal/domain"
	"inventuagro/internal/domain/documents/quotation"
	"inventuagro/internal/domain/reports"
)

// QuotationSource is the slice of the quotation store reports project
// from. Satisfied by the postgres repository and its local-store overlay.
type QuotationSource interface {
	List(ctx context.Context, filter quotation.ListFilter) (domain.ListResult[*quotation.Quotation], error)
	Between(ctx context.Context, from, to time.Time) ([]*quotation.Quotation, error)
}

// ReportRepo implements reports.Repository on top of the quotation store.
// Summaries and rollups are projections over full quotation rows; volumes
// are small enough that aggregation happens in the service.
type ReportRepo struct {
	quotations QuotationSource
}

// NewReportRepo creates a new report repository.
func NewReportRepo(quotations QuotationSource) *ReportRepo {
	return &ReportRepo{quotations: quotations}
}

// ListQuotations returns quotations matching the summary filter.
func (r *ReportRepo) ListQuotations(ctx context.Context, filter reports.SummaryFilter) ([]*quotation.Quotation, int, error) {
	result, err := r.quotations.List(ctx, quotation.ListFilter{
		ListFilter: domain.ListFilter{
			Limit:   filter.Limit,
			Offset:  filter.Offset,
			OrderBy: "-date",
		},
		ClientName: filter.ClientName,
		Status:     filter.Status,
		DateFrom:   filter.DateFrom,
		DateTo:     filter.DateTo,
	})
	if err != nil {
		return nil, 0, err
	}
	return result.Items, int(result.TotalCount), nil
}

// QuotationsBetween returns all quotations dated inside [from, to).
func (r *ReportRepo) QuotationsBetween(ctx context.Context, from, to time.Time) ([]*quotation.Quotation, error) {
	return r.quotations.Between(ctx, from, to)
}
