package document_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/domain"
	"inventuagro/internal/domain/documents/quotation"
	"inventuagro/internal/infrastructure/storage/postgres"
)

const quotationTable = "doc_quotations"

// QuotationRepo implements quotation.Repository.
type QuotationRepo struct {
	*BaseDocumentRepo[*quotation.Quotation]
}

// NewQuotationRepo creates a new quotation repository.
func NewQuotationRepo(txManager *postgres.TxManager) *QuotationRepo {
	return &QuotationRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*quotation.Quotation](
			txManager,
			quotationTable,
			postgres.ExtractDBColumns[quotation.Quotation](),
			func() *quotation.Quotation { return &quotation.Quotation{} },
		),
	}
}

// Create inserts a quotation. A unique violation on the number column is
// surfaced as a duplicate-number error so the service can regenerate.
func (r *QuotationRepo) Create(ctx context.Context, doc *quotation.Quotation) error {
	err := r.BaseDocumentRepo.Create(ctx, doc)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperror.NewDuplicateNumber(doc.Number).WithCause(err)
	}
	return err
}

// List retrieves quotations with document-specific filters.
func (r *QuotationRepo) List(ctx context.Context, filter quotation.ListFilter) (domain.ListResult[*quotation.Quotation], error) {
	q := r.baseSelect()

	if filter.ClientName != nil {
		q = q.Where(squirrel.ILike{"client_name": "%" + *filter.ClientName + "%"})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.Lt{"date": *filter.DateTo})
	}

	return r.ListWith(ctx, q, filter.ListFilter)
}

// NumbersWithPrefix returns every quotation number sharing prefix.
// Implements quotenum.NumberSource.
func (r *QuotationRepo) NumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	q := r.Builder().
		Select("number").
		From(quotationTable).
		Where(squirrel.Like{"number": prefix + "%"})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("numbers with prefix: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

// Between returns all non-deleted quotations dated inside [from, to).
func (r *QuotationRepo) Between(ctx context.Context, from, to time.Time) ([]*quotation.Quotation, error) {
	dateFrom, dateTo := from, to
	result, err := r.List(ctx, quotation.ListFilter{
		ListFilter: domain.ListFilter{OrderBy: "date"},
		DateFrom:   &dateFrom,
		DateTo:     &dateTo,
	})
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}
