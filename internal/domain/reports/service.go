package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/documents/quotation"
)

// monthlyWindow is the number of trailing months covered by the rollup.
const monthlyWindow = 6

// Service provides report generation operations.
type Service struct {
	repo Repository

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// GetSummary generates the quotation summary report.
func (s *Service) GetSummary(ctx context.Context, filter SummaryFilter) (*SummaryReport, error) {
	// Set default pagination
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	quotations, total, err := s.repo.ListQuotations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list quotations for summary: %w", err)
	}

	report := &SummaryReport{
		Items:      make([]QuotationSummary, 0, len(quotations)),
		TotalItems: total,
	}
	for _, q := range quotations {
		report.Items = append(report.Items, Summarize(q))
	}
	return report, nil
}

// Summarize collapses one quotation into a dashboard row.
func Summarize(q *quotation.Quotation) QuotationSummary {
	names := make([]string, 0, len(q.Items))
	totalItems := 0
	totalCost := types.Zero()
	for _, item := range q.Items {
		names = append(names, item.Description)
		totalItems += item.Quantity
		// Items without a recorded base cost contribute zero cost.
		totalCost = totalCost.Add(item.BaseCost.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	summary := strings.Join(names, ", ")
	if summary == "" {
		summary = EmptyItemsSummary
	}

	return QuotationSummary{
		ID:           q.ID,
		Number:       q.Number,
		Date:         q.Date,
		ClientName:   q.ClientName,
		ItemsSummary: truncateSummary(summary),
		TotalItems:   totalItems,
		TotalCost:    totalCost,
		TotalPrice:   q.TotalPrice,
		Profit:       q.TotalPrice.Sub(totalCost),
		Status:       q.Status.Normalize(),
	}
}

func truncateSummary(s string) string {
	// Truncate on runes so accented descriptions survive intact.
	runes := []rune(s)
	if len(runes) <= maxItemsSummaryLen {
		return s
	}
	return string(runes[:maxItemsSummaryLen-3]) + "..."
}

// GetMonthly generates the trailing six month rollup.
func (s *Service) GetMonthly(ctx context.Context) (*MonthlyReport, error) {
	now := s.now()
	// Start of the oldest month in the window.
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(monthlyWindow - 1), 0)
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, 0)

	quotations, err := s.repo.QuotationsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list quotations for monthly rollup: %w", err)
	}

	buckets := make([]MonthlyBucket, monthlyWindow)
	index := make(map[string]int, monthlyWindow)
	for i := range buckets {
		month := from.AddDate(0, i, 0).Format("2006-01")
		buckets[i] = MonthlyBucket{
			Month:        month,
			QuotedAmount: types.Zero(),
			WonAmount:    types.Zero(),
			LostAmount:   types.Zero(),
			WonProfit:    types.Zero(),
		}
		index[month] = i
	}

	for _, q := range quotations {
		i, ok := index[q.Date.Format("2006-01")]
		if !ok {
			continue
		}
		b := &buckets[i]

		b.QuotedAmount = b.QuotedAmount.Add(q.TotalPrice)
		b.QuotedCount++

		switch q.Status.Normalize() {
		case quotation.StatusWon:
			b.WonAmount = b.WonAmount.Add(q.TotalPrice)
			b.WonCount++
			summary := Summarize(q)
			b.WonProfit = b.WonProfit.Add(summary.Profit)
		case quotation.StatusLost:
			b.LostAmount = b.LostAmount.Add(q.TotalPrice)
			b.LostCount++
		}
	}

	for i := range buckets {
		b := &buckets[i]
		if decided := b.WonCount + b.LostCount; decided > 0 {
			b.ConversionRate = float64(b.WonCount) / float64(decided)
		}
	}

	return &MonthlyReport{From: from, To: to, Buckets: buckets}, nil
}
