package reports

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/documents/quotation"
)

type stubRepo struct {
	quotations []*quotation.Quotation
}

func (r *stubRepo) ListQuotations(_ context.Context, _ SummaryFilter) ([]*quotation.Quotation, int, error) {
	return r.quotations, len(r.quotations), nil
}

func (r *stubRepo) QuotationsBetween(_ context.Context, from, to time.Time) ([]*quotation.Quotation, error) {
	var out []*quotation.Quotation
	for _, q := range r.quotations {
		if !q.Date.Before(from) && q.Date.Before(to) {
			out = append(out, q)
		}
	}
	return out, nil
}

func buildQuotation(t *testing.T, client string, date time.Time, status quotation.Status, lines ...quotation.Item) *quotation.Quotation {
	t.Helper()
	q := quotation.NewQuotation(client)
	q.Date = date
	q.Status = status
	for _, line := range lines {
		q.AddItem(line)
	}
	return q
}

func customItem(t *testing.T, desc string, baseCost string, qty int) quotation.Item {
	t.Helper()
	item, err := quotation.NewCustomItem(desc, types.MustMoney(baseCost), qty, types.MustMoney("25"))
	require.NoError(t, err)
	return item
}

func TestSummarize(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	q := buildQuotation(t, "Campo Verde", date, "",
		customItem(t, "Cuchilla", "100", 2),
		customItem(t, "Flete", "40", 1),
	)

	s := Summarize(q)

	assert.Equal(t, "Cuchilla, Flete", s.ItemsSummary)
	assert.Equal(t, 3, s.TotalItems)
	// cost 2*100 + 40 = 240, price 2*125 + 50 = 300
	assert.True(t, types.MustMoney("240").Equal(s.TotalCost), "got %s", s.TotalCost)
	assert.True(t, types.MustMoney("300").Equal(s.TotalPrice), "got %s", s.TotalPrice)
	assert.True(t, types.MustMoney("60").Equal(s.Profit), "got %s", s.Profit)
	assert.Equal(t, quotation.StatusPending, s.Status)
}

func TestSummarize_TruncatesLongItemList(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	q := buildQuotation(t, "Campo Verde", date, quotation.StatusPending,
		customItem(t, "Cuchilla rotativa para desmalezadora reforzada", "10", 1),
		customItem(t, "Disco de siembra", "10", 1),
	)

	s := Summarize(q)

	assert.Len(t, s.ItemsSummary, 50)
	assert.Equal(t, "...", s.ItemsSummary[47:])
	assert.Equal(t, "Cuchilla rotativa para desmalezadora reforzada,", s.ItemsSummary[:47])
}

func TestSummarize_TruncatesOnRunes(t *testing.T) {
	// 46 ASCII chars put the ñ on the truncation boundary.
	desc := strings.Repeat("a", 46) + "ñuñoa y repuestos varios"
	q := buildQuotation(t, "Campo Verde", time.Now(), quotation.StatusPending,
		customItem(t, desc, "10", 1))

	s := Summarize(q)

	assert.True(t, utf8.ValidString(s.ItemsSummary))
	assert.Len(t, []rune(s.ItemsSummary), 50)
	assert.Equal(t, strings.Repeat("a", 46)+"ñ...", s.ItemsSummary)
}

func TestSummarize_NoItems(t *testing.T) {
	q := buildQuotation(t, "Campo Verde", time.Now(), quotation.StatusPending)

	s := Summarize(q)

	assert.Equal(t, EmptyItemsSummary, s.ItemsSummary)
	assert.Equal(t, 0, s.TotalItems)
	assert.True(t, s.TotalCost.IsZero())
}

func TestSummarize_ShortListNotTruncated(t *testing.T) {
	q := buildQuotation(t, "C", time.Now(), quotation.StatusWon,
		customItem(t, "Reja", "10", 1))

	assert.Equal(t, "Reja", Summarize(q).ItemsSummary)
}

func TestGetMonthly_Window(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	repo := &stubRepo{quotations: []*quotation.Quotation{
		buildQuotation(t, "A", time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), quotation.StatusWon,
			customItem(t, "Cuchilla", "100", 1)),
		buildQuotation(t, "B", time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC), quotation.StatusLost,
			customItem(t, "Disco", "200", 1)),
		buildQuotation(t, "C", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), quotation.StatusWon,
			customItem(t, "Reja", "80", 1)),
		// Outside the window, must be ignored.
		buildQuotation(t, "D", time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC), quotation.StatusWon,
			customItem(t, "Flete", "40", 1)),
	}}

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	report, err := svc.GetMonthly(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Buckets, 6)

	assert.Equal(t, "2026-01", report.Buckets[0].Month)
	assert.Equal(t, "2026-06", report.Buckets[5].Month)

	jan := report.Buckets[0]
	assert.Equal(t, 1, jan.QuotedCount)
	assert.Equal(t, 1, jan.WonCount)
	assert.True(t, types.MustMoney("100").Equal(jan.WonAmount), "got %s", jan.WonAmount)
	// profit 100 - 80
	assert.True(t, types.MustMoney("20").Equal(jan.WonProfit), "got %s", jan.WonProfit)
	assert.Equal(t, 1.0, jan.ConversionRate)

	jun := report.Buckets[5]
	assert.Equal(t, 2, jun.QuotedCount)
	assert.Equal(t, 1, jun.WonCount)
	assert.Equal(t, 1, jun.LostCount)
	assert.Equal(t, 0.5, jun.ConversionRate)

	// Empty months stay zeroed.
	assert.Equal(t, 0, report.Buckets[1].QuotedCount)
	assert.Equal(t, 0.0, report.Buckets[1].ConversionRate)
}

func TestGetMonthly_PendingExcludedFromConversion(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	repo := &stubRepo{quotations: []*quotation.Quotation{
		buildQuotation(t, "A", time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), quotation.StatusPending,
			customItem(t, "Cuchilla", "100", 1)),
		buildQuotation(t, "B", time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), "",
			customItem(t, "Disco", "50", 1)),
	}}

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	report, err := svc.GetMonthly(context.Background())
	require.NoError(t, err)

	jun := report.Buckets[5]
	assert.Equal(t, 2, jun.QuotedCount)
	assert.Equal(t, 0, jun.WonCount)
	assert.Equal(t, 0, jun.LostCount)
	assert.Equal(t, 0.0, jun.ConversionRate)
	assert.True(t, jun.WonProfit.IsZero())
}
