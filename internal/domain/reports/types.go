// Package reports provides report generation services.
package reports

import (
	"time"

	"inventuagro/internal/core/id"
	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/documents/quotation"
)

// maxItemsSummaryLen caps the item listing shown on dashboards.
const maxItemsSummaryLen = 50

// EmptyItemsSummary is shown for quotations that carry no items.
const EmptyItemsSummary = "Sin ítems"

// --- Quotation Summary ---

// SummaryFilter defines filter for the quotation summary report.
type SummaryFilter struct {
	ClientName *string
	Status     *quotation.Status

	// Period
	DateFrom *time.Time
	DateTo   *time.Time

	// Pagination
	Limit  int
	Offset int
}

// QuotationSummary is a single dashboard row for a quotation.
type QuotationSummary struct {
	ID           id.ID            `json:"id"`
	Number       string           `json:"number"`
	Date         time.Time        `json:"date"`
	ClientName   string           `json:"clientName"`
	ItemsSummary string           `json:"itemsSummary"`
	TotalItems   int              `json:"totalItems"`
	TotalCost    types.Money      `json:"totalCost"`
	TotalPrice   types.Money      `json:"totalPrice"`
	Profit       types.Money      `json:"profit"`
	Status       quotation.Status `json:"status"`
}

// SummaryReport is the full quotation summary report.
type SummaryReport struct {
	Items      []QuotationSummary `json:"items"`
	TotalItems int                `json:"totalItems"`
}

// --- Monthly Rollup ---

// MonthlyBucket aggregates quotations that fall inside one calendar month.
type MonthlyBucket struct {
	// Month in "2006-01" form.
	Month string `json:"month"`

	QuotedAmount types.Money `json:"quotedAmount"`
	QuotedCount  int         `json:"quotedCount"`
	WonAmount    types.Money `json:"wonAmount"`
	WonCount     int         `json:"wonCount"`
	LostAmount   types.Money `json:"lostAmount"`
	LostCount    int         `json:"lostCount"`

	// WonProfit sums price minus cost over won quotations only.
	WonProfit types.Money `json:"wonProfit"`

	// ConversionRate is won / (won + lost). Pending quotations do not
	// count toward it; with no decided quotations the rate is zero.
	ConversionRate float64 `json:"conversionRate"`
}

// MonthlyReport covers a trailing six month window ending at the
// current month.
type MonthlyReport struct {
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	Buckets []MonthlyBucket `json:"buckets"`
}
