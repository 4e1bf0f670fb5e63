package dto

import (
	"time"

	"inventuagro/internal/domain/reports"
)

// --- Quotation Summary Report ---

// QuotationSummaryRequest represents request for the quotation summary report.
type QuotationSummaryRequest struct {
	ClientName string     `form:"clientName"`
	Status     string     `form:"status"`
	DateFrom   *time.Time `form:"dateFrom"`
	DateTo     *time.Time `form:"dateTo"`
	Limit      int        `form:"limit"`
	Offset     int        `form:"offset"`
}

// QuotationSummaryResponse represents the quotation summary report response.
type QuotationSummaryResponse struct {
	Items      []QuotationSummaryItemResponse `json:"items"`
	TotalItems int                            `json:"totalItems"`
}

// QuotationSummaryItemResponse is one dashboard row.
type QuotationSummaryItemResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Date         time.Time `json:"date"`
	ClientName   string    `json:"clientName"`
	ItemsSummary string    `json:"itemsSummary"`
	TotalItems   int       `json:"totalItems"`
	TotalCost    string    `json:"totalCost"`
	TotalPrice   string    `json:"totalPrice"`
	Profit       string    `json:"profit"`
	Status       string    `json:"status"`
}

// FromSummaryReport converts domain report to response DTO.
func FromSummaryReport(report *reports.SummaryReport) QuotationSummaryResponse {
	items := make([]QuotationSummaryItemResponse, len(report.Items))
	for i, row := range report.Items {
		items[i] = QuotationSummaryItemResponse{
			ID:           row.ID.String(),
			Number:       row.Number,
			Date:         row.Date,
			ClientName:   row.ClientName,
			ItemsSummary: row.ItemsSummary,
			TotalItems:   row.TotalItems,
			TotalCost:    row.TotalCost.StringFixed(2),
			TotalPrice:   row.TotalPrice.StringFixed(2),
			Profit:       row.Profit.StringFixed(2),
			Status:       string(row.Status),
		}
	}

	return QuotationSummaryResponse{
		Items:      items,
		TotalItems: report.TotalItems,
	}
}

// --- Monthly Rollup Report ---

// MonthlyReportResponse represents the monthly rollup response.
type MonthlyReportResponse struct {
	From    time.Time               `json:"from"`
	To      time.Time               `json:"to"`
	Buckets []MonthlyBucketResponse `json:"buckets"`
}

// MonthlyBucketResponse is one calendar month of the rollup.
type MonthlyBucketResponse struct {
	Month          string  `json:"month"`
	QuotedAmount   string  `json:"quotedAmount"`
	QuotedCount    int     `json:"quotedCount"`
	WonAmount      string  `json:"wonAmount"`
	WonCount       int     `json:"wonCount"`
	LostAmount     string  `json:"lostAmount"`
	LostCount      int     `json:"lostCount"`
	WonProfit      string  `json:"wonProfit"`
	ConversionRate float64 `json:"conversionRate"`
}

// FromMonthlyReport converts domain report to response DTO.
func FromMonthlyReport(report *reports.MonthlyReport) MonthlyReportResponse {
	buckets := make([]MonthlyBucketResponse, len(report.Buckets))
	for i, b := range report.Buckets {
		buckets[i] = MonthlyBucketResponse{
			Month:          b.Month,
			QuotedAmount:   b.QuotedAmount.StringFixed(2),
			QuotedCount:    b.QuotedCount,
			WonAmount:      b.WonAmount.StringFixed(2),
			WonCount:       b.WonCount,
			LostAmount:     b.LostAmount.StringFixed(2),
			LostCount:      b.LostCount,
			WonProfit:      b.WonProfit.StringFixed(2),
			ConversionRate: b.ConversionRate,
		}
	}

	return MonthlyReportResponse{
		From:    report.From,
		To:      report.To,
		Buckets: buckets,
	}
}
