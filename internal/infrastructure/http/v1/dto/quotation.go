package dto

import (
	"time"

	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/documents/quotation"
)

// --- Request DTOs ---

// QuotationItemRequest is one requested quotation line. A line with a
// productId becomes a catalog item snapshotting the product; otherwise a
// description and a positive base cost are required for a custom item.
type QuotationItemRequest struct {
	ProductID     *string      `json:"productId"`
	Description   string       `json:"description"`
	Quantity      int          `json:"quantity" binding:"required,min=1"`
	BaseCost      types.Money  `json:"baseCost"`
	MarkupPercent *types.Money `json:"markupPercent"`
}

// Markup returns the requested markup or the default.
func (r *QuotationItemRequest) Markup() types.Money {
	if r.MarkupPercent != nil {
		return *r.MarkupPercent
	}
	return quotation.DefaultMarkupPercent
}

// CreateQuotationRequest is the request body for creating a quotation.
type CreateQuotationRequest struct {
	ClientName   string                 `json:"clientName" binding:"required"`
	Date         *time.Time             `json:"date"`
	Items        []QuotationItemRequest `json:"items" binding:"required,min=1"`
	PaymentTerms string                 `json:"paymentTerms"`
	Notes        string                 `json:"notes"`
	Comment      string                 `json:"comment"`
}

// UpdateQuotationRequest is the request body for updating a quotation.
type UpdateQuotationRequest struct {
	ClientName   string                 `json:"clientName" binding:"required"`
	Date         *time.Time             `json:"date"`
	Items        []QuotationItemRequest `json:"items" binding:"required,min=1"`
	PaymentTerms string                 `json:"paymentTerms"`
	Notes        string                 `json:"notes"`
	Comment      string                 `json:"comment"`
	Version      int                    `json:"version" binding:"required"`
}

// UpdateStatusRequest moves a quotation through its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// --- Response DTOs ---

// QuotationItemResponse is one quotation line in a response.
type QuotationItemResponse struct {
	ID            string      `json:"id"`
	Kind          string      `json:"kind"`
	Description   string      `json:"description"`
	Quantity      int         `json:"quantity"`
	BaseCost      types.Money `json:"baseCost"`
	MarkupPercent types.Money `json:"markupPercent"`
	UnitPrice     types.Money `json:"unitPrice"`
	TotalPrice    types.Money `json:"totalPrice"`
	ProductID     *string     `json:"productId,omitempty"`
}

// QuotationResponse is the response body for a quotation.
type QuotationResponse struct {
	DocumentResponse
	ClientName   string                  `json:"clientName"`
	Items        []QuotationItemResponse `json:"items"`
	TotalPrice   types.Money             `json:"totalPrice"`
	PaymentTerms string                  `json:"paymentTerms,omitempty"`
	Status       string                  `json:"status"`
	Reason       string                  `json:"reason,omitempty"`
	Notes        string                  `json:"notes,omitempty"`
}

// FromQuotation creates response DTO from domain entity.
func FromQuotation(q *quotation.Quotation) *QuotationResponse {
	items := make([]QuotationItemResponse, len(q.Items))
	for i, it := range q.Items {
		items[i] = QuotationItemResponse{
			ID:            it.ID.String(),
			Kind:          string(it.Kind),
			Description:   it.Description,
			Quantity:      it.Quantity,
			BaseCost:      it.BaseCost,
			MarkupPercent: it.MarkupPercent,
			UnitPrice:     it.UnitPrice,
			TotalPrice:    it.TotalPrice,
		}
		if it.ProductID != nil {
			pid := it.ProductID.String()
			items[i].ProductID = &pid
		}
	}

	return &QuotationResponse{
		DocumentResponse: FromDocument(q.Document),
		ClientName:       q.ClientName,
		Items:            items,
		TotalPrice:       q.TotalPrice,
		PaymentTerms:     q.PaymentTerms,
		Status:           string(q.Status.Normalize()),
		Reason:           q.Reason,
		Notes:            q.Notes,
	}
}
