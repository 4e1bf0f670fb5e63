package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/domain/documents/quotation"
	"inventuagro/internal/domain/reports"
	"inventuagro/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetSummary handles GET /reports/summary
func (h *ReportsHandler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.QuotationSummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	filter := reports.SummaryFilter{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.ClientName != "" {
		filter.ClientName = &req.ClientName
	}
	if req.Status != "" {
		st := quotation.Status(req.Status)
		if !st.IsValid() {
			h.Error(c, apperror.NewValidation("invalid status filter").
				WithDetail("value", req.Status))
			return
		}
		filter.Status = &st
	}

	report, err := h.service.GetSummary(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSummaryReport(report))
}

// GetMonthly handles GET /reports/monthly
func (h *ReportsHandler) GetMonthly(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := h.service.GetMonthly(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromMonthlyReport(report))
}
