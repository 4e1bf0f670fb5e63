package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/id"
	"inventuagro/internal/domain"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/domain/documents/quotation"
	"inventuagro/internal/infrastructure/export"
	"inventuagro/internal/infrastructure/http/v1/dto"
)

// QuotationHandler handles HTTP requests for quotation documents.
type QuotationHandler struct {
	*BaseHandler
	service  *quotation.Service
	products *product.Service
	renderer *export.PDFRenderer
}

// NewQuotationHandler creates a new quotation handler.
func NewQuotationHandler(
	base *BaseHandler,
	service *quotation.Service,
	products *product.Service,
	renderer *export.PDFRenderer,
) *QuotationHandler {
	return &QuotationHandler{
		BaseHandler: base,
		service:     service,
		products:    products,
		renderer:    renderer,
	}
}

// buildItems resolves requested lines into quotation items. Lines with a
// product id snapshot the current catalog record; the rest become custom
// items subject to custom-item validation.
func (h *QuotationHandler) buildItems(c *gin.Context, reqs []dto.QuotationItemRequest) ([]quotation.Item, bool) {
	ctx := c.Request.Context()

	items := make([]quotation.Item, 0, len(reqs))
	for i, req := range reqs {
		if req.ProductID != nil {
			productID, err := id.Parse(*req.ProductID)
			if err != nil {
				h.Error(c, apperror.NewValidation("invalid productId format").
					WithDetail("index", i))
				return nil, false
			}

			p, err := h.products.GetByID(ctx, productID)
			if err != nil {
				h.Error(c, err)
				return nil, false
			}

			items = append(items, quotation.NewCatalogItem(p, req.Quantity, req.Markup()))
			continue
		}

		item, err := quotation.NewCustomItem(req.Description, req.BaseCost, req.Quantity, req.Markup())
		if err != nil {
			h.Error(c, err)
			return nil, false
		}
		items = append(items, item)
	}

	return items, true
}

// List handles GET /quotations - list with filtering and pagination.
func (h *QuotationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := quotation.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if clientName := c.Query("clientName"); clientName != "" {
		filter.ClientName = &clientName
	}
	if status := c.Query("status"); status != "" {
		st := quotation.Status(status)
		if !st.IsValid() {
			h.Error(c, apperror.NewValidation("invalid status filter").
				WithDetail("value", status))
			return
		}
		filter.Status = &st
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromQuotation(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /quotations/:id.
func (h *QuotationHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotation(doc))
}

// Create handles POST /quotations - create with auto-generated number.
func (h *QuotationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateQuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc := quotation.NewQuotation(req.ClientName)
	if req.Date != nil {
		doc.Date = *req.Date
	}
	doc.PaymentTerms = req.PaymentTerms
	doc.Notes = req.Notes
	doc.Comment = req.Comment

	items, ok := h.buildItems(c, req.Items)
	if !ok {
		return
	}
	for _, item := range items {
		doc.AddItem(item)
	}

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromQuotation(doc))
}

// Update handles PUT /quotations/:id - replace header fields and items.
func (h *QuotationHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateQuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc.ClientName = req.ClientName
	if req.Date != nil {
		doc.Date = *req.Date
	}
	doc.PaymentTerms = req.PaymentTerms
	doc.Notes = req.Notes
	doc.Comment = req.Comment
	doc.Version = req.Version

	items, ok := h.buildItems(c, req.Items)
	if !ok {
		return
	}
	doc.Items = doc.Items[:0]
	for _, item := range items {
		doc.AddItem(item)
	}

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotation(doc))
}

// UpdateStatus handles PATCH /quotations/:id/status.
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.UpdateStatus(ctx, docID, quotation.Status(req.Status), req.Reason)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotation(doc))
}

// Delete handles DELETE /quotations/:id - soft delete.
func (h *QuotationHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportPDF handles GET /quotations/:id/pdf - render the proposal.
func (h *QuotationHandler) ExportPDF(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	pdf, err := h.renderer.Render(ctx, doc)
	if err != nil {
		h.Error(c, apperror.NewInternal(err).WithDetail("operation", "render pdf"))
		return
	}

	filename := fmt.Sprintf("Cotizacion_%s.pdf", doc.Number)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
