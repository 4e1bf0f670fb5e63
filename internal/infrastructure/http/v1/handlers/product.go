package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/id"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/infrastructure/http/v1/dto"
)

// ProductHandler extends the generic catalog handler with cost preview
// and sales history endpoints.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler wires the product handler.
func NewProductHandler(
	base *BaseHandler,
	service *product.Service,
) *ProductHandler {

	config := CatalogHandlerConfig[
		*product.Product,
		dto.CreateProductRequest,
		dto.UpdateProductRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "product",

		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *product.Product) any {
			return dto.FromProduct(entity)
		},
	}

	return &ProductHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// DeriveCost handles POST /products/derive-cost - cost preview without
// persisting. The body is a full product payload; the response is the
// derivation breakdown.
func (h *ProductHandler) DeriveCost(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Derive(ctx, req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCostingResult(result))
}

// RecordSale handles POST /products/:id/sales - append a sale record.
func (h *ProductHandler) RecordSale(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.RecordSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	rec := product.SaleRecord{
		Date:      time.Now().UTC(),
		Client:    req.Client,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	}
	if req.Date != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid date format (RFC3339 expected)").
				WithDetail("field", "date"))
			return
		}
		rec.Date = parsed
	}

	if err := h.service.RecordSale(ctx, productID, rec); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "sale recorded")
}

// GetByReference handles GET /products/by-reference/:reference.
func (h *ProductHandler) GetByReference(c *gin.Context) {
	ctx := c.Request.Context()

	reference := c.Param("reference")
	if reference == "" {
		h.Error(c, apperror.NewValidation("reference is required"))
		return
	}

	p, err := h.service.FindByReference(ctx, reference)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(p))
}
