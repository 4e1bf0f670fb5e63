package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventuagro/internal/domain/config"
	"inventuagro/internal/infrastructure/http/v1/dto"
)

// ConfigHandler handles HTTP requests for the configuration aggregate.
type ConfigHandler struct {
	*BaseHandler
	service *config.Service
}

// NewConfigHandler creates a new configuration handler.
func NewConfigHandler(base *BaseHandler, service *config.Service) *ConfigHandler {
	return &ConfigHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Get handles GET /config - returns the aggregate, seeding defaults on
// first access.
func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// Update handles PUT /config - replaces the reference collections.
func (h *ConfigHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateConfigurationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cfg, err := h.service.Get(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(cfg)

	if err := h.service.Update(ctx, cfg); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// AddBrand handles POST /config/brands.
func (h *ConfigHandler) AddBrand(c *gin.Context) {
	var req dto.AddBrandRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cfg, err := h.service.AddBrand(c.Request.Context(), req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, cfg)
}

// AddMachineType handles POST /config/machine-types.
func (h *ConfigHandler) AddMachineType(c *gin.Context) {
	var req dto.AddMachineTypeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cfg, err := h.service.AddMachineType(c.Request.Context(), req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, cfg)
}

// AddThickness handles POST /config/thicknesses.
func (h *ConfigHandler) AddThickness(c *gin.Context) {
	var req dto.AddThicknessRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cfg, err := h.service.AddThickness(c.Request.Context(), req.ValueMM)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, cfg)
}
