package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventuagro/internal/domain/migration"
)

// MigrationHandler handles HTTP requests for the local-store migration.
type MigrationHandler struct {
	*BaseHandler
	service *migration.Service
}

// NewMigrationHandler creates a new migration handler.
func NewMigrationHandler(base *BaseHandler, service *migration.Service) *MigrationHandler {
	return &MigrationHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Run handles POST /migration/run - pushes every local collection to the
// database. Re-running after a completed migration is a no-op.
func (h *MigrationHandler) Run(c *gin.Context) {
	result, err := h.service.Run(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
