package dto

import (
	"inventuagro/internal/core/entity"
	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/domain/costing"
)

// --- Request DTOs ---

// CreateOperationRequest is the request body for creating an operation.
type CreateOperationRequest struct {
	Code        string            `json:"code"`
	Name        string            `json:"name" binding:"required"`
	UnitPrice   types.Money       `json:"unitPrice"`
	Unit        costing.Unit      `json:"unit" binding:"required"`
	Provider    string            `json:"provider"`
	Description string            `json:"description"`
	Attributes  entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOperationRequest) ToEntity() *operation.Operation {
	o := operation.NewOperation(r.Code, r.Name, r.Unit)
	o.UnitPrice = r.UnitPrice
	if r.Provider != "" {
		o.Provider = operation.Provider(r.Provider)
	}
	o.Description = r.Description
	o.Attributes = r.Attributes
	return o
}

// UpdateOperationRequest is the request body for updating an operation.
type UpdateOperationRequest struct {
	Code        string            `json:"code"`
	Name        string            `json:"name" binding:"required"`
	UnitPrice   types.Money       `json:"unitPrice"`
	Unit        costing.Unit      `json:"unit" binding:"required"`
	Provider    string            `json:"provider"`
	Description string            `json:"description"`
	Attributes  entity.Attributes `json:"attributes"`
	Version     int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateOperationRequest) ApplyTo(o *operation.Operation) {
	o.Code = r.Code
	o.Name = r.Name
	o.UnitPrice = r.UnitPrice
	o.Unit = r.Unit
	o.Provider = operation.Provider(r.Provider)
	o.Description = r.Description
	o.Attributes = r.Attributes
	o.Version = r.Version
}

// --- Response DTOs ---

// OperationResponse is the response body for an operation.
type OperationResponse struct {
	CatalogResponse
	UnitPrice   types.Money  `json:"unitPrice"`
	Unit        costing.Unit `json:"unit"`
	Provider    string       `json:"provider"`
	Description string       `json:"description,omitempty"`
}

// FromOperation creates response DTO from domain entity.
func FromOperation(o *operation.Operation) *OperationResponse {
	return &OperationResponse{
		CatalogResponse: FromCatalog(o.Catalog),
		UnitPrice:       o.UnitPrice,
		Unit:            o.Unit,
		Provider:        string(o.Provider),
		Description:     o.Description,
	}
}
