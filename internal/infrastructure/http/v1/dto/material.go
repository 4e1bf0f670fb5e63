package dto

import (
	"inventuagro/internal/core/entity"
	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/catalogs/material"
)

// --- Request DTOs ---

// CreateMaterialRequest is the request body for creating a material.
type CreateMaterialRequest struct {
	Code       string            `json:"code"`
	Name       string            `json:"name" binding:"required"`
	PricePerKg types.Money       `json:"pricePerKg"`
	Density    float64           `json:"density"`
	Attributes entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateMaterialRequest) ToEntity() *material.Material {
	m := material.NewMaterial(r.Code, r.Name)
	m.PricePerKg = r.PricePerKg
	m.Density = r.Density
	m.Attributes = r.Attributes
	return m
}

// UpdateMaterialRequest is the request body for updating a material.
type UpdateMaterialRequest struct {
	Code       string            `json:"code"`
	Name       string            `json:"name" binding:"required"`
	PricePerKg types.Money       `json:"pricePerKg"`
	Density    float64           `json:"density"`
	Attributes entity.Attributes `json:"attributes"`
	Version    int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateMaterialRequest) ApplyTo(m *material.Material) {
	m.Code = r.Code
	m.Name = r.Name
	m.PricePerKg = r.PricePerKg
	m.Density = r.Density
	m.Attributes = r.Attributes
	m.Version = r.Version
}

// --- Response DTOs ---

// MaterialResponse is the response body for a material.
type MaterialResponse struct {
	CatalogResponse
	PricePerKg types.Money `json:"pricePerKg"`
	Density    float64     `json:"density"`
}

// FromMaterial creates response DTO from domain entity.
func FromMaterial(m *material.Material) *MaterialResponse {
	return &MaterialResponse{
		CatalogResponse: FromCatalog(m.Catalog),
		PricePerKg:      m.PricePerKg,
		Density:         m.Density,
	}
}
