package dto

import (
	"inventuagro/internal/core/entity"
	"inventuagro/internal/domain/catalogs/client"
)

// --- Request DTOs ---

// CreateClientRequest is the request body for creating a client.
type CreateClientRequest struct {
	Code       string            `json:"code"`
	Name       string            `json:"name" binding:"required"`
	Company    string            `json:"company"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Attributes entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateClientRequest) ToEntity() *client.Client {
	c := client.NewClient(r.Code, r.Name)
	c.Company = r.Company
	c.Email = r.Email
	c.Phone = r.Phone
	c.Attributes = r.Attributes
	return c
}

// UpdateClientRequest is the request body for updating a client.
type UpdateClientRequest struct {
	Code       string            `json:"code"`
	Name       string            `json:"name" binding:"required"`
	Company    string            `json:"company"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Attributes entity.Attributes `json:"attributes"`
	Version    int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateClientRequest) ApplyTo(c *client.Client) {
	c.Code = r.Code
	c.Name = r.Name
	c.Company = r.Company
	c.Email = r.Email
	c.Phone = r.Phone
	c.Attributes = r.Attributes
	c.Version = r.Version
}

// --- Response DTOs ---

// ClientResponse is the response body for a client.
type ClientResponse struct {
	CatalogResponse
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// FromClient creates response DTO from domain entity.
func FromClient(c *client.Client) *ClientResponse {
	return &ClientResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Company:         c.Company,
		Email:           c.Email,
		Phone:           c.Phone,
	}
}
