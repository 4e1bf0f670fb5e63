// Package client provides the Client reference catalog.
// Quotations carry the client name as entered; the catalog feeds
// autocompletion and contact data.
package client

import (
	"context"

	"inventuagro/internal/core/entity"
)

// Client represents a customer the company quotes to.
type Client struct {
	entity.Catalog

	// Company is the client's company name when it differs from Name
	Company string `db:"company" json:"company,omitempty"`

	// Email is the contact email
	Email string `db:"email" json:"email,omitempty"`

	// Phone is the contact phone
	Phone string `db:"phone" json:"phone,omitempty"`
}

// NewClient creates a new Client with required fields.
func NewClient(code, name string) *Client {
	return &Client{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	return c.Catalog.Validate(ctx)
}
