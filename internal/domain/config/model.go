// Package config holds the application configuration aggregate: the
// small reference collections (brands, machine types, plate thicknesses)
// that catalog forms offer as choices. Materials, operations and clients
// are full catalogs and live in internal/domain/catalogs.
package config

import (
	"context"
	"time"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/id"
)

// Brand is a machinery brand offered on the product form.
type Brand struct {
	ID        id.ID     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Key implements merge.Identifiable.
func (b Brand) Key() string { return b.ID.String() }

// MachineType is a machine or part family offered on the product form.
type MachineType struct {
	ID        id.ID     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Key implements merge.Identifiable.
func (m MachineType) Key() string { return m.ID.String() }

// Thickness is a stock plate thickness in millimeters.
type Thickness struct {
	ID        id.ID     `json:"id"`
	ValueMM   float64   `json:"valueMm"`
	CreatedAt time.Time `json:"createdAt"`
}

// Key implements merge.Identifiable.
func (t Thickness) Key() string { return t.ID.String() }

// Configuration is the persisted aggregate.
type Configuration struct {
	Brands       []Brand       `json:"brands"`
	MachineTypes []MachineType `json:"machineTypes"`
	Thicknesses  []Thickness   `json:"thicknesses"`

	Version     string    `json:"version"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Validate implements entity.Validatable.
func (c *Configuration) Validate(ctx context.Context) error {
	for _, b := range c.Brands {
		if b.Name == "" {
			return apperror.NewValidation("brand name is required").
				WithDetail("field", "brands")
		}
	}
	for _, m := range c.MachineTypes {
		if m.Name == "" {
			return apperror.NewValidation("machine type name is required").
				WithDetail("field", "machineTypes")
		}
	}
	for _, t := range c.Thicknesses {
		if t.ValueMM <= 0 {
			return apperror.NewValidation("thickness must be positive").
				WithDetail("field", "thicknesses")
		}
	}
	return nil
}

// Touch bumps the aggregate's update timestamp.
func (c *Configuration) Touch() {
	c.LastUpdated = time.Now().UTC()
}
