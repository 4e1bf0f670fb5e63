package dto

import (
	"inventuagro/internal/domain/config"
)

// --- Request DTOs ---

// UpdateConfigurationRequest replaces the configuration aggregate.
type UpdateConfigurationRequest struct {
	Brands       []config.Brand       `json:"brands"`
	MachineTypes []config.MachineType `json:"machineTypes"`
	Thicknesses  []config.Thickness   `json:"thicknesses"`
}

// ApplyTo applies update DTO to existing configuration.
func (r *UpdateConfigurationRequest) ApplyTo(cfg *config.Configuration) {
	cfg.Brands = r.Brands
	cfg.MachineTypes = r.MachineTypes
	cfg.Thicknesses = r.Thicknesses
}

// AddBrandRequest appends one brand.
type AddBrandRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddMachineTypeRequest appends one machine type.
type AddMachineTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddThicknessRequest appends one plate thickness.
type AddThicknessRequest struct {
	ValueMM float64 `json:"valueMm" binding:"required,gt=0"`
}
