package config

import (
	"time"

	"inventuagro/internal/core/id"
)

// defaultVersion tags freshly seeded configurations.
const defaultVersion = "1.0.1"

var defaultBrands = []string{
	"Metalbert",
	"Mainero",
	"Vaima",
	"Grass Cutter",
	"Varias",
	"Georgi",
	"Oncativo",
}

var defaultMachineTypes = []string{
	"Cuchilla Desmalezadora",
	"Cuchilla Picadora",
	"Cuchilla Rolo Trituradora",
	"Cuchilla Mixer / Roto Cutter",
	`Reja Cultivadora 11"`,
	`Reja Cultivadora 11" (Acorazada)`,
	"Conjunto Reja Carpidora",
}

// Stock plate gauges: 1/4", 5/16", 3/8" and 1/2".
var defaultThicknessesMM = []float64{6.35, 7.94, 9.53, 12.7}

// Defaults returns the seed configuration used when no configuration has
// been saved yet.
func Defaults() *Configuration {
	now := time.Now().UTC()

	cfg := &Configuration{
		Brands:       make([]Brand, 0, len(defaultBrands)),
		MachineTypes: make([]MachineType, 0, len(defaultMachineTypes)),
		Thicknesses:  make([]Thickness, 0, len(defaultThicknessesMM)),
		Version:      defaultVersion,
		LastUpdated:  now,
	}
	for _, name := range defaultBrands {
		cfg.Brands = append(cfg.Brands, Brand{ID: id.New(), Name: name, CreatedAt: now})
	}
	for _, name := range defaultMachineTypes {
		cfg.MachineTypes = append(cfg.MachineTypes, MachineType{ID: id.New(), Name: name, CreatedAt: now})
	}
	for _, mm := range defaultThicknessesMM {
		cfg.Thicknesses = append(cfg.Thicknesses, Thickness{ID: id.New(), ValueMM: mm, CreatedAt: now})
	}
	return cfg
}
