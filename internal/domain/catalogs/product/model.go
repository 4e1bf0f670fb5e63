// Package product provides the catalog of manufactured parts: geometry,
// material, selected operations and the derived weight and unit cost.
package product

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/entity"
	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/costing"
)

// Product represents a reusable manufactured-part definition.
//
// Invariant: UnitCost is either manually set (ManualPrice) or exactly the
// sum of material cost plus all selected-operation costs, never a mix.
type Product struct {
	entity.Catalog

	// Brand of the machine the part belongs to
	Brand string `db:"brand" json:"brand,omitempty"`

	// MachineType is the machine model or type
	MachineType string `db:"machine_type" json:"machineType,omitempty"`

	// Reference is the part's reference code
	Reference string `db:"reference" json:"reference,omitempty"`

	// Geometry in millimeters
	LengthMM    float64 `db:"length_mm" json:"lengthMm"`
	WidthMM     float64 `db:"width_mm" json:"widthMm"`
	ThicknessMM float64 `db:"thickness_mm" json:"thicknessMm"`

	// WeightKg is derived from geometry and density unless ManualWeight is set
	WeightKg float64 `db:"weight_kg" json:"weightKg"`

	// MaterialName references a material by exact name
	MaterialName string `db:"material_name" json:"materialName,omitempty"`

	// UnitCost in USD, derived unless ManualPrice is set
	UnitCost types.Money `db:"unit_cost" json:"unitCost"`

	// MinLotSize is the minimum manufacturing lot
	MinLotSize int `db:"min_lot_size" json:"minLotSize,omitempty"`

	// ManualWeight suppresses weight auto-calculation
	ManualWeight bool `db:"manual_weight" json:"manualWeight"`

	// ManualPrice suppresses unit-cost auto-calculation
	ManualPrice bool `db:"manual_price" json:"manualPrice"`

	// SelectedOperations holds operation selections with their stored
	// quantity values. Saved values are preserved verbatim on edit.
	SelectedOperations OperationSelections `db:"selected_operations" json:"selectedOperations"`

	// SalesHistory records past sales of this part
	SalesHistory SaleHistory `db:"sales_history" json:"salesHistory,omitempty"`
}

// SaleRecord is one past sale of a product.
type SaleRecord struct {
	Date      time.Time   `json:"date"`
	Client    string      `json:"client"`
	Quantity  int         `json:"quantity"`
	UnitPrice types.Money `json:"unitPrice"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string) *Product {
	return &Product{
		Catalog:  entity.NewCatalog(code, name),
		UnitCost: types.Zero(),
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.LengthMM < 0 || p.WidthMM < 0 || p.ThicknessMM < 0 {
		return apperror.NewValidation("dimensions cannot be negative").
			WithDetail("field", "dimensions")
	}

	if p.UnitCost.IsNegative() {
		return apperror.NewValidation("unit cost cannot be negative").
			WithDetail("field", "unitCost")
	}

	if p.MinLotSize < 0 {
		return apperror.NewValidation("minimum lot size cannot be negative").
			WithDetail("field", "minLotSize")
	}

	return nil
}

// Dimensions returns the product geometry in the costing engine's shape.
func (p *Product) Dimensions() costing.Dimensions {
	return costing.Dimensions{
		LengthMM:    p.LengthMM,
		WidthMM:     p.WidthMM,
		ThicknessMM: p.ThicknessMM,
	}
}

// AddSale appends a sale record to the product history.
func (p *Product) AddSale(rec SaleRecord) {
	p.SalesHistory = append(p.SalesHistory, rec)
}

// --- JSONB column types ---

// OperationSelections maps the selected_operations JSONB column.
type OperationSelections []costing.SelectedOperation

// Scan implements sql.Scanner.
func (s *OperationSelections) Scan(src any) error {
	return scanJSON(src, s, "OperationSelections")
}

// Value implements driver.Valuer.
func (s OperationSelections) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// SaleHistory maps the sales_history JSONB column.
type SaleHistory []SaleRecord

// Scan implements sql.Scanner.
func (h *SaleHistory) Scan(src any) error {
	return scanJSON(src, h, "SaleHistory")
}

// Value implements driver.Valuer.
func (h SaleHistory) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

func scanJSON(src, dest any, name string) error {
	if src == nil {
		return nil
	}

	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return fmt.Errorf("unsupported type for %s: %T", name, src)
	}

	if len(source) == 0 {
		return nil
	}
	if err := json.Unmarshal(source, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}
