// Package costing derives weight, surface area and unit cost for
// manufactured parts from geometry, material and selected operations.
//
// All functions are pure and total over their documented inputs: reference
// lookup misses degrade the affected component to zero, they never error.
// Out-of-domain values (negative dimensions) are a caller responsibility.
package costing

import (
	"math"

	"github.com/shopspring/decimal"

	"inventuagro/internal/core/id"
	"inventuagro/internal/core/types"
)

// Unit is the measurement unit of a billable operation.
type Unit string

const (
	UnitPiece       Unit = "pza"
	UnitKilogram    Unit = "kg"
	UnitSquareMeter Unit = "m2"
	UnitLinearMeter Unit = "m"
	UnitHoleCount   Unit = "agujeros"
	UnitFixed       Unit = "fijo"
	UnitQuantity    Unit = "cantidad"
)

// Dimensions describe a rectangular part in millimeters.
type Dimensions struct {
	LengthMM    float64
	WidthMM     float64
	ThicknessMM float64
}

// MaterialRef is the material reference data the engine consumes.
// Materials are referenced by name from catalog products.
type MaterialRef struct {
	Name       string
	PricePerKg types.Money
	Density    float64
}

// OperationRef is the operation (billable service) reference data.
type OperationRef struct {
	ID        id.ID
	Name      string
	UnitPrice types.Money
	Unit      Unit
}

// SelectedOperation is an operation chosen on a product, with the stored
// quantity value. The value's meaning depends on the operation's unit
// (kilograms, square meters, linear meters, hole count or plain quantity).
type SelectedOperation struct {
	OperationID id.ID   `db:"operation_id" json:"operationId"`
	Value       float64 `db:"value" json:"value"`
}

// OperationLine is the per-operation cost breakdown.
type OperationLine struct {
	OperationID id.ID       `json:"operationId"`
	Name        string      `json:"name"`
	Unit        Unit        `json:"unit"`
	Quantity    float64     `json:"quantity"`
	UnitPrice   types.Money `json:"unitPrice"`
	Cost        types.Money `json:"cost"`

	// Unknown marks a dangling operation id. The entry is kept so the
	// selection is never silently dropped from the underlying data.
	Unknown bool `json:"unknown,omitempty"`
}

// UnknownOperationName is the display placeholder for dangling operation ids.
const UnknownOperationName = "Servicio desconocido"

// NormalizeDensity converts a stored density to g/cm3.
//
// Densities are stored inconsistently across historical data: values above
// 100 are kg/m3 and get divided by 1000, anything else is already g/cm3.
// This shim is load-bearing compatibility behavior and must not be "fixed".
func NormalizeDensity(density float64) float64 {
	if density > 100 {
		return density / 1000
	}
	return density
}

// WeightKg derives the part weight in kilograms, rounded to 1 decimal.
// A zero or missing density yields weight 0.
func WeightKg(dim Dimensions, density float64) float64 {
	volumeMM3 := dim.LengthMM * dim.WidthMM * dim.ThicknessMM
	volumeCM3 := volumeMM3 / 1000

	grams := volumeCM3 * NormalizeDensity(density)
	return math.Round(grams/1000*10) / 10
}

// SurfaceAreaM2 sums the six rectangular-prism face areas in square
// meters, rounded to 4 decimals.
func SurfaceAreaM2(dim Dimensions) float64 {
	areaMM2 := 2 * (dim.LengthMM*dim.WidthMM + dim.LengthMM*dim.ThicknessMM + dim.WidthMM*dim.ThicknessMM)
	return math.Round(areaMM2/1_000_000*10_000) / 10_000
}

// MaterialCost prices the part's raw material, rounded to 2 decimals.
func MaterialCost(weightKg float64, material MaterialRef) types.Money {
	return material.PricePerKg.Mul(decimal.NewFromFloat(weightKg)).Round(2)
}

// OperationsCost prices the selected operations against the operation
// catalog. Each line cost is rounded to 2 decimals before the total is
// summed. Operations with an unset unit price contribute nothing; unknown
// operation ids produce placeholder lines with zero cost.
func OperationsCost(selected []SelectedOperation, operations map[id.ID]OperationRef) (types.Money, []OperationLine) {
	total := decimal.Zero
	lines := make([]OperationLine, 0, len(selected))

	for _, sel := range selected {
		ref, ok := operations[sel.OperationID]
		if !ok {
			lines = append(lines, OperationLine{
				OperationID: sel.OperationID,
				Name:        UnknownOperationName,
				Quantity:    sel.Value,
				Unknown:     true,
			})
			continue
		}

		line := OperationLine{
			OperationID: ref.ID,
			Name:        ref.Name,
			Unit:        ref.Unit,
			Quantity:    sel.Value,
			UnitPrice:   ref.UnitPrice,
		}

		if ref.UnitPrice.IsZero() {
			lines = append(lines, line)
			continue
		}

		qty := sel.Value
		if ref.Unit == UnitFixed {
			qty = 1
		}
		line.Quantity = qty
		line.Cost = ref.UnitPrice.Mul(decimal.NewFromFloat(qty)).Round(2)

		total = total.Add(line.Cost)
		lines = append(lines, line)
	}

	return total, lines
}

// Result is the full cost derivation for one product.
type Result struct {
	WeightKg        float64         `json:"weightKg"`
	SurfaceAreaM2   float64         `json:"surfaceAreaM2"`
	MaterialCost    types.Money     `json:"materialCost"`
	OperationsTotal types.Money     `json:"operationsTotal"`
	Lines           []OperationLine `json:"lines"`
	UnitCost        types.Money     `json:"unitCost"`
}

// Input bundles everything the engine needs for a full derivation.
// Material is optional: a nil material (name lookup miss) yields weight 0
// and material cost 0, not an error. Reference data must be fully loaded
// by the caller before invoking the engine; a partial operations map
// silently misses rather than blocking.
type Input struct {
	Dimensions Dimensions
	Material   *MaterialRef
	Selected   []SelectedOperation
	Operations map[id.ID]OperationRef

	// ManualWeightKg suppresses weight auto-calculation when set.
	ManualWeightKg *float64
}

// Compute runs the full derivation: weight, area, material cost and
// operation costs, summed from two-decimal rounded components.
func Compute(in Input) Result {
	var res Result

	if in.ManualWeightKg != nil {
		res.WeightKg = *in.ManualWeightKg
	} else if in.Material != nil {
		res.WeightKg = WeightKg(in.Dimensions, in.Material.Density)
	}

	res.SurfaceAreaM2 = SurfaceAreaM2(in.Dimensions)

	if in.Material != nil {
		res.MaterialCost = MaterialCost(res.WeightKg, *in.Material)
	} else {
		res.MaterialCost = decimal.Zero
	}

	res.OperationsTotal, res.Lines = OperationsCost(in.Selected, in.Operations)
	res.UnitCost = res.MaterialCost.Add(res.OperationsTotal)

	return res
}

// DefaultValue returns the initial quantity for a newly selected
// operation: weight for kg operations, surface area for m2 operations,
// 1 for everything else. Values already saved on a product are preserved
// verbatim on edit and never re-derived.
func DefaultValue(unit Unit, weightKg, areaM2 float64) float64 {
	switch unit {
	case UnitKilogram:
		return weightKg
	case UnitSquareMeter:
		return areaM2
	default:
		return 1
	}
}
