package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/id"
	"inventuagro/internal/core/types"
)

var steel = MaterialRef{Name: "Acero 1045", PricePerKg: types.MustMoney("2.50"), Density: 7850}

func TestWeightKg(t *testing.T) {
	dim := Dimensions{LengthMM: 200, WidthMM: 100, ThicknessMM: 12.7}

	// 200*100*12.7 = 254000 mm3 = 254 cm3; 7850 kg/m3 -> 7.85 g/cm3
	// 254 * 7.85 = 1993.9 g -> 2.0 kg after rounding to 1 decimal.
	assert.Equal(t, 2.0, WeightKg(dim, 7850))
}

func TestWeightKg_DensityNormalization(t *testing.T) {
	dim := Dimensions{LengthMM: 300, WidthMM: 150, ThicknessMM: 9.53}

	// kg/m3 and g/cm3 conventions must produce identical weight.
	assert.Equal(t, WeightKg(dim, 7850), WeightKg(dim, 7.85))
}

func TestWeightKg_Monotonicity(t *testing.T) {
	base := Dimensions{LengthMM: 100, WidthMM: 100, ThicknessMM: 10}
	w0 := WeightKg(base, 7850)

	for _, dim := range []Dimensions{
		{LengthMM: 150, WidthMM: 100, ThicknessMM: 10},
		{LengthMM: 100, WidthMM: 150, ThicknessMM: 10},
		{LengthMM: 100, WidthMM: 100, ThicknessMM: 15},
	} {
		assert.GreaterOrEqual(t, WeightKg(dim, 7850), w0)
	}
}

func TestWeightKg_ZeroDensity(t *testing.T) {
	dim := Dimensions{LengthMM: 100, WidthMM: 100, ThicknessMM: 10}
	assert.Equal(t, 0.0, WeightKg(dim, 0))
}

func TestSurfaceAreaM2(t *testing.T) {
	dim := Dimensions{LengthMM: 1000, WidthMM: 500, ThicknessMM: 10}

	// 2*(1000*500 + 1000*10 + 500*10) = 1030000 mm2 = 1.03 m2
	assert.Equal(t, 1.03, SurfaceAreaM2(dim))
}

func TestSurfaceAreaM2_Rounding(t *testing.T) {
	dim := Dimensions{LengthMM: 123, WidthMM: 77, ThicknessMM: 6.35}

	// 2*(9471 + 781.05 + 488.95) = 21482 mm2 = 0.021482 -> 0.0215 m2
	assert.Equal(t, 0.0215, SurfaceAreaM2(dim))
}

func TestMaterialCost(t *testing.T) {
	cost := MaterialCost(2.0, steel)
	assert.True(t, types.MustMoney("5.00").Equal(cost))
}

func TestOperationsCost_RoundedComponentSum(t *testing.T) {
	opA := id.New()
	opB := id.New()
	ops := map[id.ID]OperationRef{
		opA: {ID: opA, Name: "Tratamiento", Unit: UnitFixed, UnitPrice: types.MustMoney("3.456")},
		opB: {ID: opB, Name: "Rectificado", Unit: UnitFixed, UnitPrice: types.MustMoney("1.111")},
	}
	selected := []SelectedOperation{
		{OperationID: opA, Value: 1},
		{OperationID: opB, Value: 1},
	}

	total, lines := OperationsCost(selected, ops)

	require.Len(t, lines, 2)
	// Each component rounds before summing: 3.46 + 1.11 = 4.57.
	assert.True(t, types.MustMoney("4.57").Equal(total), "got %s", total)
}

func TestOperationsCost_UnknownOperationKept(t *testing.T) {
	dangling := id.New()
	selected := []SelectedOperation{{OperationID: dangling, Value: 2}}

	total, lines := OperationsCost(selected, nil)

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Unknown)
	assert.Equal(t, UnknownOperationName, lines[0].Name)
	assert.True(t, total.IsZero())
}

func TestOperationsCost_ZeroPriceSkipped(t *testing.T) {
	opID := id.New()
	ops := map[id.ID]OperationRef{
		opID: {ID: opID, Name: "Pintura", Unit: UnitSquareMeter},
	}

	total, lines := OperationsCost([]SelectedOperation{{OperationID: opID, Value: 3}}, ops)

	require.Len(t, lines, 1)
	assert.True(t, total.IsZero())
	assert.True(t, lines[0].Cost.IsZero())
}

func TestOperationsCost_FixedUnitIgnoresValue(t *testing.T) {
	opID := id.New()
	ops := map[id.ID]OperationRef{
		opID: {ID: opID, Name: "Setup", Unit: UnitFixed, UnitPrice: types.MustMoney("10")},
	}

	total, _ := OperationsCost([]SelectedOperation{{OperationID: opID, Value: 5}}, ops)

	assert.True(t, types.MustMoney("10.00").Equal(total))
}

func TestCompute_RoundingOrder(t *testing.T) {
	// Material cost 12.345 and operations 3.456 and 1.111 must sum from
	// rounded components: 12.35 + 3.46 + 1.11 = 16.92, not 16.91.
	opA := id.New()
	opB := id.New()

	weight := 1.0
	in := Input{
		Material:       &MaterialRef{Name: "X", PricePerKg: types.MustMoney("12.345"), Density: 1},
		ManualWeightKg: &weight,
		Selected: []SelectedOperation{
			{OperationID: opA, Value: 1},
			{OperationID: opB, Value: 1},
		},
		Operations: map[id.ID]OperationRef{
			opA: {ID: opA, Unit: UnitFixed, UnitPrice: types.MustMoney("3.456")},
			opB: {ID: opB, Unit: UnitFixed, UnitPrice: types.MustMoney("1.111")},
		},
	}

	res := Compute(in)

	assert.True(t, types.MustMoney("16.92").Equal(res.UnitCost), "got %s", res.UnitCost)
}

func TestCompute_MissingMaterial(t *testing.T) {
	res := Compute(Input{
		Dimensions: Dimensions{LengthMM: 100, WidthMM: 100, ThicknessMM: 10},
	})

	assert.Equal(t, 0.0, res.WeightKg)
	assert.True(t, res.MaterialCost.IsZero())
	assert.True(t, res.UnitCost.IsZero())
}

func TestCompute_ManualWeight(t *testing.T) {
	weight := 4.2
	res := Compute(Input{
		Dimensions:     Dimensions{LengthMM: 100, WidthMM: 100, ThicknessMM: 10},
		Material:       &steel,
		ManualWeightKg: &weight,
	})

	assert.Equal(t, 4.2, res.WeightKg)
	assert.True(t, types.MustMoney("10.50").Equal(res.MaterialCost))
}

func TestDefaultValue(t *testing.T) {
	assert.Equal(t, 2.5, DefaultValue(UnitKilogram, 2.5, 0.75))
	assert.Equal(t, 0.75, DefaultValue(UnitSquareMeter, 2.5, 0.75))
	assert.Equal(t, 1.0, DefaultValue(UnitFixed, 2.5, 0.75))
	assert.Equal(t, 1.0, DefaultValue(UnitHoleCount, 2.5, 0.75))
}
