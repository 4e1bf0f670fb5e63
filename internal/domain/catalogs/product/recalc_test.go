package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/id"
	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/costing"
)

func steelRef() *costing.MaterialRef {
	return &costing.MaterialRef{Name: "Acero 1045", PricePerKg: types.MustMoney("2.50"), Density: 7850}
}

func TestRecalculate_DerivesWeightAndCost(t *testing.T) {
	p := NewProduct("P001", "Cuchilla")
	p.LengthMM, p.WidthMM, p.ThicknessMM = 200, 100, 12.7
	p.MaterialName = "Acero 1045"

	Recalculate(p, steelRef(), nil)

	assert.Equal(t, 2.0, p.WeightKg)
	assert.True(t, types.MustMoney("5.00").Equal(p.UnitCost), "got %s", p.UnitCost)
}

func TestRecalculate_PreservesSavedOperationValues(t *testing.T) {
	opID := id.New()
	ops := map[id.ID]costing.OperationRef{
		opID: {ID: opID, Name: "Templado", Unit: costing.UnitKilogram, UnitPrice: types.MustMoney("1.00")},
	}

	p := NewProduct("P002", "Punta")
	p.LengthMM, p.WidthMM, p.ThicknessMM = 200, 100, 12.7
	p.MaterialName = "Acero 1045"
	p.SelectedOperations = OperationSelections{{OperationID: opID, Value: 4.0}}

	Recalculate(p, steelRef(), ops)
	weightBefore := p.WeightKg

	// Editing the thickness changes the derived weight, but the saved
	// kg-operation quantity must stay at 4.0.
	p.ThicknessMM = 25.4
	Recalculate(p, steelRef(), ops)

	assert.Greater(t, p.WeightKg, weightBefore)
	require.Len(t, p.SelectedOperations, 1)
	assert.Equal(t, 4.0, p.SelectedOperations[0].Value)
}

func TestRecalculate_ManualOverrides(t *testing.T) {
	p := NewProduct("P003", "Disco")
	p.LengthMM, p.WidthMM, p.ThicknessMM = 200, 100, 12.7
	p.MaterialName = "Acero 1045"
	p.ManualWeight = true
	p.WeightKg = 9.9
	p.ManualPrice = true
	p.UnitCost = types.MustMoney("123.45")

	Recalculate(p, steelRef(), nil)

	assert.Equal(t, 9.9, p.WeightKg)
	assert.True(t, types.MustMoney("123.45").Equal(p.UnitCost))
}

func TestRecalculate_MaterialMiss(t *testing.T) {
	p := NewProduct("P004", "Buje")
	p.LengthMM, p.WidthMM, p.ThicknessMM = 100, 50, 10
	p.MaterialName = "Inexistente"

	Recalculate(p, nil, nil)

	assert.Equal(t, 0.0, p.WeightKg)
	assert.True(t, p.UnitCost.IsZero())
}

func TestSelectOperation_AutoPopulatesValue(t *testing.T) {
	p := NewProduct("P005", "Placa")
	p.LengthMM, p.WidthMM, p.ThicknessMM = 1000, 500, 10
	p.WeightKg = 39.3

	kgOp := costing.OperationRef{ID: id.New(), Unit: costing.UnitKilogram, UnitPrice: types.MustMoney("1")}
	m2Op := costing.OperationRef{ID: id.New(), Unit: costing.UnitSquareMeter, UnitPrice: types.MustMoney("1")}
	fixedOp := costing.OperationRef{ID: id.New(), Unit: costing.UnitFixed, UnitPrice: types.MustMoney("1")}

	SelectOperation(p, kgOp)
	SelectOperation(p, m2Op)
	SelectOperation(p, fixedOp)

	require.Len(t, p.SelectedOperations, 3)
	assert.Equal(t, 39.3, p.SelectedOperations[0].Value)
	assert.Equal(t, 1.03, p.SelectedOperations[1].Value)
	assert.Equal(t, 1.0, p.SelectedOperations[2].Value)
}

func TestSelectOperation_ExistingSelectionWins(t *testing.T) {
	opRef := costing.OperationRef{ID: id.New(), Unit: costing.UnitKilogram, UnitPrice: types.MustMoney("1")}

	p := NewProduct("P006", "Eje")
	p.WeightKg = 7.0
	p.SelectedOperations = OperationSelections{{OperationID: opRef.ID, Value: 4.0}}

	SelectOperation(p, opRef)

	require.Len(t, p.SelectedOperations, 1)
	assert.Equal(t, 4.0, p.SelectedOperations[0].Value)
}

func TestDeselectOperation(t *testing.T) {
	keep := id.New()
	drop := id.New()

	p := NewProduct("P007", "Base")
	p.SelectedOperations = OperationSelections{
		{OperationID: keep, Value: 1},
		{OperationID: drop, Value: 2},
	}

	DeselectOperation(p, drop)

	require.Len(t, p.SelectedOperations, 1)
	assert.Equal(t, keep, p.SelectedOperations[0].OperationID)
}
