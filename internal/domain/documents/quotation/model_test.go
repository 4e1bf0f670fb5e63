package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/catalogs/product"
)

func TestItemPrice(t *testing.T) {
	item := Item{
		Kind:          KindCustom,
		Description:   "Flete",
		Quantity:      3,
		BaseCost:      types.MustMoney("100"),
		MarkupPercent: types.MustMoney("25"),
	}
	item.Price()

	assert.True(t, types.MustMoney("125").Equal(item.UnitPrice), "got %s", item.UnitPrice)
	assert.True(t, types.MustMoney("375").Equal(item.TotalPrice), "got %s", item.TotalPrice)
}

func TestNewCatalogItem_SnapshotsProduct(t *testing.T) {
	p := product.NewProduct("P001", "Cuchilla sembradora")
	p.UnitCost = types.MustMoney("80")

	item := NewCatalogItem(p, 2, DefaultMarkupPercent)

	require.NotNil(t, item.ProductSnapshot)
	assert.Equal(t, KindCatalog, item.Kind)
	assert.True(t, types.MustMoney("80").Equal(item.BaseCost))
	assert.True(t, types.MustMoney("100").Equal(item.UnitPrice))
	assert.True(t, types.MustMoney("200").Equal(item.TotalPrice))

	// Later catalog edits must not leak into the snapshot.
	p.UnitCost = types.MustMoney("999")
	assert.True(t, types.MustMoney("80").Equal(item.ProductSnapshot.UnitCost))
}

func TestNewCustomItem_Rejected(t *testing.T) {
	_, err := NewCustomItem("", types.MustMoney("10"), 1, DefaultMarkupPercent)
	assert.Error(t, err, "empty description must be refused")

	_, err = NewCustomItem("Maquinado", types.Zero(), 1, DefaultMarkupPercent)
	assert.Error(t, err, "zero base cost must be refused")

	_, err = NewCustomItem("Maquinado", types.MustMoney("-5"), 1, DefaultMarkupPercent)
	assert.Error(t, err, "negative base cost must be refused")

	_, err = NewCustomItem("Maquinado", types.MustMoney("10"), 0, DefaultMarkupPercent)
	assert.Error(t, err, "zero quantity must be refused")

	_, err = NewCustomItem("Maquinado", types.MustMoney("10"), -2, DefaultMarkupPercent)
	assert.Error(t, err, "negative quantity must be refused")
}

func TestNewCatalogItem_ClampsQuantity(t *testing.T) {
	p := product.NewProduct("P001", "Cuchilla sembradora")
	p.UnitCost = types.MustMoney("80")

	item := NewCatalogItem(p, 0, DefaultMarkupPercent)

	assert.Equal(t, 1, item.Quantity)
	assert.True(t, types.MustMoney("100").Equal(item.TotalPrice), "got %s", item.TotalPrice)
}

func TestEnsureBaseCost_Idempotent(t *testing.T) {
	item := Item{
		Kind:     KindCustom,
		BaseCost: types.MustMoney("50"),
	}

	item.EnsureBaseCost()
	item.EnsureBaseCost()

	assert.True(t, types.MustMoney("50").Equal(item.BaseCost))
}

func TestEnsureBaseCost_FromSnapshot(t *testing.T) {
	p := product.NewProduct("P001", "Reja")
	p.UnitCost = types.MustMoney("42")

	item := Item{
		Kind:            KindCatalog,
		UnitPrice:       types.MustMoney("52.50"),
		MarkupPercent:   types.MustMoney("25"),
		ProductSnapshot: p,
	}

	item.EnsureBaseCost()

	assert.True(t, types.MustMoney("42").Equal(item.BaseCost))
}

func TestEnsureBaseCost_FromMarkupInversion(t *testing.T) {
	item := Item{
		Kind:          KindCustom,
		UnitPrice:     types.MustMoney("125"),
		MarkupPercent: types.MustMoney("25"),
	}

	item.EnsureBaseCost()

	assert.True(t, types.MustMoney("100").Equal(item.BaseCost), "got %s", item.BaseCost)
}

func TestEnsureBaseCost_FallsBackToUnitPrice(t *testing.T) {
	item := Item{
		Kind:      KindCustom,
		UnitPrice: types.MustMoney("60"),
	}

	item.EnsureBaseCost()

	assert.True(t, types.MustMoney("60").Equal(item.BaseCost))
}

func TestQuotationTotals(t *testing.T) {
	q := NewQuotation("Agroindustrias del Norte")

	itemA, err := NewCustomItem("Flete", types.MustMoney("100"), 1, types.MustMoney("0"))
	require.NoError(t, err)
	itemB, err := NewCustomItem("Maquinado", types.MustMoney("50"), 2, types.MustMoney("100"))
	require.NoError(t, err)

	q.AddItem(itemA)
	q.AddItem(itemB)

	// 100 + 2*100 = 300
	assert.True(t, types.MustMoney("300").Equal(q.TotalPrice), "got %s", q.TotalPrice)

	q.RemoveItem(itemB.ID)
	assert.True(t, types.MustMoney("100").Equal(q.TotalPrice))
}

func TestIsMonoproducto(t *testing.T) {
	p := product.NewProduct("P001", "Disco")
	p.UnitCost = types.MustMoney("10")

	q := NewQuotation("Cliente")
	q.AddItem(NewCatalogItem(p, 1, DefaultMarkupPercent))
	assert.True(t, q.IsMonoproducto())

	custom, err := NewCustomItem("Extra", types.MustMoney("5"), 1, DefaultMarkupPercent)
	require.NoError(t, err)
	q.AddItem(custom)
	assert.False(t, q.IsMonoproducto())
}

func TestStatusNormalize(t *testing.T) {
	assert.Equal(t, StatusPending, Status("").Normalize())
	assert.Equal(t, StatusWon, StatusWon.Normalize())
	assert.False(t, Status("archived").IsValid())
}
