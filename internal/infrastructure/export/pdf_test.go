package export

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventuagro/internal/core/id"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/domain/costing"
	"inventuagro/internal/domain/documents/quotation"
)

type stubOperationSource struct {
	refs map[id.ID]costing.OperationRef
}

func (s *stubOperationSource) RefMap(ctx context.Context) (map[id.ID]costing.OperationRef, error) {
	return s.refs, nil
}

func testProduct() *product.Product {
	p := product.NewProduct("P001", "Cuchilla rotativa")
	p.Brand = "Metalbert"
	p.MachineType = "Cuchilla Desmalezadora"
	p.Reference = "CR-011"
	p.LengthMM = 200
	p.WidthMM = 80
	p.ThicknessMM = 6.35
	p.WeightKg = 0.8
	p.MaterialName = "Acero 1045"
	p.UnitCost = decimal.NewFromInt(12)
	return p
}

func TestRender_MultiProduct(t *testing.T) {
	q := quotation.NewQuotation("Agro del Sur")
	q.Number = "InventuAgro260830-01"

	item, err := quotation.NewCustomItem("Reja carpidora", decimal.NewFromInt(100), 3, decimal.NewFromInt(25))
	require.NoError(t, err)
	q.AddItem(item)
	q.AddItem(quotation.NewCatalogItem(testProduct(), 2, decimal.NewFromInt(30)))

	r := NewPDFRenderer(PDFConfig{})
	pdf, err := r.Render(context.Background(), q)

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRender_Monoproducto(t *testing.T) {
	p := testProduct()
	opID := id.New()
	p.SelectedOperations = []costing.SelectedOperation{
		{OperationID: opID, Value: 0.8},
		{OperationID: id.New(), Value: 2}, // dangling, renders placeholder
	}

	q := quotation.NewQuotation("Talleres Oncativo")
	q.Number = "InventuAgro260830-02"
	q.PaymentTerms = "50% anticipo"
	q.Notes = "Entrega en 15 días"
	q.AddItem(quotation.NewCatalogItem(p, 10, decimal.NewFromInt(25)))
	require.True(t, q.IsMonoproducto())

	ops := &stubOperationSource{refs: map[id.ID]costing.OperationRef{
		opID: {ID: opID, Name: "Tratamiento térmico", Unit: costing.UnitKilogram, UnitPrice: decimal.NewFromInt(2)},
	}}

	r := NewPDFRenderer(PDFConfig{CompanyName: "INVENTU AGRO", Operations: ops})
	pdf, err := r.Render(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRender_EmptyQuotationFails(t *testing.T) {
	q := quotation.NewQuotation("Sin items")

	r := NewPDFRenderer(PDFConfig{})
	_, err := r.Render(context.Background(), q)

	assert.Error(t, err)
}
