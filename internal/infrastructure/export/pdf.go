// Package export renders quotation documents to client-facing PDF files.
package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"inventuagro/internal/core/convert"
	"inventuagro/internal/core/id"
	"inventuagro/internal/domain/costing"
	"inventuagro/internal/domain/documents/quotation"
)

// OperationSource resolves operation ids to their reference data for the
// single-product process table. Lookups that miss render the unknown
// placeholder instead of failing the export.
type OperationSource interface {
	RefMap(ctx context.Context) (map[id.ID]costing.OperationRef, error)
}

// PDFConfig configures the renderer.
type PDFConfig struct {
	// CompanyName on the letterhead. Defaults to "INVENTU AGRO".
	CompanyName string

	// Operations is optional; without it process rows show placeholders.
	Operations OperationSource
}

// PDFRenderer renders quotations. A quotation with exactly one
// catalog-linked item gets the detailed single-product layout; everything
// else gets the plain item table.
type PDFRenderer struct {
	cfg PDFConfig
}

// Brand palette: green from the logo, dark grey for body text.
var (
	primaryColor = &props.Color{Red: 76, Green: 175, Blue: 80}
	greyColor    = &props.Color{Red: 120, Green: 120, Blue: 120}
	headerWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
	stripeGrey   = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// NewPDFRenderer creates a renderer.
func NewPDFRenderer(cfg PDFConfig) *PDFRenderer {
	if cfg.CompanyName == "" {
		cfg.CompanyName = "INVENTU AGRO"
	}
	return &PDFRenderer{cfg: cfg}
}

// Render produces the PDF bytes for one quotation.
func (r *PDFRenderer) Render(ctx context.Context, q *quotation.Quotation) ([]byte, error) {
	if len(q.Items) == 0 {
		return nil, fmt.Errorf("quotation %s has no items", q.Number)
	}

	m := maroto.New(config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build())

	r.addHeader(m, q)

	if q.IsMonoproducto() {
		r.addProductDetails(m, q.Items[0])
		r.addProcessTable(ctx, m, q.Items[0])
		r.addMonoSummary(m, q)
	} else {
		r.addItemTable(m, q)
		r.addTotal(m, q)
	}

	r.addPaymentAndNotes(m, q)
	r.addFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *PDFRenderer) addHeader(m core.Maroto, q *quotation.Quotation) {
	m.AddRows(
		row.New(12).Add(
			col.New(6).Add(
				text.New(r.cfg.CompanyName, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: primaryColor,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Fecha: %s", q.Date.Format("02/01/2006")), props.Text{
					Size:  9,
					Align: align.Right,
				}),
				text.New(fmt.Sprintf("Cotización: %s", q.Number), props.Text{
					Size:  9,
					Top:   5,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(10).Add(
			col.New(2).Add(
				text.New("CLIENTE:", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(10).Add(
				text.New(q.ClientName, props.Text{
					Size:  11,
					Align: align.Left,
				}),
			),
		),
		row.New(4),
	)
}

func tableHeaderRow(cells ...headerCell) core.Row {
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: headerWhite,
	}
	headerStyle := &props.Cell{BackgroundColor: primaryColor}

	cols := make([]core.Col, len(cells))
	for i, c := range cells {
		cols[i] = col.New(c.width).Add(text.New(c.label, headerText)).WithStyle(headerStyle)
	}
	return row.New(8).Add(cols...)
}

type headerCell struct {
	label string
	width int
}

// addItemTable renders the plain multi-product table.
func (r *PDFRenderer) addItemTable(m core.Maroto, q *quotation.Quotation) {
	m.AddRows(tableHeaderRow(
		headerCell{"Detalle", 6},
		headerCell{"Cantidad", 2},
		headerCell{"P. Unitario", 2},
		headerCell{"Subtotal", 2},
	))

	bodyText := props.Text{Size: 9, Align: align.Left}
	rightText := props.Text{Size: 9, Align: align.Right}

	for i, item := range q.Items {
		var style *props.Cell
		if i%2 == 1 {
			style = &props.Cell{BackgroundColor: stripeGrey}
		}

		cDesc := col.New(6).Add(text.New(item.Description, bodyText))
		cQty := col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), rightText))
		cUnit := col.New(2).Add(text.New("$"+item.UnitPrice.StringFixed(2), rightText))
		cTotal := col.New(2).Add(text.New("$"+item.TotalPrice.StringFixed(2), rightText))

		if style != nil {
			cDesc = cDesc.WithStyle(style)
			cQty = cQty.WithStyle(style)
			cUnit = cUnit.WithStyle(style)
			cTotal = cTotal.WithStyle(style)
		}

		m.AddRows(row.New(7).Add(cDesc, cQty, cUnit, cTotal))
	}
}

// addProductDetails renders the single-product specification table.
func (r *PDFRenderer) addProductDetails(m core.Maroto, item quotation.Item) {
	p := item.ProductSnapshot

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New("DETALLES DEL PRODUCTO", props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Color: primaryColor,
				}),
			),
		),
	)

	m.AddRows(tableHeaderRow(
		headerCell{"Especificación", 4},
		headerCell{"Detalle", 8},
	))

	specs := []struct{ label, value string }{
		{"Marca", p.Brand},
		{"Máquina", p.MachineType},
		{"Código / Ref", p.Reference},
		{"Material", p.MaterialName},
		{"Espesor", convert.FormatThickness(p.ThicknessMM)},
		{"Peso Unitario", fmt.Sprintf("%g kg", p.WeightKg)},
		{"Dimensiones", fmt.Sprintf("%g x %g mm", p.LengthMM, p.WidthMM)},
	}

	labelText := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	valueText := props.Text{Size: 9, Align: align.Left}

	for i, s := range specs {
		var style *props.Cell
		if i%2 == 1 {
			style = &props.Cell{BackgroundColor: stripeGrey}
		}

		cLabel := col.New(4).Add(text.New(s.label, labelText))
		cValue := col.New(8).Add(text.New(s.value, valueText))
		if style != nil {
			cLabel = cLabel.WithStyle(style)
			cValue = cValue.WithStyle(style)
		}

		m.AddRows(row.New(7).Add(cLabel, cValue))
	}

	m.AddRows(row.New(4))
}

// addProcessTable renders the selected operations of the snapshotted
// product. Dangling operation ids show the unknown placeholder.
func (r *PDFRenderer) addProcessTable(ctx context.Context, m core.Maroto, item quotation.Item) {
	selected := item.ProductSnapshot.SelectedOperations
	if len(selected) == 0 {
		return
	}

	var ops map[id.ID]costing.OperationRef
	if r.cfg.Operations != nil {
		// Best effort: a failed lookup degrades to placeholders.
		ops, _ = r.cfg.Operations.RefMap(ctx)
	}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New("PROCESOS REQUERIDOS", props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Color: primaryColor,
				}),
			),
		),
	)

	m.AddRows(tableHeaderRow(
		headerCell{"Proceso", 8},
		headerCell{"Cantidad", 4},
	))

	bodyText := props.Text{Size: 9, Align: align.Left}

	for i, sel := range selected {
		name := costing.UnknownOperationName
		unit := ""
		if ref, ok := ops[sel.OperationID]; ok {
			name = ref.Name
			unit = string(ref.Unit)
		}

		var style *props.Cell
		if i%2 == 1 {
			style = &props.Cell{BackgroundColor: stripeGrey}
		}

		cName := col.New(8).Add(text.New(name, bodyText))
		cQty := col.New(4).Add(text.New(fmt.Sprintf("%g %s", sel.Value, unit), bodyText))
		if style != nil {
			cName = cName.WithStyle(style)
			cQty = cQty.WithStyle(style)
		}

		m.AddRows(row.New(7).Add(cName, cQty))
	}

	m.AddRows(row.New(4))
}

// addMonoSummary renders the detailed single-product summary.
func (r *PDFRenderer) addMonoSummary(m core.Maroto, q *quotation.Quotation) {
	item := q.Items[0]

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New("RESUMEN DE COTIZACIÓN", props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Color: primaryColor,
				}),
			),
		),
	)

	labelText := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}
	valueText := props.Text{Size: 10, Align: align.Left}

	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New("Precio Unitario:", labelText)),
			col.New(8).Add(text.New(fmt.Sprintf("$%s USD + IVA", item.UnitPrice.StringFixed(2)), valueText)),
		),
		row.New(7).Add(
			col.New(4).Add(text.New("Cantidad:", labelText)),
			col.New(8).Add(text.New(fmt.Sprintf("%d unidades", item.Quantity), valueText)),
		),
		row.New(9).Add(
			col.New(4).Add(text.New("Precio Final:", props.Text{Size: 12, Style: fontstyle.Bold})),
			col.New(8).Add(text.New(fmt.Sprintf("$%s USD + IVA", q.TotalPrice.StringFixed(2)), props.Text{Size: 12, Style: fontstyle.Bold})),
		),
	)
}

// addTotal renders the multi-product grand total line.
func (r *PDFRenderer) addTotal(m core.Maroto, q *quotation.Quotation) {
	m.AddRows(
		row.New(6),
		row.New(9).Add(
			col.New(4).Add(
				text.New("PRECIO TOTAL FINAL:", props.Text{Size: 12, Style: fontstyle.Bold}),
			),
			col.New(8).Add(
				text.New(fmt.Sprintf("$%s USD + IVA", q.TotalPrice.StringFixed(2)), props.Text{Size: 12, Style: fontstyle.Bold}),
			),
		),
	)
}

func (r *PDFRenderer) addPaymentAndNotes(m core.Maroto, q *quotation.Quotation) {
	terms := q.PaymentTerms
	if terms == "" {
		terms = "No especificada"
	}

	m.AddRows(
		row.New(4),
		row.New(7).Add(
			col.New(4).Add(
				text.New("Condición de Pago:", props.Text{Size: 10, Style: fontstyle.Bold}),
			),
			col.New(8).Add(
				text.New(terms, props.Text{Size: 10}),
			),
		),
	)

	if len(q.Attachments) > 0 {
		names := make([]string, len(q.Attachments))
		for i, a := range q.Attachments {
			names[i] = a.Name
		}
		m.AddRows(
			row.New(7).Add(
				col.New(4).Add(
					text.New("Documentos Adjuntos:", props.Text{Size: 9, Style: fontstyle.Bold}),
				),
				col.New(8).Add(
					text.New(strings.Join(names, ", "), props.Text{Size: 9}),
				),
			),
		)
	}

	if q.Notes != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New("Notas adicionales: "+q.Notes, props.Text{
						Size:  9,
						Style: fontstyle.Italic,
					}),
				),
			),
		)
	}
}

func (r *PDFRenderer) addFooter(m core.Maroto) {
	m.AddRows(
		row.New(8),
		row.New(5).Add(
			col.New(12).Add(
				text.New("Valores expresados en USD (Dólar Oficial Banco Nación)", props.Text{
					Size:  8,
					Align: align.Center,
					Color: greyColor,
				}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New("Inventu Agro - Gracias por confiar en nosotros.", props.Text{
					Size:  8,
					Align: align.Center,
					Color: greyColor,
				}),
			),
		),
	)
}
