// Package quotation provides the Quotation document: a client-facing
// priced proposal composed of catalog-linked or ad-hoc custom items.
package quotation

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/entity"
	"inventuagro/internal/core/id"
	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/catalogs/product"
)

// Status tracks the quotation lifecycle. Absence of a status is
// equivalent to pending everywhere statuses are filtered or grouped.
type Status string

const (
	StatusPending Status = "pending"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Normalize maps the empty status to pending.
func (s Status) Normalize() Status {
	if s == "" {
		return StatusPending
	}
	return s
}

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusWon, StatusLost, "":
		return true
	}
	return false
}

// ItemKind distinguishes catalog-linked items from ad-hoc custom ones.
type ItemKind string

const (
	KindCatalog ItemKind = "catalog"
	KindCustom  ItemKind = "custom"
)

// DefaultMarkupPercent is applied when no markup is given.
var DefaultMarkupPercent = decimal.NewFromInt(25)

// Item is one quotation line.
type Item struct {
	ID            id.ID       `json:"id"`
	Kind          ItemKind    `json:"kind"`
	Description   string      `json:"description"`
	Quantity      int         `json:"quantity"`
	BaseCost      types.Money `json:"baseCost"`
	MarkupPercent types.Money `json:"markupPercent"`
	UnitPrice     types.Money `json:"unitPrice"`
	TotalPrice    types.Money `json:"totalPrice"`

	// Catalog items carry the originating product id and a snapshot of
	// the full product record at quoting time, so later catalog edits
	// never retroactively change historical quotations.
	ProductID       *id.ID           `json:"productId,omitempty"`
	ProductSnapshot *product.Product `json:"productSnapshot,omitempty"`
}

// Price derives unit and total price from base cost, markup and quantity:
// unitPrice = baseCost * (1 + markup/100), totalPrice = unitPrice * qty.
func (i *Item) Price() {
	factor := decimal.NewFromInt(1).Add(i.MarkupPercent.Div(decimal.NewFromInt(100)))
	i.UnitPrice = i.BaseCost.Mul(factor)
	i.TotalPrice = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// EnsureBaseCost backfills a missing base cost on legacy or migrated
// items. Idempotent: a nonzero base cost is kept as is. Otherwise the
// catalog snapshot's unit cost wins, then the markup inversion
// unitPrice / (1 + markup/100), then the unit price itself.
func (i *Item) EnsureBaseCost() {
	if !i.BaseCost.IsZero() {
		return
	}

	switch {
	case i.Kind == KindCatalog && i.ProductSnapshot != nil:
		i.BaseCost = i.ProductSnapshot.UnitCost
	case i.MarkupPercent.IsPositive():
		factor := decimal.NewFromInt(1).Add(i.MarkupPercent.Div(decimal.NewFromInt(100)))
		i.BaseCost = i.UnitPrice.Div(factor)
	default:
		i.BaseCost = i.UnitPrice
	}
}

// NewCatalogItem builds an item from a catalog product, snapshotting the
// product's current record and unit cost.
func NewCatalogItem(p *product.Product, quantity int, markupPercent types.Money) Item {
	if quantity < 1 {
		quantity = 1
	}
	snapshot := *p
	pid := p.ID

	item := Item{
		ID:              id.New(),
		Kind:            KindCatalog,
		Description:     p.Name,
		Quantity:        quantity,
		BaseCost:        p.UnitCost,
		MarkupPercent:   markupPercent,
		ProductID:       &pid,
		ProductSnapshot: &snapshot,
	}
	item.Price()
	return item
}

// NewCustomItem builds an ad-hoc item. Custom items are refused, not
// silently repaired, when the description is empty or the base cost is
// not positive.
func NewCustomItem(description string, baseCost types.Money, quantity int, markupPercent types.Money) (Item, error) {
	if description == "" {
		return Item{}, apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}
	if !baseCost.IsPositive() {
		return Item{}, apperror.NewValidation("base cost must be positive").
			WithDetail("field", "baseCost")
	}
	if quantity < 1 {
		return Item{}, apperror.NewValidation("quantity must be at least 1").
			WithDetail("field", "quantity")
	}

	item := Item{
		ID:            id.New(),
		Kind:          KindCustom,
		Description:   description,
		Quantity:      quantity,
		BaseCost:      baseCost,
		MarkupPercent: markupPercent,
	}
	item.Price()
	return item, nil
}

// Attachment is a file attached to a quotation.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data,omitempty"`
}

// Quotation represents a priced proposal for a client.
type Quotation struct {
	entity.Document

	// ClientName as entered on the quotation
	ClientName string `db:"client_name" json:"clientName"`

	// Items is the ordered list of quotation lines (JSONB column)
	Items ItemList `db:"items" json:"items"`

	// TotalPrice is the sum of item totals
	TotalPrice types.Money `db:"total_price" json:"totalPrice"`

	// PaymentTerms free-form payment conditions
	PaymentTerms string `db:"payment_terms" json:"paymentTerms,omitempty"`

	// Status of the proposal; empty means pending
	Status Status `db:"status" json:"status,omitempty"`

	// Reason captures why the quotation was won or lost
	Reason string `db:"reason" json:"reason,omitempty"`

	// Notes free-form notes
	Notes string `db:"notes" json:"notes,omitempty"`

	// Attachments stored with the document (JSONB column)
	Attachments AttachmentList `db:"attachments" json:"attachments,omitempty"`
}

// NewQuotation creates a new quotation for a client.
func NewQuotation(clientName string) *Quotation {
	return &Quotation{
		Document:   entity.NewDocument(),
		ClientName: clientName,
		Items:      make(ItemList, 0),
		TotalPrice: types.Zero(),
	}
}

// AddItem appends an item and recalculates the total.
func (q *Quotation) AddItem(item Item) {
	q.Items = append(q.Items, item)
	q.RecalculateTotal()
}

// RemoveItem drops an item by id and recalculates the total.
func (q *Quotation) RemoveItem(itemID id.ID) {
	kept := q.Items[:0]
	for _, it := range q.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	q.Items = kept
	q.RecalculateTotal()
}

// RecalculateTotal updates the document total from item totals.
func (q *Quotation) RecalculateTotal() {
	total := decimal.Zero
	for _, it := range q.Items {
		total = total.Add(it.TotalPrice)
	}
	q.TotalPrice = total
}

// EnsureBaseCosts backfills missing item base costs on load. Running it
// again never changes an already-valid base cost.
func (q *Quotation) EnsureBaseCosts() {
	for idx := range q.Items {
		q.Items[idx].EnsureBaseCost()
	}
}

// IsMonoproducto reports whether the quotation consists of exactly one
// catalog-linked item with its product snapshot. Collaborators use it to
// switch to the detailed single-product layout.
func (q *Quotation) IsMonoproducto() bool {
	return len(q.Items) == 1 &&
		q.Items[0].Kind == KindCatalog &&
		q.Items[0].ProductSnapshot != nil
}

// Validate implements entity.Validatable.
func (q *Quotation) Validate(ctx context.Context) error {
	if err := q.Document.Validate(ctx); err != nil {
		return err
	}

	if q.ClientName == "" {
		return apperror.NewValidation("client name is required").
			WithDetail("field", "clientName")
	}

	if !q.Status.IsValid() {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(q.Status))
	}

	if len(q.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, item := range q.Items {
		if item.Quantity < 1 {
			return apperror.NewValidation("quantity must be at least 1").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// --- JSONB column types ---

// ItemList maps the items JSONB column.
type ItemList []Item

// Scan implements sql.Scanner.
func (l *ItemList) Scan(src any) error {
	return scanJSON(src, l, "ItemList")
}

// Value implements driver.Valuer.
func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// AttachmentList maps the attachments JSONB column.
type AttachmentList []Attachment

// Scan implements sql.Scanner.
func (l *AttachmentList) Scan(src any) error {
	return scanJSON(src, l, "AttachmentList")
}

// Value implements driver.Valuer.
func (l AttachmentList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
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
