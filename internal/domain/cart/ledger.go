package cart

import (
	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/internal/domain/pricing"
)

// SelectMode controls how re-selecting a product already in the ledger
// behaves. Search-based selection (invoicing screens) rejects the duplicate;
// scan/click-based selection (POS) increments the existing line by one
// through the admission guard. The split mirrors the two selection surfaces
// and is intentional.
type SelectMode int

const (
	SelectSearch SelectMode = iota
	SelectScan
)

// ProductSnapshot carries the product fields copied into a line item at
// selection time. Quantity is the stock snapshot the admission guard checks
// against; it is re-validated against the store at commit.
type ProductSnapshot struct {
	ProductID    uuid.UUID
	Name         string
	Barcode      string
	BuyingPrice  float64
	MarginPct    float64
	SellingPrice float64
	Quantity     int
	MinQuantity  int
}

// LineItem is one product entry in a ledger. It exists only while the
// transaction is being composed and is frozen into invoice items at commit.
type LineItem struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	Name        string
	Barcode     string
	MinQuantity int
	InStock     int // stock snapshot from selection or the latest refresh
	pricing.Line
}

// Ledger is the ordered, uncommitted line item collection for one
// transaction-composition session. It is owned by a single session and is
// not safe for concurrent use.
type Ledger struct {
	kind  enum.InvoiceType
	mode  SelectMode
	lines []*LineItem
}

// NewLedger creates an empty ledger of the given flavor and selection mode
func NewLedger(kind enum.InvoiceType, mode SelectMode) *Ledger {
	return &Ledger{kind: kind, mode: mode}
}

// Kind returns the ledger flavor
func (l *Ledger) Kind() enum.InvoiceType {
	return l.kind
}

// Len returns the number of line items
func (l *Ledger) Len() int {
	return len(l.lines)
}

// Lines returns the line items in selection order
func (l *Ledger) Lines() []*LineItem {
	return l.lines
}

// Line returns the line item with the given id
func (l *Ledger) Line(lineID uuid.UUID) (*LineItem, error) {
	for _, li := range l.lines {
		if li.ID == lineID {
			return li, nil
		}
	}
	return nil, ErrLineNotFound
}

func (l *Ledger) findByProduct(productID uuid.UUID) *LineItem {
	for _, li := range l.lines {
		if li.ProductID == productID {
			return li
		}
	}
	return nil
}

// QuantityOf returns the quantity of a product already held in the ledger
func (l *Ledger) QuantityOf(productID uuid.UUID) int {
	if li := l.findByProduct(productID); li != nil {
		return li.Quantity
	}
	return 0
}

// guarded reports whether admission checks apply to this ledger. Purchase
// quantities are incoming stock and are never constrained by what is
// currently on hand.
func (l *Ledger) guarded() bool {
	return l.kind == enum.InvoiceTypeSale
}

// Select adds a product to the ledger with quantity 1. Selecting a product
// already present rejects with ErrDuplicateLineItem in search mode and
// increments the existing line by one through the admission guard in scan
// mode.
func (l *Ledger) Select(p ProductSnapshot) (*LineItem, error) {
	if existing := l.findByProduct(p.ProductID); existing != nil {
		if l.mode == SelectSearch {
			return nil, ErrDuplicateLineItem
		}
		if l.guarded() {
			if err := Admit(p.Quantity, existing.Quantity, 1); err != nil {
				return nil, err
			}
		}
		existing.InStock = p.Quantity
		existing.Quantity++
		existing.Total = pricing.LineTotal(&existing.Line, l.kind)
		return existing, nil
	}

	if l.guarded() {
		if err := Admit(p.Quantity, 0, 1); err != nil {
			return nil, err
		}
	}

	li := &LineItem{
		ID:          uuid.New(),
		ProductID:   p.ProductID,
		Name:        p.Name,
		Barcode:     p.Barcode,
		MinQuantity: p.MinQuantity,
		InStock:     p.Quantity,
		Line: pricing.Line{
			BuyingPrice:  p.BuyingPrice,
			MarginPct:    p.MarginPct,
			SellingPrice: p.SellingPrice,
			Quantity:     1,
		},
	}
	li.Total = pricing.LineTotal(&li.Line, l.kind)
	l.lines = append(l.lines, li)
	return li, nil
}

// RefreshStock updates a line's stock snapshot from a fresh product read.
// Quantity increases are admitted against the latest snapshot the caller
// provided.
func (l *Ledger) RefreshStock(productID uuid.UUID, available int) {
	if li := l.findByProduct(productID); li != nil {
		li.InStock = available
	}
}

// UpdateQuantity sets a line's quantity. Increases pass through the
// admission guard on sale ledgers; decreases never do. A quantity of zero
// or less removes the line.
func (l *Ledger) UpdateQuantity(lineID uuid.UUID, quantity int) error {
	li, err := l.Line(lineID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		l.remove(lineID)
		return nil
	}
	if delta := quantity - li.Quantity; delta > 0 && l.guarded() {
		if err := Admit(li.InStock, li.Quantity, delta); err != nil {
			return err
		}
	}
	li.Quantity = quantity
	li.Total = pricing.LineTotal(&li.Line, l.kind)
	return nil
}

// UpdateDiscount sets a line's discount percent, clamped to [0,100].
// Purchase line totals ignore discounts entirely.
func (l *Ledger) UpdateDiscount(lineID uuid.UUID, percent float64) error {
	li, err := l.Line(lineID)
	if err != nil {
		return err
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	li.DiscountPct = percent
	li.Total = pricing.LineTotal(&li.Line, l.kind)
	return nil
}

// UpdatePrice sets one of a line's price fields and reconciles the other
// two. An ErrDivisionGuard from the reconciler is passed through with the
// edit applied and the total recomputed.
func (l *Ledger) UpdatePrice(lineID uuid.UUID, field pricing.Field, value float64) error {
	li, err := l.Line(lineID)
	if err != nil {
		return err
	}
	switch field {
	case pricing.FieldBuyingPrice:
		li.BuyingPrice = value
	case pricing.FieldMarginPct:
		li.MarginPct = value
	case pricing.FieldSellingPrice:
		li.SellingPrice = value
	}
	return pricing.Reconcile(&li.Line, field, l.kind)
}

// Remove deletes a line item. Removal never consults the guard and never
// touches stock.
func (l *Ledger) Remove(lineID uuid.UUID) error {
	if _, err := l.Line(lineID); err != nil {
		return err
	}
	l.remove(lineID)
	return nil
}

func (l *Ledger) remove(lineID uuid.UUID) {
	for i, li := range l.lines {
		if li.ID == lineID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the ledger. Used after a successful commit or an explicit
// cancel; abandoning a cart has no stock or payment side effects.
func (l *Ledger) Clear() {
	l.lines = nil
}

// Totals recomputes the invoice totals from the current lines
func (l *Ledger) Totals() pricing.Totals {
	lines := make([]pricing.Line, len(l.lines))
	for i, li := range l.lines {
		lines[i] = li.Line
	}
	return pricing.ComputeTotals(lines, l.kind)
}
