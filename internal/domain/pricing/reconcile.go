// Package pricing holds the pure price math shared by the POS, sale
// invoicing and purchase invoicing flows: the buying-price / margin /
// selling-price reconciliation and the invoice totals fold.
package pricing

import (
	"errors"

	"github.com/sokoni/sokoni-api/internal/domain/enum"
)

// ErrDivisionGuard is returned when a selling-price edit cannot derive a
// margin because the buying price is zero. The margin is left unchanged
// rather than silently corrected.
var ErrDivisionGuard = errors.New("cannot derive margin: buying price is zero")

// Field identifies which price field was edited by the user
type Field int

const (
	FieldBuyingPrice Field = iota
	FieldMarginPct
	FieldSellingPrice
)

// Line is the price state of a single cart line item
type Line struct {
	BuyingPrice  float64
	MarginPct    float64
	SellingPrice float64
	Quantity     int
	DiscountPct  float64 // sale flavor only
	Total        float64
}

// Reconcile recomputes the derived price fields of l after edited changed,
// keeping selling = buying * (1 + margin/100). Editing the selling price
// derives the margin instead and leaves the buying price untouched.
// Reapplying with the same edited field and value is a no-op.
//
// The line total is always recomputed, even on the zero-buying-price edge
// where ErrDivisionGuard is returned.
func Reconcile(l *Line, edited Field, kind enum.InvoiceType) error {
	var err error
	switch edited {
	case FieldBuyingPrice, FieldMarginPct:
		l.SellingPrice = l.BuyingPrice * (1 + l.MarginPct/100)
	case FieldSellingPrice:
		if l.BuyingPrice == 0 {
			err = ErrDivisionGuard
		} else {
			l.MarginPct = (l.SellingPrice - l.BuyingPrice) / l.BuyingPrice * 100
		}
	}
	l.Total = LineTotal(l, kind)
	return err
}

// LineTotal computes the line total: cost basis for purchase lines,
// discounted selling value for sale lines.
func LineTotal(l *Line, kind enum.InvoiceType) float64 {
	if kind == enum.InvoiceTypePurchase {
		return l.BuyingPrice * float64(l.Quantity)
	}
	return l.SellingPrice * float64(l.Quantity) * (1 - l.DiscountPct/100)
}

// MarginFor derives the margin percent from a buying/selling price pair.
// Returns 0 when the buying price is zero.
func MarginFor(buying, selling float64) float64 {
	if buying == 0 {
		return 0
	}
	return (selling - buying) / buying * 100
}
