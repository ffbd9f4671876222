package pricing

import "github.com/sokoni/sokoni-api/internal/domain/enum"

// Totals aggregates the computed invoice components
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	DiscountTotal float64 `json:"discount_total"`
	Total         float64 `json:"total"`
}

// ComputeTotals folds the lines of a ledger into invoice totals. The unit
// price is the selling price for sale ledgers and the buying price for
// purchase ledgers; purchase ledgers carry no discounts. The calculator is
// stateless, callers recompute after every line change.
func ComputeTotals(lines []Line, kind enum.InvoiceType) Totals {
	var t Totals
	for i := range lines {
		l := &lines[i]
		unit := l.SellingPrice
		if kind == enum.InvoiceTypePurchase {
			unit = l.BuyingPrice
		}
		gross := unit * float64(l.Quantity)
		t.Subtotal += gross
		if kind == enum.InvoiceTypeSale {
			t.DiscountTotal += gross * l.DiscountPct / 100
		}
	}
	t.Total = t.Subtotal - t.DiscountTotal
	return t
}
