// Package cart implements the in-progress transaction ledger: an ordered
// collection of line items composed on a POS or invoicing screen, together
// with the stock admission rules that keep it consistent with a live stock
// snapshot. A ledger never touches stock itself; stock only moves at
// invoice commit.
package cart

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfStock rejects any admission for a product with no stock left
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrDuplicateLineItem rejects re-selecting a product already in a
	// search-select ledger; the caller must edit the quantity instead
	ErrDuplicateLineItem = errors.New("product is already in the cart")

	// ErrLineNotFound is returned when a line id does not exist in the ledger
	ErrLineNotFound = errors.New("line item not found")
)

// InsufficientStockError rejects a quantity increase that would exceed the
// available stock snapshot
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: only %d available", e.Available)
}

// Admit decides whether delta more units of a product may enter a cart that
// already holds inCart of it, given the available stock snapshot. Rules in
// order: no stock at all, then cart total against the snapshot. The boundary
// inCart+delta == available is allowed.
//
// Admission is checked on every quantity increase and never on decreases or
// removals.
func Admit(available, inCart, delta int) error {
	if available <= 0 {
		return ErrOutOfStock
	}
	if inCart+delta > available {
		return &InsufficientStockError{Available: available}
	}
	return nil
}
