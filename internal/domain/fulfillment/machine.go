// Package fulfillment governs the status transitions of externally-sourced
// orders and determines when the stock-deduction side effect fires.
package fulfillment

import (
	"errors"

	"github.com/sokoni/sokoni-api/internal/domain/enum"
)

var (
	// ErrTerminalState rejects any transition out of the completed status
	ErrTerminalState = errors.New("order is completed and cannot change status")

	// ErrInvalidTransition rejects transitions outside the
	// pending -> confirmed -> completed flow
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// Validate checks a requested status change. Allowed transitions are
// pending -> confirmed, confirmed -> completed and the direct
// pending -> completed shortcut for orders that skip confirmation.
// Completed is terminal, which also makes the completion side effect
// idempotent per order.
func Validate(from, to enum.OrderStatus) error {
	if from == enum.OrderStatusCompleted {
		return ErrTerminalState
	}
	switch {
	case from == enum.OrderStatusPending && to == enum.OrderStatusConfirmed:
		return nil
	case from == enum.OrderStatusPending && to == enum.OrderStatusCompleted:
		return nil
	case from == enum.OrderStatusConfirmed && to == enum.OrderStatusCompleted:
		return nil
	}
	return ErrInvalidTransition
}

// DeductsStock reports whether a valid transition fires the stock-deduction
// side effect. Only the transition into completed deducts; the order is
// assumed already reserved, so the admission guard is not consulted and each
// item's quantity comes straight off the product's stock.
func DeductsStock(from, to enum.OrderStatus) bool {
	return to == enum.OrderStatusCompleted && from != enum.OrderStatusCompleted
}
