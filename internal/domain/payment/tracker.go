// Package payment implements the payment/debt lifecycle of a single
// invoice: the settlement computed at commit time and the bounds on
// partial payments added afterwards.
package payment

import "errors"

var (
	// ErrNegativePayment rejects payments below zero
	ErrNegativePayment = errors.New("payment amount cannot be negative")

	// ErrOverpayment rejects a payment that would push amount paid past
	// the invoice total
	ErrOverpayment = errors.New("payment exceeds remaining debt")

	// ErrAlreadyPaid rejects a positive payment on a fully paid invoice
	ErrAlreadyPaid = errors.New("invoice is already fully paid")
)

// Status is the payment state of an invoice
type Status int

const (
	StatusUnpaid Status = iota
	StatusPartiallyPaid
	StatusPaid
)

func (s Status) String() string {
	switch s {
	case StatusPartiallyPaid:
		return "partially_paid"
	case StatusPaid:
		return "paid"
	}
	return "unpaid"
}

// Settlement is the outcome of handing over an amount against an invoice
// total at commit time. At most one of RemainingDebt and Change is positive.
type Settlement struct {
	AmountPaid    float64 `json:"amount_paid"`
	RemainingDebt float64 `json:"remaining_debt"`
	Change        float64 `json:"change"`
}

// Settle computes the commit-time settlement for a received amount. An
// amount above the total is recorded in full, with the excess returned as
// change.
func Settle(total, received float64) (Settlement, error) {
	if received < 0 {
		return Settlement{}, ErrNegativePayment
	}
	s := Settlement{AmountPaid: received}
	if debt := total - received; debt > 0 {
		s.RemainingDebt = debt
	} else {
		s.Change = -debt
	}
	return s, nil
}

// Tracker mirrors the store's payment rules for one committed invoice.
// The store remains authoritative; a server rejection always wins over the
// local mirror.
type Tracker struct {
	Total      float64
	AmountPaid float64
}

// Status derives the payment state from the amounts
func (t *Tracker) Status() Status {
	switch {
	case t.AmountPaid >= t.Total:
		return StatusPaid
	case t.AmountPaid > 0:
		return StatusPartiallyPaid
	default:
		return StatusUnpaid
	}
}

// RemainingDebt returns total - paid when positive
func (t *Tracker) RemainingDebt() float64 {
	if d := t.Total - t.AmountPaid; d > 0 {
		return d
	}
	return 0
}

// Change returns paid - total when positive. A commit that records a
// received amount above the total leaves the excess visible here.
func (t *Tracker) Change() float64 {
	if c := t.AmountPaid - t.Total; c > 0 {
		return c
	}
	return 0
}

// State reports the settlement view of the tracked amounts
func (t *Tracker) State() Settlement {
	return Settlement{
		AmountPaid:    t.AmountPaid,
		RemainingDebt: t.RemainingDebt(),
		Change:        t.Change(),
	}
}

// Add applies a further payment. Negative amounts are rejected; a zero
// amount is a meaningless no-op, never an error; a positive amount on a
// fully paid invoice is rejected independently of the overpayment bound;
// anything that would exceed the total is rejected. Amount paid only ever
// grows.
func (t *Tracker) Add(amount float64) error {
	if amount < 0 {
		return ErrNegativePayment
	}
	if amount == 0 {
		return nil
	}
	if t.AmountPaid >= t.Total {
		return ErrAlreadyPaid
	}
	if t.AmountPaid+amount > t.Total {
		return ErrOverpayment
	}
	t.AmountPaid += amount
	return nil
}
