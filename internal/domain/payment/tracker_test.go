package payment

import (
	"errors"
	"math"
	"testing"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		received float64
		want     Settlement
		wantErr  error
	}{
		{"exact payment", 500, 500, Settlement{AmountPaid: 500}, nil},
		{"partial payment", 1000, 600, Settlement{AmountPaid: 600, RemainingDebt: 400}, nil},
		{"nothing received", 800, 0, Settlement{RemainingDebt: 800}, nil},
		{"overpayment returns change", 500, 600, Settlement{AmountPaid: 600, Change: 100}, nil},
		{"negative rejected", 500, -1, Settlement{}, ErrNegativePayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Settle(tt.total, tt.received)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Settle() error = %v, want %v", err, tt.wantErr)
			}
			if math.Abs(got.AmountPaid-tt.want.AmountPaid) > 1e-9 ||
				math.Abs(got.RemainingDebt-tt.want.RemainingDebt) > 1e-9 ||
				math.Abs(got.Change-tt.want.Change) > 1e-9 {
				t.Errorf("Settle() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettleDebtChangeExclusive(t *testing.T) {
	for _, received := range []float64{0, 250, 500, 750} {
		s, err := Settle(500, received)
		if err != nil {
			t.Fatalf("Settle(500, %v) error: %v", received, err)
		}
		if s.RemainingDebt > 0 && s.Change > 0 {
			t.Errorf("Settle(500, %v) has both debt %v and change %v", received, s.RemainingDebt, s.Change)
		}
	}
}

func TestTrackerStatus(t *testing.T) {
	tests := []struct {
		name string
		tr   Tracker
		want Status
	}{
		{"unpaid", Tracker{Total: 1000}, StatusUnpaid},
		{"partially paid", Tracker{Total: 1000, AmountPaid: 600}, StatusPartiallyPaid},
		{"paid", Tracker{Total: 1000, AmountPaid: 1000}, StatusPaid},
		{"zero total is paid", Tracker{}, StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackerAdd(t *testing.T) {
	tr := Tracker{Total: 1000, AmountPaid: 600}

	if err := tr.Add(500); !errors.Is(err, ErrOverpayment) {
		t.Fatalf("Add(500) = %v, want ErrOverpayment", err)
	}
	if tr.AmountPaid != 600 {
		t.Errorf("amount paid after rejected add = %v, want 600", tr.AmountPaid)
	}
	if tr.RemainingDebt() != 400 {
		t.Errorf("remaining debt = %v, want 400", tr.RemainingDebt())
	}

	if err := tr.Add(400); err != nil {
		t.Fatalf("Add(400) error: %v", err)
	}
	if tr.Status() != StatusPaid {
		t.Errorf("status = %v, want paid", tr.Status())
	}
	if tr.RemainingDebt() != 0 {
		t.Errorf("remaining debt = %v, want 0", tr.RemainingDebt())
	}
}

func TestTrackerAddOnPaidInvoice(t *testing.T) {
	tr := Tracker{Total: 500, AmountPaid: 500}

	if err := tr.Add(1); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("Add(1) = %v, want ErrAlreadyPaid", err)
	}
	// A zero add on a paid invoice is a no-op, not an error.
	if err := tr.Add(0); err != nil {
		t.Fatalf("Add(0) = %v, want nil", err)
	}
	if tr.AmountPaid != 500 {
		t.Errorf("amount paid = %v, want 500", tr.AmountPaid)
	}
}

func TestTrackerAddZeroOnOverpaidInvoice(t *testing.T) {
	// A commit that received 600 against a 500 total records the full
	// amount; a later zero add must stay a no-op, not an overpayment.
	tr := Tracker{Total: 500, AmountPaid: 600}

	if err := tr.Add(0); err != nil {
		t.Fatalf("Add(0) = %v, want nil", err)
	}
	if tr.AmountPaid != 600 {
		t.Errorf("amount paid = %v, want 600", tr.AmountPaid)
	}
	if err := tr.Add(1); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("Add(1) = %v, want ErrAlreadyPaid", err)
	}
}

func TestTrackerState(t *testing.T) {
	tests := []struct {
		name string
		tr   Tracker
		want Settlement
	}{
		{"unpaid", Tracker{Total: 800}, Settlement{RemainingDebt: 800}},
		{"partial", Tracker{Total: 1000, AmountPaid: 600}, Settlement{AmountPaid: 600, RemainingDebt: 400}},
		{"exact", Tracker{Total: 500, AmountPaid: 500}, Settlement{AmountPaid: 500}},
		{"overpaid reports change", Tracker{Total: 500, AmountPaid: 600}, Settlement{AmountPaid: 600, Change: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.State()
			if math.Abs(got.AmountPaid-tt.want.AmountPaid) > 1e-9 ||
				math.Abs(got.RemainingDebt-tt.want.RemainingDebt) > 1e-9 ||
				math.Abs(got.Change-tt.want.Change) > 1e-9 {
				t.Errorf("State() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTrackerAddNegative(t *testing.T) {
	tr := Tracker{Total: 500}
	if err := tr.Add(-10); !errors.Is(err, ErrNegativePayment) {
		t.Fatalf("Add(-10) = %v, want ErrNegativePayment", err)
	}
}
