package cart

import (
	"errors"
	"testing"
)

func TestAdmit(t *testing.T) {
	tests := []struct {
		name      string
		available int
		inCart    int
		delta     int
		wantErr   error
	}{
		{"first unit", 5, 0, 1, nil},
		{"increase within stock", 5, 2, 2, nil},
		{"exact boundary allowed", 5, 4, 1, nil},
		{"whole stock at once", 5, 0, 5, nil},
		{"one past boundary", 5, 5, 1, &InsufficientStockError{Available: 5}},
		{"large jump", 5, 1, 10, &InsufficientStockError{Available: 5}},
		{"zero stock", 0, 0, 1, ErrOutOfStock},
		{"negative stock", -2, 0, 1, ErrOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Admit(tt.available, tt.inCart, tt.delta)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Admit() = %v, want nil", err)
				}
				return
			}
			if errors.Is(tt.wantErr, ErrOutOfStock) {
				if !errors.Is(err, ErrOutOfStock) {
					t.Fatalf("Admit() = %v, want ErrOutOfStock", err)
				}
				return
			}
			var insufficient *InsufficientStockError
			if !errors.As(err, &insufficient) {
				t.Fatalf("Admit() = %v, want InsufficientStockError", err)
			}
			if want := tt.wantErr.(*InsufficientStockError); insufficient.Available != want.Available {
				t.Errorf("Available = %d, want %d", insufficient.Available, want.Available)
			}
		})
	}
}

func TestAdmitOutOfStockWinsOverInsufficient(t *testing.T) {
	// With no stock at all the coarser rule fires even though the
	// insufficient-stock rule would also reject.
	err := Admit(0, 0, 3)
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("Admit() = %v, want ErrOutOfStock", err)
	}
}
