package enum

import "testing"

func TestOrderStatusString(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   string
	}{
		{OrderStatusPending, "pending"},
		{OrderStatusConfirmed, "confirmed"},
		{OrderStatusCompleted, "completed"},
		{OrderStatus(7), "unknown"},
		{OrderStatus(-1), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("OrderStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestInvoiceTypeString(t *testing.T) {
	tests := []struct {
		kind InvoiceType
		want string
	}{
		{InvoiceTypePurchase, "purchase"},
		{InvoiceTypeSale, "sale"},
		{InvoiceType(5), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("InvoiceType(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCreatorKindString(t *testing.T) {
	tests := []struct {
		kind CreatorKind
		want string
	}{
		{CreatorKindAdmin, "admin"},
		{CreatorKindEmployee, "employee"},
		{CreatorKind(3), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("CreatorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
