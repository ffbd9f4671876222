package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateInvoiceNo generates a unique invoice number with the given prefix,
// e.g. "INV-" for sales and "PUR-" for purchases
func GenerateInvoiceNo(prefix string) string {
	return prefix + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateOrderNo generates a unique order reference
func GenerateOrderNo() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateBarcode generates a numeric barcode for products created without
// one. Thirteen digits, derived from random UUID bytes.
func GenerateBarcode() string {
	raw := uuid.New()
	var b strings.Builder
	b.Grow(13)
	for i := 0; i < 13; i++ {
		b.WriteByte('0' + raw[i]%10)
	}
	return b.String()
}
