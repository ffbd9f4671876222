package request

import "github.com/google/uuid"

// OpenCartRequest starts a cart session. Type is "sale" or "purchase";
// SelectMode is "search" (invoicing screens, duplicates rejected) or "scan"
// (POS, duplicates increment).
type OpenCartRequest struct {
	Type       string `json:"type" binding:"required,oneof=sale purchase"`
	SelectMode string `json:"select_mode" binding:"omitempty,oneof=search scan"`
}

// SelectProductRequest adds a product to a cart, by id or by barcode
type SelectProductRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Barcode   string     `json:"barcode"`
}

// UpdateQuantityRequest edits a line's quantity; zero or less removes the line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateDiscountRequest edits a line's discount percent
type UpdateDiscountRequest struct {
	DiscountPct float64 `json:"discount_pct"`
}

// UpdatePriceRequest edits one of a line's price fields
type UpdatePriceRequest struct {
	Field string  `json:"field" binding:"required,oneof=buying_price margin_pct selling_price"`
	Value float64 `json:"value"`
}

// CommitCartRequest commits a cart into an invoice
type CommitCartRequest struct {
	CounterpartyID *uuid.UUID `json:"counterparty_id"`
	ReceivedAmount float64    `json:"received_amount" binding:"min=0"`
}
