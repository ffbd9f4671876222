package request

import "github.com/google/uuid"

// OrderItemRequest is one item of an incoming storefront order
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest records a storefront order
type CreateOrderRequest struct {
	ClientID      *uuid.UUID         `json:"client_id"`
	PaymentMethod string             `json:"payment_method" binding:"omitempty,oneof=cash card transfer"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SetOrderStatusRequest drives the fulfillment state machine
type SetOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Status    string `form:"status"`
	ClientID  string `form:"client_id"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
