package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request. Omitting the
// barcode lets the server generate one; omitting the selling price derives
// it from the buying price and margin.
type CreateProductRequest struct {
	SupplierID      *uuid.UUID `json:"supplier_id"`
	Name            string     `json:"name" binding:"required,min=2,max=255"`
	Barcode         string     `json:"barcode" binding:"omitempty,max=100"`
	BuyingPrice     float64    `json:"buying_price" binding:"min=0"`
	MarginPct       float64    `json:"margin_pct"`
	SellingPrice    float64    `json:"selling_price" binding:"min=0"`
	InitialQuantity int        `json:"initial_quantity" binding:"min=0"`
	MinQuantity     int        `json:"min_quantity" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	SupplierID   *uuid.UUID `json:"supplier_id"`
	Name         *string    `json:"name" binding:"omitempty,min=2,max=255"`
	BuyingPrice  *float64   `json:"buying_price" binding:"omitempty,min=0"`
	MarginPct    *float64   `json:"margin_pct"`
	SellingPrice *float64   `json:"selling_price" binding:"omitempty,min=0"`
	MinQuantity  *int       `json:"min_quantity" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	SupplierID string `form:"supplier_id"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
