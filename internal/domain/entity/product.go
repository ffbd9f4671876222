package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog entry with its live stock counter.
//
// Quantity is the only field transaction flows mutate: committed sales
// decrement it, approved purchases and completed orders settle against it.
// InitialQuantity and MinQuantity are configuration and are never touched
// by the engine.
type Product struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID      *uuid.UUID     `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Barcode         string         `gorm:"size:100;unique;not null" json:"barcode"`
	BuyingPrice     float64        `gorm:"type:decimal(15,2);default:0" json:"buying_price"`
	SellingPrice    float64        `gorm:"type:decimal(15,2);default:0" json:"selling_price"`
	MarginPct       float64        `gorm:"type:decimal(8,2);default:0" json:"margin_pct"` // may be negative when selling below cost
	InitialQuantity int            `gorm:"default:0" json:"initial_quantity"`
	Quantity        int            `gorm:"default:0" json:"quantity"`
	MinQuantity     int            `gorm:"default:0" json:"min_quantity"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product has reached its reorder threshold
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinQuantity
}
