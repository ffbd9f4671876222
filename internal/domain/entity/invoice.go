package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice is the persisted record of a committed transaction.
//
// AmountPaid is monotonically non-decreasing after commit; further payments
// go through the payment tracker and may only grow it up to Total.
type Invoice struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo      string           `gorm:"size:100;unique;not null" json:"invoice_no"`
	Type           enum.InvoiceType `gorm:"default:0" json:"type"`
	CounterpartyID *uuid.UUID       `gorm:"type:uuid;index" json:"counterparty_id,omitempty"` // supplier or client, nil for walk-in
	Total          float64          `gorm:"type:decimal(15,2);default:0" json:"total"`
	AmountPaid     float64          `gorm:"type:decimal(15,2);default:0" json:"amount_paid"`
	CreatedByID    uuid.UUID        `gorm:"type:uuid;not null;column:created_by" json:"created_by"`
	CreatorKind    enum.CreatorKind `gorm:"default:1" json:"creator_kind"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	CreatedBy *User         `gorm:"foreignKey:CreatedByID" json:"created_by_user,omitempty"`
	Items     []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// RemainingDebt returns the outstanding amount, zero when fully paid
func (i *Invoice) RemainingDebt() float64 {
	if d := i.Total - i.AmountPaid; d > 0 {
		return d
	}
	return 0
}

// InvoiceItem is a frozen copy of a cart line item at commit time
type InvoiceItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Name        string         `gorm:"size:255;not null" json:"name"` // copied at selection time for display stability
	Barcode     string         `gorm:"size:100" json:"barcode"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"` // selling price on sales, buying price on purchases
	DiscountPct float64        `gorm:"type:decimal(5,2);default:0" json:"discount_pct"`
	Total       float64        `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
