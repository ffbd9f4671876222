package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/pkg/pagination"
)

// InvoiceRepository is the store port for committed invoices. Invoices are
// never mutated in place after commit except through UpdateAmountPaid,
// which backs the payment tracker's add-payment operation.
type InvoiceRepository interface {
	// Create persists the invoice and its frozen items in one transaction
	Create(ctx context.Context, invoice *entity.Invoice, items []entity.InvoiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// UpdateAmountPaid sets the new amount paid; callers guarantee it is
	// non-decreasing
	UpdateAmountPaid(ctx context.Context, id uuid.UUID, amountPaid float64) error
	// GetUnpaid lists invoices with outstanding debt
	GetUnpaid(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination     *pagination.PaginationParams
	Type           *enum.InvoiceType
	CounterpartyID *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	SortBy         string
	SortOrder      string
}
