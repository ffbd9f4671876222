package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/pkg/pagination"
)

// ProductRepository is the store port for products and their stock
// counters. The engine treats stock reads as snapshots; the atomic batch
// operations are the commit-time contract the store must honor so that
// concurrent sessions cannot oversell ("decrement if enough, else fail").
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)
	// AtomicDecrementBatch decrements stock for multiple products only where
	// enough is on hand. Returns the product IDs that failed; if any fail the
	// whole batch is rolled back.
	AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
	// AtomicIncrementBatch increments stock for multiple products (purchase
	// commits, restocks).
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error
	// DecrementBatch decrements stock unconditionally. Used by order
	// completion, where the stock is assumed already reserved.
	DecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SupplierID *uuid.UUID
	LowStock   bool
	SortBy     string
	SortOrder  string
}
