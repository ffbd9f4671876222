package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/cart"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/internal/domain/payment"
	"github.com/sokoni/sokoni-api/internal/domain/pricing"
	"github.com/sokoni/sokoni-api/internal/domain/repository"
	"github.com/sokoni/sokoni-api/pkg/apperror"
	"github.com/sokoni/sokoni-api/pkg/pagination"
	"github.com/sokoni/sokoni-api/pkg/utils"
)

// InvoiceService commits carts into invoices and applies post-commit
// payments
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	clientRepo   repository.ClientRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	clientRepo repository.ClientRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		clientRepo:   clientRepo,
	}
}

// CommitInvoiceInput carries a frozen ledger into commit
type CommitInvoiceInput struct {
	Type           enum.InvoiceType
	CounterpartyID *uuid.UUID // supplier for purchases, client for sales, nil for walk-in
	Lines          []*cart.LineItem
	Totals         pricing.Totals
	ReceivedAmount float64
	CreatedByID    uuid.UUID
	CreatorKind    enum.CreatorKind
}

// Commit persists a composed transaction. Sale commits re-validate the
// cart's snapshot stock checks against the store with an atomic
// decrement-if-enough batch; a failure there is a StoreConflictError, never
// a silent retry. Purchase commits increment stock by the incoming
// quantities.
func (s *InvoiceService) Commit(ctx context.Context, input *CommitInvoiceInput) (*entity.Invoice, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Cannot commit an empty invoice")
	}

	if err := s.checkCounterparty(ctx, input.Type, input.CounterpartyID); err != nil {
		return nil, err
	}

	settlement, err := payment.Settle(input.Totals.Total, input.ReceivedAmount)
	if err != nil {
		return nil, err
	}

	items := make([]entity.InvoiceItem, 0, len(input.Lines))
	stockDeltas := make(map[uuid.UUID]int, len(input.Lines))
	for _, line := range input.Lines {
		unitPrice := line.SellingPrice
		if input.Type == enum.InvoiceTypePurchase {
			unitPrice = line.BuyingPrice
		}
		items = append(items, entity.InvoiceItem{
			ProductID:   line.ProductID,
			Name:        line.Name,
			Barcode:     line.Barcode,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			DiscountPct: line.DiscountPct,
			Total:       line.Total,
		})
		stockDeltas[line.ProductID] = line.Quantity
	}

	// Move stock before writing the invoice so a conflicting session can
	// never oversell between the two steps
	if input.Type == enum.InvoiceTypeSale {
		failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDeltas)
		if err != nil {
			return nil, err
		}
		if len(failedIDs) > 0 {
			return nil, &StoreConflictError{ProductIDs: failedIDs}
		}
	} else {
		if err := s.productRepo.AtomicIncrementBatch(ctx, stockDeltas); err != nil {
			return nil, err
		}
	}

	prefix := "INV-"
	if input.Type == enum.InvoiceTypePurchase {
		prefix = "PUR-"
	}

	invoice := &entity.Invoice{
		InvoiceNo:      utils.GenerateInvoiceNo(prefix),
		Type:           input.Type,
		CounterpartyID: input.CounterpartyID,
		Total:          input.Totals.Total,
		AmountPaid:     settlement.AmountPaid,
		CreatedByID:    input.CreatedByID,
		CreatorKind:    input.CreatorKind,
	}

	if err := s.invoiceRepo.Create(ctx, invoice, items); err != nil {
		// Stock already moved, restore it
		if input.Type == enum.InvoiceTypeSale {
			_ = s.productRepo.AtomicIncrementBatch(ctx, stockDeltas)
		} else {
			_ = s.productRepo.DecrementBatch(ctx, stockDeltas)
		}
		return nil, err
	}

	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

func (s *InvoiceService) checkCounterparty(ctx context.Context, kind enum.InvoiceType, id *uuid.UUID) error {
	if id == nil {
		return nil // walk-in
	}
	if kind == enum.InvoiceTypePurchase {
		supplier, err := s.supplierRepo.GetByID(ctx, *id)
		if err != nil {
			return err
		}
		if supplier == nil {
			return apperror.NewNotFoundError("Supplier")
		}
		return nil
	}
	client, err := s.clientRepo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	return nil
}

// AddPayment applies a further payment to a committed invoice under the
// payment tracker's rules. The local tracker mirrors the store's rules for
// immediate feedback; the updated row read back from the store stays
// authoritative.
func (s *InvoiceService) AddPayment(ctx context.Context, invoiceID uuid.UUID, amount float64) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	tracker := payment.Tracker{Total: invoice.Total, AmountPaid: invoice.AmountPaid}
	if err := tracker.Add(amount); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.UpdateAmountPaid(ctx, invoiceID, tracker.AmountPaid); err != nil {
		return nil, err
	}

	invoice.AmountPaid = tracker.AmountPaid
	return invoice, nil
}

// GetInvoice retrieves an invoice with its frozen items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// GetUnpaidInvoices lists invoices with outstanding debt
func (s *InvoiceService) GetUnpaidInvoices(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.GetUnpaid(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}
