package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/cart"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
)

func newCartFixture(products ...*entity.Product) (*CartService, *fakeProductRepo, *fakeInvoiceRepo) {
	productRepo := newFakeProductRepo(products...)
	invoiceRepo := newFakeInvoiceRepo()
	invoices := NewInvoiceService(invoiceRepo, productRepo, newFakeSupplierRepo(), newFakeClientRepo())
	return NewCartService(productRepo, invoices), productRepo, invoiceRepo
}

func TestCartSaleFlow(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Sugar 1kg", Barcode: "6005554443332", BuyingPrice: 100, MarginPct: 20, SellingPrice: 120, Quantity: 10}
	svc, _, _ := newCartFixture(product)

	view := svc.Open(enum.InvoiceTypeSale, cart.SelectSearch)
	if view.SessionID == uuid.Nil {
		t.Fatal("session id not assigned")
	}

	view, err := svc.SelectProduct(context.Background(), view.SessionID, product.ID)
	if err != nil {
		t.Fatalf("SelectProduct() error: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 1 {
		t.Fatalf("lines = %+v, want one line of quantity 1", view.Lines)
	}

	lineID := view.Lines[0].ID
	view, err = svc.UpdateQuantity(context.Background(), view.SessionID, lineID, 4)
	if err != nil {
		t.Fatalf("UpdateQuantity() error: %v", err)
	}
	view, err = svc.UpdateDiscount(view.SessionID, lineID, 25)
	if err != nil {
		t.Fatalf("UpdateDiscount() error: %v", err)
	}

	if math.Abs(view.Totals.Subtotal-480) > 1e-9 {
		t.Errorf("subtotal = %v, want 480", view.Totals.Subtotal)
	}
	if math.Abs(view.Totals.Total-360) > 1e-9 {
		t.Errorf("total = %v, want 360", view.Totals.Total)
	}
}

func TestCartSelectByBarcode(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Sugar 1kg", Barcode: "6005554443332", SellingPrice: 120, Quantity: 5}
	svc, _, _ := newCartFixture(product)

	view := svc.Open(enum.InvoiceTypeSale, cart.SelectScan)
	view, err := svc.SelectByBarcode(context.Background(), view.SessionID, product.Barcode)
	if err != nil {
		t.Fatalf("SelectByBarcode() error: %v", err)
	}
	// Repeat scans increment the same line.
	view, err = svc.SelectByBarcode(context.Background(), view.SessionID, product.Barcode)
	if err != nil {
		t.Fatalf("second scan error: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("lines = %+v, want one line of quantity 2", view.Lines)
	}
}

func TestCartUpdateQuantityUsesLiveStock(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Sugar 1kg", Barcode: "6005554443332", SellingPrice: 120, Quantity: 5}
	svc, _, _ := newCartFixture(product)

	view := svc.Open(enum.InvoiceTypeSale, cart.SelectSearch)
	view, err := svc.SelectProduct(context.Background(), view.SessionID, product.ID)
	if err != nil {
		t.Fatalf("SelectProduct() error: %v", err)
	}

	// Stock dropped after selection; the increase is checked against the
	// live value, not the selection-time snapshot.
	product.Quantity = 2
	lineID := view.Lines[0].ID
	_, err = svc.UpdateQuantity(context.Background(), view.SessionID, lineID, 4)
	var insufficient *cart.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("UpdateQuantity() = %v, want InsufficientStockError", err)
	}
	if insufficient.Available != 2 {
		t.Errorf("Available = %d, want live stock 2", insufficient.Available)
	}
}

func TestCartCancelHasNoSideEffects(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Sugar 1kg", Barcode: "6005554443332", SellingPrice: 120, Quantity: 5}
	svc, productRepo, invoiceRepo := newCartFixture(product)

	view := svc.Open(enum.InvoiceTypeSale, cart.SelectSearch)
	if _, err := svc.SelectProduct(context.Background(), view.SessionID, product.ID); err != nil {
		t.Fatalf("SelectProduct() error: %v", err)
	}

	if err := svc.Cancel(view.SessionID); err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	if product.Quantity != 5 {
		t.Errorf("stock = %d, want 5", product.Quantity)
	}
	if productRepo.atomicDecrements != 0 {
		t.Errorf("decrement batches = %d, want 0", productRepo.atomicDecrements)
	}
	if len(invoiceRepo.invoices) != 0 {
		t.Errorf("invoices = %d, want 0", len(invoiceRepo.invoices))
	}
	if _, err := svc.Get(view.SessionID); err == nil {
		t.Error("Get() after cancel succeeded, want not found")
	}
}

func TestCartCommitDropsSession(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Sugar 1kg", Barcode: "6005554443332", BuyingPrice: 100, MarginPct: 20, SellingPrice: 120, Quantity: 5}
	svc, _, _ := newCartFixture(product)

	view := svc.Open(enum.InvoiceTypeSale, cart.SelectSearch)
	if _, err := svc.SelectProduct(context.Background(), view.SessionID, product.ID); err != nil {
		t.Fatalf("SelectProduct() error: %v", err)
	}

	invoice, err := svc.Commit(context.Background(), view.SessionID, &CommitCartInput{
		ReceivedAmount: 120,
		CreatedByID:    uuid.New(),
		CreatorKind:    enum.CreatorKindAdmin,
	})
	if err != nil {
		t.Fatalf("Commit() error: %v", err)
	}
	if invoice.AmountPaid != 120 {
		t.Errorf("amount paid = %v, want 120", invoice.AmountPaid)
	}
	if product.Quantity != 4 {
		t.Errorf("stock = %d, want 4", product.Quantity)
	}
	if _, err := svc.Get(view.SessionID); err == nil {
		t.Error("Get() after commit succeeded, want not found")
	}
}

func TestCartCommitConflictKeepsSession(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Sugar 1kg", Barcode: "6005554443332", SellingPrice: 120, Quantity: 1}
	svc, _, _ := newCartFixture(product)

	view := svc.Open(enum.InvoiceTypeSale, cart.SelectSearch)
	if _, err := svc.SelectProduct(context.Background(), view.SessionID, product.ID); err != nil {
		t.Fatalf("SelectProduct() error: %v", err)
	}

	// Another session drains the stock between selection and commit.
	product.Quantity = 0

	_, err := svc.Commit(context.Background(), view.SessionID, &CommitCartInput{CreatedByID: uuid.New()})
	var conflict *StoreConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Commit() = %v, want StoreConflictError", err)
	}
	// The session survives a rejected commit so the clerk can fix the cart.
	if _, err := svc.Get(view.SessionID); err != nil {
		t.Errorf("Get() after conflict = %v, want session alive", err)
	}
}

func TestCartCommitEmpty(t *testing.T) {
	svc, _, _ := newCartFixture()
	view := svc.Open(enum.InvoiceTypeSale, cart.SelectSearch)
	if _, err := svc.Commit(context.Background(), view.SessionID, &CommitCartInput{CreatedByID: uuid.New()}); err == nil {
		t.Fatal("Commit() of empty cart succeeded")
	}
}
