package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/internal/domain/fulfillment"
)

func newOrderFixture(t *testing.T, stock int) (*OrderService, *fakeProductRepo, *entity.Product, *entity.Order) {
	t.Helper()

	product := &entity.Product{ID: uuid.New(), Name: "Rice 5kg", Barcode: "6009876500012", SellingPrice: 700, Quantity: stock}
	productRepo := newFakeProductRepo(product)
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, newFakeClientRepo())

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		PaymentMethod: enum.PaymentCash,
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	return svc, productRepo, product, order
}

func TestCreateOrder(t *testing.T) {
	_, _, product, order := newOrderFixture(t, 10)

	if order.Status != enum.OrderStatusPending {
		t.Errorf("status = %v, want pending", order.Status)
	}
	if order.Total != 2100 {
		t.Errorf("total = %v, want 2100", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].UnitPrice != 700 {
		t.Errorf("items = %+v, want one item at current selling price", order.Items)
	}
	// Recording an order never touches stock.
	if product.Quantity != 10 {
		t.Errorf("stock = %d, want 10", product.Quantity)
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(), newFakeClientRepo())
	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Items: []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	if err == nil {
		t.Fatal("CreateOrder() with unknown product succeeded")
	}
}

func TestSetStatusConfirmDoesNotTouchStock(t *testing.T) {
	svc, productRepo, product, order := newOrderFixture(t, 10)

	updated, err := svc.SetStatus(context.Background(), order.ID, enum.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}
	if updated.Status != enum.OrderStatusConfirmed {
		t.Errorf("status = %v, want confirmed", updated.Status)
	}
	if product.Quantity != 10 {
		t.Errorf("stock = %d, want 10", product.Quantity)
	}
	if productRepo.plainDecrements != 0 {
		t.Errorf("decrement batches = %d, want 0", productRepo.plainDecrements)
	}
}

func TestSetStatusCompleteDeductsOnce(t *testing.T) {
	svc, productRepo, product, order := newOrderFixture(t, 10)

	if _, err := svc.SetStatus(context.Background(), order.ID, enum.OrderStatusConfirmed); err != nil {
		t.Fatalf("confirm error: %v", err)
	}
	if _, err := svc.SetStatus(context.Background(), order.ID, enum.OrderStatusCompleted); err != nil {
		t.Fatalf("complete error: %v", err)
	}

	if product.Quantity != 7 {
		t.Errorf("stock after completion = %d, want 7", product.Quantity)
	}
	if productRepo.plainDecrements != 1 {
		t.Errorf("decrement batches = %d, want 1", productRepo.plainDecrements)
	}

	// Completed is terminal; a repeat completion cannot deduct again.
	if _, err := svc.SetStatus(context.Background(), order.ID, enum.OrderStatusCompleted); !errors.Is(err, fulfillment.ErrTerminalState) {
		t.Fatalf("repeat completion = %v, want ErrTerminalState", err)
	}
	if product.Quantity != 7 {
		t.Errorf("stock after repeat completion = %d, want 7", product.Quantity)
	}
}

func TestSetStatusCompleteSumsDuplicateProductLines(t *testing.T) {
	// Orders accept several lines for the same product; completion must
	// deduct the sum of their quantities, not the last line's.
	product := &entity.Product{ID: uuid.New(), Name: "Rice 5kg", Barcode: "6009876500012", SellingPrice: 700, Quantity: 10}
	productRepo := newFakeProductRepo(product)
	svc := NewOrderService(newFakeOrderRepo(), productRepo, newFakeClientRepo())

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		PaymentMethod: enum.PaymentCash,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 3},
			{ProductID: product.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	if order.Total != 3500 {
		t.Errorf("total = %v, want 3500", order.Total)
	}

	if _, err := svc.SetStatus(context.Background(), order.ID, enum.OrderStatusCompleted); err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}
	if product.Quantity != 5 {
		t.Errorf("stock after completion = %d, want 5", product.Quantity)
	}
}

func TestSetStatusPendingStraightToCompleted(t *testing.T) {
	svc, _, product, order := newOrderFixture(t, 10)

	if _, err := svc.SetStatus(context.Background(), order.ID, enum.OrderStatusCompleted); err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}
	if product.Quantity != 7 {
		t.Errorf("stock = %d, want 7", product.Quantity)
	}
}

func TestSetStatusCompletionUnguarded(t *testing.T) {
	// The order is assumed reserved, so completion deducts even past zero.
	svc, _, product, order := newOrderFixture(t, 1)

	if _, err := svc.SetStatus(context.Background(), order.ID, enum.OrderStatusCompleted); err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}
	if product.Quantity != -2 {
		t.Errorf("stock = %d, want -2", product.Quantity)
	}
}

func TestSetStatusInvalidTransition(t *testing.T) {
	svc, _, _, order := newOrderFixture(t, 10)

	if _, err := svc.SetStatus(context.Background(), order.ID, enum.OrderStatusPending); !errors.Is(err, fulfillment.ErrInvalidTransition) {
		t.Fatalf("SetStatus(pending) = %v, want ErrInvalidTransition", err)
	}
}

func TestSetStatusRestoresStockOnPersistFailure(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Rice 5kg", Barcode: "6009876500012", SellingPrice: 700, Quantity: 10}
	productRepo := newFakeProductRepo(product)
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, newFakeClientRepo())

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}

	orderRepo.updateStatusErr = errors.New("connection reset")
	if _, err := svc.SetStatus(context.Background(), order.ID, enum.OrderStatusCompleted); err == nil {
		t.Fatal("SetStatus() succeeded, want persist error")
	}
	if product.Quantity != 10 {
		t.Errorf("stock = %d, want restored 10", product.Quantity)
	}
}
