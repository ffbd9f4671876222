package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/internal/domain/repository"
	"github.com/sokoni/sokoni-api/pkg/pagination"
)

// In-memory repository fakes. They mirror the store contract the gorm
// implementations honor, in particular the decrement-if-enough semantics of
// AtomicDecrementBatch.

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product

	atomicDecrements int
	atomicIncrements int
	plainDecrements  int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) GetLowStock(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) AtomicDecrementBatch(_ context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	r.atomicDecrements++
	var failedIDs []uuid.UUID
	for id, qty := range decrements {
		p, ok := r.products[id]
		if !ok || p.Quantity < qty {
			failedIDs = append(failedIDs, id)
		}
	}
	if len(failedIDs) > 0 {
		return failedIDs, nil
	}
	for id, qty := range decrements {
		r.products[id].Quantity -= qty
	}
	return nil, nil
}

func (r *fakeProductRepo) AtomicIncrementBatch(_ context.Context, increments map[uuid.UUID]int) error {
	r.atomicIncrements++
	for id, qty := range increments {
		if p, ok := r.products[id]; ok {
			p.Quantity += qty
		}
	}
	return nil
}

func (r *fakeProductRepo) DecrementBatch(_ context.Context, decrements map[uuid.UUID]int) error {
	r.plainDecrements++
	for id, qty := range decrements {
		if p, ok := r.products[id]; ok {
			p.Quantity -= qty
		}
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
	items    map[uuid.UUID][]entity.InvoiceItem

	createErr error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[uuid.UUID]*entity.Invoice),
		items:    make(map[uuid.UUID][]entity.InvoiceItem),
	}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice, items []entity.InvoiceItem) error {
	if r.createErr != nil {
		return r.createErr
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices[invoice.ID] = invoice
	r.items[invoice.ID] = items
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	out := *invoice
	out.Items = r.items[id]
	return &out, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, _ *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var out []entity.Invoice
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) UpdateAmountPaid(_ context.Context, id uuid.UUID, amountPaid float64) error {
	if inv, ok := r.invoices[id]; ok {
		inv.AmountPaid = amountPaid
	}
	return nil
}

func (r *fakeInvoiceRepo) GetUnpaid(_ context.Context, _ *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	var out []entity.Invoice
	for _, inv := range r.invoices {
		if inv.RemainingDebt() > 0 {
			out = append(out, *inv)
		}
	}
	return out, int64(len(out)), nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	items  map[uuid.UUID][]entity.OrderItem

	updateStatusErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uuid.UUID]*entity.Order),
		items:  make(map[uuid.UUID][]entity.OrderItem),
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order, items []entity.OrderItem) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = order
	r.items[order.ID] = items
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	out := *order
	out.Items = r.items[id]
	return &out, nil
}

func (r *fakeOrderRepo) List(_ context.Context, _ *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if r.updateStatusErr != nil {
		return r.updateStatusErr
	}
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	r := &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
	for _, s := range suppliers {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		r.suppliers[s.ID] = s
	}
	return r
}

func (r *fakeSupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, supplier *entity.Supplier) error {
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Supplier, int64, error) {
	var out []entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
	for _, c := range clients {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.clients[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Client, int64, error) {
	var out []entity.Client
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}
