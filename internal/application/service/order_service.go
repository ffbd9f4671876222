package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/internal/domain/fulfillment"
	"github.com/sokoni/sokoni-api/internal/domain/repository"
	"github.com/sokoni/sokoni-api/pkg/apperror"
	"github.com/sokoni/sokoni-api/pkg/pagination"
	"github.com/sokoni/sokoni-api/pkg/utils"
)

// OrderService manages externally-sourced orders and their fulfillment
// lifecycle
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
	}
}

// OrderItemInput represents an item in an incoming order
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	ClientID      *uuid.UUID
	PaymentMethod enum.PaymentMethod
	Items         []OrderItemInput
}

// CreateOrder records a storefront order in the pending status. Items are
// priced at the product's current selling price; stock is untouched until
// the order completes.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order has no items")
	}

	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var total float64
	orderItems := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError("Product")
		}
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}
		itemTotal := product.SellingPrice * float64(item.Quantity)
		total += itemTotal
		orderItems = append(orderItems, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.SellingPrice,
			Total:     itemTotal,
		})
	}

	order := &entity.Order{
		OrderNo:       utils.GenerateOrderNo(),
		ClientID:      input.ClientID,
		Status:        enum.OrderStatusPending,
		PaymentMethod: input.PaymentMethod,
		Total:         total,
	}

	if err := s.orderRepo.Create(ctx, order, orderItems); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// SetStatus drives the fulfillment state machine. Transitioning into
// completed deducts each item's quantity from stock without consulting the
// admission guard: the order is assumed already reserved. The terminal
// check on completed orders makes the deduction exactly-once per order;
// no other transition touches stock.
func (s *OrderService) SetStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if err := fulfillment.Validate(order.Status, status); err != nil {
		return nil, err
	}

	var decrements map[uuid.UUID]int
	if fulfillment.DeductsStock(order.Status, status) {
		decrements = make(map[uuid.UUID]int, len(order.Items))
		for _, item := range order.Items {
			// sum, not assign: an order may carry several lines for the
			// same product
			decrements[item.ProductID] += item.Quantity
		}
		if err := s.productRepo.DecrementBatch(ctx, decrements); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		// Stock already deducted, restore it
		if decrements != nil {
			_ = s.productRepo.AtomicIncrementBatch(ctx, decrements)
		}
		return nil, err
	}

	order.Status = status
	return order, nil
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}
