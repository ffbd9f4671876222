package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sokoni/sokoni-api/internal/domain/cart"
	"github.com/sokoni/sokoni-api/internal/domain/entity"
	"github.com/sokoni/sokoni-api/internal/domain/enum"
	"github.com/sokoni/sokoni-api/internal/domain/pricing"
	"github.com/sokoni/sokoni-api/internal/domain/repository"
	"github.com/sokoni/sokoni-api/pkg/apperror"
)

// CartService owns the in-progress transaction ledgers. Each POS or
// invoicing session holds exactly one cart; carts live in memory only and
// abandoning one has no side effects on stock or payments, since stock is
// never reserved before commit.
type CartService struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*cartSession
	productRepo repository.ProductRepository
	invoices    *InvoiceService
}

type cartSession struct {
	mu     sync.Mutex
	ledger *cart.Ledger
}

// NewCartService creates a new cart service
func NewCartService(productRepo repository.ProductRepository, invoices *InvoiceService) *CartService {
	return &CartService{
		sessions:    make(map[uuid.UUID]*cartSession),
		productRepo: productRepo,
		invoices:    invoices,
	}
}

// CartView is the serializable state of a cart session
type CartView struct {
	SessionID uuid.UUID        `json:"session_id"`
	Type      enum.InvoiceType `json:"type"`
	Lines     []cart.LineItem  `json:"lines"`
	Totals    pricing.Totals   `json:"totals"`
}

func (s *CartService) view(id uuid.UUID, sess *cartSession) *CartView {
	lines := make([]cart.LineItem, 0, sess.ledger.Len())
	for _, li := range sess.ledger.Lines() {
		lines = append(lines, *li)
	}
	return &CartView{
		SessionID: id,
		Type:      sess.ledger.Kind(),
		Lines:     lines,
		Totals:    sess.ledger.Totals(),
	}
}

// Open starts a new cart session of the given flavor and selection mode
func (s *CartService) Open(kind enum.InvoiceType, mode cart.SelectMode) *CartView {
	id := uuid.New()
	sess := &cartSession{ledger: cart.NewLedger(kind, mode)}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return s.view(id, sess)
}

func (s *CartService) session(id uuid.UUID) (*cartSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperror.NewNotFoundError("Cart session")
	}
	return sess, nil
}

// Get returns the current cart state
func (s *CartService) Get(sessionID uuid.UUID) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sessionID, sess), nil
}

func snapshotOf(p *entity.Product) cart.ProductSnapshot {
	return cart.ProductSnapshot{
		ProductID:    p.ID,
		Name:         p.Name,
		Barcode:      p.Barcode,
		BuyingPrice:  p.BuyingPrice,
		MarginPct:    p.MarginPct,
		SellingPrice: p.SellingPrice,
		Quantity:     p.Quantity,
		MinQuantity:  p.MinQuantity,
	}
}

// SelectProduct adds a product to the cart by id (search-select path)
func (s *CartService) SelectProduct(ctx context.Context, sessionID, productID uuid.UUID) (*CartView, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return s.selectSnapshot(sessionID, snapshotOf(product))
}

// SelectByBarcode adds a product to the cart by barcode (POS scan path)
func (s *CartService) SelectByBarcode(ctx context.Context, sessionID uuid.UUID, barcode string) (*CartView, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return s.selectSnapshot(sessionID, snapshotOf(product))
}

func (s *CartService) selectSnapshot(sessionID uuid.UUID, snap cart.ProductSnapshot) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := sess.ledger.Select(snap); err != nil {
		return nil, err
	}
	return s.view(sessionID, sess), nil
}

// UpdateQuantity edits a line's quantity. The product is re-read so that
// increases are admitted against the store's latest stock value, not the
// selection-time snapshot.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, lineID uuid.UUID, quantity int) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	line, err := sess.ledger.Line(lineID)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, line.ProductID)
	if err != nil {
		return nil, err
	}
	if product != nil {
		sess.ledger.RefreshStock(line.ProductID, product.Quantity)
	}

	if err := sess.ledger.UpdateQuantity(lineID, quantity); err != nil {
		return nil, err
	}
	return s.view(sessionID, sess), nil
}

// UpdateDiscount edits a line's discount percent
func (s *CartService) UpdateDiscount(sessionID, lineID uuid.UUID, percent float64) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ledger.UpdateDiscount(lineID, percent); err != nil {
		return nil, err
	}
	return s.view(sessionID, sess), nil
}

// UpdatePrice edits one of a line's price fields and reconciles the others
func (s *CartService) UpdatePrice(sessionID, lineID uuid.UUID, field pricing.Field, value float64) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ledger.UpdatePrice(lineID, field, value); err != nil {
		return nil, err
	}
	return s.view(sessionID, sess), nil
}

// RemoveLine deletes a line from the cart
func (s *CartService) RemoveLine(sessionID, lineID uuid.UUID) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ledger.Remove(lineID); err != nil {
		return nil, err
	}
	return s.view(sessionID, sess), nil
}

// Cancel abandons the cart session. No stock or payment side effects.
func (s *CartService) Cancel(sessionID uuid.UUID) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	sess.ledger.Clear()
	sess.mu.Unlock()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// CommitCartInput carries the commit parameters for a cart session. The
// creator identity is explicit; it is never read from ambient state.
type CommitCartInput struct {
	CounterpartyID *uuid.UUID
	ReceivedAmount float64
	CreatedByID    uuid.UUID
	CreatorKind    enum.CreatorKind
}

// Commit freezes the cart into an invoice through the invoice service and
// drops the session on success. Commit is where stock moves and where the
// snapshot admission decisions are re-validated against the store.
func (s *CartService) Commit(ctx context.Context, sessionID uuid.UUID, input *CommitCartInput) (*entity.Invoice, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.ledger.Len() == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	invoice, err := s.invoices.Commit(ctx, &CommitInvoiceInput{
		Type:           sess.ledger.Kind(),
		CounterpartyID: input.CounterpartyID,
		Lines:          sess.ledger.Lines(),
		Totals:         sess.ledger.Totals(),
		ReceivedAmount: input.ReceivedAmount,
		CreatedByID:    input.CreatedByID,
		CreatorKind:    input.CreatorKind,
	})
	if err != nil {
		return nil, err
	}

	sess.ledger.Clear()
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return invoice, nil
}
