package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// Outcome reports whether a mutation changed the cart. Both values are successes.
type Outcome int

const (
	OutcomeApplied Outcome = iota + 1
	OutcomeNoOp
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNoOp:
		return "noop"
	default:
		return "unknown"
	}
}

// QtyPolicy validates a requested quantity before add or update.
type QtyPolicy func(qty int) error

// PermissiveQty accepts any quantity, including zero and negative values.
func PermissiveQty(int) error { return nil }

func StrictQty(qty int) error {
	if qty < 1 {
		return fmt.Errorf("qty[%d]: %w", qty, domain.ErrInvalidQty)
	}
	return nil
}

const maxOrderIDAttempts = 10

type CartService struct {
	repo     port.CartRepository
	catalog  port.ProductCatalog
	currency currency.Unit
	logger   *zap.Logger

	qtyPolicy  QtyPolicy
	now        func() time.Time
	newItemID  func() string
	newOrderID func() string

	mu     sync.Mutex
	issued map[string]struct{}
}

type Option func(*CartService)

func WithQtyPolicy(p QtyPolicy) Option {
	return func(s *CartService) { s.qtyPolicy = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *CartService) { s.now = now }
}

func WithItemIDs(next func() string) Option {
	return func(s *CartService) { s.newItemID = next }
}

func WithOrderIDs(next func() string) Option {
	return func(s *CartService) { s.newOrderID = next }
}

func WithCurrency(cur currency.Unit) Option {
	return func(s *CartService) { s.currency = cur }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *CartService) { s.logger = l }
}

func New(repo port.CartRepository, catalog port.ProductCatalog, opts ...Option) *CartService {
	s := &CartService{
		repo:       repo,
		catalog:    catalog,
		currency:   currency.INR,
		logger:     zap.NewNop(),
		qtyPolicy:  PermissiveQty,
		now:        time.Now,
		newItemID:  uuid.NewString,
		newOrderID: ShortOrderID,
		issued:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ShortOrderID returns the first 8 hex digits of a random UUID, upper-cased.
func ShortOrderID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

func (s *CartService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListProducts: %w", err)
	}
	return products, nil
}

func (s *CartService) GetCart(ctx context.Context) (domain.Cart, error) {
	items, err := s.repo.GetCart(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("repo.GetCart: %w", err)
	}

	return domain.Cart{
		Items: items,
		Total: domain.TotalOf(items, s.currency),
	}, nil
}

// AddItem merges qty into the existing line for productID or appends a new line
// with name and price copied from the catalog.
func (s *CartService) AddItem(ctx context.Context, productID string, qty int) error {
	if err := s.checkQty(qty); err != nil {
		return err
	}

	product, err := s.catalog.FindProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("catalog.FindProduct: %w", err)
	}

	err = s.repo.InTx(ctx, func(tx port.CartRepository) error {
		existing, ok, err := tx.FindByProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("tx.FindByProduct: %w", err)
		}

		if ok {
			if _, err := tx.SetQty(ctx, existing.ID, existing.Qty+qty); err != nil {
				return fmt.Errorf("tx.SetQty: %w", err)
			}
			return nil
		}

		item := domain.CartItem{
			ID:        s.newItemID(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       qty,
			CreatedAt: s.now(),
		}
		if err := tx.AddItem(ctx, item); err != nil {
			return fmt.Errorf("tx.AddItem: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.InTx: %w", err)
	}

	s.logger.Debug("cart item added", zap.String("product_id", productID), zap.Int("qty", qty))

	return nil
}

// UpdateItem overwrites the quantity of the line with itemID as given.
func (s *CartService) UpdateItem(ctx context.Context, itemID string, qty int) (Outcome, error) {
	if err := s.checkQty(qty); err != nil {
		return 0, err
	}

	updated, err := s.repo.SetQty(ctx, itemID, qty)
	if err != nil {
		return 0, fmt.Errorf("repo.SetQty: %w", err)
	}

	outcome := outcomeOf(updated)
	s.logger.Debug("cart item updated",
		zap.String("item_id", itemID),
		zap.Int("qty", qty),
		zap.Stringer("outcome", outcome),
	)

	return outcome, nil
}

func (s *CartService) RemoveItem(ctx context.Context, itemID string) (Outcome, error) {
	deleted, err := s.repo.DeleteItem(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("repo.DeleteItem: %w", err)
	}

	outcome := outcomeOf(deleted)
	s.logger.Debug("cart item removed", zap.String("item_id", itemID), zap.Stringer("outcome", outcome))

	return outcome, nil
}

// Checkout totals the cart, clears it and returns a receipt. An empty cart checks out with a zero total.
func (s *CartService) Checkout(ctx context.Context) (domain.Receipt, error) {
	orderID, err := s.mintOrderID()
	if err != nil {
		return domain.Receipt{}, err
	}

	removed, err := s.repo.Clear(ctx)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("repo.Clear: %w", err)
	}

	now := s.now()
	receipt := domain.Receipt{
		OrderID:   orderID,
		Total:     domain.TotalOf(removed, s.currency),
		Timestamp: now.Format(domain.ReceiptTimeLayout),
		CreatedAt: now,
	}

	s.logger.Info("checkout completed",
		zap.String("order_id", receipt.OrderID),
		zap.String("total", receipt.Total.Amount.String()),
		zap.Int("lines", len(removed)),
	)

	return receipt, nil
}

func (s *CartService) checkQty(qty int) error {
	if s.qtyPolicy == nil {
		return nil
	}
	return s.qtyPolicy(qty)
}

func (s *CartService) mintOrderID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for range maxOrderIDAttempts {
		id := s.newOrderID()
		if _, taken := s.issued[id]; taken {
			continue
		}
		s.issued[id] = struct{}{}
		return id, nil
	}

	return "", fmt.Errorf("no unused order ID after %d attempts", maxOrderIDAttempts)
}

func outcomeOf(changed bool) Outcome {
	if changed {
		return OutcomeApplied
	}
	return OutcomeNoOp
}
