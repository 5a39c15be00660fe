package port

import (
	"context"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context) ([]domain.CartItem, error)
	FindByProduct(ctx context.Context, productID string) (domain.CartItem, bool, error)
	AddItem(ctx context.Context, item domain.CartItem) error
	SetQty(ctx context.Context, itemID string, qty int) (bool, error)
	DeleteItem(ctx context.Context, itemID string) (bool, error)
	Clear(ctx context.Context) ([]domain.CartItem, error)

	// InTx runs fn against a repository bound to a single transaction.
	// Changes made through it become visible only if fn returns nil.
	InTx(ctx context.Context, fn func(repo CartRepository) error) error
}
