package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

// Store is the process-wide line item collection. The zero value is an empty cart.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func NewStore() *Store {
	return &Store{}
}

func withTx[T any](ctx context.Context, store *Store, r *cartRepository, fn func(r *cartRepository) (T, error)) (_ T, txErr error) {
	var zero T

	// If we're already in a transaction (store is nil), just use the working copy
	if store == nil {
		return fn(r)
	}

	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("begin tx: %w", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	work := slices.Clone(store.items)
	rtx := &cartRepository{work: &work}

	result, err := fn(rtx)
	if err != nil {
		// the working copy is dropped, store.items is untouched
		return zero, err
	}

	store.items = work

	return result, nil
}
