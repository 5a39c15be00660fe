package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
)

type cartRepository struct {
	store *Store
	work  *[]domain.CartItem
}

func NewCart(store *Store) port.CartRepository {
	return &cartRepository{
		store: store,
	}
}

func (r *cartRepository) GetCart(ctx context.Context) ([]domain.CartItem, error) {
	return withTx(ctx, r.store, r, func(tx *cartRepository) ([]domain.CartItem, error) {
		return cloneItems(*tx.work), nil
	})
}

func (r *cartRepository) FindByProduct(ctx context.Context, productID string) (domain.CartItem, bool, error) {
	type found struct {
		item domain.CartItem
		ok   bool
	}

	res, err := withTx(ctx, r.store, r, func(tx *cartRepository) (found, error) {
		idx := slices.IndexFunc(*tx.work, func(i domain.CartItem) bool {
			return i.ProductID == productID
		})
		if idx < 0 {
			return found{}, nil
		}
		return found{item: (*tx.work)[idx], ok: true}, nil
	})
	if err != nil {
		return domain.CartItem{}, false, err
	}

	return res.item, res.ok, nil
}

func (r *cartRepository) AddItem(ctx context.Context, item domain.CartItem) error {
	if item.ID == "" {
		return fmt.Errorf("item ID is empty")
	}

	_, err := withTx(ctx, r.store, r, func(tx *cartRepository) (struct{}, error) {
		if slices.ContainsFunc(*tx.work, func(i domain.CartItem) bool { return i.ID == item.ID }) {
			return struct{}{}, fmt.Errorf("item[%s] already exists", item.ID)
		}
		*tx.work = append(*tx.work, item)
		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) SetQty(ctx context.Context, itemID string, qty int) (bool, error) {
	return withTx(ctx, r.store, r, func(tx *cartRepository) (bool, error) {
		idx := tx.indexOf(itemID)
		if idx < 0 {
			return false, nil
		}
		(*tx.work)[idx].Qty = qty
		return true, nil
	})
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID string) (bool, error) {
	return withTx(ctx, r.store, r, func(tx *cartRepository) (bool, error) {
		idx := tx.indexOf(itemID)
		if idx < 0 {
			return false, nil
		}
		*tx.work = slices.Delete(*tx.work, idx, idx+1)
		return true, nil
	})
}

func (r *cartRepository) Clear(ctx context.Context) ([]domain.CartItem, error) {
	return withTx(ctx, r.store, r, func(tx *cartRepository) ([]domain.CartItem, error) {
		removed := cloneItems(*tx.work)
		*tx.work = nil
		return removed, nil
	})
}

func (r *cartRepository) InTx(ctx context.Context, fn func(repo port.CartRepository) error) error {
	_, err := withTx(ctx, r.store, r, func(tx *cartRepository) (struct{}, error) {
		return struct{}{}, fn(tx)
	})

	return err
}

func (r *cartRepository) indexOf(itemID string) int {
	return slices.IndexFunc(*r.work, func(i domain.CartItem) bool {
		return i.ID == itemID
	})
}

func cloneItems(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}
