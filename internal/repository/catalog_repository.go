package repository

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	products []domain.Product
}

// NewCatalog returns a read-only catalog over a private copy of products.
func NewCatalog(products []domain.Product) (port.ProductCatalog, error) {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product ID is empty")
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("product[%s] is duplicated", p.ID)
		}
		if p.Price.Amount.IsNegative() {
			return nil, fmt.Errorf("product[%s] price is negative", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &catalogRepository{
		products: append([]domain.Product(nil), products...),
	}, nil
}

func (r *catalogRepository) ListProducts(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *catalogRepository) FindProduct(_ context.Context, productID string) (domain.Product, error) {
	for _, p := range r.products {
		if p.ID == productID {
			return p, nil
		}
	}

	return domain.Product{}, fmt.Errorf("product[%s]: %w", productID, domain.ErrProductNotFound)
}

// SampleProducts is the fixed storefront catalog.
func SampleProducts() []domain.Product {
	inr := func(amount int64) domain.Money {
		return domain.Money{Amount: decimal.NewFromInt(amount), Currency: currency.INR}
	}

	return []domain.Product{
		{ID: "p1", Name: "Vibe T-Shirt", Price: inr(499)},
		{ID: "p2", Name: "Vibe Hoodie", Price: inr(1299)},
		{ID: "p3", Name: "Vibe Cap", Price: inr(299)},
		{ID: "p4", Name: "Vibe Mug", Price: inr(199)},
		{ID: "p5", Name: "Vibe Sticker Pack", Price: inr(99)},
	}
}
