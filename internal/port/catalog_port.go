package port

import (
	"context"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	FindProduct(ctx context.Context, productID string) (domain.Product, error)
}
