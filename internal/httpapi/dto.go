package httpapi

import (
	"encoding/json"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

type ProductResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

type CartItemResponse struct {
	ID        string      `json:"id"`
	ProductID string      `json:"productId"`
	Name      string      `json:"name"`
	Price     json.Number `json:"price"`
	Qty       int         `json:"qty"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total json.Number        `json:"total"`
}

type AddItemRequest struct {
	ProductID string `json:"productId"`
	Qty       *int   `json:"qty,omitempty"`
}

type UpdateItemRequest struct {
	Qty *int `json:"qty"`
}

// CheckoutRequest mirrors what the storefront UI sends. CartItems is accepted and ignored:
// checkout always works on the server-side cart.
type CheckoutRequest struct {
	CartItems json.RawMessage `json:"cartItems,omitempty"`
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email,omitempty"`
}

type ReceiptResponse struct {
	OrderID   string      `json:"orderId"`
	Total     json.Number `json:"total"`
	Timestamp string      `json:"timestamp"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func amount(m domain.Money) json.Number {
	return json.Number(m.Amount.String())
}

func mapProducts(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: amount(p.Price),
		}
	}
	return out
}

func mapCart(cart domain.Cart) CartResponse {
	items := make([]CartItemResponse, len(cart.Items))
	for i, it := range cart.Items {
		items[i] = CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     amount(it.Price),
			Qty:       it.Qty,
		}
	}
	return CartResponse{
		Items: items,
		Total: amount(cart.Total),
	}
}

func mapReceipt(r domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		OrderID:   r.OrderID,
		Total:     amount(r.Total),
		Timestamp: r.Timestamp,
	}
}
