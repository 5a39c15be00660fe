// Package client talks to the storefront HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type CartItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
}

type Cart struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type Receipt struct {
	OrderID   string          `json:"orderId"`
	Total     decimal.Decimal `json:"total"`
	Timestamp string          `json:"timestamp"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

type Client struct {
	base string
	http *http.Client
}

func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: httpClient,
	}
}

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out, "Failed fetching products", false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Cart(ctx context.Context) (Cart, error) {
	var out Cart
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &out, "Failed fetching cart", false); err != nil {
		return Cart{}, err
	}
	return out, nil
}

func (c *Client) AddToCart(ctx context.Context, productID string, qty int) error {
	body := map[string]any{"productId": productID, "qty": qty}
	return c.do(ctx, http.MethodPost, "/api/cart", body, nil, "Failed to add to cart", true)
}

func (c *Client) RemoveItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/"+url.PathEscape(itemID), nil, nil, "Failed to delete", false)
}

func (c *Client) UpdateItem(ctx context.Context, itemID string, qty int) error {
	body := map[string]any{"qty": qty}
	return c.do(ctx, http.MethodPut, "/api/cart/"+url.PathEscape(itemID), body, nil, "Failed to update", true)
}

// Checkout sends the cart items for parity with the web UI; the server ignores them.
func (c *Client) Checkout(ctx context.Context, items []CartItem, name, email string) (Receipt, error) {
	body := map[string]any{"cartItems": items, "name": name, "email": email}

	var out Receipt
	if err := c.do(ctx, http.MethodPost, "/api/checkout", body, &out, "Checkout failed", true); err != nil {
		return Receipt{}, err
	}
	return out, nil
}

// do performs one request. When useServerMsg is set, the "error" field of a failed
// response replaces the fallback message.
func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string, useServerMsg bool) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: fallback}
		if useServerMsg {
			var payload struct {
				Error string `json:"error"`
			}
			if json.NewDecoder(resp.Body).Decode(&payload) == nil && payload.Error != "" {
				apiErr.Message = payload.Error
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}

	return nil
}
