package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/service"
	"go.uber.org/zap"
)

type CartEngine interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetCart(ctx context.Context) (domain.Cart, error)
	AddItem(ctx context.Context, productID string, qty int) error
	UpdateItem(ctx context.Context, itemID string, qty int) (service.Outcome, error)
	RemoveItem(ctx context.Context, itemID string) (service.Outcome, error)
	Checkout(ctx context.Context) (domain.Receipt, error)
}

// Handler serves the storefront API on top of a CartEngine.
type Handler struct {
	engine CartEngine
	logger *zap.Logger
}

func NewHandler(engine CartEngine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, logger: logger}
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.engine.ListProducts(r.Context())
	if err != nil {
		h.internalError(w, r, "list products", err)
		return
	}

	writeJSON(w, http.StatusOK, mapProducts(products))
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.engine.GetCart(r.Context())
	if err != nil {
		h.internalError(w, r, "get cart", err)
		return
	}

	writeJSON(w, http.StatusOK, mapCart(cart))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	qty := 1
	if req.Qty != nil {
		qty = *req.Qty
	}

	err := h.engine.AddItem(r.Context(), req.ProductID, qty)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Product not found", "")
		return
	case errors.Is(err, domain.ErrInvalidQty):
		writeError(w, http.StatusBadRequest, "Invalid quantity", err.Error())
		return
	case err != nil:
		h.internalError(w, r, "add item", err)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	var req UpdateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Qty == nil {
		writeError(w, http.StatusBadRequest, "qty is required", "")
		return
	}

	_, err := h.engine.UpdateItem(r.Context(), itemID, *req.Qty)
	switch {
	case errors.Is(err, domain.ErrInvalidQty):
		writeError(w, http.StatusBadRequest, "Invalid quantity", err.Error())
		return
	case err != nil:
		h.internalError(w, r, "update item", err)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	if _, err := h.engine.RemoveItem(r.Context(), itemID); err != nil {
		h.internalError(w, r, "remove item", err)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	receipt, err := h.engine.Checkout(r.Context())
	if err != nil {
		h.internalError(w, r, "checkout", err)
		return
	}

	h.logger.Info("order placed",
		zap.String("order_id", receipt.OrderID),
		zap.String("customer_name", req.Name),
		zap.String("customer_email", req.Email),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)

	writeJSON(w, http.StatusOK, mapReceipt(receipt))
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error(op+" failed",
		zap.Error(err),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)
	writeError(w, http.StatusInternalServerError, "internal_error", "")
}
