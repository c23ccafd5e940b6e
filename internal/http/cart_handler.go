package httpapi

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
)

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  *int      `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type addCartItemResponse struct {
	Item    cartItemResponse `json:"item"`
	Capped  bool             `json:"capped"`
	Message string           `json:"message,omitempty"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	cart, err := h.cart.GetCart(r.Context(), actor.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

// AddCartItem adds to an existing line. A quantity above stock is clamped and reported with capped=true.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be a positive integer")
		return
	}

	item, capped, err := h.cart.AddItem(r.Context(), actor.ID, req.ProductID, quantity)
	if err != nil {
		writeCartError(w, r, err)
		return
	}

	resp := addCartItemResponse{
		Item:   toCartItemResponse(item),
		Capped: capped,
	}
	if capped {
		resp.Message = "quantity limited to available stock"
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}

	var req updateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be a positive integer")
		return
	}

	item, err := h.cart.UpdateItemQuantity(r.Context(), actor.ID, itemID, req.Quantity)
	if err != nil {
		writeCartError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartItemResponse(item))
}

func (h *Handler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}

	deleted, err := h.cart.DeleteItem(r.Context(), actor.ID, itemID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "cart item not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "item removed from cart"})
}

// writeCartError answers stock shortages on the cart path with 400, the cart is still editable.
func writeCartError(w http.ResponseWriter, r *http.Request, err error) {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		writeStockError(w, http.StatusBadRequest, stockErr)
		return
	}
	writeDomainError(w, r, err)
}
