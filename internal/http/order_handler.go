package httpapi

import (
	"net/http"
	"strings"

	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/samber/lo"
)

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// PlaceOrder checks out the caller's cart. Empty cart is 400, a stock shortage is 409
// with the product and its available quantity.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	summary, err := h.orders.PlaceOrder(r.Context(), actor.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderSummaryResponse(summary))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), actor.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	orderID, ok := pathUUID(w, r, "orderId")
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(r.Context(), actor.ID, orderID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// ListAllOrders accepts an optional comma separated status filter.
func (h *Handler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var filter domain.OrderFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status, err := domain.ToOrderStatus(strings.TrimSpace(part))
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid status")
				return
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	orders, err := h.orders.ListAllOrders(r.Context(), actor, filter)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	orderID, ok := pathUUID(w, r, "orderId")
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := domain.ToOrderStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	order, err := h.orders.UpdateOrderStatus(r.Context(), actor, orderID, status)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	return lo.Map(orders, func(o domain.Order, _ int) orderResponse {
		return toOrderResponse(o)
	})
}
