package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/nikolayk812/shopcore/internal/repository"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error string `json:"error"`
}

type stockErrorResponse struct {
	Error     string `json:"error"`
	ProductID string `json:"productId"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeStockError(w http.ResponseWriter, status int, err *domain.InsufficientStockError) {
	writeJSON(w, status, stockErrorResponse{
		Error:     err.Error(),
		ProductID: err.ProductID.String(),
		Requested: err.Requested,
		Available: err.Available,
	})
}

// writeDomainError maps service and repository errors onto status codes.
// Anything unrecognised is logged and answered with a generic 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var stockErr *domain.InsufficientStockError

	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, domain.ErrEmptyCart.Error())
	case errors.As(err, &stockErr):
		writeStockError(w, http.StatusConflict, stockErr)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, domain.ErrConflict.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, repository.ErrInvalidCategory):
		writeError(w, http.StatusBadRequest, "invalid category id")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
