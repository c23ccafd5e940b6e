package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcore/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type productRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity *int            `json:"stockQuantity"`
	CategoryID    *uuid.UUID      `json:"categoryId"`
	ImageURL      *string         `json:"imageUrl"`
}

func (req productRequest) toDomain() domain.Product {
	return domain.Product{
		CategoryID:    req.CategoryID,
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		Price:         req.Price,
		StockQuantity: lo.FromPtr(req.StockQuantity),
		ImageURL:      req.ImageURL,
	}
}

type categoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// parseProductFilter reads search, category, minPrice, maxPrice, sortBy and order.
// Unknown sortBy falls back to created_at, order defaults to DESC.
func parseProductFilter(r *http.Request) (domain.ProductFilter, error) {
	q := r.URL.Query()

	filter := domain.ProductFilter{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
		SortBy:   domain.ProductSortCreatedAt,
	}

	if sortBy, ok := domain.ToProductSort(q.Get("sortBy")); ok {
		filter.SortBy = sortBy
	}
	filter.Ascending = strings.EqualFold(q.Get("order"), "asc")

	var err error
	if filter.MinPrice, err = queryDecimal(q, "minPrice"); err != nil {
		return domain.ProductFilter{}, err
	}
	if filter.MaxPrice, err = queryDecimal(q, "maxPrice"); err != nil {
		return domain.ProductFilter{}, err
	}

	return filter, nil
}

func queryDecimal(q url.Values, key string) (*decimal.Decimal, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s is not a valid number", key)
	}
	return &value, nil
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lo.Map(products, func(p domain.Product, _ int) productResponse {
		return toProductResponse(p)
	}))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	created, err := h.catalog.CreateProduct(r.Context(), actor, product)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	productID, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}

	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	product.ID = productID

	updated, err := h.catalog.UpdateProduct(r.Context(), actor, product)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	productID, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), actor, productID); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (domain.Product, bool) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return domain.Product{}, false
	}
	if req.StockQuantity == nil {
		writeError(w, http.StatusBadRequest, "stock quantity is required")
		return domain.Product{}, false
	}

	product := req.toDomain()
	if err := product.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.Product{}, false
	}

	return product, true
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lo.Map(categories, func(c domain.Category, _ int) categoryResponse {
		return toCategoryResponse(c)
	}))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustIdentity(w, r)
	if !ok {
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "category name is required")
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), actor, domain.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}
