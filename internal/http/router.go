package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(h *Handler, tokens TokenParser, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/db-test", h.DBTest)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.With(authenticate(tokens)).Get("/profile", h.Profile)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/{productId}", h.GetProduct)

			r.Group(func(r chi.Router) {
				r.Use(authenticate(tokens))
				r.Post("/", h.CreateProduct)
				r.Put("/{productId}", h.UpdateProduct)
				r.Delete("/{productId}", h.DeleteProduct)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.With(authenticate(tokens)).Post("/", h.CreateCategory)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(authenticate(tokens))
			r.Get("/", h.GetCart)
			r.Post("/", h.AddCartItem)
			r.Put("/{itemId}", h.UpdateCartItem)
			r.Delete("/{itemId}", h.DeleteCartItem)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(authenticate(tokens))
			r.Post("/", h.PlaceOrder)
			r.Get("/", h.ListOrders)
			r.Get("/admin/all", h.ListAllOrders)
			r.Put("/admin/{orderId}/status", h.UpdateOrderStatus)
			r.Get("/{orderId}", h.GetOrder)
		})
	})

	return r
}

func urlParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
