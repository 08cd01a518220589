package handler

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/safar/go-order-api/internal/metrics"
	"github.com/safar/go-order-api/internal/service"
)

type Handler struct {
	router *chi.Mux
	db     *sql.DB
	orders *service.OrderService
}

func NewHandler(db *sql.DB, orders *service.OrderService, m *metrics.ServerMetrics) *Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	if m != nil {
		router.Use(m.Middleware)
	}

	h := &Handler{
		router: router,
		db:     db,
		orders: orders,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Get("/v1/health", h.HealthCheck)
	h.router.Method(http.MethodGet, "/metrics", metrics.Handler())

	h.router.Post("/users", h.RegisterUser)

	h.router.Post("/products", h.CreateProduct)
	h.router.Get("/products/id/{id}", h.GetProductByID)
	h.router.Get("/products/{name}", h.GetProductsByName)

	h.router.Post("/orders", h.PlaceOrder)
	h.router.Route("/orders/{userID}/{password}", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/{orderID}", h.GetOrder)
		r.Put("/{orderID}", h.AmendOrderDate)
		r.Delete("/{orderID}", h.CancelOrder)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
