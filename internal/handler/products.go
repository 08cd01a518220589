package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/safar/go-order-api/internal/store"
)

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Price < 0 {
		respondError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	price := decimal.NewFromFloat(req.Price)
	product, err := store.CreateProduct(r.Context(), h.db, req.Name, req.Description, price)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

func (h *Handler) GetProductsByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	products, err := store.GetProductsByName(r.Context(), h.db, name)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if len(products) == 0 {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := store.GetProduct(r.Context(), h.db, id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
