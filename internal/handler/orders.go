package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type placeOrderRequest struct {
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	OrderDate time.Time `json:"order_date"`
	Status    string    `json:"status"`
}

type amendOrderRequest struct {
	NewDate time.Time `json:"new_date"`
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID <= 0 || req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "user_id and product_id must be positive")
		return
	}
	if req.OrderDate.IsZero() {
		respondError(w, http.StatusBadRequest, "order_date is required")
		return
	}

	order, err := h.orders.Place(r.Context(), req.UserID, req.ProductID, req.OrderDate, req.Status)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, password, ok := ownerParams(w, r)
	if !ok {
		return
	}

	orders, err := h.orders.ListForOwner(r.Context(), userID, password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, password, orderID, ok := orderParams(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOne(r.Context(), userID, password, orderID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) AmendOrderDate(w http.ResponseWriter, r *http.Request) {
	userID, password, orderID, ok := orderParams(w, r)
	if !ok {
		return
	}

	var req amendOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NewDate.IsZero() {
		respondError(w, http.StatusBadRequest, "new_date is required")
		return
	}

	order, err := h.orders.AmendDate(r.Context(), userID, password, orderID, req.NewDate)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID, password, orderID, ok := orderParams(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Cancel(r.Context(), userID, password, orderID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func ownerParams(w http.ResponseWriter, r *http.Request) (userID int64, password string, ok bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return 0, "", false
	}

	password = chi.URLParam(r, "password")
	if password == "" {
		respondError(w, http.StatusBadRequest, "Password is required")
		return 0, "", false
	}

	return userID, password, true
}

func orderParams(w http.ResponseWriter, r *http.Request) (userID int64, password string, orderID int64, ok bool) {
	userID, password, ok = ownerParams(w, r)
	if !ok {
		return 0, "", 0, false
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil || orderID <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return 0, "", 0, false
	}

	return userID, password, orderID, true
}
