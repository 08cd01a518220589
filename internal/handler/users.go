package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/safar/go-order-api/internal/auth"
	"github.com/safar/go-order-api/internal/store"
)

type registerUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "first_name, last_name and password are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	user, err := store.CreateUser(r.Context(), h.db, req.FirstName, req.LastName, req.Email, hash)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}
