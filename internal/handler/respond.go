package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/safar/go-order-api/internal/database"
)

// authFailedMessage is the single external shape for both an unknown user id
// and a wrong password, so a caller cannot enumerate which part failed.
const authFailedMessage = "invalid user id or password"

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps a typed core failure to its stable outcome
// category. No internal detail leaks outward; unexpected store failures log
// server-side and surface as a bare 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, database.ErrUserNotFound), errors.Is(err, database.ErrInvalidCredential):
		// Logged distinctly, presented identically.
		log.Printf("auth failure on %s %s: %v", r.Method, r.URL.Path, err)
		respondError(w, http.StatusUnauthorized, authFailedMessage)
	case errors.Is(err, database.ErrNoOrders):
		respondError(w, http.StatusNotFound, "orders not found")
	case errors.Is(err, database.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, database.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, database.ErrEmailTaken):
		respondError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, database.ErrDanglingReference):
		respondError(w, http.StatusUnprocessableEntity, "user or product does not exist")
	default:
		log.Printf("internal error on %s %s: %v (retryable=%t)", r.Method, r.URL.Path, err, database.IsRetryable(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
