package controllers

import (
	"ak-storefront/store"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// maxBody caps request bodies; product uploads carry inline images.
const maxBody = 10 << 20

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return false
	}
	return true
}

// storeError maps domain errors to HTTP statuses.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrDuplicateProduct):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrInvalidProduct),
		errors.Is(err, store.ErrInvalidSelection),
		errors.Is(err, store.ErrEmptyCart),
		errors.Is(err, store.ErrEmptyOrder),
		errors.Is(err, store.ErrInvalidPaymentMethod),
		errors.Is(err, store.ErrMissingCustomerField),
		errors.Is(err, store.ErrInvalidReview),
		errors.Is(err, store.ErrInvalidLanguage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Unexpected store error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// HealthController reports liveness and how each persisted slice was loaded at startup.
type HealthController struct {
	Store *store.Store
}

// NewHealthController creates a new HealthController
func NewHealthController(s *store.Store) *HealthController {
	return &HealthController{Store: s}
}

// Health handles GET /health
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	hydration := map[string]string{}
	for key, status := range hc.Store.Hydration() {
		hydration[key] = string(status)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"hydration": hydration,
	})
}
