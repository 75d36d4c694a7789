package controllers

import (
	"ak-storefront/models"
	"ak-storefront/store"
	"net/http"

	"github.com/gorilla/mux"
)

// CartController handles cart-related requests
type CartController struct {
	Store *store.Store
}

// NewCartController creates a new CartController
func NewCartController(s *store.Store) *CartController {
	return &CartController{Store: s}
}

// GetCart returns the cart lines with their totals
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cc.Store.CartView())
}

// AddToCart adds a snapshot of a catalog product to the cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req models.AddToCartRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line, err := cc.Store.AddProductToCart(req)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, line)
}

// UpdateCartItem sets a line's quantity. Zero or less removes the line.
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if !decode(w, r, &body) {
		return
	}
	if !cc.Store.UpdateCartQuantity(mux.Vars(r)["lineId"], body.Quantity) {
		http.Error(w, "Cart line not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, cc.Store.CartView())
}

// RemoveFromCart removes one line from the cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if !cc.Store.RemoveFromCart(mux.Vars(r)["lineId"]) {
		http.Error(w, "Cart line not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, cc.Store.CartView())
}

// ClearCart empties the cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cc.Store.ClearCart()
	writeJSON(w, http.StatusOK, cc.Store.CartView())
}
