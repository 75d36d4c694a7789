package controllers

import (
	"ak-storefront/models"
	"ak-storefront/store"
	"net/http"

	"github.com/gorilla/mux"
)

// ShopperController handles the wishlist, recently viewed products and the style assistant hooks
type ShopperController struct {
	Store *store.Store
}

// NewShopperController creates a new ShopperController
func NewShopperController(s *store.Store) *ShopperController {
	return &ShopperController{Store: s}
}

// GetWishlist returns the wishlisted ids and the products they still resolve to
func (sc *ShopperController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ids":      sc.Store.Wishlist(),
		"products": sc.Store.FavoriteProducts(),
	})
}

// ToggleWishlist adds or removes a product from the wishlist
func (sc *ShopperController) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":         id,
		"inWishlist": sc.Store.ToggleWishlist(id),
	})
}

// GetRecent returns recently viewed products, most recent first
func (sc *ShopperController) GetRecent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sc.Store.RecentlyViewedProducts())
}

// GetCatalogDigest returns the catalog projection the style assistant is primed with
func (sc *ShopperController) GetCatalogDigest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sc.Store.CatalogDigest())
}

// ResolveRecommendation finds the product an assistant reply points at
func (sc *ShopperController) ResolveRecommendation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if !decode(w, r, &body) {
		return
	}
	p, ok := sc.Store.ResolveRecommendation(body.Text)
	var product *models.Product
	if ok {
		product = &p
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"found":   ok,
		"product": product,
	})
}
