// routes/routes.go
package routes

import (
	"ak-storefront/controllers"
	"ak-storefront/middleware"

	"github.com/gorilla/mux"
)

// Controllers groups every handler the router exposes
type Controllers struct {
	Health  *controllers.HealthController
	User    *controllers.UserController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Shopper *controllers.ShopperController
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers) {
	router.HandleFunc("/health", c.Health.Health).Methods("GET")

	// Session and preferences
	router.HandleFunc("/session", c.User.GetSession).Methods("GET")
	router.HandleFunc("/session", c.User.SetSession).Methods("POST")
	router.HandleFunc("/session", c.User.Logout).Methods("DELETE")
	router.HandleFunc("/language", c.User.GetLanguage).Methods("GET")
	router.HandleFunc("/language", c.User.SetLanguage).Methods("PUT")

	// Product routes
	router.HandleFunc("/products", c.Product.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", c.Product.GetProductByID).Methods("GET")
	router.HandleFunc("/products/{id}/view", c.Product.ViewProduct).Methods("POST")
	router.HandleFunc("/products/{id}/suggestions", c.Product.GetSuggestions).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", c.Product.GetReviews).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", c.Product.AddReview).Methods("POST")

	// Cart Routes
	router.HandleFunc("/cart", c.Cart.GetCart).Methods("GET")
	router.HandleFunc("/cart", c.Cart.AddToCart).Methods("POST")
	router.HandleFunc("/cart", c.Cart.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/{lineId}", c.Cart.UpdateCartItem).Methods("PUT")
	router.HandleFunc("/cart/{lineId}", c.Cart.RemoveFromCart).Methods("DELETE")

	// Order Routes
	router.HandleFunc("/checkout", c.Order.Checkout).Methods("POST")
	router.HandleFunc("/orders", c.Order.GetOrders).Methods("GET")

	// Wishlist, recently viewed and assistant
	router.HandleFunc("/wishlist", c.Shopper.GetWishlist).Methods("GET")
	router.HandleFunc("/wishlist/{id}", c.Shopper.ToggleWishlist).Methods("POST")
	router.HandleFunc("/recent", c.Shopper.GetRecent).Methods("GET")
	router.HandleFunc("/assistant/catalog", c.Shopper.GetCatalogDigest).Methods("GET")
	router.HandleFunc("/assistant/resolve", c.Shopper.ResolveRecommendation).Methods("POST")

	router.HandleFunc("/admin/login", c.User.AdminLogin).Methods("POST")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/products", c.Product.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", c.Product.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", c.Product.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/orders/export", c.Order.ExportOrders).Methods("GET")
	admin.HandleFunc("/orders/delete", c.Order.DeleteOrders).Methods("POST")
	admin.HandleFunc("/orders/{id}", c.Order.DeleteOrder).Methods("DELETE")
	admin.HandleFunc("/stats", c.Order.GetStats).Methods("GET")
}
