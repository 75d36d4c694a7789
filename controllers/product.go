package controllers

import (
	"ak-storefront/models"
	"ak-storefront/store"
	"ak-storefront/utils"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// ProductController handles catalog, view tracking and review requests
type ProductController struct {
	Store    *store.Store
	Uploader utils.MediaUploader
}

// NewProductController creates a new ProductController. A nil uploader keeps images inline.
func NewProductController(s *store.Store, uploader utils.MediaUploader) *ProductController {
	if uploader == nil {
		uploader = utils.InlineUploader{}
	}
	return &ProductController{Store: s, Uploader: uploader}
}

// GetProducts lists the catalog, filtered by the category, subCategory, size,
// minPrice, maxPrice and sort query parameters
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := store.ProductQuery{
		Category:    q.Get("category"),
		SubCategory: q.Get("subCategory"),
		Size:        q.Get("size"),
		Sort:        store.SortOrder(q.Get("sort")),
	}
	var err error
	if v := q.Get("minPrice"); v != "" {
		if query.MinPrice, err = strconv.ParseFloat(v, 64); err != nil {
			http.Error(w, "Invalid minPrice", http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if query.MaxPrice, err = strconv.ParseFloat(v, 64); err != nil {
			http.Error(w, "Invalid maxPrice", http.StatusBadRequest)
			return
		}
	}

	writeJSON(w, http.StatusOK, pc.Store.ListProducts(query))
}

// GetProductByID retrieves a single product
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	p, ok := pc.Store.Product(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ViewProduct counts a product page view and records it as recently viewed
func (pc *ProductController) ViewProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := pc.Store.ViewProduct(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetSuggestions returns products to style with the given one
func (pc *ProductController) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := pc.Store.Product(id); !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, pc.Store.Suggestions(id))
}

// GetReviews lists a product's reviews, newest first
func (pc *ProductController) GetReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pc.Store.Reviews(mux.Vars(r)["id"]))
}

// AddReview posts a review. Inline photos are uploaded like product images.
func (pc *ProductController) AddReview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := pc.Store.Product(id); !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	var review models.Review
	if !decode(w, r, &review) {
		return
	}
	review.ProductID = id
	photos, err := pc.hostImages(r, review.Photos)
	if err != nil {
		http.Error(w, "Failed to upload image", http.StatusInternalServerError)
		return
	}
	review.Photos = photos

	saved, err := pc.Store.AddReview(review)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if !decode(w, r, &product) {
		return
	}
	if !pc.attachImage(w, r, &product) {
		return
	}

	created, err := pc.Store.AddProduct(product)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProduct replaces an existing product (Admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if !decode(w, r, &product) {
		return
	}
	product.ID = mux.Vars(r)["id"]
	if !pc.attachImage(w, r, &product) {
		return
	}

	found, err := pc.Store.UpdateProduct(product)
	if err != nil {
		storeError(w, err)
		return
	}
	if !found {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	updated, _ := pc.Store.Product(product.ID)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProduct removes a product and its wishlist, recent and cart references (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !pc.Store.DeleteProduct(mux.Vars(r)["id"]) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// attachImage uploads product.ImageBase64 and puts the hosted URL first in Images.
func (pc *ProductController) attachImage(w http.ResponseWriter, r *http.Request, product *models.Product) bool {
	if product.ImageBase64 == "" {
		return true
	}
	url, err := pc.Uploader.UploadImage(r.Context(), product.ImageBase64)
	if err != nil {
		log.Println("Image upload error:", err)
		http.Error(w, "Failed to upload image", http.StatusInternalServerError)
		return false
	}
	product.Images = append([]string{url}, product.Images...)
	product.ImageBase64 = ""
	return true
}

// hostImages uploads inline images and passes hosted URLs through.
func (pc *ProductController) hostImages(r *http.Request, images []string) ([]string, error) {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		if isRemote(img) {
			out = append(out, img)
			continue
		}
		url, err := pc.Uploader.UploadImage(r.Context(), img)
		if err != nil {
			log.Println("Image upload error:", err)
			return nil, err
		}
		out = append(out, url)
	}
	return out, nil
}

func isRemote(img string) bool {
	return strings.HasPrefix(img, "http://") || strings.HasPrefix(img, "https://")
}
