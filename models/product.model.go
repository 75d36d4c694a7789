package models

import "time"

// Category is the top-level collection a product belongs to.
type Category string

const (
	CategoryMen           Category = "Men"
	CategoryWomen         Category = "Women"
	CategoryNewCollection Category = "New Collection"
	CategoryBestSellers   Category = "Best Sellers"
	CategoryOffers        Category = "Offers"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryMen, CategoryWomen, CategoryNewCollection, CategoryBestSellers, CategoryOffers}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FallbackImage is shown for products saved without any image.
const FallbackImage = "https://images.unsplash.com/photo-1445205170230-053b83016050?q=80&w=1200"

// Product is a catalog entry. Names and descriptions are bilingual (English/Arabic).
type Product struct {
	ID                 string    `json:"id" yaml:"id"`
	NameEn             string    `json:"nameEn" yaml:"nameEn"`
	NameAr             string    `json:"nameAr" yaml:"nameAr"`
	DescriptionEn      string    `json:"descriptionEn" yaml:"descriptionEn"`
	DescriptionAr      string    `json:"descriptionAr" yaml:"descriptionAr"`
	Price              float64   `json:"price" yaml:"price"`
	OriginalPrice      float64   `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	DiscountPercentage float64   `json:"discountPercentage,omitempty" yaml:"discountPercentage,omitempty"`
	Category           Category  `json:"category" yaml:"category"`
	SubCategory        string    `json:"subCategory,omitempty" yaml:"subCategory,omitempty"`
	Sizes              []string  `json:"sizes" yaml:"sizes"`
	Colors             []string  `json:"colors" yaml:"colors"`
	Images             []string  `json:"images" yaml:"images"`
	VideoURL           string    `json:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`
	Views              int       `json:"views" yaml:"views"`
	SalesCount         int       `json:"salesCount" yaml:"salesCount"`
	Stock              int       `json:"stock" yaml:"stock"`
	CreatedAt          time.Time `json:"createdAt" yaml:"createdAt"`

	// ImageBase64 carries an upload from the admin console. It is never persisted.
	ImageBase64 string `json:"imageBase64,omitempty" yaml:"-"`
}

// Clone returns a deep copy so snapshots never alias catalog slices.
func (p Product) Clone() Product {
	c := p
	c.Sizes = append([]string(nil), p.Sizes...)
	c.Colors = append([]string(nil), p.Colors...)
	c.Images = append([]string(nil), p.Images...)
	return c
}

// Name returns the product name for lang, falling back to the other language when empty.
func (p Product) Name(lang Language) string {
	if lang == LanguageArabic && p.NameAr != "" {
		return p.NameAr
	}
	if p.NameEn == "" {
		return p.NameAr
	}
	return p.NameEn
}

// CoverImage returns the canonical image, or FallbackImage when there are none.
func (p Product) CoverImage() string {
	if len(p.Images) == 0 || p.Images[0] == "" {
		return FallbackImage
	}
	return p.Images[0]
}

// HasSize reports whether size is offered.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// CatalogEntry is the read-only projection shared with the style assistant.
type CatalogEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"cat"`
}

// Stats summarizes the store for the admin console.
type Stats struct {
	TotalProducts  int     `json:"total_products"`
	TotalOrders    int     `json:"total_orders"`
	Revenue        float64 `json:"revenue"`
	UnitsSold      int     `json:"units_sold"`
	InventoryValue float64 `json:"inventory_value"`
	TotalViews     int     `json:"total_views"`
	OutOfStock     int     `json:"out_of_stock"`
}
