package store

import (
	"ak-storefront/models"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCatalog is the catalog a fresh store starts with.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:            "m1",
			NameEn:        "Premium Black Sweatshirt",
			NameAr:        "سويت شيرت أسود فاخر",
			DescriptionEn: "High-quality cotton blend sweatshirt with a modern fit.",
			DescriptionAr: "سويت شيرت قطني عالي الجودة بمقاس عصري.",
			Price:         349,
			Category:      models.CategoryMen,
			SubCategory:   "mensSweatshirts",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Black", "Grey"},
			Images: []string{
				"https://images.unsplash.com/photo-1556821840-3a63f95609a7?auto=format&fit=crop&q=80&w=800",
			},
			VideoURL:   "https://v.ftcdn.net/02/76/94/28/700_F_276942839_z0YfJ07WpG2j3mX9j9KjSjRz7zZzZzZz_ST.mp4",
			Views:      1240,
			SalesCount: 156,
			Stock:      12,
		},
	}
}

// seedFile is the YAML layout of a seed catalog.
type seedFile struct {
	Products []models.Product `yaml:"products"`
}

// LoadCatalogFile reads a YAML seed catalog. Every product must pass ValidateProduct
// and carry an id.
func LoadCatalogFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed catalog: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("seed catalog %s has no products", path)
	}

	seen := make(map[string]bool, len(f.Products))
	for i, p := range f.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("seed product %d: missing id", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("seed product %d: duplicate id %s", i, p.ID)
		}
		seen[p.ID] = true
		if err := ValidateProduct(p); err != nil {
			return nil, fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}
	return f.Products, nil
}
