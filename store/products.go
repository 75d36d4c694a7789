package store

import (
	"ak-storefront/models"
	"fmt"
	"math"
	"strings"
)

// DefaultStock is given to new products saved without a stock level.
const DefaultStock = 10

// Products returns a copy of the catalog, newest additions first.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneProducts(s.products)
}

// Product looks up a product by id.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return models.Product{}, false
	}
	return s.products[i].Clone(), true
}

func (s *Store) productIndex(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// ValidateProduct checks the fields an admin must supply.
func ValidateProduct(p models.Product) error {
	switch {
	case strings.TrimSpace(p.NameEn) == "" && strings.TrimSpace(p.NameAr) == "":
		return fmt.Errorf("%w: a name is required", ErrInvalidProduct)
	case !finite(p.Price) || !finite(p.OriginalPrice) || !finite(p.DiscountPercentage):
		return fmt.Errorf("%w: prices must be finite numbers", ErrInvalidProduct)
	case p.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	case p.OriginalPrice < 0:
		return fmt.Errorf("%w: original price cannot be negative", ErrInvalidProduct)
	case p.DiscountPercentage < 0 || p.DiscountPercentage > 100:
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrInvalidProduct)
	case p.Stock < 0:
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	case !p.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, p.Category)
	}
	return nil
}

// finite reports whether f survives a JSON round trip.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AddProduct inserts p at the front of the catalog. Counters are zeroed, the
// creation time is stamped, and a zero stock becomes DefaultStock.
func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	if err := ValidateProduct(p); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Clone()
	if p.ID == "" {
		p.ID = s.newID()
	} else if s.productIndex(p.ID) >= 0 {
		return models.Product{}, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
	}
	p.Views = 0
	p.SalesCount = 0
	if p.Stock == 0 {
		p.Stock = DefaultStock
	}
	p.CreatedAt = s.now()
	p.ImageBase64 = ""

	s.products = append([]models.Product{p}, s.products...)
	s.persist(KeyProducts, s.products)
	return p.Clone(), nil
}

// UpdateProduct replaces the product with the same id. It reports false, and
// changes nothing, when the id is unknown. A zero CreatedAt keeps the stored one.
func (s *Store) UpdateProduct(p models.Product) (bool, error) {
	if err := ValidateProduct(p); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(p.ID)
	if i < 0 {
		return false, nil
	}
	p = p.Clone()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.products[i].CreatedAt
	}
	p.ImageBase64 = ""
	s.products[i] = p
	s.persist(KeyProducts, s.products)
	return true, nil
}

// DeleteProduct removes a product and every wishlist, recently viewed and cart
// reference to it. Orders keep their frozen copies.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.persist(KeyProducts, s.products)

	if w, changed := without(s.wishlist, id); changed {
		s.wishlist = w
		s.persist(KeyWishlist, s.wishlist)
	}
	if r, changed := without(s.recent, id); changed {
		s.recent = r
		s.persist(KeyRecent, s.recent)
	}

	kept := s.cart[:0:0]
	for _, line := range s.cart {
		if line.Product.ID != id {
			kept = append(kept, line)
		}
	}
	if len(kept) != len(s.cart) {
		s.cart = kept
		s.persist(KeyCart, s.cart)
	}
	return true
}

// IncrementView adds one to a product's view counter.
func (s *Store) IncrementView(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.incrementViewLocked(id)
}

func (s *Store) incrementViewLocked(id string) bool {
	i := s.productIndex(id)
	if i < 0 {
		return false
	}
	s.products[i].Views++
	s.persist(KeyProducts, s.products)
	return true
}

// ViewProduct records a product page visit: the view counter goes up and the
// product moves to the front of the recently viewed list.
func (s *Store) ViewProduct(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.incrementViewLocked(id) {
		return models.Product{}, false
	}
	s.addRecentlyViewedLocked(id)
	return s.products[s.productIndex(id)].Clone(), true
}

func cloneProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

// without returns list minus every occurrence of id.
func without(list []string, id string) ([]string, bool) {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out, len(out) != len(list)
}

// distinct drops empty and repeated ids, keeping first occurrences in order.
func distinct(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if _, dup := seen[v]; dup || v == "" {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
