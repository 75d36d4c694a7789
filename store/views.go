package store

import (
	"ak-storefront/models"
	"sort"
)

// Subtotal is the sum of price times quantity over items.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

// TotalItems is the sum of quantities over items.
func TotalItems(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// DeliveryFee returns fee unless subtotal is zero or reaches threshold.
func DeliveryFee(subtotal, fee, threshold float64) float64 {
	if subtotal == 0 || subtotal >= threshold {
		return 0
	}
	return fee
}

// FavoriteProducts returns the products whose id is in wishlist, in catalog order.
// Wishlisted ids with no product are skipped.
func FavoriteProducts(products []models.Product, wishlist []string) []models.Product {
	want := make(map[string]struct{}, len(wishlist))
	for _, id := range wishlist {
		want[id] = struct{}{}
	}
	out := []models.Product{}
	for _, p := range products {
		if _, ok := want[p.ID]; ok {
			out = append(out, p.Clone())
		}
	}
	return out
}

// ResolveProducts maps ids to products in id order, skipping ids with no product.
func ResolveProducts(products []models.Product, ids []string) []models.Product {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	out := []models.Product{}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p.Clone())
		}
	}
	return out
}

// SortOrder is a catalog listing order.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// ProductQuery filters a catalog listing. Empty strings and "All" match everything;
// a zero MaxPrice means no upper bound.
type ProductQuery struct {
	Category    string
	SubCategory string
	MinPrice    float64
	MaxPrice    float64
	Size        string
	Sort        SortOrder
}

func matchesAll(v string) bool { return v == "" || v == "All" }

// FilterProducts applies q to products and returns a new sorted slice.
func FilterProducts(products []models.Product, q ProductQuery) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if !matchesAll(q.Category) && string(p.Category) != q.Category {
			continue
		}
		if !matchesAll(q.SubCategory) && p.SubCategory != q.SubCategory {
			continue
		}
		if p.Price < q.MinPrice || (q.MaxPrice > 0 && p.Price > q.MaxPrice) {
			continue
		}
		if !matchesAll(q.Size) && !p.HasSize(q.Size) {
			continue
		}
		out = append(out, p.Clone())
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// StylingSuggestions returns up to limit other products from the same category as id.
func StylingSuggestions(products []models.Product, id string, limit int) []models.Product {
	var category models.Category
	found := false
	for _, p := range products {
		if p.ID == id {
			category, found = p.Category, true
			break
		}
	}
	out := []models.Product{}
	if !found {
		return out
	}
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p.ID != id && p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

// ComputeStats summarizes catalog and order history.
func ComputeStats(products []models.Product, orders []models.Order) models.Stats {
	st := models.Stats{TotalProducts: len(products), TotalOrders: len(orders)}
	for _, p := range products {
		st.InventoryValue += p.Price * float64(p.Stock)
		st.TotalViews += p.Views
		if p.Stock == 0 {
			st.OutOfStock++
		}
	}
	for _, o := range orders {
		st.Revenue += o.Total
		st.UnitsSold += TotalItems(o.Items)
	}
	return st
}

// ListProducts filters the live catalog.
func (s *Store) ListProducts(q ProductQuery) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return FilterProducts(s.products, q)
}

// FavoriteProducts resolves the wishlist against the live catalog.
func (s *Store) FavoriteProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return FavoriteProducts(s.products, s.wishlist)
}

// RecentlyViewedProducts resolves the recently viewed ids against the live catalog.
func (s *Store) RecentlyViewedProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ResolveProducts(s.products, s.recent)
}

// Suggestions returns up to three products to style with id.
func (s *Store) Suggestions(id string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return StylingSuggestions(s.products, id, 3)
}

// Stats summarizes the store for the admin console.
func (s *Store) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ComputeStats(s.products, s.orders)
}
