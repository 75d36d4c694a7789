package store

import (
	"ak-storefront/models"
	"fmt"
)

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneCart(s.cart)
}

// AddToCart stores a copy of item. The line gets a fresh LineID unless the
// merge policy folds it into an existing line, in which case that line is returned.
func (s *Store) AddToCart(item models.CartItem) (models.CartItem, error) {
	if item.Quantity < 1 {
		return models.CartItem{}, ErrInvalidQuantity
	}
	if item.Product.ID == "" {
		return models.CartItem{}, fmt.Errorf("%w: cart line without product id", ErrInvalidProduct)
	}
	if !finite(item.Product.Price) {
		return models.CartItem{}, fmt.Errorf("%w: cart line price must be finite", ErrInvalidProduct)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addToCartLocked(item), nil
}

// AddProductToCart snapshots the live catalog product and adds it to the cart.
func (s *Store) AddProductToCart(req models.AddToCartRequest) (models.CartItem, error) {
	if req.Quantity < 1 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(req.ProductID)
	if i < 0 {
		return models.CartItem{}, ErrProductNotFound
	}
	p := s.products[i]
	if req.SelectedSize != "" && len(p.Sizes) > 0 && !p.HasSize(req.SelectedSize) {
		return models.CartItem{}, fmt.Errorf("%w: size %q", ErrInvalidSelection, req.SelectedSize)
	}
	if req.SelectedColor != "" && len(p.Colors) > 0 && !contains(p.Colors, req.SelectedColor) {
		return models.CartItem{}, fmt.Errorf("%w: color %q", ErrInvalidSelection, req.SelectedColor)
	}

	return s.addToCartLocked(models.CartItem{
		Product:       p,
		Quantity:      req.Quantity,
		SelectedSize:  req.SelectedSize,
		SelectedColor: req.SelectedColor,
	}), nil
}

func (s *Store) addToCartLocked(item models.CartItem) models.CartItem {
	if s.cartPolicy == CartMerge {
		for i := range s.cart {
			if s.cart[i].SameConfiguration(item) {
				s.cart[i].Quantity += item.Quantity
				s.persist(KeyCart, s.cart)
				return s.cart[i].Clone()
			}
		}
	}

	line := item.Clone()
	line.LineID = s.newID()
	s.cart = append(s.cart, line)
	s.persist(KeyCart, s.cart)
	return line.Clone()
}

// RemoveFromCart drops the line with lineID. It reports whether a line was removed.
func (s *Store) RemoveFromCart(lineID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLineLocked(lineID)
}

func (s *Store) removeLineLocked(lineID string) bool {
	for i := range s.cart {
		if s.cart[i].LineID == lineID {
			s.cart = append(s.cart[:i:i], s.cart[i+1:]...)
			s.persist(KeyCart, s.cart)
			return true
		}
	}
	return false
}

// UpdateCartQuantity sets the quantity of a line. A quantity of zero or less
// removes the line. Stock is not checked here; it is floored at order placement.
func (s *Store) UpdateCartQuantity(lineID string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		return s.removeLineLocked(lineID)
	}
	for i := range s.cart {
		if s.cart[i].LineID == lineID {
			s.cart[i].Quantity = qty
			s.persist(KeyCart, s.cart)
			return true
		}
	}
	return false
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearCartLocked()
}

func (s *Store) clearCartLocked() {
	s.cart = []models.CartItem{}
	s.persist(KeyCart, s.cart)
}

// CartView returns the cart with subtotal, delivery fee and item count.
func (s *Store) CartView() models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := Subtotal(s.cart)
	fee := DeliveryFee(sub, s.deliveryFee, s.freeThreshold)
	return models.CartView{
		Items:       cloneCart(s.cart),
		Subtotal:    sub,
		DeliveryFee: fee,
		Total:       sub + fee,
		TotalItems:  TotalItems(s.cart),
	}
}

func cloneCart(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
