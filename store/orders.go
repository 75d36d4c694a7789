package store

import (
	"ak-storefront/models"
	"fmt"
	"strings"
)

// Orders returns a copy of all orders, most recent first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

// PlaceOrder records order, updates stock and sales for every line, and clears
// the cart, all before returning. The total is recomputed from the lines plus
// the delivery fee; missing id, status and timestamps are filled in.
func (s *Store) PlaceOrder(order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.placeOrderLocked(order)
}

func (s *Store) placeOrderLocked(order models.Order) (models.Order, error) {
	if len(order.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}
	for _, it := range order.Items {
		if it.Quantity < 1 {
			return models.Order{}, ErrInvalidQuantity
		}
		if !finite(it.Product.Price) {
			return models.Order{}, fmt.Errorf("%w: line price must be finite", ErrInvalidProduct)
		}
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PaymentCOD
	}
	if !order.PaymentMethod.Valid() {
		return models.Order{}, ErrInvalidPaymentMethod
	}

	order = order.Clone()
	if order.ID == "" {
		order.ID = s.uniqueOrderID()
	}
	if order.Status == "" {
		order.Status = models.StatusProcessing
	}
	if order.PlacedAt.IsZero() {
		order.PlacedAt = s.now()
	}
	if order.Date == "" || order.Day == "" || order.Time == "" {
		stamp := FormatOrderTime(order.PlacedAt, s.language)
		order.Day, order.Date, order.Time = stamp.Day, stamp.Date, stamp.Time
	}
	sub := Subtotal(order.Items)
	order.Total = sub + DeliveryFee(sub, s.deliveryFee, s.freeThreshold)

	s.orders = append([]models.Order{order}, s.orders...)

	sold := make(map[string]int, len(order.Items))
	for _, it := range order.Items {
		sold[it.Product.ID] += it.Quantity
	}
	for i := range s.products {
		q, ok := sold[s.products[i].ID]
		if !ok {
			continue
		}
		s.products[i].SalesCount += q
		s.products[i].Stock = max(0, s.products[i].Stock-q)
	}

	s.persist(KeyOrders, s.orders)
	s.persist(KeyProducts, s.products)
	s.clearCartLocked()
	return order.Clone(), nil
}

// Checkout turns the live cart into an order for the given customer.
func (s *Store) Checkout(req models.CheckoutRequest) (models.Order, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Email) == "" {
		return models.Order{}, ErrMissingCustomerField
	}
	if req.PaymentMethod != "" && !req.PaymentMethod.Valid() {
		return models.Order{}, ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	return s.placeOrderLocked(models.Order{
		CustomerName:  strings.TrimSpace(req.Name),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Address:       FormatAddress(req.Address),
		Items:         s.cart,
		PaymentMethod: req.PaymentMethod,
	})
}

// DeleteOrder removes the order with id.
func (s *Store) DeleteOrder(id string) bool {
	return s.DeleteOrders([]string{id}) == 1
}

// DeleteOrders removes every order whose id is in ids and returns how many went.
func (s *Store) DeleteOrders(ids []string) int {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if _, ok := drop[o.ID]; !ok {
			kept = append(kept, o)
		}
	}
	removed := len(s.orders) - len(kept)
	if removed > 0 {
		s.orders = kept
		s.persist(KeyOrders, s.orders)
	}
	return removed
}

func (s *Store) uniqueOrderID() string {
	for {
		id := NewOrderID()
		taken := false
		for _, o := range s.orders {
			if o.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
