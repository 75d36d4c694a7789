package models

import "time"

// OrderStatus tracks fulfilment.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

// Order is an immutable record of a checkout. Items are frozen copies of the cart lines.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Date          string        `json:"date"`
	Day           string        `json:"day"`
	Time          string        `json:"time"`
	PlacedAt      time.Time     `json:"placedAt"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	items := make([]CartItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = it.Clone()
	}
	o.Items = items
	return o
}

// CheckoutRequest is the body of POST /checkout.
type CheckoutRequest struct {
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Address       Address       `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
