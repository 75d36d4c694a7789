package models

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "Online"
	PaymentCOD    PaymentMethod = "COD"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentOnline || m == PaymentCOD
}
