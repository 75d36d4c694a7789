package store

import "errors"

// Validation errors returned by Store operations. Reference-not-found cases are
// reported through boolean results instead, since they are no-ops.
var (
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidProduct       = errors.New("invalid product")
	ErrDuplicateProduct     = errors.New("product id already exists")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidSelection     = errors.New("size or color not offered for product")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrInvalidPaymentMethod = errors.New("payment method must be Online or COD")
	ErrMissingCustomerField = errors.New("name, phone and email are required")
	ErrInvalidReview        = errors.New("invalid review")
	ErrInvalidLanguage      = errors.New("language must be en or ar")
)
