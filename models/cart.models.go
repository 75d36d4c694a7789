package models

// CartItem is a line in the cart. Product is a snapshot taken when the line was added,
// so later catalog edits do not change it.
type CartItem struct {
	LineID        string  `json:"lineId"`
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selectedSize"`
	SelectedColor string  `json:"selectedColor"`
}

// Clone returns a deep copy of the line.
func (c CartItem) Clone() CartItem {
	c.Product = c.Product.Clone()
	return c
}

// LineTotal is price times quantity.
func (c CartItem) LineTotal() float64 {
	return c.Product.Price * float64(c.Quantity)
}

// SameConfiguration reports whether both lines hold the same product, size and color.
func (c CartItem) SameConfiguration(o CartItem) bool {
	return c.Product.ID == o.Product.ID && c.SelectedSize == o.SelectedSize && c.SelectedColor == o.SelectedColor
}

// AddToCartRequest is the body of POST /cart.
type AddToCartRequest struct {
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

// CartView is the cart with its derived totals.
type CartView struct {
	Items       []CartItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	DeliveryFee float64    `json:"deliveryFee"`
	Total       float64    `json:"total"`
	TotalItems  int        `json:"totalItems"`
}
