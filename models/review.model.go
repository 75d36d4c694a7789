package models

// Review is a shopper's rating of a product.
type Review struct {
	ID        string   `json:"id"`
	ProductID string   `json:"productId"`
	UserName  string   `json:"userName"`
	Rating    int      `json:"rating"`
	Comment   string   `json:"comment"`
	Photos    []string `json:"photos"`
	Date      string   `json:"date"`
}
