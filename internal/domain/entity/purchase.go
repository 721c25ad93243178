package entity

// Purchase represents a single purchase of one customer.
type Purchase struct {
	Date     string   `json:"date"`
	Quantity int64    `json:"quantity"`
	Product  string   `json:"product"`
	Price    *float64 `json:"price"`
	ImgSrc   string   `json:"imgSrc"`
}
