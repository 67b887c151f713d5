package view

// CartItem is one cart line ready for display. Monetary strings carry the
// active display currency; the USD fields stay authoritative.
type CartItem struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	Title        string  `json:"title"`
	Image        string  `json:"image"`
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	Quantity     int     `json:"quantity"`
	PriceUSD     float64 `json:"priceUSD"`
	LineTotalUSD float64 `json:"lineTotalUSD"`
	UnitPrice    string  `json:"unitPrice"`
	LineTotal    string  `json:"lineTotal"`
}

type CartPage struct {
	Items         []CartItem `json:"items"`
	TotalItems    int        `json:"totalItems"`
	TotalPriceUSD float64    `json:"totalPriceUSD"`
	Currency      string     `json:"currency"`
	Total         string     `json:"total"`
}
