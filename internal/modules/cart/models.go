package cart

// Item is one cart line. ID is the identity key productId-size-color: adding
// the same combination again merges quantities instead of duplicating lines.
type Item struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	PriceUSD  float64 `json:"priceUSD"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// AddInput is an item before identity assignment.
type AddInput struct {
	ProductID string
	Title     string
	Image     string
	PriceUSD  float64
	Size      string
	Color     string
	Quantity  int
}

func lineID(productID, size, color string) string {
	return productID + "-" + size + "-" + color
}
