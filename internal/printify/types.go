package printify

// Raw wire shapes as returned by the Printify REST API. Every field may be
// absent or null upstream, so nothing here is trusted past JSON decoding.

type Shop struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Visible     bool      `json:"visible"`
	CreatedAt   string    `json:"created_at"`
	Variants    []Variant `json:"variants"`
	Images      []Image   `json:"images"`
}

type Variant struct {
	ID          int64  `json:"id"`
	SKU         string `json:"sku"`
	Price       int64  `json:"price"` // minor units (cents)
	Title       string `json:"title"` // e.g. "Black / XL" or "S"
	IsEnabled   bool   `json:"is_enabled"`
	IsAvailable bool   `json:"is_available"`
}

type Image struct {
	Src       string `json:"src"`
	IsDefault bool   `json:"is_default"`
}

type productsPage struct {
	Data []Product `json:"data"`
}
