package catalog

import (
	"regexp"
	"strings"
)

// PlaceholderImage is used when upstream ships a product without images.
const PlaceholderImage = "/placeholder.svg"

// Product is the canonical storefront record derived from one upstream
// catalog entry. Immutable once built for a fetch cycle.
type Product struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PriceUSD     float64   `json:"priceUSD"`
	Images       []string  `json:"images"`
	PrimaryImage string    `json:"primaryImage"`
	Sizes        []string  `json:"sizes"`
	Colors       []string  `json:"colors"`
	Variants     []Variant `json:"variants"`
	Tags         []string  `json:"tags"`
	Visible      bool      `json:"visible"`
	CreatedAt    string    `json:"createdAt"`
	Category     string    `json:"category"`
}

type Variant struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	SKU         string  `json:"sku"`
	IsAvailable bool    `json:"isAvailable"`
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// PlainDescription strips markup for plain-text contexts (order messages,
// search snippets). Upstream descriptions arrive as HTML fragments.
func (p Product) PlainDescription() string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(p.Description, ""))
}
