package catalog

import "strings"

const (
	CategoryCaps    = "caps"
	CategoryClothes = "clothes"
	CategoryOthers  = "others"
)

var (
	capKeywords     = []string{"cap", "hat"}
	clothesTags     = []string{"shirt", "tshirt", "t-shirt", "hoodie", "jacket", "sweater"}
	clothesKeywords = []string{"shirt", "hoodie", "jacket"}
)

// Categorize buckets a product by its tags and title keywords. Caps win over
// clothes; everything unmatched (mugs, bags, accessories) lands in others.
func Categorize(p Product) string {
	title := strings.ToLower(p.Title)
	tags := make(map[string]bool, len(p.Tags))
	for _, t := range p.Tags {
		tags[strings.ToLower(t)] = true
	}

	for _, k := range capKeywords {
		if tags[k] || strings.Contains(title, k) {
			return CategoryCaps
		}
	}
	for _, t := range clothesTags {
		if tags[t] {
			return CategoryClothes
		}
	}
	for _, k := range clothesKeywords {
		if strings.Contains(title, k) {
			return CategoryClothes
		}
	}
	return CategoryOthers
}
