package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/metaadsspider/UrbanixStore/internal/printify"
)

// sizePattern whitelists tokens that count as clothing sizes. Variant titles
// follow the "Color / Size" convention, so anything else is treated as a
// color, not a size.
var sizePattern = regexp.MustCompile(`(?i)^(XXS|XS|S|M|L|XL|2XL|3XL|4XL|5XL|ONE SIZE|\d+(\.\d+)?)$`)

var sizeOrder = []string{"XXS", "XS", "S", "M", "L", "XL", "2XL", "3XL", "4XL", "5XL"}

func sizeIndex(s string) int {
	u := strings.ToUpper(s)
	for i, v := range sizeOrder {
		if v == u {
			return i
		}
	}
	return -1
}

// sortSizes orders tokens by the canonical size sequence. Tokens in the
// canonical list always precede tokens outside it; two outside tokens compare
// lexicographically.
func sortSizes(sizes []string) {
	sort.SliceStable(sizes, func(i, j int) bool {
		a, b := sizeIndex(sizes[i]), sizeIndex(sizes[j])
		switch {
		case a != -1 && b != -1:
			return a < b
		case a != -1:
			return true
		case b != -1:
			return false
		default:
			return sizes[i] < sizes[j]
		}
	})
}

func splitTitle(title string) []string {
	parts := strings.Split(title, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// extractOptions pulls size and color tokens out of the variant titles.
// Primary strategy: whitelist match per segment. If that yields no sizes at
// all, fall back to the positional "Color / Size" reading: last segment is
// the size, everything before it a color.
func extractOptions(variants []printify.Variant) (sizes, colors []string) {
	sizes = []string{}
	colors = []string{}

	for _, v := range variants {
		for _, part := range splitTitle(v.Title) {
			if sizePattern.MatchString(part) {
				sizes = appendUnique(sizes, part)
			} else {
				colors = appendUnique(colors, part)
			}
		}
	}

	if len(sizes) == 0 {
		colors = []string{}
		for _, v := range variants {
			parts := splitTitle(v.Title)
			if len(parts) == 0 {
				continue
			}
			sizes = appendUnique(sizes, parts[len(parts)-1])
			for _, c := range parts[:len(parts)-1] {
				colors = appendUnique(colors, c)
			}
		}
	}

	sortSizes(sizes)
	return sizes, colors
}

// Normalize builds the canonical Product for one upstream record. It is a
// pure function: no partial products, no mutation of the input.
func Normalize(raw printify.Product) Product {
	sizes, colors := extractOptions(raw.Variants)

	// Price comes from the first enabled variant, minor units to major.
	var priceUSD float64
	for _, v := range raw.Variants {
		if v.IsEnabled {
			priceUSD = float64(v.Price) / 100
			break
		}
	}

	variants := make([]Variant, 0, len(raw.Variants))
	for _, v := range raw.Variants {
		if !v.IsEnabled {
			continue
		}
		variants = append(variants, Variant{
			ID:          v.ID,
			Title:       v.Title,
			Price:       float64(v.Price) / 100,
			SKU:         v.SKU,
			IsAvailable: v.IsAvailable,
		})
	}

	primaryImage := ""
	images := make([]string, 0, len(raw.Images))
	for _, img := range raw.Images {
		if img.Src == "" {
			continue
		}
		images = append(images, img.Src)
		if img.IsDefault && primaryImage == "" {
			primaryImage = img.Src
		}
	}
	if len(images) == 0 {
		images = []string{PlaceholderImage}
	}
	if primaryImage == "" {
		primaryImage = images[0]
	}

	tags := raw.Tags
	if tags == nil {
		tags = []string{}
	}

	p := Product{
		ID:           raw.ID,
		Title:        raw.Title,
		Description:  raw.Description,
		PriceUSD:     priceUSD,
		Images:       images,
		PrimaryImage: primaryImage,
		Sizes:        sizes,
		Colors:       colors,
		Variants:     variants,
		Tags:         tags,
		Visible:      raw.Visible,
		CreatedAt:    raw.CreatedAt,
	}
	p.Category = Categorize(p)
	return p
}
