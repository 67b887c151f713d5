package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaadsspider/UrbanixStore/internal/printify"
)

func variant(id int64, title string, price int64, enabled bool) printify.Variant {
	return printify.Variant{ID: id, Title: title, Price: price, IsEnabled: enabled, IsAvailable: enabled, SKU: "SKU"}
}

func TestNormalizeSizesDedupAndOrder(t *testing.T) {
	p := Normalize(printify.Product{
		ID: "p1",
		Variants: []printify.Variant{
			variant(1, "Black / L", 1999, true),
			variant(2, "Black / XS", 1999, true),
			variant(3, "White / L", 1999, true),
			variant(4, "White / M", 1999, true),
		},
	})

	assert.Equal(t, []string{"XS", "M", "L"}, p.Sizes)
	assert.Equal(t, []string{"Black", "White"}, p.Colors)
}

func TestNormalizeSizeOrdering(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"canonical only", []string{"L", "XS", "M"}, []string{"XS", "M", "L"}},
		{"full range", []string{"5XL", "2XL", "XL", "XXS", "ONE SIZE"}, []string{"XXS", "XL", "2XL", "5XL", "ONE SIZE"}},
		{"numeric after canonical", []string{"32", "S", "28"}, []string{"S", "28", "32"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			variants := make([]printify.Variant, 0, len(tc.in))
			for i, s := range tc.in {
				variants = append(variants, variant(int64(i+1), s, 1000, true))
			}
			p := Normalize(printify.Product{ID: "p", Variants: variants})
			assert.Equal(t, tc.want, p.Sizes)
		})
	}
}

func TestNormalizePriceFromFirstEnabledVariant(t *testing.T) {
	p := Normalize(printify.Product{
		ID: "p1",
		Variants: []printify.Variant{
			variant(1, "S", 1599, false),
			variant(2, "M", 1999, true),
			variant(3, "L", 2499, true),
		},
	})

	assert.Equal(t, 19.99, p.PriceUSD)
	require.Len(t, p.Variants, 2)
	assert.Equal(t, 19.99, p.Variants[0].Price)
	assert.Equal(t, 24.99, p.Variants[1].Price)
}

func TestNormalizeNoEnabledVariants(t *testing.T) {
	p := Normalize(printify.Product{
		ID: "p1",
		Variants: []printify.Variant{
			variant(1, "S", 1599, false),
			variant(2, "M", 1999, false),
		},
	})

	assert.Zero(t, p.PriceUSD)
	assert.Empty(t, p.Variants)
	// Size extraction still runs over disabled variants.
	assert.Equal(t, []string{"S", "M"}, p.Sizes)
}

func TestNormalizeImages(t *testing.T) {
	t.Run("default image wins", func(t *testing.T) {
		p := Normalize(printify.Product{
			ID: "p1",
			Images: []printify.Image{
				{Src: "https://img/1.png"},
				{Src: "https://img/2.png", IsDefault: true},
			},
		})
		assert.Equal(t, "https://img/2.png", p.PrimaryImage)
		assert.Equal(t, []string{"https://img/1.png", "https://img/2.png"}, p.Images)
	})

	t.Run("first image fallback", func(t *testing.T) {
		p := Normalize(printify.Product{
			ID:     "p1",
			Images: []printify.Image{{Src: "https://img/1.png"}},
		})
		assert.Equal(t, "https://img/1.png", p.PrimaryImage)
	})

	t.Run("placeholder when no images", func(t *testing.T) {
		p := Normalize(printify.Product{ID: "p1"})
		assert.Equal(t, PlaceholderImage, p.PrimaryImage)
		assert.Equal(t, []string{PlaceholderImage}, p.Images)
	})
}

func TestNormalizePositionalFallback(t *testing.T) {
	// No whitelist match anywhere: last segment reads as the size.
	p := Normalize(printify.Product{
		ID: "p1",
		Variants: []printify.Variant{
			variant(1, "Walnut / Wide", 4999, true),
			variant(2, "Oak / Narrow", 4999, true),
		},
	})

	assert.Equal(t, []string{"Narrow", "Wide"}, p.Sizes)
	assert.Equal(t, []string{"Walnut", "Oak"}, p.Colors)
}

func TestNormalizePassThroughFields(t *testing.T) {
	p := Normalize(printify.Product{
		ID:          "p1",
		Title:       "Logo Tee",
		Description: "<p>Soft <b>cotton</b> tee</p>",
		Visible:     true,
		CreatedAt:   "2024-01-02 10:00:00+00:00",
	})

	assert.True(t, p.Visible)
	assert.Equal(t, "2024-01-02 10:00:00+00:00", p.CreatedAt)
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
	assert.Equal(t, "Soft cotton tee", p.PlainDescription())
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		title string
		tags  []string
		want  string
	}{
		{"Classic Dad Hat", nil, CategoryCaps},
		{"Urban Snapback", []string{"Cap"}, CategoryCaps},
		{"Oversized Hoodie", nil, CategoryClothes},
		{"Crew Neck", []string{"T-Shirt"}, CategoryClothes},
		{"Ceramic Mug", []string{"Drinkware"}, CategoryOthers},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			got := Categorize(Product{Title: tc.title, Tags: tc.tags})
			assert.Equal(t, tc.want, got)
		})
	}
}
