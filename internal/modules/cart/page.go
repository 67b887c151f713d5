package cart

import (
	"github.com/metaadsspider/UrbanixStore/internal/modules/currency"
	"github.com/metaadsspider/UrbanixStore/pkg/view"
)

// BuildCartPage maps cart lines into the display model. Totals are computed
// in USD and only the display strings carry the converted currency.
func BuildCartPage(items []Item, curr *currency.Service) view.CartPage {
	page := view.CartPage{Items: make([]view.CartItem, 0, len(items))}

	for _, it := range items {
		line := it.PriceUSD * float64(it.Quantity)
		page.Items = append(page.Items, view.CartItem{
			ID:           it.ID,
			ProductID:    it.ProductID,
			Title:        it.Title,
			Image:        it.Image,
			Size:         it.Size,
			Color:        it.Color,
			Quantity:     it.Quantity,
			PriceUSD:     it.PriceUSD,
			LineTotalUSD: line,
			UnitPrice:    curr.Format(it.PriceUSD),
			LineTotal:    curr.Format(line),
		})
	}

	count, totalUSD := Totals(items)
	page.TotalItems = count
	page.TotalPriceUSD = totalUSD
	page.Currency = curr.Snapshot().Currency
	page.Total = curr.Format(totalUSD)
	return page
}
