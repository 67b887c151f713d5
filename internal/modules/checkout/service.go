package checkout

import (
	"fmt"
	"strings"

	"github.com/metaadsspider/UrbanixStore/internal/modules/cart"
	"github.com/metaadsspider/UrbanixStore/internal/modules/currency"
)

// Orders are never transmitted programmatically. The service renders a
// human-readable summary the client copies to the clipboard before opening
// the Instagram profile to paste it into a DM.
type Handoff struct {
	Message      string `json:"message"`
	Link         string `json:"link"`
	Instructions string `json:"instructions"`
}

type Service struct {
	instagramURL string
	currency     *currency.Service
}

func NewService(instagramURL string, curr *currency.Service) *Service {
	return &Service{instagramURL: instagramURL, currency: curr}
}

// OrderFromCart renders the full-cart order message. All prices, line and
// total, follow the active display currency.
func (s *Service) OrderFromCart(items []cart.Item) Handoff {
	var b strings.Builder
	b.WriteString("Hi! I'd like to place an order:\n\n")

	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it.Title)
		fmt.Fprintf(&b, "   Size: %s\n", it.Size)
		if it.Color != "" {
			fmt.Fprintf(&b, "   Color: %s\n", it.Color)
		}
		fmt.Fprintf(&b, "   Qty: %d\n", it.Quantity)
		fmt.Fprintf(&b, "   Price: %s\n\n", s.currency.Format(it.PriceUSD*float64(it.Quantity)))
	}

	_, totalUSD := cart.Totals(items)
	fmt.Fprintf(&b, "Total: %s\n", s.currency.Format(totalUSD))
	b.WriteString("\nPlease confirm availability and payment details.")

	return s.handoff(b.String())
}

// BuyNow renders the single-item order message from the product page. The
// caller resolves the size (the HTTP boundary owns the "One Size" default).
func (s *Service) BuyNow(it cart.Item) Handoff {
	var b strings.Builder
	b.WriteString("Hi! I'd like to order:\n\n")
	fmt.Fprintf(&b, "%s\n", it.Title)
	fmt.Fprintf(&b, "Size: %s\n", it.Size)
	if it.Color != "" {
		fmt.Fprintf(&b, "Color: %s\n", it.Color)
	}
	fmt.Fprintf(&b, "Qty: %d\n", it.Quantity)
	fmt.Fprintf(&b, "Price: %s\n", s.currency.Format(it.PriceUSD*float64(it.Quantity)))
	b.WriteString("\nPlease confirm availability!")

	return s.handoff(b.String())
}

func (s *Service) handoff(message string) Handoff {
	return Handoff{
		Message:      message,
		Link:         s.instagramURL,
		Instructions: "Order details copied to clipboard! Paste it in Instagram DM.",
	}
}
