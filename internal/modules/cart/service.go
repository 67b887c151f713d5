package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/metaadsspider/UrbanixStore/internal/shared/apperr"
)

// Service holds session carts in memory, keyed by cart id. Lifetime is the
// browser session; nothing is persisted.
type Service struct {
	mu    sync.Mutex
	carts map[string][]Item
}

func NewService() *Service {
	return &Service{carts: make(map[string][]Item)}
}

// NewCart allocates a fresh session cart and returns its id.
func (s *Service) NewCart() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.carts[id] = []Item{}
	s.mu.Unlock()
	return id
}

// Items returns a copy of the cart's lines. An unknown cart id reads as
// empty: the signed cookie may outlive a server restart.
func (s *Service) Items(cartID string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[cartID]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Add merges the input into the cart by its (product, size, color) identity.
func (s *Service) Add(cartID string, in AddInput) Item {
	id := lineID(in.ProductID, in.Size, in.Color)

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[cartID]
	for i, it := range items {
		if it.ID == id {
			items[i].Quantity += in.Quantity
			s.carts[cartID] = items
			return items[i]
		}
	}

	item := Item{
		ID:        id,
		ProductID: in.ProductID,
		Title:     in.Title,
		Image:     in.Image,
		PriceUSD:  in.PriceUSD,
		Size:      in.Size,
		Color:     in.Color,
		Quantity:  in.Quantity,
	}
	s.carts[cartID] = append(items, item)
	return item
}

// UpdateQuantity sets a line's quantity. Anything below 1 removes the line.
func (s *Service) UpdateQuantity(cartID, itemID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[cartID]
	for i, it := range items {
		if it.ID != itemID {
			continue
		}
		if qty < 1 {
			s.carts[cartID] = append(items[:i], items[i+1:]...)
			return nil
		}
		items[i].Quantity = qty
		s.carts[cartID] = items
		return nil
	}
	return apperr.NotFoundErr("Cart item not found")
}

// Remove deletes a line outright.
func (s *Service) Remove(cartID, itemID string) error {
	return s.UpdateQuantity(cartID, itemID, 0)
}

// Clear empties the cart.
func (s *Service) Clear(cartID string) {
	s.mu.Lock()
	s.carts[cartID] = []Item{}
	s.mu.Unlock()
}

// Totals recomputes the item count and USD subtotal.
func Totals(items []Item) (count int, totalUSD float64) {
	for _, it := range items {
		count += it.Quantity
		totalUSD += it.PriceUSD * float64(it.Quantity)
	}
	return count, totalUSD
}
