package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/metaadsspider/UrbanixStore/internal/http/cartcookie"
	"github.com/metaadsspider/UrbanixStore/internal/http/middleware"
	"github.com/metaadsspider/UrbanixStore/internal/http/respond"
	"github.com/metaadsspider/UrbanixStore/internal/http/validation"
	"github.com/metaadsspider/UrbanixStore/internal/modules/cart"
	"github.com/metaadsspider/UrbanixStore/internal/modules/catalog"
	"github.com/metaadsspider/UrbanixStore/internal/modules/currency"
	"github.com/metaadsspider/UrbanixStore/internal/shared/apperr"
)

type CartHandler struct {
	carts    *cart.Service
	catalog  *catalog.Service
	currency *currency.Service
	cookie   *cartcookie.Codec
}

func NewCartHandler(carts *cart.Service, cat *catalog.Service, curr *currency.Service, cookie *cartcookie.Codec) *CartHandler {
	return &CartHandler{carts: carts, catalog: cat, currency: curr, cookie: cookie}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// cartID resolves the session cart from the signed cookie, creating one when
// create is set.
func (h *CartHandler) cartID(c *gin.Context, create bool) (string, bool) {
	if id, ok := h.cookie.GetCartID(c); ok {
		return id, true
	}
	if !create {
		return "", false
	}
	id := h.carts.NewCart()
	h.cookie.Set(c, id)
	return id, true
}

func (h *CartHandler) page(cartID string) any {
	return cart.BuildCartPage(h.carts.Items(cartID), h.currency)
}

// Show returns the cart page; a missing cookie reads as an empty cart.
func (h *CartHandler) Show(c *gin.Context) {
	id, ok := h.cartID(c, false)
	if !ok {
		respond.OK(c, cart.BuildCartPage(nil, h.currency))
		return
	}
	respond.OK(c, h.page(id))
}

// AddItem merges a line into the session cart. A sized product without a
// chosen size is rejected before it reaches the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid cart item", validation.FromBindError(err, &req)))
		return
	}

	p, err := h.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	size := strings.TrimSpace(req.Size)
	if len(p.Sizes) > 0 && size == "" {
		middleware.Fail(c, apperr.InvalidErr("Please choose a size", map[string]string{"size": "This field is required."}))
		return
	}
	if size == "" {
		size = "One Size"
	}

	id, _ := h.cartID(c, true)
	h.carts.Add(id, cart.AddInput{
		ProductID: p.ID,
		Title:     p.Title,
		Image:     p.PrimaryImage,
		PriceUSD:  p.PriceUSD,
		Size:      size,
		Color:     strings.TrimSpace(req.Color),
		Quantity:  req.Quantity,
	})

	respond.OK(c, h.page(id))
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid quantity", validation.FromBindError(err, &req)))
		return
	}

	id, ok := h.cartID(c, false)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Cart item not found"))
		return
	}

	if err := h.carts.UpdateQuantity(id, c.Param("id"), *req.Quantity); err != nil {
		middleware.Fail(c, err)
		return
	}
	respond.OK(c, h.page(id))
}

// RemoveItem deletes a line.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := h.cartID(c, false)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Cart item not found"))
		return
	}

	if err := h.carts.Remove(id, c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	respond.OK(c, h.page(id))
}

// Clear empties the session cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if id, ok := h.cartID(c, false); ok {
		h.carts.Clear(id)
	}
	respond.NoContent(c)
}
