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
	"github.com/metaadsspider/UrbanixStore/internal/modules/checkout"
	"github.com/metaadsspider/UrbanixStore/internal/shared/apperr"
)

type CheckoutHandler struct {
	svc     *checkout.Service
	carts   *cart.Service
	catalog *catalog.Service
	cookie  *cartcookie.Codec
}

func NewCheckoutHandler(svc *checkout.Service, carts *cart.Service, cat *catalog.Service, cookie *cartcookie.Codec) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, carts: carts, catalog: cat, cookie: cookie}
}

// FromCart builds the order handoff for the whole cart.
func (h *CheckoutHandler) FromCart(c *gin.Context) {
	cartID, ok := h.cookie.GetCartID(c)
	if !ok {
		middleware.Fail(c, apperr.InvalidErr("Your cart is empty", nil))
		return
	}

	items := h.carts.Items(cartID)
	if len(items) == 0 {
		middleware.Fail(c, apperr.InvalidErr("Your cart is empty", nil))
		return
	}

	respond.OK(c, h.svc.OrderFromCart(items))
}

type buyNowRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// BuyNow builds a single-item handoff straight from the product page.
func (h *CheckoutHandler) BuyNow(c *gin.Context) {
	var req buyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid order", validation.FromBindError(err, &req)))
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

	respond.OK(c, h.svc.BuyNow(cart.Item{
		ProductID: p.ID,
		Title:     p.Title,
		Image:     p.PrimaryImage,
		PriceUSD:  p.PriceUSD,
		Size:      size,
		Color:     strings.TrimSpace(req.Color),
		Quantity:  req.Quantity,
	}))
}
