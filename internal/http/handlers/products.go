package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metaadsspider/UrbanixStore/internal/http/middleware"
	"github.com/metaadsspider/UrbanixStore/internal/http/respond"
	"github.com/metaadsspider/UrbanixStore/internal/modules/catalog"
)

// ProductsHandler proxies the normalized upstream catalog.
type ProductsHandler struct {
	svc *catalog.Service
}

func NewProductsHandler(svc *catalog.Service) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List returns {products, shopId}. An empty upstream shop list is a success
// with no products, not an error.
func (h *ProductsHandler) List(c *gin.Context) {
	res, err := h.svc.Fetch(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	respond.OK(c, res)
}

// Show returns one product plus its plain-text description.
func (h *ProductsHandler) Show(c *gin.Context) {
	id := c.Param("id")

	p, err := h.svc.Product(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	respond.OK(c, gin.H{
		"product":         p,
		"descriptionText": p.PlainDescription(),
	})
}
