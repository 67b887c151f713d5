package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metaadsspider/UrbanixStore/internal/http/cartcookie"
	"github.com/metaadsspider/UrbanixStore/internal/http/handlers"
	"github.com/metaadsspider/UrbanixStore/internal/http/middleware"
	"github.com/metaadsspider/UrbanixStore/internal/modules/cart"
	"github.com/metaadsspider/UrbanixStore/internal/modules/catalog"
	"github.com/metaadsspider/UrbanixStore/internal/modules/checkout"
	"github.com/metaadsspider/UrbanixStore/internal/modules/currency"
)

type Deps struct {
	Catalog  *catalog.Service
	Currency *currency.Service
	Carts    *cart.Service
	Checkout *checkout.Service
	Cookie   *cartcookie.Codec
}

func NewRouter(logger *slog.Logger, deps Deps) *gin.Engine {
	r := gin.New()

	// ErrorHandler wraps Recovery: a recovered panic only records its error,
	// so the outer handler must still run to write the 500 response.
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	products := handlers.NewProductsHandler(deps.Catalog)
	carts := handlers.NewCartHandler(deps.Carts, deps.Catalog, deps.Currency, deps.Cookie)
	curr := handlers.NewCurrencyHandler(deps.Currency)
	co := handlers.NewCheckoutHandler(deps.Checkout, deps.Carts, deps.Catalog, deps.Cookie)

	api := r.Group("/api")
	{
		api.GET("/products", products.List)
		api.GET("/products/:id", products.Show)

		api.GET("/cart", carts.Show)
		api.POST("/cart/items", carts.AddItem)
		api.PATCH("/cart/items/:id", carts.UpdateQuantity)
		api.DELETE("/cart/items/:id", carts.RemoveItem)
		api.DELETE("/cart", carts.Clear)

		api.GET("/currency", curr.Show)
		api.PUT("/currency", curr.Select)

		api.POST("/checkout", co.FromCart)
		api.POST("/checkout/buy-now", co.BuyNow)
	}

	return r
}
