package server

import (
	"net/http"

	"cognicart/internal/config"
	"cognicart/internal/handler"

	"github.com/labstack/echo/v4"
)

// 全ハンドラの束。mainで組み立てて渡す。
type Handlers struct {
	Auth          *handler.AuthHandler
	Product       *handler.ProductHandler
	SellerProduct *handler.SellerProductHandler
	Cart          *handler.CartHandler
	Order         *handler.OrderHandler
	AdminOrder    *handler.AdminOrderHandler
	Wishlist      *handler.WishlistHandler
	Rating        *handler.RatingHandler
	Review        *handler.ReviewHandler
	Catalog       *handler.CatalogHandler
}

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Auth.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.SellerProduct.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.Wishlist.RegisterRoutes(e, cfg)
	h.Rating.RegisterRoutes(e, cfg)
	h.Review.RegisterRoutes(e, cfg)
	h.Catalog.RegisterRoutes(e, cfg)
}
