package handler

import (
	"context"
	"net/http"
	"strconv"

	"cognicart/internal/config"
	"cognicart/internal/domain/model"
	"cognicart/internal/middleware"
	"cognicart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/admin/ordersのHTTP。ADMINのみ。
type AdminOrderHandler struct {
	uc *usecase.AdminOrderUsecase
}

// DI
func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/admin/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.RoleGuard(model.RoleAdmin))

	g.GET("", h.listAll)
	g.PUT("/:orderId/confirm", h.wrap(h.uc.Confirm))
	g.PUT("/:orderId/ship", h.wrap(h.uc.Ship))
	g.PUT("/:orderId/deliver", h.wrap(h.uc.Deliver))
	g.PUT("/:orderId/cancel", h.wrap(h.uc.Cancel))
	g.PUT("/:orderId/refund", h.wrap(h.uc.Refund))
	g.DELETE("/:orderId", h.delete)
}

func (h *AdminOrderHandler) listAll(c echo.Context) error {
	orders, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// 各遷移エンドポイントは形が同じなのでまとめる
func (h *AdminOrderHandler) wrap(op func(ctx context.Context, orderID int64) (*model.Order, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid orderId"})
		}
		order, err := op(c.Request().Context(), orderID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, order)
	}
}

func (h *AdminOrderHandler) delete(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid orderId"})
	}
	if err := h.uc.Delete(c.Request().Context(), orderID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
