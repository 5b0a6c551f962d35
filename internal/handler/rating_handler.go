package handler

import (
	"net/http"
	"strconv"

	"cognicart/internal/config"
	"cognicart/internal/middleware"
	"cognicart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/ratingsのHTTP
type RatingHandler struct {
	uc *usecase.RatingUsecase
}

// DI
func NewRatingHandler(uc *usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

type AddRatingRequest struct {
	ProductID int64   `json:"productId"`
	Value     float64 `json:"rating"`
}

func (h *RatingHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/api/ratings/product/:productId", h.listByProduct)

	g := e.Group("/api/ratings")
	g.Use(middleware.AuthJWT(cfg))
	g.POST("", h.add)
}

func (h *RatingHandler) add(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddRatingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	rating, err := h.uc.Add(c.Request().Context(), userID, req.ProductID, req.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) listByProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid productId"})
	}

	ratings, err := h.uc.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ratings)
}
