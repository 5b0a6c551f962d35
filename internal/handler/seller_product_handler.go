package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cognicart/internal/config"
	"cognicart/internal/domain/model"
	"cognicart/internal/middleware"
	"cognicart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 商品の登録・更新・削除。SELLERかADMINのみ。
type SellerProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewSellerProductHandler(uc *usecase.ProductUsecase) *SellerProductHandler {
	return &SellerProductHandler{uc: uc}
}

type ProductRequest struct {
	Title           string      `json:"title"`
	Category        string      `json:"category"`
	Brand           string      `json:"brand"`
	Price           json.Number `json:"price"`
	DiscountPercent int         `json:"discountPercent"`
	Color           string      `json:"color"`
	Material        string      `json:"material"`
	ImageURL        string      `json:"imageUrl"`
	Description     string      `json:"description"`
	Sizes           []string    `json:"sizes"`
	InStock         bool        `json:"inStock"`
}

func (h *SellerProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/products")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.RoleGuard(model.RoleSeller, model.RoleAdmin))

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *SellerProductHandler) create(c echo.Context) error {
	sellerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	in, err := bindProductInput(c)
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.Create(c.Request().Context(), sellerID, *in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *SellerProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	in, err := bindProductInput(c)
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.Update(c.Request().Context(), id, *in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *SellerProductHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// リクエストをusecase入力へ。priceはdecimalに変換してから渡す。
func bindProductInput(c echo.Context) (*usecase.ProductCreateInput, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	price, err := decimal.NewFromString(req.Price.String())
	if err != nil {
		return nil, usecase.NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	sizes := ""
	if len(req.Sizes) > 0 {
		raw, err := sizesJSON(req.Sizes)
		if err != nil {
			return nil, usecase.NewHTTPError(http.StatusBadRequest, "invalid sizes")
		}
		sizes = raw
	}

	return &usecase.ProductCreateInput{
		Title:           req.Title,
		Category:        req.Category,
		Brand:           req.Brand,
		Price:           price,
		DiscountPercent: req.DiscountPercent,
		Color:           req.Color,
		Material:        req.Material,
		ImageURL:        req.ImageURL,
		Description:     req.Description,
		Sizes:           sizes,
		InStock:         req.InStock,
	}, nil
}

func sizesJSON(sizes []string) (string, error) {
	raw, err := json.Marshal(sizes)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
