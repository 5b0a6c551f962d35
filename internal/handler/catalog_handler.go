package handler

import (
	"net/http"
	"strconv"

	"cognicart/internal/config"
	"cognicart/internal/domain/model"
	"cognicart/internal/middleware"
	"cognicart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Engine 2 カタログ受付のHTTP
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

type SubmitCatalogRequest struct {
	ProductID   string                 `json:"productId"`
	CatalogData map[string]interface{} `json:"catalogData"`
}

type UpdateCatalogStatusRequest struct {
	Status string `json:"status"`
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/engine2/catalog")
	g.Use(middleware.AuthJWT(cfg))

	//登録はSELLER/ADMIN
	sg := g.Group("")
	sg.Use(middleware.RoleGuard(model.RoleSeller, model.RoleAdmin))
	sg.POST("", h.submit)
	sg.GET("/product/:productId", h.getByProduct)

	//運用系はADMINのみ
	ag := g.Group("")
	ag.Use(middleware.RoleGuard(model.RoleAdmin))
	ag.GET("/pending", h.listPending)
	ag.PUT("/:id/status", h.updateStatus)
}

func (h *CatalogHandler) submit(c echo.Context) error {
	var req SubmitCatalogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "productId is required"})
	}
	if req.CatalogData == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "catalogData is required"})
	}

	entry, err := h.uc.Submit(c.Request().Context(), req.ProductID, req.CatalogData)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *CatalogHandler) getByProduct(c echo.Context) error {
	entry, err := h.uc.GetByProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) listPending(c echo.Context) error {
	entries, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *CatalogHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCatalogStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	entry, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}
