package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cognicart/internal/domain/model"
	"cognicart/internal/repository"

	"github.com/shopspring/decimal"
)

// usecase層の業務エラー。handler側でステータスへ変換する。
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

type ProductCreateInput struct {
	Title           string
	Category        string
	Brand           string
	Price           decimal.Decimal
	DiscountPercent int
	Color           string
	Material        string
	ImageURL        string
	Description     string
	Sizes           string
	InStock         bool
}

type ProductUpdateInput = ProductCreateInput

type ProductFilterInput struct {
	Category    string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	MinDiscount *int
	Colors      []string
	Sizes       []string
	InStock     *bool
	Sort        string
	Page        int
	PageSize    int
}

type ProductUsecase struct {
	products repository.ProductRepository
}

func NewProductUsecase(products repository.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.ListActive(ctx)
}

// 内部IDで1件取得。削除済みでも返す（直接参照は可視）。
func (u *ProductUsecase) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, err
	}
	return &p, nil
}

// 業務キー（prod_xxx）で1件取得
func (u *ProductUsecase) GetByProductID(ctx context.Context, productID string) (*model.Product, error) {
	p, err := u.products.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, err
	}
	return &p, nil
}

func (u *ProductUsecase) ListByCategory(ctx context.Context, raw string) ([]model.Product, error) {
	category, ok := model.ParseCategory(raw)
	if !ok {
		return nil, NewHTTPError(http.StatusBadRequest, "unknown category: "+raw)
	}
	return u.products.ListByCategory(ctx, category)
}

func (u *ProductUsecase) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "keyword is required")
	}
	return u.products.Search(ctx, keyword)
}

// 絞り込み。category/price/discountはDB側、color/size/stockとページングはメモリ側で処理する。
func (u *ProductUsecase) Filter(ctx context.Context, in ProductFilterInput) ([]model.Product, error) {
	q := repository.ProductFilterQuery{
		MinPrice:    in.MinPrice,
		MaxPrice:    in.MaxPrice,
		MinDiscount: in.MinDiscount,
		Sort:        in.Sort,
	}
	if in.Category != "" {
		category, ok := model.ParseCategory(in.Category)
		if !ok {
			return nil, NewHTTPError(http.StatusBadRequest, "unknown category: "+in.Category)
		}
		q.Category = &category
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return nil, NewHTTPError(http.StatusBadRequest, "minPrice must not exceed maxPrice")
	}

	products, err := u.products.Filter(ctx, q)
	if err != nil {
		return nil, err
	}

	filtered := products[:0:0]
	for _, p := range products {
		if len(in.Colors) > 0 && !matchAnyFold(p.Color, in.Colors) {
			continue
		}
		if len(in.Sizes) > 0 && !hasAnySize(p.Sizes, in.Sizes) {
			continue
		}
		if in.InStock != nil && p.InStock != *in.InStock {
			continue
		}
		filtered = append(filtered, p)
	}

	return paginate(filtered, in.Page, in.PageSize), nil
}

func matchAnyFold(v string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(v, c) {
			return true
		}
	}
	return false
}

// sizesはJSON配列の文字列（`["S","M"]`）なので要素一致で見る
func hasAnySize(sizesJSON string, wanted []string) bool {
	for _, s := range wanted {
		if strings.Contains(sizesJSON, `"`+s+`"`) {
			return true
		}
	}
	return false
}

func (u *ProductUsecase) Create(ctx context.Context, sellerID int64, in ProductCreateInput) (*model.Product, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "title is required")
	}
	category, ok := model.ParseCategory(in.Category)
	if !ok {
		return nil, NewHTTPError(http.StatusBadRequest, "unknown category: "+in.Category)
	}
	if in.Price.IsNegative() {
		return nil, NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "discountPercent must be between 0 and 100")
	}

	now := time.Now()
	p := model.Product{
		ProductID:       fmt.Sprintf("prod_%d", now.UnixMilli()),
		Title:           in.Title,
		Category:        category,
		Brand:           in.Brand,
		Price:           in.Price,
		DiscountPercent: in.DiscountPercent,
		Color:           in.Color,
		Material:        in.Material,
		ImageURL:        in.ImageURL,
		Description:     in.Description,
		Slug:            makeSlug(in.Title),
		Status:          model.ProductStatusActive,
		Visibility:      model.VisibilityPublic,
		InStock:         in.InStock,
		Sizes:           in.Sizes,
		SellerID:        &sellerID,
	}
	created, err := u.products.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductUpdateInput) (*model.Product, error) {
	if _, err := u.GetByID(ctx, id); err != nil {
		return nil, err
	}
	category, ok := model.ParseCategory(in.Category)
	if !ok {
		return nil, NewHTTPError(http.StatusBadRequest, "unknown category: "+in.Category)
	}
	if in.Price.IsNegative() {
		return nil, NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "discountPercent must be between 0 and 100")
	}

	p := model.Product{
		ID:              id,
		Title:           in.Title,
		Category:        category,
		Brand:           in.Brand,
		Price:           in.Price,
		DiscountPercent: in.DiscountPercent,
		Color:           in.Color,
		Material:        in.Material,
		ImageURL:        in.ImageURL,
		Description:     in.Description,
		Sizes:           in.Sizes,
		InStock:         in.InStock,
	}
	if err := u.products.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, err
	}
	return u.GetByID(ctx, id)
}

// 論理削除。status=deleted / visibility=privateにするだけで行は残す。
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.products.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}
	return nil
}

func paginate(products []model.Product, page, pageSize int) []model.Product {
	if pageSize <= 0 {
		return products
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []model.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// タイトルからslugを作る（小文字・英数以外はハイフン）
func makeSlug(title string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
