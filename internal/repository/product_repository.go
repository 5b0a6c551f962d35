package repository

import (
	"context"
	"errors"

	"cognicart/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// /api/products/filter のクエリ層条件。
// 色・サイズ・在庫はクエリでは絞らず、usecase側でメモリ上で絞る。
type ProductFilterQuery struct {
	Category    *model.ProductCategory
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	MinDiscount *int
	Sort        string // "" / "price_asc" / "price_desc"
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListActive(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindByProductID(ctx context.Context, productID string) (model.Product, error)
	ListByCategory(ctx context.Context, category model.ProductCategory) ([]model.Product, error)
	Search(ctx context.Context, keyword string) ([]model.Product, error)
	Filter(ctx context.Context, q ProductFilterQuery) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
}
