package repository

import (
	"context"
	"errors"

	"cognicart/internal/domain/model"
)

// 加算後の数量が model.MaxCartItemQuantity を超えるとき
var ErrQuantityLimit = errors.New("quantity limit exceeded")

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error)
	// 同一商品は数量加算。上限超過は ErrQuantityLimit。
	UpsertAdd(ctx context.Context, cartID int64, productID int64, addQty int) error
	UpdateQuantity(ctx context.Context, cartID int64, productID int64, qty int) error
	DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error
}
