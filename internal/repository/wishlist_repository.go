package repository

import (
	"context"

	"cognicart/internal/domain/model"
)

type WishlistRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.Wishlist, error)
	Exists(ctx context.Context, userID int64, productID int64) (bool, error)
	Create(ctx context.Context, w model.Wishlist) error
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
