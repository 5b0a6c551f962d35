package repository

import (
	"context"

	"cognicart/internal/domain/model"
)

type RatingRepository interface {
	Create(ctx context.Context, r model.Rating) (model.Rating, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Rating, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r model.Review) (model.Review, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
}
