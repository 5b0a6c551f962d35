package usecase

import (
	"context"
	"errors"
	"net/http"

	"cognicart/internal/domain/model"
	"cognicart/internal/repository"
)

type RatingUsecase struct {
	ratings  repository.RatingRepository
	products repository.ProductRepository
}

func NewRatingUsecase(ratings repository.RatingRepository, products repository.ProductRepository) *RatingUsecase {
	return &RatingUsecase{ratings: ratings, products: products}
}

func (u *RatingUsecase) Add(ctx context.Context, userID, productID int64, value float64) (*model.Rating, error) {
	if value < 1 || value > 5 {
		return nil, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, err
	}
	created, err := u.ratings.Create(ctx, model.Rating{UserID: userID, ProductID: productID, Value: value})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *RatingUsecase) ListByProduct(ctx context.Context, productID int64) ([]model.Rating, error) {
	return u.ratings.ListByProductID(ctx, productID)
}
