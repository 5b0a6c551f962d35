package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"cognicart/internal/domain/model"
	"cognicart/internal/repository"
)

type ReviewUsecase struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
}

func NewReviewUsecase(reviews repository.ReviewRepository, products repository.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, products: products}
}

func (u *ReviewUsecase) Add(ctx context.Context, userID, productID int64, text string) (*model.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "review text is required")
	}
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, err
	}
	created, err := u.reviews.Create(ctx, model.Review{UserID: userID, ProductID: productID, Text: text})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	return u.reviews.ListByProductID(ctx, productID)
}
