package usecase_test

import (
	"context"
	"testing"

	"cognicart/internal/domain/model"
	repo "cognicart/internal/repository"
	"cognicart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRatingUsecase_Add_Success(t *testing.T) {
	ctx := context.Background()
	ratings := new(RatingRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewRatingUsecase(ratings, products)

	products.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100}, nil)
	ratings.On("Create", mock.Anything, model.Rating{UserID: 1, ProductID: 100, Value: 4}).
		Return(model.Rating{ID: 9, UserID: 1, ProductID: 100, Value: 4}, nil)

	out, err := uc.Add(ctx, 1, 100, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), out.ID)
}

func TestRatingUsecase_Add_OutOfRange(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewRatingUsecase(new(RatingRepoMock), new(ProductRepoMock))

	_, err := uc.Add(ctx, 1, 100, 0)
	assertErrContains(t, err, "between 1 and 5")

	_, err = uc.Add(ctx, 1, 100, 5.5)
	assertErrContains(t, err, "between 1 and 5")
}

func TestRatingUsecase_ListByProduct(t *testing.T) {
	ctx := context.Background()
	ratings := new(RatingRepoMock)
	uc := usecase.NewRatingUsecase(ratings, new(ProductRepoMock))

	ratings.On("ListByProductID", mock.Anything, int64(100)).Return([]model.Rating{
		{Value: 5}, {Value: 4}, {Value: 3},
	}, nil)

	out, err := uc.ListByProduct(ctx, 100)
	assert.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestReviewUsecase_Add_EmptyText(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewReviewUsecase(new(ReviewRepoMock), new(ProductRepoMock))

	_, err := uc.Add(ctx, 1, 100, "   ")
	assertErrContains(t, err, "review text")
}

func TestReviewUsecase_Add_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	products := new(ProductRepoMock)
	uc := usecase.NewReviewUsecase(new(ReviewRepoMock), products)

	products.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Add(ctx, 1, 999, "great")
	assertErrContains(t, err, "product not found")
}
