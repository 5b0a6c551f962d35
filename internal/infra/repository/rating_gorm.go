package repository

import (
	"context"

	"cognicart/internal/domain/model"

	"gorm.io/gorm"
)

type RatingGormRepository struct {
	db *gorm.DB
}

// DI
func NewRatingGormRepository(db *gorm.DB) *RatingGormRepository {
	return &RatingGormRepository{db: db}
}

func (r *RatingGormRepository) Create(ctx context.Context, rating model.Rating) (model.Rating, error) {
	if err := r.db.WithContext(ctx).Create(&rating).Error; err != nil {
		return model.Rating{}, err
	}
	return rating, nil
}

func (r *RatingGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Rating, error) {
	var items []model.Rating

	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Rating{}, err
	}

	return items, nil
}

type ReviewGormRepository struct {
	db *gorm.DB
}

// DI
func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, review model.Review) (model.Review, error) {
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		return model.Review{}, err
	}
	return review, nil
}

func (r *ReviewGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	var items []model.Review

	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Review{}, err
	}

	return items, nil
}
