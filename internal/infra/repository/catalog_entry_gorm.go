package repository

import (
	"context"
	"errors"
	"time"

	"cognicart/internal/domain/model"
	repo "cognicart/internal/repository"

	"gorm.io/gorm"
)

type CatalogEntryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCatalogEntryGormRepository(db *gorm.DB) *CatalogEntryGormRepository {
	return &CatalogEntryGormRepository{db: db}
}

func (r *CatalogEntryGormRepository) Create(ctx context.Context, e model.CatalogEntry) (model.CatalogEntry, error) {
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return model.CatalogEntry{}, err
	}
	return e, nil
}

func (r *CatalogEntryGormRepository) FindByID(ctx context.Context, id int64) (model.CatalogEntry, error) {
	var e model.CatalogEntry
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CatalogEntry{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CatalogEntry{}, err
	}
	return e, nil
}

func (r *CatalogEntryGormRepository) FindByProductID(ctx context.Context, productID int64) (model.CatalogEntry, error) {
	var e model.CatalogEntry

	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id desc").
		First(&e).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CatalogEntry{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CatalogEntry{}, err
	}
	return e, nil
}

func (r *CatalogEntryGormRepository) ListByStatus(ctx context.Context, status string) ([]model.CatalogEntry, error) {
	var items []model.CatalogEntry

	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.CatalogEntry{}, err
	}

	return items, nil
}

// ステータス変更。pendingを抜けた時刻をprocessed_atに残す。
func (r *CatalogEntryGormRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	values := map[string]interface{}{
		"status":       status,
		"processed_at": time.Now(),
	}
	if status == model.CatalogStatusPendingEngine2 {
		values["processed_at"] = nil
	}

	res := r.db.WithContext(ctx).
		Model(&model.CatalogEntry{}).
		Where("id = ?", id).
		Updates(values)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
