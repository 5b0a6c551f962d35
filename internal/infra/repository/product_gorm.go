package repository

import (
	"context"
	"errors"
	"strings"

	"cognicart/internal/domain/model"
	repo "cognicart/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 公開中（active かつ public）の条件
func activeScope(tx *gorm.DB) *gorm.DB {
	return tx.Where("status = ? AND visibility = ?", model.ProductStatusActive, model.VisibilityPublic)
}

// 公開商品の一覧
func (r *ProductGormRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	var products []model.Product

	tx := activeScope(r.db.WithContext(ctx).Model(&model.Product{}))
	if err := tx.Order("created_at desc").Order("id desc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// IDで商品を取得（論理削除済みでも返す）
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 業務キー（product_id）で商品を取得
func (r *ProductGormRepository) FindByProductID(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// カテゴリの公開商品一覧
func (r *ProductGormRepository) ListByCategory(ctx context.Context, category model.ProductCategory) ([]model.Product, error) {
	var products []model.Product

	tx := activeScope(r.db.WithContext(ctx).Model(&model.Product{})).
		Where("category = ?", category)

	if err := tx.Order("created_at desc").Order("id desc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// タイトル/説明/ブランドの部分一致検索（大文字小文字は無視）
func (r *ProductGormRepository) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	var products []model.Product

	like := "%" + strings.TrimSpace(keyword) + "%"
	tx := activeScope(r.db.WithContext(ctx).Model(&model.Product{})).
		Where("title ILIKE ? OR description ILIKE ? OR brand ILIKE ?", like, like, like)

	if err := tx.Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// クエリ層で絞れる条件だけ絞って返す。
// 色・サイズ・在庫の絞り込みとページングはusecase側。
func (r *ProductGormRepository) Filter(ctx context.Context, q repo.ProductFilterQuery) ([]model.Product, error) {
	var products []model.Product

	tx := activeScope(r.db.WithContext(ctx).Model(&model.Product{}))

	if q.Category != nil {
		tx = tx.Where("category = ?", *q.Category)
	}

	//価格帯
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}

	if q.MinDiscount != nil {
		tx = tx.Where("discount_percent >= ?", *q.MinDiscount)
	}

	//sort
	switch q.Sort {
	case "price_asc":
		tx = tx.Order("price asc").Order("id asc")
	case "price_desc":
		tx = tx.Order("price desc").Order("id desc")
	default:
		tx = tx.Order("created_at desc").Order("id desc")
	}

	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"title":            p.Title,
		"category":         p.Category,
		"brand":            p.Brand,
		"price":            p.Price,
		"discount_percent": p.DiscountPercent,
		"color":            p.Color,
		"material":         p.Material,
		"image_url":        p.ImageURL,
		"description":      p.Description,
		"sizes":            p.Sizes,
		"in_stock":         p.InStock,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（行は消さずstatus/visibilityを落とす）
func (r *ProductGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     model.ProductStatusDeleted,
		"visibility": model.VisibilityPrivate,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
