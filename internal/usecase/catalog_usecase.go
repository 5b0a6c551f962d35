package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"cognicart/internal/domain/model"
	"cognicart/internal/repository"
)

// Engine 2 向けのカタログ受付。blobを保存してpendingのまま返す。
type CatalogUsecase struct {
	entries  repository.CatalogEntryRepository
	products repository.ProductRepository
}

func NewCatalogUsecase(entries repository.CatalogEntryRepository, products repository.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{entries: entries, products: products}
}

// 業務キーで商品を引き、任意JSONをそのまま文字列で保存する
func (u *CatalogUsecase) Submit(ctx context.Context, productID string, payload map[string]interface{}) (*model.CatalogEntry, error) {
	product, err := u.products.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid catalog payload")
	}

	entry := model.CatalogEntry{
		ProductID:   product.ID,
		CatalogData: string(raw),
		Status:      model.CatalogStatusPendingEngine2,
	}
	created, err := u.entries.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *CatalogUsecase) GetByProduct(ctx context.Context, productID string) (*model.CatalogEntry, error) {
	product, err := u.products.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, err
	}
	entry, err := u.entries.FindByProductID(ctx, product.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "catalog entry not found")
		}
		return nil, err
	}
	return &entry, nil
}

func (u *CatalogUsecase) ListPending(ctx context.Context) ([]model.CatalogEntry, error) {
	return u.entries.ListByStatus(ctx, model.CatalogStatusPendingEngine2)
}

func (u *CatalogUsecase) UpdateStatus(ctx context.Context, entryID int64, status string) (*model.CatalogEntry, error) {
	if status == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "status is required")
	}
	if _, err := u.entries.FindByID(ctx, entryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "catalog entry not found")
		}
		return nil, err
	}
	if err := u.entries.UpdateStatus(ctx, entryID, status); err != nil {
		return nil, err
	}
	entry, err := u.entries.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
