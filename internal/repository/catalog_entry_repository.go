package repository

import (
	"context"

	"cognicart/internal/domain/model"
)

type CatalogEntryRepository interface {
	Create(ctx context.Context, e model.CatalogEntry) (model.CatalogEntry, error)
	FindByID(ctx context.Context, id int64) (model.CatalogEntry, error)
	FindByProductID(ctx context.Context, productID int64) (model.CatalogEntry, error)
	ListByStatus(ctx context.Context, status string) ([]model.CatalogEntry, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
