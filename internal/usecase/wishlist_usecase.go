package usecase

import (
	"context"
	"errors"
	"net/http"

	"cognicart/internal/domain/model"
	"cognicart/internal/repository"
)

type WishlistUsecase struct {
	wishlists repository.WishlistRepository
	products  repository.ProductRepository
}

func NewWishlistUsecase(wishlists repository.WishlistRepository, products repository.ProductRepository) *WishlistUsecase {
	return &WishlistUsecase{wishlists: wishlists, products: products}
}

// 商品情報をマージして返す
func (u *WishlistUsecase) List(ctx context.Context, userID int64) ([]model.Product, error) {
	entries, err := u.wishlists.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(entries))
	for _, e := range entries {
		p, err := u.products.FindByID(ctx, e.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (u *WishlistUsecase) Add(ctx context.Context, userID, productID int64) error {
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	//重複は409で返す
	exists, err := u.wishlists.Exists(ctx, userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return NewHTTPError(http.StatusConflict, "product already in wishlist")
	}

	return u.wishlists.Create(ctx, model.Wishlist{UserID: userID, ProductID: productID})
}

// 対象商品がウィッシュリストに入っているか
func (u *WishlistUsecase) Contains(ctx context.Context, userID, productID int64) (bool, error) {
	return u.wishlists.Exists(ctx, userID, productID)
}

func (u *WishlistUsecase) Remove(ctx context.Context, userID, productID int64) error {
	if err := u.wishlists.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not in wishlist")
		}
		return err
	}
	return nil
}

func (u *WishlistUsecase) Clear(ctx context.Context, userID int64) error {
	return u.wishlists.DeleteAllByUserID(ctx, userID)
}
