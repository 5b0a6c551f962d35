package usecase

import (
	"context"
	"errors"
	"net/http"

	"cognicart/internal/domain/model"
	"cognicart/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	minQuantity = 1
	maxQuantity = model.MaxCartItemQuantity
)

// カート1行分のレスポンス（商品情報マージ済み）
type CartLine struct {
	Product  model.Product   `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartOutput struct {
	Items      []CartLine      `json:"items"`
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type CartUsecase struct {
	carts     repository.CartRepository
	cartItems repository.CartItemRepository
	products  repository.ProductRepository
}

func NewCartUsecase(carts repository.CartRepository, cartItems repository.CartItemRepository, products repository.ProductRepository) *CartUsecase {
	return &CartUsecase{carts: carts, cartItems: cartItems, products: products}
}

func (u *CartUsecase) Get(ctx context.Context, userID int64) (*CartOutput, error) {
	cart, err := u.carts.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.buildOutput(ctx, cart.ID)
}

// 追加。既に同じ商品があれば数量を加算する。
func (u *CartUsecase) Add(ctx context.Context, userID, productID int64, quantity int) (*CartOutput, error) {
	if quantity < minQuantity || quantity > maxQuantity {
		return nil, NewHTTPError(http.StatusBadRequest, "quantity must be between 1 and 100")
	}

	product, err := u.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, err
	}
	if product.Status != model.ProductStatusActive {
		return nil, NewHTTPError(http.StatusBadRequest, "product is not available")
	}

	cart, err := u.carts.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.cartItems.UpsertAdd(ctx, cart.ID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrQuantityLimit) {
			return nil, NewHTTPError(http.StatusBadRequest, "cart quantity must not exceed 100 per product")
		}
		return nil, err
	}
	return u.buildOutput(ctx, cart.ID)
}

// 数量の上書き更新
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*CartOutput, error) {
	if quantity < minQuantity || quantity > maxQuantity {
		return nil, NewHTTPError(http.StatusBadRequest, "quantity must be between 1 and 100")
	}
	cart, err := u.carts.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.cartItems.UpdateQuantity(ctx, cart.ID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not in cart")
		}
		return nil, err
	}
	return u.buildOutput(ctx, cart.ID)
}

func (u *CartUsecase) Remove(ctx context.Context, userID, productID int64) (*CartOutput, error) {
	cart, err := u.carts.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.cartItems.DeleteByCartAndProduct(ctx, cart.ID, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not in cart")
		}
		return nil, err
	}
	return u.buildOutput(ctx, cart.ID)
}

func (u *CartUsecase) Clear(ctx context.Context, userID int64) error {
	cart, err := u.carts.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return u.carts.Clear(ctx, cart.ID)
}

// 明細と商品をまとめてレスポンス形へ
func (u *CartUsecase) buildOutput(ctx context.Context, cartID int64) (*CartOutput, error) {
	items, err := u.cartItems.ListByCartID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	out := &CartOutput{Items: []CartLine{}, Subtotal: decimal.Zero}
	for _, item := range items {
		product, err := u.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		out.Items = append(out.Items, CartLine{Product: product, Quantity: item.Quantity, Subtotal: subtotal})
		out.TotalItems += item.Quantity
		out.Subtotal = out.Subtotal.Add(subtotal)
	}
	return out, nil
}
