package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"cognicart/internal/domain/model"
	repo "cognicart/internal/repository"
	"cognicart/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderTestDeps() (*OrderRepoMock, *OrderItemRepoMock, *CartRepoMock, *CartItemRepoMock, *ProductRepoMock, *usecase.OrderUsecase) {
	orders := new(OrderRepoMock)
	orderItems := new(OrderItemRepoMock)
	carts := new(CartRepoMock)
	cartItems := new(CartItemRepoMock)
	products := new(ProductRepoMock)

	tx := &txManagerStub{repos: &txReposStub{
		orders:     orders,
		orderItems: orderItems,
		carts:      carts,
		cartItems:  cartItems,
		products:   products,
	}}

	uc := usecase.NewOrderUsecase(orders, orderItems, tx)
	return orders, orderItems, carts, cartItems, products, uc
}

func validShipping() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		PaymentMethod: "COD",
		FirstName:     "Hana",
		LastName:      "Sato",
		Phone:         "0900000000",
		Address:       "1-2-3 Sample St",
		City:          "Tokyo",
		Pincode:       "100-0001",
	}
}

func TestOrderUsecase_PlaceOrder_FreeDeliveryOverThreshold(t *testing.T) {
	ctx := context.Background()
	orders, orderItems, carts, cartItems, products, uc := newOrderTestDeps()

	carts.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cartItems.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 1, CartID: 10, ProductID: 100, Quantity: 2},
		{ID: 2, CartID: 10, ProductID: 101, Quantity: 1},
	}, nil)
	products.On("FindByID", mock.Anything, int64(100)).Return(model.Product{
		ID: 100, Title: "Shoes", Price: decimal.NewFromInt(300), Status: model.ProductStatusActive,
	}, nil)
	products.On("FindByID", mock.Anything, int64(101)).Return(model.Product{
		ID: 101, Title: "Bag", Price: decimal.NewFromInt(700), Status: model.ProductStatusActive,
	}, nil)
	orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).Return(int64(55), nil)
	orderItems.On("CreateBulk", mock.Anything, int64(55), mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	carts.On("Clear", mock.Anything, int64(10)).Return(nil)

	out, err := uc.PlaceOrder(ctx, 1, validShipping())
	assert.NoError(t, err)

	//小計1300 > 999 なので送料0
	assert.True(t, out.Order.DeliveryFee.Equal(decimal.Zero), "fee=%s", out.Order.DeliveryFee)
	assert.True(t, out.Order.TotalAmount.Equal(decimal.NewFromInt(1300)), "total=%s", out.Order.TotalAmount)
	assert.Equal(t, model.OrderStatusPending, out.Order.Status)
	assert.Equal(t, model.PaymentStatusPending, out.Order.PaymentStatus)
	assert.Equal(t, int64(55), out.Order.ID)

	//採番はORD- + 8桁
	assert.Len(t, out.Order.OrderNumber, 12)
	assert.Equal(t, "ORD-", out.Order.OrderNumber[:4])

	//スナップショット
	assert.Len(t, out.Items, 2)
	assert.Equal(t, "Shoes", out.Items[0].TitleSnapshot)
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.NewFromInt(600)))

	orders.AssertExpectations(t)
	orderItems.AssertExpectations(t)
	carts.AssertExpectations(t)
}

func TestOrderUsecase_PlaceOrder_DeliveryFeeApplied(t *testing.T) {
	ctx := context.Background()
	orders, orderItems, carts, cartItems, products, uc := newOrderTestDeps()

	carts.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cartItems.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 1, CartID: 10, ProductID: 100, Quantity: 1},
	}, nil)
	products.On("FindByID", mock.Anything, int64(100)).Return(model.Product{
		ID: 100, Title: "Mug", Price: decimal.NewFromInt(500), Status: model.ProductStatusActive,
	}, nil)
	orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).Return(int64(56), nil)
	orderItems.On("CreateBulk", mock.Anything, int64(56), mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	carts.On("Clear", mock.Anything, int64(10)).Return(nil)

	out, err := uc.PlaceOrder(ctx, 1, validShipping())
	assert.NoError(t, err)

	//小計500は閾値以下なので送料99
	assert.True(t, out.Order.DeliveryFee.Equal(decimal.NewFromInt(99)))
	assert.True(t, out.Order.TotalAmount.Equal(decimal.NewFromInt(599)))
}

func TestOrderUsecase_PlaceOrder_ExactThresholdStillCharged(t *testing.T) {
	ctx := context.Background()
	orders, orderItems, carts, cartItems, products, uc := newOrderTestDeps()

	carts.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cartItems.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 1, CartID: 10, ProductID: 100, Quantity: 1},
	}, nil)
	products.On("FindByID", mock.Anything, int64(100)).Return(model.Product{
		ID: 100, Title: "Lamp", Price: decimal.NewFromInt(999), Status: model.ProductStatusActive,
	}, nil)
	orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).Return(int64(57), nil)
	orderItems.On("CreateBulk", mock.Anything, int64(57), mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	carts.On("Clear", mock.Anything, int64(10)).Return(nil)

	out, err := uc.PlaceOrder(ctx, 1, validShipping())
	assert.NoError(t, err)

	//ちょうど999は「超」ではないので送料あり
	assert.True(t, out.Order.DeliveryFee.Equal(decimal.NewFromInt(99)))
	assert.True(t, out.Order.TotalAmount.Equal(decimal.NewFromInt(1098)))
}

func TestOrderUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()
	orders, _, carts, cartItems, _, uc := newOrderTestDeps()

	carts.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cartItems.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{}, nil)

	_, err := uc.PlaceOrder(ctx, 1, validShipping())
	assertErrContains(t, err, "cart is empty")

	//注文は一切作られない
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_NoCart(t *testing.T) {
	ctx := context.Background()
	orders, _, carts, _, _, uc := newOrderTestDeps()

	carts.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{}, repo.ErrNotFound)

	_, err := uc.PlaceOrder(ctx, 1, validShipping())
	assertErrContains(t, err, "cart is empty")
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_MissingShippingAddress(t *testing.T) {
	ctx := context.Background()
	_, _, _, _, _, uc := newOrderTestDeps()

	in := validShipping()
	in.Address = ""

	_, err := uc.PlaceOrder(ctx, 1, in)
	assertErrContains(t, err, "shipping address")
}

func TestOrderUsecase_PlaceOrder_DeletedProductRejected(t *testing.T) {
	ctx := context.Background()
	orders, _, carts, cartItems, products, uc := newOrderTestDeps()

	carts.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)
	cartItems.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 1, CartID: 10, ProductID: 100, Quantity: 1},
	}, nil)
	products.On("FindByID", mock.Anything, int64(100)).Return(model.Product{
		ID: 100, Title: "Old", Price: decimal.NewFromInt(100), Status: model.ProductStatusDeleted,
	}, nil)

	_, err := uc.PlaceOrder(ctx, 1, validShipping())
	assertErrContains(t, err, "no longer available")
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_GetMine_OtherUsersOrderHidden(t *testing.T) {
	ctx := context.Background()
	orders, orderItems, _, _, _, uc := newOrderTestDeps()
	_ = orderItems

	orders.On("FindByID", mock.Anything, int64(5)).Return(model.Order{ID: 5, UserID: 2}, nil)

	_, err := uc.GetMine(ctx, 1, 5)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
