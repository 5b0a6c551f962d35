package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"cognicart/internal/domain/model"
	"cognicart/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 配送料。小計が閾値を超えたら無料。
var (
	freeDeliveryThreshold = decimal.NewFromInt(999)
	deliveryFee           = decimal.NewFromInt(99)
)

type PlaceOrderInput struct {
	PaymentMethod string
	FirstName     string
	LastName      string
	Phone         string
	Address       string
	City          string
	Pincode       string
}

type OrderOutput struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

type OrderUsecase struct {
	orders     repository.OrderRepository
	orderItems repository.OrderItemRepository
	tx         repository.TransactionManager
}

func NewOrderUsecase(orders repository.OrderRepository, orderItems repository.OrderItemRepository, tx repository.TransactionManager) *OrderUsecase {
	return &OrderUsecase{orders: orders, orderItems: orderItems, tx: tx}
}

// 注文確定。明細作成とカート削除まで1トランザクションで行う。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (*OrderOutput, error) {
	if strings.TrimSpace(in.Address) == "" || strings.TrimSpace(in.City) == "" || strings.TrimSpace(in.Pincode) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "shipping address is required")
	}

	var out *OrderOutput
	err := u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest, "cart is empty")
			}
			return err
		}
		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		//明細スナップショットと小計
		subtotal := decimal.Zero
		items := make([]model.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			product, err := r.Products().FindByID(ctx, ci.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return NewHTTPError(http.StatusBadRequest, "product no longer available")
				}
				return err
			}
			if product.Status != model.ProductStatusActive {
				return NewHTTPError(http.StatusBadRequest, "product no longer available")
			}
			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
			items = append(items, model.OrderItem{
				ProductID:     product.ID,
				TitleSnapshot: product.Title,
				UnitPrice:     product.Price,
				Quantity:      ci.Quantity,
				Subtotal:      lineTotal,
			})
			subtotal = subtotal.Add(lineTotal)
		}

		fee := deliveryFee
		if subtotal.GreaterThan(freeDeliveryThreshold) {
			fee = decimal.Zero
		}

		order := model.Order{
			OrderNumber:   newOrderNumber(),
			UserID:        userID,
			Status:        model.OrderStatusPending,
			TotalAmount:   subtotal.Add(fee),
			DeliveryFee:   fee,
			PaymentMethod: in.PaymentMethod,
			PaymentStatus: model.PaymentStatusPending,

			ShippingFirstName: in.FirstName,
			ShippingLastName:  in.LastName,
			ShippingAddress:   in.Address,
			ShippingCity:      in.City,
			ShippingPincode:   in.Pincode,
			ShippingPhone:     in.Phone,
		}
		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return err
		}
		order.ID = orderID

		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return err
		}
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return err
		}

		out = &OrderOutput{Order: order, Items: items}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *OrderUsecase) ListMine(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUserID(ctx, userID)
}

func (u *OrderUsecase) GetMine(ctx context.Context, userID, orderID int64) (*OrderOutput, error) {
	order, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return nil, err
	}
	//他人の注文は存在を伏せる
	if order.UserID != userID {
		return nil, NewHTTPError(http.StatusNotFound, "order not found")
	}
	items, err := u.orderItems.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderOutput{Order: order, Items: items}, nil
}

// 注文番号の採番（ORD- + UUID先頭8桁）
func newOrderNumber() string {
	id := uuid.NewString()
	return "ORD-" + strings.ToUpper(id[:8])
}
