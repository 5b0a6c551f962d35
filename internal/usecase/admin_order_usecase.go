package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cognicart/internal/domain/model"
	"cognicart/internal/repository"
)

type AdminOrderUsecase struct {
	orders     repository.OrderRepository
	orderItems repository.OrderItemRepository
	tx         repository.TransactionManager
}

func NewAdminOrderUsecase(orders repository.OrderRepository, orderItems repository.OrderItemRepository, tx repository.TransactionManager) *AdminOrderUsecase {
	return &AdminOrderUsecase{orders: orders, orderItems: orderItems, tx: tx}
}

func (u *AdminOrderUsecase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

func (u *AdminOrderUsecase) Confirm(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.transition(ctx, orderID, model.OrderStatusConfirmed)
}

func (u *AdminOrderUsecase) Ship(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.transition(ctx, orderID, model.OrderStatusShipped)
}

// 配達完了。delivered_atを記録し、支払いをcompletedへ。
func (u *AdminOrderUsecase) Deliver(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := u.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(model.OrderStatusDelivered) {
		return nil, NewHTTPError(http.StatusConflict, "cannot transition from "+string(order.Status)+" to "+string(model.OrderStatusDelivered))
	}
	if err := u.orders.MarkDelivered(ctx, orderID, time.Now()); err != nil {
		return nil, err
	}
	return u.findOrder(ctx, orderID)
}

func (u *AdminOrderUsecase) Cancel(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.transition(ctx, orderID, model.OrderStatusCancelled)
}

func (u *AdminOrderUsecase) Refund(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.transition(ctx, orderID, model.OrderStatusRefunded)
}

// 注文の物理削除。明細→注文の順でトランザクション内で消す。
func (u *AdminOrderUsecase) Delete(ctx context.Context, orderID int64) error {
	if _, err := u.findOrder(ctx, orderID); err != nil {
		return err
	}
	return u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return err
		}
		return r.Orders().Delete(ctx, orderID)
	})
}

// 遷移表で正当性を確認してから状態を更新する
func (u *AdminOrderUsecase) transition(ctx context.Context, orderID int64, next model.OrderStatus) (*model.Order, error) {
	order, err := u.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, NewHTTPError(http.StatusConflict, "cannot transition from "+string(order.Status)+" to "+string(next))
	}
	if err := u.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}

func (u *AdminOrderUsecase) findOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return nil, err
	}
	return &order, nil
}

