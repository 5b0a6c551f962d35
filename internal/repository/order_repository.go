package repository

import (
	"context"
	"time"

	"cognicart/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// ユーザーの注文履歴（新しい順）
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	//管理者用の注文一覧
	ListAll(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	// DELIVERED遷移と同時にdelivered_at/payment_statusを書く
	MarkDelivered(ctx context.Context, orderID int64, at time.Time) error
	Delete(ctx context.Context, orderID int64) error
}
