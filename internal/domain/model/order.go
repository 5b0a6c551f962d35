package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

// 許可される遷移だけを表にする。表に無い遷移は不正。
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusShipped, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
	// DELIVERED / CANCELLED / REFUNDED は終端
}

// CanTransitionTo は現在値から next へ進めるかを判定する。
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

type Order struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber   string          `gorm:"type:varchar(20);not null;uniqueIndex" json:"order_number"`
	UserID        int64           `gorm:"not null;index" json:"user_id"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"delivery_fee"`
	PaymentMethod string          `gorm:"type:varchar(30)" json:"payment_method"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`

	// 配送先は注文時点のスナップショット
	ShippingFirstName string `gorm:"type:varchar(100)" json:"shipping_first_name"`
	ShippingLastName  string `gorm:"type:varchar(100)" json:"shipping_last_name"`
	ShippingAddress   string `gorm:"type:varchar(500)" json:"shipping_address"`
	ShippingCity      string `gorm:"type:varchar(100)" json:"shipping_city"`
	ShippingPincode   string `gorm:"type:varchar(20)" json:"shipping_pincode"`
	ShippingPhone     string `gorm:"type:varchar(30)" json:"shipping_phone"`

	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
