package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文時点の明細スナップショット。作成後は変更しない。
type OrderItem struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64           `gorm:"not null;index" json:"order_id"`
	ProductID     int64           `gorm:"not null;index" json:"product_id"`
	TitleSnapshot string          `gorm:"type:varchar(255);not null" json:"title_snapshot"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
