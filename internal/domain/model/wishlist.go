package model

import "time"

// (user_id, product_id) は一意
type Wishlist struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_user_product" json:"user_id"`
	ProductID int64     `gorm:"not null;index;uniqueIndex:idx_user_product" json:"product_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
