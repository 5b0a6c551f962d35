package model

import "time"

// Engine 2 に渡すカタログ情報。ここでは保存するだけで処理はしない。
const CatalogStatusPendingEngine2 = "pending_engine2_processing"

type CatalogEntry struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64      `gorm:"not null;index" json:"product_id"`
	CatalogData string     `gorm:"type:text;not null" json:"catalog_data"` // JSON文字列
	Status      string     `gorm:"type:varchar(50);not null;default:'pending_engine2_processing';index" json:"status"`
	ProcessedAt *time.Time `gorm:"index" json:"processed_at"` // pending中はnil

}
