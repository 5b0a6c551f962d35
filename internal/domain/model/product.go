package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryElectronics   ProductCategory = "ELECTRONICS"
	CategoryFashion       ProductCategory = "FASHION"
	CategoryHomeKitchen   ProductCategory = "HOME_KITCHEN"
	CategorySportsFitness ProductCategory = "SPORTS_FITNESS"
	CategoryBooks         ProductCategory = "BOOKS"
)

// ParseCategory は表記ゆれをまとめて正規化する。
func ParseCategory(s string) (ProductCategory, bool) {
	switch s {
	case "electronics", "ELECTRONICS":
		return CategoryElectronics, true
	case "fashion", "FASHION":
		return CategoryFashion, true
	case "home & kitchen", "home_kitchen", "HOME_KITCHEN":
		return CategoryHomeKitchen, true
	case "sports & fitness", "sports_fitness", "SPORTS_FITNESS":
		return CategorySportsFitness, true
	case "books", "BOOKS":
		return CategoryBooks, true
	default:
		return "", false
	}
}

const (
	ProductStatusActive  = "active"
	ProductStatusDeleted = "deleted"

	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type Product struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       string          `gorm:"column:product_id;type:varchar(64);not null;uniqueIndex" json:"product_id"`
	Title           string          `gorm:"type:varchar(255);not null" json:"title"`
	Category        ProductCategory `gorm:"type:varchar(30);not null;index" json:"category"`
	Brand           string          `gorm:"type:varchar(100)" json:"brand"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	DiscountPercent int             `gorm:"not null;default:0" json:"discount_percent"`
	Color           string          `gorm:"type:varchar(50)" json:"color"`
	Material        string          `gorm:"type:varchar(100)" json:"material"`
	ImageURL        string          `gorm:"type:varchar(500)" json:"image_url"`
	Description     string          `gorm:"type:text" json:"description"`
	Slug            string          `gorm:"type:varchar(300)" json:"slug"`
	Status          string          `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Visibility      string          `gorm:"type:varchar(20);not null;default:'public'" json:"visibility"`
	Rating          float64         `gorm:"not null;default:0" json:"rating"`
	ReviewsCount    int             `gorm:"not null;default:0" json:"reviews_count"`
	InStock         bool            `gorm:"not null;default:true" json:"in_stock"`
	Sizes           string          `gorm:"type:varchar(500)" json:"sizes"` // JSON配列の文字列
	SellerID        *int64          `gorm:"index" json:"seller_id,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
