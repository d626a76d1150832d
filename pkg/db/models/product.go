package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is a catalog entry. List price is the pre-discount sticker price,
// selling price is what the line item is actually charged at.
type Product struct {
	ID                uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU               string         `gorm:"column:sku;not null;uniqueIndex"`
	Title             string         `gorm:"column:title;not null"`
	Description       *string        `gorm:"column:description"`
	Sizes             pq.StringArray `gorm:"column:sizes;type:text[]"`
	ListPriceCents    int            `gorm:"column:list_price_cents;not null"`
	SellingPriceCents int            `gorm:"column:selling_price_cents;not null"`
	IsActive          bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
