package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem persists one product+size selection within a cart. The price
// extensions are snapshotted at creation time and never re-read from the
// catalog. At most one row exists per (cart_id, product_id, size).
type CartItem struct {
	ID                   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID               uuid.UUID `gorm:"column:cart_id;type:uuid;not null;uniqueIndex:idx_cart_items_identity"`
	ProductID            uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_cart_items_identity"`
	UserID               uuid.UUID `gorm:"column:user_id;type:uuid;not null"`
	Size                 string    `gorm:"column:size;not null;uniqueIndex:idx_cart_items_identity"`
	Quantity             int       `gorm:"column:quantity;not null"`
	ListPriceExtCents    int       `gorm:"column:list_price_ext_cents;not null"`
	SellingPriceExtCents int       `gorm:"column:selling_price_ext_cents;not null"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
