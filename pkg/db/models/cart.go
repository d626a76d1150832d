package models

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-user aggregate. The four totals columns are derived from
// the item set plus the coupon amount and are only written by the aggregation
// fold; Version backs the optimistic concurrency check on recompute-and-save.
type Cart struct {
	ID                     uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID                 uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	TotalItemCount         int        `gorm:"column:total_item_count;not null;default:0"`
	TotalListPriceCents    int        `gorm:"column:total_list_price_cents;not null;default:0"`
	TotalSellingPriceCents int        `gorm:"column:total_selling_price_cents;not null;default:0"`
	DiscountPercent        int        `gorm:"column:discount_percent;not null;default:0"`
	CouponCode             *string    `gorm:"column:coupon_code"`
	CouponAmountCents      int        `gorm:"column:coupon_amount_cents;not null;default:0"`
	Version                int64      `gorm:"column:version;not null;default:0"`
	Items                  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt              time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
