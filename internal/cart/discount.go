package cart

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// DiscountPercent derives the integer percentage gap between the list total
// and the pre-coupon selling total, truncated toward zero. Any non-positive
// list total yields 0.
func DiscountPercent(listTotalCents, sellingTotalCents int) int {
	if listTotalCents <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(listTotalCents - sellingTotalCents)).
		Mul(oneHundred).
		Div(decimal.NewFromInt(int64(listTotalCents)))
	return int(pct.IntPart())
}
