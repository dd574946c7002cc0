package response

import (
	"time"

	"apartment-booking/internal/domain/coupon"
)

type CouponResponse struct {
	Code            string    `json:"code"`
	DiscountPercent string    `json:"discountPercent"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		Code:            c.Code().String(),
		DiscountPercent: c.Discount().Decimal().String(),
		ExpiresAt:       c.ExpiresAt(),
	}
}
