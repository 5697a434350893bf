// Package pricing composes the discount sources applied at checkout: coupon,
// loyalty-point redemption and per-line quantity breaks. Amounts are computed
// with decimal arithmetic and converted back to float64 at the boundary, so
// percentage math and the final clamp are exact.
package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sarelalush/Orel-site/models"
)

// CouponResult is the outcome of validating a coupon against a subtotal.
// Invalid coupons carry a zero amount and a human-readable reason.
type CouponResult struct {
	Valid  bool    `json:"is_valid"`
	Reason string  `json:"message"`
	Amount float64 `json:"discount_amount"`
}

// ValidateCoupon checks activity, time window, usage cap and minimum purchase,
// then computes the discount amount: subtotal*value/100 for percentage
// coupons, the raw value for fixed ones.
func ValidateCoupon(coupon *models.Coupon, subtotal float64, now time.Time) CouponResult {
	if coupon == nil || !coupon.IsActive {
		return CouponResult{Reason: "coupon is not active"}
	}
	if now.Before(coupon.StartDate) {
		return CouponResult{Reason: "coupon is not valid yet"}
	}
	if coupon.EndDate != nil && now.After(*coupon.EndDate) {
		return CouponResult{Reason: "coupon has expired"}
	}
	if coupon.MaxUses != nil && coupon.UsesCount >= *coupon.MaxUses {
		return CouponResult{Reason: "coupon usage limit reached"}
	}
	if subtotal < coupon.MinPurchase {
		return CouponResult{Reason: fmt.Sprintf("minimum order amount is %.2f", coupon.MinPurchase)}
	}

	var amount decimal.Decimal
	sub := decimal.NewFromFloat(subtotal)
	value := decimal.NewFromFloat(coupon.DiscountValue)
	if coupon.DiscountType == models.DiscountTypePercentage {
		amount = sub.Mul(value).Div(decimal.NewFromInt(100))
	} else {
		amount = value
	}

	f, _ := amount.Round(2).Float64()
	return CouponResult{Valid: true, Reason: "coupon applied", Amount: f}
}

// LoyaltyDiscount converts redeemed points into a monetary amount using the
// deployment's configured point value.
func LoyaltyDiscount(points int, pointValue float64) float64 {
	if points <= 0 {
		return 0
	}
	f, _ := decimal.NewFromInt(int64(points)).
		Mul(decimal.NewFromFloat(pointValue)).
		Round(2).
		Float64()
	return f
}

// CapPoints limits a redemption so its monetary value never exceeds the cart
// subtotal.
func CapPoints(points int, subtotal, pointValue float64) int {
	if points <= 0 || pointValue <= 0 {
		return 0
	}
	max := int(decimal.NewFromFloat(subtotal).
		Div(decimal.NewFromFloat(pointValue)).
		IntPart())
	if points > max {
		return max
	}
	return points
}

// LineTotal prices one cart line, applying the product's quantity break once
// the line reaches minQty units. A zero minQty or percent disables the break.
func LineTotal(unitPrice float64, qty, minQty int, percent float64) float64 {
	if qty <= 0 {
		return 0
	}
	total := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(qty)))
	if minQty > 0 && percent > 0 && qty >= minQty {
		discount := total.Mul(decimal.NewFromFloat(percent)).Div(decimal.NewFromInt(100))
		total = total.Sub(discount)
	}
	f, _ := total.Round(2).Float64()
	return f
}

// FinalTotal subtracts both discount sources from the subtotal and clamps at
// zero. Each source is applied exactly once; since the composition is plain
// subtraction the result is order-independent.
func FinalTotal(subtotal, couponDiscount, pointsDiscount float64) float64 {
	total := decimal.NewFromFloat(subtotal).
		Sub(decimal.NewFromFloat(couponDiscount)).
		Sub(decimal.NewFromFloat(pointsDiscount))
	if total.IsNegative() {
		return 0
	}
	f, _ := total.Round(2).Float64()
	return f
}

// EarnedPoints is the number of points credited for a completed order total.
func EarnedPoints(total, earnRate float64) int {
	if total <= 0 || earnRate <= 0 {
		return 0
	}
	return int(decimal.NewFromFloat(total).
		Mul(decimal.NewFromFloat(earnRate)).
		IntPart())
}
