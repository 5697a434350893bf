package pricing

import (
	"testing"
	"time"

	"github.com/sarelalush/Orel-site/models"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func activeCoupon(kind string, value float64) *models.Coupon {
	return &models.Coupon{
		Code:          "SAVE",
		DiscountType:  kind,
		DiscountValue: value,
		StartDate:     now.Add(-24 * time.Hour),
		IsActive:      true,
	}
}

func TestValidateCoupon(t *testing.T) {
	expired := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	maxed := 3

	tests := []struct {
		name       string
		coupon     *models.Coupon
		subtotal   float64
		wantValid  bool
		wantAmount float64
	}{
		{"nil coupon", nil, 100, false, 0},
		{"percentage", activeCoupon(models.DiscountTypePercentage, 20), 200, true, 40},
		{"fixed", activeCoupon(models.DiscountTypeFixed, 30), 200, true, 30},
		{
			"inactive",
			&models.Coupon{DiscountType: models.DiscountTypeFixed, DiscountValue: 30, StartDate: now.Add(-time.Hour)},
			200, false, 0,
		},
		{
			"expired",
			&models.Coupon{DiscountType: models.DiscountTypeFixed, DiscountValue: 30, StartDate: now.Add(-48 * time.Hour), EndDate: &expired, IsActive: true},
			200, false, 0,
		},
		{
			"not started yet",
			&models.Coupon{DiscountType: models.DiscountTypeFixed, DiscountValue: 30, StartDate: future, IsActive: true},
			200, false, 0,
		},
		{
			"usage cap reached",
			&models.Coupon{DiscountType: models.DiscountTypeFixed, DiscountValue: 30, StartDate: now.Add(-time.Hour), MaxUses: &maxed, UsesCount: 3, IsActive: true},
			200, false, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCoupon(tt.coupon, tt.subtotal, now)
			if got.Valid != tt.wantValid || got.Amount != tt.wantAmount {
				t.Errorf("got valid=%v amount=%v, want valid=%v amount=%v",
					got.Valid, got.Amount, tt.wantValid, tt.wantAmount)
			}
			if got.Reason == "" {
				t.Error("reason must never be empty")
			}
		})
	}
}

func TestValidateCouponMinPurchase(t *testing.T) {
	coupon := activeCoupon(models.DiscountTypePercentage, 10)
	coupon.MinPurchase = 500

	if got := ValidateCoupon(coupon, 300, now); got.Valid || got.Amount != 0 {
		t.Errorf("below minimum: got %+v", got)
	}
	if got := ValidateCoupon(coupon, 500, now); !got.Valid || got.Amount != 50 {
		t.Errorf("at minimum: got %+v", got)
	}
}

func TestFinalTotalClampsAtZero(t *testing.T) {
	tests := []struct {
		subtotal, coupon, points float64
		want                     float64
	}{
		{100, 30, 80, 0}, // discounts exceed subtotal
		{200, 20, 0, 180},
		{200, 0, 50, 150},
		{99.99, 99.99, 0, 0},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := FinalTotal(tt.subtotal, tt.coupon, tt.points); got != tt.want {
			t.Errorf("FinalTotal(%v, %v, %v) = %v, want %v",
				tt.subtotal, tt.coupon, tt.points, got, tt.want)
		}
	}
}

func TestLoyaltyDiscount(t *testing.T) {
	if got := LoyaltyDiscount(500, 0.01); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
	if got := LoyaltyDiscount(-10, 0.01); got != 0 {
		t.Errorf("negative points: got %v", got)
	}
}

func TestCapPoints(t *testing.T) {
	tests := []struct {
		points     int
		subtotal   float64
		pointValue float64
		want       int
	}{
		{500, 100, 0.01, 500},     // worth 5, well under subtotal
		{20000, 100, 0.01, 10000}, // capped at subtotal's point value
		{100, 0, 0.01, 0},
		{0, 100, 0.01, 0},
		{100, 100, 0, 0},
	}
	for _, tt := range tests {
		if got := CapPoints(tt.points, tt.subtotal, tt.pointValue); got != tt.want {
			t.Errorf("CapPoints(%d, %v, %v) = %d, want %d",
				tt.points, tt.subtotal, tt.pointValue, got, tt.want)
		}
	}
}

func TestLineTotalQuantityBreak(t *testing.T) {
	tests := []struct {
		name        string
		unit        float64
		qty, minQty int
		percent     float64
		want        float64
	}{
		{"no break configured", 100, 3, 0, 0, 300},
		{"below threshold", 100, 1, 2, 10, 100},
		{"at threshold", 100, 2, 2, 10, 180},
		{"above threshold", 100, 5, 2, 10, 450},
		{"zero quantity", 100, 0, 2, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineTotal(tt.unit, tt.qty, tt.minQty, tt.percent); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEarnedPoints(t *testing.T) {
	if got := EarnedPoints(249.99, 1.0); got != 249 {
		t.Errorf("got %d, want 249", got)
	}
	if got := EarnedPoints(100, 0.5); got != 50 {
		t.Errorf("got %d, want 50", got)
	}
	if got := EarnedPoints(0, 1.0); got != 0 {
		t.Errorf("zero total: got %d", got)
	}
}
