package couponControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/pricing"
)

type ValidateInput struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"required"`
}

// POST /catalog/coupons/validate
//
// Validation never mutates the coupon; uses_count only moves at checkout.
// Unknown codes and failed checks both answer 200 with is_valid=false so the
// client can show the reason inline.
func ValidateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ValidateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var coupon models.Coupon
		err := db.Where("code = ?", strings.ToUpper(strings.TrimSpace(input.Code))).
			First(&coupon).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, pricing.CouponResult{Reason: "coupon not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupon"})
			return
		}

		c.JSON(http.StatusOK, pricing.ValidateCoupon(&coupon, input.Subtotal, time.Now()))
	}
}

type CouponInput struct {
	Code          string     `json:"code" binding:"required"`
	DiscountType  string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue float64    `json:"discount_value" binding:"required,gt=0"`
	MinPurchase   float64    `json:"min_purchase"`
	MaxUses       *int       `json:"max_uses"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	IsActive      *bool      `json:"is_active"`
}

// GET /admin/coupons
func GetAllCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at desc").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.DiscountType == models.DiscountTypePercentage && input.DiscountValue > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Percentage discount cannot exceed 100"})
			return
		}

		coupon := models.Coupon{
			Code:          strings.ToUpper(strings.TrimSpace(input.Code)),
			DiscountType:  input.DiscountType,
			DiscountValue: input.DiscountValue,
			MinPurchase:   input.MinPurchase,
			MaxUses:       input.MaxUses,
			StartDate:     input.StartDate,
			EndDate:       input.EndDate,
			IsActive:      true,
		}
		if coupon.StartDate.IsZero() {
			coupon.StartDate = time.Now()
		}
		if input.IsActive != nil {
			coupon.IsActive = *input.IsActive
		}

		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

// PUT /admin/coupons/:id
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var coupon models.Coupon
		if err := db.First(&coupon, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.DiscountType == models.DiscountTypePercentage && input.DiscountValue > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Percentage discount cannot exceed 100"})
			return
		}

		coupon.Code = strings.ToUpper(strings.TrimSpace(input.Code))
		coupon.DiscountType = input.DiscountType
		coupon.DiscountValue = input.DiscountValue
		coupon.MinPurchase = input.MinPurchase
		coupon.MaxUses = input.MaxUses
		if !input.StartDate.IsZero() {
			coupon.StartDate = input.StartDate
		}
		coupon.EndDate = input.EndDate
		if input.IsActive != nil {
			coupon.IsActive = *input.IsActive
		}

		if err := db.Save(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// DELETE /admin/coupons/:id
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Coupon{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}
