package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sarelalush/Orel-site/config"
	"github.com/sarelalush/Orel-site/mailer"
	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/pricing"
)

type CheckoutInput struct {
	CouponCode    string `json:"coupon_code"`
	PointsToUse   int    `json:"points_to_use"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=card cod"`
}

var (
	errCartEmpty    = errors.New("cart is empty")
	errOutOfStock   = errors.New("insufficient stock")
	errBadCoupon    = errors.New("invalid coupon")
	errNotEnoughPts = errors.New("not enough points")
)

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// PlaceOrder converts the user's cart into an order inside one transaction:
// stock is locked and decremented per line, the coupon is re-validated and its
// uses_count bumped, points are debited, and the cart is cleared. Any failure
// rolls the whole thing back.
func PlaceOrder(db *gorm.DB, cfg *config.Config, hub *Hub, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var order models.Order
		var stockMsg string

		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
				return err
			}
			if len(cart.Items) == 0 {
				return errCartEmpty
			}

			var subtotal float64
			var items []models.OrderItem
			for _, line := range cart.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, "id = ?", line.ProductID).Error; err != nil {
					return err
				}
				if product.Stock < line.Quantity {
					stockMsg = fmt.Sprintf("Insufficient stock for %s", product.Name)
					return errOutOfStock
				}
				product.Stock -= line.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				unit := product.EffectivePrice()
				lineTotal := pricing.LineTotal(unit, line.Quantity,
					product.QuantityDiscountMin, product.QuantityDiscountPercent)
				subtotal += lineTotal

				items = append(items, models.OrderItem{
					ProductID:    product.ID,
					ProductName:  product.Name,
					ProductImage: product.ImageURL,
					Size:         line.Size,
					Color:        line.Color,
					UnitPrice:    unit,
					Quantity:     line.Quantity,
					LineTotal:    lineTotal,
				})
			}

			var couponDiscount float64
			var couponCode string
			if input.CouponCode != "" {
				var coupon models.Coupon
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("code = ?", input.CouponCode).First(&coupon).Error; err != nil {
					return errBadCoupon
				}
				result := pricing.ValidateCoupon(&coupon, subtotal, time.Now())
				if !result.Valid {
					return errBadCoupon
				}
				couponDiscount = result.Amount
				couponCode = coupon.Code
				coupon.UsesCount++
				if err := tx.Save(&coupon).Error; err != nil {
					return err
				}
			}

			pointsUsed := 0
			var pointsDiscount float64
			if input.PointsToUse > 0 {
				var account models.LoyaltyAccount
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("user_id = ?", userID).
					FirstOrCreate(&account, models.LoyaltyAccount{UserID: userID}).Error; err != nil {
					return err
				}
				if account.Balance < input.PointsToUse {
					return errNotEnoughPts
				}
				pointsUsed = pricing.CapPoints(input.PointsToUse,
					subtotal-couponDiscount, cfg.Loyalty.PointValue)
				pointsDiscount = pricing.LoyaltyDiscount(pointsUsed, cfg.Loyalty.PointValue)

				account.Balance -= pointsUsed
				if err := tx.Save(&account).Error; err != nil {
					return err
				}
			}

			order = models.Order{
				Ref:            generateOrderRef(),
				UserID:         userID,
				Items:          items,
				Subtotal:       subtotal,
				CouponCode:     couponCode,
				DiscountAmount: couponDiscount,
				PointsUsed:     pointsUsed,
				Total:          pricing.FinalTotal(subtotal, couponDiscount, pointsDiscount),
				Status:         models.OrderStatusPending,
				PaymentStatus:  models.PaymentStatusPending,
				PaymentMethod:  input.PaymentMethod,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			if pointsUsed > 0 {
				if err := tx.Create(&models.LoyaltyTransaction{
					UserID:      userID,
					Points:      -pointsUsed,
					Kind:        models.LoyaltyTxRedeem,
					OrderID:     &order.ID,
					Description: "Redeemed on order " + order.Ref,
				}).Error; err != nil {
					return err
				}
			}

			return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
		})

		switch {
		case err == errCartEmpty:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		case err == errOutOfStock:
			c.JSON(http.StatusConflict, gin.H{"error": stockMsg})
			return
		case err == errBadCoupon:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon is not valid for this order"})
			return
		case err == errNotEnoughPts:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough loyalty points"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		hub.BroadcastOrder(order)

		var user models.User
		if db.First(&user, "id = ?", userID).Error == nil {
			mail.SendOrderConfirmation(user.Email, user.Name, order.Ref, order.Total)
		}

		c.JSON(http.StatusCreated, order)
	}
}
