package auth

import (
	"time"

	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/models"
)

// mergeGuestState folds a guest's cart and wishlist into the user's rows on
// login. Cart lines with the same (product, size, color) sum their
// quantities; wishlist duplicates are skipped. The guest rows are deleted in
// the same transaction.
func mergeGuestState(db *gorm.DB, guestID, userID string) string {
	if guestID == "" {
		return "no-guest-state"
	}

	cartMerged, err := mergeGuestCartIntoUserCart(db, guestID, userID)
	if err != nil {
		return "merge-failed"
	}
	wishMerged, err := mergeGuestWishlist(db, guestID, userID)
	if err != nil {
		return "merge-failed"
	}
	if !cartMerged && !wishMerged {
		return "guest-state-empty"
	}
	return "merged-success"
}

func mergeGuestCartIntoUserCart(db *gorm.DB, guestID, userID string) (bool, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	var guestCart models.GuestCart
	if err := tx.Preload("Items").
		Where("guest_id = ?", guestID).
		First(&guestCart).Error; err != nil {
		tx.Rollback()
		return false, nil // nothing to merge
	}

	var userCart models.Cart
	err := tx.Preload("Items").
		Where("user_id = ?", userID).
		First(&userCart).Error
	if err == gorm.ErrRecordNotFound {
		userCart = models.Cart{UserID: userID}
		if err := tx.Create(&userCart).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	} else if err != nil {
		tx.Rollback()
		return false, err
	}

	for _, guestItem := range guestCart.Items {
		var userItem models.CartItem
		lookupErr := tx.Where(
			"cart_id = ? AND product_id = ? AND size = ? AND color = ?",
			userCart.CartID, guestItem.ProductID, guestItem.Size, guestItem.Color,
		).First(&userItem).Error

		if lookupErr == nil {
			userItem.Quantity += guestItem.Quantity
			userItem.AddedAt = time.Now()
			if err := tx.Save(&userItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}
		} else if lookupErr == gorm.ErrRecordNotFound {
			newItem := models.CartItem{
				CartID:       userCart.CartID,
				ProductID:    guestItem.ProductID,
				Size:         guestItem.Size,
				Color:        guestItem.Color,
				ProductName:  guestItem.ProductName,
				ProductImage: guestItem.ProductImage,
				UnitPrice:    guestItem.UnitPrice,
				Quantity:     guestItem.Quantity,
				AddedAt:      time.Now(),
			}
			if err := tx.Create(&newItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}
		} else {
			tx.Rollback()
			return false, lookupErr
		}
	}

	if err := tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}
	if err := tx.Delete(&guestCart).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return false, err
	}
	return true, nil
}

func mergeGuestWishlist(db *gorm.DB, guestID, userID string) (bool, error) {
	var guestItems []models.GuestWishlistItem
	if err := db.Where("guest_id = ?", guestID).Find(&guestItems).Error; err != nil {
		return false, err
	}
	if len(guestItems) == 0 {
		return false, nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	for _, guestItem := range guestItems {
		var existing models.WishlistItem
		err := tx.Where("user_id = ? AND product_id = ?", userID, guestItem.ProductID).
			First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			item := models.WishlistItem{UserID: userID, ProductID: guestItem.ProductID}
			if err := tx.Create(&item).Error; err != nil {
				tx.Rollback()
				return false, err
			}
		} else if err != nil {
			tx.Rollback()
			return false, err
		}
	}

	if err := tx.Where("guest_id = ?", guestID).Delete(&models.GuestWishlistItem{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return false, err
	}
	return true, nil
}
