package models

import "time"

// WishlistItem is keyed by product only; variants do not split wishlist rows.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;uniqueIndex:idx_wishlist_entry" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_entry" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GuestWishlistItem mirrors WishlistItem for anonymous sessions and is merged
// into the user wishlist on login.
type GuestWishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GuestID   string    `gorm:"index;uniqueIndex:idx_guest_wishlist_entry" json:"guest_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_guest_wishlist_entry" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CompareItem is one slot in a user's comparison tray. The tray is capped;
// the handler rejects inserts past the cap instead of evicting.
type CompareItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;uniqueIndex:idx_compare_entry" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_compare_entry" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
