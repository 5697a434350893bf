package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a single cart line. Lines are unique per
// (cart, product, size, color): the same product in another size or color is
// a separate line.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index;uniqueIndex:idx_cart_variant" json:"cart_id"`
	ProductID    uint      `gorm:"uniqueIndex:idx_cart_variant" json:"product_id"`
	Size         string    `gorm:"uniqueIndex:idx_cart_variant" json:"size"`
	Color        string    `gorm:"uniqueIndex:idx_cart_variant" json:"color"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	UnitPrice    float64   `json:"unit_price"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// GuestCart mirrors Cart for anonymous sessions, keyed by a server-issued
// guest id. Guest rows are merged into the user cart on login.
type GuestCart struct {
	CartID    uint            `gorm:"primaryKey" json:"cart_id"`
	GuestID   string          `gorm:"uniqueIndex" json:"guest_id"`
	Items     []GuestCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type GuestCartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index;uniqueIndex:idx_guest_cart_variant" json:"cart_id"`
	ProductID    uint      `gorm:"uniqueIndex:idx_guest_cart_variant" json:"product_id"`
	Size         string    `gorm:"uniqueIndex:idx_guest_cart_variant" json:"size"`
	Color        string    `gorm:"uniqueIndex:idx_guest_cart_variant" json:"color"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	UnitPrice    float64   `json:"unit_price"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}
