package models

import "time"

// LoyaltyAccount holds a user's redeemable point balance.
type LoyaltyAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance   int       `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	LoyaltyTxEarn   = "earn"
	LoyaltyTxRedeem = "redeem"
	LoyaltyTxRefund = "refund"
	LoyaltyTxAdjust = "adjust"
)

// LoyaltyTransaction is the append-only history behind the balance. Points
// are signed: earns and refunds positive, redemptions negative.
type LoyaltyTransaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	Points      int       `json:"points"`
	Kind        string    `gorm:"type:VARCHAR(20)" json:"kind"`
	OrderID     *uint     `json:"order_id,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
