package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting payment/confirmation
	OrderStatusProcessing OrderStatus = "processing" // Paid, being prepared
	OrderStatusCompleted  OrderStatus = "completed"  // Delivered to the customer
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before completion

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Ref            string        `gorm:"uniqueIndex;not null" json:"ref"`
	UserID         string        `gorm:"not null;index" json:"user_id"`
	User           User          `gorm:"foreignKey:UserID" json:"user"`
	Items          []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal       float64       `json:"subtotal"`
	CouponCode     string        `json:"coupon_code,omitempty"`
	DiscountAmount float64       `json:"discount_amount"`
	PointsUsed     int           `json:"points_used"`
	Total          float64       `json:"total"`
	Status         OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod  string        `json:"payment_method"` // e.g. "card", "cod"
	CreatedAt      time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	LineTotal    float64 `json:"line_total"`
}
