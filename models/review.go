package models

import "time"

// Review is unique per (product, user); resubmitting updates the row.
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"index;uniqueIndex:idx_review_author" json:"product_id"`
	UserID       string    `gorm:"uniqueIndex:idx_review_author" json:"user_id"`
	UserName     string    `json:"user_name"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `json:"comment"`
	HelpfulCount int       `json:"helpful_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReviewVote records a "helpful" mark; one per (review, user).
type ReviewVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReviewID  uint      `gorm:"index;uniqueIndex:idx_review_voter" json:"review_id"`
	UserID    string    `gorm:"uniqueIndex:idx_review_voter" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
