package models

import "time"

// Category is a self-referential tree, conventionally three levels deep:
// root -> type -> subtype. Products hang off the leaf level.
type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Image     string    `json:"image"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	Parent    *Category `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
