package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	SalePrice   *float64       `json:"sale_price,omitempty"`
	Stock       int            `json:"stock"`
	ImageURL    string         `json:"image_url"`
	IsNew       bool           `json:"is_new"`
	CategoryID  *uint          `gorm:"index" json:"category_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"categories,omitempty"`
	HasSizes    bool           `json:"has_sizes"`
	HasColors   bool           `json:"has_colors"`
	Sizes       datatypes.JSON `gorm:"column:available_sizes" json:"available_sizes,omitempty"`
	Colors      datatypes.JSON `gorm:"column:available_colors" json:"available_colors,omitempty"`
	Images      datatypes.JSON `json:"images,omitempty"`

	// Quantity break: percent off a line once it reaches MinQuantity units.
	// Zero values disable the break.
	QuantityDiscountMin     int     `json:"quantity_discount_min"`
	QuantityDiscountPercent float64 `json:"quantity_discount_percent"`

	// Review aggregates, attached by the catalog loader. Not columns.
	RatingAvg   float64 `gorm:"-" json:"average_rating"`
	RatingCount int     `gorm:"-" json:"review_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ColorOption is the element shape stored in the available_colors column.
type ColorOption struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Hex   string `json:"hex"`
}

// EffectivePrice is the price a buyer actually pays: the sale price when one
// is set, the regular price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}
	return p.Price
}

// JSONStrings marshals a string slice into a JSON column value.
func JSONStrings(values []string) datatypes.JSON {
	if len(values) == 0 {
		return nil
	}
	b, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// JSONColors marshals color options into a JSON column value.
func JSONColors(colors []ColorOption) datatypes.JSON {
	if len(colors) == 0 {
		return nil
	}
	b, err := json.Marshal(colors)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
