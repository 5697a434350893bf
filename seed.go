package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/models"
)

type seedCategory struct {
	Name     string         `yaml:"name"`
	Slug     string         `yaml:"slug"`
	Image    string         `yaml:"image"`
	Children []seedCategory `yaml:"children"`
}

type seedProduct struct {
	Name                    string               `yaml:"name"`
	Slug                    string               `yaml:"slug"`
	Description             string               `yaml:"description"`
	Price                   float64              `yaml:"price"`
	SalePrice               *float64             `yaml:"sale_price"`
	Stock                   int                  `yaml:"stock"`
	ImageURL                string               `yaml:"image_url"`
	IsNew                   bool                 `yaml:"is_new"`
	Category                string               `yaml:"category"` // leaf category slug
	Sizes                   []string             `yaml:"sizes"`
	Colors                  []models.ColorOption `yaml:"colors"`
	QuantityDiscountMin     int                  `yaml:"quantity_discount_min"`
	QuantityDiscountPercent float64              `yaml:"quantity_discount_percent"`
}

type seedCoupon struct {
	Code          string  `yaml:"code"`
	DiscountType  string  `yaml:"discount_type"`
	DiscountValue float64 `yaml:"discount_value"`
	MinPurchase   float64 `yaml:"min_purchase"`
	MaxUses       *int    `yaml:"max_uses"`
	DaysValid     int     `yaml:"days_valid"` // 0 = no end date
}

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
	Products   []seedProduct  `yaml:"products"`
	Coupons    []seedCoupon   `yaml:"coupons"`
}

// seedDatabase loads the YAML seed into an empty catalog. A non-empty
// categories table makes this a no-op, so restarts never duplicate rows.
func seedDatabase(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("catalog already seeded, skipping")
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		bySlug := make(map[string]uint)
		for _, root := range seed.Categories {
			if err := seedCategoryTree(tx, root, nil, bySlug); err != nil {
				return err
			}
		}

		for _, sp := range seed.Products {
			product := models.Product{
				Name:                    sp.Name,
				Slug:                    sp.Slug,
				Description:             sp.Description,
				Price:                   sp.Price,
				SalePrice:               sp.SalePrice,
				Stock:                   sp.Stock,
				ImageURL:                sp.ImageURL,
				IsNew:                   sp.IsNew,
				HasSizes:                len(sp.Sizes) > 0,
				HasColors:               len(sp.Colors) > 0,
				QuantityDiscountMin:     sp.QuantityDiscountMin,
				QuantityDiscountPercent: sp.QuantityDiscountPercent,
			}
			if len(sp.Sizes) > 0 {
				product.Sizes = models.JSONStrings(sp.Sizes)
			}
			if len(sp.Colors) > 0 {
				product.Colors = models.JSONColors(sp.Colors)
			}
			if sp.Category != "" {
				id, ok := bySlug[sp.Category]
				if !ok {
					return fmt.Errorf("product %q references unknown category %q", sp.Slug, sp.Category)
				}
				product.CategoryID = &id
			}
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("seed product %q: %w", sp.Slug, err)
			}
		}

		for _, sc := range seed.Coupons {
			coupon := models.Coupon{
				Code:          sc.Code,
				DiscountType:  sc.DiscountType,
				DiscountValue: sc.DiscountValue,
				MinPurchase:   sc.MinPurchase,
				MaxUses:       sc.MaxUses,
				StartDate:     time.Now(),
				IsActive:      true,
			}
			if sc.DaysValid > 0 {
				end := time.Now().AddDate(0, 0, sc.DaysValid)
				coupon.EndDate = &end
			}
			if err := tx.Create(&coupon).Error; err != nil {
				return fmt.Errorf("seed coupon %q: %w", sc.Code, err)
			}
		}

		log.Printf("seeded %d root categories, %d products, %d coupons",
			len(seed.Categories), len(seed.Products), len(seed.Coupons))
		return nil
	})
}

func seedCategoryTree(tx *gorm.DB, node seedCategory, parentID *uint, bySlug map[string]uint) error {
	category := models.Category{
		Name:     node.Name,
		Slug:     node.Slug,
		Image:    node.Image,
		ParentID: parentID,
	}
	if err := tx.Create(&category).Error; err != nil {
		return fmt.Errorf("seed category %q: %w", node.Slug, err)
	}
	bySlug[node.Slug] = category.ID

	for _, child := range node.Children {
		if err := seedCategoryTree(tx, child, &category.ID, bySlug); err != nil {
			return err
		}
	}
	return nil
}
