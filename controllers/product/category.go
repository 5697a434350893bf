package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/cache"
	"github.com/sarelalush/Orel-site/catalog"
	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/storage"
)

const categoryListCacheKey = "catalog:categories:all"

type CategoryInput struct {
	Name string `json:"name" form:"name"`
	Slug string `json:"slug" form:"slug"`
	// ParentID is the resolved single parent reference; the admin UI's
	// root/type/subtype selector collapses into this one field.
	ParentID *uint `json:"parent_id" form:"parent_id"`
}

func CreateCategory(db *gorm.DB, store storage.Uploader, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Name == "" || input.Slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and slug are required"})
			return
		}
		if !slugPattern.MatchString(input.Slug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug must be lowercase letters, digits and dashes"})
			return
		}

		if input.ParentID != nil {
			var parent models.Category
			if err := db.Preload("Parent.Parent").First(&parent, *input.ParentID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist"})
				return
			}
			// The tree is at most three levels; a subtype cannot parent
			// anything.
			if parent.Parent != nil && parent.Parent.Parent != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Categories nest at most three levels"})
				return
			}
		}

		category := models.Category{
			Name:     input.Name,
			Slug:     input.Slug,
			ParentID: input.ParentID,
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			url, uploadErr := store.Upload(c.Request.Context(), "categories", file)
			if uploadErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			imageURL = url
			category.Image = url
		}

		if err := db.Create(&category).Error; err != nil {
			if imageURL != "" {
				_ = store.Delete(c.Request.Context(), imageURL)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		ch.InvalidatePattern("^catalog:")
		c.JSON(http.StatusCreated, category)
	}
}

func UpdateCategory(db *gorm.DB, store storage.Uploader, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Name != "" {
			category.Name = input.Name
		}
		if input.Slug != "" {
			if !slugPattern.MatchString(input.Slug) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "slug must be lowercase letters, digits and dashes"})
				return
			}
			category.Slug = input.Slug
		}
		if input.ParentID != nil {
			if *input.ParentID == category.ID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category cannot be its own parent"})
				return
			}
			var parent models.Category
			if err := db.Preload("Parent.Parent").First(&parent, *input.ParentID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist"})
				return
			}
			if parent.Parent != nil && parent.Parent.Parent != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Categories nest at most three levels"})
				return
			}
			// Walking the new parent chain must never reach this category.
			for p := &parent; p != nil; p = p.Parent {
				if p.ID == category.ID {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Category cannot be moved under its own descendant"})
					return
				}
			}
			category.ParentID = input.ParentID
		}

		oldImage := category.Image
		if file, err := c.FormFile("image"); err == nil {
			url, uploadErr := store.Upload(c.Request.Context(), "categories", file)
			if uploadErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			category.Image = url
		}

		if err := db.Save(&category).Error; err != nil {
			if category.Image != oldImage {
				_ = store.Delete(c.Request.Context(), category.Image)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		if oldImage != "" && category.Image != oldImage {
			_ = store.Delete(c.Request.Context(), oldImage)
		}

		ch.InvalidatePattern("^catalog:")
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category. Children are detached (parent_id set to
// NULL), never cascaded; products keep their rows with a cleared category.
func DeleteCategory(db *gorm.DB, store storage.Uploader, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Category{}).
				Where("parent_id = ?", category.ID).
				Update("parent_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Product{}).
				Where("category_id = ?", category.ID).
				Update("category_id", nil).Error; err != nil {
				return err
			}
			return tx.Delete(&category).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		if category.Image != "" {
			_ = store.Delete(c.Request.Context(), category.Image)
		}

		ch.InvalidatePattern("^catalog:")
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// GET /catalog/categories
func GetAllCategories(db *gorm.DB, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := loadCategories(db, ch)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /catalog/categories/tree
func GetCategoryTree(db *gorm.DB, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := loadCategories(db, ch)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu": catalog.Menu(categories)})
	}
}

// GET /catalog/breadcrumbs?slug=
func GetBreadcrumbs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Query("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
			return
		}

		var category models.Category
		if err := db.Preload("Parent.Parent").Where("slug = ?", slug).First(&category).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"breadcrumbs": catalog.Breadcrumbs(&category)})
	}
}

func loadCategories(db *gorm.DB, ch *cache.Cache) ([]models.Category, error) {
	if cached, ok := ch.Get(categoryListCacheKey); ok {
		if categories, ok := cached.([]models.Category); ok {
			return categories, nil
		}
	}

	var categories []models.Category
	if err := db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	ch.Set(categoryListCacheKey, categories, 0)
	return categories, nil
}
