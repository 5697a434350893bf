package productcontroller

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/cache"
	"github.com/sarelalush/Orel-site/models"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Slug", "Description", "Price", "SalePrice",
			"Stock", "CategorySlug", "ImageURL", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Slug)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			if p.SalePrice != nil {
				row.AddCell().SetValue(*p.SalePrice)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Stock)
			if p.Category != nil {
				row.AddCell().SetValue(p.Category.Slug)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}

// POST /admin/products/import-excel
//
// Upserts rows by slug. Columns: Name, Slug, Description, Price, SalePrice,
// Stock, CategorySlug. The header row is skipped.
func ImportProductsFromExcel(db *gorm.DB, ch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		src, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
			return
		}

		wb, err := xlsx.OpenBinary(data)
		if err != nil || len(wb.Sheets) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Excel file"})
			return
		}

		var created, updated, skipped int
		sheet := wb.Sheets[0]
		for i, row := range sheet.Rows {
			if i == 0 || len(row.Cells) < 4 {
				continue
			}
			name := row.Cells[0].String()
			slug := row.Cells[1].String()
			if name == "" || slug == "" || !slugPattern.MatchString(slug) {
				skipped++
				continue
			}
			price, err := strconv.ParseFloat(row.Cells[3].String(), 64)
			if err != nil || price < 0 {
				skipped++
				continue
			}

			update := models.Product{
				Name:        name,
				Slug:        slug,
				Description: row.Cells[2].String(),
				Price:       price,
			}
			if len(row.Cells) > 4 && row.Cells[4].String() != "" {
				if sp, err := strconv.ParseFloat(row.Cells[4].String(), 64); err == nil && sp >= 0 {
					update.SalePrice = &sp
				}
			}
			if len(row.Cells) > 5 && row.Cells[5].String() != "" {
				if stock, err := strconv.Atoi(row.Cells[5].String()); err == nil && stock >= 0 {
					update.Stock = stock
				}
			}
			if len(row.Cells) > 6 && row.Cells[6].String() != "" {
				var category models.Category
				if err := db.Where("slug = ?", row.Cells[6].String()).First(&category).Error; err == nil {
					update.CategoryID = &category.ID
				}
			}

			var existing models.Product
			err = db.Where("slug = ?", slug).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&update).Error; err != nil {
					skipped++
					continue
				}
				created++
			} else if err == nil {
				update.ID = existing.ID
				update.ImageURL = existing.ImageURL
				if err := db.Save(&update).Error; err != nil {
					skipped++
					continue
				}
				updated++
			} else {
				skipped++
			}
		}

		ch.InvalidatePattern("^catalog:")
		c.JSON(http.StatusOK, gin.H{"created": created, "updated": updated, "skipped": skipped})
	}
}
