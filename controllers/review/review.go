package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/models"
)

type ReviewInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// GET /catalog/products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		var reviews []models.Review
		if err := db.Where("product_id = ?", productID).
			Order("helpful_count desc, created_at desc").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /user/reviews
//
// One review per (product, user); resubmitting replaces the rating and
// comment on the existing row.
func SubmitReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var review models.Review
		err := db.Where("product_id = ? AND user_id = ?", input.ProductID, userID).
			First(&review).Error

		if err == gorm.ErrRecordNotFound {
			review = models.Review{
				ProductID: input.ProductID,
				UserID:    userID,
				UserName:  user.Name,
				Rating:    input.Rating,
				Comment:   input.Comment,
			}
			if err := db.Create(&review).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
				return
			}
			c.JSON(http.StatusCreated, review)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
			return
		}

		review.Rating = input.Rating
		review.Comment = input.Comment
		if err := db.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /user/reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		reviewID := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", reviewID, userID).Delete(&models.Review{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}

// POST /user/reviews/:id/helpful
//
// One vote per (review, user); voting again is a no-op answered as success.
func MarkReviewHelpful(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		reviewID := c.Param("id")

		var review models.Review
		if err := db.First(&review, "id = ?", reviewID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		var vote models.ReviewVote
		err := db.Where("review_id = ? AND user_id = ?", review.ID, userID).First(&vote).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"helpful_count": review.HelpfulCount})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vote"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&models.ReviewVote{ReviewID: review.ID, UserID: userID}).Error; err != nil {
				return err
			}
			return tx.Model(&review).
				Update("helpful_count", gorm.Expr("helpful_count + 1")).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"helpful_count": review.HelpfulCount + 1})
	}
}
