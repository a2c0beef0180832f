package services

import (
	"errors"

	"github.com/santimarro/figuras-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpsertReview records a user's rating for a product. A second review by the
// same user replaces the first. The product's aggregate columns are
// recomputed inside the same transaction, so a read right after the write
// already sees the new review reflected.
func UpsertReview(db *gorm.DB, productID, userID, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Product{}, productID).Error; err != nil {
			return err
		}

		err := tx.Where("product_id = ? AND user_id = ?", productID, userID).First(&review).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = models.Review{ProductID: productID, UserID: userID, Rating: rating, Comment: comment}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			review.Rating = rating
			review.Comment = comment
			if err := tx.Save(&review).Error; err != nil {
				return err
			}
		}

		return recomputeProductRating(tx, productID)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// recomputeProductRating rewrites the derived aggregate columns from the
// review rows themselves: count of reviews and mean rating rounded to two
// decimal places, zero when no reviews exist.
func recomputeProductRating(tx *gorm.DB, productID int) error {
	var agg struct {
		Count int64
		Sum   int64
	}
	err := tx.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
		Scan(&agg).Error
	if err != nil {
		return err
	}

	average := 0.0
	if agg.Count > 0 {
		average, _ = decimal.NewFromInt(agg.Sum).
			DivRound(decimal.NewFromInt(agg.Count), 2).
			Float64()
	}

	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]any{
			"average_rating": average,
			"review_count":   agg.Count,
		}).Error
}

// ProductReviews lists a product's reviews, newest first.
func ProductReviews(db *gorm.DB, productID int) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
