package services

import (
	"testing"

	"github.com/santimarro/figuras-api/models"
	"github.com/stretchr/testify/require"
)

func TestReviewAggregateRecompute(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Trunks", "25.00", 3)

	ratings := []int{5, 4, 4}
	for userID, rating := range ratings {
		_, err := UpsertReview(db, int(product.ID), userID+1, rating, "buena figura")
		require.NoError(t, err)
	}

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	require.Equal(t, 3, got.ReviewCount)
	require.InDelta(t, 4.33, got.AverageRating, 1e-9)
}

func TestReviewSecondWriteReplacesFirst(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Bulma", "22.00", 3)

	_, err := UpsertReview(db, int(product.ID), 7, 5, "excelente")
	require.NoError(t, err)

	review, err := UpsertReview(db, int(product.ID), 7, 2, "se rompió al mes")
	require.NoError(t, err)
	require.Equal(t, 2, review.Rating)

	require.Equal(t, int64(1), countRows(t, db, &models.Review{}))

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	require.Equal(t, 1, got.ReviewCount)
	require.InDelta(t, 2.0, got.AverageRating, 1e-9)
}

func TestReviewRejectsOutOfRangeRating(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Krilin", "10.00", 3)

	for _, rating := range []int{0, 6, -1} {
		_, err := UpsertReview(db, int(product.ID), 1, rating, "n/a")
		require.ErrorIs(t, err, ErrInvalidRating)
	}

	require.Zero(t, countRows(t, db, &models.Review{}))
}

func TestReviewUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := UpsertReview(db, 9999, 1, 4, "fantasma")
	require.Error(t, err)
	require.Zero(t, countRows(t, db, &models.Review{}))
}

func TestProductReviewsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Figura Roshi", "14.00", 3)

	for userID := 1; userID <= 3; userID++ {
		_, err := UpsertReview(db, int(product.ID), userID, userID+2, "ok")
		require.NoError(t, err)
	}

	reviews, err := ProductReviews(db, int(product.ID))
	require.NoError(t, err)
	require.Len(t, reviews, 3)
}
