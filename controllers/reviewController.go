package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/santimarro/figuras-api/initializers"
	"github.com/santimarro/figuras-api/services"
	"gorm.io/gorm"
)

// SubmitReview creates or replaces the caller's review for a product and
// returns the refreshed aggregate fields.
func SubmitReview(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var body struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	review, err := services.UpsertReview(initializers.DB, productId, userId, body.Rating, body.Comment)
	switch {
	case errors.Is(err, services.ErrInvalidRating):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	case err != nil:
		log.Println("Review upsert error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Thanks for your review!",
		"review":  review,
	})
}
