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

const msgCartItemNotFound = "Cart item not found"

// GetCart returns the caller's cart, creating it lazily on first access.
func GetCart(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := services.GetCart(initializers.DB, userId)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

// AddToCart upserts a cart line for the given product.
func AddToCart(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		ProductId int `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	itemCount, err := services.AddToCart(initializers.DB, userId, body.ProductId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("Add to cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to add product to cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":   "Product added to cart",
		"cartItems": itemCount,
	})
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func UpdateCartItem(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	// Pointer so that an explicit zero still binds.
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := services.UpdateCartItem(initializers.DB, userId, itemId, *body.Quantity); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
			return
		}
		log.Println("Cart update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart updated"})
}

// RemoveCartItem deletes a line from the caller's cart.
func RemoveCartItem(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	if err := services.RemoveCartItem(initializers.DB, userId, itemId); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
			return
		}
		log.Println("Cart remove error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to remove cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product removed from cart"})
}
