package controllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/santimarro/figuras-api/initializers"
	"github.com/santimarro/figuras-api/models"
	"github.com/santimarro/figuras-api/services"
	"github.com/santimarro/figuras-api/utils"
	"gorm.io/gorm"
)

const (
	msgOrderNotFound   = "Order not found"
	msgCheckoutGeneric = "There was an error processing your order. Try again."
)

// Queue the order confirmation email. Best-effort, after commit.
func sendOrderConfirmation(user models.User, order models.Order) {
	utils.Notify(utils.EmailJob{
		To:      user.Email,
		Subject: fmt.Sprintf("Confirmación de pedido %s", order.Number),
		Data: utils.EmailData{
			Name: user.Username,
			Message: fmt.Sprintf(
				"Hemos recibido tu pedido %s por un total de %s. Te avisaremos cuando salga en camino.",
				order.Number, order.Total.StringFixed(2)),
			ActionURL: fmt.Sprintf("%s/orders/%d", initializers.Config.StorefrontURL, order.ID),
		},
		TemplatePath: filepath.Join("templates", "order_confirmation.html"),
	})
}

// Queue the order status change email. Best-effort.
func sendOrderStatusUpdate(user models.User, order models.Order) {
	utils.Notify(utils.EmailJob{
		To:      user.Email,
		Subject: fmt.Sprintf("Actualización de pedido %s", order.Number),
		Data: utils.EmailData{
			Name: user.Username,
			Message: fmt.Sprintf("Tu pedido %s ahora está en estado: %s.",
				order.Number, order.Status),
			ActionURL: fmt.Sprintf("%s/orders/%d", initializers.Config.StorefrontURL, order.ID),
		},
		TemplatePath: filepath.Join("templates", "order_status_update.html"),
	})
}

// Checkout converts the caller's cart into an order and reports the new
// order id for redirection to the order detail view.
func Checkout(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		ShippingAddress string `json:"shippingAddress"`
		Phone           string `json:"phone"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	order, err := services.Checkout(initializers.DB, userId, body.ShippingAddress, body.Phone)
	if err != nil {
		var stockErr *services.InsufficientStockError
		switch {
		case errors.Is(err, services.ErrMissingShipping), errors.Is(err, services.ErrEmptyCart):
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		case errors.As(err, &stockErr):
			sendErrorResponse(ctx, http.StatusConflict, stockErr.Error())
		default:
			log.Println("Checkout error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgCheckoutGeneric)
		}
		return
	}

	if user, err := findUserByID(userId); err == nil {
		sendOrderConfirmation(user, *order)
	} else {
		log.Println("Order confirmation email skipped:", err)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":     "Your order has been placed successfully.",
		"orderId":     order.ID,
		"orderNumber": order.Number,
	})
}

// GetOrders lists the caller's orders, newest first.
func GetOrders(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns one of the caller's orders. Orders belonging to someone
// else come back as not found.
func GetOrder(ctx *gin.Context) {
	userId, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Where("id = ? AND user_id = ?", orderId, userId).
		First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetAllOrders lists every order for the back office, paged and searchable
// by order number.
func GetAllOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := initializers.DB.Preload("OrderItems")
	countQuery := initializers.DB.Model(&models.Order{})

	if search := ctx.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("number LIKE ?", like)
		countQuery = countQuery.Where("number LIKE ?", like)
	}

	result := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// GetUndeliveredOrders counts orders that still need attention.
func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status NOT IN ?", []string{models.OrderStatusDelivered, models.OrderStatusCancelled}).
		Count(&count)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to count undelivered orders", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"undeliveredOrderCount": count})
}

// UpdateOrderStatus moves an order to a new state and notifies the buyer.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if !models.ValidOrderStatus(orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status: "+orderStatusData.Status)
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	order.Status = orderStatusData.Status
	if result := initializers.DB.Model(&order).Update("status", order.Status); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	if user, err := findUserByID(order.UserID); err == nil {
		sendOrderStatusUpdate(user, order)
	} else {
		log.Println("Status update email skipped:", err)
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully."})
}
