package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santimarro/figuras-api/initializers"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the ` + initializers.Config.SiteName + ` API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

CATALOG
- GET "/products" - List products (q, category, sort, page)
- GET "/products/:id" - Get product detail with reviews
- POST "/products/:id/reviews" - Submit or replace a review
- POST "/products" - Create product (admin)
- DELETE "/products/:id" - Delete product (admin)
- POST "/product-images" - Upload product images (admin)

CART
- GET "/cart" - Get the current cart
- POST "/cart/items" - Add a product to the cart
- PATCH "/cart/items/:itemId" - Change a line quantity
- DELETE "/cart/items/:itemId" - Remove a line

ORDERS
- POST "/checkout" - Place an order from the cart
- GET "/orders" - List your orders
- GET "/orders/:orderId" - Get one of your orders
- GET "/admin/orders" - List all orders (admin)
- GET "/admin/orders/undelivered" - Count undelivered orders (admin)
- PATCH "/admin/orders/:orderId" - Update order status (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
