package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/santimarro/figuras-api/controllers"
	"github.com/santimarro/figuras-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/checkout", middlewares.RequireAuth(), controllers.Checkout)
	server.GET("/orders", middlewares.RequireAuth(), controllers.GetOrders)
	server.GET("/orders/:orderId", middlewares.RequireAuth(), controllers.GetOrder)

	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/orders", controllers.GetAllOrders)
		admin.GET("/orders/undelivered", controllers.GetUndeliveredOrders)
		admin.PATCH("/orders/:orderId", controllers.UpdateOrderStatus)
	}
}
