package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/santimarro/figuras-api/controllers"
	"github.com/santimarro/figuras-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:id", controllers.GetProduct)
	server.POST("/products/:id/reviews", middlewares.RequireAuth(), controllers.SubmitReview)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/products", controllers.CreateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.POST("/product-images", controllers.UploadProductImages)
	}
}
