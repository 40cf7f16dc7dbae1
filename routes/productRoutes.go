package routes

import (
	"github.com/fiorella-shop/fiorella-api/controllers"
	"github.com/fiorella-shop/fiorella-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, pc *controllers.ProductController) {
	admin := server.Group("/admin", middlewares.Authenticate(), middlewares.RequireAdmin())
	{
		admin.GET("/products", pc.ListProducts)
		admin.GET("/products/all", pc.ListAllProducts)
		admin.GET("/products/new", pc.NewProduct)
		admin.POST("/products", pc.CreateProduct)
		admin.GET("/products/:id", pc.GetProduct)
		admin.GET("/products/:id/edit", pc.EditProductForm)
		admin.POST("/products/:id", pc.UpdateProduct)
		admin.POST("/products/:id/delete", pc.DeleteProduct)
	}
}
