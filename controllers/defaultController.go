package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Fiorella catalog admin API.

The following are the endpoints for this API (admin endpoints require a bearer token with the admin role):

PRODUCT
- GET  "/admin/products?page={n}" - Paginated product summaries
- GET  "/admin/products/all" - Full product summary list
- GET  "/admin/products/new" - Category list for the create form
- POST "/admin/products" - Create a product (multipart form with images)
- GET  "/admin/products/{id}" - Product detail
- GET  "/admin/products/{id}/edit" - Prefilled edit form
- POST "/admin/products/{id}" - Update a product
- POST "/admin/products/{id}/delete" - Delete a product and its image files`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
