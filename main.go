package main

import (
	"log"
	"os"
	"time"

	"github.com/fiorella-shop/fiorella-api/cache"
	"github.com/fiorella-shop/fiorella-api/controllers"
	"github.com/fiorella-shop/fiorella-api/initializers"
	"github.com/fiorella-shop/fiorella-api/routes"
	"github.com/fiorella-shop/fiorella-api/services"
	"github.com/fiorella-shop/fiorella-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const defaultImageRoot = "public/img"

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://admin.fiorella.store"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	imageRoot := os.Getenv("IMAGE_ROOT")
	if imageRoot == "" {
		imageRoot = defaultImageRoot
	}
	server.Static("/img", imageRoot)

	var productCache *cache.ProductCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c, err := cache.New(addr)
		if err != nil {
			log.Printf("Redis unavailable, caching disabled: %v", err)
		} else {
			productCache = c
		}
	}

	productController := controllers.NewProductController(
		services.NewProductService(initializers.DB),
		services.NewCategoryService(initializers.DB),
		utils.NewFileStorage(imageRoot),
		productCache,
	)

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, productController)
	server.Run()
}
