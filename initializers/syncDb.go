package initializers

import (
	"log"

	"github.com/fiorella-shop/fiorella-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductImage{})
	log.Println("Database synced successfully.")
}
