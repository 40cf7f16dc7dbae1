package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/fiorella-shop/fiorella-api/models"
	"gorm.io/gorm"
)

// PageSize is the fixed listing window used by the admin product pages.
const PageSize = 4

var (
	// ErrProductNotFound is returned when a product does not exist or is
	// soft-deleted.
	ErrProductNotFound = errors.New("product not found")

	// ErrNoMainImage is returned when a product has no image flagged as main,
	// so summary mapping cannot pick a thumbnail.
	ErrNoMainImage = errors.New("product has no main image")
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// GetAll returns every product with its category and images attached.
func (s *ProductService) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.
		Preload("Category").
		Preload("Images").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetPage returns one listing window. Ordering is by id ascending so pages
// are stable across requests; a page past the end comes back empty.
func (s *ProductService) GetPage(page int) ([]models.Product, error) {
	if page < 1 {
		page = 1
	}
	var products []models.Product
	if err := s.db.
		Preload("Category").
		Preload("Images").
		Order("id ASC").
		Offset((page - 1) * PageSize).
		Limit(PageSize).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the total number of product rows. Soft-deleted rows are
// counted too, matching the page-count the listing advertises.
func (s *ProductService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetByID returns a single product with category and images attached.
// Soft-deleted products are treated as absent.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.
		Preload("Category").
		Preload("Images").
		Where("soft_deleted = ?", false).
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Create persists the product together with its image rows in one commit.
func (s *ProductService) Create(product *models.Product) error {
	return s.db.Create(product).Error
}

// Update commits the mutable fields of an already-loaded product.
func (s *ProductService) Update(product *models.Product) error {
	return s.db.Save(product).Error
}

// Delete removes the product row; image rows go with it via the cascade
// constraint. Image files on disk are the caller's responsibility.
func (s *ProductService) Delete(product *models.Product) error {
	return s.db.Delete(product).Error
}

// MapToSummaries projects products into listing rows. Every product must
// carry exactly one main-flagged image; a product without one yields
// ErrNoMainImage rather than a blank thumbnail.
func MapToSummaries(products []models.Product) ([]models.ProductSummary, error) {
	summaries := make([]models.ProductSummary, 0, len(products))
	for _, p := range products {
		main, ok := mainImage(p.Images)
		if !ok {
			return nil, fmt.Errorf("product %d: %w", p.ID, ErrNoMainImage)
		}
		summaries = append(summaries, models.ProductSummary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       main.Name,
			Category:    p.Category.Name,
		})
	}
	return summaries, nil
}

func mainImage(images []models.ProductImage) (models.ProductImage, bool) {
	for _, img := range images {
		if img.IsMain {
			return img, true
		}
	}
	return models.ProductImage{}, false
}

// PageCount returns how many listing pages the given product count fills.
func PageCount(count int64) int {
	return int(math.Ceil(float64(count) / float64(PageSize)))
}
