package services

import (
	"github.com/fiorella-shop/fiorella-api/models"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetSelectable returns the id/name pairs the create and edit forms offer.
func (s *CategoryService) GetSelectable() ([]models.CategoryOption, error) {
	categories, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	options := make([]models.CategoryOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, models.CategoryOption{ID: c.ID, Name: c.Name})
	}
	return options, nil
}
