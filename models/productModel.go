package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:512;not null"`
	IsMain    bool      `json:"isMain" gorm:"not null;default:false"`
	ProductID uint      `json:"productId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID  uint            `json:"categoryId" gorm:"index;not null"`
	Category    Category        `json:"category" gorm:"foreignKey:CategoryID"`
	Images      []ProductImage  `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	// SoftDeleted hides a product from single-item reads without removing the
	// row. Delete removes rows for real, so the flag only affects products
	// marked directly in the database.
	SoftDeleted bool      `json:"-" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
