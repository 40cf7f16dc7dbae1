package models

import "github.com/shopspring/decimal"

// ProductSummary is the listing projection: one row per product with the
// main image and the resolved category name.
type ProductSummary struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
}

type ProductImageView struct {
	Image  string `json:"image"`
	IsMain bool   `json:"isMain"`
}

// ProductDetail is the single-item projection with the full image list.
type ProductDetail struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       decimal.Decimal    `json:"price"`
	Category    string             `json:"category"`
	Images      []ProductImageView `json:"images"`
}

// ProductCreateInput carries the create form fields. Price arrives as a raw
// string so both "19.99" and "19,99" are accepted; images come from the
// multipart form directly.
type ProductCreateInput struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Price       string `form:"price" binding:"required"`
	CategoryID  uint   `form:"categoryId" binding:"required"`
}

// ProductEditInput uses the same price contract as create. Images are not
// editable, only the four mutable fields are resubmitted.
type ProductEditInput struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Price       string `form:"price" binding:"required"`
	CategoryID  uint   `form:"categoryId" binding:"required"`
}
