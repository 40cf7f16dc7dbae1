package models

import "time"

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Products  []Product `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryOption is the selectable entry used by the create and edit forms.
type CategoryOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
