package models

import "time"

// Image is a sellable listing: item metadata plus the relative URL of its
// processed photo under the uploads directory.
type Image struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string    `gorm:"size:255;not null" json:"image_url"`
	IsBlocked   bool      `gorm:"default:false" json:"is_blocked"`
	Sold        bool      `gorm:"default:false" json:"sold"`
	ComingSoon  bool      `gorm:"default:false" json:"coming_soon"`
	CreatedAt   time.Time `json:"created_at"`
}
