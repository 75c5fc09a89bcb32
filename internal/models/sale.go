package models

import "time"

// Sale records a completed purchase. Rows are written only by the purchase
// transaction, never updated, and removed only when the listing they
// reference is deleted. The admin toggle-sold shortcut deliberately does
// not create one.
type Sale struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ImageID      uint      `gorm:"not null;index" json:"image_id"`
	CustomerName string    `gorm:"size:255" json:"customer_name"`
	PurchaseDate time.Time `gorm:"autoCreateTime" json:"purchase_date"`
	Image        Image     `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE" json:"-"`
}
