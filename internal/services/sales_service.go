package services

import (
	"github.com/garagesale/backend/internal/dto"
	"gorm.io/gorm"
)

type SalesService struct {
	db *gorm.DB
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{db: db}
}

// List returns the full sales ledger joined with each listing's current
// title, newest purchases first.
func (s *SalesService) List() ([]dto.SaleRecord, error) {
	var sales []dto.SaleRecord
	err := s.db.Table("sales").
		Select("sales.id, sales.image_id, sales.customer_name, sales.purchase_date, images.title AS product_name").
		Joins("JOIN images ON images.id = sales.image_id").
		Order("sales.purchase_date DESC, sales.id DESC").
		Scan(&sales).Error
	return sales, err
}
