package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/garagesale/backend/internal/imageproc"
	"github.com/garagesale/backend/internal/models"
	"github.com/garagesale/backend/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound  = errors.New("image not found")
	ErrNotAvailable     = errors.New("image not available for purchase")
	ErrUnsupportedMedia = errors.New("only jpeg, jpg, png, gif and webp images are allowed")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidInput     = errors.New("invalid input")
	ErrProcessing       = errors.New("failed to process image")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Upload describes the received file, decoupled from the transport's
// multipart types.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
}

type ListingService struct {
	db        *gorm.DB
	store     *storage.Store
	maxUpload int64
}

func NewListingService(db *gorm.DB, store *storage.Store, maxUpload int64) *ListingService {
	return &ListingService{db: db, store: store, maxUpload: maxUpload}
}

// Create runs the ingestion pipeline: validate, stage the raw upload,
// re-encode it, then insert the row. The row is only written once the
// final artifact is on disk; every failure path removes what it staged.
func (s *ListingService) Create(src io.Reader, upload Upload, title, description, price string) (*models.Image, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !allowedExtensions[ext] || !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, ErrUnsupportedMedia
	}
	if upload.Size > s.maxUpload {
		return nil, ErrFileTooLarge
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must be a non-empty string", ErrInvalidInput)
	}
	description = strings.TrimSpace(description)
	priceNumber, err := strconv.ParseFloat(price, 64)
	if err != nil || priceNumber <= 0 {
		return nil, fmt.Errorf("%w: price must be a number greater than 0", ErrInvalidInput)
	}

	// The staging name must stay distinct from the final name, otherwise
	// a .jpg upload would be transcoded in place and then removed below.
	finalName := s.store.NewName(imageproc.Ext)
	tempName := finalName + ".tmp"
	if err := s.stage(src, tempName); err != nil {
		return nil, err
	}

	if err := imageproc.Optimize(s.store.Path(tempName), s.store.Path(finalName)); err != nil {
		s.store.Remove(tempName)
		return nil, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	// The raw upload is no longer needed. Removal is best effort.
	s.store.Remove(tempName)

	image := models.Image{
		Title:       title,
		Description: description,
		Price:       priceNumber,
		ImageURL:    "/uploads/" + finalName,
	}
	if err := s.db.Create(&image).Error; err != nil {
		s.store.Remove(finalName)
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}
	return &image, nil
}

func (s *ListingService) stage(src io.Reader, name string) error {
	dst, err := os.Create(s.store.Path(name))
	if err != nil {
		return fmt.Errorf("failed to stage upload: %w", err)
	}
	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		s.store.Remove(name)
		return fmt.Errorf("failed to stage upload: %w", err)
	}
	return nil
}

// List returns all listings, newest first.
func (s *ListingService) List() ([]models.Image, error) {
	var images []models.Image
	err := s.db.Order("created_at DESC, id DESC").Find(&images).Error
	return images, err
}

func (s *ListingService) ToggleBlock(id uint) error {
	return s.toggle(id, "is_blocked")
}

func (s *ListingService) ToggleSold(id uint) error {
	return s.toggle(id, "sold")
}

func (s *ListingService) ToggleComingSoon(id uint) error {
	return s.toggle(id, "coming_soon")
}

func (s *ListingService) toggle(id uint, column string) error {
	res := s.db.Model(&models.Image{}).
		Where("id = ?", id).
		Update(column, gorm.Expr("NOT "+column))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// Update replaces title, description and price together. Values are taken
// as sent; the ingestion pipeline is the only validator.
func (s *ListingService) Update(id uint, title, description string, price float64) error {
	res := s.db.Model(&models.Image{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
		"price":       price,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// Delete removes the row and its sale history in one transaction, then
// best-effort removes the backing file and any stale sibling from before
// the format migration. File failures never surface once the row is gone.
func (s *ListingService) Delete(id uint) error {
	var image models.Image
	if err := s.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("image_id = ?", id).Delete(&models.Sale{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Image{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	s.store.RemoveWithSiblings(path.Base(image.ImageURL))
	return nil
}

// Buy is the purchase transaction. The conditional update only succeeds
// while sold is still false, so of N racing buyers exactly one flips the
// flag and records the sale; the rest roll back with ErrNotAvailable.
func (s *ListingService) Buy(id uint, customerName string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Image{}).
			Where("id = ? AND sold = ?", id, false).
			Update("sold", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotAvailable
		}

		sale := models.Sale{ImageID: id, CustomerName: customerName}
		return tx.Create(&sale).Error
	})
}

// SweepOrphans deletes upload files that no listing references.
func (s *ListingService) SweepOrphans() (int, error) {
	var urls []string
	if err := s.db.Model(&models.Image{}).Pluck("image_url", &urls).Error; err != nil {
		return 0, err
	}
	return s.store.SweepOrphans(urls)
}
