package services

import (
	"testing"
	"time"

	"github.com/garagesale/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesListJoinsTitlesNewestFirst(t *testing.T) {
	db := testDB(t)
	listings := NewListingService(db, testStore(t), 10<<20)
	sales := NewSalesService(db)

	lamp := models.Image{Title: "Lamp", Price: 5, ImageURL: "/uploads/a.jpg"}
	desk := models.Image{Title: "Desk", Price: 40, ImageURL: "/uploads/b.jpg"}
	require.NoError(t, db.Create(&lamp).Error)
	require.NoError(t, db.Create(&desk).Error)

	require.NoError(t, listings.Buy(lamp.ID, "Alice"))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, listings.Buy(desk.ID, "Bob"))

	records, err := sales.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Desk", records[0].ProductName)
	assert.Equal(t, "Bob", records[0].CustomerName)
	assert.Equal(t, "Lamp", records[1].ProductName)
	assert.Equal(t, "Alice", records[1].CustomerName)
}

func TestSalesListIgnoresAdminToggle(t *testing.T) {
	db := testDB(t)
	listings := NewListingService(db, testStore(t), 10<<20)
	sales := NewSalesService(db)

	img := models.Image{Title: "Rug", Price: 15, ImageURL: "/uploads/c.jpg"}
	require.NoError(t, db.Create(&img).Error)

	// The admin shortcut flips the flag without touching the ledger.
	require.NoError(t, listings.ToggleSold(img.ID))

	records, err := sales.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSalesListExcludesDeletedListings(t *testing.T) {
	db := testDB(t)
	listings := NewListingService(db, testStore(t), 10<<20)
	sales := NewSalesService(db)

	img := models.Image{Title: "Vase", Price: 8, ImageURL: "/uploads/d.jpg"}
	require.NoError(t, db.Create(&img).Error)
	require.NoError(t, listings.Buy(img.ID, "Alice"))
	require.NoError(t, listings.Delete(img.ID))

	records, err := sales.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}
