package services

import (
	"path/filepath"
	"testing"

	"tour-booking/config"
	"tour-booking/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedTour(t *testing.T, db *gorm.DB, maxPeople, available, occupied int) models.Tour {
	t.Helper()

	tour := models.Tour{
		Title:           "Altai trek",
		Description:     "A week in the mountains.",
		Place:           "Altai",
		StartDate:       "2026-07-01",
		Duration:        7,
		MaxPeople:       maxPeople,
		AvailablePlaces: available,
		OccupiedPlaces:  occupied,
		PricePerPerson:  450,
		ImagePath:       "altai.jpg",
	}
	require.NoError(t, db.Create(&tour).Error)
	return tour
}
