package services

import (
	"errors"
	"fmt"

	"tour-booking/models"

	"gorm.io/gorm"
)

type TourService struct {
	DB *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService {
	return &TourService{DB: db}
}

func (s *TourService) GetAll() ([]models.Tour, error) {
	var tours []models.Tour
	if err := s.DB.Order("id").Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	return tours, nil
}

func (s *TourService) GetByID(id uint) (models.Tour, error) {
	var tour models.Tour
	if err := s.DB.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tour, ErrTourNotFound
		}
		return tour, fmt.Errorf("failed to load tour %d: %w", id, err)
	}
	return tour, nil
}

func (s *TourService) Create(tour *models.Tour) error {
	if err := s.DB.Create(tour).Error; err != nil {
		return fmt.Errorf("failed to create tour: %w", err)
	}
	return nil
}

// Update overwrites every validated field of an existing tour, capacity
// counters included. The image is kept: the update form carries no file.
func (s *TourService) Update(id uint, fields models.Tour) (models.Tour, error) {
	var tour models.Tour
	if err := s.DB.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tour, ErrTourNotFound
		}
		return tour, fmt.Errorf("failed to load tour %d: %w", id, err)
	}

	tour.Title = fields.Title
	tour.Description = fields.Description
	tour.Place = fields.Place
	tour.StartDate = fields.StartDate
	tour.Duration = fields.Duration
	tour.MaxPeople = fields.MaxPeople
	tour.AvailablePlaces = fields.AvailablePlaces
	tour.OccupiedPlaces = fields.OccupiedPlaces
	tour.PricePerPerson = fields.PricePerPerson

	if err := s.DB.Save(&tour).Error; err != nil {
		return tour, fmt.Errorf("failed to update tour %d: %w", id, err)
	}
	return tour, nil
}

// Delete removes a tour and every booking referencing it in one
// transaction, so a failure cannot leave orphaned bookings behind.
func (s *TourService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var tour models.Tour
		if err := tx.First(&tour, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTourNotFound
			}
			return fmt.Errorf("failed to load tour %d: %w", id, err)
		}

		if err := tx.Where("tour_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("failed to delete bookings of tour %d: %w", id, err)
		}
		if err := tx.Delete(&tour).Error; err != nil {
			return fmt.Errorf("failed to delete tour %d: %w", id, err)
		}
		return nil
	})
}
