package services

import (
	"errors"
	"fmt"

	"tour-booking/models"

	"gorm.io/gorm"
)

// BookingService owns the booking store and the capacity ledger: every
// mutation of a tour's available/occupied counters goes through here,
// except the admin's wholesale tour update.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create books booking.NumberOfPeople places on booking.TourID. The counter
// update and the row insert commit as one transaction; the counter update is
// conditional on remaining capacity, so two concurrent bookings cannot both
// consume the same places.
func (s *BookingService) Create(booking *models.Booking) error {
	n := booking.NumberOfPeople
	if n < 1 {
		return ErrInvalidPeopleCount
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var tour models.Tour
		if err := tx.First(&tour, booking.TourID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTourNotFound
			}
			return fmt.Errorf("failed to load tour %d: %w", booking.TourID, err)
		}

		res := tx.Model(&models.Tour{}).
			Where("id = ? AND available_places >= ?", tour.ID, n).
			Updates(map[string]interface{}{
				"available_places": gorm.Expr("available_places - ?", n),
				"occupied_places":  gorm.Expr("occupied_places + ?", n),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update places on tour %d: %w", tour.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNoCapacity
		}

		if err := tx.Omit("Tour").Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

// Delete removes a booking and returns its places to the owning tour,
// as one transaction.
func (s *BookingService) Delete(bookingID, tourID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Where("id = ? AND tour_id = ?", bookingID, tourID).
			First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		var tour models.Tour
		if err := tx.First(&tour, tourID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTourNotFound
			}
			return fmt.Errorf("failed to load tour %d: %w", tourID, err)
		}

		n := booking.NumberOfPeople
		if err := tx.Model(&tour).
			Updates(map[string]interface{}{
				"available_places": gorm.Expr("available_places + ?", n),
				"occupied_places":  gorm.Expr("occupied_places - ?", n),
			}).Error; err != nil {
			return fmt.Errorf("failed to return places to tour %d: %w", tourID, err)
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return fmt.Errorf("failed to delete booking %d: %w", bookingID, err)
		}
		return nil
	})
}

// GetAllWithTours returns every booking joined with its tour.
func (s *BookingService) GetAllWithTours() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Preload("Tour").Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, ErrBookingNotFound
		}
		return booking, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return booking, nil
}
