package services

import (
	"testing"

	"tour-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingMovesPlaces(t *testing.T) {
	db := newTestDB(t)
	tour := seedTour(t, db, 10, 10, 0)
	svc := NewBookingService(db)

	booking := models.Booking{
		Name:           "Ivan",
		Email:          "ivan@example.com",
		Phone:          "+71234567890",
		NumberOfPeople: 4,
		TourID:         tour.ID,
	}
	require.NoError(t, svc.Create(&booking))
	require.NotZero(t, booking.ID)

	var got models.Tour
	require.NoError(t, db.First(&got, tour.ID).Error)
	assert.Equal(t, 6, got.AvailablePlaces)
	assert.Equal(t, 4, got.OccupiedPlaces)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteBookingRestoresPlaces(t *testing.T) {
	db := newTestDB(t)
	tour := seedTour(t, db, 10, 10, 0)
	svc := NewBookingService(db)

	booking := models.Booking{
		Name:           "Ivan",
		Email:          "ivan@example.com",
		NumberOfPeople: 4,
		TourID:         tour.ID,
	}
	require.NoError(t, svc.Create(&booking))
	require.NoError(t, svc.Delete(booking.ID, tour.ID))

	var got models.Tour
	require.NoError(t, db.First(&got, tour.ID).Error)
	assert.Equal(t, 10, got.AvailablePlaces)
	assert.Equal(t, 0, got.OccupiedPlaces)

	_, err := svc.GetByID(booking.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingPreservesPlaceSum(t *testing.T) {
	db := newTestDB(t)
	tour := seedTour(t, db, 12, 9, 3)
	svc := NewBookingService(db)

	booking := models.Booking{Name: "Olga", Email: "olga@example.com", NumberOfPeople: 5, TourID: tour.ID}
	require.NoError(t, svc.Create(&booking))

	var got models.Tour
	require.NoError(t, db.First(&got, tour.ID).Error)
	assert.Equal(t, 12, got.AvailablePlaces+got.OccupiedPlaces)

	require.NoError(t, svc.Delete(booking.ID, tour.ID))
	require.NoError(t, db.First(&got, tour.ID).Error)
	assert.Equal(t, 9, got.AvailablePlaces)
	assert.Equal(t, 3, got.OccupiedPlaces)
}

func TestCreateBookingInsufficientCapacity(t *testing.T) {
	db := newTestDB(t)
	tour := seedTour(t, db, 10, 3, 7)
	svc := NewBookingService(db)

	booking := models.Booking{Name: "Ivan", Email: "ivan@example.com", NumberOfPeople: 5, TourID: tour.ID}
	err := svc.Create(&booking)
	assert.ErrorIs(t, err, ErrNoCapacity)

	// no mutation on either store
	var got models.Tour
	require.NoError(t, db.First(&got, tour.ID).Error)
	assert.Equal(t, 3, got.AvailablePlaces)
	assert.Equal(t, 7, got.OccupiedPlaces)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateBookingInvalidPeopleCount(t *testing.T) {
	db := newTestDB(t)
	tour := seedTour(t, db, 10, 10, 0)
	svc := NewBookingService(db)

	for _, n := range []int{0, -2} {
		booking := models.Booking{Name: "Ivan", Email: "ivan@example.com", NumberOfPeople: n, TourID: tour.ID}
		assert.ErrorIs(t, svc.Create(&booking), ErrInvalidPeopleCount)
	}

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateBookingTourNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	booking := models.Booking{Name: "Ivan", Email: "ivan@example.com", NumberOfPeople: 2, TourID: 42}
	assert.ErrorIs(t, svc.Create(&booking), ErrTourNotFound)
}

func TestDeleteBookingNotFound(t *testing.T) {
	db := newTestDB(t)
	tour := seedTour(t, db, 10, 10, 0)
	svc := NewBookingService(db)

	assert.ErrorIs(t, svc.Delete(99, tour.ID), ErrBookingNotFound)

	var got models.Tour
	require.NoError(t, db.First(&got, tour.ID).Error)
	assert.Equal(t, 10, got.AvailablePlaces)
}

func TestGetAllWithTours(t *testing.T) {
	db := newTestDB(t)
	tour := seedTour(t, db, 10, 10, 0)
	svc := NewBookingService(db)

	for _, name := range []string{"Ivan", "Olga"} {
		booking := models.Booking{Name: name, Email: name + "@example.com", NumberOfPeople: 1, TourID: tour.ID}
		require.NoError(t, svc.Create(&booking))
	}

	bookings, err := svc.GetAllWithTours()
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, tour.Title, b.Tour.Title)
	}
}
