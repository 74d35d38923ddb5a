package services

import "errors"

// Sentinel errors checked with errors.Is at the controller boundary.
var (
	ErrTourNotFound       = errors.New("tour_not_found")
	ErrBookingNotFound    = errors.New("booking_not_found")
	ErrNoCapacity         = errors.New("not_enough_available_places")
	ErrInvalidPeopleCount = errors.New("invalid_number_of_people")
)
