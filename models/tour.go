package models

import "time"

type Tour struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:64" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Place       string `gorm:"size:64" json:"place"`

	// Stored as the YYYY-MM-DD string the admin submitted.
	StartDate string `gorm:"column:start_date_tour;size:10" json:"start_date_tour"`
	Duration  int    `gorm:"column:duration" json:"duration"`

	MaxPeople       int `gorm:"column:max_people" json:"max_people"`
	AvailablePlaces int `gorm:"column:available_places" json:"available_places"`
	OccupiedPlaces  int `gorm:"column:occupied_places" json:"occupied_places"`

	PricePerPerson float64 `gorm:"column:price_per_person" json:"price_per_person"`
	ImagePath      string  `gorm:"column:image_path;size:255" json:"image_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:TourID" json:"bookings,omitempty"`
}
