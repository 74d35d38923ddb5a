package models

import "time"

// Booking is one reservation of NumberOfPeople seats on a tour.
// The table keeps the historical name "users".
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:255" json:"name"`
	Email string `gorm:"size:255" json:"email"`
	Phone string `gorm:"size:32" json:"phone"`

	NumberOfPeople int  `gorm:"column:number_of_people" json:"number_of_people"`
	TourID         uint `gorm:"column:tour_id;index" json:"tour_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tour Tour `gorm:"foreignKey:TourID;references:ID" json:"tour,omitempty"`
}

func (Booking) TableName() string {
	return "users"
}
