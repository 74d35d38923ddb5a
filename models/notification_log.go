package models

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationLog records every confirmation-email attempt, best-effort.
type NotificationLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Recipient string `gorm:"size:255" json:"recipient"`
	Subject   string `gorm:"size:255" json:"subject"`

	Status string `gorm:"size:16" json:"status"` // SENT | FAILED
	Error  string `gorm:"type:text" json:"error,omitempty"`

	// Booking summary as handed to the notifier.
	Payload datatypes.JSON `json:"payload,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
