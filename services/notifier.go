package services

import (
	"encoding/json"
	"fmt"
	"log"

	"tour-booking/config"
	"tour-booking/models"
	"tour-booking/utils"

	"gorm.io/gorm"
)

// Notifier is the external collaborator that delivers a confirmation
// message. Failures are best-effort: the booking is already committed.
type Notifier interface {
	Send(recipient, subject, body string) error
}

// BookingSummary is what the confirmation message is built from. Fields
// are strings because they travel through the success-page URL.
type BookingSummary struct {
	Email          string `json:"email"`
	Title          string `json:"title"`
	StartDate      string `json:"start_date"`
	Duration       string `json:"duration"`
	NumberOfPeople string `json:"number_of_people"`
	PricePerPerson string `json:"price_per_person"`
}

const ConfirmationSubject = "Tours for the soul. Welcome!"

// ConfirmationBody renders the confirmation message for a booking.
func ConfirmationBody(s BookingSummary) string {
	return fmt.Sprintf(
		"Thank you for booking a tour!\n"+
			"Your tour: %s\n"+
			"Start date: %s\n"+
			"Duration: %s days\n"+
			"Number of people: %s\n"+
			"Price per person: %s\n"+
			"Our manager will contact you within 24 hours to confirm the details "+
			"of the upcoming tour. Please expect a call!",
		s.Title, s.StartDate, s.Duration, s.NumberOfPeople, s.PricePerPerson,
	)
}

// EmailNotifier sends over SMTP and records every attempt in the
// notification log.
type EmailNotifier struct {
	DB     *gorm.DB
	mailer utils.Mailer
}

func NewEmailNotifier(db *gorm.DB, cfg config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{
		DB: db,
		mailer: utils.Mailer{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Username: cfg.Username,
			Password: cfg.Password,
			FromName: cfg.FromName,
		},
	}
}

func (n *EmailNotifier) Send(recipient, subject, body string) error {
	err := n.mailer.Send(recipient, subject, body)

	entry := models.NotificationLog{
		Recipient: recipient,
		Subject:   subject,
		Status:    "SENT",
	}
	if err != nil {
		entry.Status = "FAILED"
		entry.Error = err.Error()
	}
	if payload, mErr := json.Marshal(map[string]string{
		"recipient": recipient,
		"subject":   subject,
		"body":      body,
	}); mErr == nil {
		entry.Payload = payload
	}

	if logErr := n.DB.Create(&entry).Error; logErr != nil {
		log.Printf("failed to record notification attempt: %v", logErr)
	}

	return err
}
