package services

import (
	"testing"

	"tour-booking/config"
	"tour-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailNotifierRecordsAttempt(t *testing.T) {
	db := newTestDB(t)
	// no SMTP settings: the mailer logs instead of sending
	notifier := NewEmailNotifier(db, config.SMTPConfig{})

	err := notifier.Send("ivan@example.com", ConfirmationSubject, "body text")
	require.NoError(t, err)

	var entry models.NotificationLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "ivan@example.com", entry.Recipient)
	assert.Equal(t, ConfirmationSubject, entry.Subject)
	assert.Equal(t, "SENT", entry.Status)
	assert.NotEmpty(t, entry.Payload)
}

func TestConfirmationBody(t *testing.T) {
	body := ConfirmationBody(BookingSummary{
		Email:          "ivan@example.com",
		Title:          "Altai trek",
		StartDate:      "2026-07-01",
		Duration:       "7",
		NumberOfPeople: "4",
		PricePerPerson: "450",
	})

	assert.Contains(t, body, "Altai trek")
	assert.Contains(t, body, "2026-07-01")
	assert.Contains(t, body, "7 days")
	assert.Contains(t, body, "Number of people: 4")
}
