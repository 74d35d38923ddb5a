package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tour_booking",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by users.",
		},
	)

	bookingDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tour_booking",
			Name:      "booking_deleted_total",
			Help:      "Count of bookings deleted by the admin.",
		},
	)

	notificationSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tour_booking",
			Name:      "notification_sent_total",
			Help:      "Count of confirmation emails by outcome.",
		},
		[]string{"status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingDeleted, notificationSent)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingDeleted() {
	bookingDeleted.Inc()
}

func IncNotificationSent(status string) {
	notificationSent.WithLabelValues(status).Inc()
}
