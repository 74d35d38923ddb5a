package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"tour-booking/metrics"
	"tour-booking/models"
	"tour-booking/services"

	"github.com/gin-gonic/gin"
)

// PublicController serves the unauthenticated pages: tour browsing,
// booking and the post-booking confirmation.
type PublicController struct {
	Tours    *services.TourService
	Bookings *services.BookingService
	Notifier services.Notifier
}

func NewPublicController(tours *services.TourService, bookings *services.BookingService, notifier services.Notifier) *PublicController {
	return &PublicController{Tours: tours, Bookings: bookings, Notifier: notifier}
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (pc *PublicController) Welcome(c *gin.Context) {
	c.HTML(http.StatusOK, "base.html", nil)
}

func (pc *PublicController) ListTours(c *gin.Context) {
	tours, err := pc.Tours.GetAll()
	if err != nil {
		log.Printf("failed to list tours: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}
	if len(tours) == 0 {
		c.HTML(http.StatusOK, "empty_tours.html", nil)
		return
	}
	c.HTML(http.StatusOK, "tours.html", gin.H{"Tours": tours})
}

// ShowTour renders the tour detail page with its booking form.
func (pc *PublicController) ShowTour(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", nil)
		return
	}

	tour, err := pc.Tours.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTourNotFound) {
			c.HTML(http.StatusNotFound, "error.html", nil)
			return
		}
		log.Printf("failed to load tour %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	c.HTML(http.StatusOK, "book_tour.html", gin.H{"Tour": tour})
}

// BookTour handles the booking form submission. On success the client is
// redirected to the confirmation page, which triggers the notifier.
func (pc *PublicController) BookTour(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", nil)
		return
	}

	tour, err := pc.Tours.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTourNotFound) {
			c.HTML(http.StatusNotFound, "error.html", nil)
			return
		}
		log.Printf("failed to load tour %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	var form models.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "book_tour.html", gin.H{
			"Tour":   tour,
			"Errors": []string{"invalid form submission"},
		})
		return
	}

	people, violations := form.Validate(tour.AvailablePlaces)
	if len(violations) > 0 {
		c.HTML(http.StatusBadRequest, "book_tour.html", gin.H{
			"Tour":   tour,
			"Errors": violations,
		})
		return
	}

	booking := models.Booking{
		Name:           form.Name,
		Email:          form.Email,
		Phone:          form.Phone,
		NumberOfPeople: people,
		TourID:         tour.ID,
	}
	if err := pc.Bookings.Create(&booking); err != nil {
		switch {
		case errors.Is(err, services.ErrNoCapacity), errors.Is(err, services.ErrInvalidPeopleCount):
			// Capacity may have been consumed between the form check and
			// the ledger update; treat it as a plain validation failure.
			c.HTML(http.StatusBadRequest, "book_tour.html", gin.H{
				"Tour":   tour,
				"Errors": []string{"not enough available places"},
			})
		case errors.Is(err, services.ErrTourNotFound):
			c.HTML(http.StatusNotFound, "error.html", nil)
		default:
			log.Printf("failed to create booking on tour %d: %v", tour.ID, err)
			c.HTML(http.StatusInternalServerError, "error.html", nil)
		}
		return
	}

	log.Printf("booking %d created: %d places on tour %d", booking.ID, people, tour.ID)
	metrics.IncBookingCreated()

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/success/%s/%s/%s/%d/%d/%s",
		url.PathEscape(booking.Email),
		url.PathEscape(tour.Title),
		url.PathEscape(tour.StartDate),
		tour.Duration,
		people,
		url.PathEscape(strconv.FormatFloat(tour.PricePerPerson, 'f', -1, 64)),
	))
}

// Success renders the confirmation page and triggers the notifier. The
// booking is already committed, so a failed send only gets logged.
func (pc *PublicController) Success(c *gin.Context) {
	summary := services.BookingSummary{
		Email:          c.Param("email"),
		Title:          c.Param("title"),
		StartDate:      c.Param("date"),
		Duration:       c.Param("duration"),
		NumberOfPeople: c.Param("number_of_people"),
		PricePerPerson: c.Param("price"),
	}

	if err := pc.Notifier.Send(summary.Email, services.ConfirmationSubject, services.ConfirmationBody(summary)); err != nil {
		log.Printf("failed to send confirmation email to %s: %v", summary.Email, err)
		metrics.IncNotificationSent("failed")
	} else {
		metrics.IncNotificationSent("sent")
	}

	c.HTML(http.StatusOK, "success.html", gin.H{"Summary": summary})
}

func (pc *PublicController) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", nil)
}
