package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"tour-booking/metrics"
	"tour-booking/middleware"
	"tour-booking/models"
	"tour-booking/services"

	"github.com/gin-gonic/gin"
)

// AdminController serves the session-guarded admin pages: the menu, the
// client list and tour management.
type AdminController struct {
	Tours     *services.TourService
	Bookings  *services.BookingService
	UploadDir string
}

func NewAdminController(tours *services.TourService, bookings *services.BookingService, uploadDir string) *AdminController {
	return &AdminController{Tours: tours, Bookings: bookings, UploadDir: uploadDir}
}

// Profile renders the admin menu; the POSTed action picks the next page.
func (ac *AdminController) Profile(c *gin.Context) {
	username := c.Param("username")

	if c.Request.Method == http.MethodPost {
		switch c.PostForm("action") {
		case "add_tour":
			c.Redirect(http.StatusSeeOther, "/add_tour_page/"+username)
			return
		case "edit_tours":
			c.Redirect(http.StatusSeeOther, "/up_del_tour_page/"+username)
			return
		case "clients":
			c.Redirect(http.StatusSeeOther, "/clients/"+username)
			return
		}
	}

	c.HTML(http.StatusOK, "admin_menu.html", gin.H{"Username": username})
}

func (ac *AdminController) Clients(c *gin.Context) {
	bookings, err := ac.Bookings.GetAllWithTours()
	if err != nil {
		log.Printf("failed to list clients: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}
	if len(bookings) == 0 {
		c.HTML(http.StatusOK, "empty_clients.html", nil)
		return
	}
	c.HTML(http.StatusOK, "admin_clients.html", gin.H{
		"Username": c.Param("username"),
		"Bookings": bookings,
	})
}

// ExportClients streams the client list as an .xlsx workbook.
func (ac *AdminController) ExportClients(c *gin.Context) {
	bookings, err := ac.Bookings.GetAllWithTours()
	if err != nil {
		log.Printf("failed to list clients for export: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	f, err := services.BuildClientsWorkbook(bookings)
	if err != nil {
		log.Printf("failed to build clients workbook: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="clients.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("failed to write clients workbook: %v", err)
	}
}

// TourList shows every tour with links to update or delete it.
func (ac *AdminController) TourList(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		tourID := c.PostForm("tour_id")
		switch c.PostForm("action") {
		case "update":
			c.Redirect(http.StatusSeeOther, "/up_del_tour_page/update/"+tourID)
			return
		case "delete":
			c.Redirect(http.StatusSeeOther, "/up_del_tour_page/delete/"+tourID)
			return
		}
	}

	tours, err := ac.Tours.GetAll()
	if err != nil {
		log.Printf("failed to list tours: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}
	if len(tours) == 0 {
		c.HTML(http.StatusOK, "empty_tours.html", nil)
		return
	}
	c.HTML(http.StatusOK, "admin_tour_list.html", gin.H{
		"Username": c.Param("username"),
		"Tours":    tours,
	})
}

func (ac *AdminController) ShowUpdateTour(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", nil)
		return
	}

	tour, err := ac.Tours.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTourNotFound) {
			c.HTML(http.StatusNotFound, "empty_tours.html", nil)
			return
		}
		log.Printf("failed to load tour %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	c.HTML(http.StatusOK, "admin_update_tour.html", gin.H{"Tour": tour})
}

// UpdateTour overwrites every field of a tour, capacity counters included;
// the admin's numbers are trusted once they pass validation.
func (ac *AdminController) UpdateTour(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", nil)
		return
	}

	var form models.TourForm
	if err := c.ShouldBind(&form); err != nil {
		tour, _ := ac.Tours.GetByID(id)
		c.HTML(http.StatusBadRequest, "admin_update_tour.html", gin.H{
			"Tour":   tour,
			"Errors": []string{"invalid form submission"},
		})
		return
	}

	fields, violations := form.Validate()
	if len(violations) > 0 {
		tour, _ := ac.Tours.GetByID(id)
		c.HTML(http.StatusBadRequest, "admin_update_tour.html", gin.H{
			"Tour":   tour,
			"Errors": violations,
		})
		return
	}

	tour, err := ac.Tours.Update(id, fields)
	if err != nil {
		if errors.Is(err, services.ErrTourNotFound) {
			c.HTML(http.StatusNotFound, "empty_tours.html", nil)
			return
		}
		log.Printf("failed to update tour %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	log.Printf("tour %d updated by %s", id, middleware.AdminUser(c))
	c.HTML(http.StatusOK, "admin_update_tour.html", gin.H{
		"Tour":    tour,
		"Success": "tour updated",
	})
}

func (ac *AdminController) ShowDeleteTour(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", nil)
		return
	}

	tour, err := ac.Tours.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTourNotFound) {
			c.HTML(http.StatusNotFound, "empty_tours.html", nil)
			return
		}
		log.Printf("failed to load tour %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	c.HTML(http.StatusOK, "admin_delete_tour.html", gin.H{"Tour": tour})
}

// DeleteTour removes the tour together with every booking referencing it.
func (ac *AdminController) DeleteTour(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", nil)
		return
	}

	if c.PostForm("action") != "delete" {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/up_del_tour_page/delete/%d", id))
		return
	}

	if err := ac.Tours.Delete(id); err != nil {
		if errors.Is(err, services.ErrTourNotFound) {
			c.HTML(http.StatusNotFound, "empty_tours.html", nil)
			return
		}
		log.Printf("failed to delete tour %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	log.Printf("tour %d deleted by %s", id, middleware.AdminUser(c))
	c.Redirect(http.StatusSeeOther, "/up_del_tour_page/"+middleware.AdminUser(c))
}

func (ac *AdminController) ShowAddTour(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_add_tour.html", gin.H{
		"Username": c.Param("username"),
		"Form":     models.TourForm{},
	})
}

// AddTour validates the form and the uploaded image, stores the image and
// creates the tour.
func (ac *AdminController) AddTour(c *gin.Context) {
	username := c.Param("username")

	var form models.TourForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin_add_tour.html", gin.H{
			"Username": username,
			"Form":     form,
			"Errors":   []string{"invalid form submission"},
		})
		return
	}

	fields, violations := form.Validate()

	file, err := c.FormFile("image_path")
	if err != nil {
		violations = append(violations, "tour image is required")
	} else if !services.AllowedImageFile(file.Filename) {
		violations = append(violations, "image must be a .png, .jpg or .jpeg file")
	}

	if len(violations) > 0 {
		c.HTML(http.StatusBadRequest, "admin_add_tour.html", gin.H{
			"Username": username,
			"Form":     form,
			"Errors":   violations,
		})
		return
	}

	filename, err := services.SaveTourImage(file, ac.UploadDir)
	if err != nil {
		log.Printf("failed to save tour image: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}
	fields.ImagePath = filename

	if err := ac.Tours.Create(&fields); err != nil {
		log.Printf("failed to create tour: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	log.Printf("tour %q created by %s", fields.Title, username)
	c.HTML(http.StatusOK, "admin_add_tour.html", gin.H{
		"Username": username,
		"Form":     models.TourForm{},
		"Success":  "tour created",
	})
}

func (ac *AdminController) ShowDeleteBooking(c *gin.Context) {
	bookingID, ok := parseID(c.Param("user_id"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", nil)
		return
	}

	booking, err := ac.Bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.HTML(http.StatusNotFound, "error.html", nil)
			return
		}
		log.Printf("failed to load booking %d: %v", bookingID, err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	c.HTML(http.StatusOK, "admin_delete_booking.html", gin.H{"Booking": booking})
}

// DeleteBooking reverses the booking's capacity effect and removes it.
func (ac *AdminController) DeleteBooking(c *gin.Context) {
	bookingID, okB := parseID(c.Param("user_id"))
	tourID, okT := parseID(c.Param("tour_id"))
	if !okB || !okT {
		c.HTML(http.StatusNotFound, "error.html", nil)
		return
	}

	if c.PostForm("action") != "delete" {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/clients/delete/%d/%d", bookingID, tourID))
		return
	}

	if err := ac.Bookings.Delete(bookingID, tourID); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) || errors.Is(err, services.ErrTourNotFound) {
			c.HTML(http.StatusNotFound, "error.html", nil)
			return
		}
		log.Printf("failed to delete booking %d: %v", bookingID, err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	log.Printf("booking %d on tour %d deleted by %s", bookingID, tourID, middleware.AdminUser(c))
	metrics.IncBookingDeleted()
	c.Redirect(http.StatusSeeOther, "/clients/"+middleware.AdminUser(c))
}
