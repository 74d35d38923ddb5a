package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Form input schemas, validated once at the request boundary. Validation
// collects every violation instead of stopping at the first one.

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailRe = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phoneRe = regexp.MustCompile(`^\+7\d{10}$`)
)

const (
	MaxTitleLen       = 17
	MaxDescriptionLen = 1100
	MaxPlaceLen       = 27
)

// TourForm carries the raw add/update tour form fields.
type TourForm struct {
	Title           string `form:"title"`
	Description     string `form:"description"`
	Place           string `form:"place"`
	StartDate       string `form:"start_date_tour"`
	Duration        string `form:"duration"`
	MaxPeople       string `form:"max_people"`
	AvailablePlaces string `form:"available_places"`
	OccupiedPlaces  string `form:"occupied_places"`
	PricePerPerson  string `form:"price_per_person"`
}

func nonNegativeInt(raw, field string, violations *[]string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		*violations = append(*violations, fmt.Sprintf("%s must be a non-negative integer", field))
		return 0
	}
	return v
}

// Validate checks every constraint and returns the assembled tour
// (without ID and ImagePath) together with all violations found.
func (f TourForm) Validate() (Tour, []string) {
	var violations []string

	if len([]rune(f.Title)) > MaxTitleLen {
		violations = append(violations, fmt.Sprintf("title is longer than %d characters", MaxTitleLen))
	}
	if len([]rune(f.Description)) > MaxDescriptionLen {
		violations = append(violations, fmt.Sprintf("description is longer than %d characters", MaxDescriptionLen))
	}
	if len([]rune(f.Place)) > MaxPlaceLen {
		violations = append(violations, fmt.Sprintf("place is longer than %d characters", MaxPlaceLen))
	}
	if !dateRe.MatchString(strings.TrimSpace(f.StartDate)) {
		violations = append(violations, "start date must match YYYY-MM-DD")
	}

	duration := nonNegativeInt(f.Duration, "duration", &violations)
	maxPeople := nonNegativeInt(f.MaxPeople, "max_people", &violations)
	available := nonNegativeInt(f.AvailablePlaces, "available_places", &violations)
	occupied := nonNegativeInt(f.OccupiedPlaces, "occupied_places", &violations)

	price, err := strconv.ParseFloat(strings.TrimSpace(f.PricePerPerson), 64)
	if err != nil || price < 0 {
		violations = append(violations, "price_per_person must be a non-negative number")
	}

	if available > maxPeople {
		violations = append(violations, "available_places must not exceed max_people")
	}
	if occupied > available {
		violations = append(violations, "occupied_places must not exceed available_places")
	}

	tour := Tour{
		Title:           strings.TrimSpace(f.Title),
		Description:     f.Description,
		Place:           strings.TrimSpace(f.Place),
		StartDate:       strings.TrimSpace(f.StartDate),
		Duration:        duration,
		MaxPeople:       maxPeople,
		AvailablePlaces: available,
		OccupiedPlaces:  occupied,
		PricePerPerson:  price,
	}
	return tour, violations
}

// BookingForm carries the public booking form fields.
type BookingForm struct {
	Name           string `form:"name"`
	Email          string `form:"email"`
	Phone          string `form:"phone"`
	NumberOfPeople string `form:"number_of_people"`
}

// Validate checks the form against the tour's current availability and
// returns the parsed people count together with all violations found.
func (f BookingForm) Validate(availablePlaces int) (int, []string) {
	var violations []string

	people, err := strconv.Atoi(strings.TrimSpace(f.NumberOfPeople))
	if err != nil || people < 1 {
		violations = append(violations, "number_of_people must be at least 1")
	} else if people > availablePlaces {
		violations = append(violations, fmt.Sprintf("only %d places are available", availablePlaces))
	}

	if !emailRe.MatchString(strings.TrimSpace(f.Email)) {
		violations = append(violations, "email address is not valid")
	}
	if phone := strings.TrimSpace(f.Phone); phone != "" && !phoneRe.MatchString(phone) {
		violations = append(violations, "phone must be +7 followed by 10 digits")
	}

	return people, violations
}
