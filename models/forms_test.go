package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTourForm() TourForm {
	return TourForm{
		Title:           "Altai trek",
		Description:     "A week in the mountains.",
		Place:           "Altai",
		StartDate:       "2026-07-01",
		Duration:        "7",
		MaxPeople:       "10",
		AvailablePlaces: "10",
		OccupiedPlaces:  "0",
		PricePerPerson:  "450",
	}
}

func TestTourFormValid(t *testing.T) {
	tour, violations := validTourForm().Validate()
	require.Empty(t, violations)

	assert.Equal(t, "Altai trek", tour.Title)
	assert.Equal(t, 7, tour.Duration)
	assert.Equal(t, 10, tour.MaxPeople)
	assert.Equal(t, 450.0, tour.PricePerPerson)
}

func TestTourFormFieldLengths(t *testing.T) {
	form := validTourForm()
	form.Title = strings.Repeat("a", 18)
	_, violations := form.Validate()
	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "title")

	form = validTourForm()
	form.Title = strings.Repeat("a", 17)
	_, violations = form.Validate()
	assert.Empty(t, violations)

	form = validTourForm()
	form.Description = strings.Repeat("a", 1101)
	_, violations = form.Validate()
	assert.Len(t, violations, 1)

	form = validTourForm()
	form.Place = strings.Repeat("a", 28)
	_, violations = form.Validate()
	assert.Len(t, violations, 1)
}

func TestTourFormDateFormat(t *testing.T) {
	for _, bad := range []string{"2026/07/01", "01-07-2026", "2026-7-1", "tomorrow", ""} {
		form := validTourForm()
		form.StartDate = bad
		_, violations := form.Validate()
		assert.NotEmpty(t, violations, "start date %q should be rejected", bad)
	}
}

func TestTourFormNumericFields(t *testing.T) {
	form := validTourForm()
	form.Duration = "seven"
	form.MaxPeople = "-1"
	form.AvailablePlaces = "0"
	form.PricePerPerson = "free"
	_, violations := form.Validate()
	// all violations reported at once, not just the first
	assert.Len(t, violations, 3)
}

func TestTourFormPlaceRelations(t *testing.T) {
	form := validTourForm()
	form.AvailablePlaces = "11"
	_, violations := form.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "available_places")

	form = validTourForm()
	form.AvailablePlaces = "5"
	form.OccupiedPlaces = "6"
	_, violations = form.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "occupied_places")
}

func TestBookingFormValid(t *testing.T) {
	form := BookingForm{
		Name:           "Ivan",
		Email:          "ivan@example.com",
		Phone:          "+71234567890",
		NumberOfPeople: "4",
	}

	people, violations := form.Validate(10)
	require.Empty(t, violations)
	assert.Equal(t, 4, people)
}

func TestBookingFormPhoneOptional(t *testing.T) {
	form := BookingForm{Name: "Ivan", Email: "ivan@example.com", NumberOfPeople: "1"}
	_, violations := form.Validate(10)
	assert.Empty(t, violations)
}

func TestBookingFormViolations(t *testing.T) {
	cases := []struct {
		name      string
		form      BookingForm
		available int
	}{
		{"zero people", BookingForm{Email: "a@b.c", NumberOfPeople: "0"}, 10},
		{"too many people", BookingForm{Email: "a@b.c", NumberOfPeople: "5"}, 3},
		{"bad email", BookingForm{Email: "not-an-email", NumberOfPeople: "1"}, 10},
		{"bad phone", BookingForm{Email: "a@b.c", Phone: "89031234567", NumberOfPeople: "1"}, 10},
		{"short phone", BookingForm{Email: "a@b.c", Phone: "+7123", NumberOfPeople: "1"}, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, violations := tc.form.Validate(tc.available)
			assert.NotEmpty(t, violations)
		})
	}
}

func TestBookingFormCollectsAllViolations(t *testing.T) {
	form := BookingForm{Email: "bad", Phone: "12345", NumberOfPeople: "0"}
	_, violations := form.Validate(10)
	assert.Len(t, violations, 3)
}
