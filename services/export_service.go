package services

import (
	"fmt"

	"tour-booking/models"

	"github.com/xuri/excelize/v2"
)

// BuildClientsWorkbook lays the client list out as one sheet, one row per
// booking with its tour.
func BuildClientsWorkbook(bookings []models.Booking) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Clients"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("error dropping default sheet: %w", err)
	}

	headers := []string{"ID", "Name", "Email", "Phone", "People", "Tour", "Start date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, b := range bookings {
		row := i + 2
		values := []interface{}{
			b.ID, b.Name, b.Email, b.Phone, b.NumberOfPeople, b.Tour.Title, b.Tour.StartDate,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
