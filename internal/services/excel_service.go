package services

import (
	"fmt"

	"toursapp/internal/domain/models"

	"github.com/xuri/excelize/v2"
)

// ExcelService writes entity lists into xlsx workbooks, one worksheet per
// export. Related entities must be loaded by the caller.
type ExcelService struct{}

func NewExcelService() ExcelService { return ExcelService{} }

func (ExcelService) DestinationsWorkbook(destinations []*models.Destination) ([]byte, string, error) {
	headers := []string{"Destination ID", "Name", "Country", "City", "Is Active"}
	rows := make([][]any, 0, len(destinations))
	for _, d := range destinations {
		rows = append(rows, []any{d.ID, d.Name, d.Country, d.City, yesNo(d.IsActive)})
	}
	data, err := buildWorkbook("Destinations", headers, rows)
	return data, "Destinations.xlsx", err
}

func (ExcelService) ToursWorkbook(tours []*models.Tour) ([]byte, string, error) {
	headers := []string{"Tour ID", "Name", "Destination", "Price", "Max Participants", "Is Active"}
	rows := make([][]any, 0, len(tours))
	for _, t := range tours {
		destination := ""
		if t.Destination != nil {
			destination = t.Destination.Name
		}
		rows = append(rows, []any{t.ID, t.Name, destination, t.Price, t.MaxParticipants, yesNo(t.IsActive)})
	}
	data, err := buildWorkbook("Tours", headers, rows)
	return data, "Tours.xlsx", err
}

func (ExcelService) BookingsWorkbook(bookings []*models.Booking) ([]byte, string, error) {
	headers := []string{"Booking ID", "User", "Tour", "Booking Date", "Participants", "Total Price", "Status"}
	rows := make([][]any, 0, len(bookings))
	for _, b := range bookings {
		user := ""
		if b.User != nil {
			user = b.User.Name
		}
		tour := ""
		if b.Tour != nil {
			tour = b.Tour.Name
		}
		rows = append(rows, []any{
			b.ID, user, tour,
			b.BookingDate.Format("02/01/2006"),
			b.Participants, b.TotalPrice, string(b.Status),
		})
	}
	data, err := buildWorkbook("Bookings", headers, rows)
	return data, "Bookings.xlsx", err
}

func buildWorkbook(sheet string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
