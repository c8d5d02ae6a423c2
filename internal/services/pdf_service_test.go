package services

import (
	"bytes"
	"testing"
	"time"

	"toursapp/internal/domain/models"
)

func sampleBookings() []*models.Booking {
	now := time.Now()
	return []*models.Booking{
		{
			ID:            1,
			BookingDate:   now,
			Participants:  2,
			TotalPrice:    399.98,
			Status:        models.BookingConfirmed,
			PaymentMethod: "Credit Card",
			PaymentStatus: models.PaymentPaid,
			Tour:          &models.Tour{Name: "City highlights"},
			User:          &models.User{Name: "Maria"},
		},
		{
			ID:           2,
			BookingDate:  now,
			Participants: 1,
			TotalPrice:   100,
			Status:       models.BookingPending,
		},
	}
}

func TestPdfReports(t *testing.T) {
	svc := NewPdfService()
	now := time.Now()

	destinations := []*models.Destination{{ID: 1, Name: "Rome", Country: "Italy", City: "Rome", IsActive: true}}
	tours := []*models.Tour{{ID: 1, Name: "City highlights", StartDate: now, EndDate: now.AddDate(0, 0, 3), Price: 199.99, MaxParticipants: 10, Destination: destinations[0]}}

	cases := []struct {
		name     string
		render   func() ([]byte, string, error)
		filename string
	}{
		{"destinations", func() ([]byte, string, error) { return svc.DestinationsReport(destinations) }, "DestinationsReport.pdf"},
		{"tours", func() ([]byte, string, error) { return svc.ToursReport(tours) }, "ToursReport.pdf"},
		{"bookings", func() ([]byte, string, error) { return svc.BookingsReport(sampleBookings()) }, "BookingsReport.pdf"},
	}
	for _, tc := range cases {
		data, filename, err := tc.render()
		if err != nil {
			t.Fatalf("%s report returned error: %v", tc.name, err)
		}
		if filename != tc.filename {
			t.Fatalf("%s report filename = %s, want %s", tc.name, filename, tc.filename)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Fatalf("%s report is not a PDF", tc.name)
		}
	}
}

func TestTicketPDF(t *testing.T) {
	svc := NewPdfService()
	ticket := models.Ticket{
		Number:        "AB12CD34",
		CustomerName:  "Maria",
		TourName:      "City highlights",
		BookingDate:   time.Now(),
		TourStartDate: time.Now().AddDate(0, 1, 0),
		TourEndDate:   time.Now().AddDate(0, 1, 3),
		TotalPrice:    399.98,
	}

	data, filename, err := svc.TicketPDF(ticket)
	if err != nil {
		t.Fatalf("TicketPDF returned error: %v", err)
	}
	if filename != "Ticket_AB12CD34.pdf" {
		t.Fatalf("filename = %s, want Ticket_AB12CD34.pdf", filename)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("ticket output is not a PDF")
	}
}
