package services

import (
	"bytes"
	"fmt"
	"time"

	"toursapp/internal/domain/models"

	"github.com/phpdave11/gofpdf"
)

// PdfService renders report and ticket PDFs from already-loaded entity
// lists. It never touches the database.
type PdfService struct{}

func NewPdfService() PdfService { return PdfService{} }

// ToursReport renders every tour as a block of labelled lines.
func (PdfService) ToursReport(tours []*models.Tour) ([]byte, string, error) {
	pdf := newReportPage("Tours Report")

	pdf.SetFont("Helvetica", "", 11)
	for _, tour := range tours {
		destination := "-"
		if tour.Destination != nil {
			destination = tour.Destination.Name
		}
		lines := []string{
			fmt.Sprintf("Name            : %s", tour.Name),
			fmt.Sprintf("Description     : %s", tour.Description),
			fmt.Sprintf("Destination     : %s", destination),
			fmt.Sprintf("Start Date      : %s", tour.StartDate.Format("02 Jan 2006")),
			fmt.Sprintf("End Date        : %s", tour.EndDate.Format("02 Jan 2006")),
			fmt.Sprintf("Price           : %s", formatPrice(tour.Price)),
			fmt.Sprintf("Max Participants: %d", tour.MaxParticipants),
		}
		for _, line := range lines {
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	return finishPDF(pdf, "ToursReport.pdf")
}

// DestinationsReport renders a four-column destinations table.
func (PdfService) DestinationsReport(destinations []*models.Destination) ([]byte, string, error) {
	pdf := newReportPage("Destinations Report")

	widths := []float64{60, 45, 45, 20}
	headers := []string{"Destination", "Country", "City", "Active"}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, d := range destinations {
		cols := []string{d.Name, d.Country, d.City, yesNo(d.IsActive)}
		for i, col := range cols {
			pdf.CellFormat(widths[i], 7, col, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(7)
	}

	return finishPDF(pdf, "DestinationsReport.pdf")
}

// BookingsReport renders a bookings table; the caller is expected to have
// loaded the Tour and User relations.
func (PdfService) BookingsReport(bookings []*models.Booking) ([]byte, string, error) {
	pdf := newReportPage("Bookings Report")

	widths := []float64{35, 40, 28, 22, 28, 25}
	headers := []string{"User", "Tour", "Date", "Guests", "Total", "Status"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	for _, b := range bookings {
		user := "-"
		if b.User != nil {
			user = b.User.Name
		}
		tour := "-"
		if b.Tour != nil {
			tour = b.Tour.Name
		}
		cols := []string{
			user,
			tour,
			b.BookingDate.Format("02/01/2006"),
			fmt.Sprintf("%d", b.Participants),
			formatPrice(b.TotalPrice),
			string(b.Status),
		}
		for i, col := range cols {
			pdf.CellFormat(widths[i], 7, col, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(7)
	}

	return finishPDF(pdf, "BookingsReport.pdf")
}

// TicketPDF renders the single-booking ticket that is e-mailed to the
// customer after a successful booking.
func (PdfService) TicketPDF(ticket models.Ticket) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, "Tours & Travels")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Ticket Number: "+ticket.Number)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Customer Name  : %s", ticket.CustomerName),
		fmt.Sprintf("Tour Name      : %s", ticket.TourName),
		fmt.Sprintf("Booking Date   : %s", ticket.BookingDate.Format("02/01/2006")),
		fmt.Sprintf("Tour Start Date: %s", ticket.TourStartDate.Format("02/01/2006")),
		fmt.Sprintf("Tour End Date  : %s", ticket.TourEndDate.Format("02/01/2006")),
		fmt.Sprintf("Total Price    : %s", formatPrice(ticket.TotalPrice)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Generated on: "+time.Now().Format("02/01/2006 15:04"))

	return finishPDF(pdf, fmt.Sprintf("Ticket_%s.pdf", ticket.Number))
}

func newReportPage(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)
	return pdf
}

func finishPDF(pdf *gofpdf.Fpdf, filename string) ([]byte, string, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), filename, nil
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
