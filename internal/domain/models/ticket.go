package models

import "time"

// Ticket is a transient projection built when a booking succeeds. It is never
// stored; it only feeds the PDF generator and the confirmation e-mail.
type Ticket struct {
	Number        string
	CustomerName  string
	TourName      string
	BookingDate   time.Time
	TourStartDate time.Time
	TourEndDate   time.Time
	TotalPrice    float64
}
