package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"toursapp/internal/domain"
	"toursapp/internal/domain/models"
	"toursapp/internal/repositories"
	"toursapp/internal/utils"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UserBookingService is the customer-facing booking flow: browse tours, book
// one (which generates and e-mails a ticket), list and cancel own bookings.
type UserBookingService struct {
	db    *bun.DB
	pdf   PdfService
	email EmailSender
}

func NewUserBookingService(db *bun.DB, pdf PdfService, email EmailSender) *UserBookingService {
	return &UserBookingService{db: db, pdf: pdf, email: email}
}

type BookTourInput struct {
	TourID        int64     `json:"tourId"`
	BookingDate   time.Time `json:"bookingDate"`
	Participants  int       `json:"participants"`
	PaymentMethod string    `json:"paymentMethod"`
}

func (s *UserBookingService) AvailableTours(ctx context.Context) ([]*models.Tour, error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Tours.GetAll(ctx, repositories.Where("t.is_active = ?", true), "Destination")
}

// BookTour books a tour for the given user. The total price is computed
// server-side from the tour's price; client-supplied totals are never
// trusted. On success a ticket PDF is e-mailed to the customer; an e-mail
// failure does not undo the committed booking and is reported via the
// returned emailed flag.
func (s *UserBookingService) BookTour(ctx context.Context, userID int64, in BookTourInput) (*models.Booking, bool, error) {
	if in.Participants <= 0 {
		return nil, false, domain.ValidationError{Field: "participants", Msg: "participants must be positive"}
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, false, domain.ValidationError{Field: "paymentMethod", Msg: "payment method is required"}
	}

	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, false, err
	}
	defer uow.Close()

	user, err := uow.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	tour, err := uow.Tours.GetByID(ctx, in.TourID)
	if err != nil {
		return nil, false, err
	}

	bookingDate := in.BookingDate
	if bookingDate.IsZero() {
		bookingDate = time.Now()
	}

	booking := &models.Booking{
		UserID:        user.ID,
		TourID:        tour.ID,
		BookingDate:   bookingDate,
		Participants:  in.Participants,
		TotalPrice:    tour.Price * float64(in.Participants),
		Status:        models.BookingPending,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: models.PaymentPending,
		CreatedBy:     user.Email,
		IsActive:      true,
	}
	if err := uow.Bookings.Add(booking); err != nil {
		return nil, false, err
	}
	if err := uow.Complete(ctx); err != nil {
		return nil, false, err
	}

	ticket := models.Ticket{
		Number:        strings.ToUpper(uuid.NewString()[:8]),
		CustomerName:  user.Name,
		TourName:      tour.Name,
		BookingDate:   bookingDate,
		TourStartDate: tour.StartDate,
		TourEndDate:   tour.EndDate,
		TotalPrice:    booking.TotalPrice,
	}

	emailed := s.sendTicket(user.Email, ticket)
	return booking, emailed, nil
}

func (s *UserBookingService) sendTicket(to string, ticket models.Ticket) bool {
	pdfData, filename, err := s.pdf.TicketPDF(ticket)
	if err != nil {
		utils.LogEventf("", "userbookings", "ticket_pdf", "failed to render ticket %s: %v", ticket.Number, err)
		return false
	}
	subject := fmt.Sprintf("Your Ticket - %s", ticket.Number)
	body := "<p>Thank you for booking! Please find your ticket attached.</p>"
	if err := s.email.Send(to, subject, body, pdfData, filename); err != nil {
		utils.LogEventf("", "userbookings", "ticket_email", "failed to send ticket %s: %v", ticket.Number, err)
		return false
	}
	return true
}

func (s *UserBookingService) MyBookings(ctx context.Context, userID int64) ([]*models.Booking, error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Bookings.GetAll(ctx, repositories.Where("b.user_id = ?", userID), "Tour")
}

// Cancel marks the booking canceled and inactive. Canceling an already
// canceled booking is a validation error.
func (s *UserBookingService) Cancel(ctx context.Context, userID, bookingID int64) error {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	booking, err := uow.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return domain.NotFoundError{Resource: "booking"}
	}
	if booking.Status == models.BookingCanceled {
		return domain.ValidationError{Field: "status", Msg: "booking is already canceled"}
	}

	booking.Status = models.BookingCanceled
	booking.IsActive = false
	if err := uow.Bookings.Update(booking); err != nil {
		return err
	}
	return resolveWriteConflict(ctx, uow.Bookings, uow.Complete(ctx), bookingID)
}

// ExportMyBookings renders the caller's bookings as a PDF report. An empty
// collection is a not-found condition, mirroring the admin exports.
func (s *UserBookingService) ExportMyBookings(ctx context.Context, userID int64) ([]byte, string, error) {
	bookings, err := s.MyBookings(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if len(bookings) == 0 {
		return nil, "", domain.NotFoundError{Resource: "bookings"}
	}
	return s.pdf.BookingsReport(bookings)
}
