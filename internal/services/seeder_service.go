package services

import (
	"context"
	"time"

	"toursapp/internal/domain"
	"toursapp/internal/domain/models"
	"toursapp/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/uptrace/bun"
)

var seedPaymentMethods = []string{"Credit Card", "Debit Card", "PayPal"}

// SeederService populates the database with randomized demo records. Tours
// need at least one destination to exist, bookings need at least one user
// and one tour.
type SeederService struct {
	db *bun.DB
}

func NewSeederService(db *bun.DB) *SeederService {
	return &SeederService{db: db}
}

func (s *SeederService) SeedDestinations(ctx context.Context, count int) error {
	if count <= 0 {
		return domain.ValidationError{Field: "count", Msg: "count must be positive"}
	}
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	for i := 0; i < count; i++ {
		d := &models.Destination{
			Name:        gofakeit.City(),
			Description: gofakeit.Paragraph(1, 3, 12, " "),
			Country:     gofakeit.Country(),
			City:        gofakeit.City(),
			ImageURL:    gofakeit.URL(),
			CreatedBy:   gofakeit.Name(),
			CreatedAt:   gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()),
			IsActive:    gofakeit.Bool(),
		}
		if err := uow.Destinations.Add(d); err != nil {
			return err
		}
	}
	return uow.Complete(ctx)
}

func (s *SeederService) SeedTours(ctx context.Context, count int) error {
	if count <= 0 {
		return domain.ValidationError{Field: "count", Msg: "count must be positive"}
	}
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	destinations, err := uow.Destinations.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	if len(destinations) == 0 {
		return domain.ValidationError{Msg: "no destinations found in the database"}
	}

	now := time.Now()
	for i := 0; i < count; i++ {
		start := gofakeit.DateRange(now.AddDate(0, 0, 1), now.AddDate(0, 6, 0))
		t := &models.Tour{
			Name:            gofakeit.Sentence(3),
			Description:     gofakeit.Paragraph(1, 3, 12, " "),
			StartDate:       start,
			EndDate:         start.AddDate(0, 0, gofakeit.Number(2, 14)),
			Price:           gofakeit.Price(100, 1000),
			MaxParticipants: gofakeit.Number(5, 50),
			DestinationID:   destinations[gofakeit.Number(0, len(destinations)-1)].ID,
			CreatedBy:       gofakeit.Name(),
			CreatedAt:       gofakeit.DateRange(now.AddDate(-1, 0, 0), now),
			IsActive:        gofakeit.Bool(),
		}
		if err := uow.Tours.Add(t); err != nil {
			return err
		}
	}
	return uow.Complete(ctx)
}

func (s *SeederService) SeedBookings(ctx context.Context, count int) error {
	if count <= 0 {
		return domain.ValidationError{Field: "count", Msg: "count must be positive"}
	}
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	users, err := uow.Users.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	tours, err := uow.Tours.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	if len(users) == 0 || len(tours) == 0 {
		return domain.ValidationError{Msg: "no users or tours found in the database"}
	}

	now := time.Now()
	statuses := []models.BookingStatus{models.BookingPending, models.BookingConfirmed, models.BookingCanceled}
	payments := []models.PaymentStatus{models.PaymentPending, models.PaymentPaid, models.PaymentFailed}
	for i := 0; i < count; i++ {
		user := users[gofakeit.Number(0, len(users)-1)]
		tour := tours[gofakeit.Number(0, len(tours)-1)]
		participants := gofakeit.Number(1, 5)
		b := &models.Booking{
			UserID:        user.ID,
			TourID:        tour.ID,
			BookingDate:   gofakeit.DateRange(now.AddDate(0, 0, -30), now),
			Participants:  participants,
			TotalPrice:    tour.Price * float64(participants),
			Status:        statuses[gofakeit.Number(0, len(statuses)-1)],
			PaymentMethod: seedPaymentMethods[gofakeit.Number(0, len(seedPaymentMethods)-1)],
			PaymentStatus: payments[gofakeit.Number(0, len(payments)-1)],
			CreatedBy:     gofakeit.Name(),
			CreatedAt:     gofakeit.DateRange(now.AddDate(-1, 0, 0), now),
			IsActive:      gofakeit.Bool(),
		}
		if err := uow.Bookings.Add(b); err != nil {
			return err
		}
	}
	return uow.Complete(ctx)
}
