package services

import (
	"context"
	"strings"
	"time"

	"toursapp/internal/domain"
	"toursapp/internal/domain/models"
	"toursapp/internal/repositories"

	"github.com/uptrace/bun"
)

// BookingService is the administrative CRUD surface over bookings. The
// customer-facing flow lives in UserBookingService.
type BookingService struct {
	db *bun.DB
}

func NewBookingService(db *bun.DB) *BookingService {
	return &BookingService{db: db}
}

func (s *BookingService) List(ctx context.Context, pageNumber, pageSize int) (*repositories.Page[models.Booking], error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Bookings.GetPaginated(ctx, pageNumber, pageSize, "Tour,User")
}

func (s *BookingService) All(ctx context.Context) ([]*models.Booking, error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Bookings.GetAll(ctx, nil, "Tour,User")
}

func (s *BookingService) Get(ctx context.Context, id int64) (*models.Booking, error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Bookings.GetByID(ctx, id, "Tour,User")
}

// Create persists an admin-entered booking. The total price is always
// recomputed from the tour's price; any client-supplied total is ignored.
func (s *BookingService) Create(ctx context.Context, b *models.Booking) error {
	if err := validateBooking(b); err != nil {
		return err
	}
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	tour, err := uow.Tours.GetByID(ctx, b.TourID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.ValidationError{Field: "tourId", Msg: "unknown tour"}
		}
		return err
	}
	applyBookingDefaults(b, tour)

	if err := uow.Bookings.Add(b); err != nil {
		return err
	}
	return uow.Complete(ctx)
}

func (s *BookingService) Update(ctx context.Context, id int64, b *models.Booking) error {
	if b.ID != id {
		return domain.NotFoundError{Resource: "booking"}
	}
	if err := validateBooking(b); err != nil {
		return err
	}
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	tour, err := uow.Tours.GetByID(ctx, b.TourID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.ValidationError{Field: "tourId", Msg: "unknown tour"}
		}
		return err
	}
	b.TotalPrice = tour.Price * float64(b.Participants)

	if err := uow.Bookings.Update(b); err != nil {
		return err
	}
	return resolveWriteConflict(ctx, uow.Bookings, uow.Complete(ctx), id)
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	b, err := uow.Bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uow.Bookings.Remove(b); err != nil {
		return err
	}
	return uow.Complete(ctx)
}

func validateBooking(b *models.Booking) error {
	if b.TourID <= 0 {
		return domain.ValidationError{Field: "tourId", Msg: "tour is required"}
	}
	if b.Participants <= 0 {
		return domain.ValidationError{Field: "participants", Msg: "participants must be positive"}
	}
	if strings.TrimSpace(b.PaymentMethod) == "" {
		return domain.ValidationError{Field: "paymentMethod", Msg: "payment method is required"}
	}
	return nil
}

func applyBookingDefaults(b *models.Booking, tour *models.Tour) {
	b.TotalPrice = tour.Price * float64(b.Participants)
	if b.BookingDate.IsZero() {
		b.BookingDate = time.Now()
	}
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = models.PaymentPending
	}
}
