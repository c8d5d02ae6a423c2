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

type TourService struct {
	db *bun.DB
}

func NewTourService(db *bun.DB) *TourService {
	return &TourService{db: db}
}

func (s *TourService) List(ctx context.Context, pageNumber, pageSize int) (*repositories.Page[models.Tour], error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Tours.GetPaginated(ctx, pageNumber, pageSize, "Destination")
}

func (s *TourService) All(ctx context.Context) ([]*models.Tour, error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Tours.GetAll(ctx, nil, "Destination")
}

func (s *TourService) Get(ctx context.Context, id int64) (*models.Tour, error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Tours.GetByID(ctx, id, "Destination")
}

func (s *TourService) Create(ctx context.Context, t *models.Tour) error {
	if err := validateTour(t); err != nil {
		return err
	}
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	if _, err := uow.Destinations.GetByID(ctx, t.DestinationID); err != nil {
		if domain.IsNotFound(err) {
			return domain.ValidationError{Field: "destinationId", Msg: "unknown destination"}
		}
		return err
	}
	if err := uow.Tours.Add(t); err != nil {
		return err
	}
	return uow.Complete(ctx)
}

func (s *TourService) Update(ctx context.Context, id int64, t *models.Tour) error {
	if t.ID != id {
		return domain.NotFoundError{Resource: "tour"}
	}
	if err := validateTour(t); err != nil {
		return err
	}
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	if _, err := uow.Destinations.GetByID(ctx, t.DestinationID); err != nil {
		if domain.IsNotFound(err) {
			return domain.ValidationError{Field: "destinationId", Msg: "unknown destination"}
		}
		return err
	}
	if err := uow.Tours.Update(t); err != nil {
		return err
	}
	return resolveWriteConflict(ctx, uow.Tours, uow.Complete(ctx), id)
}

func (s *TourService) Delete(ctx context.Context, id int64) error {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	t, err := uow.Tours.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uow.Tours.Remove(t); err != nil {
		return err
	}
	return uow.Complete(ctx)
}

func validateTour(t *models.Tour) error {
	if strings.TrimSpace(t.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if t.StartDate.IsZero() {
		return domain.ValidationError{Field: "startDate", Msg: "start date is required"}
	}
	if t.EndDate.IsZero() {
		return domain.ValidationError{Field: "endDate", Msg: "end date is required"}
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if t.EndDate.Before(today) {
		return domain.ValidationError{Field: "endDate", Msg: "End date must be in the future."}
	}
	if t.Price < 0 {
		return domain.ValidationError{Field: "price", Msg: "price must not be negative"}
	}
	if t.MaxParticipants <= 0 {
		return domain.ValidationError{Field: "maxParticipants", Msg: "max participants must be positive"}
	}
	if t.DestinationID <= 0 {
		return domain.ValidationError{Field: "destinationId", Msg: "destination is required"}
	}
	return nil
}
