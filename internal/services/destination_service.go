package services

import (
	"context"
	"strings"

	"toursapp/internal/domain"
	"toursapp/internal/domain/models"
	"toursapp/internal/repositories"

	"github.com/uptrace/bun"
)

type DestinationService struct {
	db *bun.DB
}

func NewDestinationService(db *bun.DB) *DestinationService {
	return &DestinationService{db: db}
}

func (s *DestinationService) List(ctx context.Context, pageNumber, pageSize int) (*repositories.Page[models.Destination], error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Destinations.GetPaginated(ctx, pageNumber, pageSize)
}

func (s *DestinationService) All(ctx context.Context) ([]*models.Destination, error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Destinations.GetAll(ctx, nil)
}

func (s *DestinationService) Get(ctx context.Context, id int64) (*models.Destination, error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()
	return uow.Destinations.GetByID(ctx, id)
}

func (s *DestinationService) Create(ctx context.Context, d *models.Destination) error {
	if err := validateDestination(d); err != nil {
		return err
	}
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	if err := uow.Destinations.Add(d); err != nil {
		return err
	}
	return uow.Complete(ctx)
}

// Update overwrites the whole record. The incoming rowVersion must match the
// stored one; a mismatch is resolved to not-found when the row was deleted,
// or reported as a conflict when it still exists.
func (s *DestinationService) Update(ctx context.Context, id int64, d *models.Destination) error {
	if d.ID != id {
		return domain.NotFoundError{Resource: "destination"}
	}
	if err := validateDestination(d); err != nil {
		return err
	}
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	if err := uow.Destinations.Update(d); err != nil {
		return err
	}
	return resolveWriteConflict(ctx, uow.Destinations, uow.Complete(ctx), id)
}

func (s *DestinationService) Delete(ctx context.Context, id int64) error {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return err
	}
	defer uow.Close()

	d, err := uow.Destinations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uow.Destinations.Remove(d); err != nil {
		return err
	}
	return uow.Complete(ctx)
}

func validateDestination(d *models.Destination) error {
	if strings.TrimSpace(d.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if strings.TrimSpace(d.Country) == "" {
		return domain.ValidationError{Field: "country", Msg: "country is required"}
	}
	if strings.TrimSpace(d.City) == "" {
		return domain.ValidationError{Field: "city", Msg: "city is required"}
	}
	return nil
}
