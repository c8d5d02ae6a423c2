package services

import (
	"context"

	"toursapp/internal/repositories"

	"github.com/uptrace/bun"
)

// DashboardSummary aggregates bookings for the admin dashboard.
type DashboardSummary struct {
	BookingStatusCounts map[string]int     `json:"bookingStatusCounts"`
	RevenueByMonth      map[string]float64 `json:"revenueByMonth"`
}

type DashboardService struct {
	db *bun.DB
}

func NewDashboardService(db *bun.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Summary groups all bookings by status and by booking month (revenue sum).
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	uow, err := repositories.NewUnitOfWork(s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Close()

	bookings, err := uow.Bookings.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		BookingStatusCounts: make(map[string]int),
		RevenueByMonth:      make(map[string]float64),
	}
	for _, b := range bookings {
		summary.BookingStatusCounts[string(b.Status)]++
		month := b.BookingDate.Format("January 2006")
		summary.RevenueByMonth[month] += b.TotalPrice
	}
	return summary, nil
}
