package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"toursapp/internal/domain"
	"toursapp/internal/domain/models"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	sqldb, err := sql.Open(sqliteshim.ShimName, "file:"+path)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	for _, model := range []any{
		(*models.User)(nil),
		(*models.Destination)(nil),
		(*models.Tour)(nil),
		(*models.Booking)(nil),
	} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("failed to create table for %T: %v", model, err)
		}
	}
	return db
}

func mustUoW(t *testing.T, db *bun.DB) *UnitOfWork {
	t.Helper()
	uow, err := NewUnitOfWork(db)
	if err != nil {
		t.Fatalf("NewUnitOfWork returned error: %v", err)
	}
	return uow
}

func insertDestination(t *testing.T, db *bun.DB, name string) *models.Destination {
	t.Helper()
	uow := mustUoW(t, db)
	defer uow.Close()
	d := &models.Destination{Name: name, Country: "Italy", City: "Rome", IsActive: true}
	if err := uow.Destinations.Add(d); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := uow.Complete(context.Background()); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	return d
}

func TestAddAndGetByID(t *testing.T) {
	db := newTestDB(t)
	d := insertDestination(t, db, "Colosseum")
	if d.ID == 0 {
		t.Fatalf("expected autoincremented id after Complete")
	}

	uow := mustUoW(t, db)
	defer uow.Close()
	got, err := uow.Destinations.GetByID(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Name != "Colosseum" || got.City != "Rome" {
		t.Fatalf("unexpected destination: %+v", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	uow := mustUoW(t, db)
	defer uow.Close()

	_, err := uow.Destinations.GetByID(context.Background(), 9999)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGetAllWithFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	uow := mustUoW(t, db)
	for i := 0; i < 3; i++ {
		d := &models.Destination{Name: fmt.Sprintf("dest-%d", i), Country: "X", City: "Y", IsActive: i%2 == 0}
		if err := uow.Destinations.Add(d); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}
	if err := uow.Complete(ctx); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	uow.Close()

	uow = mustUoW(t, db)
	defer uow.Close()
	active, err := uow.Destinations.GetAll(ctx, Where("d.is_active = ?", true))
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active destinations, got %d", len(active))
	}
}

func TestGetPaginated(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	uow := mustUoW(t, db)
	for i := 0; i < 25; i++ {
		d := &models.Destination{Name: fmt.Sprintf("dest-%02d", i), Country: "X", City: "Y", IsActive: true}
		if err := uow.Destinations.Add(d); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}
	if err := uow.Complete(ctx); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	uow.Close()

	uow = mustUoW(t, db)
	defer uow.Close()

	page, err := uow.Destinations.GetPaginated(ctx, 3, 10)
	if err != nil {
		t.Fatalf("GetPaginated returned error: %v", err)
	}
	if page.TotalCount != 25 {
		t.Fatalf("TotalCount = %d, want 25", page.TotalCount)
	}
	if len(page.Items) != 5 {
		t.Fatalf("page 3 of size 10 should hold 5 items, got %d", len(page.Items))
	}
	if page.TotalPages() != 3 {
		t.Fatalf("TotalPages() = %d, want 3", page.TotalPages())
	}
	if page.Items[0].ID > page.Items[len(page.Items)-1].ID {
		t.Fatalf("items are not ordered by id ascending")
	}

	// Out-of-range params fall back to page 1, size 10.
	clamped, err := uow.Destinations.GetPaginated(ctx, 0, -5)
	if err != nil {
		t.Fatalf("GetPaginated returned error: %v", err)
	}
	if clamped.PageNumber != 1 || clamped.PageSize != 10 {
		t.Fatalf("clamped paging = (%d, %d), want (1, 10)", clamped.PageNumber, clamped.PageSize)
	}
	if len(clamped.Items) != 10 {
		t.Fatalf("clamped page should hold 10 items, got %d", len(clamped.Items))
	}
}

func TestGetPaginatedEmpty(t *testing.T) {
	db := newTestDB(t)
	uow := mustUoW(t, db)
	defer uow.Close()

	page, err := uow.Destinations.GetPaginated(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("GetPaginated returned error: %v", err)
	}
	if page.TotalCount != 0 || len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %+v", page)
	}
	if page.TotalPages() != 0 {
		t.Fatalf("TotalPages() = %d, want 0", page.TotalPages())
	}
}

func TestUpdateBumpsRowVersion(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := insertDestination(t, db, "Louvre")

	uow := mustUoW(t, db)
	defer uow.Close()
	loaded, err := uow.Destinations.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	loaded.City = "Paris"
	if err := uow.Destinations.Update(loaded); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := uow.Complete(ctx); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if loaded.RowVersion != 1 {
		t.Fatalf("RowVersion = %d after update, want 1", loaded.RowVersion)
	}

	check := mustUoW(t, db)
	defer check.Close()
	got, err := check.Destinations.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.City != "Paris" || got.RowVersion != 1 {
		t.Fatalf("persisted row = %+v, want city Paris and row_version 1", got)
	}
}

func TestStaleUpdateConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := insertDestination(t, db, "Alhambra")

	first := mustUoW(t, db)
	defer first.Close()
	second := mustUoW(t, db)
	defer second.Close()

	a, err := first.Destinations.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	b, err := second.Destinations.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}

	a.City = "Granada"
	if err := first.Destinations.Update(a); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := first.Complete(ctx); err != nil {
		t.Fatalf("first Complete returned error: %v", err)
	}

	b.City = "Sevilla"
	if err := second.Destinations.Update(b); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	err = second.Complete(ctx)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict from stale update, got %v", err)
	}
	if b.RowVersion != 0 {
		t.Fatalf("entity version should be restored after failed commit, got %d", b.RowVersion)
	}

	check := mustUoW(t, db)
	defer check.Close()
	got, err := check.Destinations.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.City != "Granada" {
		t.Fatalf("stale update leaked through, city = %s", got.City)
	}
}

func TestUpdateOfDeletedRowConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := insertDestination(t, db, "Petra")

	editor := mustUoW(t, db)
	defer editor.Close()
	loaded, err := editor.Destinations.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}

	deleter := mustUoW(t, db)
	defer deleter.Close()
	victim, err := deleter.Destinations.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if err := deleter.Destinations.Remove(victim); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := deleter.Complete(ctx); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	loaded.City = "Wadi Musa"
	if err := editor.Destinations.Update(loaded); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	err = editor.Complete(ctx)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict when updating a deleted row, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := insertDestination(t, db, "Machu Picchu")

	uow := mustUoW(t, db)
	defer uow.Close()
	loaded, err := uow.Destinations.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if err := uow.Destinations.Remove(loaded); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := uow.Complete(ctx); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	_, err = uow.Destinations.GetByID(ctx, d.ID)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestGetByIDLoadsRelation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := insertDestination(t, db, "Kyoto")

	uow := mustUoW(t, db)
	tour := &models.Tour{
		Name:            "Temple walk",
		DestinationID:   d.ID,
		StartDate:       time.Now().AddDate(0, 1, 0),
		EndDate:         time.Now().AddDate(0, 1, 7),
		Price:           250,
		MaxParticipants: 10,
		IsActive:        true,
	}
	if err := uow.Tours.Add(tour); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := uow.Complete(ctx); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	uow.Close()

	check := mustUoW(t, db)
	defer check.Close()
	got, err := check.Tours.GetByID(ctx, tour.ID, "Destination")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Destination == nil || got.Destination.Name != "Kyoto" {
		t.Fatalf("relation not loaded: %+v", got.Destination)
	}
}
