package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"toursapp/internal/domain/models"
	"toursapp/internal/repositories"

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

func mustAdd[T any, PT repositories.Record[T]](t *testing.T, db *bun.DB, pick func(*repositories.UnitOfWork) *repositories.Repository[T, PT], entity *T) *T {
	t.Helper()
	uow, err := repositories.NewUnitOfWork(db)
	if err != nil {
		t.Fatalf("NewUnitOfWork returned error: %v", err)
	}
	defer uow.Close()
	if err := pick(uow).Add(entity); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := uow.Complete(context.Background()); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	return entity
}

func seedDestination(t *testing.T, db *bun.DB) *models.Destination {
	t.Helper()
	return mustAdd(t, db, func(u *repositories.UnitOfWork) *repositories.Repository[models.Destination, *models.Destination] {
		return u.Destinations
	}, &models.Destination{Name: "Rome", Country: "Italy", City: "Rome", IsActive: true})
}

func seedTour(t *testing.T, db *bun.DB, destinationID int64, price float64) *models.Tour {
	t.Helper()
	return mustAdd(t, db, func(u *repositories.UnitOfWork) *repositories.Repository[models.Tour, *models.Tour] {
		return u.Tours
	}, &models.Tour{
		Name:            "City highlights",
		StartDate:       time.Now().AddDate(0, 1, 0),
		EndDate:         time.Now().AddDate(0, 1, 5),
		Price:           price,
		MaxParticipants: 20,
		DestinationID:   destinationID,
		IsActive:        true,
	})
}

func seedUser(t *testing.T, db *bun.DB, email string) *models.User {
	t.Helper()
	return mustAdd(t, db, func(u *repositories.UnitOfWork) *repositories.Repository[models.User, *models.User] {
		return u.Users
	}, &models.User{Name: "Test User", Email: email, PasswordHash: "irrelevant", Role: models.RoleCustomer, Status: "active", IsActive: true})
}

// fakeEmailSender records outgoing mail instead of dialing SMTP.
type fakeEmailSender struct {
	sent []fakeEmail
	fail error
}

type fakeEmail struct {
	To             string
	Subject        string
	AttachmentName string
	Attachment     []byte
}

func (f *fakeEmailSender) Send(to, subject, htmlBody string, attachment []byte, attachmentName string) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, fakeEmail{To: to, Subject: subject, AttachmentName: attachmentName, Attachment: attachment})
	return nil
}
