package services

import (
	"context"

	"toursapp/internal/domain"
	"toursapp/internal/repositories"
)

// resolveWriteConflict implements the mandatory two-way branch after a
// failed optimistic-concurrency commit: if the row no longer exists the
// caller gets not-found, otherwise the original conflict stands.
func resolveWriteConflict[T any, PT repositories.Record[T]](ctx context.Context, repo *repositories.Repository[T, PT], err error, id int64) error {
	if err == nil || !domain.IsConflict(err) {
		return err
	}
	if _, checkErr := repo.GetByID(ctx, id); domain.IsNotFound(checkErr) {
		return checkErr
	}
	return err
}
