package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"toursapp/internal/domain"

	"github.com/uptrace/bun"
)

// Record is the capability a model pointer must provide to be managed by a
// Repository: a single integer primary key and an optimistic concurrency
// token bumped on every successful update.
type Record[T any] interface {
	*T
	PrimaryKey() int64
	Version() int64
	SetVersion(int64)
}

// Repository gives uniform CRUD and query access to one entity type. Reads
// hit the database immediately; Add, Update and Remove only stage changes on
// the owning unit of work's journal and become durable when Complete runs.
type Repository[T any, PT Record[T]] struct {
	db       *bun.DB
	journal  *journal
	resource string
}

func newRepository[T any, PT Record[T]](db *bun.DB, j *journal) (*Repository[T, PT], error) {
	table := db.Table(reflect.TypeOf((*T)(nil)).Elem())
	if n := len(table.PKs); n != 1 {
		return nil, fmt.Errorf("model %s: want exactly one primary key column, have %d", table.TypeName, n)
	}
	return &Repository[T, PT]{
		db:       db,
		journal:  j,
		resource: strings.TrimSuffix(table.Name, "s"),
	}, nil
}

// GetAll returns every entity matching the optional filter, eager-loading
// the given relation paths ("Tour", "Tour.Destination", or comma-joined).
func (r *Repository[T, PT]) GetAll(ctx context.Context, filter *Filter, includes ...string) ([]*T, error) {
	var items []*T
	q := r.db.NewSelect().Model(&items)
	if filter != nil {
		q = q.Where(filter.Clause, filter.Args...)
	}
	for _, rel := range splitIncludes(includes) {
		q = q.Relation(rel)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns the entity with the given primary key, or a domain
// not-found error.
func (r *Repository[T, PT]) GetByID(ctx context.Context, id int64, includes ...string) (*T, error) {
	entity := new(T)
	q := r.db.NewSelect().Model(entity).Where("?TableAlias.id = ?", id)
	for _, rel := range splitIncludes(includes) {
		q = q.Relation(rel)
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: r.resource, Err: err}
		}
		return nil, err
	}
	return entity, nil
}

// GetPaginated returns the id-ordered slice [(p-1)*s, p*s) of the unfiltered
// collection plus the total row count. Out-of-range params are clamped.
func (r *Repository[T, PT]) GetPaginated(ctx context.Context, pageNumber, pageSize int, includes ...string) (*Page[T], error) {
	pageNumber, pageSize = clampPaging(pageNumber, pageSize)
	page := &Page[T]{Items: make([]*T, 0), PageNumber: pageNumber, PageSize: pageSize}

	total, err := r.db.NewSelect().Model((*T)(nil)).Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return page, nil
	}
	page.TotalCount = total

	var items []*T
	q := r.db.NewSelect().Model(&items)
	for _, rel := range splitIncludes(includes) {
		q = q.Relation(rel)
	}
	err = q.OrderExpr("?TableAlias.id ASC").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	page.Items = items
	return page, nil
}

// Add stages the entity for insertion.
func (r *Repository[T, PT]) Add(entity *T) error {
	return r.journal.stage(func(ctx context.Context, tx bun.IDB) error {
		_, err := tx.NewInsert().Model(entity).Exec(ctx)
		return err
	})
}

// Update stages a full-record overwrite guarded by the row version the
// entity carried when it was loaded. If the row has been modified or deleted
// in the meantime, the commit fails with a conflict and the whole unit of
// work rolls back.
func (r *Repository[T, PT]) Update(entity *T) error {
	rec := PT(entity)
	loaded := rec.Version()
	return r.journal.stage(func(ctx context.Context, tx bun.IDB) error {
		rec.SetVersion(loaded + 1)
		res, err := tx.NewUpdate().
			Model(entity).
			WherePK().
			Where("row_version = ?", loaded).
			Exec(ctx)
		if err != nil {
			rec.SetVersion(loaded)
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			rec.SetVersion(loaded)
			return err
		}
		if affected == 0 {
			rec.SetVersion(loaded)
			return domain.ConflictError{Resource: r.resource, Msg: "row changed or deleted since it was loaded"}
		}
		return nil
	})
}

// Remove stages a physical delete.
func (r *Repository[T, PT]) Remove(entity *T) error {
	return r.journal.stage(func(ctx context.Context, tx bun.IDB) error {
		_, err := tx.NewDelete().Model(entity).WherePK().Exec(ctx)
		return err
	})
}

func splitIncludes(includes []string) []string {
	var rels []string
	for _, inc := range includes {
		for _, rel := range strings.Split(inc, ",") {
			rel = strings.TrimSpace(rel)
			if rel != "" {
				rels = append(rels, rel)
			}
		}
	}
	return rels
}
