package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"toursapp/internal/domain/models"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// OpenDB opens the configured database, applies pool settings and verifies
// connectivity. The caller owns the returned handle and must close it.
func OpenDB(cfg DatabaseConfig) (*bun.DB, error) {
	var (
		sqldb *sql.DB
		db    *bun.DB
		err   error
	)

	switch cfg.Type {
	case "mysql":
		sqldb, err = sql.Open("mysql", cfg.MySQLDSN())
		if err == nil {
			db = bun.NewDB(sqldb, mysqldialect.New())
		}
	case "postgres":
		sqldb, err = sql.Open("postgres", cfg.PostgresDSN())
		if err == nil {
			db = bun.NewDB(sqldb, pgdialect.New())
		}
	case "sqlite":
		sqldb, err = sql.Open(sqliteshim.ShimName, cfg.Path)
		if err == nil {
			db = bun.NewDB(sqldb, sqlitedialect.New())
		}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Type, err)
	}

	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.QueryLog {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// CreateSchema creates all application tables when they do not exist yet.
// Used for sqlite deployments and test databases; mysql/postgres schemas are
// normally managed externally.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*models.User)(nil),
		(*models.Destination)(nil),
		(*models.Tour)(nil),
		(*models.Booking)(nil),
	}
	for _, table := range tables {
		if _, err := db.NewCreateTable().Model(table).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", table, err)
		}
	}
	return nil
}
