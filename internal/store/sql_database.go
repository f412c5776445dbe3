package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-campus-blog/internal/config"
	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/migrations"
)

// DB bundles the connection pool with the dialect-specific pieces the
// repositories need: a squirrel builder with the right placeholder format
// and an error classifier for the driver's error codes.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// retryDelays are the pauses before each attempt of withRetry.
var retryDelays = []time.Duration{0, 50 * time.Millisecond, 250 * time.Millisecond}

// withRetry runs op again while it fails with an error the classifier marks
// as [Retryable]. Non-retryable errors are returned immediately.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for _, delay := range retryDelays {
		if delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err = op()
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).Dur("next_delay", delay).Msg("retrying database operation")
	}

	return err
}

// exec runs a DML statement and returns the number of affected rows.
// Driver errors are wrapped with [ErrExecutingStatement] and can still be
// inspected by the classifier.
func (db *DB) exec(ctx context.Context, stmt sq.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = db.withRetry(ctx, func() error {
		res, execErr := db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// queryRow runs a single-row query and hands the row to scan. A missing row
// surfaces as [sql.ErrNoRows].
func (db *DB) queryRow(ctx context.Context, stmt sq.Sqlizer, scan func(rowScanner) error) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return db.withRetry(ctx, func() error {
		return scan(db.QueryRowContext(ctx, query, args...))
	})
}
