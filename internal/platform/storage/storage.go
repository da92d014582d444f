// Package storage owns the connection to the shared relational record
// store. Handlers never hold a raw connection: they borrow a bounded,
// request-scoped session and the pool reclaims it when the request context
// ends, on every exit path.
package storage

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"corebank/internal/platform/config"
	platformerrors "corebank/internal/platform/errors"
)

// Store wraps the gorm handle with the fleet's timeout discipline.
type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

// Open connects to the postgres record store described by cfg.
func Open(cfg config.StoreConfig) (*Store, error) {
	return OpenDialector(postgres.Open(cfg.DSN()), cfg.Timeout)
}

// OpenDialector opens a store over an explicit gorm dialector. Tests use
// this with an in-memory sqlite database.
func OpenDialector(dialector gorm.Dialector, timeout time.Duration) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, platformerrors.Wrap(
			platformerrors.KindDependency,
			"storage open",
			"open record store",
			err,
		)
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Store{db: db, timeout: timeout}, nil
}

// Migrate runs auto-migration for the given models.
func (s *Store) Migrate(models ...any) error {
	if err := s.db.AutoMigrate(models...); err != nil {
		return platformerrors.Wrap(
			platformerrors.KindDependency,
			"storage migrate",
			"migrate record store",
			err,
		)
	}
	return nil
}

// Session returns a gorm handle scoped to a single request with the store
// timeout applied. A connectivity failure is reported as a dependency
// error so the transport can answer 503 instead of a generic 500. Callers
// must invoke the returned cancel on every exit path.
func (s *Store) Session(ctx context.Context) (*gorm.DB, context.CancelFunc, error) {
	sessionCtx, cancel := context.WithTimeout(ctx, s.timeout)

	sqlDB, err := s.db.DB()
	if err != nil {
		cancel()
		return nil, nil, platformerrors.Wrap(
			platformerrors.KindDependency,
			"storage session",
			"record store unavailable",
			err,
		)
	}
	if err := sqlDB.PingContext(sessionCtx); err != nil {
		cancel()
		return nil, nil, platformerrors.Wrap(
			platformerrors.KindDependency,
			"storage session",
			"record store unreachable",
			err,
		)
	}

	return s.db.WithContext(sessionCtx), cancel, nil
}

// Probe performs a fresh connectivity check, bounded by the store timeout.
// Health handlers call this on every request; results are never cached.
func (s *Store) Probe(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		return platformerrors.Wrap(
			platformerrors.KindDependency,
			"storage probe",
			"record store unavailable",
			err,
		)
	}
	if err := sqlDB.PingContext(probeCtx); err != nil {
		return platformerrors.Wrap(
			platformerrors.KindDependency,
			"storage probe",
			"record store unreachable",
			err,
		)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
