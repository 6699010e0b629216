package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// драйвер применения миграций для postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// источник миграций из файлов *.sql.
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	defaultConnectAttempts = 30
	defaultRetryInterval   = 3 * time.Second
)

type ConnectArgs struct {
	DSN           string
	MigrationsDir string
	// MaxAttempts число попыток подключения, 0 - defaultConnectAttempts.
	MaxAttempts   uint
	RetryInterval time.Duration
}

// Connect подключается к postgres, повторяя попытки пока база не станет доступна, и применяет миграции.
// Ожидание между попытками прерывается отменой ctx.
func Connect(ctx context.Context, args ConnectArgs, l *logrus.Logger) (*pgxpool.Pool, error) {
	maxAttempts := args.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = defaultConnectAttempts
	}
	retryInterval := args.RetryInterval
	if retryInterval == 0 {
		retryInterval = defaultRetryInterval
	}

	var (
		conn    *pgxpool.Pool
		connErr error
	)
	for attempt := uint(1); ; attempt++ {
		conn, connErr = newPostgresConnection(ctx, args.DSN)
		if connErr == nil {
			break
		}
		if attempt >= maxAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %w", maxAttempts, connErr)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempt, maxAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", retryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("init postgres connection: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	if err := postgresMigrate(args.MigrationsDir, args.DSN); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %w", confErr)
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %w", poolErr)
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", pingErr)
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
