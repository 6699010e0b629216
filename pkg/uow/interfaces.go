package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RepositoryName ключ, под которым фабрика репозитория регистрируется в UnitOfWork.
type RepositoryName string

// Repository любой репозиторий. Конкретный тип достается через GetAs и GetRepositoryAs.
type Repository any

// RepositoryFactory создает репозиторий поверх пула или открытой транзакции.
type RepositoryFactory func(DBTX) Repository

// DBTX то, что умеют и *pgxpool.Pool, и pgx.Tx. Батчи нужны репозиториям с пачечными обновлениями.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// TX открытая транзакция. Репозитории, полученные через Get, пишут в нее.
type TX interface {
	Get(name RepositoryName) (Repository, error)
}

type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	// Do откатывает транзакцию, если fn вернула ошибку.
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	GetRepository(name RepositoryName) (Repository, error)
}
