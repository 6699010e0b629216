package dispatcher

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
)

type Servicer interface {
	PendingFulfillment(ctx context.Context, limit uint, grace time.Duration) ([]domain.Order, error)
	Enqueue(ctx context.Context, orderID string) error
	MarkEnqueued(ctx context.Context, ids []int64) error
}
