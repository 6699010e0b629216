package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
)

// FulfillmentService повторная постановка задач выдачи для оплаченных заказов, по которым постановка после
// коммита не удалась.
type FulfillmentService struct {
	orderRepo OrderRepository
	queue     FulfillmentQueue
}

func NewFulfillmentService(u uow.UOW, queue FulfillmentQueue) (*FulfillmentService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &FulfillmentService{orderRepo: orderRepo, queue: queue}, nil
}

// PendingFulfillment возвращает до limit оплаченных заказов без поставленной задачи выдачи, оплаченных
// раньше чем grace назад. grace оставляет время обработчику колбэка поставить задачу самому.
func (s *FulfillmentService) PendingFulfillment(
	ctx context.Context,
	limit uint,
	grace time.Duration,
) ([]domain.Order, error) {
	orders, err := s.orderRepo.GetPendingFulfillment(ctx, repoargs.PendingFulfillmentQuery{
		Limit:     limit,
		PaidUntil: time.Now().Add(-grace),
	})
	if err != nil {
		return nil, fmt.Errorf("pending fulfillment: %w", err)
	}
	return orders, nil
}

func (s *FulfillmentService) Enqueue(ctx context.Context, orderID string) error {
	return s.queue.EnqueueFulfillment(ctx, orderID) //nolint:wrapcheck
}

func (s *FulfillmentService) MarkEnqueued(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.orderRepo.MarkFulfillmentEnqueued(ctx, ids); err != nil {
		return fmt.Errorf("mark fulfillment enqueued: %w", err)
	}
	return nil
}
