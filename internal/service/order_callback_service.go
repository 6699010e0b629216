package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/gateway"
	"github.com/fsdevblog/ppob-ledger/internal/metrics"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

type OrderCallbackService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	parser    CallbackParser
	reverter  *Reverter
	queue     FulfillmentQueue
	l         *logrus.Entry
}

func NewOrderCallbackService(
	u uow.UOW,
	parser CallbackParser,
	reverter *Reverter,
	queue FulfillmentQueue,
	l *logrus.Logger,
) (*OrderCallbackService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &OrderCallbackService{
		uow:       u,
		orderRepo: orderRepo,
		parser:    parser,
		reverter:  reverter,
		queue:     queue,
		l:         l.WithField("component", "order_callback"),
	}, nil
}

// Handle обрабатывает колбэк шлюза по оплате заказа.
//
// Алгоритм работы:
//  1. Проверяет подпись. При ошибке транзакция не открывается.
//  2. В транзакции блокирует заказ в статусе оплаты PENDING. Если его нет, колбэк подтверждается без изменений.
//  3. Сверяет шлюз из payment_snapshot и сумму.
//  4. Успех: payment_status = SUCCESS, order_status = PENDING. Иначе: payment_status = FAILED и возврат
//     остатка товара и использований офферов.
//  5. После коммита ставит задачу выдачи. Ошибка постановки не откатывает оплату: заказ останется без
//     отметки fulfillment_enqueued_at и будет поставлен диспетчером повторно.
func (s *OrderCallbackService) Handle(
	ctx context.Context,
	provider string,
	payload gateway.Payload,
) (*CallbackResult, error) {
	res, paid, err := s.handle(ctx, provider, payload)
	if err != nil {
		metrics.CallbacksTotal.
			WithLabelValues(callbackKindOrder, providerLabel(provider, err), callbackMetricResult(err)).Inc()
		return nil, err
	}
	metrics.CallbacksTotal.
		WithLabelValues(callbackKindOrder, string(res.Provider), dispositionMetricResult(res.Disposition)).Inc()

	log := s.l.WithFields(logrus.Fields{
		"order_id":    res.Reference,
		"provider":    res.Provider,
		"disposition": res.Disposition,
		"status":      res.Status,
	})
	log.Info("order callback processed")

	if paid != nil {
		s.enqueueFulfillment(ctx, paid, log)
	}
	return res, nil
}

func (s *OrderCallbackService) enqueueFulfillment(ctx context.Context, order *domain.Order, log *logrus.Entry) {
	if err := s.queue.EnqueueFulfillment(ctx, order.OrderID); err != nil {
		metrics.SideEffectFailuresTotal.WithLabelValues("enqueue_fulfillment").Inc()
		log.WithError(err).Error("enqueue fulfillment failed, order is left for redispatch")
		return
	}
	if err := s.orderRepo.MarkFulfillmentEnqueued(ctx, []int64{order.ID}); err != nil {
		// задача уже в очереди, повторная постановка отсечется по TaskID.
		metrics.SideEffectFailuresTotal.WithLabelValues("mark_fulfillment_enqueued").Inc()
		log.WithError(err).Error("marking fulfillment enqueued")
	}
}

// handle возвращает оплаченный заказ вторым значением, если по нему нужно поставить задачу выдачи.
func (s *OrderCallbackService) handle(
	ctx context.Context,
	provider string,
	payload gateway.Payload,
) (*CallbackResult, *domain.Order, error) {
	cb, parseErr := s.parser.Parse(provider, payload)
	if parseErr != nil {
		s.l.WithError(parseErr).WithField("provider", provider).Warn("order callback rejected")
		return nil, nil, fmt.Errorf("order callback: %w", parseErr)
	}

	res := &CallbackResult{Reference: cb.Reference, Provider: cb.Provider}

	newStatus, final := domain.PaymentStatusFromOutcome(cb.Outcome)
	if !final {
		res.Disposition = DispositionPending
		return res, nil, nil
	}

	var order *domain.Order
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		order, err = s.transit(c, tx, cb, newStatus)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyProcessed) {
			res.Disposition = DispositionAlreadyProcessed
			return res, nil, nil
		}
		return nil, nil, fmt.Errorf("order callback `%s`: %w", cb.Reference, txErr)
	}

	res.Status = string(newStatus)
	res.Disposition = DispositionApplied
	if newStatus == domain.PaymentStatusSuccess {
		return res, order, nil
	}
	return res, nil, nil
}

// transit переход оплаты PENDING -> newStatus внутри транзакции.
func (s *OrderCallbackService) transit(
	ctx context.Context,
	tx uow.TX,
	cb *domain.GatewayCallback,
	newStatus domain.PaymentStatusType,
) (*domain.Order, error) {
	orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	order, findErr := orderRepo.FindForUpdate(ctx, cb.Reference, domain.PaymentStatusPending)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, findErr //nolint:wrapcheck
	}

	if order.PaymentSnapshot.ProviderName != cb.Provider {
		return nil, domain.NewProviderMismatchError(order.OrderID, order.PaymentSnapshot.ProviderName, cb.Provider)
	}
	if err := checkAmount(order.OrderID, order.PaymentSnapshot.Amount, cb.Amount); err != nil {
		return nil, err
	}

	update := repoargs.UpdateOrderPayment{
		ID:   order.ID,
		From: domain.PaymentStatusPending,
		To:   newStatus,
	}
	if newStatus == domain.PaymentStatusSuccess {
		orderStatus := domain.OrderStatusPending
		update.OrderStatus = &orderStatus
	}

	updated, updErr := orderRepo.UpdatePayment(ctx, update)
	if updErr != nil {
		if errors.Is(updErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, updErr //nolint:wrapcheck
	}
	updated.OfferOnOrders = order.OfferOnOrders

	if newStatus == domain.PaymentStatusFailed {
		if err := s.reverter.Revert(ctx, tx, updated); err != nil {
			return nil, err
		}
	}
	return updated, nil
}
