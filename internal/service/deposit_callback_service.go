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

type DepositCallbackService struct {
	uow       uow.UOW
	parser    CallbackParser
	ledger    *Ledger
	publisher EventPublisher
	l         *logrus.Entry
}

func NewDepositCallbackService(
	u uow.UOW,
	parser CallbackParser,
	ledger *Ledger,
	publisher EventPublisher,
	l *logrus.Logger,
) *DepositCallbackService {
	return &DepositCallbackService{
		uow:       u,
		parser:    parser,
		ledger:    ledger,
		publisher: publisher,
		l:         l.WithField("component", "deposit_callback"),
	}
}

// Handle обрабатывает колбэк шлюза по депозиту.
//
// Алгоритм работы:
//  1. Проверяет подпись. При ошибке транзакция не открывается.
//  2. Промежуточный статус шлюза подтверждается без изменений (DispositionPending).
//  3. В транзакции блокирует депозит в статусе PENDING. Если его нет, колбэк уже обработан или депозит
//     неизвестен: подтверждается без изменений (DispositionAlreadyProcessed).
//  4. Сверяет шлюз и сумму, меняет статус, для COMPLETED начисляет amount_received на баланс.
//  5. После коммита публикует событие журнала. Ошибка публикации только логируется.
//
// Ошибки: domain.ErrUnknownProvider, domain.ErrInvalidPayload, domain.ErrInvalidSignature,
// domain.ErrProviderMismatch, domain.ErrAmountMismatch, прочие - ошибки транзакции.
func (s *DepositCallbackService) Handle(
	ctx context.Context,
	provider string,
	payload gateway.Payload,
) (*CallbackResult, error) {
	res, mutation, err := s.handle(ctx, provider, payload)
	if err != nil {
		metrics.CallbacksTotal.
			WithLabelValues(callbackKindDeposit, providerLabel(provider, err), callbackMetricResult(err)).Inc()
		return nil, err
	}
	metrics.CallbacksTotal.
		WithLabelValues(callbackKindDeposit, string(res.Provider), dispositionMetricResult(res.Disposition)).Inc()

	log := s.l.WithFields(logrus.Fields{
		"deposit_id":  res.Reference,
		"provider":    res.Provider,
		"disposition": res.Disposition,
	})
	if mutation == nil {
		log.WithField("status", res.Status).Info("deposit callback processed")
		return res, nil
	}

	metrics.LedgerMutationsTotal.WithLabelValues(string(mutation.Type), string(mutation.RefType)).Inc()
	log.WithFields(logrus.Fields{
		"status":        res.Status,
		"user_id":       mutation.UserID,
		"amount":        mutation.Amount,
		"balance_after": mutation.BalanceAfter,
	}).Info("deposit callback processed, balance credited")

	if pubErr := s.publisher.PublishBalanceMutation(ctx, *mutation); pubErr != nil {
		metrics.SideEffectFailuresTotal.WithLabelValues("publish_balance_mutation").Inc()
		log.WithError(pubErr).Error("publishing balance mutation event")
	}
	return res, nil
}

func (s *DepositCallbackService) handle(
	ctx context.Context,
	provider string,
	payload gateway.Payload,
) (*CallbackResult, *domain.BalanceMutation, error) {
	cb, parseErr := s.parser.Parse(provider, payload)
	if parseErr != nil {
		s.l.WithError(parseErr).WithField("provider", provider).Warn("deposit callback rejected")
		return nil, nil, fmt.Errorf("deposit callback: %w", parseErr)
	}

	res := &CallbackResult{Reference: cb.Reference, Provider: cb.Provider}

	newStatus, final := domain.DepositStatusFromOutcome(cb.Outcome)
	if !final {
		res.Disposition = DispositionPending
		return res, nil, nil
	}

	var mutation *domain.BalanceMutation
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		mutation, err = s.transit(c, tx, cb, newStatus)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyProcessed) {
			res.Disposition = DispositionAlreadyProcessed
			return res, nil, nil
		}
		return nil, nil, fmt.Errorf("deposit callback `%s`: %w", cb.Reference, txErr)
	}

	res.Status = string(newStatus)
	res.Disposition = DispositionApplied
	return res, mutation, nil
}

// transit переход PENDING -> newStatus внутри транзакции.
func (s *DepositCallbackService) transit(
	ctx context.Context,
	tx uow.TX,
	cb *domain.GatewayCallback,
	newStatus domain.DepositStatusType,
) (*domain.BalanceMutation, error) {
	depositRepo, repoErr := uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	deposit, findErr := depositRepo.FindForUpdate(ctx, cb.Reference, domain.DepositStatusPending)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, findErr //nolint:wrapcheck
	}

	if deposit.ProviderName != cb.Provider {
		return nil, domain.NewProviderMismatchError(deposit.DepositID, deposit.ProviderName, cb.Provider)
	}
	if err := checkAmount(deposit.DepositID, deposit.AmountPay, cb.Amount); err != nil {
		return nil, err
	}

	updated, updErr := depositRepo.UpdateStatus(ctx, repoargs.UpdateDepositStatus{
		ID:   deposit.ID,
		From: domain.DepositStatusPending,
		To:   newStatus,
	})
	if updErr != nil {
		if errors.Is(updErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrAlreadyProcessed
		}
		return nil, updErr //nolint:wrapcheck
	}

	if updated.Status != domain.DepositStatusCompleted {
		return nil, nil
	}
	if updated.AmountReceived <= 0 {
		s.l.WithField("deposit_id", updated.DepositID).Warn("completed deposit has no amount received, ledger skipped")
		return nil, nil
	}

	return s.ledger.Apply(ctx, tx, domain.MutationArgs{
		UserID:  updated.UserID,
		Amount:  updated.AmountReceived,
		Type:    domain.MutationCredit,
		RefID:   updated.DepositID,
		RefType: domain.RefTypeDeposit,
		Name:    "Deposit " + updated.DepositID,
		Notes:   fmt.Sprintf("Deposit paid via %s (%s)", cb.Provider, cb.ProviderRef),
	})
}
