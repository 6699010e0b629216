package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/metrics"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AdminDepositService struct {
	uow       uow.UOW
	ledger    *Ledger
	publisher EventPublisher
	l         *logrus.Entry
}

func NewAdminDepositService(
	u uow.UOW,
	ledger *Ledger,
	publisher EventPublisher,
	l *logrus.Logger,
) *AdminDepositService {
	return &AdminDepositService{
		uow:       u,
		ledger:    ledger,
		publisher: publisher,
		l:         l.WithField("component", "admin_deposit"),
	}
}

type ChangeDepositStatusArgs struct {
	// DepositID внутренний id депозита (deposits.id).
	DepositID     int64
	Status        domain.DepositStatusType
	AdjustBalance bool
	AdminID       int64
	AdminUsername string
}

type ChangeDepositStatusResult struct {
	Deposit        *domain.Deposit
	PreviousStatus domain.DepositStatusType
	// Mutation запись журнала корректировки, nil если баланс не менялся.
	Mutation *domain.BalanceMutation
}

// Message текст для оператора.
func (r *ChangeDepositStatusResult) Message() string {
	msg := fmt.Sprintf("Deposit %s status changed from %s to %s",
		r.Deposit.DepositID, r.PreviousStatus, r.Deposit.Status)
	if r.Mutation != nil {
		msg += fmt.Sprintf(", balance adjusted by %d", r.Mutation.Amount)
	}
	return msg
}

// ChangeStatus ручная смена статуса депозита оператором.
//
// В отличие от колбэков, повтор того же статуса - ошибка domain.ErrStatusUnchanged (даже при
// AdjustBalance): действие оператора не ретраится, молча проглатывать его нельзя.
//
// Корректировка баланса при AdjustBalance:
//   - статус не COMPLETED -> COMPLETED: начисление amount_received;
//   - COMPLETED -> любой другой: списание amount_received, баланс может уйти в минус.
//
// Остальные переходы меняют только статус. Вернуть депозит в PENDING нельзя. Ошибки: domain.ErrInvalidStatus, domain.ErrRecordNotFound,
// domain.ErrStatusUnchanged.
func (s *AdminDepositService) ChangeStatus(
	ctx context.Context,
	args ChangeDepositStatusArgs,
) (*ChangeDepositStatusResult, error) {
	if !args.Status.IsAdminTarget() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, args.Status)
	}

	var res *ChangeDepositStatusResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		res, err = s.changeStatus(c, tx, args)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("changing status of deposit %d: %w", args.DepositID, txErr)
	}

	log := s.l.WithFields(logrus.Fields{
		"deposit_id":      res.Deposit.DepositID,
		"admin_id":        args.AdminID,
		"previous_status": res.PreviousStatus,
		"status":          res.Deposit.Status,
	})
	if res.Mutation == nil {
		log.Info("deposit status changed by admin")
		return res, nil
	}

	metrics.LedgerMutationsTotal.WithLabelValues(string(res.Mutation.Type), string(res.Mutation.RefType)).Inc()
	log = log.WithFields(logrus.Fields{
		"user_id":       res.Mutation.UserID,
		"amount":        res.Mutation.Amount,
		"balance_after": res.Mutation.BalanceAfter,
	})
	if res.Mutation.BalanceAfter < 0 {
		log.Warn("deposit reversal made user balance negative")
	} else {
		log.Info("deposit status changed by admin, balance adjusted")
	}

	if pubErr := s.publisher.PublishBalanceMutation(ctx, *res.Mutation); pubErr != nil {
		metrics.SideEffectFailuresTotal.WithLabelValues("publish_balance_mutation").Inc()
		log.WithError(pubErr).Error("publishing balance mutation event")
	}
	return res, nil
}

func (s *AdminDepositService) changeStatus(
	ctx context.Context,
	tx uow.TX,
	args ChangeDepositStatusArgs,
) (*ChangeDepositStatusResult, error) {
	depositRepo, repoErr := uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	deposit, findErr := depositRepo.FindByIDForUpdate(ctx, args.DepositID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	if deposit.Status == args.Status {
		return nil, fmt.Errorf("%w: deposit %s is %s", domain.ErrStatusUnchanged, deposit.DepositID, deposit.Status)
	}

	updated, updErr := depositRepo.UpdateStatus(ctx, repoargs.UpdateDepositStatus{
		ID:   deposit.ID,
		From: deposit.Status,
		To:   args.Status,
	})
	if updErr != nil {
		if errors.Is(updErr, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("deposit %s changed concurrently: %w", deposit.DepositID, updErr)
		}
		return nil, updErr //nolint:wrapcheck
	}

	res := &ChangeDepositStatusResult{Deposit: updated, PreviousStatus: deposit.Status}

	mutationArgs, adjust := adjustmentFor(deposit, args)
	if !adjust {
		return res, nil
	}
	mutation, applyErr := s.ledger.Apply(ctx, tx, mutationArgs)
	if applyErr != nil {
		return nil, applyErr
	}
	res.Mutation = mutation
	return res, nil
}

// adjustmentFor возвращает запись корректировки для перехода, если она нужна.
func adjustmentFor(deposit *domain.Deposit, args ChangeDepositStatusArgs) (domain.MutationArgs, bool) {
	if !args.AdjustBalance || deposit.AmountReceived <= 0 {
		return domain.MutationArgs{}, false
	}

	var (
		mutationType domain.MutationType
		amount       int64
		action       string
	)
	switch {
	case deposit.Status != domain.DepositStatusCompleted && args.Status == domain.DepositStatusCompleted:
		mutationType, amount, action = domain.MutationCredit, deposit.AmountReceived, "Deposit approved"
	case deposit.Status == domain.DepositStatusCompleted && args.Status != domain.DepositStatusCompleted:
		mutationType, amount, action = domain.MutationDebit, -deposit.AmountReceived, "Deposit reversed"
	default:
		return domain.MutationArgs{}, false
	}

	return domain.MutationArgs{
		UserID:  deposit.UserID,
		Amount:  amount,
		Type:    mutationType,
		RefID:   deposit.DepositID,
		RefType: domain.RefTypeDepositAdjustment,
		Name:    "Deposit adjustment " + deposit.DepositID,
		Notes:   fmt.Sprintf("%s by admin #%d (%s)", action, args.AdminID, args.AdminUsername),
	}, true
}
