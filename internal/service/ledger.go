package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
)

const (
	defaultHistoryLimit uint = 100
	maxHistoryLimit     uint = 1000
)

// Ledger записывает изменения баланса. Баланс юзера меняется только здесь и только вместе со вставкой
// записи журнала в той же транзакции.
type Ledger struct{}

func NewLedger() *Ledger {
	return new(Ledger)
}

// Apply выполняется внутри транзакции вызывающего кода.
//
// Алгоритм работы:
//  1. Блокирует строку юзера (SELECT ... FOR UPDATE) и читает текущий баланс.
//  2. Строит запись журнала balance_after = balance_before + amount.
//  3. Вставляет запись журнала. Нарушение уникального индекса (ref_id, ref_type, type) означает, что это
//     начисление уже было: возвращается domain.ErrAlreadyProcessed, транзакция должна откатиться.
//  4. Записывает новый баланс.
func (l *Ledger) Apply(ctx context.Context, tx uow.TX, args domain.MutationArgs) (*domain.BalanceMutation, error) {
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	mutationRepo, mutationRepoErr :=
		uow.GetAs[BalanceMutationRepository](tx, uow.RepositoryName(repoargs.BalanceMutationRepoName))
	if mutationRepoErr != nil {
		return nil, mutationRepoErr //nolint:wrapcheck
	}

	user, userErr := userRepo.GetForUpdate(ctx, args.UserID)
	if userErr != nil {
		return nil, fmt.Errorf("ledger apply: %w", userErr)
	}

	mutation, mutationErr := domain.NewBalanceMutation(user.Balance, args)
	if mutationErr != nil {
		return nil, fmt.Errorf("ledger apply for user %d: %w", user.ID, mutationErr)
	}

	created, createErr := mutationRepo.Create(ctx, repoargs.NewBalanceMutationCreate(mutation))
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return nil, fmt.Errorf("ledger apply %s/%s: %w", args.RefType, args.RefID, domain.ErrAlreadyProcessed)
		}
		return nil, fmt.Errorf("ledger apply: %w", createErr)
	}

	if err := userRepo.UpdateBalance(ctx, user.ID, created.BalanceAfter); err != nil {
		return nil, fmt.Errorf("ledger apply: %w", err)
	}
	return created, nil
}

// LedgerService аудит журнала баланса.
type LedgerService struct {
	uow          uow.UOW
	mutationRepo BalanceMutationRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	mutationRepo, err := uow.GetRepositoryAs[BalanceMutationRepository](
		u,
		uow.RepositoryName(repoargs.BalanceMutationRepoName),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LedgerService{uow: u, mutationRepo: mutationRepo}, nil
}

type ReconcileReport struct {
	UserID          int64
	StoredBalance   int64
	ReplayedBalance int64
	// Drift разница users.balance и суммы журнала. 0 - баланс сходится.
	Drift         int64
	MutationCount int
	Breaks        []domain.LedgerBreak
}

func (r *ReconcileReport) Consistent() bool {
	return r.Drift == 0 && len(r.Breaks) == 0
}

// Reconcile пересчитывает баланс юзера по журналу и сравнивает с сохраненным. Строка юзера блокируется
// на время чтения, поэтому журнал и баланс читаются согласованно.
func (s *LedgerService) Reconcile(ctx context.Context, userID int64) (*ReconcileReport, error) {
	var report *ReconcileReport
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		mutationRepo, mutationRepoErr :=
			uow.GetAs[BalanceMutationRepository](tx, uow.RepositoryName(repoargs.BalanceMutationRepoName))
		if mutationRepoErr != nil {
			return mutationRepoErr //nolint:wrapcheck
		}

		user, userErr := userRepo.GetForUpdate(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		mutations, mutationsErr := mutationRepo.ListForReplay(c, userID)
		if mutationsErr != nil {
			return mutationsErr //nolint:wrapcheck
		}

		replay := domain.ReplayLedger(mutations)
		report = &ReconcileReport{
			UserID:          userID,
			StoredBalance:   user.Balance,
			ReplayedBalance: replay.Balance,
			Drift:           user.Balance - replay.Balance,
			MutationCount:   replay.Count,
			Breaks:          replay.Breaks,
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("reconciling balance of user %d: %w", userID, txErr)
	}
	return report, nil
}

// History возвращает последние записи журнала юзера, от новых к старым. limit 0 - defaultHistoryLimit.
func (s *LedgerService) History(ctx context.Context, userID int64, limit uint) ([]domain.BalanceMutation, error) {
	switch {
	case limit == 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	mutations, err := s.mutationRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("balance history of user %d: %w", userID, err)
	}
	return mutations, nil
}
