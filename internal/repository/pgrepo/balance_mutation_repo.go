package pgrepo

import (
	"context"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const mutationColumns = `id, created_at, user_id, amount, type, balance_before, balance_after,
	ref_id, ref_type, name, notes`

type BalanceMutationRepository struct {
	conn uow.DBTX
}

func NewBalanceMutationRepository(conn uow.DBTX) *BalanceMutationRepository {
	return &BalanceMutationRepository{conn: conn}
}

// Create добавляет запись в журнал. Повторная запись с тем же (ref_id, ref_type, type) для ref_type DEPOSIT
// нарушает уникальный индекс и возвращает domain.ErrDuplicateKey.
func (b *BalanceMutationRepository) Create(
	ctx context.Context,
	args repoargs.BalanceMutationCreate,
) (*domain.BalanceMutation, error) {
	row := b.conn.QueryRow(ctx,
		`INSERT INTO balance_mutations
			(user_id, amount, type, balance_before, balance_after, ref_id, ref_type, name, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+mutationColumns,
		args.UserID, args.Amount, args.Type, args.BalanceBefore, args.BalanceAfter,
		args.RefID, args.RefType, args.Name, args.Notes,
	)
	m, err := scanMutation(row)
	if err != nil {
		return nil, convertErr(err, "creating balance mutation %s/%s", args.RefType, args.RefID)
	}
	return m, nil
}

// ListByUser возвращает последние limit записей журнала юзера, от новых к старым.
func (b *BalanceMutationRepository) ListByUser(
	ctx context.Context,
	userID int64,
	limit uint,
) ([]domain.BalanceMutation, error) {
	safeLimit, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	rows, err := b.conn.Query(ctx,
		"SELECT "+mutationColumns+" FROM balance_mutations WHERE user_id = $1 ORDER BY id DESC LIMIT $2",
		userID, safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "listing balance mutations of user %d", userID)
	}
	return collectMutations(rows, userID)
}

// ListForReplay возвращает весь журнал юзера в порядке создания.
func (b *BalanceMutationRepository) ListForReplay(ctx context.Context, userID int64) ([]domain.BalanceMutation, error) {
	rows, err := b.conn.Query(ctx,
		"SELECT "+mutationColumns+" FROM balance_mutations WHERE user_id = $1 ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "listing balance mutations of user %d for replay", userID)
	}
	return collectMutations(rows, userID)
}

func collectMutations(rows pgx.Rows, userID int64) ([]domain.BalanceMutation, error) {
	mutations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BalanceMutation, error) {
		m, scanErr := scanMutation(row)
		if scanErr != nil {
			return domain.BalanceMutation{}, scanErr
		}
		return *m, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning balance mutations of user %d", userID)
	}
	return mutations, nil
}

func scanMutation(row pgx.Row) (*domain.BalanceMutation, error) {
	var m domain.BalanceMutation
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UserID, &m.Amount, &m.Type, &m.BalanceBefore, &m.BalanceAfter,
		&m.RefID, &m.RefType, &m.Name, &m.Notes,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
