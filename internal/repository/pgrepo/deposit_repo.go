package pgrepo

import (
	"context"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const depositColumns = `id, created_at, updated_at, deposit_id, user_id, provider_name,
	amount_received, amount_fee, amount_pay, status`

type DepositRepository struct {
	conn uow.DBTX
}

func NewDepositRepository(conn uow.DBTX) *DepositRepository {
	return &DepositRepository{conn: conn}
}

// FindForUpdate ищет депозит по deposit_id только в статусе status и блокирует строку. Если депозит уже
// обработан или не существует, возвращает domain.ErrRecordNotFound: оба случая неразличимы намеренно.
//
// При конкурентной доставке одного колбэка второй запрос ждет блокировку, после чего postgres заново
// проверяет условие status = $2 и строку уже не находит.
func (d *DepositRepository) FindForUpdate(
	ctx context.Context,
	depositID string,
	status domain.DepositStatusType,
) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx,
		"SELECT "+depositColumns+" FROM deposits WHERE deposit_id = $1 AND status = $2 FOR UPDATE",
		depositID, status,
	)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "finding deposit `%s` in status %s", depositID, status)
	}
	return deposit, nil
}

// FindByIDForUpdate блокирует депозит по внутреннему id в любом статусе.
func (d *DepositRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx, "SELECT "+depositColumns+" FROM deposits WHERE id = $1 FOR UPDATE", id)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "locking deposit with id %d", id)
	}
	return deposit, nil
}

// UpdateStatus меняет статус депозита, только если текущий статус равен args.From. Если строка не
// обновилась, возвращает domain.ErrRecordNotFound.
func (d *DepositRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.UpdateDepositStatus,
) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx,
		`UPDATE deposits SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+depositColumns,
		args.ID, args.From, args.To,
	)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "updating deposit %d status %s -> %s", args.ID, args.From, args.To)
	}
	return deposit, nil
}

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	err := row.Scan(
		&d.ID, &d.CreatedAt, &d.UpdatedAt, &d.DepositID, &d.UserID, &d.ProviderName,
		&d.AmountReceived, &d.AmountFee, &d.AmountPay, &d.Status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &d, nil
}
