package pgrepo

import (
	"context"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = "id, created_at, updated_at, username, balance"

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// GetForUpdate читает юзера с блокировкой строки до конца транзакции. Все изменения баланса идут только
// через эту блокировку, поэтому параллельные начисления одному юзеру выполняются последовательно.
func (u *UserRepository) GetForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1 FOR UPDATE", id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "locking user with id %d", id)
	}
	return user, nil
}

func (u *UserRepository) UpdateBalance(ctx context.Context, id int64, balance int64) error {
	tag, err := u.conn.Exec(ctx, "UPDATE users SET balance = $2, updated_at = now() WHERE id = $1", id, balance)
	if err != nil {
		return convertErr(err, "updating balance of user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating balance of user %d", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username, &user.Balance); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
