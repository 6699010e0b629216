package pgrepo

import (
	"context"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
)

type AdminRepository struct {
	conn uow.DBTX
}

func NewAdminRepository(conn uow.DBTX) *AdminRepository {
	return &AdminRepository{conn: conn}
}

// FindByUsername ищет администратора по юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись
// не найдена, во всех других случаях - domain.ErrUnknown.
func (a *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var admin domain.Admin
	err := a.conn.QueryRow(ctx,
		`SELECT id, created_at, updated_at, username, encrypted_password FROM admins WHERE username = $1`,
		username,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt, &admin.Username, &admin.EncryptedPassword)
	if err != nil {
		return nil, convertErr(err, "finding admin by username %s", username)
	}
	return &admin, nil
}

// Create создает администратора. Если юзернейм занят, вернется ошибка domain.ErrDuplicateKey.
func (a *AdminRepository) Create(ctx context.Context, username, encryptedPassword string) (*domain.Admin, error) {
	var admin domain.Admin
	err := a.conn.QueryRow(ctx,
		`INSERT INTO admins (username, encrypted_password) VALUES ($1, $2)
		RETURNING id, created_at, updated_at, username, encrypted_password`,
		username, encryptedPassword,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt, &admin.Username, &admin.EncryptedPassword)
	if err != nil {
		return nil, convertErr(err, "creating admin %s", username)
	}
	return &admin, nil
}
