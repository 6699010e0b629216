package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, которые имеют смысл для бизнес-слоя.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

var pgCodeErrors = map[string]error{
	uniqueViolationCode: domain.ErrDuplicateKey,

	// Ссылка на несуществующую строку (например, мутация для удаленного пользователя).
	foreignKeyViolationCode: domain.ErrRecordNotFound,

	// CHECK на balance_mutations и статусы. Срабатывание означает ошибку в расчетах, а не гонку.
	checkViolationCode: domain.ErrConstraintViolation,
}

// convertErr приводит ошибку pgx к ошибке домена, сохраняя контекст операции и исходный текст.
// Неизвестные ошибки оборачиваются в domain.ErrUnknown.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	op := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", op, domain.ErrRecordNotFound)
	}

	errType := domain.ErrUnknown
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			errType = mapped
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", op, errType, err.Error())
}
