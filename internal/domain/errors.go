package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	// ErrConstraintViolation запись нарушает CHECK-ограничение базы.
	ErrConstraintViolation = errors.New("constraint violation")

	// Ошибки колбэков.
	ErrUnknownProvider  = errors.New("unknown payment provider")
	ErrInvalidPayload   = errors.New("invalid callback payload")
	ErrInvalidSignature = errors.New("invalid callback signature")
	// ErrAlreadyProcessed запись не найдена в ожидаемом статусе: либо уже обработана, либо не существует.
	// Для шлюза это успешный ответ.
	ErrAlreadyProcessed = errors.New("already processed")
	// ErrCallbackPending шлюз сообщил промежуточный статус, переход не выполняется.
	ErrCallbackPending  = errors.New("callback reports non-final status")
	ErrProviderMismatch = errors.New("payment provider mismatch")
	ErrAmountMismatch   = errors.New("payment amount mismatch")

	// Ошибки ручной смены статуса.
	ErrStatusUnchanged = errors.New("status is already set")
	ErrInvalidStatus   = errors.New("invalid status")

	// Ошибки журнала баланса.
	ErrZeroAmount           = errors.New("mutation amount is zero")
	ErrMutationSignMismatch = errors.New("mutation amount sign does not match its type")
	ErrBalanceOverflow      = errors.New("balance overflow")
)

// ProviderMismatchError колбэк пришел не от того шлюза, через который создана оплата.
type ProviderMismatchError struct {
	Reference string
	Expected  ProviderName
	Actual    ProviderName
}

func NewProviderMismatchError(ref string, expected, actual ProviderName) error {
	return &ProviderMismatchError{Reference: ref, Expected: expected, Actual: actual}
}

func (e *ProviderMismatchError) Error() string {
	return fmt.Sprintf("record %s is paid via %s, callback came from %s", e.Reference, e.Expected, e.Actual)
}

func (e *ProviderMismatchError) Unwrap() error {
	return ErrProviderMismatch
}

// AmountMismatchError сумма в колбэке не совпадает с суммой к оплате.
type AmountMismatchError struct {
	Reference string
	Expected  int64
	Actual    int64
}

func NewAmountMismatchError(ref string, expected, actual int64) error {
	return &AmountMismatchError{Reference: ref, Expected: expected, Actual: actual}
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("record %s expects amount %d, callback reports %d", e.Reference, e.Expected, e.Actual)
}

func (e *AmountMismatchError) Unwrap() error {
	return ErrAmountMismatch
}
