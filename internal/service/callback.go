package service

import (
	"errors"
	"strings"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/metrics"
)

// Disposition итог обработки колбэка, который нужно подтвердить шлюзу.
type Disposition string

const (
	// DispositionApplied переход выполнен.
	DispositionApplied Disposition = "applied"
	// DispositionAlreadyProcessed запись не найдена в ожидаемом статусе: уже обработана или не существует.
	DispositionAlreadyProcessed Disposition = "already_processed"
	// DispositionPending шлюз прислал промежуточный статус, переход не нужен.
	DispositionPending Disposition = "pending"
)

type CallbackResult struct {
	Reference   string
	Provider    domain.ProviderName
	Status      string // новый статус записи, пустой если переход не выполнялся.
	Disposition Disposition
}

const (
	callbackKindDeposit = "deposit"
	callbackKindOrder   = "order"
)

// callbackMetricResult метка result для ошибки обработки колбэка.
func callbackMetricResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrInvalidPayload),
		errors.Is(err, domain.ErrUnknownProvider),
		errors.Is(err, domain.ErrProviderMismatch),
		errors.Is(err, domain.ErrAmountMismatch):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}

func dispositionMetricResult(d Disposition) string {
	switch d {
	case DispositionAlreadyProcessed:
		return metrics.ResultAlreadyProcessed
	case DispositionPending:
		return metrics.ResultPending
	default:
		return metrics.ResultApplied
	}
}

// checkAmount сверяет сумму колбэка с ожидаемой. Пропускается, если одна из сумм неизвестна (0).
func checkAmount(reference string, expected, actual int64) error {
	if expected == 0 || actual == 0 || expected == actual {
		return nil
	}
	return domain.NewAmountMismatchError(reference, expected, actual)
}

// providerLabel метка provider. Имя неизвестного шлюза приходит из пути запроса и в метку не попадает.
func providerLabel(provider string, err error) string {
	if errors.Is(err, domain.ErrUnknownProvider) {
		return "unknown"
	}
	return strings.ToUpper(provider)
}
