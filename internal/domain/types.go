package domain

type DepositStatusType string

const (
	DepositStatusPending   DepositStatusType = "PENDING"
	DepositStatusCompleted DepositStatusType = "COMPLETED"
	DepositStatusFailed    DepositStatusType = "FAILED"
	DepositStatusExpired   DepositStatusType = "EXPIRED"
	DepositStatusCanceled  DepositStatusType = "CANCELED"
)

func (s DepositStatusType) IsValid() bool {
	switch s {
	case DepositStatusPending, DepositStatusCompleted, DepositStatusFailed,
		DepositStatusExpired, DepositStatusCanceled:
		return true
	default:
		return false
	}
}

// IsAdminTarget статус, который оператор может выставить вручную. PENDING исключен: возврат в него
// открыл бы депозит для колбэка, который упрется в индекс дедупликации журнала и навсегда оставит запись в PENDING.
func (s DepositStatusType) IsAdminTarget() bool {
	return s.IsValid() && s != DepositStatusPending
}

type PaymentStatusType string

const (
	PaymentStatusPending PaymentStatusType = "PENDING"
	PaymentStatusSuccess PaymentStatusType = "SUCCESS"
	PaymentStatusFailed  PaymentStatusType = "FAILED"
)

type OrderStatusType string

const (
	OrderStatusNone       OrderStatusType = ""
	OrderStatusPending    OrderStatusType = "PENDING"
	OrderStatusProcessing OrderStatusType = "PROCESSING"
	OrderStatusSuccess    OrderStatusType = "SUCCESS"
	OrderStatusFailed     OrderStatusType = "FAILED"
)

type MutationType string

const (
	MutationCredit MutationType = "CREDIT"
	MutationDebit  MutationType = "DEBIT"
)

// RefType тип сущности, на которую ссылается запись журнала.
type RefType string

const (
	// RefTypeDeposit начисление по колбэку платежного шлюза. Уникально по (ref_id, ref_type, type).
	RefTypeDeposit RefType = "DEPOSIT"
	// RefTypeDepositAdjustment ручная корректировка администратором. Ограничения уникальности нет:
	// один и тот же депозит может переключаться оператором несколько раз.
	RefTypeDepositAdjustment RefType = "DEPOSIT_ADJUSTMENT"
)

type ProviderName string

const (
	ProviderTripay   ProviderName = "TRIPAY"
	ProviderDuitku   ProviderName = "DUITKU"
	ProviderMidtrans ProviderName = "MIDTRANS"
)

// GatewayOutcome общий для всех шлюзов результат платежа. Словарь конкретного шлюза приводится к нему
// в пакете gateway.
type GatewayOutcome string

const (
	OutcomeSuccess  GatewayOutcome = "SUCCESS"
	OutcomeFailed   GatewayOutcome = "FAILED"
	OutcomeExpired  GatewayOutcome = "EXPIRED"
	OutcomeCanceled GatewayOutcome = "CANCELED"
	OutcomePending  GatewayOutcome = "PENDING"
	OutcomeUnknown  GatewayOutcome = "UNKNOWN"
)

// DepositStatusFromOutcome возвращает новый статус депозита для результата шлюза. Второе значение false,
// если результат не финальный (OutcomePending) и переход выполнять не нужно. Неизвестный результат
// переводит депозит в FAILED.
func DepositStatusFromOutcome(o GatewayOutcome) (DepositStatusType, bool) {
	switch o {
	case OutcomeSuccess:
		return DepositStatusCompleted, true
	case OutcomeExpired:
		return DepositStatusExpired, true
	case OutcomeCanceled:
		return DepositStatusCanceled, true
	case OutcomePending:
		return "", false
	case OutcomeFailed, OutcomeUnknown:
		return DepositStatusFailed, true
	default:
		return DepositStatusFailed, true
	}
}

// PaymentStatusFromOutcome то же самое для оплаты заказа: успех - SUCCESS, всё кроме PENDING - FAILED.
func PaymentStatusFromOutcome(o GatewayOutcome) (PaymentStatusType, bool) {
	switch o {
	case OutcomeSuccess:
		return PaymentStatusSuccess, true
	case OutcomePending:
		return "", false
	default:
		return PaymentStatusFailed, true
	}
}
