package repoargs

import (
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
)

// UpdateOrderPayment переход оплаты заказа. OrderStatus == nil - order_status не меняется.
type UpdateOrderPayment struct {
	ID          int64
	From        domain.PaymentStatusType
	To          domain.PaymentStatusType
	OrderStatus *domain.OrderStatusType
}

type PendingFulfillmentQuery struct {
	Limit     uint
	PaidUntil time.Time
}

type OfferUsageBatchQueryRow func(i int, err error)
