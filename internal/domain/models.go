package domain

import (
	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	// Balance материализованная проекция журнала balance_mutations. Изменяется только в одной транзакции
	// со вставкой записи журнала.
	Balance int64
}

type Admin struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
}

type Deposit struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DepositID      string
	UserID         int64
	ProviderName   ProviderName
	AmountReceived int64
	AmountFee      int64
	AmountPay      int64
	Status         DepositStatusType
}

type ProductSnapshot struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
}

type PaymentSnapshot struct {
	ProviderName ProviderName `json:"providerName"`
	ProviderCode string       `json:"providerCode"`
	Amount       int64        `json:"amount"`
	ExpiredAt    *time.Time   `json:"expiredAt,omitempty"`
}

type OfferOnOrder struct {
	ID      int64
	OfferID int64
}

type Order struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	OrderID         string
	UserID          int64
	PaymentStatus   PaymentStatusType
	OrderStatus     OrderStatusType // пустая строка - статус еще не назначен.
	ProductSnapshot ProductSnapshot
	PaymentSnapshot PaymentSnapshot
	OfferOnOrders   []OfferOnOrder

	FulfillmentEnqueuedAt *time.Time
}

type BalanceMutation struct {
	ID            int64
	CreatedAt     time.Time
	UserID        int64
	Amount        int64
	Type          MutationType
	BalanceBefore int64
	BalanceAfter  int64
	RefID         string
	RefType       RefType
	Name          string
	Notes         string
}
