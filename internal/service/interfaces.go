package service

import (
	"context"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/gateway"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.User, error)
	UpdateBalance(ctx context.Context, id int64, balance int64) error
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Create(ctx context.Context, username, encryptedPassword string) (*domain.Admin, error)
}

type DepositRepository interface {
	FindForUpdate(ctx context.Context, depositID string, status domain.DepositStatusType) (*domain.Deposit, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Deposit, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateDepositStatus) (*domain.Deposit, error)
}

type OrderRepository interface {
	FindForUpdate(ctx context.Context, orderID string, paymentStatus domain.PaymentStatusType) (*domain.Order, error)
	UpdatePayment(ctx context.Context, args repoargs.UpdateOrderPayment) (*domain.Order, error)
	GetPendingFulfillment(ctx context.Context, query repoargs.PendingFulfillmentQuery) ([]domain.Order, error)
	MarkFulfillmentEnqueued(ctx context.Context, ids []int64) error
}

type BalanceMutationRepository interface {
	Create(ctx context.Context, args repoargs.BalanceMutationCreate) (*domain.BalanceMutation, error)
	ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.BalanceMutation, error)
	ListForReplay(ctx context.Context, userID int64) ([]domain.BalanceMutation, error)
}

type InventoryRepository interface {
	IncrementStock(ctx context.Context, productID int64) error
	BatchDecrementOfferUsage(ctx context.Context, offerIDs []int64, fn repoargs.OfferUsageBatchQueryRow) error
}

// CallbackParser проверяет подпись колбэка и приводит его к общему виду.
type CallbackParser interface {
	Parse(provider string, p gateway.Payload) (*domain.GatewayCallback, error)
}

type FulfillmentQueue interface {
	EnqueueFulfillment(ctx context.Context, orderID string) error
}

type EventPublisher interface {
	PublishBalanceMutation(ctx context.Context, mutation domain.BalanceMutation) error
}
