package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/gateway"
	"github.com/fsdevblog/ppob-ledger/internal/service"
)

// CallbackServicer обработчик колбэков шлюза. Реализуется сервисами депозитов и оплаты заказов.
type CallbackServicer interface {
	Handle(ctx context.Context, provider string, payload gateway.Payload) (*service.CallbackResult, error)
}

type AdminAuthServicer interface {
	Login(ctx context.Context, args service.LoginAdminArgs) (*domain.Admin, string, error)
}

type AdminDepositServicer interface {
	ChangeStatus(
		ctx context.Context,
		args service.ChangeDepositStatusArgs,
	) (*service.ChangeDepositStatusResult, error)
}

type LedgerServicer interface {
	Reconcile(ctx context.Context, userID int64) (*service.ReconcileReport, error)
	History(ctx context.Context, userID int64, limit uint) ([]domain.BalanceMutation, error)
}
