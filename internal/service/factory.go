package service

import (
	"fmt"

	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

type FactoryArgs struct {
	UOW          uow.UOW
	Parser       CallbackParser
	Queue        FulfillmentQueue
	Publisher    EventPublisher
	Hasher       PasswordHasher
	JWTSecretKey []byte
	Logger       *logrus.Logger
}

type AppServices struct {
	DepositCallbackService *DepositCallbackService
	OrderCallbackService   *OrderCallbackService
	AdminDepositService    *AdminDepositService
	AdminAuthService       *AdminAuthService
	LedgerService          *LedgerService
	FulfillmentService     *FulfillmentService
}

func Factory(args FactoryArgs) (*AppServices, error) {
	ledger := NewLedger()

	orderCallbackService, orderErr := NewOrderCallbackService(
		args.UOW, args.Parser, NewReverter(args.Logger), args.Queue, args.Logger,
	)
	if orderErr != nil {
		return nil, fmt.Errorf("service factory: %w", orderErr)
	}

	adminAuthService, authErr := NewAdminAuthService(args.UOW, args.JWTSecretKey, args.Hasher)
	if authErr != nil {
		return nil, fmt.Errorf("service factory: %w", authErr)
	}

	ledgerService, ledgerErr := NewLedgerService(args.UOW)
	if ledgerErr != nil {
		return nil, fmt.Errorf("service factory: %w", ledgerErr)
	}

	fulfillmentService, fulfillmentErr := NewFulfillmentService(args.UOW, args.Queue)
	if fulfillmentErr != nil {
		return nil, fmt.Errorf("service factory: %w", fulfillmentErr)
	}

	return &AppServices{
		DepositCallbackService: NewDepositCallbackService(args.UOW, args.Parser, ledger, args.Publisher, args.Logger),
		OrderCallbackService:   orderCallbackService,
		AdminDepositService:    NewAdminDepositService(args.UOW, ledger, args.Publisher, args.Logger),
		AdminAuthService:       adminAuthService,
		LedgerService:          ledgerService,
		FulfillmentService:     fulfillmentService,
	}, nil
}
