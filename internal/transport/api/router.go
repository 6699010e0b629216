package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/metrics"
	"github.com/fsdevblog/ppob-ledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 5 * time.Second
)

const (
	RouteGroup              = "/api"
	DepositCallbackRoute    = "/callbacks/deposits/:provider"
	OrderCallbackRoute      = "/callbacks/orders/:provider"
	AdminLoginRoute         = "/admin/login"
	AdminDepositStatusRoute = "/admin/deposits/:id/status"
	AdminReconcileRoute     = "/admin/users/:id/reconcile"
	AdminMutationsRoute     = "/admin/users/:id/mutations"
	MetricsRoute            = "/metrics"
)

type RouterArgs struct {
	Logger                 *logrus.Logger
	DepositCallbackService CallbackServicer
	OrderCallbackService   CallbackServicer
	AdminAuthService       AdminAuthServicer
	AdminDepositService    AdminDepositServicer
	LedgerService          LedgerServicer
	JWTSecretKey           []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Metrics())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	r.GET(MetricsRoute, gin.WrapH(metrics.Handler()))

	depositCallbackHandler := NewCallbackHandler(args.DepositCallbackService, "depositId")
	orderCallbackHandler := NewCallbackHandler(args.OrderCallbackService, "orderId")
	authHandler := NewAuthHandler(args.AdminAuthService)
	adminHandler := NewAdminHandler(args.AdminDepositService, args.LedgerService)

	api := r.Group(RouteGroup)

	// колбэки аутентифицируются подписью шлюза.
	api.POST(DepositCallbackRoute, depositCallbackHandler.Handle)
	api.POST(OrderCallbackRoute, orderCallbackHandler.Handle)

	api.POST(AdminLoginRoute, authHandler.Login)

	admin := api.Group("", middlewares.AdminAuthRequired(args.JWTSecretKey))
	admin.POST(AdminDepositStatusRoute, adminHandler.ChangeDepositStatus)
	admin.GET(AdminReconcileRoute, adminHandler.Reconcile)
	admin.GET(AdminMutationsRoute, adminHandler.Mutations)
	return r, nil
}
