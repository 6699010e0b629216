package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/config"
	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/events"
	"github.com/fsdevblog/ppob-ledger/internal/gateway"
	"github.com/fsdevblog/ppob-ledger/internal/metrics"
	"github.com/fsdevblog/ppob-ledger/internal/queue"
	"github.com/fsdevblog/ppob-ledger/internal/repository/pgrepo"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/internal/service"
	"github.com/fsdevblog/ppob-ledger/internal/service/psswd"
	"github.com/fsdevblog/ppob-ledger/internal/transport/api"
	"github.com/fsdevblog/ppob-ledger/internal/transport/dispatcher"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	shutdownTimeout    = 10 * time.Second
	redisPingTimeout   = 3 * time.Second
	readHeaderTimeout  = 5 * time.Second
	dispatchLimitBatch = 100
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":           a.Config.RunAddress,
		"migrations":        a.Config.MigrationsDir,
		"redis":             a.Config.RedisAddr,
		"dispatch_interval": a.Config.DispatchInterval,
		"dispatch_workers":  a.Config.DispatchWorkers,
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, pgrepo.ConnectArgs{
		DSN:           a.Config.DatabaseDSN,
		MigrationsDir: a.Config.MigrationsDir,
	}, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.Config.RedisAddr,
		Password: a.Config.RedisPassword,
	})
	defer rdb.Close()
	a.pingRedis(notifyCtx, rdb)

	// asynq работает поверх того же клиента, закрывается вместе с rdb.
	queueClient := queue.NewClient(asynq.NewClientFromRedisClient(rdb))

	metrics.Init()

	services, sErr := service.Factory(service.FactoryArgs{
		UOW: unitOfWork,
		Parser: gateway.NewRegistryFromConfig(gateway.Config{
			TripayPrivateKey:   a.Config.TripayPrivateKey,
			DuitkuMerchantCode: a.Config.DuitkuMerchantCode,
			DuitkuAPIKey:       a.Config.DuitkuAPIKey,
			MidtransServerKey:  a.Config.MidtransServerKey,
		}),
		Queue:        queueClient,
		Publisher:    events.NewPublisher(rdb),
		Hasher:       psswd.BcryptHasher{Cost: bcrypt.DefaultCost},
		JWTSecretKey: []byte(a.Config.JWTAdminSecret),
		Logger:       a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:                 a.Logger,
		DepositCallbackService: services.DepositCallbackService,
		OrderCallbackService:   services.OrderCallbackService,
		AdminAuthService:       services.AdminAuthService,
		AdminDepositService:    services.AdminDepositService,
		LedgerService:          services.LedgerService,
		JWTSecretKey:           []byte(a.Config.JWTAdminSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	d := dispatcher.New(services.FulfillmentService, a.Logger).
		SetWorkers(a.Config.DispatchWorkers).
		SetInterval(a.Config.DispatchInterval).
		SetLimitPerIteration(dispatchLimitBatch)

	go d.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// pingRedis недоступный redis не мешает старту: колбэки фиксируются в базе, задачи выдачи доставит
// диспетчер, когда redis вернется.
func (a *App) pingRedis(ctx context.Context, rdb *redis.Client) {
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		a.Logger.WithError(err).Warn("redis is not reachable, fulfillment jobs and events are delayed")
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.AdminRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAdminRepository(dbtx)
		},
		repoargs.DepositRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewDepositRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.BalanceMutationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBalanceMutationRepository(dbtx)
		},
		repoargs.InventoryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewInventoryRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}

// CreateAdmin заводит оператора админки. Используется утилитой cmd/ppob-admin.
func (a *App) CreateAdmin(ctx context.Context, username, password string) (*domain.Admin, error) {
	conn, connErr := pgrepo.Connect(ctx, pgrepo.ConnectArgs{
		DSN:           a.Config.DatabaseDSN,
		MigrationsDir: a.Config.MigrationsDir,
	}, a.Logger)
	if connErr != nil {
		return nil, fmt.Errorf("create admin: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return nil, fmt.Errorf("create admin: %s", uowErr.Error())
	}

	authService, sErr := service.NewAdminAuthService(
		unitOfWork,
		[]byte(a.Config.JWTAdminSecret),
		psswd.BcryptHasher{Cost: bcrypt.DefaultCost},
	)
	if sErr != nil {
		return nil, fmt.Errorf("create admin: %s", sErr.Error())
	}

	return authService.CreateAdmin(ctx, service.LoginAdminArgs{ //nolint:wrapcheck
		Username: username,
		Password: password,
	})
}
