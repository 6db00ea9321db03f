package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/campustrade/internal/repository/repoargs"

	"github.com/fsdevblog/campustrade/internal/transport/notifier"

	"github.com/fsdevblog/campustrade/pkg/uow"

	"github.com/fsdevblog/campustrade/internal/config"
	"github.com/fsdevblog/campustrade/internal/repository/pgrepo"
	"github.com/fsdevblog/campustrade/internal/service"
	"github.com/fsdevblog/campustrade/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
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

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret:     []byte(a.Config.JWTUserSecret),
		SignupGrant:   a.Config.SignupGrant(),
		ReviewReward:  a.Config.ReviewReward(),
		DepositPolicy: a.Config.DepositPolicyType(),
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		UserService:         services.UserService,
		ItemService:         services.ItemService,
		OfferService:        services.OfferService,
		TradeService:        services.TradeService,
		BalanceService:      services.BalanceService,
		ComplaintService:    services.ComplaintService,
		NotificationService: services.NotificationService,
		JWTSecretKey:        []byte(a.Config.JWTUserSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	dispatcher := notifier.New(services.NotificationService, a.Config.NotifyWebhookURL, a.Logger).
		SetLimitPerIteration(50) //nolint:mnd

	go dispatcher.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName:         func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) },
		repoargs.ItemRepoName:         func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewItemRepository(dbtx) },
		repoargs.OfferRepoName:        func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewOfferRepository(dbtx) },
		repoargs.TradeRepoName:        func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewTradeRepository(dbtx) },
		repoargs.LedgerRepoName:       func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewLedgerRepository(dbtx) },
		repoargs.ComplaintRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewComplaintRepository(dbtx) },
		repoargs.NotificationRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewNotificationRepository(dbtx) },
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
