package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/spintracker/internal/config"
	"github.com/GlebRadaev/spintracker/internal/handlers"
	"github.com/GlebRadaev/spintracker/internal/pg"
	"github.com/GlebRadaev/spintracker/internal/repo"
	"github.com/GlebRadaev/spintracker/internal/service"
	"github.com/GlebRadaev/spintracker/internal/service/strategyservice"
	"github.com/GlebRadaev/spintracker/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err = logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err = validateStrategy(cfg); err != nil {
		zap.L().Error("invalid strategy limits: ", zap.Error(err))
		return err
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err = pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager, err := pg.NewTXManager(pool)
	if err != nil {
		pool.Close()
		return fmt.Errorf("can't build transaction manager: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg)
	a.api = handlers.New(a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.String("base_bet", cfg.BaseBet.StringFixed(2)),
		zap.String("max_bet", cfg.MaxBet.StringFixed(2)),
	)
	return nil
}

// validateStrategy rejects bet limits the strategy engine would refuse on
// every request.
func validateStrategy(cfg *config.Config) error {
	if err := strategyservice.New().ValidateParameters(service.StrategyParams(cfg)); err != nil {
		return fmt.Errorf("can't use configured bet limits: %w", err)
	}
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.pool.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
