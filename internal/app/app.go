package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/audit"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/folio"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/hotel"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/housekeeping"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/notification"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/onboarding"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/procedure"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/reservation"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/room"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/storage"
	"github.com/waspershola/africa-lodge-90-sub002/internal/auth"
	"github.com/waspershola/africa-lodge-90-sub002/internal/cache"
	"github.com/waspershola/africa-lodge-90-sub002/internal/config"
	"github.com/waspershola/africa-lodge-90-sub002/internal/domain"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/board"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/dialog"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/frontdesk"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/hotelconfig"
	onboardingsvc "github.com/waspershola/africa-lodge-90-sub002/internal/service/onboarding"
	"github.com/waspershola/africa-lodge-90-sub002/internal/transport/loader"
	"github.com/waspershola/africa-lodge-90-sub002/internal/transport/middleware"
	"github.com/waspershola/africa-lodge-90-sub002/internal/transport/rest"
)

// Run is the application entry point. It loads configuration from
// configPath (empty means CONFIG_PATH or the default), connects to the
// database and cache, wires the services and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadPath(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("cache", cfg.Cache.Driver),
	)

	// Infrastructure.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()
	health := rest.NewHealthHandler(pool, BuildVersion()).WithClock(clock)

	var store cache.Store
	if cfg.Cache.UsesRedis() {
		cli, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer cli.Close()

		rc := cache.NewRedis(cli, cfg.Redis.Prefix, cfg.Cache.TTL)
		health.WithComponent("cache", rc)
		store = rc
	} else {
		store = cache.NewLRU(cfg.Cache.Size, cfg.Cache.TTL)
	}

	st := newStack(cfg, logger, pool, store, clock, health)
	defer st.stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      st.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server",
			slog.Int("open_dialogs", st.dialogs.OpenCount()),
		)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// stack is the wired HTTP application.
type stack struct {
	handler http.Handler
	dialogs *dialog.Service
	stop    func()
}

// newStack wires repositories, services and middleware on top of the
// database pool and board cache.
func newStack(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	store cache.Store,
	clock clockwork.Clock,
	health *rest.HealthHandler,
) *stack {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	roomRepo := room.New(pool)
	reservationRepo := reservation.New(pool)
	folioRepo := folio.New(pool)
	procRepo := procedure.New(pool)
	housekeepingRepo := housekeeping.New(pool)
	auditRepo := audit.New(pool)
	notificationRepo := notification.New(pool)
	hotelRepo := hotel.New(pool)
	draftRepo := onboarding.NewDrafts(pool)
	provisioner := onboarding.NewProvisioner(pool)

	// Services.
	hotelService := newHotelConfigService(logger, clock, cfg.Storage, hotelRepo, auditRepo, txm)

	frontdeskService := frontdesk.NewService(
		logger, clock, roomRepo, reservationRepo, folioRepo, procRepo,
		housekeepingRepo, auditRepo, notificationRepo, hotelService,
	)

	boardService := board.NewService(
		logger, clock, roomRepo, reservationRepo, loader.NewFolios(folioRepo), store,
		board.Settings{
			PendingTTL:        cfg.Board.PendingTTL,
			ReservationWindow: cfg.Board.ReservationWindow,
		},
	)

	dialogService := dialog.NewService(
		logger, clock, boardService, hotelService, frontdeskService.Actions(),
		dialog.Settings{
			SubmitTimeout: cfg.Dialog.SubmitTimeout,
			IdleTTL:       cfg.Dialog.IdleTTL,
			MaxOpen:       cfg.Dialog.MaxOpen,
		},
	)
	dialogService.OnComplete(func(ctx context.Context, kind domain.ActionKind, out frontdesk.Outcome) {
		logger.InfoContext(ctx, "front desk action completed",
			slog.String("action", kind.String()),
			slog.String("room", out.Room.Number),
			slog.String("status", out.Room.Status.String()),
		)
	})

	health.WithGauge("open_dialogs", dialogService.OpenCount)

	onboardingService := onboardingsvc.NewService(
		logger, clock, draftRepo, provisioner, hotelRepo, auditRepo, txm,
	)

	validator := auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.Audience, cfg.Auth.Leeway)

	// HTTP.
	api := http.NewServeMux()
	rest.Handlers{
		Board:      rest.NewBoardHandler(boardService, logger),
		Dialogs:    rest.NewDialogHandler(dialogService, logger),
		Hotel:      rest.NewHotelConfigHandler(hotelService, cfg.Storage.MaxLogoBytes(), logger),
		Onboarding: rest.NewOnboardingHandler(onboardingService, logger),
	}.Register(api)

	chain := middleware.Stack{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.TerminalID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator),
	}
	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)
		stop = limiter.Stop
		chain = chain.Use(limiter.Limit(cfg.RateLimit.PerMinute))
	}
	chain = chain.Use(loader.Middleware(folioRepo))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("/api/", chain.Then(api))

	return &stack{handler: mux, dialogs: dialogService, stop: stop}
}

// newHotelConfigService builds the configuration service. Logo uploads stay
// disabled unless object storage is configured.
func newHotelConfigService(
	logger *slog.Logger,
	clock clockwork.Clock,
	cfg config.StorageConfig,
	hotels *hotel.Repo,
	auditRepo *audit.Repo,
	txm *postgres.TxManager,
) *hotelconfig.Service {
	if !cfg.Enabled() {
		logger.Warn("object storage not configured; logo uploads disabled")
		return hotelconfig.NewService(logger, clock, hotels, auditRepo, txm, nil, cfg.MaxLogoBytes())
	}
	return hotelconfig.NewService(logger, clock, hotels, auditRepo, txm, storage.New(logger, cfg), cfg.MaxLogoBytes())
}
