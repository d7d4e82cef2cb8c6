package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"net/netip"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "tireshop/internal/app"
	"tireshop/internal/entities"
	"tireshop/internal/handlers/rest/admin_login_post"
	"tireshop/internal/handlers/rest/admin_order_status_patch"
	"tireshop/internal/handlers/rest/admin_orders_get"
	"tireshop/internal/handlers/rest/admin_tire_active_patch"
	"tireshop/internal/handlers/rest/admin_tire_post"
	"tireshop/internal/handlers/rest/admin_tire_put"
	"tireshop/internal/handlers/rest/admin_tires_get"
	"tireshop/internal/handlers/rest/health_get"
	"tireshop/internal/handlers/rest/healthcheck_head"
	"tireshop/internal/handlers/rest/order_post"
	"tireshop/internal/handlers/rest/promotion_fees_get"
	"tireshop/internal/handlers/rest/promotions_get"
	"tireshop/internal/handlers/rest/tire_get"
	"tireshop/internal/handlers/rest/tires_get"
	"tireshop/internal/pkg/config"
	"tireshop/internal/pkg/dotenv"
	"tireshop/internal/pkg/kafka"
	metrics_system "tireshop/internal/pkg/metrics"
	"tireshop/internal/pkg/middlewares/admin_auth"
	"tireshop/internal/pkg/middlewares/compress"
	"tireshop/internal/pkg/middlewares/cors"
	"tireshop/internal/pkg/middlewares/graceful_shutdown"
	"tireshop/internal/pkg/middlewares/metrics"
	"tireshop/internal/pkg/middlewares/rate_limiter"
	"tireshop/internal/pkg/middlewares/recoverer"
	"tireshop/internal/pkg/middlewares/request_id"
	"tireshop/internal/pkg/middlewares/timeout"
	"tireshop/internal/pkg/postgres"
	"tireshop/pkg/logger"
	"tireshop/pkg/logger/zap_adapter"
	"tireshop/pkg/token_bucket"
)

type eventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
	Close() error
}

func main() {
	envFileFound := false
	if _, err := os.Stat(".env"); err == nil {
		envFileFound = true
		if err := dotenv.Load(); err != nil {
			stdlog.Fatalf("failed to load .env file: %v", err)
		}
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("app", "tireshop"))

	mainLog.Info("starting tireshop application")
	if !envFileFound {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background() для graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	publisher, err := newEventPublisher(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	runLog.Info("background tasks started", logger.NewField("tasks", businessApp.BackgroundWorkers.Tasks()))

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	trustedProxies, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server, trustedProxies),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал, если pprof выключен
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func newEventPublisher(ctx context.Context, log logger.Logger, cfg *config.Kafka) (eventPublisher, error) {
	if !cfg.Enabled {
		log.Warn("kafka disabled, order events are not published")
		return kafka.NoopPublisher{}, nil
	}
	return kafka.NewProducer(ctx, log, cfg)
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
	trustedProxies []netip.Prefix,
) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(recoverer.Middleware(log))
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Use(compress.Middleware(brotli.DefaultCompression))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Querier)).Methods(http.MethodHead)

	health := health_get.New(log, app.Querier)
	router.Handle("/health", health).Methods(http.MethodGet)
	router.Handle("/api/health", health).Methods(http.MethodGet)

	clientLimit := rate_limiter.ClientMiddleware(log, cfg.ClientRateLimit, trustedProxies, app.ClientLimiter)

	// витрина
	router.Handle("/api/tires", tires_get.New(log, app.ServiceTire)).Methods(http.MethodGet)
	router.Handle("/api/tires/{id}", tire_get.New(log, app.ServiceTire)).Methods(http.MethodGet)
	router.Handle("/api/orders", clientLimit(order_post.New(log, app.ServiceOrder))).Methods(http.MethodPost)
	router.Handle("/api/promotions", promotions_get.New(log, app.ServicePromotion)).Methods(http.MethodGet)
	router.Handle("/api/promotions/fees", promotion_fees_get.New(log, app.ServicePromotion)).Methods(http.MethodGet)

	// логин регистрируется до подроутера, иначе его перехватит PathPrefix с авторизацией
	router.Handle("/api/admin/login", clientLimit(admin_login_post.New(log, app.ServiceAdmin))).Methods(http.MethodPost)

	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(admin_auth.Middleware(log, app.TokenManager))

	admin.Handle("/tires", admin_tires_get.New(log, app.ServiceTire)).Methods(http.MethodGet)
	admin.Handle("/tires", admin_tire_post.New(log, app.ServiceTire)).Methods(http.MethodPost)
	admin.Handle("/tires/{id}", admin_tire_put.New(log, app.ServiceTire)).Methods(http.MethodPut)
	admin.Handle("/tires/{id}/active", admin_tire_active_patch.New(log, app.ServiceTire)).Methods(http.MethodPatch)
	admin.Handle("/orders", admin_orders_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	admin.Handle("/orders/{id}/status", admin_order_status_patch.New(log, app.ServiceOrder)).Methods(http.MethodPatch)

	// preflight OPTIONS обрабатывается до роутера, у маршрутов нет метода OPTIONS
	return cors.Middleware(cfg.CORSAllowedOrigins)(router)
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
