package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "quote_service/docs" // registers the swagger spec
	"quote_service/internal/adapter/http/handlers"
	"quote_service/internal/adapter/http/middleware"
	"quote_service/internal/adapter/persistence/repository"
	"quote_service/internal/infrastructure/config"
	"quote_service/internal/infrastructure/metrics"
	"quote_service/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig is everything NewRouter mounts.
type RouterConfig struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	QuoteHandler *handlers.QuoteHandler
	Production   bool
	CORSOrigins  []string
	MaxBodyBytes int64
	MetricsPath  string
	Swagger      bool
}

// NewRouter builds the engine with the full middleware chain. An empty
// MetricsPath leaves /metrics unmounted.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logging(logger, "/v1"+PathPing, cfg.MetricsPath),
		middleware.Metrics(cfg.Metrics),
		middleware.SecurityHeaders(cfg.Production),
		middleware.CORS(cfg.CORSOrigins),
		middleware.MaxBodySize(cfg.MaxBodyBytes),
	)

	if cfg.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.MetricsPath != "" && cfg.Metrics != nil {
		router.GET(cfg.MetricsPath, gin.WrapH(cfg.Metrics.Handler()))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(router, cfg.QuoteHandler)

	return router
}

// Run wires the configured backends, serves HTTP and blocks until SIGINT or
// SIGTERM, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	gin.SetMode(gin.ReleaseMode)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	store, closeStore, err := newQuoteStore(ctx, cfg.Storage, m)
	if err != nil {
		return fmt.Errorf("initializing quote store: %w", err)
	}
	defer closeStore()

	locker, closeLocker, err := newLocker(ctx, cfg.Lock, logger)
	if err != nil {
		return fmt.Errorf("initializing reference lock: %w", err)
	}
	defer closeLocker()

	notifier := newNotifier(cfg.Email, logger)

	quoteUseCase := usecase.NewQuoteUseCase(
		repository.NewQuoteRepository(store),
		notifier,
		locker,
		usecase.WithMetrics(m),
		usecase.WithLockTimeout(cfg.Lock.Timeout),
	)

	routerCfg := RouterConfig{
		Logger:       logger,
		Metrics:      m,
		QuoteHandler: handlers.NewQuoteHandler(quoteUseCase),
		Production:   cfg.App.Environment == "prod",
		CORSOrigins:  cfg.CORS.Origins,
		MaxBodyBytes: cfg.Server.MaxRequestSize,
		Swagger:      cfg.Swagger.Enabled,
	}
	if cfg.Metrics.Enabled {
		routerCfg.MetricsPath = cfg.Metrics.Path
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewRouter(routerCfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.String("storage", cfg.Storage.Driver),
			slog.String("lock", cfg.Lock.Driver),
			slog.String("email", cfg.Email.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("http server error: %w", err)
		}
		close(serverErr)
	}()

	return waitForShutdown(ctx, logger, srv, serverErr, cfg.Server.ShutdownTimeout)
}

func waitForShutdown(ctx context.Context, logger *slog.Logger, srv *http.Server, serverErr <-chan error, timeout time.Duration) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}
