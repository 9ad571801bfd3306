// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"gorm.io/gorm"

	adapthttp "github.com/ocastro/autoglass-mis/internal/adapters/http"
	"github.com/ocastro/autoglass-mis/internal/adapters/http/handlers"
	"github.com/ocastro/autoglass-mis/internal/adapters/http/middleware"
	"github.com/ocastro/autoglass-mis/internal/adapters/notify"
	"github.com/ocastro/autoglass-mis/internal/adapters/storage"
	"github.com/ocastro/autoglass-mis/internal/app"
	"github.com/ocastro/autoglass-mis/internal/platform/config"
	"github.com/ocastro/autoglass-mis/internal/platform/health"
	"github.com/ocastro/autoglass-mis/internal/platform/httpclient"
	"github.com/ocastro/autoglass-mis/internal/platform/logging"
	"github.com/ocastro/autoglass-mis/internal/platform/telemetry"
	"github.com/ocastro/autoglass-mis/internal/platform/token"
	"github.com/ocastro/autoglass-mis/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	alertClientName = "stock-alerts"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	db := do.MustInvoke[*gorm.DB](injector)
	registry.Register(storage.NewHealthChecker(db))
	if cfg.Alerts.Enabled {
		registry.Register(do.MustInvoke[*httpclient.Client](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Persistence.
	do.Provide(injector, func(_ do.Injector) (*gorm.DB, error) {
		db, err := storage.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := storage.Migrate(db); err != nil {
			return nil, err
		}
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserRepository, error) {
		return storage.NewUserRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ProductRepository, error) {
		return storage.NewProductRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.CustomerRepository, error) {
		return storage.NewCustomerRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.SupplierRepository, error) {
		return storage.NewSupplierRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.SaleRepository, error) {
		return storage.NewSaleRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.PurchaseOrderRepository, error) {
		return storage.NewPurchaseOrderRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ReportRepository, error) {
		return storage.NewReportRepository(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Outbound alert delivery. The notifier stays nil when alerts are
	// disabled; the sales service treats that as "no alerts".
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Alerts.Client, alertClientName, metrics, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.StockAlertNotifier, error) {
		if !cfg.Alerts.Enabled {
			return nil, nil
		}
		client := do.MustInvoke[*httpclient.Client](i)
		return notify.NewWebhookNotifier(client, logger), nil
	})

	// Tokens.
	do.Provide(injector, func(_ do.Injector) (*token.Manager, error) {
		return token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		users := do.MustInvoke[ports.UserRepository](i)
		tokens := do.MustInvoke[*token.Manager](i)
		return app.NewAuthService(users, tokens, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		users := do.MustInvoke[ports.UserRepository](i)
		return app.NewUserService(users, cfg.Auth.BcryptCost, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.InventoryService, error) {
		products := do.MustInvoke[ports.ProductRepository](i)
		return app.NewInventoryService(products, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.CustomerService, error) {
		customers := do.MustInvoke[ports.CustomerRepository](i)
		return app.NewCustomerService(customers, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.SupplierService, error) {
		suppliers := do.MustInvoke[ports.SupplierRepository](i)
		return app.NewSupplierService(suppliers, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.SalesService, error) {
		saleRepo := do.MustInvoke[ports.SaleRepository](i)
		products := do.MustInvoke[ports.ProductRepository](i)
		notifier := do.MustInvoke[ports.StockAlertNotifier](i)
		return app.NewSalesService(saleRepo, products, notifier, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.PurchasingService, error) {
		orders := do.MustInvoke[ports.PurchaseOrderRepository](i)
		return app.NewPurchasingService(orders, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ReportService, error) {
		reports := do.MustInvoke[ports.ReportRepository](i)
		saleRepo := do.MustInvoke[ports.SaleRepository](i)
		orders := do.MustInvoke[ports.PurchaseOrderRepository](i)
		suppliers := do.MustInvoke[ports.SupplierRepository](i)
		products := do.MustInvoke[ports.ProductRepository](i)
		return app.NewReportService(reports, saleRepo, orders, suppliers, products, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP surface.
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		tokens := do.MustInvoke[*token.Manager](i)

		h := adapthttp.Handlers{
			Auth:          handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i)),
			Product:       handlers.NewProductHandler(do.MustInvoke[ports.InventoryService](i)),
			Customer:      handlers.NewCustomerHandler(do.MustInvoke[ports.CustomerService](i)),
			Supplier:      handlers.NewSupplierHandler(do.MustInvoke[ports.SupplierService](i)),
			Sale:          handlers.NewSaleHandler(do.MustInvoke[ports.SalesService](i)),
			PurchaseOrder: handlers.NewPurchaseOrderHandler(do.MustInvoke[ports.PurchasingService](i)),
			User:          handlers.NewUserHandler(do.MustInvoke[ports.UserService](i)),
			Report:        handlers.NewReportHandler(do.MustInvoke[ports.ReportService](i)),
			Export:        handlers.NewExportHandler(do.MustInvoke[ports.ReportService](i)),
			Health:        handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}

		return adapthttp.NewRouter(h, tokens, middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		)), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
