package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-faster/errors"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shopapi/internal/config"
	"shopapi/internal/database"
	"shopapi/internal/database/migration"
	handlers "shopapi/internal/http/handler"
	"shopapi/internal/http/middleware"
	"shopapi/internal/logger"
	"shopapi/internal/mailer"
	"shopapi/internal/otel"
	"shopapi/internal/repository/postgres"
	"shopapi/internal/security"
	"shopapi/internal/service"
	"shopapi/internal/storage"
)

const (
	couponIndexSize = 10_000
	shutdownTimeout = 10 * time.Second
)

// @title Shop API
// @version 1.0
// @description E-commerce backend: catalog, carts, coupons and orders.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shopapi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lg, err := logger.New(cfg.LogLevel, cfg.Location())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	shutdownTracing, err := otel.Init(ctx, lg)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			lg.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, lg, cfg.Database.Host); err != nil {
		return err
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	smtp, err := mailer.New(cfg.SMTP, lg)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}
	mail := mailer.NewAsync(smtp, lg)
	defer mail.Wait()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := service.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	// Repositories
	users := postgres.NewUserPostgres(db)
	categories := postgres.NewCategoryPostgres(db)
	subCategories := postgres.NewSubCategoryPostgres(db)
	brands := postgres.NewBrandPostgres(db)
	suppliers := postgres.NewSupplierPostgres(db)
	coupons := postgres.NewCouponPostgres(db)
	taxes := postgres.NewTaxPostgres(db)
	products := postgres.NewProductPostgres(db)
	carts := postgres.NewCartPostgres(db)
	orders := postgres.NewOrderPostgres(db)

	couponIndex := service.NewCouponIndex(couponIndexSize)
	if err := couponIndex.Load(ctx, coupons); err != nil {
		lg.Warn("coupon_index_load_failed", zap.Error(err))
	}

	tokens := security.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	svcs := handlers.Services{
		Auth:        service.NewAuthService(users, tokens, mail, cfg.OTPTTL, lg),
		Users:       service.NewUserService(users),
		Categories:  service.NewCategoryService(categories),
		SubCategory: service.NewSubCategoryService(subCategories, categories),
		Brands:      service.NewBrandService(brands),
		Suppliers:   service.NewSupplierService(suppliers),
		Coupons:     service.NewCouponService(coupons, couponIndex),
		Tax:         service.NewTaxService(taxes),
		Products: service.NewProductService(service.ProductDeps{
			Products:      products,
			Categories:    categories,
			SubCategories: subCategories,
			Brands:        brands,
			Suppliers:     suppliers,
			Store:         objStore,
		}, lg),
		Cart: service.NewCartService(carts, products, coupons, couponIndex, metrics),
		Orders: service.NewOrderService(service.OrderDeps{
			Orders:   orders,
			Carts:    carts,
			Products: products,
			Coupons:  coupons,
			Users:    users,
			Tax:      taxes,
			Metrics:  metrics,
		}, lg),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(lg),
		BodyLimit:    10 * 1024 * 1024,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(lg))
	app.Use(httpMetrics.Handler())
	app.Use(middleware.RateLimit(cfg.RateLimit.Max, cfg.RateLimit.Window))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", swaggerHandler())

	handlers.RegisterRoutes(app, db, tokens, svcs)

	addr := ":" + cfg.Port

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("server_started", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		lg.Info("server_stopping")
		return app.ShutdownWithContext(sctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	lg.Info("server_stopped")
	return nil
}
