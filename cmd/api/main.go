package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Backoffice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/scheduler"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/storage"
	infraxlsx "github.com/jhoicas/Backoffice-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/currency"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if cfg.DB.MigrateOnStart {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché de analítica: Redis si está configurado, si no memoria del proceso.
	var resultCache ports.ResultCache
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, se usa caché en memoria")
			resultCache = cache.NewMemoryCache()
		} else {
			defer client.Close()
			resultCache = cache.NewRedisCache(client)
		}
	} else {
		resultCache = cache.NewMemoryCache()
	}

	var objectStorage ports.ObjectStorage
	if cfg.Storage.Enabled() {
		s3, err := storage.NewS3Storage(ctx, cfg.Storage, log)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento S3")
		}
		objectStorage = s3
	}

	userRepo := postgres.NewUserRepository(pool)
	salesPersonRepo := postgres.NewSalesPersonRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	followUpRepo := postgres.NewFollowUpRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleEntryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	userUC := usecase.NewUserUseCase(userRepo)
	salesPersonUC := usecase.NewSalesPersonUseCase(salesPersonRepo, resultCache, log)
	customerUC := usecase.NewCustomerUseCase(customerRepo, followUpRepo, salesPersonRepo, resultCache, log)
	productUC := usecase.NewProductUseCase(productRepo, brandRepo, resultCache, log)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, resultCache, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	money := currency.New(cfg.Report.CurrencySymbol, cfg.Report.Locale)
	analyticsUC := appanalytics.NewAnalyticsUseCase(appanalytics.Deps{
		Customers:         customerRepo,
		SalesPersons:      salesPersonRepo,
		Products:          productRepo,
		Sales:             saleRepo,
		Cache:             resultCache,
		CacheTTL:          time.Duration(cfg.Redis.TTLSeconds) * time.Second,
		Exporter:          infraxlsx.NewExporter(money),
		Renderer:          infrapdf.NewMarotoReportGenerator(cfg.App.Name, money),
		Storage:           objectStorage,
		StoragePrefix:     cfg.Storage.Prefix,
		HiddenSalesPerson: cfg.Report.HiddenSalesPerson,
		Logger:            log.Component("analytics"),
	})

	if cfg.Scheduler.Enabled {
		if objectStorage == nil {
			log.Warn().Msg("scheduler habilitado sin S3_BUCKET, el archivo nocturno queda desactivado")
		} else if err := scheduler.NewReportScheduler(analyticsUC, cfg.Scheduler.ReportCron, log).Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("scheduler")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		SalesPersonUC: salesPersonUC,
		CustomerUC:    customerUC,
		ProductUC:     productUC,
		SaleUC:        saleUC,
		AnalyticsUC:   analyticsUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
