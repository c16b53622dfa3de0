// seed prepara una base nueva: aplica migraciones, crea el administrador inicial
// y opcionalmente importa un CSV de seguimientos exportado de la planilla anterior.
//
// Uso:
//
//	go run ./cmd/seed -migrate -admin-email admin@empresa.com -admin-password secreto123
//	go run ./cmd/seed -csv seguimientos.csv -latin1
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/cache"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

func main() {
	migrate := flag.Bool("migrate", false, "aplicar migraciones antes de sembrar")
	adminEmail := flag.String("admin-email", "", "email del administrador inicial")
	adminPassword := flag.String("admin-password", "", "password del administrador inicial (mín. 8)")
	adminName := flag.String("admin-name", "Administrador", "nombre del administrador inicial")
	csvPath := flag.String("csv", "", "CSV de seguimientos a importar")
	latin1 := flag.Bool("latin1", false, "el CSV viene en ISO-8859-1 (exportado desde Excel)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	if *migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *adminEmail != "" {
		authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{Secret: cfg.JWT.Secret})
		created, err := authUC.EnsureAdmin(ctx, *adminEmail, *adminPassword, *adminName)
		if err != nil {
			log.Fatal().Err(err).Msg("crear administrador")
		}
		log.Info().Str("email", *adminEmail).Bool("created", created).Msg("administrador inicial")
	}

	if *csvPath == "" {
		return
	}
	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	rows, err := parseFollowUpCSV(r)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	// Con Redis configurado se invalida la caché de analítica de la API en marcha.
	var inv ports.CacheInvalidator
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, la caché expirará por TTL")
		} else {
			defer client.Close()
			inv = cache.NewRedisCache(client)
		}
	}

	spRepo := postgres.NewSalesPersonRepository(pool)
	imp := &importer{
		salesPersons: usecase.NewSalesPersonUseCase(spRepo, inv, log),
		customers: usecase.NewCustomerUseCase(
			postgres.NewCustomerRepository(pool), postgres.NewFollowUpRepository(pool), spRepo, inv, log,
		),
		log: log,
	}
	stats, err := imp.Run(ctx, rows)
	if err != nil {
		log.Fatal().Err(err).Msg("importar CSV")
	}
	log.Info().
		Int("rows", len(rows)).
		Int("salespersons", stats.SalesPersons).
		Int("customers", stats.Customers).
		Int("follow_ups", stats.FollowUps).
		Msg("importación terminada")
}
