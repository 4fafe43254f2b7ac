package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/urfave/cli/v2"

	appanalytics "github.com/jhoicas/stock-ledger/internal/application/analytics"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/application/seed"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/stock-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-ledger/internal/interfaces/http"
	"github.com/jhoicas/stock-ledger/pkg/config"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "levanta el API HTTP",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Usage: "aplicar migraciones antes de arrancar (postgres)"},
			&cli.BoolFlag{Name: "seed", Usage: "cargar datos de ejemplo si el catálogo está vacío"},
			&cli.StringFlag{Name: "docs", Value: "./docs/swagger.json", Usage: "ruta del swagger.json; vacío desactiva /docs"},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := c.Context
	if c.Bool("migrate") && cfg.Store.Driver == config.StoreDriverPostgres {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			return err
		}
		log.Info().Msg("migraciones aplicadas")
	}

	st, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	if c.Bool("seed") {
		res, err := seed.Run(ctx, st.tx)
		if err != nil {
			return err
		}
		log.Info().Bool("skipped", res.Skipped).Int("movements", res.Movements).Msg("datos de ejemplo")
	}

	var publisher ports.MovementEventPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled() {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := kp.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar publicador Kafka")
			}
		}()
		publisher = kp
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("eventos de movimientos habilitados")
	}

	productUC := usecase.NewProductUseCase(st.tx, st.products)
	locationUC := usecase.NewLocationUseCase(st.tx, st.locations)
	movementUC := inventory.NewMovementUseCase(st.tx, st.movements, publisher, log)
	reportUC := appanalytics.NewReportUseCase(st.products, st.locations, st.movements,
		infrapdf.NewMarotoReportGenerator(cfg.App.Name+" - Reporte de inventario"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		LocationUC:  locationUC,
		MovementUC:  movementUC,
		ReportUC:    reportUC,
		Logger:      log,
		ServiceName: cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		JWTSecret:   cfg.JWT.Secret,
	})

	// Swagger UI: http://localhost:<port>/docs (después del Router para pasar por requestid, log y recover)
	if docs := c.String("docs"); docs != "" {
		if _, err := os.Stat(docs); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: docs,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		} else {
			log.Warn().Str("path", docs).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
