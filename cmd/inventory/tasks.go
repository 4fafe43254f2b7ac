package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/stock-ledger/internal/application/seed"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/jwt"
)

var errNeedsPostgres = errors.New("el comando requiere STORE_DRIVER=postgres")

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "administra el esquema de PostgreSQL",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "aplica las migraciones pendientes",
				Action: func(c *cli.Context) error {
					cfg, log, err := loadConfig()
					if err != nil {
						return err
					}
					if cfg.Store.Driver != config.StoreDriverPostgres {
						return errNeedsPostgres
					}
					if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
						return err
					}
					log.Info().Msg("migraciones aplicadas")
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "revierte todas las migraciones (borra los datos)",
				Action: func(c *cli.Context) error {
					cfg, log, err := loadConfig()
					if err != nil {
						return err
					}
					if cfg.Store.Driver != config.StoreDriverPostgres {
						return errNeedsPostgres
					}
					if err := postgres.MigrateDown(cfg.DB.ConnectionString()); err != nil {
						return err
					}
					log.Info().Msg("migraciones revertidas")
					return nil
				},
			},
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "carga productos, ubicaciones y movimientos de ejemplo",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "reset", Usage: "borra y recrea el esquema antes de sembrar"},
		},
		Action: func(c *cli.Context) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store.Driver != config.StoreDriverPostgres {
				return errNeedsPostgres
			}
			dsn := cfg.DB.ConnectionString()
			if c.Bool("reset") {
				if err := postgres.MigrateDown(dsn); err != nil {
					return err
				}
			}
			if err := postgres.MigrateUp(dsn); err != nil {
				return err
			}

			st, err := openStorage(c.Context, cfg)
			if err != nil {
				return err
			}
			defer st.close()

			res, err := seed.Run(c.Context, st.tx)
			if err != nil {
				return err
			}
			if res.Skipped {
				log.Info().Msg("ya existen productos; no se cargaron datos de ejemplo")
				return nil
			}
			log.Info().
				Int("products", res.Products).
				Int("locations", res.Locations).
				Int("movements", res.Movements).
				Msg("datos de ejemplo cargados")
			return nil
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "emite un JWT para las rutas de escritura",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Value: "cli", Usage: "sujeto del token"},
			&cli.StringFlag{Name: "role", Value: "admin", Usage: "admin | operator"},
		},
		Action: func(c *cli.Context) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			tok, err := jwt.Generate(cfg.JWT.Secret, c.String("subject"), c.String("role"), cfg.JWT.Issuer, cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, tok)
			return nil
		},
	}
}
