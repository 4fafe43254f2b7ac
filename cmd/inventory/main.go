// Command inventory expone el ledger de inventario por HTTP y ofrece tareas de
// operación: migraciones, datos de ejemplo y emisión de tokens.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "inventory",
		Usage: "ledger de movimientos de inventario por ubicación",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
			tokenCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
