// costo-promedio calcula el precio promedio ponderado tras una compra.
//
// Uso: costo-promedio <precio_unitario> <monto_compra>
// Imprime el promedio con dos decimales terminado en \r\n.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/costo-promedio/internal/application/pricing"
	"github.com/jhoicas/costo-promedio/internal/domain/inventory"
	"github.com/jhoicas/costo-promedio/internal/interfaces/cli"
	"github.com/jhoicas/costo-promedio/pkg/config"
	"github.com/jhoicas/costo-promedio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(cli.ExitError)
	}

	level := cfg.Log.Level
	if level == "" {
		level = "warn"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level, Out: os.Stderr})

	base := inventory.BaseInventory{UnitPrice: cfg.Base.UnitPrice, Quantity: cfg.Base.Quantity}
	uc := pricing.NewPriceAveragerUseCase(base, log)

	os.Exit(cli.Run(context.Background(), uc, os.Args[1:], os.Stdout, os.Stderr))
}
