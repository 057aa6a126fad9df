package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/costo-promedio/internal/application/pricing"
	"github.com/jhoicas/costo-promedio/internal/domain/inventory"
	httpRouter "github.com/jhoicas/costo-promedio/internal/interfaces/http"
	"github.com/jhoicas/costo-promedio/pkg/config"
	"github.com/jhoicas/costo-promedio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	level := cfg.Log.Level
	if level == "" {
		level = "info"
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: level,
		Out:   os.Stdout,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("base_unit_price", cfg.Base.UnitPrice.String()).
		Int64("base_quantity", cfg.Base.Quantity).
		Msg("iniciando aplicación")

	base := inventory.BaseInventory{UnitPrice: cfg.Base.UnitPrice, Quantity: cfg.Base.Quantity}
	priceAveragerUC := pricing.NewPriceAveragerUseCase(base, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		PriceAverager: priceAveragerUC,
		Logger:        log,
		AppName:       cfg.App.Name,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
