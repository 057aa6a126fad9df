package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/costo-promedio/internal/application/pricing"
	"github.com/jhoicas/costo-promedio/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PriceAverager *pricing.PriceAveragerUseCase
	Logger        *logger.Logger
	AppName       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestIDMiddleware(deps.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	pricingGroup := api.Group("/pricing")
	pricingHandler := NewPricingHandler(deps.PriceAverager)
	pricingGroup.Get("/average", pricingHandler.GetAverage)
	pricingGroup.Post("/average", pricingHandler.PostAverage)
}
