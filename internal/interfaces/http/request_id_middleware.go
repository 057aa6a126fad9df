package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/costo-promedio/pkg/logger"
)

// HeaderRequestID cabecera con el identificador de la petición.
const HeaderRequestID = "X-Request-ID"

// LocalsRequestID clave en c.Locals.
const LocalsRequestID = "request_id"

// RequestIDMiddleware respeta X-Request-ID entrante o genera un UUID, y registra cada petición.
func RequestIDMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Locals(LocalsRequestID, id)
		c.Set(HeaderRequestID, id)

		start := time.Now()
		err := c.Next()
		log.Info().
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", responseStatus(c, err)).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// GetRequestID devuelve el request id del contexto (vacío si no pasó por el middleware).
func GetRequestID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalsRequestID).(string)
	return v
}

// responseStatus el ErrorHandler de Fiber todavía no corrió: el status final sale del error.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
