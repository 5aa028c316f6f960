package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const localLogger = "logger"

// RequestLogger registra método, ruta, status, latencia y usuario por petición.
// Propaga X-Request-ID (o genera uno) y deja un sublogger en c.Locals.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(fiber.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(fiber.HeaderXRequestID, reqID)
		reqLog := log.With().Str("request_id", reqID).Logger()
		c.Locals(localLogger, reqLog)

		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler de Fiber fije el status antes de registrar.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := reqLog.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			event = reqLog.Error()
		case status >= fiber.StatusBadRequest:
			event = reqLog.Warn()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}

// requestLogger devuelve el logger de la petición o uno nulo si no hay middleware.
func requestLogger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(localLogger).(zerolog.Logger); ok {
		return &l
	}
	nop := zerolog.Nop()
	return &nop
}
