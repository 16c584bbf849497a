package middleware

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AccessLogMiddleware(output io.Writer) fiber.Handler
		RecoverMiddleware() fiber.Handler
	}

	middleware struct {
		allowedOrigin string
		logger        *zap.Logger
	}
)

func NewMiddleware(allowedOrigin string, logger *zap.Logger) Middleware {
	return &middleware{
		allowedOrigin: allowedOrigin,
		logger:        logger,
	}
}

// CORSMiddleware allows the single configured frontend origin with
// credentials. Every method is allowed and requested headers are echoed back.
func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: strings.TrimSuffix(m.allowedOrigin, "/"),
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodHead,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodPatch,
			fiber.MethodOptions,
		}, ","),
		AllowHeaders:     "",
		AllowCredentials: true,
	})
}

func (m *middleware) AccessLogMiddleware(output io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     output,
	})
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			m.logger.Error("Recovered from panic",
				zap.Any("panic", e),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()))
		},
	})
}
