package middleware

import (
	"log/slog"
	"time"

	"foodcourt/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one structured line per request, tagged with the
// request id and the authenticated user when present.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := []any{
			slog.Int("status", c.Response().StatusCode()),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.Duration("latency", time.Since(start)),
		}
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			fields = append(fields, slog.String("request_id", rid))
		}
		if uid := UserID(c); uid != "" {
			fields = append(fields, slog.String("user_id", uid))
		}

		if err != nil {
			fields = append(fields, slog.String("error", err.Error()))
			observability.GlobalLogger.Error("request failed", fields...)
			return err
		}
		observability.GlobalLogger.Info("request processed", fields...)
		return nil
	}
}
