package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soil-insights/soilboard/internal/pkg/flog"
)

// LocalsKeyRequestID is the ctx.Locals key the request id is stored under.
const LocalsKeyRequestID = "requestId"

// RequestID copies the request id generated by the logger chain into ctx.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(LocalsKeyRequestID, id.String())
		}
		return c.Next()
	}
}
