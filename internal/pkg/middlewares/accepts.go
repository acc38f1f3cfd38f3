package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/soil-insights/soilboard/internal/pkg/apperr"
)

func Accepts(mimes ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Accepts(mimes...) != "" {
			return ctx.Next()
		}

		return apperr.ErrNotAcceptable.Msg("invalid or missing Accept header. Accepts: %s", strings.Join(mimes, ", "))
	}
}

var AcceptsJSON = Accepts(fiber.MIMEApplicationJSON)
