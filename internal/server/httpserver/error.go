package httpserver

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/soil-insights/soilboard/internal/pkg/apperr"
	"github.com/soil-insights/soilboard/internal/pkg/middlewares"
)

var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>{{.Status}} {{.Code}}</title></head>
<body style="font-family:sans-serif;margin:3rem">
<h1>{{.Status}}</h1>
<p>{{.Message}}</p>
<p><a href="/">Back to the dashboard</a></p>
</body></html>`))

func wantsJSON(ctx *fiber.Ctx) bool {
	return strings.HasPrefix(ctx.Path(), "/api/")
}

func handleCustomError(ctx *fiber.Ctx, e *apperr.AppError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	if !wantsJSON(ctx) {
		ctx.Status(e.StatusCode).Type("html", "utf-8")
		return errorPage.Execute(ctx.Response().BodyWriter(), fiber.Map{
			"Status":  e.StatusCode,
			"Code":    e.ErrorCode,
			"Message": e.Message,
		})
	}

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return handleCustomError(ctx, appErr)
	}

	// Default 500 statuscode
	re := *apperr.ErrInternalError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = fiberErr.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fiberErr.Message
		if fiberErr.Code == fiber.StatusNotFound {
			return handleCustomError(ctx, apperr.ErrNotFound.Msg("%s", fiberErr.Message))
		}
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if id, ok := ctx.Locals(middlewares.LocalsKeyRequestID).(string); ok {
			hub.Scope().SetTag("request_id", id)
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
