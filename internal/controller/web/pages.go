package web

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/pkg/cachectrl"
	"github.com/soil-insights/soilboard/internal/render"
	"github.com/soil-insights/soilboard/internal/server/svr"
	"github.com/soil-insights/soilboard/internal/service"
)

type Pages struct {
	fx.In

	ReportService *service.Report
}

// RegisterPages mounts one handler per dashboard route. The route is fixed at
// registration; only the tab selection comes from the request.
func RegisterPages(pages *svr.Pages, c Pages) {
	for _, info := range model.Routes {
		pages.Get(info.Path, c.Page(info.Route))
	}
}

func (c Pages) Page(route model.Route) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		body, err := c.ReportService.Page(ctx.UserContext(), route, render.SelectionFromQuery(ctx.Queries()))
		if err != nil {
			return err
		}

		// images are probed on every render, so pages must never be cached
		cachectrl.OptOut(ctx)
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return ctx.Send(body)
	}
}
