package web

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/soil-insights/soilboard/internal/pkg/cachectrl"
	"github.com/soil-insights/soilboard/internal/pkg/middlewares"
	"github.com/soil-insights/soilboard/internal/render"
	"github.com/soil-insights/soilboard/internal/server/svr"
	"github.com/soil-insights/soilboard/internal/service"
)

type Fragments struct {
	fx.In

	ReportService *service.Report
}

func RegisterFragments(fragments *svr.Fragments, c Fragments) {
	fragments.Get("/:route/:group", middlewares.ValidateRouteAsParam, c.Fragment)
}

// Fragment renders a single tab group, as it appears on the full page under the
// same selection.
func (c Fragments) Fragment(ctx *fiber.Ctx) error {
	html, err := c.ReportService.Fragment(
		ctx.UserContext(),
		middlewares.RouteFrom(ctx),
		ctx.Params("group"),
		render.SelectionFromQuery(ctx.Queries()),
	)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(string(html))
}
