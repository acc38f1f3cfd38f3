package controller

import (
	"go.uber.org/fx"

	controllermeta "github.com/soil-insights/soilboard/internal/controller/meta"
	controllerv1 "github.com/soil-insights/soilboard/internal/controller/v1"
	controllerweb "github.com/soil-insights/soilboard/internal/controller/web"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (meta): registered first so that /api/_ never falls through to pages
		controllermeta.Module(),

		// Controllers (v1)
		controllerv1.Module(),

		// Controllers (web)
		controllerweb.Module(),
	)
}
