package server

import (
	"go.uber.org/fx"

	"github.com/soil-insights/soilboard/internal/server/httpserver"
	"github.com/soil-insights/soilboard/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
