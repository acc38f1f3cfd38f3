package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/soil-insights/soilboard/cmd/app/cli/assets"
	"github.com/soil-insights/soilboard/cmd/app/cli/tables"
	"github.com/soil-insights/soilboard/cmd/app/server"
	"github.com/soil-insights/soilboard/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "soilboard",
		Description: "Soil moisture prediction dashboard. Serves model metrics, clustering scores and chart images for surface, root zone and total soil moisture. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			tables.Command(),
			assets.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
