package tables

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/soil-insights/soilboard/internal/dashboard"
	"github.com/soil-insights/soilboard/internal/model"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "print every metric table of a route to the terminal",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "route",
				Aliases: []string{"r"},
				Usage:   "route to print: home, surface, root_zone, total or clusters",
				Value:   string(model.RouteHome),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable highlighting of the best and worst cells",
			},
		},
		Action: func(c *cli.Context) error {
			route, ok := model.ParseRoute(c.String("route"))
			if !ok {
				return errors.Errorf("unknown route %q", c.String("route"))
			}
			page, ok := dashboard.Build(route)
			if !ok {
				return errors.Errorf("route %q has no page", route)
			}
			return Write(os.Stdout, page, !c.Bool("no-color"))
		},
	}
}
