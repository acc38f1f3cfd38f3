package assets

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/soil-insights/soilboard/cmd/app/cli"
	"github.com/soil-insights/soilboard/internal/service"
)

type CommandDeps struct {
	fx.In

	AssetAuditService *service.AssetAudit
}

var ErrMissingAssets = errors.New("image references are missing")

func Command() *cli.Command {
	return &cli.Command{
		Name:  "assets",
		Usage: "audit every image reference of every route against the image root",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit with a non-zero status if any image is missing",
			},
		},
		Action: func(c *cli.Context) error {
			deps, err := cliapp.Deps[CommandDeps](c.Context)
			if err != nil {
				return err
			}
			return run(c, deps)
		},
	}
}

func run(c *cli.Context, deps CommandDeps) error {
	res, err := deps.AssetAuditService.Run(c.Context)
	if err != nil {
		return errors.Wrap(err, "failed to audit assets")
	}

	if len(res.Missing) > 0 {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"Route", "Path", "Error"})
		data := make([][]string, 0, len(res.Missing))
		for _, m := range res.Missing {
			data = append(data, []string{string(m.Route), m.Path, m.Err})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	summary := color.New(color.FgGreen).SprintfFunc()
	if len(res.Missing) > 0 {
		summary = color.New(color.FgYellow).SprintfFunc()
	}
	fmt.Println(summary("%d image references checked, %d missing", res.Checked, len(res.Missing)))

	if c.Bool("strict") && len(res.Missing) > 0 {
		return cli.Exit(ErrMissingAssets.Error(), 1)
	}
	return nil
}
