package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/soil-insights/soilboard/internal/app"
	"github.com/soil-insights/soilboard/internal/app/appcontext"
)

func Start(ctx context.Context, module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(ctx)
}

// Deps starts the application graph and returns the dependencies T asks for.
func Deps[T any](ctx context.Context) (T, error) {
	var deps T
	err := Start(ctx, fx.Populate(&deps))
	return deps, err
}
