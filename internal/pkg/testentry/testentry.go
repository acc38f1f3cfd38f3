package testentry

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/soil-insights/soilboard/internal/app"
	"github.com/soil-insights/soilboard/internal/app/appconfig"
	"github.com/soil-insights/soilboard/internal/app/appcontext"
)

// Config returns a configuration suitable for tests, serving images from imageRoot.
func Config(imageRoot string) *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			ServiceAddress:            "localhost:0",
			TrustedProxies:            []string{"127.0.0.1"},
			DevMode:                   true,
			ImageRoot:                 imageRoot,
			AssetMode:                 "inline",
			AssetURLPrefix:            "/assets",
			ChartCacheTTL:             time.Minute,
			HTTPServerShutdownTimeout: time.Second,
		},
		AppContext: appcontext.Declare(appcontext.EnvServer),
	}
}

// Populate starts the application graph with conf and fills targets. The graph is
// stopped when the test ends.
func Populate(t *testing.T, conf *appconfig.Config, targets ...any) {
	t.Helper()

	log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))

	opts := app.ConfiguredOptions(conf, fx.Populate(targets...))
	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts = append(opts, fx.NopLogger)

	fxApp := fxtest.New(t, opts...).RequireStart()
	t.Cleanup(fxApp.RequireStop)
}
