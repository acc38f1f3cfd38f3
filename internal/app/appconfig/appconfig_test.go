package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soil-insights/soilboard/internal/app/appcontext"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, "localhost:9010", conf.ServiceAddress)
	assert.Equal(t, "images", conf.ImageRoot)
	assert.Equal(t, "inline", conf.AssetMode)
	assert.Equal(t, time.Hour, conf.ChartCacheTTL)
	assert.Equal(t, TracingExporters{TracingExporterOTLP}, conf.TracingExporters)
	assert.Equal(t, appcontext.EnvCLI, conf.AppContext.Env)
}

func TestParseEnvironment(t *testing.T) {
	t.Setenv("SOILBOARD_IMAGE_ROOT", "/srv/images")
	t.Setenv("SOILBOARD_ASSET_MODE", "link")
	t.Setenv("SOILBOARD_TRACING_EXPORTERS", "stdout, otlp,stdout")

	conf, err := Parse(appcontext.Declare(appcontext.EnvServer))
	require.NoError(t, err)

	assert.Equal(t, "/srv/images", conf.ImageRoot)
	assert.Equal(t, "link", conf.AssetMode)
	assert.Equal(t, TracingExporters{"stdout", "otlp"}, conf.TracingExporters)
}

func TestTracingExportersDecode(t *testing.T) {
	var e TracingExporters
	assert.Error(t, e.Decode("jaeger"))
	assert.NoError(t, e.Decode(""))
	assert.Empty(t, e)
}
