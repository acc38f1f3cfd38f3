package appconfig

import (
	"time"

	"github.com/soil-insights/soilboard/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving dashboard requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// LogFileMaxSizeMB is the size a log file may reach before it gets rotated.
	LogFileMaxSizeMB int `split_words:"true" default:"100"`

	// LogFileMaxBackups is the number of rotated log files to keep.
	LogFileMaxBackups int `split_words:"true" default:"5"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: otlp, stdout (for debug).
	TracingExporters TracingExporters `split_words:"true" default:"otlp"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// ImageRoot is the directory holding one sub-directory of chart images per topic.
	ImageRoot string `required:"true" split_words:"true" default:"images"`

	// AssetMode decides how images reach the browser.
	// Valid values are: inline (embedded as data URIs), link (served under AssetURLPrefix).
	AssetMode string `required:"true" split_words:"true" default:"inline"`

	// AssetURLPrefix is the path images are served under when AssetMode is link.
	AssetURLPrefix string `split_words:"true" default:"/assets"`

	// ChartCacheTTL is how long rendered chart SVGs are kept in memory.
	ChartCacheTTL time.Duration `required:"true" split_words:"true" default:"1h"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
