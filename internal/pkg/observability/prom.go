package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "soilboard"
)

var (
	PageRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "page", "render_duration_seconds"),
		Help:    "Duration of page rendering in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"route"})
	MissingAssets = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "render", "missing_assets_total"),
		Help: "Number of image references that could not be loaded while rendering",
	}, []string{"route"})
	TabRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "render", "tab_renders_total"),
		Help: "Number of tab contents rendered, by tab group",
	}, []string{"route", "group"})
	ChartCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "render", "chart_cache_lookups_total"),
		Help: "Chart cache lookups by result",
	}, []string{"result"})
)
