package render

import (
	"bytes"
	"html/template"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/zeebo/xxh3"

	"github.com/soil-insights/soilboard/internal/pkg/cache"
	"github.com/soil-insights/soilboard/internal/pkg/observability"
)

// ChartCache memoises rendered chart SVG. A chart is a pure function of its spec, labels
// and values, so the key is a hash of exactly those.
type ChartCache struct {
	set *cache.Set[template.HTML]
}

func NewChartCache(ttl time.Duration) *ChartCache {
	return &ChartCache{set: cache.NewSet[template.HTML]("chart", ttl)}
}

func (c *ChartCache) Len() int {
	if c == nil {
		return 0
	}
	return c.set.Count()
}

func (c *ChartCache) Flush() {
	if c != nil {
		c.set.Flush()
	}
}

type chartKey struct {
	Spec   ChartSpec
	Labels []string
	Values []float64
}

func chartCacheKey(spec ChartSpec, labels []string, values []float64) (string, error) {
	b, err := json.Marshal(chartKey{Spec: spec, Labels: labels, Values: values})
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxh3.Hash(b), 36), nil
}

// chart renders one chart, reusing the cached SVG when there is one. A rejected axis
// hint is reported on every render, cached or not.
func (p *pass) chart(spec ChartSpec, t Table) (template.HTML, error) {
	r := p.r
	labels, values := t.Plotted(spec.Column)

	if _, _, fallback := yDomain(spec.Kind, values, spec.Axis); fallback {
		p.l.Warn().
			Str("evt.name", "render.chart.axis_fallback").
			Str("chart", spec.Title).
			Float64("hintMin", spec.Axis.Min).
			Float64("hintMax", spec.Axis.Max).
			Msg("axis hint does not contain every plotted value, using the data extent")
	}

	draw := func() (template.HTML, error) {
		view, _ := buildChartView(spec, labels, values)
		var buf bytes.Buffer
		if err := r.tmpl.ExecuteTemplate(&buf, "chart", view); err != nil {
			return "", err
		}
		return template.HTML(buf.String()), nil
	}

	if r.charts == nil {
		return draw()
	}

	key, err := chartCacheKey(spec, labels, values)
	if err != nil {
		return draw()
	}
	svg, calculated, err := r.charts.set.MutexGetSet(key, draw)
	if err != nil {
		return "", err
	}
	if calculated {
		observability.ChartCacheLookups.WithLabelValues("miss").Inc()
	} else {
		observability.ChartCacheLookups.WithLabelValues("hit").Inc()
	}
	return svg, nil
}
