package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soil-insights/soilboard/internal/model"
)

var png = []byte("\x89PNG\r\n\x1a\n")

func newTestRenderer(t *testing.T, fsys fstest.MapFS, mode AssetMode) *Renderer {
	t.Helper()

	r, err := New(NewAssetStore(fsys, mode, "/assets"), NewChartCache(time.Minute))
	require.NoError(t, err)
	return r
}

func TestRenderMetricSectionHighlights(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	rows := model.MustMetricTable(
		model.M("XGBoost", 0.03359, 0.91766),
		model.M("Linear Regression", 0.07063, 0.63607),
	)
	section := MetricSection{
		ID:     "models",
		Title:  "Model Performance",
		Table:  MetricTable(rows, MetricFormatting("Model", 5)),
		Charts: []ChartSpec{{Kind: BarChart, Title: "R² Score", Column: FitColumn, ValueDecimals: 3}},
	}

	html, stats, err := r.RenderMetricSection(context.Background(), Request{}, section)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `<td class="best">0.03359</td>`)
	assert.Contains(t, out, `<td class="best">0.91766</td>`)
	assert.Contains(t, out, `<td>0.07063</td><td>0.63607</td>`)
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 1, stats.Charts)
}

func TestRenderMetricSectionEmpty(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	section := MetricSection{
		ID:     "empty",
		Table:  MetricTable(nil, MetricFormatting("Model", 4)),
		Charts: []ChartSpec{{Kind: BarChart, Column: FitColumn}},
	}

	html, _, err := r.RenderMetricSection(context.Background(), Request{}, section)
	require.NoError(t, err)
	assert.Contains(t, string(html), "No data")
	assert.NotContains(t, string(html), `class="best"`)
}

func TestRenderImageGalleryMissing(t *testing.T) {
	fsys := fstest.MapFS{
		"surface/shap_with_10year_Summary_Plot.png":   {Data: png},
		"surface/shap_with_10year_Waterfall_Plot.png": {Data: png},
		"surface/shap_monthly.png":                    {Data: png},
	}
	r := newTestRenderer(t, fsys, AssetInline)

	refs := []model.ImageRef{
		model.I("shap_with_10year_Summary_Plot.png", ""),
		model.I("shap_with_10year_Waterfall_Plot.png", ""),
		model.I("shap_yearly.png", "Yearly SHAP Values"),
		model.I("shap_monthly.png", "Monthly SHAP Values"),
	}

	html, stats, err := r.RenderImageGallery(context.Background(), model.TopicSurface, refs, 2)
	require.NoError(t, err)

	out := string(html)
	assert.Equal(t, 1, stats.MissingAssets)
	assert.Equal(t, 3, stats.Images)
	assert.Equal(t, []string{"Image not found: shap_yearly.png"}, stats.Warnings)
	assert.Equal(t, 1, strings.Count(out, `class="warning"`))
	assert.Equal(t, 3, strings.Count(out, "<img "))

	// the image after the missing one still renders
	warning := strings.Index(out, "Image not found: shap_yearly.png")
	monthly := strings.Index(out, "Monthly SHAP Values")
	assert.Greater(t, monthly, warning)
	assert.Contains(t, out[warning:], "data:image/png;base64,")
}

func TestRenderImageGalleryCounts(t *testing.T) {
	fsys := fstest.MapFS{
		"total/a.png": {Data: png},
		"total/c.png": {Data: png},
	}
	r := newTestRenderer(t, fsys, AssetLink)

	refs := []model.ImageRef{
		model.I("a.png", ""),
		model.I("b.png", ""),
		model.I("c.png", ""),
		model.I("d.png", ""),
		model.I("e.png", ""),
	}

	html, stats, err := r.RenderImageGallery(context.Background(), model.TopicTotal, refs, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.MissingAssets)
	assert.Equal(t, 2, stats.Images)
	assert.Contains(t, string(html), `src="/assets/total/a.png"`)
	assert.Contains(t, string(html), "repeat(3,1fr)")
}

func TestRenderImageGalleryAllMissing(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	refs := []model.ImageRef{model.I("a.png", ""), model.I("b.png", "")}
	assert.NotPanics(t, func() {
		_, stats, err := r.RenderImageGallery(context.Background(), model.TopicRootZone, refs, 0)
		assert.NoError(t, err)
		assert.Equal(t, 2, stats.MissingAssets)
		assert.Equal(t, 0, stats.Images)
	})
}

func TestRenderTabbedGroupLazy(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	calls := map[string]int{}
	tab := func(label string) Tab {
		return Tab{
			Label: label,
			Slug:  Slugify(label),
			Content: func() []Node {
				calls[label]++
				return []Node{Paragraph{Text: "content of " + label}}
			},
		}
	}
	group := TabGroup{ID: "analysis", Tabs: []Tab{tab("Feature Importance"), tab("SHAP Analysis"), tab("Monthly Features")}}

	req := Request{Base: "/surface", Selection: Selection{"analysis": "shap-analysis"}}
	first, stats, err := r.RenderTabbedGroup(context.Background(), req, group)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"SHAP Analysis": 1}, calls)
	assert.Equal(t, []string{"analysis"}, stats.Tabs)
	assert.Contains(t, string(first), "content of SHAP Analysis")
	assert.NotContains(t, string(first), "content of Feature Importance")
	assert.Contains(t, string(first), `href="/surface?analysis=monthly-features#analysis"`)

	second, _, err := r.RenderTabbedGroup(context.Background(), req, group)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, calls["Feature Importance"])
}

func TestRenderTabbedGroupDefaultsToFirst(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	group := TabGroup{ID: "g", Tabs: []Tab{
		{Label: "One", Slug: "one", Content: Static(Paragraph{Text: "first"})},
		{Label: "Two", Slug: "two", Content: Static(Paragraph{Text: "second"})},
	}}

	for _, sel := range []Selection{nil, {"g": "nope"}} {
		html, _, err := r.RenderTabbedGroup(context.Background(), Request{Selection: sel}, group)
		require.NoError(t, err)
		assert.Contains(t, string(html), "first")
		assert.NotContains(t, string(html), "second")
	}
}

func TestRenderMetricSectionChartTabs(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	section := MetricSection{
		ID:    "summary",
		Table: MetricTable(model.MustMetricTable(model.M("XGBoost", 0.02694, 0.9111)), MetricFormatting("Model", 5)),
		Charts: []ChartSpec{
			{Kind: BarChart, TabLabel: "R² Score", Column: FitColumn, ValueDecimals: 3},
			{Kind: BarChart, TabLabel: "RMSE", Column: ErrorColumn, ValueDecimals: 4},
		},
	}

	html, stats, err := r.RenderMetricSection(context.Background(), Request{Selection: Selection{"summary-chart": "rmse"}}, section)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Charts)
	assert.Equal(t, []string{"summary-chart"}, stats.Tabs)
	assert.Contains(t, string(html), ">0.0269<")
	assert.NotContains(t, string(html), ">0.911<")
}

func TestRenderChartAxisFallback(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	table := TimeSeriesTable(model.MustTimeSeries("Month", 0.03, 0.88,
		model.P("Jan", 0.042857, 0.748952),
		model.P("Feb", 0.031591, 0.870841),
	), MetricFormatting("", 5))
	spec := ChartSpec{Kind: LineChart, Column: FitColumn, ValueDecimals: 3, Axis: &model.AxisRange{Min: 0.75, Max: 0.95}}

	html, _, err := r.Render(context.Background(), Request{}, []Node{Chart{Spec: spec, Table: table}})
	require.NoError(t, err)
	// the mean row is not plotted
	assert.Equal(t, 2, strings.Count(string(html), "<circle"))
	// ticks follow the data extent instead of the rejected hint
	assert.NotContains(t, string(html), ">0.950<")
}

func TestRenderChartAxisFallbackLoggedEveryRender(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	var logs bytes.Buffer
	l := zerolog.New(&logs)
	ctx := l.WithContext(context.Background())

	chart := Chart{
		Spec:  ChartSpec{Kind: LineChart, Title: "Monthly R²", Column: FitColumn, Axis: &model.AxisRange{Min: 0.8, Max: 0.95}},
		Table: MetricTable(model.MustMetricTable(
			model.M("Jan", 0.04, 0.74),
			model.M("Feb", 0.03, 0.87),
		), MetricFormatting("Month", 4)),
	}
	for i := 0; i < 2; i++ {
		_, _, err := r.Render(ctx, Request{}, []Node{chart})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, r.charts.Len())
	assert.Equal(t, 2, strings.Count(logs.String(), `"evt.name":"render.chart.axis_fallback"`))
	assert.Contains(t, logs.String(), `"chart":"Monthly R²"`)
}

func TestRenderChartCached(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	chart := Chart{
		Spec:  ChartSpec{Kind: BarChart, Column: FitColumn},
		Table: MetricTable(model.MustMetricTable(model.M("a", 0.1, 0.5)), MetricFormatting("Model", 4)),
	}
	first, _, err := r.Render(context.Background(), Request{}, []Node{chart})
	require.NoError(t, err)
	second, _, err := r.Render(context.Background(), Request{}, []Node{chart})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.charts.Len())
}

func TestRenderFragment(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	inner := TabGroup{ID: "inner", Tabs: []Tab{{Label: "X", Slug: "x", Content: Static(Paragraph{Text: "inner x"})}}}
	page := Page{
		Info: model.RouteInfo{Route: model.RouteClusters, Path: "/clusters"},
		Nodes: []Node{
			TabGroup{ID: "outer", Tabs: []Tab{
				{Label: "A", Slug: "a", Content: Static(Paragraph{Text: "a"})},
				{Label: "B", Slug: "b", Content: Static(inner)},
			}},
		},
	}

	_, _, err := r.RenderFragment(context.Background(), Request{Base: "/clusters"}, page, "inner")
	assert.ErrorIs(t, err, ErrTabGroupNotFound)

	html, _, err := r.RenderFragment(context.Background(), Request{Base: "/clusters", Selection: Selection{"outer": "b"}}, page, "inner")
	require.NoError(t, err)
	assert.Contains(t, string(html), "inner x")
}

func TestRenderPageLayout(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	info, _ := model.LookupRoute(model.RouteTotal)
	page := Page{Info: info, Nodes: []Node{Heading{Level: 2, Text: "Summary"}, Divider{}}, Footer: "footer note"}

	b, _, err := r.RenderPage(context.Background(), Request{}, page)
	require.NoError(t, err)

	out := string(b)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<a href="/total" class="active">`)
	assert.Contains(t, out, "<h2>Summary</h2>")
	assert.Contains(t, out, "footer note")
}

func TestRenderCanceled(t *testing.T) {
	r := newTestRenderer(t, fstest.MapFS{}, AssetInline)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := r.Render(ctx, Request{}, []Node{Divider{}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImagesWalksEveryTab(t *testing.T) {
	nodes := []Node{
		TabGroup{ID: "g", Tabs: []Tab{
			{Label: "A", Slug: "a", Content: Static(Gallery{Topic: model.TopicSurface, Refs: []model.ImageRef{model.I("a.png", "")}})},
			{Label: "B", Slug: "b", Content: Static(Expander{Children: []Node{
				Gallery{Topic: model.TopicTotal, Refs: []model.ImageRef{model.I("b.png", "")}},
			}})},
		}},
	}

	refs := Images(nodes)
	assert.Equal(t, []GalleryRef{
		{Topic: model.TopicSurface, Ref: model.I("a.png", "")},
		{Topic: model.TopicTotal, Ref: model.I("b.png", "")},
	}, refs)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "r2-score", Slugify("R² Score"))
	assert.Equal(t, "actual-vs-predicted", Slugify("Actual vs. Predicted"))
	assert.Equal(t, "cluster-1", Slugify("Cluster 1"))
}

func TestSectionsCarryTrail(t *testing.T) {
	section := func(id, title string) MetricSection {
		return MetricSection{ID: id, Title: title}
	}
	nodes := []Node{
		Heading{Level: 2, Text: "Models"},
		TabGroup{ID: "g", Tabs: []Tab{
			{Label: "Surface", Slug: "surface", Content: Static(section("a", ""))},
			{Label: "Total", Slug: "total", Content: Static(
				Heading{Level: 3, Text: "Scores"},
				section("b", "Silhouette"),
			)},
		}},
		Heading{Level: 2, Text: "Summary"},
		section("c", ""),
		Expander{Title: "More", Children: []Node{section("d", "")}},
		section("e", ""),
	}

	captions := lo.Map(Sections(nodes), func(p PlacedSection, _ int) string { return p.Caption() })
	assert.Equal(t, []string{
		"Models › Surface",
		"Models › Total › Scores › Silhouette",
		"Summary",
		"Summary › More",
		"Summary",
	}, captions)

	assert.Equal(t, "x", PlacedSection{Section: section("x", "")}.Caption())
}
