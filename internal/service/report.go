package service

import (
	"context"
	"html/template"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/soil-insights/soilboard/internal/dashboard"
	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/pkg/apperr"
	"github.com/soil-insights/soilboard/internal/pkg/observability"
	"github.com/soil-insights/soilboard/internal/render"
)

// Report renders dashboard pages and tab group fragments.
type Report struct {
	Renderer *render.Renderer
}

func NewReport(renderer *render.Renderer) *Report {
	return &Report{
		Renderer: renderer,
	}
}

func (s *Report) page(route model.Route) (render.Page, error) {
	page, ok := dashboard.Build(route)
	if !ok {
		return render.Page{}, apperr.ErrRouteNotFound.Msg("route not found: %q", route)
	}
	return page, nil
}

// Page renders the full HTML document of route under the given tab selection.
func (s *Report) Page(ctx context.Context, route model.Route, sel render.Selection) ([]byte, error) {
	page, err := s.page(route)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	body, stats, err := s.Renderer.RenderPage(ctx, render.Request{
		Route:     route,
		Base:      page.Info.Path,
		Selection: sel,
	}, page)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render route %s", route)
	}
	s.observe(ctx, route, "page", time.Since(start), stats)

	return body, nil
}

// Fragment renders only the tab group id of route, with its selected tab.
func (s *Report) Fragment(ctx context.Context, route model.Route, id string, sel render.Selection) (template.HTML, error) {
	page, err := s.page(route)
	if err != nil {
		return "", err
	}

	start := time.Now()
	html, stats, err := s.Renderer.RenderFragment(ctx, render.Request{
		Route:     route,
		Base:      page.Info.Path,
		Selection: sel,
	}, page, id)
	if errors.Is(err, render.ErrTabGroupNotFound) {
		return "", apperr.ErrGroupNotFound.Msg("tab group %q is not rendered on route %s under the given selection", id, route)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to render fragment %s of route %s", id, route)
	}
	s.observe(ctx, route, "fragment", time.Since(start), stats)

	return html, nil
}

func (s *Report) observe(ctx context.Context, route model.Route, kind string, d time.Duration, stats render.Stats) {
	observability.PageRenderDuration.WithLabelValues(string(route)).Observe(d.Seconds())
	if stats.MissingAssets > 0 {
		observability.MissingAssets.WithLabelValues(string(route)).Add(float64(stats.MissingAssets))
	}
	for _, group := range stats.Tabs {
		observability.TabRenders.WithLabelValues(string(route), group).Inc()
	}

	zerolog.Ctx(ctx).Debug().
		Str("evt.name", "service.report.rendered").
		Str("route", string(route)).
		Str("kind", kind).
		Dur("duration", d).
		Int("images", stats.Images).
		Int("missing_assets", stats.MissingAssets).
		Int("charts", stats.Charts).
		Strs("tabs", stats.Tabs).
		Msg("rendered")
}
