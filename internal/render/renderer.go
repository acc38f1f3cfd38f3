package render

import (
	"bytes"
	"context"
	"embed"
	"html/template"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/soil-insights/soilboard/internal/model"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var ErrTabGroupNotFound = errors.New("tab group not found")

var funcs = template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"half": func(f float64) float64 { return f / 2 },
	// sub is written for pipelines: {{x | sub 6}} is x-6.
	"sub": func(d, f float64) float64 { return f - d },
}

// Renderer turns page trees into HTML. It holds no per-request state; the only thing
// shared between renders is the chart cache.
type Renderer struct {
	assets *AssetStore
	charts *ChartCache
	tmpl   *template.Template
}

func New(assets *AssetStore, charts *ChartCache) (*Renderer, error) {
	tmpl, err := template.New("render").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse render templates")
	}
	return &Renderer{
		assets: assets,
		charts: charts,
		tmpl:   tmpl,
	}, nil
}

func (r *Renderer) Assets() *AssetStore {
	return r.assets
}

// Request carries what varies between renders of the same page.
type Request struct {
	Route model.Route
	// Base is the path tab links point at.
	Base      string
	Selection Selection
}

// Stats describes what a render did.
type Stats struct {
	Images        int
	MissingAssets int
	Warnings      []string
	Charts        int
	// Tabs lists the IDs of the tab groups whose selected content was rendered, in order.
	Tabs []string
}

type pass struct {
	r     *Renderer
	ctx   context.Context
	req   Request
	stats Stats
	l     *zerolog.Logger
}

func (r *Renderer) newPass(ctx context.Context, req Request) *pass {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		l = &log.Logger
	}
	return &pass{r: r, ctx: ctx, req: req, l: l}
}

// Render renders a node list.
func (r *Renderer) Render(ctx context.Context, req Request, nodes []Node) (template.HTML, Stats, error) {
	p := r.newPass(ctx, req)
	html, err := p.nodes(nodes)
	return html, p.stats, err
}

// RenderMetricSection renders a formatted table beside its chart, or beside a tab strip of charts.
func (r *Renderer) RenderMetricSection(ctx context.Context, req Request, s MetricSection) (template.HTML, Stats, error) {
	p := r.newPass(ctx, req)
	html, err := p.section(s)
	return html, p.stats, err
}

// RenderImageGallery renders refs in a grid. Every ref gets one load attempt; failures
// become inline warnings and never stop the gallery.
func (r *Renderer) RenderImageGallery(ctx context.Context, topic model.Topic, refs []model.ImageRef, columns int) (template.HTML, Stats, error) {
	p := r.newPass(ctx, Request{})
	html, err := p.gallery(Gallery{Topic: topic, Columns: columns, Refs: refs})
	return html, p.stats, err
}

// RenderTabbedGroup renders the tab strip of g and the content of its selected tab only.
func (r *Renderer) RenderTabbedGroup(ctx context.Context, req Request, g TabGroup) (template.HTML, Stats, error) {
	p := r.newPass(ctx, req)
	html, err := p.tabs(g)
	return html, p.stats, err
}

// RenderFragment renders the tab group id as it appears on page under the selection of req.
func (r *Renderer) RenderFragment(ctx context.Context, req Request, page Page, id string) (template.HTML, Stats, error) {
	g, ok := FindTabGroup(page.Nodes, req.Selection, id)
	if !ok {
		return "", Stats{}, errors.Wrapf(ErrTabGroupNotFound, "group %q on %s", id, page.Info.Route)
	}
	return r.RenderTabbedGroup(ctx, req, g)
}

type navItem struct {
	model.RouteInfo
	Active bool
}

type layoutView struct {
	Title  string
	Nav    []navItem
	Body   template.HTML
	Footer string
}

// RenderPage renders page inside the dashboard layout with its side navigation.
func (r *Renderer) RenderPage(ctx context.Context, req Request, page Page) ([]byte, Stats, error) {
	if req.Base == "" {
		req.Base = page.Info.Path
	}
	body, stats, err := r.Render(ctx, req, page.Nodes)
	if err != nil {
		return nil, stats, err
	}

	view := layoutView{
		Title: page.Info.Title,
		Nav: lo.Map(model.Routes, func(info model.RouteInfo, _ int) navItem {
			return navItem{RouteInfo: info, Active: info.Route == page.Info.Route}
		}),
		Body:   body,
		Footer: page.Footer,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", view); err != nil {
		return nil, stats, errors.Wrap(err, "failed to render layout")
	}
	return buf.Bytes(), stats, nil
}

func (p *pass) exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := p.r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}
	return template.HTML(buf.String()), nil
}

func (p *pass) nodes(nodes []Node) (template.HTML, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := p.ctx.Err(); err != nil {
			return "", err
		}
		html, err := p.node(n)
		if err != nil {
			return "", err
		}
		buf.WriteString(string(html))
	}
	return template.HTML(buf.String()), nil
}

func (p *pass) node(n Node) (template.HTML, error) {
	switch n := n.(type) {
	case Heading:
		level := n.Level
		if level < 1 || level > 4 {
			level = 2
		}
		return p.exec("heading", Heading{Level: level, Text: n.Text})
	case Paragraph:
		return p.exec("paragraph", n)
	case Divider:
		return p.exec("divider", nil)
	case MetricSection:
		return p.section(n)
	case Chart:
		p.stats.Charts++
		return p.chart(n.Spec, n.Table)
	case Gallery:
		return p.gallery(n)
	case Expander:
		return p.expander(n)
	case TabGroup:
		return p.tabs(n)
	}
	return "", errors.Errorf("unknown node type %T", n)
}
