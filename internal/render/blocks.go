package render

import (
	"html/template"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type cellView struct {
	Text  string
	Class string
}

type rowView struct {
	Label     string
	Cells     []cellView
	Synthetic bool
}

type sectionView struct {
	ID      string
	Title   string
	Label   string
	Headers []string
	Rows    []rowView
	Chart   template.HTML
}

func chartGroupID(s MetricSection) string {
	return s.ID + "-chart"
}

// chartTabs turns the charts of a section into a tab group with one chart per tab.
func chartTabs(s MetricSection) TabGroup {
	return TabGroup{
		ID: chartGroupID(s),
		Tabs: lo.Map(s.Charts, func(spec ChartSpec, _ int) Tab {
			label := spec.TabLabel
			if label == "" {
				label = spec.Title
			}
			return Tab{
				Label:   label,
				Slug:    Slugify(label),
				Content: Static(Chart{Spec: spec, Table: s.Table}),
			}
		}),
	}
}

func tableView(t Table) ([]string, []rowView) {
	marks := t.Marks()
	headers := lo.Map(t.Columns, func(c Column, _ int) string { return c.Header })
	rows := make([]rowView, len(t.Rows))
	for i, r := range t.Rows {
		cells := make([]cellView, len(t.Columns))
		for c, col := range t.Columns {
			if c >= len(r.Values) {
				continue
			}
			cells[c].Text = FormatFixed(r.Values[c], col.Decimals)
			switch i {
			case marks[c].Best:
				cells[c].Class = "best"
			case marks[c].Worst:
				cells[c].Class = "worst"
			}
		}
		rows[i] = rowView{Label: r.Label, Cells: cells, Synthetic: r.Synthetic}
	}
	return headers, rows
}

func (p *pass) section(s MetricSection) (template.HTML, error) {
	headers, rows := tableView(s.Table)
	view := sectionView{
		ID:      s.ID,
		Title:   s.Title,
		Label:   s.Table.LabelHeader,
		Headers: headers,
		Rows:    rows,
	}

	var err error
	switch len(s.Charts) {
	case 0:
	case 1:
		p.stats.Charts++
		view.Chart, err = p.chart(s.Charts[0], s.Table)
	default:
		view.Chart, err = p.tabs(chartTabs(s))
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to render chart of section %q", s.Title)
	}

	return p.exec("section", view)
}

type paneView struct {
	Src     template.URL
	Caption string
	Warning string
}

type galleryView struct {
	Title   string
	Columns int
	Rows    [][]paneView
}

func (p *pass) gallery(g Gallery) (template.HTML, error) {
	columns := g.Columns
	if columns < 1 {
		columns = 1
	}

	panes := make([]paneView, 0, len(g.Refs))
	for _, ref := range g.Refs {
		asset, err := p.r.assets.Load(g.Topic, ref)
		if err != nil {
			var missing *MissingAssetError
			if !errors.As(err, &missing) {
				return "", err
			}
			p.stats.MissingAssets++
			p.stats.Warnings = append(p.stats.Warnings, missing.Warning())
			p.l.Warn().
				Str("evt.name", "render.asset.missing").
				Str("route", string(p.req.Route)).
				Str("path", missing.Path).
				Err(missing.Err).
				Msg("image could not be loaded")
			panes = append(panes, paneView{Caption: ref.Caption, Warning: missing.Warning()})
			continue
		}
		p.stats.Images++
		panes = append(panes, paneView{Src: asset.Src, Caption: ref.Caption})
	}

	return p.exec("gallery", galleryView{
		Title:   g.Title,
		Columns: columns,
		Rows:    lo.Chunk(panes, columns),
	})
}

type expanderView struct {
	Title string
	Open  bool
	Body  template.HTML
}

func (p *pass) expander(e Expander) (template.HTML, error) {
	body, err := p.nodes(e.Children)
	if err != nil {
		return "", err
	}
	return p.exec("expander", expanderView{Title: e.Title, Open: e.Open, Body: body})
}

type tabLink struct {
	Label  string
	Href   template.URL
	Active bool
}

type tabsView struct {
	ID   string
	Tabs []tabLink
	Body template.HTML
}

func (p *pass) tabs(g TabGroup) (template.HTML, error) {
	view := tabsView{ID: g.ID}
	if len(g.Tabs) == 0 {
		return p.exec("tabs", view)
	}

	selected := p.req.Selection.Selected(g)
	for i, t := range g.Tabs {
		href := p.req.Base + "?" + p.req.Selection.With(g.ID, t.Slug).Query() + "#" + g.ID
		view.Tabs = append(view.Tabs, tabLink{
			Label:  t.Label,
			Href:   template.URL(href),
			Active: i == selected,
		})
	}

	p.stats.Tabs = append(p.stats.Tabs, g.ID)
	if content := g.Tabs[selected].Content; content != nil {
		body, err := p.nodes(content())
		if err != nil {
			return "", err
		}
		view.Body = body
	}
	return p.exec("tabs", view)
}
