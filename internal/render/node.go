package render

import (
	"strings"

	"github.com/soil-insights/soilboard/internal/model"
)

// Node is an element of a page tree.
type Node interface {
	isNode()
}

type ParagraphStyle int

const (
	ParagraphText ParagraphStyle = iota
	ParagraphInfo
	ParagraphCaption
)

type Heading struct {
	// Level is 1 to 4.
	Level int
	Text  string
}

type Paragraph struct {
	Text  string
	Style ParagraphStyle
}

type Divider struct{}

// MetricSection is a table beside its chart. With several charts, the charts are
// placed in a tab strip under ID and only the selected one is drawn.
type MetricSection struct {
	ID     string
	Title  string
	Table  Table
	Charts []ChartSpec
}

// Chart is a standalone chart of one table column.
type Chart struct {
	Spec  ChartSpec
	Table Table
}

// Gallery is a grid of topic images, Columns panes per row.
type Gallery struct {
	Title   string
	Topic   model.Topic
	Columns int
	Refs    []model.ImageRef
}

// Expander is a collapsible group.
type Expander struct {
	Title    string
	Open     bool
	Children []Node
}

// Tab is one entry of a TabGroup. Content is only called when the tab is selected.
type Tab struct {
	Label   string
	Slug    string
	Content func() []Node
}

// TabGroup is a tab strip. ID must be unique on a page; it is the query parameter
// carrying the selected tab's slug.
type TabGroup struct {
	ID   string
	Tabs []Tab
}

func (Heading) isNode()       {}
func (Paragraph) isNode()     {}
func (Divider) isNode()       {}
func (MetricSection) isNode() {}
func (Chart) isNode()         {}
func (Gallery) isNode()       {}
func (Expander) isNode()      {}
func (TabGroup) isNode()      {}

// Static wraps fixed content as a tab content callback.
func Static(nodes ...Node) func() []Node {
	return func() []Node {
		return nodes
	}
}

// Page is a complete dashboard page.
type Page struct {
	Info   model.RouteInfo
	Nodes  []Node
	Footer string
}

// Images lists every image reference in nodes, descending into every tab.
func Images(nodes []Node) []GalleryRef {
	var refs []GalleryRef
	walkAll(nodes, nil, func(n Node, _ []string) {
		if g, ok := n.(Gallery); ok {
			for _, ref := range g.Refs {
				refs = append(refs, GalleryRef{Topic: g.Topic, Ref: ref})
			}
		}
	})
	return refs
}

// PlacedSection is a metric section together with where it sits on the page.
type PlacedSection struct {
	// Trail lists the headings, expanders and tabs enclosing the section, outermost first.
	Trail   []string
	Section MetricSection
}

// Caption names the section by its trail and title, e.g.
// "Model Performance Comparison › Surface Soil Moisture".
func (p PlacedSection) Caption() string {
	parts := p.Trail
	if p.Section.Title != "" {
		parts = append(parts[:len(parts):len(parts)], p.Section.Title)
	}
	if len(parts) == 0 {
		return p.Section.ID
	}
	return strings.Join(parts, " › ")
}

// Sections lists every metric section in nodes, descending into every tab.
func Sections(nodes []Node) []PlacedSection {
	var sections []PlacedSection
	walkAll(nodes, nil, func(n Node, trail []string) {
		if s, ok := n.(MetricSection); ok {
			sections = append(sections, PlacedSection{Trail: trail, Section: s})
		}
	})
	return sections
}

type GalleryRef struct {
	Topic model.Topic
	Ref   model.ImageRef
}

func extend(trail []string, s ...string) []string {
	return append(trail[:len(trail):len(trail)], s...)
}

// walkAll visits every node, evaluating the content of every tab. Each node is visited
// with its trail: the enclosing tab and expander titles, plus the last heading seen
// before it at every level.
func walkAll(nodes []Node, trail []string, visit func(n Node, trail []string)) {
	here := trail
	for _, n := range nodes {
		if h, ok := n.(Heading); ok {
			here = extend(trail, h.Text)
		}
		visit(n, here)
		switch n := n.(type) {
		case Expander:
			walkAll(n.Children, extend(here, n.Title), visit)
		case TabGroup:
			for _, t := range n.Tabs {
				if t.Content != nil {
					walkAll(t.Content(), extend(here, t.Label), visit)
				}
			}
		}
	}
}
