package render

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// Selection maps tab group IDs to the slug of their selected tab.
type Selection map[string]string

// SelectionFromQuery keeps every query parameter as a potential tab selection;
// parameters naming no tab group are ignored at render time.
func SelectionFromQuery(q map[string]string) Selection {
	sel := make(Selection, len(q))
	for k, v := range q {
		sel[k] = v
	}
	return sel
}

// Selected returns the index of the selected tab of g. Unknown or absent slugs select the first tab.
func (s Selection) Selected(g TabGroup) int {
	slug, ok := s[g.ID]
	if !ok || slug == "" {
		return 0
	}
	for i, t := range g.Tabs {
		if t.Slug == slug {
			return i
		}
	}
	log.Debug().
		Str("evt.name", "render.tab.unknown").
		Str("group", g.ID).
		Str("slug", slug).
		Msg("unknown tab selected, falling back to the first tab")
	return 0
}

// With returns a copy of s selecting slug in group.
func (s Selection) With(group, slug string) Selection {
	c := make(Selection, len(s)+1)
	for k, v := range s {
		c[k] = v
	}
	c[group] = slug
	return c
}

// Query encodes the selection with sorted keys so that links are stable.
func (s Selection) Query() string {
	v := url.Values{}
	for k, slug := range s {
		v.Set(k, slug)
	}
	return v.Encode()
}

// Slugify derives a URL friendly tab slug from a label.
func Slugify(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == '²':
			b.WriteRune('2')
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// FindTabGroup locates the tab group id in nodes, descending only into selected tabs,
// so that a fragment renders exactly what the full page would.
func FindTabGroup(nodes []Node, sel Selection, id string) (TabGroup, bool) {
	for _, n := range nodes {
		switch n := n.(type) {
		case TabGroup:
			if n.ID == id {
				return n, true
			}
			if len(n.Tabs) == 0 {
				continue
			}
			t := n.Tabs[sel.Selected(n)]
			if t.Content == nil {
				continue
			}
			if g, ok := FindTabGroup(t.Content(), sel, id); ok {
				return g, true
			}
		case Expander:
			if g, ok := FindTabGroup(n.Children, sel, id); ok {
				return g, true
			}
		case MetricSection:
			if len(n.Charts) > 1 && chartGroupID(n) == id {
				return chartTabs(n), true
			}
		}
	}
	return TabGroup{}, false
}
