// Package dashboard composes the dashboard pages out of catalog data and render nodes.
package dashboard

import (
	"github.com/pkg/errors"

	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/render"
)

var builders = map[model.Route]func() render.Page{
	model.RouteHome:     homePage,
	model.RouteSurface:  func() render.Page { return topicPage(model.TopicSurface) },
	model.RouteRootZone: func() render.Page { return topicPage(model.TopicRootZone) },
	model.RouteTotal:    func() render.Page { return topicPage(model.TopicTotal) },
	model.RouteClusters: clustersPage,
}

// Build returns the page definition of route. Pages are rebuilt on every call and
// only the selected tabs' contents are ever evaluated by the renderer.
func Build(route model.Route) (render.Page, bool) {
	b, ok := builders[route]
	if !ok {
		return render.Page{}, false
	}
	return b(), true
}

// All builds every page in navigation order.
func All() []render.Page {
	pages := make([]render.Page, 0, len(model.Routes))
	for _, info := range model.Routes {
		if p, ok := Build(info.Route); ok {
			pages = append(pages, p)
		}
	}
	return pages
}

// mustRefs validates literal image references.
func mustRefs(refs ...model.ImageRef) []model.ImageRef {
	for _, ref := range refs {
		if err := model.Validate.Struct(ref); err != nil {
			panic(errors.Wrapf(err, "invalid image reference %q", ref.Path))
		}
	}
	return refs
}
