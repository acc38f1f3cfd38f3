package model

// Route identifies a dashboard page. The HTTP shell selects the active route;
// the renderer only ever sees the data of that route.
type Route string

const (
	RouteHome     Route = "home"
	RouteSurface  Route = "surface"
	RouteRootZone Route = "root_zone"
	RouteTotal    Route = "total"
	RouteClusters Route = "clusters"
)

type RouteInfo struct {
	Route Route  `json:"route"`
	Path  string `json:"path"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Title string `json:"title"`
}

// Routes is the side navigation, in display order.
var Routes = []RouteInfo{
	{Route: RouteHome, Path: "/", Label: "Home", Icon: "🏠", Title: "🌱 Soil Moisture Prediction Dashboard"},
	{Route: RouteSurface, Path: "/surface", Label: "Detailed Surface Analysis", Icon: "🔵", Title: "🌱 Surface Soil Moisture Analysis"},
	{Route: RouteRootZone, Path: "/root-zone", Label: "Detailed Root Zone Analysis", Icon: "🟢", Title: "🌿 Root Zone Soil Moisture Analysis"},
	{Route: RouteTotal, Path: "/total", Label: "Detailed Total Analysis", Icon: "🟠", Title: "💧 Total Soil Moisture Analysis"},
	{Route: RouteClusters, Path: "/clusters", Label: "Advanced Clustering Analysis", Icon: "📦", Title: "🌍 Clustering Analysis - All India Region"},
}

func LookupRoute(r Route) (RouteInfo, bool) {
	for _, info := range Routes {
		if info.Route == r {
			return info, true
		}
	}
	return RouteInfo{}, false
}

// ParseRoute accepts either the route identifier or its URL path segment.
func ParseRoute(s string) (Route, bool) {
	for _, info := range Routes {
		if string(info.Route) == s || info.Path == "/"+s || info.Path == s {
			return info.Route, true
		}
	}
	return "", false
}

// TopicRoute maps a topic to its detailed analysis page.
func TopicRoute(t Topic) Route {
	switch t {
	case TopicSurface:
		return RouteSurface
	case TopicRootZone:
		return RouteRootZone
	default:
		return RouteTotal
	}
}
