package dashboard

import (
	"fmt"

	"github.com/soil-insights/soilboard/internal/catalog"
	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/render"
)

const (
	GroupClusterVariable = "variable"
	GroupClusterFeatures = "features"
)

func clustersPage() render.Page {
	info, _ := model.LookupRoute(model.RouteClusters)

	variables := render.TabGroup{ID: GroupClusterVariable}
	for _, t := range model.Topics {
		t := t
		variables.Tabs = append(variables.Tabs, render.Tab{
			Label:   t.Name(),
			Slug:    string(t),
			Content: func() []render.Node { return clusterVariable(t) },
		})
	}

	return render.Page{Info: info, Nodes: []render.Node{variables}}
}

func clusterVariable(t model.Topic) []render.Node {
	v := t.Variable()

	maps := render.Gallery{Topic: t, Columns: 3}
	for i := 1; i <= catalog.ClusterCount+1; i++ {
		caption := "All India"
		if i > 1 {
			caption = catalog.ClusterLabel(i - 2)
		}
		maps.Refs = append(maps.Refs, mustRefs(model.I(fmt.Sprintf("%s_cluster_%d.png", v, i), caption))...)
	}

	features := render.TabGroup{ID: GroupClusterFeatures}
	for i := 1; i <= catalog.ClusterCount; i++ {
		i := i
		label := fmt.Sprintf("Cluster %d", i)
		features.Tabs = append(features.Tabs, render.Tab{
			Label: label,
			Slug:  render.Slugify(label),
			Content: func() []render.Node {
				cluster := catalog.ClusterLabel(i - 1)
				return []render.Node{render.Gallery{
					Topic:   t,
					Columns: 2,
					Refs: mustRefs(
						model.I(fmt.Sprintf("%s_feature_bar_cluster_%d.png", v, i), "Feature Importance (Bar) - "+cluster),
						model.I(fmt.Sprintf("%s_feature_pie_cluster_%d.png", v, i), "Feature Contribution (Pie) - "+cluster),
					),
				}}
			},
		})
	}

	return []render.Node{
		render.Heading{Level: 2, Text: "📊 Clustering Performance"},
		render.MetricSection{
			ID:    "silhouette",
			Table: render.ClusterTable(catalog.Silhouette(t, true), "Method", 4),
			Charts: []render.ChartSpec{{
				Kind:          render.BarChart,
				Title:         "Silhouette Scores - " + t.Name(),
				YTitle:        "Silhouette Score",
				ValueDecimals: 3,
				Palette:       render.PalettePastel,
			}},
		},
		render.Heading{Level: 2, Text: "🗺️ India Cluster Maps"},
		maps,
		render.Heading{Level: 2, Text: "⚡ XGBoost Performance by Cluster"},
		render.MetricSection{
			ID:    "by-cluster",
			Table: render.MetricTable(catalog.ByCluster(t), render.MetricFormatting("Cluster", 5)),
			Charts: []render.ChartSpec{{
				Kind:          render.BarChart,
				Title:         "XGBoost R² by Cluster - " + t.Name(),
				Column:        render.FitColumn,
				YTitle:        "R²",
				ValueDecimals: 3,
				Palette:       render.PaletteSet2,
			}},
		},
		render.Heading{Level: 2, Text: "🔍 Feature Contribution Analysis"},
		features,
	}
}
