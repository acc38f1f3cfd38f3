package dashboard

import (
	"github.com/soil-insights/soilboard/internal/catalog"
	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/render"
)

const (
	GroupHomeModels     = "models"
	GroupHomeClustering = "clustering"
)

var homeModelPalettes = map[model.Topic]render.Palette{
	model.TopicSurface:  render.PaletteSet1,
	model.TopicRootZone: render.PaletteSet2,
	model.TopicTotal:    render.PalettePastel,
}

var homeClusterPalettes = map[model.Topic]render.Palette{
	model.TopicSurface: render.PaletteSet3,
}

func homePage() render.Page {
	info, _ := model.LookupRoute(model.RouteHome)

	models := render.TabGroup{ID: GroupHomeModels}
	clustering := render.TabGroup{ID: GroupHomeClustering}
	for _, t := range model.Topics {
		t := t
		models.Tabs = append(models.Tabs, render.Tab{
			Label: t.Name(),
			Slug:  string(t),
			Content: func() []render.Node {
				return []render.Node{render.MetricSection{
					ID:    "models-" + string(t),
					Table: render.MetricTable(catalog.ModelComparison(t), render.MetricFormatting("Model", 5)),
					Charts: []render.ChartSpec{{
						Kind:          render.BarChart,
						Title:         t.Name() + " - Model Performance (R² Score)",
						Column:        render.FitColumn,
						YTitle:        "R²",
						ValueDecimals: 3,
						Palette:       homeModelPalettes[t],
					}},
				}}
			},
		})
		clustering.Tabs = append(clustering.Tabs, render.Tab{
			Label: t.Name(),
			Slug:  string(t),
			Content: func() []render.Node {
				return []render.Node{render.MetricSection{
					ID:    "clustering-" + string(t),
					Table: render.ClusterTable(catalog.Silhouette(t, false), "Clustering Method", 4),
					Charts: []render.ChartSpec{{
						Kind:          render.BarChart,
						Title:         t.Name() + " - Clustering Performance",
						YTitle:        "Silhouette Score",
						ValueDecimals: 3,
						Palette:       homeClusterPalettes[t],
					}},
				}}
			},
		})
	}

	return render.Page{
		Info: info,
		Nodes: []render.Node{
			render.Paragraph{Text: "Welcome to the Soil Moisture Prediction Dashboard. This project involves analysis of " +
				"three key target variables: Surface Soil Moisture, Root Zone Soil Moisture and Total Soil Moisture."},
			render.Paragraph{Text: "Each target variable has been analyzed using various machine learning and deep learning models."},
			render.Heading{Level: 2, Text: "🏆 Model Performance Comparison"},
			models,
			render.Heading{Level: 2, Text: "📦 Clustering Analysis"},
			clustering,
			render.Divider{},
			render.Paragraph{
				Text:  "Note: Use the sidebar to navigate to detailed analysis pages for each soil moisture type.",
				Style: render.ParagraphInfo,
			},
		},
	}
}
