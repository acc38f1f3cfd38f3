package dashboard

import (
	"fmt"

	"github.com/soil-insights/soilboard/internal/catalog"
	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/render"
)

// Tab group IDs of the analysis pages.
const (
	GroupSummaryCharts = "summary-chart"
	GroupMonthlyCharts = "monthly-chart"
	GroupYearlyCharts  = "yearly-chart"
	GroupAnalysis      = "analysis"
)

type modelKey struct {
	name string
	key  string
}

var importanceModels = []modelKey{
	{catalog.LinearRegression, "linear_regression"},
	{catalog.DecisionTree, "decision_tree"},
	{catalog.RandomForest, "random_forest"},
	{catalog.GradientBoosting, "gradient_boosting"},
	{catalog.XGBoost, "xgboost"},
}

var gridModels = []modelKey{
	{catalog.XGBoost, "Grid_wise_Plot_XGboost"},
	{catalog.GradientBoosting, "Grid_wise_Plot_GBR"},
	{catalog.RandomForest, "Grid_wise_Plot_RF"},
	{catalog.DecisionTree, "Grid_wise_Plot_DT"},
	{catalog.LinearRegression, "Grid_wise_Plot_LR"},
}

func topicPage(t model.Topic) render.Page {
	c := topicCopies[t]
	info, _ := model.LookupRoute(model.TopicRoute(t))

	var nodes []render.Node
	if c.intro != "" {
		nodes = append(nodes, render.Paragraph{Text: c.intro, Style: render.ParagraphInfo})
	}

	nodes = append(nodes,
		render.Heading{Level: 2, Text: "📊 Model Performance Summary"},
		render.MetricSection{
			ID:     "summary",
			Title:  "Performance Metrics",
			Table:  render.MetricTable(catalog.ModelSummary(t), render.MetricFormatting("Model", catalog.SummaryDecimals(t))),
			Charts: c.summaryCharts,
		},
		render.Heading{Level: 2, Text: "📅 XGBoost Monthly Performance" + c.seriesSuffix},
		seriesSection("monthly", "Monthly Metrics", catalog.Monthly(t), c),
		render.Heading{Level: 2, Text: "📅 XGBoost Yearly Performance" + c.seriesSuffix},
		seriesSection("yearly", "Yearly Metrics", catalog.Yearly(t), c),
		render.Divider{},
		analysisTabs(t, c),
	)

	return render.Page{Info: info, Nodes: nodes, Footer: c.footer}
}

func seriesSection(id, title string, s catalog.Series, c topicCopy) render.MetricSection {
	fitAxis, errorAxis := s.Axes.Fit, s.Axes.Error
	return render.MetricSection{
		ID:    id,
		Title: title,
		Table: render.TimeSeriesTable(s.TimeSeries, render.Formatting{
			ErrorHeader:   "RMSE",
			FitHeader:     "R²",
			ErrorDecimals: 5,
			FitDecimals:   c.seriesFitDecimals,
		}),
		Charts: []render.ChartSpec{
			{
				Kind:          render.LineChart,
				TabLabel:      "R² Score",
				Column:        render.FitColumn,
				YTitle:        "R² Score",
				ValueDecimals: 3,
				Axis:          &fitAxis,
				Palette:       render.PaletteFitLine,
			},
			{
				Kind:          render.LineChart,
				TabLabel:      "RMSE",
				Column:        render.ErrorColumn,
				YTitle:        "RMSE",
				ValueDecimals: c.errorLabelDecimals,
				Axis:          &errorAxis,
				Palette:       render.PaletteErrorLine,
			},
		},
	}
}

func analysisTabs(t model.Topic, c topicCopy) render.TabGroup {
	contents := [6]func() []render.Node{
		func() []render.Node { return featureImportance(t, c) },
		func() []render.Node { return actualVsPredicted(t, c) },
		func() []render.Node {
			return imageTab(t, c.yearlyHeading, c.yearly, [2][]string{
				{"top15_yearly_bar.png", "top10_yearly_pie.png"},
				{"yearly_heatmap.png", "yearly_stacked_bar.png"},
			})
		},
		func() []render.Node {
			return imageTab(t, c.monthlyHeading, c.monthly, [2][]string{
				{"top15_monthly_bar.png", "top10_monthly_pie.png"},
				{"monthly_heatmap.png", "monthly_stacked_bar.png"},
			})
		},
		func() []render.Node {
			return imageTab(t, c.shapHeading, c.shap, [2][]string{
				{"shap_with_10year_Summary_Plot.png", "shap_with_10year_Waterfall_Plot.png"},
				{"shap_yearly.png", "shap_monthly.png"},
			})
		},
		func() []render.Node { return gridPerformance(t, c) },
	}

	g := render.TabGroup{ID: GroupAnalysis}
	for i, label := range c.tabs {
		g.Tabs = append(g.Tabs, render.Tab{
			Label:   label,
			Slug:    render.Slugify(label),
			Content: contents[i],
		})
	}
	return g
}

func featureImportance(t model.Topic, c topicCopy) []render.Node {
	nodes := []render.Node{render.Heading{Level: 3, Text: c.featureHeading}}
	for _, m := range importanceModels {
		nodes = append(nodes, render.Expander{
			Title: m.name,
			Open:  c.featureOpen,
			Children: []render.Node{render.Gallery{
				Topic:   t,
				Columns: 2,
				Refs: mustRefs(
					model.I(m.key+"_importance.png", m.name+" Feature Importance"),
					model.I(m.key+"_importance_%_pie_chart.png", m.name+" Feature Contribution"),
				),
			}},
		})
	}
	return nodes
}

func actualVsPredicted(t model.Topic, c topicCopy) []render.Node {
	return []render.Node{
		render.Heading{Level: 3, Text: c.actualHeading},
		render.Heading{Level: 4, Text: c.actualSubheading},
		render.Gallery{
			Topic:   t,
			Columns: 2,
			Refs: mustRefs(
				model.I("xgboost_actual_vs_pred_28.png", c.allFeatures),
				model.I("xgboost_actual_vs_pred_15.png", "Top 15 Features"),
				model.I("xgboost_actual_vs_pred_8.png", "Top 8 Features"),
				model.I("xgboost_actual_vs_pred_5.png", "Top 5 Features"),
				model.I("xgboost_actual_vs_pred_combined.png", "Combined Analysis"),
			),
		},
	}
}

// imageTab lays out two rows of images under a heading. A row without its own title
// joins the gallery before it.
func imageTab(t model.Topic, heading string, sets [2]imageSet, files [2][]string) []render.Node {
	nodes := []render.Node{render.Heading{Level: 3, Text: heading}}

	var current *render.Gallery
	flush := func() {
		if current != nil {
			nodes = append(nodes, *current)
			current = nil
		}
	}
	for i, set := range sets {
		if set.title != "" || current == nil {
			flush()
			current = &render.Gallery{Title: set.title, Topic: t, Columns: 2}
		}
		for j, file := range files[i] {
			current.Refs = append(current.Refs, mustRefs(model.I(file, set.captions[j]))...)
		}
	}
	flush()
	return nodes
}

func gridPerformance(t model.Topic, c topicCopy) []render.Node {
	nodes := []render.Node{render.Heading{Level: 3, Text: c.gridHeading}}
	if c.gridSubheading != "" {
		nodes = append(nodes, render.Heading{Level: 4, Text: c.gridSubheading})
	}
	for _, m := range gridModels {
		file := fmt.Sprintf("%s R2score Performance (%s).png", m.key, t.Variable())
		nodes = append(nodes, render.Expander{
			Title: fmt.Sprintf(c.gridExpander, m.name),
			Open:  c.gridOpen,
			Children: []render.Node{render.Gallery{
				Topic:   t,
				Columns: 1,
				Refs:    mustRefs(model.I(file, fmt.Sprintf(c.gridCaption, m.name))),
			}},
		})
	}
	return nodes
}
