package dashboard

import (
	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/render"
)

// imageSet is a titled group of images; an empty title continues the previous group.
type imageSet struct {
	title    string
	captions []string
}

// topicCopy holds the wording and presentation choices that differ between the
// three analysis pages. Data lives in the catalog package.
type topicCopy struct {
	intro  string
	footer string

	// summaryCharts lists the summary chart tabs; a single entry is drawn without tabs.
	summaryCharts []render.ChartSpec
	// seriesSuffix is appended to the monthly and yearly section titles.
	seriesSuffix       string
	seriesFitDecimals  int
	errorLabelDecimals int

	tabs [6]string

	featureHeading string
	featureOpen    bool

	actualHeading    string
	actualSubheading string
	allFeatures      string

	yearlyHeading  string
	yearly         [2]imageSet
	monthlyHeading string
	monthly        [2]imageSet

	shapHeading string
	shap        [2]imageSet

	gridHeading    string
	gridSubheading string
	gridExpander   string
	gridCaption    string
	gridOpen       bool
}

func fitBar(title string) render.ChartSpec {
	return render.ChartSpec{
		Kind:          render.BarChart,
		Title:         title,
		TabLabel:      "R² Score",
		Column:        render.FitColumn,
		YTitle:        "R² Score",
		ValueDecimals: 3,
		Palette:       render.PalettePastel,
	}
}

func errorBar(decimals int) render.ChartSpec {
	return render.ChartSpec{
		Kind:          render.BarChart,
		TabLabel:      "RMSE",
		Column:        render.ErrorColumn,
		YTitle:        "RMSE",
		ValueDecimals: decimals,
		Palette:       render.PalettePastel,
	}
}

var topicCopies = map[model.Topic]topicCopy{
	model.TopicSurface: {
		footer:             "Soil Moisture Analysis Dashboard",
		summaryCharts:      []render.ChartSpec{fitBar("Model Performance (R² Score)")},
		seriesSuffix:       " (Surface Soil Moisture)",
		seriesFitDecimals:  5,
		errorLabelDecimals: 5,
		tabs: [6]string{
			"📊 Feature Importance",
			"📈 Actual vs. Predicted",
			"🗓️ Yearly Features",
			"📅 Monthly Features",
			"🔍 SHAP Analysis",
			"🌐 Grid-wise Performance",
		},
		featureHeading:   "Feature Importance by Models",
		featureOpen:      true,
		actualHeading:    "Actual vs. Predicted Values",
		actualSubheading: "XGBoost Model Performance with Different Feature Sets",
		allFeatures:      "All 28 Features",
		yearlyHeading:    "Yearly Feature Analysis",
		yearly: [2]imageSet{
			{"Top Features Across Years (XGBoost)", []string{"Top 15 Features - Bar Chart", "Top 10 Features - Pie Chart"}},
			{"Feature Importance Trends", []string{"Feature Importance Heatmap (Years)", "Top 10 Feature Contributions (Stacked Bar)"}},
		},
		monthlyHeading: "Monthly Feature Analysis",
		monthly: [2]imageSet{
			{"Top Features Across Months (XGBoost)", []string{"Top 15 Features - Bar Chart", "Top 10 Features - Pie Chart"}},
			{"Feature Importance Trends", []string{"Feature Importance Heatmap (Months)", "Top 10 Feature Contributions (Stacked Bar)"}},
		},
		shapHeading: "SHAP Analysis",
		shap: [2]imageSet{
			{"XGBoost Model Interpretability", []string{"SHAP Summary Plot (10 Years Data)", "SHAP Waterfall Plot (10 Years Data)"}},
			{"Temporal SHAP Analysis", []string{"Yearly SHAP Values", "Monthly SHAP Values"}},
		},
		gridHeading:  "Grid-wise Performance Analysis",
		gridExpander: "%s Performance",
		gridCaption:  "%s R² Score Distribution",
		gridOpen:     true,
	},
	model.TopicRootZone: {
		intro: "This dashboard provides comprehensive analysis of root zone soil moisture patterns, " +
			"model performance, and feature importance across different temporal and spatial scales.",
		footer:             "Root Zone Soil Moisture Analysis Dashboard",
		summaryCharts:      []render.ChartSpec{fitBar("R² Score Comparison")},
		seriesSuffix:       " (Root Zone Soil Moisture)",
		seriesFitDecimals:  4,
		errorLabelDecimals: 5,
		tabs: [6]string{
			"📊 Feature Importance",
			"📈 Actual vs. Predicted",
			"🗓️ Yearly Analysis",
			"📅 Monthly Analysis",
			"🔍 SHAP Interpretation",
			"🌐 Spatial Patterns",
		},
		featureHeading:   "Feature Importance Analysis",
		featureOpen:      true,
		actualHeading:    "Actual vs. Predicted Values",
		actualSubheading: "XGBoost Model Performance",
		allFeatures:      "All Features",
		yearlyHeading:    "Yearly Feature Patterns",
		yearly: [2]imageSet{
			{"", []string{"Top 15 Features - Bar Chart", "Top 10 Features - Pie Chart"}},
			{"", []string{"Yearly Feature Importance Heatmap", "Top 10 Feature Contributions"}},
		},
		monthlyHeading: "Monthly Feature Patterns",
		monthly: [2]imageSet{
			{"", []string{"Top 15 Features - Bar Chart", "Top 10 Features - Pie Chart"}},
			{"", []string{"Monthly Feature Importance Heatmap", "Top 10 Feature Contributions"}},
		},
		shapHeading: "SHAP Value Analysis",
		shap: [2]imageSet{
			{"Model Interpretability", []string{"SHAP Summary Plot (10 Years)", "SHAP Waterfall Plot (10 Years)"}},
			{"Temporal Patterns", []string{"Yearly SHAP Values", "Monthly SHAP Values"}},
		},
		gridHeading:  "Spatial Performance Patterns",
		gridExpander: "%s Spatial Performance",
		gridCaption:  "%s R² Spatial Distribution",
		gridOpen:     true,
	},
	model.TopicTotal: {
		intro: "This dashboard provides comprehensive insights into total soil moisture patterns, " +
			"model performance, and feature importance across different temporal and spatial scales. " +
			"Analyze how different models perform and understand the key drivers of soil moisture variability.",
		footer:             "Total Soil Moisture Analysis Dashboard | Soil Science Analytics",
		summaryCharts:      []render.ChartSpec{fitBar(""), errorBar(4)},
		seriesFitDecimals:  5,
		errorLabelDecimals: 4,
		tabs: [6]string{
			"📊 Feature Importance",
			"📈 Actual vs. Predicted",
			"🗓️ Yearly Patterns",
			"📅 Monthly Patterns",
			"🔍 Model Interpretation",
			"🌍 Spatial Analysis",
		},
		featureHeading:   "Feature Importance Analysis",
		actualHeading:    "Model Validation",
		actualSubheading: "Actual vs. Predicted Values (XGBoost)",
		allFeatures:      "All Features",
		yearlyHeading:    "Temporal Analysis - Yearly Patterns",
		yearly: [2]imageSet{
			{"", []string{"Top 15 Features (Bar Chart)", "Top 10 Features (Pie Chart)"}},
			{"", []string{"Feature Importance Heatmap", "Top Feature Contributions"}},
		},
		monthlyHeading: "Temporal Analysis - Monthly Patterns",
		monthly: [2]imageSet{
			{"", []string{"Top 15 Features (Bar Chart)", "Top 10 Features (Pie Chart)"}},
			{"", []string{"Feature Importance Heatmap", "Top Feature Contributions"}},
		},
		shapHeading: "Model Interpretation",
		shap: [2]imageSet{
			{"SHAP Value Analysis", []string{"SHAP Summary Plot (10 Years)", "SHAP Waterfall Plot (10 Years)"}},
			{"Temporal SHAP Patterns", []string{"Yearly SHAP Values", "Monthly SHAP Values"}},
		},
		gridHeading:    "Spatial Analysis",
		gridSubheading: "Grid-wise Model Performance",
		gridExpander:   "%s Spatial Performance",
		gridCaption:    "%s R² Spatial Distribution",
	},
}
