// Package catalog holds the precomputed evaluation results shown by the dashboard.
// Every value is a literal; nothing here is computed at run time.
package catalog

import (
	"github.com/soil-insights/soilboard/internal/model"
)

// Model names as they appear in tables and charts.
const (
	XGBoost          = "XGBoost"
	GradientBoosting = "Gradient Boosting"
	RandomForest     = "Random Forest"
	DecisionTree     = "Decision Tree"
	LinearRegression = "Linear Regression"
	CNNLSTM          = "CNN-LSTM"
	LSTM             = "LSTM"
	CNNGRU           = "CNN-GRU"
	CNN1D            = "CNN 1D"
)

// ModelComparison is the nine model comparison of a topic, reported at five decimals.
func ModelComparison(t model.Topic) model.MetricTable {
	switch t {
	case model.TopicSurface:
		return model.MustMetricTable(
			model.M(XGBoost, 0.03359, 0.91766),
			model.M(GradientBoosting, 0.03649, 0.90287),
			model.M(RandomForest, 0.05272, 0.82486),
			model.M(DecisionTree, 0.05309, 0.79442),
			model.M(LinearRegression, 0.07063, 0.63607),
			model.M(CNNLSTM, 0.04525, 0.90377),
			model.M(LSTM, 0.24283, 0.85773),
			model.M(CNNGRU, 0.04335, 0.88479),
			model.M(CNN1D, 0.05829, 0.81874),
		)
	case model.TopicRootZone:
		return model.MustMetricTable(
			model.M(XGBoost, 0.03132, 0.90477),
			model.M(GradientBoosting, 0.03421, 0.88641),
			model.M(RandomForest, 0.05028, 0.75459),
			model.M(DecisionTree, 0.05258, 0.73157),
			model.M(LinearRegression, 0.06915, 0.53577),
			model.M(CNNLSTM, 0.03604, 0.89259),
			model.M(LSTM, 0.22437, 0.87811),
			model.M(CNNGRU, 0.04940, 0.88335),
			model.M(CNN1D, 0.04881, 0.87635),
		)
	case model.TopicTotal:
		return model.MustMetricTable(
			model.M(XGBoost, 0.02694, 0.91110),
			model.M(GradientBoosting, 0.02991, 0.89046),
			model.M(RandomForest, 0.06261, 0.79556),
			model.M(DecisionTree, 0.04772, 0.72112),
			model.M(LinearRegression, 0.06615, 0.46417),
			model.M(CNNLSTM, 0.06882, 0.89974),
			model.M(LSTM, 0.24355, 0.83889),
			model.M(CNNGRU, 0.06271, 0.87385),
			model.M(CNN1D, 0.05595, 0.85728),
		)
	}
	return nil
}

// ModelSummary is the tree model summary shown at the top of a topic's analysis page.
// Surface figures are rounded to four decimals; total also lists CNN-LSTM.
func ModelSummary(t model.Topic) model.MetricTable {
	switch t {
	case model.TopicSurface:
		return model.MustMetricTable(
			model.M(XGBoost, 0.0336, 0.9177),
			model.M(GradientBoosting, 0.0365, 0.9029),
			model.M(RandomForest, 0.0527, 0.8249),
			model.M(DecisionTree, 0.0531, 0.7944),
			model.M(LinearRegression, 0.0706, 0.6361),
		)
	case model.TopicRootZone:
		return model.MustMetricTable(
			model.M(XGBoost, 0.03132, 0.90477),
			model.M(GradientBoosting, 0.03421, 0.88641),
			model.M(RandomForest, 0.05028, 0.75459),
			model.M(DecisionTree, 0.05258, 0.73157),
			model.M(LinearRegression, 0.06915, 0.53577),
		)
	case model.TopicTotal:
		return model.MustMetricTable(
			model.M(XGBoost, 0.02694, 0.91110),
			model.M(GradientBoosting, 0.02991, 0.89046),
			model.M(RandomForest, 0.06261, 0.79556),
			model.M(DecisionTree, 0.04772, 0.72112),
			model.M(LinearRegression, 0.06615, 0.46417),
			model.M(CNNLSTM, 0.06882, 0.89974),
		)
	}
	return nil
}

// SummaryDecimals is the precision ModelSummary is reported at.
func SummaryDecimals(t model.Topic) int {
	if t == model.TopicSurface {
		return 4
	}
	return 5
}
