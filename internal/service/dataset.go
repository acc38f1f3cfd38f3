package service

import (
	"github.com/samber/lo"

	"github.com/soil-insights/soilboard/internal/catalog"
	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/render"
)

// Dataset exposes the literal page data for machine consumption.
type Dataset struct{}

func NewDataset() *Dataset {
	return &Dataset{}
}

type MetricRowView struct {
	Label    string  `json:"label"`
	RMSE     float64 `json:"rmse"`
	R2       float64 `json:"r2"`
	BestR2   bool    `json:"bestR2,omitempty"`
	BestRMSE bool    `json:"bestRmse,omitempty"`
}

type ModelsView struct {
	Topic      model.Topic     `json:"topic"`
	Comparison []MetricRowView `json:"comparison"`
	Summary    []MetricRowView `json:"summary"`
}

type SeriesRowView struct {
	Period string  `json:"period"`
	RMSE   float64 `json:"rmse"`
	R2     float64 `json:"r2"`
	Mean   bool    `json:"mean,omitempty"`
}

type SeriesView struct {
	Topic  model.Topic        `json:"topic"`
	Header string             `json:"header"`
	Rows   []SeriesRowView    `json:"rows"`
	Axes   catalog.SeriesAxes `json:"axes"`
}

type ClustersView struct {
	Topic      model.Topic          `json:"topic"`
	Variable   string               `json:"variable"`
	Silhouette []model.ClusterScore `json:"silhouette"`
	ByCluster  []MetricRowView      `json:"byCluster"`
}

// metricRows marks the rows a rendered table would highlight, one flag per column.
func metricRows(t model.MetricTable) []MetricRowView {
	bestFit, bestError := render.BestFit(t), render.BestError(t)
	return lo.Map(t, func(r model.MetricRow, i int) MetricRowView {
		return MetricRowView{
			Label:    r.Label,
			RMSE:     r.Error,
			R2:       r.Fit,
			BestR2:   i == bestFit,
			BestRMSE: i == bestError,
		}
	})
}

func (s *Dataset) Routes() []model.RouteInfo {
	return model.Routes
}

func (s *Dataset) Models(t model.Topic) ModelsView {
	return ModelsView{
		Topic:      t,
		Comparison: metricRows(catalog.ModelComparison(t)),
		Summary:    metricRows(catalog.ModelSummary(t)),
	}
}

func (s *Dataset) series(t model.Topic, src catalog.Series) SeriesView {
	return SeriesView{
		Topic:  t,
		Header: src.PeriodHeader,
		Rows: lo.Map(src.Rows, func(r model.TimeSeriesRow, _ int) SeriesRowView {
			return SeriesRowView{Period: r.Period, RMSE: r.Error, R2: r.Fit, Mean: r.Synthetic}
		}),
		Axes: src.Axes,
	}
}

func (s *Dataset) Monthly(t model.Topic) SeriesView {
	return s.series(t, catalog.Monthly(t))
}

func (s *Dataset) Yearly(t model.Topic) SeriesView {
	return s.series(t, catalog.Yearly(t))
}

func (s *Dataset) Clusters(t model.Topic) ClustersView {
	return ClustersView{
		Topic:      t,
		Variable:   t.Name(),
		Silhouette: catalog.Silhouette(t, false),
		ByCluster:  metricRows(catalog.ByCluster(t)),
	}
}
