package model

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const MeanLabel = "Mean"

// TimeSeriesRow is a per-period metric pair. Period is a month name or a year.
// Synthetic rows (the trailing mean) are shown in tables but never plotted.
type TimeSeriesRow struct {
	Period    string  `json:"period" validate:"required"`
	Error     float64 `json:"rmse" validate:"gte=0"`
	Fit       float64 `json:"r2" validate:"lte=1"`
	Synthetic bool    `json:"synthetic,omitempty"`
}

type TimeSeries struct {
	// PeriodHeader names the period column, e.g. "Month" or "Year".
	PeriodHeader string          `json:"periodHeader" validate:"required"`
	Rows         []TimeSeriesRow `json:"rows" validate:"dive"`
}

func P(period string, rmse, r2 float64) TimeSeriesRow {
	return TimeSeriesRow{Period: period, Error: rmse, Fit: r2}
}

// MustTimeSeries builds a series from rows followed by a synthetic mean row.
func MustTimeSeries(header string, meanRMSE, meanR2 float64, rows ...TimeSeriesRow) TimeSeries {
	all := append(append([]TimeSeriesRow{}, rows...), TimeSeriesRow{
		Period:    MeanLabel,
		Error:     meanRMSE,
		Fit:       meanR2,
		Synthetic: true,
	})
	ts := TimeSeries{PeriodHeader: header, Rows: all}
	if err := Validate.Struct(ts); err != nil {
		panic(errors.Wrapf(err, "invalid %s series", header))
	}
	return ts
}

// Trend returns the rows that belong on a trend chart.
func (ts TimeSeries) Trend() []TimeSeriesRow {
	return lo.Filter(ts.Rows, func(r TimeSeriesRow, _ int) bool {
		return !r.Synthetic
	})
}

// AsMetricTable projects the series onto metric rows, keeping synthetic rows.
func (ts TimeSeries) AsMetricTable() MetricTable {
	return lo.Map(ts.Rows, func(r TimeSeriesRow, _ int) MetricRow {
		return MetricRow{Label: r.Period, Error: r.Error, Fit: r.Fit}
	})
}
