package model

import "github.com/pkg/errors"

// MetricRow is one model's score pair. Error is an RMSE and Fit an R² score.
type MetricRow struct {
	Label string  `json:"label" validate:"required"`
	Error float64 `json:"rmse" validate:"gte=0"`
	Fit   float64 `json:"r2" validate:"lte=1"`
}

// MetricTable is an ordered set of rows; insertion order is display order.
type MetricTable []MetricRow

func NewMetricRow(label string, rmse, r2 float64) (MetricRow, error) {
	row := MetricRow{Label: label, Error: rmse, Fit: r2}
	if err := Validate.Struct(row); err != nil {
		return MetricRow{}, errors.Wrapf(err, "invalid metric row %q", label)
	}
	return row, nil
}

// MustMetricTable validates rows and panics on an
// invalid row. It is meant for literal page data only.
func MustMetricTable(rows ...MetricRow) MetricTable {
	for _, r := range rows {
		if err := Validate.Struct(r); err != nil {
			panic(errors.Wrapf(err, "invalid metric row %q", r.Label))
		}
	}
	return MetricTable(rows)
}

// M is a shorthand constructor used by literal page data.
func M(label string, rmse, r2 float64) MetricRow {
	return MetricRow{Label: label, Error: rmse, Fit: r2}
}

func (t MetricTable) Labels() []string {
	labels := make([]string, len(t))
	for i, r := range t {
		labels[i] = r.Label
	}
	return labels
}
