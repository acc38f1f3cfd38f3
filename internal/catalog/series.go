package catalog

import (
	"github.com/soil-insights/soilboard/internal/model"
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var years = []string{"2015", "2016", "2017", "2018", "2019", "2020", "2021", "2022", "2023", "2024"}

// SeriesAxes are the y-axis hints of a series' trend charts.
type SeriesAxes struct {
	Fit   model.AxisRange `json:"r2"`
	Error model.AxisRange `json:"rmse"`
}

type Series struct {
	model.TimeSeries
	Axes SeriesAxes `json:"axes"`
}

func series(header string, periods []string, meanRMSE, meanR2 float64, rmse, r2 []float64, axes SeriesAxes) Series {
	if len(rmse) != len(periods) || len(r2) != len(periods) {
		panic("catalog: series " + header + " does not cover every period")
	}
	rows := make([]model.TimeSeriesRow, len(periods))
	for i, p := range periods {
		rows[i] = model.P(p, rmse[i], r2[i])
	}
	return Series{
		TimeSeries: model.MustTimeSeries(header, meanRMSE, meanR2, rows...),
		Axes:       axes,
	}
}

// Monthly is the XGBoost performance per calendar month, with its mean.
func Monthly(t model.Topic) Series {
	switch t {
	case model.TopicSurface:
		return series("Month", months, 0.0324, 0.8879,
			[]float64{0.042857, 0.031591, 0.030722, 0.027974, 0.032437, 0.032745, 0.027635, 0.027368, 0.029675, 0.032624, 0.035653, 0.037435},
			[]float64{0.748952, 0.870841, 0.886332, 0.913114, 0.905789, 0.925801, 0.92377, 0.927474, 0.925191, 0.915619, 0.866626, 0.844909},
			SeriesAxes{Fit: model.AxisRange{Min: 0.7, Max: 0.95}, Error: model.AxisRange{Min: 0.025, Max: 0.045}},
		)
	case model.TopicRootZone:
		return series("Month", months, 0.0292, 0.8818,
			[]float64{0.02517, 0.0234, 0.02182, 0.02261, 0.02765, 0.0335, 0.04522, 0.03431, 0.03085, 0.02935, 0.02825, 0.02808},
			[]float64{0.8715, 0.8927, 0.9163, 0.9267, 0.9065, 0.8949, 0.8155, 0.8644, 0.8878, 0.888, 0.863, 0.8548},
			SeriesAxes{Fit: model.AxisRange{Min: 0.8, Max: 0.94}, Error: model.AxisRange{Min: 0.02, Max: 0.047}},
		)
	default:
		return series("Month", months, 0.0254, 0.912,
			[]float64{0.02361, 0.02271, 0.02156, 0.0211, 0.02315, 0.02509, 0.0305, 0.03109, 0.03017, 0.02582, 0.02456, 0.02572},
			[]float64{0.91031, 0.91371, 0.92066, 0.92892, 0.91878, 0.91649, 0.89804, 0.8973, 0.90285, 0.92343, 0.9166, 0.8967},
			SeriesAxes{Fit: model.AxisRange{Min: 0.88, Max: 0.94}, Error: model.AxisRange{Min: 0.02, Max: 0.032}},
		)
	}
}

// Yearly is the XGBoost performance per year, with its mean.
func Yearly(t model.Topic) Series {
	switch t {
	case model.TopicSurface:
		return series("Year", years, 0.0561, 0.6567,
			[]float64{0.06259, 0.047557, 0.047202, 0.049984, 0.055594, 0.068118, 0.056743, 0.071928, 0.052099, 0.048862},
			[]float64{0.596767, 0.693501, 0.764806, 0.714968, 0.713004, 0.513201, 0.686846, 0.391223, 0.721574, 0.771139},
			SeriesAxes{Fit: model.AxisRange{Min: 0.35, Max: 0.8}, Error: model.AxisRange{Min: 0.045, Max: 0.075}},
		)
	case model.TopicRootZone:
		return series("Year", years, 0.0455, 0.6797,
			[]float64{0.04654, 0.04667, 0.04548, 0.04418, 0.04526, 0.04891, 0.04634, 0.04423, 0.04557, 0.04176},
			[]float64{0.6731, 0.6281, 0.7047, 0.6821, 0.7195, 0.6516, 0.6851, 0.6745, 0.6583, 0.7201},
			SeriesAxes{Fit: model.AxisRange{Min: 0.6, Max: 0.75}, Error: model.AxisRange{Min: 0.04, Max: 0.05}},
		)
	default:
		return series("Year", years, 0.0359, 0.8266,
			[]float64{0.0381, 0.03999, 0.03469, 0.03465, 0.03447, 0.03943, 0.03612, 0.03342, 0.03539, 0.03272},
			[]float64{0.7895, 0.78494, 0.84115, 0.83321, 0.85489, 0.80275, 0.83417, 0.84762, 0.83013, 0.84774},
			SeriesAxes{Fit: model.AxisRange{Min: 0.75, Max: 0.88}, Error: model.AxisRange{Min: 0.03, Max: 0.042}},
		)
	}
}
