package render

import (
	"github.com/samber/lo"

	"github.com/soil-insights/soilboard/internal/model"
)

// Highlight selects which rows of a column are marked.
type Highlight int

const (
	HighlightNone Highlight = iota
	// HighlightMax marks the maximum as best.
	HighlightMax
	// HighlightMin marks the minimum as best.
	HighlightMin
	// HighlightExtremes marks the maximum as best and the minimum as worst.
	HighlightExtremes
)

// Column indices of tables built from metric rows.
const (
	ErrorColumn = 0
	FitColumn   = 1
)

type Column struct {
	Header    string
	Decimals  int
	Highlight Highlight
}

type Row struct {
	Label  string
	Values []float64
	// Synthetic rows (e.g. a trailing mean) are displayed but never highlighted or plotted.
	Synthetic bool
}

type Table struct {
	LabelHeader string
	Columns     []Column
	Rows        []Row
}

// Marks holds the best and worst row index of a column, -1 when there is none.
type Marks struct {
	Best  int
	Worst int
}

// Formatting describes the headers and fixed precision of a metric table.
type Formatting struct {
	LabelHeader   string
	ErrorHeader   string
	FitHeader     string
	ErrorDecimals int
	FitDecimals   int
}

// MetricFormatting is the common "Model | RMSE | R²" layout with one precision for both columns.
func MetricFormatting(labelHeader string, decimals int) Formatting {
	return Formatting{
		LabelHeader:   labelHeader,
		ErrorHeader:   "RMSE",
		FitHeader:     "R²",
		ErrorDecimals: decimals,
		FitDecimals:   decimals,
	}
}

// MetricTable lays out metric rows with the lowest error and the highest fit highlighted.
func MetricTable(rows model.MetricTable, f Formatting) Table {
	return Table{
		LabelHeader: f.LabelHeader,
		Columns: []Column{
			{Header: f.ErrorHeader, Decimals: f.ErrorDecimals, Highlight: HighlightMin},
			{Header: f.FitHeader, Decimals: f.FitDecimals, Highlight: HighlightMax},
		},
		Rows: lo.Map(rows, func(r model.MetricRow, _ int) Row {
			return Row{Label: r.Label, Values: []float64{r.Error, r.Fit}}
		}),
	}
}

// TimeSeriesTable is MetricTable for a time series; the synthetic mean row is kept for display.
func TimeSeriesTable(ts model.TimeSeries, f Formatting) Table {
	if f.LabelHeader == "" {
		f.LabelHeader = ts.PeriodHeader
	}
	t := MetricTable(ts.AsMetricTable(), f)
	for i, r := range ts.Rows {
		t.Rows[i].Synthetic = r.Synthetic
	}
	return t
}

// ClusterTable lays out silhouette scores with the best and worst methods highlighted.
func ClusterTable(scores []model.ClusterScore, labelHeader string, decimals int) Table {
	return Table{
		LabelHeader: labelHeader,
		Columns: []Column{
			{Header: "Silhouette Score", Decimals: decimals, Highlight: HighlightExtremes},
		},
		Rows: lo.Map(scores, func(s model.ClusterScore, _ int) Row {
			return Row{Label: s.Method, Values: []float64{s.Silhouette}}
		}),
	}
}

// Marks computes the highlighted rows of every column. Ties resolve to the first occurrence.
func (t Table) Marks() []Marks {
	marks := make([]Marks, len(t.Columns))
	for c, col := range t.Columns {
		maxIdx := t.extreme(c, func(a, b float64) bool { return a > b })
		minIdx := t.extreme(c, func(a, b float64) bool { return a < b })
		switch col.Highlight {
		case HighlightMax:
			marks[c] = Marks{Best: maxIdx, Worst: -1}
		case HighlightMin:
			marks[c] = Marks{Best: minIdx, Worst: -1}
		case HighlightExtremes:
			marks[c] = Marks{Best: maxIdx, Worst: minIdx}
			if maxIdx == minIdx {
				marks[c].Worst = -1
			}
		default:
			marks[c] = Marks{Best: -1, Worst: -1}
		}
	}
	return marks
}

// extreme returns the index of the first row whose value in column c beats every other
// according to better, skipping synthetic rows.
func (t Table) extreme(c int, better func(a, b float64) bool) int {
	idx := -1
	for i, r := range t.Rows {
		if r.Synthetic || c >= len(r.Values) {
			continue
		}
		if idx == -1 || better(r.Values[c], t.Rows[idx].Values[c]) {
			idx = i
		}
	}
	return idx
}

// BestFit returns the index of the row with the highest fit score, or -1 for an empty table.
func BestFit(rows model.MetricTable) int {
	return MetricTable(rows, Formatting{}).Marks()[FitColumn].Best
}

// BestError returns the index of the row with the lowest error, or -1 for an empty table.
func BestError(rows model.MetricTable) int {
	return MetricTable(rows, Formatting{}).Marks()[ErrorColumn].Best
}

// Plotted returns the labels and values of column c for rows that belong on a chart.
func (t Table) Plotted(c int) ([]string, []float64) {
	var labels []string
	var values []float64
	for _, r := range t.Rows {
		if r.Synthetic || c >= len(r.Values) {
			continue
		}
		labels = append(labels, r.Label)
		values = append(values, r.Values[c])
	}
	return labels, values
}
