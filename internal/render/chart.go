package render

import (
	"fmt"
	"math"

	"github.com/soil-insights/soilboard/internal/model"
)

type ChartKind int

const (
	BarChart ChartKind = iota
	LineChart
)

func (k ChartKind) String() string {
	if k == LineChart {
		return "line"
	}
	return "bar"
}

// ChartSpec describes a chart of one numeric column of a section's table.
type ChartSpec struct {
	Kind  ChartKind
	Title string
	// Column is the table column plotted.
	Column int
	// TabLabel names the chart when a section carries several charts.
	TabLabel string
	YTitle   string
	// ValueDecimals is the precision of the value labels drawn on the chart.
	ValueDecimals int
	// Axis is an optional y-axis hint. It is only honored when it contains every plotted value.
	Axis    *model.AxisRange
	Palette Palette
}

const (
	chartWidth   = 640.0
	chartHeight  = 380.0
	marginLeft   = 64.0
	marginRight  = 20.0
	marginTop    = 44.0
	marginBottom = 84.0
	tickCount    = 5
)

type svgTick struct {
	Y     float64
	Label string
}

type svgBar struct {
	X, Y, W, H float64
	Color      string
	Label      string
	Value      string
	LabelX     float64
	ValueY     float64
}

type svgPoint struct {
	X, Y  float64
	Label string
	Value string
}

// chartView is the geometry handed to the SVG templates.
type chartView struct {
	Kind         string
	Title        string
	YTitle       string
	Width        float64
	Height       float64
	PlotLeft     float64
	PlotRight    float64
	PlotTop      float64
	PlotBottom   float64
	BaselineY    float64
	LabelY       float64
	YTitleX      float64
	YTitleY      float64
	Ticks        []svgTick
	Bars         []svgBar
	Points       []svgPoint
	Polyline     string
	LineColor    string
	Empty        bool
	AxisFallback bool
}

// yDomain picks the y-axis domain for values. The hint wins only if it is usable and
// covers every value; fallback reports that a hint was given but rejected.
func yDomain(kind ChartKind, values []float64, hint *model.AxisRange) (lo, hi float64, fallback bool) {
	if len(values) == 0 {
		return 0, 1, false
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	if hint != nil {
		if hint.Min < hint.Max && hint.Contains(minV) && hint.Contains(maxV) {
			return hint.Min, hint.Max, false
		}
		fallback = true
	}

	if kind == BarChart {
		lo, hi = math.Min(0, minV), math.Max(0, maxV)
		span := hi - lo
		if span == 0 {
			span = 1
		}
		// headroom for the value labels
		if hi > 0 {
			hi += span * 0.12
		}
		if lo < 0 {
			lo -= span * 0.12
		}
		return lo, hi, fallback
	}

	span := maxV - minV
	if span == 0 {
		span = math.Max(math.Abs(maxV)*0.1, 0.01)
	}
	return minV - span*0.15, maxV + span*0.15, fallback
}

// tickDecimals returns enough precision to tell ticks spaced step apart.
func tickDecimals(step float64) int {
	if step <= 0 {
		return 2
	}
	d := int(math.Ceil(-math.Log10(step))) + 1
	if d < 1 {
		d = 1
	}
	if d > 6 {
		d = 6
	}
	return d
}

func buildChartView(spec ChartSpec, labels []string, values []float64) (chartView, bool) {
	lo, hi, fallback := yDomain(spec.Kind, values, spec.Axis)

	v := chartView{
		Kind:         spec.Kind.String(),
		Title:        spec.Title,
		YTitle:       spec.YTitle,
		Width:        chartWidth,
		Height:       chartHeight,
		PlotLeft:     marginLeft,
		PlotRight:    chartWidth - marginRight,
		PlotTop:      marginTop,
		PlotBottom:   chartHeight - marginBottom,
		LabelY:       chartHeight - marginBottom + 14,
		YTitleX:      16,
		YTitleY:      marginTop + (chartHeight-marginTop-marginBottom)/2,
		Empty:        len(values) == 0,
		AxisFallback: fallback,
	}

	plotH := v.PlotBottom - v.PlotTop
	plotW := v.PlotRight - v.PlotLeft
	scale := func(x float64) float64 {
		return v.PlotBottom - (x-lo)/(hi-lo)*plotH
	}

	step := (hi - lo) / tickCount
	decimals := tickDecimals(step)
	for i := 0; i <= tickCount; i++ {
		t := lo + step*float64(i)
		v.Ticks = append(v.Ticks, svgTick{Y: round2(scale(t)), Label: FormatFixed(t, decimals)})
	}

	if v.Empty {
		v.BaselineY = v.PlotBottom
		return v, fallback
	}

	band := plotW / float64(len(values))
	switch spec.Kind {
	case BarChart:
		base := scale(math.Max(lo, math.Min(hi, 0)))
		v.BaselineY = round2(base)
		for i, val := range values {
			y := scale(val)
			top, h := math.Min(y, base), math.Abs(base-y)
			valueY := top - 6
			if val < 0 {
				valueY = top + h + 14
			}
			v.Bars = append(v.Bars, svgBar{
				X:      round2(v.PlotLeft + band*float64(i) + band*0.15),
				Y:      round2(top),
				W:      round2(band * 0.7),
				H:      round2(h),
				Color:  spec.Palette.At(i),
				Label:  labels[i],
				Value:  FormatFixed(val, spec.ValueDecimals),
				LabelX: round2(v.PlotLeft + band*float64(i) + band/2),
				ValueY: round2(valueY),
			})
		}
	case LineChart:
		v.BaselineY = v.PlotBottom
		v.LineColor = spec.Palette.At(0)
		for i, val := range values {
			x := round2(v.PlotLeft + band*float64(i) + band/2)
			y := round2(scale(val))
			v.Points = append(v.Points, svgPoint{
				X:     x,
				Y:     y,
				Label: labels[i],
				Value: FormatFixed(val, spec.ValueDecimals),
			})
			if i > 0 {
				v.Polyline += " "
			}
			v.Polyline += fmt.Sprintf("%g,%g", x, y)
		}
	}

	return v, fallback
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
