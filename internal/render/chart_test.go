package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soil-insights/soilboard/internal/model"
)

func TestYDomainHonorsContainingHint(t *testing.T) {
	lo, hi, fallback := yDomain(LineChart, []float64{0.75, 0.9}, &model.AxisRange{Min: 0.7, Max: 0.95})
	assert.False(t, fallback)
	assert.Equal(t, 0.7, lo)
	assert.Equal(t, 0.95, hi)
}

func TestYDomainRejectsHintMissingValues(t *testing.T) {
	// 0.748952 lies outside a [0.75, 0.95] hint
	values := []float64{0.748952, 0.93}
	lo, hi, fallback := yDomain(LineChart, values, &model.AxisRange{Min: 0.75, Max: 0.95})
	assert.True(t, fallback)
	assert.Less(t, lo, 0.748952)
	assert.Greater(t, hi, 0.93)
}

func TestYDomainRejectsInvertedHint(t *testing.T) {
	_, _, fallback := yDomain(BarChart, []float64{0.5}, &model.AxisRange{Min: 1, Max: 0})
	assert.True(t, fallback)
}

func TestYDomainBarIncludesZero(t *testing.T) {
	lo, hi, fallback := yDomain(BarChart, []float64{-0.0544, 0.5211}, nil)
	assert.False(t, fallback)
	assert.Less(t, lo, -0.0544)
	assert.Greater(t, hi, 0.5211)

	lo, _, _ = yDomain(BarChart, []float64{0.3, 0.9}, nil)
	assert.Equal(t, 0.0, lo)
}

func TestBuildChartViewBars(t *testing.T) {
	spec := ChartSpec{Kind: BarChart, Title: "R²", ValueDecimals: 3, Palette: PaletteSet1}
	view, fallback := buildChartView(spec, []string{"a", "b"}, []float64{0.91766, 0.63607})
	assert.False(t, fallback)
	assert.Len(t, view.Bars, 2)
	assert.Equal(t, "0.918", view.Bars[0].Value)
	assert.Equal(t, "#E41A1C", view.Bars[0].Color)
	assert.Equal(t, "#377EB8", view.Bars[1].Color)
	// taller bar for the larger value
	assert.Less(t, view.Bars[0].Y, view.Bars[1].Y)
}

func TestBuildChartViewEmpty(t *testing.T) {
	view, _ := buildChartView(ChartSpec{Kind: LineChart}, nil, nil)
	assert.True(t, view.Empty)
	assert.Empty(t, view.Points)
	assert.Len(t, view.Ticks, tickCount+1)
}

func TestPaletteWraps(t *testing.T) {
	p := Palette{"#000", "#fff"}
	assert.Equal(t, "#000", p.At(2))
	assert.Equal(t, PaletteDefault[0], Palette(nil).At(0))
}

func TestChartCacheKeyDependsOnInputs(t *testing.T) {
	spec := ChartSpec{Kind: BarChart, Title: "t"}
	a, err := chartCacheKey(spec, []string{"x"}, []float64{1})
	assert.NoError(t, err)
	b, err := chartCacheKey(spec, []string{"x"}, []float64{1})
	assert.NoError(t, err)
	c, err := chartCacheKey(spec, []string{"x"}, []float64{2})
	assert.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
