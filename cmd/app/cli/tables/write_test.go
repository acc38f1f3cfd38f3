package tables

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soil-insights/soilboard/internal/dashboard"
	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/render"
)

func write(t *testing.T, route model.Route) string {
	t.Helper()

	page, ok := dashboard.Build(route)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, page, false))
	return buf.String()
}

// assertInOrder checks that every needle occurs in out, each after the previous one.
func assertInOrder(t *testing.T, out string, needles ...string) {
	t.Helper()

	rest := out
	for _, needle := range needles {
		i := strings.Index(rest, needle)
		if !assert.NotEqual(t, -1, i, "%q missing or out of order", needle) {
			return
		}
		rest = rest[i+len(needle):]
	}
}

func TestWriteHome(t *testing.T) {
	out := write(t, model.RouteHome)

	assert.True(t, strings.HasPrefix(out, "🌱 Soil Moisture Prediction Dashboard\n"))
	assertInOrder(t, out,
		"🏆 Model Performance Comparison › Surface Soil Moisture\n", "XGBoost", "0.91766",
		"🏆 Model Performance Comparison › Root Zone Soil Moisture\n", "XGBoost",
		"🏆 Model Performance Comparison › Total Soil Moisture\n", "XGBoost",
		"📦 Clustering Analysis › Surface Soil Moisture\n", "Silhouette Score",
		"📦 Clustering Analysis › Root Zone Soil Moisture\n", "Silhouette Score",
		"📦 Clustering Analysis › Total Soil Moisture\n", "Silhouette Score",
	)
	assert.Contains(t, out, "0.03359")
	// headers are printed as written
	assert.Contains(t, out, "R²")
	assert.NotContains(t, out, "R ²")
}

func TestWriteClusters(t *testing.T) {
	out := write(t, model.RouteClusters)

	for _, topic := range model.Topics {
		assertInOrder(t, out,
			fmt.Sprintf("%s › 📊 Clustering Performance\n", topic.Name()), "Silhouette Score",
			fmt.Sprintf("%s › ⚡ XGBoost Performance by Cluster\n", topic.Name()), "Without Cluster",
		)
	}
}

func TestWriteTopicKeepsMean(t *testing.T) {
	assert.Contains(t, write(t, model.RouteSurface), "Mean")
}

func TestWriteTableShortRow(t *testing.T) {
	table := render.Table{
		LabelHeader: "Model",
		Columns: []render.Column{
			{Header: "RMSE", Decimals: 4, Highlight: render.HighlightMin},
			{Header: "R²", Decimals: 4, Highlight: render.HighlightMax},
		},
		Rows: []render.Row{
			{Label: "complete", Values: []float64{0.1, 0.9}},
			{Label: "short", Values: []float64{0.2}},
		},
	}

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, writeTable(&buf, table, fmt.Sprint, fmt.Sprint))
	})
	assert.Contains(t, buf.String(), "short")
	assert.Contains(t, buf.String(), "0.9000")
}
