package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricRow(t *testing.T) {
	row, err := NewMetricRow("XGBoost", 0.03359, 0.91766)
	require.NoError(t, err)
	assert.Equal(t, M("XGBoost", 0.03359, 0.91766), row)

	_, err = NewMetricRow("Negative", -0.1, 0.5)
	assert.Error(t, err)

	_, err = NewMetricRow("Overfit", 0.1, 1.2)
	assert.Error(t, err)

	_, err = NewMetricRow("", 0.1, 0.5)
	assert.Error(t, err)

	// R² can be negative for models worse than the mean
	_, err = NewMetricRow("Baseline", 0.2, -0.3)
	assert.NoError(t, err)
}

func TestNewImageRef(t *testing.T) {
	for _, p := range []string{"shap_yearly.png", "clusters/map_0.png"} {
		_, err := NewImageRef(p, "")
		assert.NoError(t, err, p)
	}
	for _, p := range []string{"", "/etc/passwd", "../surface/a.png", "a/../b.png", ".."} {
		_, err := NewImageRef(p, "")
		assert.Error(t, err, p)
	}
}

func TestMustClusterScoresPanics(t *testing.T) {
	assert.NotPanics(t, func() { MustClusterScores(S("KMeans", 0.41), S("DBSCAN", -0.2)) })
	assert.Panics(t, func() { MustClusterScores(S("KMeans", 1.4)) })
}

func TestTimeSeriesMean(t *testing.T) {
	ts := MustTimeSeries("Year", 0.03, 0.9, P("2015", 0.031, 0.89), P("2016", 0.029, 0.91))

	require.Len(t, ts.Rows, 3)
	assert.True(t, ts.Rows[2].Synthetic)
	assert.Equal(t, MeanLabel, ts.Rows[2].Period)
	assert.Len(t, ts.Trend(), 2)
	assert.Len(t, ts.AsMetricTable(), 3)
}

func TestParse(t *testing.T) {
	topic, ok := ParseTopic("Root-Zone")
	assert.True(t, ok)
	assert.Equal(t, TopicRootZone, topic)
	assert.Equal(t, "root_zone_soil_moisture", topic.Variable())
	assert.Equal(t, "root_zone/a.png", topic.AssetPath(I("a.png", "")))

	_, ok = ParseTopic("deep")
	assert.False(t, ok)

	route, ok := ParseRoute("root-zone")
	assert.True(t, ok)
	assert.Equal(t, RouteRootZone, route)
	assert.Equal(t, RouteRootZone, TopicRoute(TopicRootZone))

	info, ok := LookupRoute(RouteHome)
	assert.True(t, ok)
	assert.Equal(t, "/", info.Path)

	_, ok = ParseRoute("nope")
	assert.False(t, ok)
}

func TestAxisRangeContains(t *testing.T) {
	r := AxisRange{Min: 0.8, Max: 0.95}
	assert.True(t, r.Contains(0.8))
	assert.True(t, r.Contains(0.95))
	assert.False(t, r.Contains(0.96))
}
