package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soil-insights/soilboard/internal/model"
)

func TestSeriesMeanRow(t *testing.T) {
	s := Monthly(model.TopicSurface)
	assert.Len(t, s.Rows, 13)
	assert.Len(t, s.Trend(), 12)
	assert.Equal(t, model.MeanLabel, s.Rows[12].Period)
	assert.True(t, s.Rows[12].Synthetic)
	assert.Equal(t, 0.8879, s.Rows[12].Fit)

	y := Yearly(model.TopicTotal)
	assert.Len(t, y.Trend(), 10)
	assert.Equal(t, "2024", y.Rows[9].Period)
}

func TestEveryTopicHasData(t *testing.T) {
	for _, topic := range model.Topics {
		assert.Len(t, ModelComparison(topic), 9, topic)
		assert.Len(t, Silhouette(topic, false), 5, topic)
		assert.Len(t, ByCluster(topic), ClusterCount+1, topic)
		assert.NotEmpty(t, ModelSummary(topic), topic)
	}
	assert.Len(t, ModelSummary(model.TopicTotal), 6)
	assert.Nil(t, ModelComparison("nope"))
}

func TestSilhouetteNaming(t *testing.T) {
	assert.Equal(t, "TimeSeriesKMeans", Silhouette(model.TopicSurface, false)[4].Method)
	assert.Equal(t, "TS-KMeans", Silhouette(model.TopicSurface, true)[4].Method)
}

func TestByClusterLabels(t *testing.T) {
	rows := ByCluster(model.TopicRootZone)
	assert.Equal(t, []string{"Without Cluster", "Cluster 0", "Cluster 1", "Cluster 2", "Cluster 3"}, rows.Labels())
	assert.Equal(t, 0.95751, rows[1].Fit)
}
