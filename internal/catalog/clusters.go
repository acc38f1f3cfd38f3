package catalog

import (
	"fmt"

	"github.com/soil-insights/soilboard/internal/model"
)

// ClusterCount is the number of clusters the India region was split into.
const ClusterCount = 4

// Silhouette is the clustering method comparison of a topic. The cluster page
// abbreviates TimeSeriesKMeans to TS-KMeans.
func Silhouette(t model.Topic, short bool) []model.ClusterScore {
	tsk := "TimeSeriesKMeans"
	if short {
		tsk = "TS-KMeans"
	}
	switch t {
	case model.TopicSurface:
		return model.MustClusterScores(
			model.S("Hierarchical", 0.3016),
			model.S("GMM", 0.4127),
			model.S("HMM", 0.2494),
			model.S("K-Shape", 0.0932),
			model.S(tsk, 0.3039),
		)
	case model.TopicRootZone:
		return model.MustClusterScores(
			model.S("Hierarchical", 0.3016),
			model.S("GMM", 0.5211),
			model.S("HMM", 0.2842),
			model.S("K-Shape", -0.0544),
			model.S(tsk, 0.3466),
		)
	default:
		return model.MustClusterScores(
			model.S("Hierarchical", 0.3025),
			model.S("GMM", 0.4226),
			model.S("HMM", 0.3089),
			model.S("K-Shape", -0.0452),
			model.S(tsk, 0.2984),
		)
	}
}

// ClusterLabel names cluster i, counting from zero.
func ClusterLabel(i int) string {
	return fmt.Sprintf("Cluster %d", i)
}

// ByCluster is the XGBoost performance trained without clustering and per cluster.
func ByCluster(t model.Topic) model.MetricTable {
	var rows [][2]float64
	switch t {
	case model.TopicSurface:
		rows = [][2]float64{{0.0336, 0.91766}, {0.02389, 0.94181}, {0.02917, 0.91871}, {0.03181, 0.92861}, {0.03088, 0.89771}}
	case model.TopicRootZone:
		rows = [][2]float64{{0.03132, 0.90477}, {0.02572, 0.95751}, {0.02808, 0.89228}, {0.02728, 0.9492}, {0.03084, 0.88797}}
	default:
		rows = [][2]float64{{0.02694, 0.9111}, {0.02297, 0.93182}, {0.0194, 0.96853}, {0.02638, 0.89768}, {0.03061, 0.89561}}
	}

	table := make([]model.MetricRow, len(rows))
	for i, r := range rows {
		label := "Without Cluster"
		if i > 0 {
			label = ClusterLabel(i - 1)
		}
		table[i] = model.M(label, r[0], r[1])
	}
	return model.MustMetricTable(table...)
}
