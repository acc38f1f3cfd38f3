package model

import "github.com/pkg/errors"

// ClusterScore is the silhouette score of one clustering method.
type ClusterScore struct {
	Method     string  `json:"method" validate:"required"`
	Silhouette float64 `json:"silhouette" validate:"gte=-1,lte=1"`
}

func S(method string, silhouette float64) ClusterScore {
	return ClusterScore{Method: method, Silhouette: silhouette}
}

func MustClusterScores(scores ...ClusterScore) []ClusterScore {
	for _, s := range scores {
		if err := Validate.Struct(s); err != nil {
			panic(errors.Wrapf(err, "invalid cluster score %q", s.Method))
		}
	}
	return scores
}
