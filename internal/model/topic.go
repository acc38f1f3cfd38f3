package model

import (
	"path"
	"strings"
)

// Topic is one of the soil moisture target variables.
type Topic string

const (
	TopicSurface  Topic = "surface"
	TopicRootZone Topic = "root_zone"
	TopicTotal    Topic = "total"
)

var Topics = []Topic{TopicSurface, TopicRootZone, TopicTotal}

func ParseTopic(s string) (Topic, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(s), "-", "_")
	for _, t := range Topics {
		if string(t) == normalized {
			return t, true
		}
	}
	return "", false
}

// Name is the human readable target variable name.
func (t Topic) Name() string {
	switch t {
	case TopicSurface:
		return "Surface Soil Moisture"
	case TopicRootZone:
		return "Root Zone Soil Moisture"
	case TopicTotal:
		return "Total Soil Moisture"
	}
	return string(t)
}

// ImageDir is the directory, relative to the image root, holding the topic's images.
func (t Topic) ImageDir() string {
	return string(t)
}

// Variable is the snake-cased target variable used in image file names,
// e.g. "root_zone_soil_moisture".
func (t Topic) Variable() string {
	return strings.ReplaceAll(strings.ToLower(t.Name()), " ", "_")
}

// AssetPath joins the topic directory with an image reference path.
func (t Topic) AssetPath(ref ImageRef) string {
	return path.Join(t.ImageDir(), ref.Path)
}

// AxisRange is a y-axis hint for a chart.
type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r AxisRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
