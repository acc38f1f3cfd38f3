package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soil-insights/soilboard/internal/app/appconfig"
	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/pkg/apperr"
	"github.com/soil-insights/soilboard/internal/render"
)

func newReport(t *testing.T, fsys fstest.MapFS) *Report {
	t.Helper()

	r, err := render.New(render.NewAssetStore(fsys, render.AssetInline, "/assets"), render.NewChartCache(time.Minute))
	require.NoError(t, err)
	return NewReport(r)
}

func TestReportPage(t *testing.T) {
	s := newReport(t, fstest.MapFS{})

	b, err := s.Page(context.Background(), model.RouteHome, nil)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<td>XGBoost</td>")

	_, err = s.Page(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, apperr.ErrRouteNotFound)
}

func TestReportFragment(t *testing.T) {
	s := newReport(t, fstest.MapFS{})

	html, err := s.Fragment(context.Background(), model.RouteSurface, "analysis", render.Selection{"analysis": "actual-vs-predicted"})
	require.NoError(t, err)
	assert.Contains(t, string(html), `id="analysis"`)

	_, err = s.Fragment(context.Background(), model.RouteSurface, "nope", nil)
	assert.ErrorIs(t, err, apperr.ErrGroupNotFound)
}

func TestReportCanceled(t *testing.T) {
	s := newReport(t, fstest.MapFS{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Page(ctx, model.RouteTotal, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDatasetModelsMarksBest(t *testing.T) {
	s := NewDataset()

	v := s.Models(model.TopicSurface)
	require.NotEmpty(t, v.Comparison)
	assert.Equal(t, "XGBoost", v.Comparison[0].Label)
	assert.True(t, v.Comparison[0].BestR2)
	assert.True(t, v.Comparison[0].BestRMSE)
	assert.False(t, v.Comparison[1].BestR2)
	assert.False(t, v.Comparison[1].BestRMSE)
}

func TestMetricRowsSplitWinners(t *testing.T) {
	rows := metricRows(model.MetricTable{
		{Label: "Ridge", Error: 0.041, Fit: 0.88},
		{Label: "XGBoost", Error: 0.036, Fit: 0.86},
		{Label: "Lasso", Error: 0.052, Fit: 0.79},
	})

	require.Len(t, rows, 3)
	assert.True(t, rows[0].BestR2)
	assert.False(t, rows[0].BestRMSE)
	assert.False(t, rows[1].BestR2)
	assert.True(t, rows[1].BestRMSE)
	assert.False(t, rows[2].BestR2 || rows[2].BestRMSE)
}

func TestDatasetSeriesKeepsMean(t *testing.T) {
	s := NewDataset()

	v := s.Monthly(model.TopicRootZone)
	require.Len(t, v.Rows, 13)
	assert.Equal(t, "Month", v.Header)
	last := v.Rows[len(v.Rows)-1]
	assert.Equal(t, model.MeanLabel, last.Period)
	assert.True(t, last.Mean)

	assert.Len(t, s.Yearly(model.TopicTotal).Rows, 11)
}

func TestAssetAuditReportsMissing(t *testing.T) {
	r, err := render.New(render.NewAssetStore(fstest.MapFS{
		"surface/shap_monthly.png": {Data: []byte("png")},
	}, render.AssetInline, "/assets"), nil)
	require.NoError(t, err)

	res, err := NewAssetAudit(r).Run(context.Background())
	require.NoError(t, err)
	assert.Greater(t, res.Checked, 0)
	assert.Len(t, res.Missing, res.Checked-1)

	for _, m := range res.Missing {
		assert.NotEqual(t, "surface/shap_monthly.png", m.Path)
	}
}

func TestHealthPing(t *testing.T) {
	dir := t.TempDir()

	h := NewHealth(&appconfig.Config{ConfigSpec: appconfig.ConfigSpec{ImageRoot: dir}})
	assert.NoError(t, h.Ping(context.Background()))

	h.ImageRoot = filepath.Join(dir, "missing")
	assert.ErrorIs(t, h.Ping(context.Background()), ErrImageRootNotReachable)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	h.ImageRoot = file
	assert.ErrorIs(t, h.Ping(context.Background()), ErrImageRootNotReachable)
}
