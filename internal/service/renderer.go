package service

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/soil-insights/soilboard/internal/app/appconfig"
	"github.com/soil-insights/soilboard/internal/render"
)

// NewRenderer builds the shared renderer from configuration. Images are read from
// ImageRoot on every render; only chart SVGs are cached.
func NewRenderer(conf *appconfig.Config) (*render.Renderer, error) {
	mode, err := render.ParseAssetMode(conf.AssetMode)
	if err != nil {
		return nil, errors.Wrap(err, "invalid asset mode")
	}

	if _, err := os.Stat(conf.ImageRoot); err != nil {
		// missing images are rendered as warnings, so a missing root is not fatal either
		log.Warn().
			Err(err).
			Str("evt.name", "service.renderer.image_root_unavailable").
			Str("image_root", conf.ImageRoot).
			Msg("image root is not accessible; every image will render as missing")
	}

	assets := render.NewAssetStore(os.DirFS(conf.ImageRoot), mode, conf.AssetURLPrefix)
	return render.New(assets, render.NewChartCache(conf.ChartCacheTTL))
}
