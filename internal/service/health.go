package service

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/soil-insights/soilboard/internal/app/appconfig"
)

var ErrImageRootNotReachable = errors.New("image root not reachable")

type Health struct {
	ImageRoot string
}

func NewHealth(conf *appconfig.Config) *Health {
	return &Health{
		ImageRoot: conf.ImageRoot,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fi, err := os.Stat(s.ImageRoot)
	if err != nil {
		return errors.Wrap(ErrImageRootNotReachable, err.Error())
	}
	if !fi.IsDir() {
		return errors.Wrap(ErrImageRootNotReachable, s.ImageRoot+" is not a directory")
	}

	return nil
}
