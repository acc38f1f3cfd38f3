package service

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/soil-insights/soilboard/internal/dashboard"
	"github.com/soil-insights/soilboard/internal/model"
	"github.com/soil-insights/soilboard/internal/render"
)

// AuditConcurrency bounds the number of concurrent image probes.
const AuditConcurrency = 8

type MissingAsset struct {
	Route model.Route `json:"route"`
	Topic model.Topic `json:"topic"`
	Path  string      `json:"path"`
	Err   string      `json:"error"`
}

type AuditResult struct {
	Checked int            `json:"checked"`
	Missing []MissingAsset `json:"missing"`
}

// AssetAudit checks every image reference of every page against the image root.
type AssetAudit struct {
	Assets *render.AssetStore
}

func NewAssetAudit(renderer *render.Renderer) *AssetAudit {
	return &AssetAudit{
		Assets: renderer.Assets(),
	}
}

// Run probes every image reference of every page. A reference shared by several
// routes is reported once per route.
func (s *AssetAudit) Run(ctx context.Context) (*AuditResult, error) {
	type probe struct {
		route model.Route
		ref   render.GalleryRef
	}
	var probes []probe
	for _, page := range dashboard.All() {
		for _, ref := range render.Images(page.Nodes) {
			probes = append(probes, probe{route: page.Info.Route, ref: ref})
		}
	}

	var (
		mu      sync.Mutex
		missing []MissingAsset
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(AuditConcurrency)
	for _, p := range probes {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := s.Assets.Probe(p.ref.Topic, p.ref.Ref)
			if err == nil {
				return nil
			}
			log.Debug().
				Err(err).
				Str("evt.name", "service.audit.missing").
				Str("route", string(p.route)).
				Msg("image reference could not be resolved")

			mu.Lock()
			missing = append(missing, MissingAsset{
				Route: p.route,
				Topic: p.ref.Topic,
				Path:  p.ref.Topic.AssetPath(p.ref.Ref),
				Err:   err.Error(),
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Route != missing[j].Route {
			return missing[i].Route < missing[j].Route
		}
		return missing[i].Path < missing[j].Path
	})

	return &AuditResult{
		Checked: len(probes),
		Missing: missing,
	}, nil
}
