package knowledge

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/logger"
)

// Fetcher supplies description text for a seed.
type Fetcher interface {
	Fetch(ctx context.Context, seed catalog.Seed) (string, error)
}

// Build creates a brand-new catalog from seeds. Descriptions are fetched with at
// most concurrency requests in flight; failed fetches fall back to the
// placeholder. Entries keep seed order. A nil fetcher uses seed descriptions only.
func Build(ctx context.Context, fetcher Fetcher, seeds []catalog.Seed, concurrency int, log *zap.Logger) (*catalog.Catalog, error) {
	log = logger.WithFields(log)
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	descriptions := make([]string, len(seeds))

	if fetcher != nil {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)

		for i, seed := range seeds {
			if strings.TrimSpace(seed.Description) != "" {
				continue
			}
			g.Go(func() error {
				text, err := fetcher.Fetch(gctx, seed)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					log.Warn("description fetch failed, placeholder will be used",
						zap.String(logger.FieldMajor, seed.Name),
						zap.Error(err),
					)
					return nil
				}
				descriptions[i] = text
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	snapshot := catalog.New(log)
	for i, seed := range seeds {
		if strings.TrimSpace(seed.Description) == "" {
			seed.Description = descriptions[i]
		}
		snapshot.Add(ctx, seed, nil)
	}

	log.Info("catalog snapshot built", zap.Int("majors", snapshot.Len()))

	return snapshot, nil
}
