package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/knowledge"
	"github.com/spigell/major-advisor/internal/logger"
	"github.com/spigell/major-advisor/internal/storage"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the stored major catalog",
}

var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch descriptions for every major and replace the stored catalog snapshot",
	Run: func(_ *cobra.Command, _ []string) {
		ctx := context.Background()
		logger, config := setup()

		if err := refreshCatalog(ctx, config, logger); err != nil {
			logger.Fatal("refreshing catalog", zap.Error(err))
		}
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored catalog snapshot",
	Run: func(_ *cobra.Command, _ []string) {
		ctx := context.Background()
		logger, config := setup()

		store, err := storage.Open(config.Catalog.Database)
		if err != nil {
			logger.Fatal("opening catalog database", zap.Error(err))
		}
		defer store.Close()

		majors, info, err := store.LoadSnapshot(ctx)
		if err != nil {
			logger.Fatal("loading catalog snapshot", zap.Error(err),
				zap.String("hint", "run 'major-advisor catalog refresh' first"),
			)
		}

		logger.Info("catalog snapshot",
			zap.String("id", info.ID),
			zap.Time("created_at", info.CreatedAt),
			zap.Int("majors", info.Majors),
		)
		for _, m := range majors {
			fmt.Printf("%-32s %s streams=%s\n", m.Name, m.Affinity, strings.Join(m.Streams, ","))
		}
	},
}

func init() {
	catalogCmd.AddCommand(catalogRefreshCmd, catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

// setup builds the logger and config shared by every command.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	return l, config
}

func seeds(config *Config) []catalog.Seed {
	out := append([]catalog.Seed(nil), catalog.DefaultSeeds...)
	return append(out, config.Catalog.Majors...)
}

func descriptionFetcher(config *Config, log *zap.Logger) knowledge.Fetcher {
	if !config.Knowledge.Enabled {
		return nil
	}
	return knowledge.New(log, *config.Knowledge)
}

// refreshCatalog builds a new snapshot and replaces the stored one. The
// previous snapshot stays readable until the replacement commits.
func refreshCatalog(ctx context.Context, config *Config, log *zap.Logger) error {
	store, err := storage.Open(config.Catalog.Database)
	if err != nil {
		return fmt.Errorf("opening catalog database: %w", err)
	}
	defer store.Close()

	snapshot, err := knowledge.Build(ctx, descriptionFetcher(config, log), seeds(config), config.Knowledge.Concurrency, log)
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	info, err := store.SaveSnapshot(ctx, snapshot.Snapshot())
	if err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}

	log.Info("catalog snapshot stored",
		zap.String("id", info.ID),
		zap.Int("majors", info.Majors),
		zap.String("database", config.Catalog.Database),
	)
	return nil
}

// loadCatalog returns the stored snapshot, building and storing one on first
// use. Configured majors missing from the snapshot are computed on demand.
func loadCatalog(ctx context.Context, config *Config, log *zap.Logger) (*catalog.Catalog, error) {
	var (
		majors []catalog.MajorProfile
		store  *storage.Store
		err    error
	)

	if db := strings.TrimSpace(config.Catalog.Database); db != "" {
		store, err = storage.Open(db)
		if err != nil {
			return nil, fmt.Errorf("opening catalog database: %w", err)
		}
		defer store.Close()

		majors, _, err = store.LoadSnapshot(ctx)
		if err != nil && !errors.Is(err, storage.ErrNoSnapshot) {
			return nil, fmt.Errorf("loading catalog snapshot: %w", err)
		}
	}

	if len(majors) == 0 {
		log.Info("no stored catalog, building from seeds")

		built, err := knowledge.Build(ctx, descriptionFetcher(config, log), catalog.DefaultSeeds, config.Knowledge.Concurrency, log)
		if err != nil {
			return nil, fmt.Errorf("building catalog: %w", err)
		}
		majors = built.Snapshot()

		if store != nil {
			if _, err := store.SaveSnapshot(ctx, majors); err != nil {
				log.Warn("storing catalog snapshot failed", zap.Error(err))
			}
		}
	}

	cat := catalog.FromSnapshot(majors, log)

	var client *knowledge.Client
	if config.Knowledge.Enabled {
		client = knowledge.New(log, *config.Knowledge)
	}
	for _, seed := range config.Catalog.Majors {
		var fetch catalog.FetchFunc
		if client != nil {
			fetch = client.FetchFunc(seed)
		}
		cat.Add(ctx, seed, fetch)
	}

	log.Debug("catalog ready", zap.Strings("majors", cat.Names()))
	return cat, nil
}
