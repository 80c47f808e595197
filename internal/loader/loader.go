package loader

import (
	"context"
	"log"
	"os"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/KirkDiggler/challenge-bot-discord/internal/repositories/challenges"
	"golang.org/x/sync/errgroup"
)

// Source provides the catalog and weight table
type Source interface {
	Load(ctx context.Context) (*challenge.Table, error)
}

// FileSource reads the games and weights text files
type FileSource struct {
	GamesPath   string
	WeightsPath string
}

// Load reads both files concurrently
func (s *FileSource) Load(ctx context.Context) (*challenge.Table, error) {
	table := &challenge.Table{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := os.Open(s.GamesPath)
		if err != nil {
			return cberr.WrapWithCode(err, cberr.CodeConfiguration, "failed to open games file").
				WithMeta("path", s.GamesPath)
		}
		defer f.Close()

		catalog, err := ParseGames(f)
		if err != nil {
			return cberr.Wrapf(err, "failed to parse %s", s.GamesPath)
		}
		table.Catalog = catalog
		return nil
	})
	g.Go(func() error {
		f, err := os.Open(s.WeightsPath)
		if err != nil {
			return cberr.WrapWithCode(err, cberr.CodeConfiguration, "failed to open weights file").
				WithMeta("path", s.WeightsPath)
		}
		defer f.Close()

		weights, err := ParseWeights(f)
		if err != nil {
			return cberr.Wrapf(err, "failed to parse %s", s.WeightsPath)
		}
		table.Weights = weights
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return table, nil
}

// RepositorySource reads the table from a challenges repository
type RepositorySource struct {
	Repository challenges.Repository
}

func (s *RepositorySource) Load(ctx context.Context) (*challenge.Table, error) {
	return s.Repository.GetTable(ctx)
}

// Load reads the table from src and validates it.
// An invalid table is a startup error.
func Load(ctx context.Context, src Source) (*challenge.Table, error) {
	table, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := table.Validate(); err != nil {
		return nil, cberr.WrapWithCode(err, cberr.CodeConfiguration, "challenge table is invalid")
	}

	log.Printf("[Loader] Loaded %d games and %d modifier weights", table.Catalog.Len(), len(table.Weights))
	return table, nil
}

// Publish loads and validates a table from src and saves it to repo
func Publish(ctx context.Context, src Source, repo challenges.Repository) (*challenge.Table, error) {
	table, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}

	if err := repo.SaveTable(ctx, table); err != nil {
		return nil, cberr.Wrap(err, "failed to publish challenge table")
	}

	log.Printf("[Loader] Published %d games", table.Catalog.Len())
	return table, nil
}
