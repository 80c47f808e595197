package challenges

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// GamesKey holds game name -> JSON array of modifiers
	GamesKey = "challenge:games"

	// WeightsKey holds modifier name -> weight
	WeightsKey = "challenge:weights"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// NewRedis creates a new Redis-backed repository from a client
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) SaveTable(ctx context.Context, table *challenge.Table) error {
	if table == nil || table.Catalog == nil {
		return cberr.InvalidArgument("table cannot be nil")
	}
	if table.Catalog.Len() == 0 || len(table.Weights) == 0 {
		return cberr.InvalidArgument("table must have games and weights")
	}

	games := make([]interface{}, 0, table.Catalog.Len()*2)
	for _, game := range table.Catalog.Games() {
		mods, err := json.Marshal(table.Catalog.Modifiers(game))
		if err != nil {
			return fmt.Errorf("failed to marshal modifiers for %s: %w", game, err)
		}
		games = append(games, game, string(mods))
	}

	weights := make([]interface{}, 0, len(table.Weights)*2)
	for _, name := range table.Weights.Names() {
		weights = append(weights, name, strconv.Itoa(table.Weights[name]))
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, GamesKey, WeightsKey)
	pipe.HSet(ctx, GamesKey, games...)
	pipe.HSet(ctx, WeightsKey, weights...)
	if _, err := pipe.Exec(ctx); err != nil {
		return cberr.WrapWithCode(err, cberr.CodeUnavailable, "failed to save challenge table to Redis")
	}

	return nil
}

func (r *redisRepo) GetTable(ctx context.Context) (*challenge.Table, error) {
	var rawGames, rawWeights map[string]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawGames, err = r.client.HGetAll(gctx, GamesKey).Result()
		if err != nil {
			return fmt.Errorf("failed to get games from Redis: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rawWeights, err = r.client.HGetAll(gctx, WeightsKey).Result()
		if err != nil {
			return fmt.Errorf("failed to get weights from Redis: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, cberr.WrapWithCode(err, cberr.CodeUnavailable, "failed to load challenge table")
	}

	if len(rawGames) == 0 {
		return nil, cberr.NotFound("no challenge table stored")
	}

	// Hash fields come back unordered, so games are sorted for stable rolls
	names := make([]string, 0, len(rawGames))
	for name := range rawGames {
		names = append(names, name)
	}
	sort.Strings(names)

	catalog := challenge.NewCatalog()
	for _, name := range names {
		var mods []string
		if err := json.Unmarshal([]byte(rawGames[name]), &mods); err != nil {
			return nil, cberr.Configurationf("stored modifiers for %s are not a JSON array", name)
		}
		if err := catalog.Add(name, mods); err != nil {
			return nil, cberr.WrapWithCode(err, cberr.CodeConfiguration, "stored catalog is invalid")
		}
	}

	weights := make(challenge.WeightTable, len(rawWeights))
	for name, raw := range rawWeights {
		w, err := strconv.Atoi(raw)
		if err != nil {
			return nil, cberr.Configurationf("stored weight %q for %s is not an integer", raw, name)
		}
		weights[name] = w
	}

	return &challenge.Table{Catalog: catalog, Weights: weights}, nil
}
