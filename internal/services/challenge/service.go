package challenge

//go:generate mockgen -destination=mock/mock_service.go -package=mockchallenge -source=service.go

import (
	"context"
	"log"
	"sync"

	"github.com/KirkDiggler/challenge-bot-discord/internal/challenge"
	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
	"github.com/KirkDiggler/challenge-bot-discord/internal/uuid"
)

// DefaultMaxRolls caps a single roll request when no limit is configured
const DefaultMaxRolls = 20

// Service defines the challenge service interface
type Service interface {
	// Roll draws count picks and scores them
	Roll(ctx context.Context, count int) (*Result, error)

	// Catalog returns the loaded game catalog
	Catalog() *challenge.Catalog

	// Weights returns the loaded weight table
	Weights() challenge.WeightTable

	// MaxRolls returns the largest count Roll accepts
	MaxRolls() int
}

// Result is one scored roll
type Result struct {
	ID    string           `json:"id"`
	Picks []challenge.Pick `json:"picks"`
	Score *challenge.Score `json:"score"`
}

type service struct {
	table    *challenge.Table
	uuidGen  uuid.Generator
	maxRolls int

	// Source is not safe for concurrent use
	mu     sync.Mutex
	source challenge.Source
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Table         *challenge.Table // Required, validated
	Source        challenge.Source // Optional - time seeded if nil
	UUIDGenerator uuid.Generator   // Optional - google uuid if nil
	MaxRolls      int              // Optional - DefaultMaxRolls if zero
}

// NewService creates a new challenge service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, cberr.InvalidArgument("service config is required")
	}
	if err := cfg.Table.Validate(); err != nil {
		return nil, err
	}

	svc := &service{
		table:    cfg.Table,
		source:   cfg.Source,
		uuidGen:  cfg.UUIDGenerator,
		maxRolls: cfg.MaxRolls,
	}
	if svc.source == nil {
		svc.source = challenge.NewRandomSource()
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	if svc.maxRolls <= 0 {
		svc.maxRolls = DefaultMaxRolls
	}

	return svc, nil
}

// Roll draws count picks and scores them
func (s *service) Roll(ctx context.Context, count int) (*Result, error) {
	if count < 1 || count > s.maxRolls {
		return nil, cberr.InvalidArgumentf("roll count must be between 1 and %d, got %d", s.maxRolls, count).
			WithMeta("count", count)
	}

	s.mu.Lock()
	picks, err := challenge.Roll(s.source, s.table.Catalog, s.table.Weights, count)
	s.mu.Unlock()
	if err != nil {
		return nil, cberr.Wrap(err, "failed to roll challenge")
	}

	score, err := challenge.Evaluate(picks, s.table.Weights)
	if err != nil {
		return nil, cberr.Wrap(err, "failed to score challenge")
	}

	result := &Result{
		ID:    s.uuidGen.New(),
		Picks: picks,
		Score: score,
	}

	log.Printf("[Challenge] Roll %s: %d picks, severity %.3f (%s)", result.ID, len(picks), score.Severity, score.Tier)
	return result, nil
}

func (s *service) Catalog() *challenge.Catalog {
	return s.table.Catalog.Clone()
}

func (s *service) Weights() challenge.WeightTable {
	weights := make(challenge.WeightTable, len(s.table.Weights))
	for name, w := range s.table.Weights {
		weights[name] = w
	}
	return weights
}

func (s *service) MaxRolls() int {
	return s.maxRolls
}
