package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/llm"
	"github.com/blaisecz/cycle-tracker/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// InsightsService generates a narrative over the latest prediction.
type InsightsService interface {
	// Generate creates cycle insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	predictionService PredictionService
	llmClient         llm.InsightsLLM
	entryRepo         repository.PeriodEntryRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	predictionService PredictionService,
	llmClient llm.InsightsLLM,
	entryRepo repository.PeriodEntryRepository,
) InsightsService {
	return &insightsService{
		predictionService: predictionService,
		llmClient:         llmClient,
		entryRepo:         entryRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if s.llmClient == nil || !s.llmClient.Available() {
		return nil, llm.ErrOpenAIUnavailable
	}

	// Validates the user and requires at least one entry
	latest, err := s.predictionService.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		stats *domain.PeriodEntryStats
		entry *domain.PeriodEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = s.entryRepo.Stats(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		entry, err = s.entryRepo.GetByID(gctx, latest.EntryID)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("latest entry %s was removed: %w", latest.EntryID, domain.ErrConflict)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Latest:     *latest,
		Stats:      *stats,
		Conditions: domain.NormalizeConditions(entry.Conditions),
	}

	// Generate LLM insights
	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Latest:   *latest,
		Stats:    *stats,
		Insights: *llmOutput,
	}, nil
}
