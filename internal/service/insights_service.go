package service

import (
	"context"

	"github.com/blaisecz/schedule-builder/internal/analysis"
	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/blaisecz/schedule-builder/internal/llm"
)

// InsightsService generates LLM commentary on top of the schedule analysis.
type InsightsService interface {
	// Generate analyses the schedule and asks the LLM to summarise it.
	Generate(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*domain.InsightsResponse, error)
}

type insightsService struct {
	analysisService AnalysisService
	llmClient       llm.InsightsLLM
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(analysisService AnalysisService, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		analysisService: analysisService,
		llmClient:       llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, scheduleID string, req domain.AnalysisRequest) (*domain.InsightsResponse, error) {
	// A nil *OpenAIClient means insights are not configured
	if c, ok := s.llmClient.(*llm.OpenAIClient); s.llmClient == nil || (ok && c == nil) {
		return nil, llm.ErrOpenAIUnavailable
	}

	result, err := s.analysisService.Analyze(ctx, scheduleID, req)
	if err != nil {
		return nil, err
	}

	from, to := result.Scope.FormatBounds()
	insightsCtx := &domain.InsightsContext{
		ScheduleName: result.Schedule.Name,
		View:         result.Scope.View,
		From:         from,
		To:           to,
		Slots:        analysis.SortSlots(result.Slots),
		Analysis:     result.Analysis,
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Analysis: result.Analysis,
		Insights: *output,
	}, nil
}
