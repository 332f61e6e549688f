package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contentcraft-be/internal/apperrors"
	"contentcraft-be/internal/dto"
	"contentcraft-be/internal/pkg/logger"
	"contentcraft-be/pkg/llm"
	"contentcraft-be/pkg/prompt"

	"github.com/google/uuid"
)

type IGenerationService interface {
	Generate(ctx context.Context, userId uuid.UUID, mode prompt.Mode, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
}

// GenerationLimiter caps generation calls per user. quota.Limiter is the
// Redis-backed implementation; a nil limiter disables the cap.
type GenerationLimiter interface {
	Allow(ctx context.Context, userId uuid.UUID) (bool, error)
}

type generationService struct {
	llmProvider llm.Provider
	limiter     GenerationLimiter
	logger      logger.ILogger
}

func NewGenerationService(llmProvider llm.Provider, limiter GenerationLimiter, sysLogger logger.ILogger) IGenerationService {
	return &generationService{
		llmProvider: llmProvider,
		limiter:     limiter,
		logger:      sysLogger,
	}
}

// Generate builds the mode-specific prompt, calls the provider once and
// normalizes the result. Nothing is persisted here; saving is a separate,
// explicit user action. Faults are not retried.
func (s *generationService) Generate(ctx context.Context, userId uuid.UUID, mode prompt.Mode, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	// Validate and assemble before any quota or provider work, so an
	// invalid request never consumes quota or reaches the provider.
	p, err := prompt.Build(mode, prompt.Request{
		Niche:    req.Niche,
		Audience: req.Audience,
		Title:    req.Title,
		Outline:  req.Outline,
	})
	if err != nil {
		return nil, err
	}

	allowed := true
	if s.limiter != nil {
		allowed, err = s.limiter.Allow(ctx, userId)
		if err != nil {
			// Quota infrastructure being down must not block generation.
			s.logger.Warn("generation", "Quota check failed, allowing request", map[string]interface{}{
				"error":   err.Error(),
				"user_id": userId,
			})
			allowed = true
		}
	}
	if !allowed {
		return nil, apperrors.NewQuotaExceeded("Daily generation limit reached. Try again tomorrow.")
	}

	history := []llm.Message{
		{Role: "system", Content: p.System},
		{Role: "user", Content: p.User},
	}

	completion, err := s.llmProvider.Chat(ctx, history,
		llm.WithTemperature(p.Temperature),
		llm.WithMaxTokens(p.MaxTokens),
	)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			return nil, apperrors.NewEmptyGeneration("No content generated. Please try again.")
		}
		return nil, apperrors.NewUpstreamUnavailable(fmt.Sprintf("Failed to generate %s. Please try again.", mode), err)
	}

	res := &dto.GenerateResponse{
		Success:  true,
		Content:  completion.Text,
		Type:     string(mode),
		Niche:    req.Niche,
		Audience: req.Audience,
		Title:    req.Title,
		Usage: dto.GenerationUsage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}
	if mode == prompt.ModeDraft {
		res.WordCount = len(strings.Fields(completion.Text))
	}

	return res, nil
}
