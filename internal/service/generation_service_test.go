package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"contentcraft-be/internal/apperrors"
	"contentcraft-be/internal/dto"
	"contentcraft-be/pkg/llm"
	"contentcraft-be/pkg/prompt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLMProvider replays a canned completion and records what it was
// called with so tests can assert on the assembled prompt and options.
type fakeLLMProvider struct {
	completion *llm.Completion
	err        error

	calls       int
	lastHistory []llm.Message
	lastOptions llm.Options
}

func (p *fakeLLMProvider) Chat(_ context.Context, history []llm.Message, options ...llm.Option) (*llm.Completion, error) {
	p.calls++
	p.lastHistory = history
	p.lastOptions = llm.Options{}
	for _, opt := range options {
		opt(&p.lastOptions)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.completion, nil
}

func (p *fakeLLMProvider) Generate(ctx context.Context, promptText string, options ...llm.Option) (*llm.Completion, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: promptText}}, options...)
}

func newTestGenerationService(provider *fakeLLMProvider) IGenerationService {
	// nil limiter: quota disabled, every call is allowed.
	return NewGenerationService(provider, nil, noopLogger{})
}

// fakeLimiter replays a fixed quota decision and records who asked.
type fakeLimiter struct {
	allowed    bool
	err        error
	calls      int
	lastUserId uuid.UUID
}

func (l *fakeLimiter) Allow(_ context.Context, userId uuid.UUID) (bool, error) {
	l.calls++
	l.lastUserId = userId
	return l.allowed, l.err
}

func TestGenerateIdeas(t *testing.T) {
	provider := &fakeLLMProvider{
		completion: &llm.Completion{
			Text: "1. Ten Vegan Breakfasts\n2. Meal Prep Myths",
			Usage: llm.Usage{
				PromptTokens:     42,
				CompletionTokens: 108,
				TotalTokens:      150,
			},
		},
	}
	svc := newTestGenerationService(provider)

	res, err := svc.Generate(context.Background(), uuid.New(), prompt.ModeIdeas, &dto.GenerateRequest{
		Niche:    "vegan cooking",
		Audience: "busy parents",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "ideas", res.Type)
	assert.Equal(t, "vegan cooking", res.Niche)
	assert.Equal(t, "busy parents", res.Audience)
	assert.Equal(t, provider.completion.Text, res.Content)
	assert.Zero(t, res.WordCount, "word count is a draft-only field")

	// Usage flows through untouched.
	assert.Equal(t, 42, res.Usage.PromptTokens)
	assert.Equal(t, 108, res.Usage.CompletionTokens)
	assert.Equal(t, 150, res.Usage.TotalTokens)

	// The provider saw the mode's generation policy.
	assert.Equal(t, 0.8, provider.lastOptions.Temperature)
	assert.Equal(t, 800, provider.lastOptions.MaxTokens)
	require.Len(t, provider.lastHistory, 2)
	assert.Equal(t, "system", provider.lastHistory[0].Role)
	assert.Equal(t, "user", provider.lastHistory[1].Role)
	assert.Contains(t, provider.lastHistory[1].Content, `"vegan cooking"`)
}

func TestGenerateDraftReportsWordCount(t *testing.T) {
	text := strings.Repeat("word ", 250)
	provider := &fakeLLMProvider{completion: &llm.Completion{Text: text}}
	svc := newTestGenerationService(provider)

	res, err := svc.Generate(context.Background(), uuid.New(), prompt.ModeDraft, &dto.GenerateRequest{
		Niche: "fitness",
		Title: "10 Morning Habits",
	})
	require.NoError(t, err)

	assert.Equal(t, "draft", res.Type)
	assert.Equal(t, 250, res.WordCount)
	assert.Equal(t, "10 Morning Habits", res.Title)
	assert.Equal(t, 0.7, provider.lastOptions.Temperature)
	assert.Equal(t, 2500, provider.lastOptions.MaxTokens)
}

func TestGenerateQuotaExceeded(t *testing.T) {
	provider := &fakeLLMProvider{completion: &llm.Completion{Text: "unused"}}
	limiter := &fakeLimiter{allowed: false}
	svc := NewGenerationService(provider, limiter, noopLogger{})
	userId := uuid.New()

	_, err := svc.Generate(context.Background(), userId, prompt.ModeIdeas, &dto.GenerateRequest{
		Niche: "fitness",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindQuotaExceeded))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 429, appErr.Status)
	assert.Equal(t, "Daily generation limit reached. Try again tomorrow.", appErr.Message)

	assert.Equal(t, userId, limiter.lastUserId, "the cap is per user")
	assert.Zero(t, provider.calls, "a denied request must not reach the provider")
}

func TestGenerateQuotaErrorFailsOpen(t *testing.T) {
	provider := &fakeLLMProvider{completion: &llm.Completion{Text: "generated anyway"}}
	limiter := &fakeLimiter{allowed: false, err: errors.New("dial tcp: connection refused")}
	svc := NewGenerationService(provider, limiter, noopLogger{})

	res, err := svc.Generate(context.Background(), uuid.New(), prompt.ModeIdeas, &dto.GenerateRequest{
		Niche: "fitness",
	})
	require.NoError(t, err, "a broken quota backend must not block generation")
	assert.Equal(t, "generated anyway", res.Content)
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateInvalidRequestSkipsQuotaAndProvider(t *testing.T) {
	provider := &fakeLLMProvider{completion: &llm.Completion{Text: "unused"}}
	limiter := &fakeLimiter{allowed: true}
	svc := NewGenerationService(provider, limiter, noopLogger{})

	_, err := svc.Generate(context.Background(), uuid.New(), prompt.ModeIdeas, &dto.GenerateRequest{
		Niche: "   ",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Zero(t, limiter.calls, "an invalid request must never consume quota")
	assert.Zero(t, provider.calls)
}

func TestGenerateInvalidRequestSkipsProvider(t *testing.T) {
	provider := &fakeLLMProvider{completion: &llm.Completion{Text: "unused"}}
	svc := newTestGenerationService(provider)

	_, err := svc.Generate(context.Background(), uuid.New(), prompt.ModeIdeas, &dto.GenerateRequest{
		Niche: "   ",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Zero(t, provider.calls, "an invalid request must never reach the provider")
}

func TestGenerateEmptyCompletion(t *testing.T) {
	provider := &fakeLLMProvider{err: llm.ErrEmptyCompletion}
	svc := newTestGenerationService(provider)

	_, err := svc.Generate(context.Background(), uuid.New(), prompt.ModeOutline, &dto.GenerateRequest{
		Niche: "travel",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindEmptyGeneration))
}

func TestGenerateProviderFailure(t *testing.T) {
	cause := errors.New("connection refused")
	provider := &fakeLLMProvider{err: cause}
	svc := newTestGenerationService(provider)

	_, err := svc.Generate(context.Background(), uuid.New(), prompt.ModeDraft, &dto.GenerateRequest{
		Niche: "travel",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUpstreamUnavailable))
	assert.True(t, errors.Is(err, cause), "the provider error must stay on the chain")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "draft", "the message names the failed mode")
	assert.NotContains(t, appErr.Message, "connection refused", "internal causes never leak to clients")
}
