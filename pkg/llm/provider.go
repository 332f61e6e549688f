package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the provider answered but produced
// no usable text. Callers must not treat this as a successful generation.
var ErrEmptyCompletion = errors.New("llm: provider returned an empty completion")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Usage carries the token accounting reported by the provider. Providers
// that do not report usage leave it zeroed.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Completion is the normalized result of a chat call.
type Completion struct {
	Text  string
	Usage Usage
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any LLM backend
type Provider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (*Completion, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (*Completion, error)
}
