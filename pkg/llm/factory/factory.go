package factory

import (
	"fmt"

	"contentcraft-be/pkg/llm"
	"contentcraft-be/pkg/llm/ollama"
	"contentcraft-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, apiKey, openaiBaseURL, ollamaBaseURL string) (llm.Provider, error) {
	switch providerType {
	case "openai":
		return openai.NewOpenAIProvider(apiKey, openaiBaseURL, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
