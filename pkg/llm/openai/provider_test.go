package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"contentcraft-be/pkg/llm"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *OpenAIProvider) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewOpenAIProvider("test-key", srv.URL, "gpt-3.5-turbo")
}

func TestChatSuccess(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	_, provider := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Ten great titles"}},
			},
			"usage": map[string]int{
				"prompt_tokens":     15,
				"completion_tokens": 85,
				"total_tokens":      100,
			},
		})
	})

	completion, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "You are a strategist."},
		{Role: "user", Content: "Give me titles."},
	}, llm.WithTemperature(0.8), llm.WithMaxTokens(800))
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want Bearer test-key", gotAuth)
	}
	if gotReq.Model != "gpt-3.5-turbo" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.Temperature != 0.8 || gotReq.MaxTokens != 800 {
		t.Errorf("options not forwarded: temp=%v maxTokens=%d", gotReq.Temperature, gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("messages not forwarded: %+v", gotReq.Messages)
	}

	if completion.Text != "Ten great titles" {
		t.Errorf("Text = %q", completion.Text)
	}
	if completion.Usage.TotalTokens != 100 || completion.Usage.PromptTokens != 15 {
		t.Errorf("Usage = %+v", completion.Usage)
	}
}

func TestChatNormalizesModelRole(t *testing.T) {
	var gotReq chatRequest
	_, provider := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	})

	_, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "model", Content: "previous answer"},
		{Role: "user", Content: "follow up"},
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if gotReq.Messages[0].Role != "assistant" {
		t.Errorf("role = %q, want assistant", gotReq.Messages[0].Role)
	}
}

func TestChatEmptyCompletion(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "no choices",
			body: map[string]interface{}{"choices": []interface{}{}},
		},
		{
			name: "whitespace-only content",
			body: map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"content": "   \n"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, provider := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.body)
			})

			_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
			if !errors.Is(err, llm.ErrEmptyCompletion) {
				t.Errorf("err = %v, want ErrEmptyCompletion", err)
			}
		})
	}
}

func TestChatAPIError(t *testing.T) {
	_, provider := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"message": "Incorrect API key provided",
				"type":    "invalid_request_error",
			},
		})
	})

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if errors.Is(err, llm.ErrEmptyCompletion) {
		t.Error("an API error must not read as an empty completion")
	}
}

func TestDefaultBaseURL(t *testing.T) {
	p := NewOpenAIProvider("k", "", "gpt-4")
	if p.baseURL != defaultBaseURL {
		t.Errorf("baseURL = %q, want %q", p.baseURL, defaultBaseURL)
	}

	trimmed := NewOpenAIProvider("k", "http://localhost:8080/v1/", "gpt-4")
	if trimmed.baseURL != "http://localhost:8080/v1" {
		t.Errorf("baseURL = %q, trailing slash should be trimmed", trimmed.baseURL)
	}
}
