package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learning_assistant_backend/internal/config"
	"learning_assistant_backend/internal/util"
)

func TestAIServiceGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %q, want test-model", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %+v, want system prompt then user prompt", req.Messages)
		}
		if !strings.Contains(req.Messages[1].Content, "hello prompt") {
			t.Errorf("user message = %q", req.Messages[1].Content)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "generated text"}},
			},
		})
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "test-model"})

	got, err := svc.Generate(context.Background(), "hello prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "generated text" {
		t.Errorf("Generate = %q, want 'generated text'", got)
	}
}

func TestAIServiceGenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL})

	_, err := svc.Generate(context.Background(), "prompt")
	if !errors.Is(err, util.ErrGeneratorNoChoices) {
		t.Errorf("err = %v, want ErrGeneratorNoChoices", err)
	}
}

func TestAIServiceGenerateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL})

	_, err := svc.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry status code: %v", err)
	}
}

func TestAIServiceGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "invalid model"},
		})
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL})

	_, err := svc.Generate(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "invalid model") {
		t.Errorf("err = %v, want embedded API error message", err)
	}
}
