package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/schedule-builder/internal/domain"
	"github.com/openai/openai-go/v3/option"
)

func TestNewOpenAIClient_EmptyKey(t *testing.T) {
	if c := NewOpenAIClient("", "gpt-4o-mini"); c != nil {
		t.Fatalf("expected nil client without api key")
	}
}

func TestGenerateInsights_NilClient(t *testing.T) {
	var c *OpenAIClient
	_, err := c.GenerateInsights(context.Background(), &domain.InsightsContext{})
	if !errors.Is(err, ErrOpenAIUnavailable) {
		t.Fatalf("expected ErrOpenAIUnavailable, got %v", err)
	}
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		wantObs int
	}{
		{
			name:    "plain json",
			content: `{"summary":"Busy week.","observations":["a","b"],"recommendations":["c"]}`,
			wantObs: 2,
		},
		{
			name:    "fenced json",
			content: "```json\n{\"summary\":\"Quiet day.\"}\n```",
			wantObs: 0,
		},
		{
			name:    "not json",
			content: "Sure! Here are your insights.",
			wantErr: true,
		},
		{
			name:    "missing summary",
			content: `{"observations":["a"]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ParseOutput(tt.content)
			if tt.wantErr {
				if !errors.Is(err, ErrOpenAIResponse) {
					t.Fatalf("expected ErrOpenAIResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Observations) != tt.wantObs {
				t.Errorf("observations = %v, want %d items", out.Observations, tt.wantObs)
			}
			if out.Recommendations == nil {
				t.Error("recommendations should never be nil")
			}
		})
	}
}

func completionServer(t *testing.T, status int, content string, gotPrompt *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(body.Messages) == 2 && gotPrompt != nil {
			*gotPrompt = body.Messages[1].Content
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   body.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateInsights(t *testing.T) {
	var prompt string
	srv := completionServer(t, http.StatusOK, `{"summary":"Busy Monday.","observations":["One conflict"],"recommendations":["Move standup"]}`, &prompt)

	c := NewOpenAIClient("test-key", "", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
	out, err := c.GenerateInsights(context.Background(), &domain.InsightsContext{
		ScheduleName: "Work week",
		View:         domain.ViewDay,
		From:         "2024-01-15",
		To:           "2024-01-15",
		Slots:        []domain.TimeSlot{{ID: "a", Title: "Standup", StartTime: "09:00", EndTime: "09:15", Date: "2024-01-15"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Summary != "Busy Monday." || len(out.Observations) != 1 || len(out.Recommendations) != 1 {
		t.Errorf("unexpected output: %+v", out)
	}
	for _, want := range []string{`"Work week"`, "day view", "2024-01-15", "Standup"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateInsights_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		content string
		wantErr error
	}{
		{name: "upstream failure", status: http.StatusInternalServerError, wantErr: ErrOpenAIRequest},
		{name: "unparseable answer", status: http.StatusOK, content: "I cannot help with that.", wantErr: ErrOpenAIResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := completionServer(t, tt.status, tt.content, nil)
			c := NewOpenAIClient("test-key", "gpt-4o-mini", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))

			_, err := c.GenerateInsights(context.Background(), &domain.InsightsContext{ScheduleName: "x"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
