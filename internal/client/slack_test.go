package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/kube-rca/incident-comms/internal/config"
	"github.com/kube-rca/incident-comms/internal/model"
)

func TestToSlackMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold-only",
			input: "This is **bold** text.",
			want:  "This is *bold* text.",
		},
		{
			name:  "inline-code-protected",
			input: "Use `2 ** 3` and **bold**.",
			want:  "Use `2 ** 3` and *bold*.",
		},
		{
			name:  "code-block-protected",
			input: "```python\n2 ** 3\n```\n**bold**",
			want:  "```python\n2 ** 3\n```\n*bold*",
		},
		{
			name:  "mixed-inline-and-bold",
			input: "**Bold** and `code **`",
			want:  "*Bold* and `code **`",
		},
		{
			name:  "heading-converted",
			input: "### 1) 요약 (Summary)\n내용",
			want:  "*1) 요약 (Summary)*\n내용",
		},
		{
			name:  "heading-protected-in-code-block",
			input: "```\n### 1) 요약 (Summary)\n```\n**bold**",
			want:  "```\n### 1) 요약 (Summary)\n```\n*bold*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toSlackMarkdown(tt.input); got != tt.want {
				t.Fatalf("toSlackMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSendDraftForReviewPostsDraftAndJudgeThread(t *testing.T) {
	var (
		mu     sync.Mutex
		posted []SlackMessage
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer xoxb-test" {
			t.Errorf("missing bot token")
		}
		var msg SlackMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			t.Errorf("decode: %v", err)
		}
		mu.Lock()
		posted = append(posted, msg)
		mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"ts":"1700000000.000100"}`))
	}))
	defer srv.Close()

	c := NewSlackClient(config.SlackConfig{BotToken: "xoxb-test", ChannelID: "C123"})
	c.apiURL = srv.URL

	suggestion := "Mention the affected region."
	draft := model.DraftResponse{
		RunID:   "run-1",
		Title:   "Degraded API performance",
		Status:  "Investigating",
		Message: "We are investigating slower than normal API response times.",
		EvaluationResult: &model.EvaluationResult{
			OverallStatus: model.StatusWarning,
			LLMJudgeResult: &model.LLMJudgeResult{
				Dimensions: []model.LLMJudgeDimension{
					{Dimension: "Clarity and Customer Focus", Score: 0.7, Status: model.StatusWarning, ImprovementSuggestion: &suggestion},
				},
				OverallScore: 0.7,
				Confidence:   model.LevelMedium,
			},
		},
	}

	if err := c.SendDraftForReview(context.Background(), draft); err != nil {
		t.Fatalf("send: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(posted) != 2 {
		t.Fatalf("expected draft + thread reply, got %d messages", len(posted))
	}
	if posted[0].Attachments[0].Color != "#ffc107" || posted[0].ThreadTS != "" {
		t.Fatalf("unexpected draft message %+v", posted[0])
	}
	if posted[1].ThreadTS != "1700000000.000100" {
		t.Fatalf("judge detail not threaded: %+v", posted[1])
	}
	if !strings.Contains(posted[1].Attachments[0].Text, "*Clarity and Customer Focus*: 0.70 warning") {
		t.Fatalf("judge detail not converted to mrkdwn: %q", posted[1].Attachments[0].Text)
	}
}

func TestSendDraftForReviewNotConfigured(t *testing.T) {
	c := NewSlackClient(config.SlackConfig{})
	if err := c.SendDraftForReview(context.Background(), model.DraftResponse{}); err == nil {
		t.Fatalf("expected not configured error")
	}
}
