package template

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/kube-rca/incident-comms/internal/model"
)

func TestRenderBodyEscapesValues(t *testing.T) {
	draft := DraftDataFromModel(model.GeneratedDraft{
		Title:      `Degraded "API" performance`,
		Status:     "Investigating",
		Message:    "Line one.\nLine two.",
		NextUpdate: "within 30 minutes",
	}, time.Date(2025, 1, 15, 22, 23, 0, 0, time.UTC))

	body := RenderBody(`{"title":"{{draft.title}}","message":"{{draft.message}}","at":"{{draft.published_at}}"}`, &draft)

	var decoded map[string]string
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("rendered body is not valid JSON: %v\n%s", err, body)
	}
	if decoded["title"] != `Degraded "API" performance` {
		t.Fatalf("unexpected title %q", decoded["title"])
	}
	if decoded["message"] != "Line one.\nLine two." {
		t.Fatalf("unexpected message %q", decoded["message"])
	}
	if decoded["at"] != "2025-01-15T22:23:00Z" {
		t.Fatalf("unexpected published_at %q", decoded["at"])
	}
}

func TestRenderBodyNilDraft(t *testing.T) {
	got := RenderBody("{{draft.title}}|{{draft.next_update}}|{{unknown}}", nil)
	if got != "||{{unknown}}" {
		t.Fatalf("unexpected render %q", got)
	}
}
