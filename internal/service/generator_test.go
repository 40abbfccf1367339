package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/prompt"
)

func TestGenerateSanitizesDraft(t *testing.T) {
	llm := newFakeLLM()
	draft, err := NewGenerator(llm, "gen-model", testGuide).Generate(context.Background(), sampleEvidence())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if draft.Message != draftMessage {
		t.Fatalf("message not sanitized: %q", draft.Message)
	}
	if len(draft.EvidenceMappings) != 3 || draft.EvidenceMappings[0].EvidenceField != "Pagerduty Incident" {
		t.Fatalf("unexpected mappings %+v", draft.EvidenceMappings)
	}

	calls := llm.callsFor(prompt.GenerationSystemInstruction)
	if len(calls) != 1 || calls[0].Model != "gen-model" {
		t.Fatalf("unexpected generation calls %+v", calls)
	}
	if !strings.Contains(calls[0].Prompt, "REFERENCE EXAMPLES:\npositive examples") {
		t.Fatalf("style guide not included in prompt")
	}
}

func TestGenerateRejectsInvalidEvidence(t *testing.T) {
	llm := newFakeLLM()
	evidence := sampleEvidence()
	evidence.CustomerSymptoms[0].EvidenceSources = nil

	_, err := NewGenerator(llm, "m", testGuide).Generate(context.Background(), evidence)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if llm.callCount() != 0 {
		t.Fatalf("expected no llm calls")
	}
}

func TestGenerateSchemaViolation(t *testing.T) {
	llm := newFakeLLM()
	llm.responses[prompt.GenerationSystemInstruction] = `{"title":"Outage","status":"Investigating","message":"<br/>"}`

	_, err := NewGenerator(llm, "m", testGuide).Generate(context.Background(), sampleEvidence())
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation for empty message, got %v", err)
	}
}

func TestGenerateNoFallbackOnUpstreamError(t *testing.T) {
	llm := newFakeLLM()
	upstream := errors.New("model unavailable")
	llm.errs[prompt.GenerationSystemInstruction] = upstream

	draft, err := NewGenerator(llm, "m", testGuide).Generate(context.Background(), sampleEvidence())
	if !errors.Is(err, upstream) || draft != nil {
		t.Fatalf("expected upstream error and no draft, got %v %+v", err, draft)
	}
}

func TestSanitizeDraftNormalizesLists(t *testing.T) {
	d := model.GeneratedDraft{Title: " <h1>Title</h1> ", Message: "a &amp; b"}
	sanitizeDraft(&d)
	if d.Title != "Title" || d.Message != "a  b" {
		t.Fatalf("unexpected sanitized draft %+v", d)
	}
	if d.EvidenceMappings == nil || d.InternalTermsAvoided == nil {
		t.Fatalf("nil lists should be normalized")
	}
}
