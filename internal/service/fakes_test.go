package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/kube-rca/incident-comms/internal/client"
	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/prompt"
	"github.com/kube-rca/incident-comms/internal/styleguide"
)

// fakeLLM - system instruction 별로 고정 응답 반환
type fakeLLM struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []client.GenerateRequest
}

func newFakeLLM() *fakeLLM {
	return &fakeLLM{
		responses: map[string]string{
			prompt.ExtractionSystemInstruction: evidenceJSON,
			prompt.GenerationSystemInstruction: draftJSON,
			prompt.JudgeSystemInstruction:      judgeJSON,
		},
		errs: map[string]error{},
	}
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, req client.GenerateRequest) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if err := f.errs[req.SystemInstruction]; err != nil {
		return nil, err
	}
	resp, ok := f.responses[req.SystemInstruction]
	if !ok {
		return nil, errors.New("unexpected request")
	}
	return json.RawMessage(resp), nil
}

func (f *fakeLLM) callsFor(system string) []client.GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []client.GenerateRequest
	for _, c := range f.calls {
		if c.SystemInstruction == system {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeStyleGuide struct {
	docs styleguide.Documents
	err  error
}

func (f fakeStyleGuide) Load() (styleguide.Documents, error) {
	return f.docs, f.err
}

var testGuide = fakeStyleGuide{docs: styleguide.Documents{Positive: "positive examples", Negative: "negative examples"}}

type fakeReviewSender struct {
	configured bool
	sent       chan model.DraftResponse
	err        error
}

func (f *fakeReviewSender) IsConfigured() bool { return f.configured }

func (f *fakeReviewSender) SendDraftForReview(ctx context.Context, draft model.DraftResponse) error {
	f.sent <- draft
	return f.err
}

const evidenceJSON = `{
  "phase": "investigating",
  "incident_metadata": {
    "title": "API latency",
    "severity": "SEV-2",
    "incident_start_time": "January 15, 2:23 PM PT",
    "affected_service": "API"
  },
  "customer_symptoms": [
    {"symptom": "High API latency", "confidence": "high", "evidence_sources": ["Pagerduty Incident", "Cloudwatch Logs"]},
    {"symptom": "Connection timeouts", "confidence": "medium", "evidence_sources": ["Cloudwatch Logs"]}
  ],
  "investigation_status": {
    "root_cause_identified": false,
    "diagnosis_summary": null,
    "mitigation_action": null,
    "expected_resolution": null,
    "next_update_timing": "within 30 minutes"
  },
  "internal_terms_to_avoid": ["api-gateway", "rds-prod-main"],
  "supporting_evidence": null,
  "timeline_events": [
    {"time": "2:23 PM PT", "event": "Alert triggered", "source": "Pagerduty Incident"}
  ]
}`

const draftMessage = "We are currently investigating reports of slower than normal response times affecting the API. " +
	"Some customers may experience delays or intermittent timeouts when making API calls, and a small number of requests may fail. " +
	"Our engineering team is actively investigating the issue and reviewing recent changes to identify what is happening. " +
	"We will share more information as soon as it is available. We will provide an update within 30 minutes."

const draftJSON = `{
  "title": "Degraded API Performance",
  "status": "Investigating",
  "message": "<p>` + draftMessage + `</p>",
  "next_update": "within 30 minutes",
  "evidence_mappings": [
    {"generated_text": "slower than normal response times", "evidence_field": "Pagerduty Incident", "original_technical_term": "High API latency", "customer_facing_term": "slower than normal response times"},
    {"generated_text": "intermittent timeouts", "evidence_field": "Cloudwatch Logs", "original_technical_term": "Connection timeouts", "customer_facing_term": "intermittent timeouts"},
    {"generated_text": "actively investigating", "evidence_field": "customer_symptoms[0]", "original_technical_term": null, "customer_facing_term": null}
  ],
  "internal_terms_avoided": ["api-gateway"],
  "confidence_notes": null
}`

const judgeJSON = `{
  "dimensions": [
    {"dimension": "Clarity and Customer Focus", "score": 0.9, "rationale": "<b>Clear</b> impact statement", "status": "fail", "improvement_suggestion": null},
    {"dimension": "Tone Consistency with Brand Voice", "score": 0.8, "rationale": "Empathetic", "status": "pass", "improvement_suggestion": null},
    {"dimension": "Appropriate Technical Detail Balance", "score": 0.7, "rationale": "Slightly vague", "status": "pass", "improvement_suggestion": "Name the affected&nbsp;endpoints"},
    {"dimension": "Factual Grounding / No Hallucinations", "score": 0.6, "rationale": "Mostly supported", "status": "pass", "improvement_suggestion": "Drop the claim about failed requests"},
    {"dimension": "Phase Appropriateness", "score": 1.0, "rationale": "Fits investigating", "status": "pass", "improvement_suggestion": null}
  ],
  "overall_score": 0.99,
  "confidence": "High",
  "overall_rationale": "<div>Solid draft</div>"
}`
