package prompt

import (
	"strings"
	"testing"

	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/scoring"
	"github.com/kube-rca/incident-comms/internal/styleguide"
)

func sampleSignals(t *testing.T) model.IncidentSignals {
	t.Helper()
	logs, err := model.StructuredSource("cloudwatch_logs", map[string]any{"logs": []map[string]string{{"level": "ERROR"}}})
	if err != nil {
		t.Fatalf("structured source: %v", err)
	}
	return model.IncidentSignals{
		Phase:   model.PhaseInvestigating,
		Sources: []model.SourcePayload{model.TextSource("incident_context", "checking api-gateway latency"), logs},
	}
}

func TestFormatSources(t *testing.T) {
	formatted, labels, err := FormatSources(sampleSignals(t))
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	want := strings.Join([]string{
		"=== SOURCE: Incident Context ===",
		"checking api-gateway latency",
		"",
		"=== SOURCE: Cloudwatch Logs ===",
		"{",
		`  "logs": [`,
		"    {",
		`      "level": "ERROR"`,
		"    }",
		"  ]",
		"}",
		"",
	}, "\n")
	if formatted != want {
		t.Fatalf("formatted context mismatch:\n%s\nwant:\n%s", formatted, want)
	}
	if len(labels) != 2 || labels[0] != "Incident Context" || labels[1] != "Cloudwatch Logs" {
		t.Fatalf("unexpected labels %v", labels)
	}
}

func TestBuildExtractionPromptPhaseGuidance(t *testing.T) {
	tests := []struct {
		phase   string
		want    string
		notWant string
	}{
		{phase: "investigating", want: "DO NOT EXTRACT (not relevant yet)", notWant: "Unknown phase"},
		{phase: "identified", want: "extract raw technical diagnosis", notWant: "Unknown phase"},
		{phase: "monitoring", want: "Fix deployment confirmation", notWant: "Unknown phase"},
		{phase: "resolved", want: "Total incident duration", notWant: "Unknown phase"},
		{phase: "postmortem", want: "PHASE DEFINITION: Unknown phase", notWant: "REQUIRED EXTRACTIONS"},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			p, err := BuildExtractionPrompt(tt.phase, "ctx", []string{"Incident Context"})
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if !strings.Contains(p, tt.want) {
				t.Fatalf("prompt missing %q", tt.want)
			}
			if strings.Contains(p, tt.notWant) {
				t.Fatalf("prompt unexpectedly contains %q", tt.notWant)
			}
			if !strings.Contains(p, "SOURCES AVAILABLE: Incident Context") {
				t.Fatalf("prompt missing sources line")
			}
		})
	}
}

func sampleEvidence() model.ExtractedEvidence {
	return model.ExtractedEvidence{
		Phase:            model.PhaseInvestigating,
		IncidentMetadata: model.IncidentMetadata{Title: "API latency", Severity: "SEV-2", AffectedService: "API"},
		CustomerSymptoms: []model.CustomerSymptom{
			{Symptom: "High API latency", Confidence: model.ConfidenceHigh, EvidenceSources: []string{"Pagerduty Incident", "Cloudwatch Logs"}},
		},
		InvestigationStatus:  model.InvestigationStatus{NextUpdateTiming: "within 30 minutes"},
		InternalTermsToAvoid: []string{"api-gateway"},
	}
}

func TestBuildGenerationPrompt(t *testing.T) {
	docs := styleguide.Documents{Positive: strings.Repeat("x", ReferenceExampleBudget+500)}
	p, err := BuildGenerationPrompt(sampleEvidence(), docs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, want := range []string{
		"PHASE: INVESTIGATING",
		"DO NOT mention root cause",
		"High API latency (confidence: high)",
		"Sources: Pagerduty Incident, Cloudwatch Logs",
		"INTERNAL TERMS TO AVOID (must translate or exclude):\napi-gateway",
		"SOURCE NAMES YOU MAY CITE:\nPagerduty Incident, Cloudwatch Logs",
		`"5xx errors" -> "service unavailability"`,
		"Diagnosis: Not yet identified",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("generation prompt missing %q", want)
		}
	}
	if strings.Contains(p, strings.Repeat("x", ReferenceExampleBudget+1)) {
		t.Fatalf("reference examples not truncated")
	}
}

func TestBuildJudgePrompt(t *testing.T) {
	draft := model.GeneratedDraft{Title: "Degraded API", Status: "Investigating", Message: "We are investigating.", NextUpdate: "30 minutes"}
	docs := styleguide.Documents{Positive: "good", Negative: "bad"}
	p, err := BuildJudgePrompt(draft, sampleEvidence(), docs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, dim := range scoring.Dimensions {
		if !strings.Contains(p, dim) {
			t.Fatalf("judge prompt missing dimension %q", dim)
		}
	}
	for _, want := range []string{"   - 0.4: ", "POSITIVE EXAMPLES (these score 0.9-1.0):\ngood", "NEGATIVE EXAMPLES (these score 0.0-0.3):\nbad", `"root_cause_identified": false`, "Message: We are investigating."} {
		if !strings.Contains(p, want) {
			t.Fatalf("judge prompt missing %q", want)
		}
	}
}

func TestSchemasRequireCoreFields(t *testing.T) {
	ev := EvidenceSchema()
	if ev.Properties["customer_symptoms"].Items.Properties["evidence_sources"] == nil {
		t.Fatalf("evidence schema missing evidence_sources")
	}
	if len(DraftSchema().Required) == 0 || len(JudgeSchema().Required) == 0 {
		t.Fatalf("schemas must declare required fields")
	}
}
