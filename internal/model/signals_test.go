package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIncidentSignalsUnmarshalKeepsOrder(t *testing.T) {
	body := `{
		"pagerduty_incident": {"incident": {"severity": "SEV-1"}},
		"phase": "investigating",
		"incident_context": "api latency spike",
		"cloudwatch_logs": {"logs": []},
		"empty_source": null,
		"aws_outage_notes": "us-east-1"
	}`

	var signals IncidentSignals
	if err := json.Unmarshal([]byte(body), &signals); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if signals.Phase != PhaseInvestigating {
		t.Fatalf("phase = %q", signals.Phase)
	}

	want := []string{"Pagerduty Incident", "Incident Context", "Cloudwatch Logs", "Aws Outage Notes"}
	if diff := cmp.Diff(want, signals.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	ctx, ok := signals.Source("incident_context")
	if !ok || ctx.Kind != SourceText || ctx.Text != "api latency spike" {
		t.Fatalf("unexpected text source: %+v", ctx)
	}
	pd, ok := signals.Source("pagerduty_incident")
	if !ok || pd.Kind != SourceStructured || string(pd.Value) != `{"incident":{"severity":"SEV-1"}}` {
		t.Fatalf("unexpected structured source: %+v", pd)
	}
	if _, ok := signals.Source("empty_source"); ok {
		t.Fatalf("null source should be dropped")
	}
}

func TestIncidentSignalsMissingPhase(t *testing.T) {
	var signals IncidentSignals
	if err := json.Unmarshal([]byte(`{"incident_context": "x"}`), &signals); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if signals.Phase != "" {
		t.Fatalf("expected empty phase, got %q", signals.Phase)
	}
}

func TestIncidentSignalsRejectsNonObject(t *testing.T) {
	var signals IncidentSignals
	if err := json.Unmarshal([]byte(`["phase"]`), &signals); err == nil {
		t.Fatalf("expected error for array input")
	}
	if err := json.Unmarshal([]byte(`{"phase": 3}`), &signals); err == nil {
		t.Fatalf("expected error for numeric phase")
	}
}

func TestIncidentSignalsMarshalRoundTrip(t *testing.T) {
	metrics, err := StructuredSource("prometheus_metrics", map[string]any{"metrics": []int{1, 2}})
	if err != nil {
		t.Fatalf("structured source: %v", err)
	}
	in := IncidentSignals{
		Phase:   PhaseResolved,
		Sources: []SourcePayload{TextSource("slack_thread", "all clear"), metrics},
	}

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"phase":"resolved","slack_thread":"all clear","prometheus_metrics":{"metrics":[1,2]}}`
	if string(raw) != want {
		t.Fatalf("marshal = %s, want %s", raw, want)
	}

	var out IncidentSignals
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceLabel(t *testing.T) {
	tests := map[string]string{
		"incident_context":   "Incident Context",
		"github_deployments": "Github Deployments",
		"logs":               "Logs",
		"API_errors":         "Api Errors",
	}
	for in, want := range tests {
		if got := SourceLabel(in); got != want {
			t.Fatalf("SourceLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractedEvidenceValidate(t *testing.T) {
	ev := ExtractedEvidence{
		Phase: PhaseInvestigating,
		CustomerSymptoms: []CustomerSymptom{
			{Symptom: "High API latency", Confidence: ConfidenceHigh, EvidenceSources: []string{"Pagerduty Incident"}},
		},
		InvestigationStatus: InvestigationStatus{NextUpdateTiming: "within 30 minutes"},
	}
	if err := ev.Validate(); err != nil {
		t.Fatalf("expected valid evidence, got %v", err)
	}

	ev.CustomerSymptoms[0].EvidenceSources = nil
	ev.CustomerSymptoms[0].Confidence = "certain"
	if err := ev.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}
