package prompt

import "google.golang.org/genai"

// 응답 스키마 정의 (structured output 강제용)

func str(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc}
}

func optionalStr(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc, Nullable: genai.Ptr(true)}
}

func strList(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Description: desc, Items: &genai.Schema{Type: genai.TypeString}}
}

func object(props map[string]*genai.Schema, order []string, required ...string) *genai.Schema {
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		PropertyOrdering: order,
		Required:         required,
	}
}

// EvidenceSchema - ExtractedEvidence 응답 스키마
func EvidenceSchema() *genai.Schema {
	metadata := object(map[string]*genai.Schema{
		"title":               str("Brief incident title"),
		"severity":            str("SEV-1, SEV-2, SEV-3, or unknown"),
		"incident_start_time": str("Incident start time in PT timezone"),
		"affected_service":    str("Customer-facing service name (e.g., 'API', 'Email Notifications')"),
	}, []string{"title", "severity", "incident_start_time", "affected_service"},
		"title", "severity", "incident_start_time", "affected_service")

	symptom := object(map[string]*genai.Schema{
		"symptom":          str("Technical description of what's happening (e.g., 'High API latency', '5xx errors')"),
		"confidence":       {Type: genai.TypeString, Enum: []string{"high", "medium", "low"}},
		"evidence_sources": strList("Human-readable source names supporting this (at least one)"),
	}, []string{"symptom", "confidence", "evidence_sources"},
		"symptom", "confidence", "evidence_sources")

	investigation := object(map[string]*genai.Schema{
		"root_cause_identified": {Type: genai.TypeBoolean, Description: "Has root cause been identified?"},
		"diagnosis_summary":     optionalStr("Technical diagnosis if root cause is known (raw technical details)"),
		"mitigation_action":     optionalStr("What's being done to fix it (raw action description)"),
		"expected_resolution":   optionalStr("Expected resolution time if mentioned"),
		"next_update_timing":    str("When next update is expected (e.g., 'within 30 minutes')"),
	}, []string{"root_cause_identified", "diagnosis_summary", "mitigation_action", "expected_resolution", "next_update_timing"},
		"root_cause_identified", "next_update_timing")

	supporting := object(map[string]*genai.Schema{
		"deployment_correlation": optionalStr("Deployments near incident time if relevant"),
		"error_patterns":         optionalStr("Notable error patterns from logs"),
		"metrics_summary":        optionalStr("Key metric changes"),
	}, []string{"deployment_correlation", "error_patterns", "metrics_summary"})
	supporting.Nullable = genai.Ptr(true)

	timeline := object(map[string]*genai.Schema{
		"time":   str("Time in PT timezone"),
		"event":  str("What happened"),
		"source": str("Which data source this came from"),
	}, []string{"time", "event", "source"}, "time", "event", "source")

	return object(map[string]*genai.Schema{
		"phase":                   str("Incident phase: investigating, identified, monitoring, or resolved"),
		"incident_metadata":       metadata,
		"customer_symptoms":       {Type: genai.TypeArray, Items: symptom},
		"investigation_status":    investigation,
		"internal_terms_to_avoid": strList("Internal service names and technical terms that must not appear in customer communications"),
		"supporting_evidence":     supporting,
		"timeline_events":         {Type: genai.TypeArray, Items: timeline},
	}, []string{"phase", "incident_metadata", "customer_symptoms", "investigation_status", "internal_terms_to_avoid", "supporting_evidence", "timeline_events"},
		"phase", "incident_metadata", "customer_symptoms", "investigation_status", "internal_terms_to_avoid")
}

// DraftSchema - GeneratedDraft 응답 스키마
func DraftSchema() *genai.Schema {
	mapping := object(map[string]*genai.Schema{
		"generated_text":          str("The text in the draft"),
		"evidence_field":          str("Human-readable source name it came from (e.g., 'Pagerduty Incident', 'Incident Context')"),
		"original_technical_term": optionalStr("Original technical term if translated"),
		"customer_facing_term":    optionalStr("Customer-facing translation"),
	}, []string{"generated_text", "evidence_field", "original_technical_term", "customer_facing_term"},
		"generated_text", "evidence_field")

	return object(map[string]*genai.Schema{
		"title":                  str("Incident title for status page"),
		"status":                 str("Incident status: Investigating, Identified, Monitoring, or Resolved"),
		"message":                str("Customer-facing message body"),
		"next_update":            str("When next update is expected"),
		"evidence_mappings":      {Type: genai.TypeArray, Items: mapping},
		"internal_terms_avoided": strList("Internal terms from evidence that were excluded or translated"),
		"confidence_notes":       optionalStr("Any uncertainties or notes about the generation"),
	}, []string{"title", "status", "message", "next_update", "evidence_mappings", "internal_terms_avoided", "confidence_notes"},
		"title", "status", "message", "next_update", "evidence_mappings")
}

// JudgeSchema - LLMJudgeResult 응답 스키마
func JudgeSchema() *genai.Schema {
	dimension := object(map[string]*genai.Schema{
		"dimension":              str("Quality dimension name, exactly as in the rubric"),
		"score":                  {Type: genai.TypeNumber, Minimum: genai.Ptr(0.0), Maximum: genai.Ptr(1.0)},
		"rationale":              str("Plain-text reasoning for the score"),
		"status":                 {Type: genai.TypeString, Enum: []string{"pass", "warning", "fail"}},
		"improvement_suggestion": optionalStr("Plain-text suggestion when score < 0.8"),
	}, []string{"dimension", "score", "rationale", "status", "improvement_suggestion"},
		"dimension", "score", "rationale", "status")

	return object(map[string]*genai.Schema{
		"dimensions":        {Type: genai.TypeArray, Items: dimension},
		"overall_score":     {Type: genai.TypeNumber},
		"confidence":        str("High, Medium, or Low"),
		"overall_rationale": str("Plain-text summary of the evaluation"),
	}, []string{"dimensions", "overall_score", "confidence", "overall_rationale"},
		"dimensions", "overall_score", "confidence", "overall_rationale")
}
