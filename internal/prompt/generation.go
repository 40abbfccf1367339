package prompt

import (
	"fmt"
	"strings"

	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/styleguide"
)

// GenerationSystemInstruction - 생성 단계 system instruction
const GenerationSystemInstruction = "You are an expert at writing clear, empathetic customer incident communications."

// 상태 페이지 스타일 가이드 (고정)
const (
	StyleTone = `- Professional and empathetic
- Direct and honest without over-sharing
- Avoid technical jargon
- Focus on customer impact, not internal details`

	StyleMustContain = `- What is happening (customer-observable symptoms)
- What is affected
- What we are doing about it
- When to expect next update or resolution`

	StyleMustExclude = `- Internal system names (unless customer-facing)
- Technical root cause details ("connection pool exhaustion", "Redis cache miss")
- Blame or specific engineer names
- Speculation or unconfirmed information
- Overly technical metrics ("p99 latency 15s" -> "significantly slower response times")`

	StyleUpdateFrequency = "Regular updates: Every 30-60 minutes during active incidents"
)

// TranslationPairs - 기술 용어 -> 고객용 표현 예시
var TranslationPairs = [][2]string{
	{"High API latency", "slower than normal response times"},
	{"Connection timeouts", "intermittent service disruptions"},
	{"5xx errors", "service unavailability"},
}

// ReferenceExampleBudget - 프롬프트에 포함할 예시 문서 최대 길이 (문자 수)
const ReferenceExampleBudget = 2000

// BuildGenerationPrompt - evidence + 단계별 구조 + 스타일 가이드로 생성 프롬프트 구성
func BuildGenerationPrompt(evidence model.ExtractedEvidence, docs styleguide.Documents) (string, error) {
	phase := strings.ToLower(strings.TrimSpace(evidence.Phase))
	guide, ok, err := GuideFor(phase)
	if err != nil {
		return "", err
	}
	upper := strings.ToUpper(evidence.Phase)

	var b strings.Builder
	b.WriteString("You are an expert at writing customer-appropriate incident status page communications.\n\n")
	fmt.Fprintf(&b, "PHASE: %s\n\n", upper)
	if ok {
		b.WriteString(guide.Generation)
		b.WriteString("\nEXAMPLE (demonstrates appropriate tone, structure, and level of detail):\n\"")
		b.WriteString(strings.TrimSpace(guide.Example))
		b.WriteString("\"\n\n")
	}

	b.WriteString("=== EXTRACTED EVIDENCE ===\n\n")
	meta := evidence.IncidentMetadata
	fmt.Fprintf(&b, "INCIDENT METADATA:\n- Title: %s\n- Severity: %s\n- Start Time: %s\n- Affected Service: %s\n\n",
		meta.Title, meta.Severity, meta.IncidentStartTime, meta.AffectedService)

	b.WriteString("CUSTOMER SYMPTOMS:\n")
	for _, s := range evidence.CustomerSymptoms {
		fmt.Fprintf(&b, "  - %s (confidence: %s)\n    Sources: %s\n", s.Symptom, s.Confidence, strings.Join(s.EvidenceSources, ", "))
	}
	b.WriteString("\n")

	status := evidence.InvestigationStatus
	fmt.Fprintf(&b, "INVESTIGATION STATUS:\n- Root Cause Identified: %t\n- Diagnosis: %s\n- Mitigation Action: %s\n- Expected Resolution: %s\n- Next Update: %s\n\n",
		status.RootCauseIdentified,
		orDefault(model.StrValue(status.DiagnosisSummary), "Not yet identified"),
		orDefault(model.StrValue(status.MitigationAction), "Investigating"),
		orDefault(model.StrValue(status.ExpectedResolution), "Not provided"),
		status.NextUpdateTiming,
	)

	if se := evidence.SupportingEvidence; se != nil {
		b.WriteString("SUPPORTING EVIDENCE:\n")
		fmt.Fprintf(&b, "- Deployment Correlation: %s\n", orDefault(model.StrValue(se.DeploymentCorrelation), "None"))
		fmt.Fprintf(&b, "- Error Patterns: %s\n", orDefault(model.StrValue(se.ErrorPatterns), "None"))
		fmt.Fprintf(&b, "- Metrics Summary: %s\n\n", orDefault(model.StrValue(se.MetricsSummary), "None"))
	}

	if len(evidence.TimelineEvents) > 0 {
		b.WriteString("TIMELINE:\n")
		for _, ev := range evidence.TimelineEvents {
			fmt.Fprintf(&b, "- %s: %s (source: %s)\n", ev.Time, ev.Event, ev.Source)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "INTERNAL TERMS TO AVOID (must translate or exclude):\n%s\n\n", strings.Join(evidence.InternalTermsToAvoid, ", "))
	fmt.Fprintf(&b, "SOURCE NAMES YOU MAY CITE:\n%s\n\n", strings.Join(evidence.CitedSources(), ", "))

	b.WriteString("=== STYLE GUIDELINES ===\n\n")
	fmt.Fprintf(&b, "TONE:\n%s\n\nMUST CONTAIN:\n%s\n\nMUST EXCLUDE:\n%s\n\nUPDATE FREQUENCY:\n%s\n\n",
		StyleTone, StyleMustContain, StyleMustExclude, StyleUpdateFrequency)

	if docs.Positive != "" {
		fmt.Fprintf(&b, "REFERENCE EXAMPLES:\n%s\n\n", truncate(docs.Positive, ReferenceExampleBudget))
	}

	b.WriteString("=== GENERATION INSTRUCTIONS ===\n\n")
	fmt.Fprintf(&b, "1. Generate a status page message for the %s phase\n", upper)
	b.WriteString("2. Translate ALL technical symptoms to customer-facing language:\n")
	for _, pair := range TranslationPairs {
		fmt.Fprintf(&b, "   - %q -> %q\n", pair[0], pair[1])
	}
	b.WriteString(`3. DO NOT include any internal terms from the list above
4. For EACH piece of information in your message, add an evidence_mappings entry naming the SOURCE it came from
   - Use the human-readable source names listed above (e.g., "Pagerduty Incident", "Cloudwatch Logs", "Incident Context")
   - NOT technical field paths like "customer_symptoms[0]"
5. List the internal terms you excluded or translated in internal_terms_avoided
6. Follow the phase-specific structure and requirements
7. Keep the message concise but complete (typically 45-100 words, longer for the Resolved phase summary)
8. Write plain text only - no HTML tags or markup

Generate the draft now with proper evidence mappings using source names.`)

	return b.String(), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
