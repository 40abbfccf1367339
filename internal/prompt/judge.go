package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/scoring"
	"github.com/kube-rca/incident-comms/internal/styleguide"
)

// JudgeSystemInstruction - judge 단계 system instruction
const JudgeSystemInstruction = "You are an expert evaluator of customer communication quality. Provide detailed, honest assessments. " +
	"All text fields (rationale, improvement_suggestion, overall_rationale) must be PLAIN TEXT ONLY - no HTML tags, no markdown, no markup. " +
	"Return your response as valid JSON."

// rubric anchors per dimension (1.0 / 0.7 / 0.4 / 0.0)
var rubricAnchors = map[string][4]string{
	scoring.DimensionClarity: {
		"Crystal clear impact statement, customer perspective, no jargon, easy to understand",
		"Mostly clear but some vagueness or minor jargon",
		"Somewhat unclear, mixed focus between internal and customer perspective",
		"Vague, internal focus, heavy technical jargon, unclear impact",
	},
	scoring.DimensionTone: {
		"Professional, empathetic, direct, honest - matches example tone perfectly",
		"Generally appropriate tone with minor inconsistencies",
		"Tone issues - too casual or too stiff, lacking empathy",
		"Completely inappropriate - dismissive, too casual, or cold",
	},
	scoring.DimensionTechnical: {
		"Perfect balance - just enough detail, technical terms translated to customer language",
		"Mostly appropriate level with minor over/under-explanation",
		"Significant imbalance - either too technical or too vague",
		"Far too technical (exposes internals) or uselessly vague",
	},
	scoring.DimensionFactual: {
		"Every claim is directly supported by evidence, no speculation",
		"Mostly supported, minor inference that's reasonable",
		"Some unsupported claims or speculation presented as fact",
		"Major hallucinations, contradicts evidence, or makes completely unsupported claims",
	},
	scoring.DimensionPhaseMatch: {
		"Message perfectly matches incident lifecycle stage expectations",
		"Generally appropriate with minor misalignment",
		"Noticeable issues - wrong messaging for the phase",
		"Completely wrong phase messaging (e.g., claiming resolution during investigation)",
	},
}

var anchorScores = [4]string{"1.0", "0.7", "0.4", "0.0"}

// judgeEvidence - judge에 전달하는 evidence 요약 (필드 순서 고정)
type judgeEvidence struct {
	Phase               string         `json:"phase"`
	CustomerSymptoms    []judgeSymptom `json:"customer_symptoms"`
	RootCauseIdentified bool           `json:"root_cause_identified"`
	Diagnosis           *string        `json:"diagnosis"`
	MitigationAction    *string        `json:"mitigation_action"`
}

type judgeSymptom struct {
	Symptom  string   `json:"symptom"`
	Evidence []string `json:"evidence"`
}

// BuildJudgePrompt - 5개 차원 rubric + 예시 + evidence + 초안으로 평가 프롬프트 구성
func BuildJudgePrompt(draft model.GeneratedDraft, evidence model.ExtractedEvidence, docs styleguide.Documents) (string, error) {
	summary := judgeEvidence{
		Phase:               evidence.Phase,
		CustomerSymptoms:    make([]judgeSymptom, 0, len(evidence.CustomerSymptoms)),
		RootCauseIdentified: evidence.InvestigationStatus.RootCauseIdentified,
		Diagnosis:           evidence.InvestigationStatus.DiagnosisSummary,
		MitigationAction:    evidence.InvestigationStatus.MitigationAction,
	}
	for _, s := range evidence.CustomerSymptoms {
		summary.CustomerSymptoms = append(summary.CustomerSymptoms, judgeSymptom{Symptom: s.Symptom, Evidence: s.EvidenceSources})
	}
	evidenceJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal judge evidence: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an expert evaluator assessing status page messages for customer incident communications.\n\n")
	b.WriteString("IMPORTANT: Provide all responses as PLAIN TEXT ONLY. Do NOT include HTML tags, markdown formatting, or any markup in your responses.\n\n")
	b.WriteString("EVALUATION RUBRIC - Score each dimension from 0.0 (poor) to 1.0 (excellent):\n\n")
	for i, dim := range scoring.Dimensions {
		fmt.Fprintf(&b, "%d. %s (0.0-1.0)\n", i+1, dim)
		anchors := rubricAnchors[dim]
		for j, anchor := range anchors {
			fmt.Fprintf(&b, "   - %s: %s\n", anchorScores[j], anchor)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "POSITIVE EXAMPLES (these score 0.9-1.0):\n%s\n\n", truncate(docs.Positive, ReferenceExampleBudget))
	fmt.Fprintf(&b, "NEGATIVE EXAMPLES (these score 0.0-0.3):\n%s\n\n", docs.Negative)
	fmt.Fprintf(&b, "EVIDENCE PROVIDED (use this to verify factual grounding):\n%s\n\n", evidenceJSON)
	fmt.Fprintf(&b, "DRAFT TO EVALUATE:\nPhase: %s\nTitle: %s\nStatus: %s\nMessage: %s\nNext Update: %s\n\n",
		evidence.Phase, draft.Title, draft.Status, draft.Message, draft.NextUpdate)

	fmt.Fprintf(&b, `Evaluate this draft across all 5 dimensions, using the exact dimension names above. For each dimension:
- Assign a precise score from 0.0 to 1.0
- Provide specific rationale explaining the score (PLAIN TEXT ONLY)
- Determine status: pass (>=0.8), warning (0.6-0.8), fail (<0.6)
- If score < 0.8, provide a specific improvement suggestion (PLAIN TEXT ONLY)

CRITICAL FORMATTING RULES:
- All text fields must be plain text only
- Do NOT use HTML tags like <div>, <span>, or any other tags
- Do NOT include CSS styling or inline styles
- Do NOT use markdown formatting
- Use simple sentences and line breaks only

Focus especially on:
- Factual grounding: Does every claim match the evidence?
- Phase appropriateness: Does the message fit the "%s" phase?
- Customer language: Are technical terms properly translated?`, evidence.Phase)

	return b.String(), nil
}
