package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kube-rca/incident-comms/internal/model"
)

// ExtractionSystemInstruction - 추출 단계 system instruction
const ExtractionSystemInstruction = "You are extracting structured evidence from incident data."

// FormatSources - 모든 소스를 하나의 구분된 컨텍스트 블록으로 직렬화
//
// 각 블록은 "=== SOURCE: <Label> ===" 헤더로 시작하며,
// text 소스는 그대로, structured 소스는 들여쓰기된 JSON으로 포함된다.
// 반환되는 label 목록은 인용 가이드에 사용한다.
func FormatSources(signals model.IncidentSignals) (string, []string, error) {
	parts := make([]string, 0, len(signals.Sources)*3)
	labels := make([]string, 0, len(signals.Sources))

	for _, src := range signals.Sources {
		label := src.Label()
		labels = append(labels, label)
		parts = append(parts, fmt.Sprintf("=== SOURCE: %s ===", label))

		switch src.Kind {
		case model.SourceStructured:
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, src.Value, "", "  "); err != nil {
				return "", nil, fmt.Errorf("failed to format source %s: %w", src.Name, err)
			}
			parts = append(parts, pretty.String())
		default:
			parts = append(parts, src.Text)
		}
		parts = append(parts, "")
	}

	return strings.Join(parts, "\n"), labels, nil
}

// BuildExtractionPrompt - 단계별 지침이 포함된 추출 프롬프트 생성
func BuildExtractionPrompt(phase, formattedContext string, sources []string) (string, error) {
	guide, ok, err := GuideFor(phase)
	if err != nil {
		return "", err
	}
	definition := "Unknown phase"
	guidance := ""
	if ok {
		definition = guide.Definition
		guidance = guide.Extraction
	}

	var b strings.Builder
	b.WriteString("You are extracting structured evidence from incident data to generate a status page update.\n\n")
	fmt.Fprintf(&b, "CURRENT PHASE: %s\n", phase)
	fmt.Fprintf(&b, "PHASE DEFINITION: %s\n\n", definition)
	if guidance != "" {
		b.WriteString(guidance)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "SOURCES AVAILABLE: %s\n\n", strings.Join(sources, ", "))
	b.WriteString("<incident_data>\n")
	b.WriteString(formattedContext)
	b.WriteString("\n</incident_data>\n\n")

	fmt.Fprintf(&b, `EXTRACTION INSTRUCTIONS:
1. Extract information relevant to the "%s" phase using the guidance above
2. For EACH extracted piece of information, cite the specific source where you found it, using the source names listed in SOURCES AVAILABLE
3. Assign confidence level (high/medium/low) based on:
   - HIGH: Explicitly stated in source data, or at least two sources corroborate
   - MEDIUM: Implied but not explicit, or a single source mentions it
   - LOW: Weak signals or requires significant interpretation
4. Extract RAW TECHNICAL INFORMATION as-is from the sources - do NOT translate to customer language
5. Identify internal terms to flag for avoidance (service identifiers like "api-gateway", database names, employee names/emails, PR or change numbers)
6. If required information is not present in the data, use reasonable defaults or mark as "unknown"
7. Cross-reference sources to improve confidence - if multiple sources say the same thing, that's HIGH confidence

IMPORTANT CONSTRAINTS:
- Do NOT invent or hallucinate information not present in the sources
- Every customer symptom must list at least one evidence source
- Extract technical details AS-IS - translation will happen in a later generation phase
- For timestamps, convert to PT timezone format (e.g., "January 15, 2:23 PM PT")
- Flag internal system names for the internal_terms_to_avoid list (e.g., "api-gateway", "rds-prod-main", "alice.engineer@example.com")

Extract structured evidence now.`, phase)

	return b.String(), nil
}
