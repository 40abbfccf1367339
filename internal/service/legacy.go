package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kube-rca/incident-comms/internal/model"
)

// ParseIncident - LLM 없이 입력 신호를 휴리스틱으로 요약 (legacy)
//
// 소스 이름으로 종류를 추정한다:
//   - pagerduty: incident.severity, incident.created_at
//   - logs: level == ERROR 인 로그 수
//   - metrics: metric_name에 latency가 포함된 메트릭 존재 여부
//   - context: 텍스트에서 API / Database 언급
func ParseIncident(signals model.IncidentSignals) model.ParsedIncidentResponse {
	parsed := model.ParsedIncidentResponse{
		DetectedSymptoms:   []string{},
		AffectedServices:   []string{},
		DataSourcesPresent: signals.Labels(),
	}

	for _, src := range signals.Sources {
		name := strings.ToLower(src.Name)
		switch {
		case strings.Contains(name, "pagerduty"):
			var pd struct {
				Incident struct {
					Severity  *string `json:"severity"`
					CreatedAt *string `json:"created_at"`
				} `json:"incident"`
			}
			if decodeSource(src, &pd) {
				severity := "Unknown"
				if pd.Incident.Severity != nil {
					severity = *pd.Incident.Severity
				}
				parsed.Severity = &severity
				parsed.IncidentStart = pd.Incident.CreatedAt
			}
		case strings.Contains(name, "logs"):
			var logs struct {
				Logs []struct {
					Level string `json:"level"`
				} `json:"logs"`
			}
			if decodeSource(src, &logs) {
				errorCount := 0
				for _, l := range logs.Logs {
					if l.Level == "ERROR" {
						errorCount++
					}
				}
				if errorCount > 0 {
					parsed.DetectedSymptoms = append(parsed.DetectedSymptoms, fmt.Sprintf("Service errors detected (%d error logs)", errorCount))
				}
			}
		case strings.Contains(name, "metrics"):
			var metrics struct {
				Metrics []struct {
					MetricName string `json:"metric_name"`
				} `json:"metrics"`
			}
			if decodeSource(src, &metrics) {
				for _, m := range metrics.Metrics {
					if strings.Contains(strings.ToLower(m.MetricName), "latency") {
						parsed.DetectedSymptoms = append(parsed.DetectedSymptoms, "Increased API latency")
						break
					}
				}
			}
		case strings.Contains(name, "context") && src.Kind == model.SourceText:
			text := strings.ToLower(src.Text)
			if strings.Contains(text, "api") {
				parsed.AffectedServices = appendUnique(parsed.AffectedServices, "API")
			}
			if strings.Contains(text, "database") || strings.Contains(text, "db") {
				parsed.AffectedServices = appendUnique(parsed.AffectedServices, "Database")
			}
		}
	}

	severity := "Unknown"
	if parsed.Severity != nil {
		severity = *parsed.Severity
	}
	parts := []string{
		"Data sources: " + strings.Join(parsed.DataSourcesPresent, ", "),
		"Severity: " + severity,
		fmt.Sprintf("Detected symptoms: %d", len(parsed.DetectedSymptoms)),
	}
	if parsed.IncidentStart != nil && *parsed.IncidentStart != "" {
		parts = append(parts, "Incident start: "+*parsed.IncidentStart)
	}
	parsed.RawSummary = strings.Join(parts, " | ")
	legacy := LegacyDraft()
	parsed.LegacyDraft = &legacy
	return parsed
}

// LegacyDraft - LLM을 사용하지 않는 호출자를 위한 고정 초안
// 메인 파이프라인의 fallback으로 사용하지 않는다.
func LegacyDraft() model.GeneratedDraft {
	return model.GeneratedDraft{
		Title:  "API Performance Degradation",
		Status: "Investigating",
		Message: "We are currently investigating reports of slower than normal response times. " +
			"Our engineering team is actively working to identify the root cause. " +
			"We will provide an update within 30 minutes.",
		NextUpdate:           "within 30 minutes",
		EvidenceMappings:     []model.EvidenceMapping{},
		InternalTermsAvoided: []string{},
	}
}

func decodeSource(src model.SourcePayload, out any) bool {
	if src.Kind != model.SourceStructured {
		return false
	}
	return json.Unmarshal(src.Value, out) == nil
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
