package model

import (
	"errors"
	"fmt"
	"strings"
)

// Symptom confidence tier
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// IncidentMetadata - incident 핵심 메타데이터
type IncidentMetadata struct {
	Title             string `json:"title"`
	Severity          string `json:"severity"`
	IncidentStartTime string `json:"incident_start_time"`
	AffectedService   string `json:"affected_service"`
}

// CustomerSymptom - 고객에게 보이는 증상 (기술 용어 그대로) + 근거 소스
type CustomerSymptom struct {
	Symptom         string   `json:"symptom"`
	Confidence      string   `json:"confidence"`
	EvidenceSources []string `json:"evidence_sources"`
}

// InvestigationStatus - 조사/완화 진행 상황
type InvestigationStatus struct {
	RootCauseIdentified bool    `json:"root_cause_identified"`
	DiagnosisSummary    *string `json:"diagnosis_summary"`
	MitigationAction    *string `json:"mitigation_action"`
	ExpectedResolution  *string `json:"expected_resolution"`
	NextUpdateTiming    string  `json:"next_update_timing"`
}

// TimelineEvent - incident 타임라인의 단일 이벤트
type TimelineEvent struct {
	Time   string `json:"time"`
	Event  string `json:"event"`
	Source string `json:"source"`
}

// SupportingEvidence - 부가 근거 (배포 상관관계, 에러 패턴, 메트릭 요약)
type SupportingEvidence struct {
	DeploymentCorrelation *string `json:"deployment_correlation"`
	ErrorPatterns         *string `json:"error_patterns"`
	MetricsSummary        *string `json:"metrics_summary"`
}

// ExtractedEvidence - 1단계(추출) 결과. 생성 이후에는 읽기 전용으로 사용
type ExtractedEvidence struct {
	Phase                string              `json:"phase"`
	IncidentMetadata     IncidentMetadata    `json:"incident_metadata"`
	CustomerSymptoms     []CustomerSymptom   `json:"customer_symptoms"`
	InvestigationStatus  InvestigationStatus `json:"investigation_status"`
	InternalTermsToAvoid []string            `json:"internal_terms_to_avoid"`
	SupportingEvidence   *SupportingEvidence `json:"supporting_evidence"`
	TimelineEvents       []TimelineEvent     `json:"timeline_events"`
}

// Validate - 필수 하위 필드와 symptom 불변식 확인
func (e ExtractedEvidence) Validate() error {
	var problems []string
	if strings.TrimSpace(e.Phase) == "" {
		problems = append(problems, "phase is required")
	}
	if strings.TrimSpace(e.InvestigationStatus.NextUpdateTiming) == "" {
		problems = append(problems, "investigation_status.next_update_timing is required")
	}
	for i, s := range e.CustomerSymptoms {
		if strings.TrimSpace(s.Symptom) == "" {
			problems = append(problems, fmt.Sprintf("customer_symptoms[%d].symptom is empty", i))
		}
		switch s.Confidence {
		case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		default:
			problems = append(problems, fmt.Sprintf("customer_symptoms[%d].confidence %q is not high|medium|low", i, s.Confidence))
		}
		if len(s.EvidenceSources) == 0 {
			problems = append(problems, fmt.Sprintf("customer_symptoms[%d].evidence_sources is empty", i))
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// CitedSources - evidence에 등장하는 모든 소스 인용 문자열 (중복 제거, 등장 순서)
func (e ExtractedEvidence) CitedSources() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range e.CustomerSymptoms {
		for _, src := range s.EvidenceSources {
			add(src)
		}
	}
	for _, ev := range e.TimelineEvents {
		add(ev.Source)
	}
	return out
}

// StrValue - nil 가능한 문자열 포인터를 값으로 변환
func StrValue(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
