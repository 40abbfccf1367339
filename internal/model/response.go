package model

import "encoding/json"

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// QualityScore - 하위 호환용 체크별 점수 (pass=1.0, warning=0.7, fail=0.3)
type QualityScore struct {
	Dimension string  `json:"dimension"`
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// DraftResponse - 전체 파이프라인 응답
type DraftResponse struct {
	RunID      string `json:"run_id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	NextUpdate string `json:"next_update"`

	ConfidenceScore  float64           `json:"confidence_score"`
	ConfidenceLevel  string            `json:"confidence_level"`
	EvidenceSummary  string            `json:"evidence_summary"`
	QualityScores    []QualityScore    `json:"quality_scores"`
	Warnings         []string          `json:"warnings"`
	EvaluationResult *EvaluationResult `json:"evaluation_result"`

	// 투명성 필드 (근거 매핑 및 데이터 출처)
	EvidenceMappings         []EvidenceMapping `json:"evidence_mappings"`
	InternalTermsAvoided     []string          `json:"internal_terms_avoided"`
	ExtractedEvidenceSummary EvidenceSummary   `json:"extracted_evidence_summary"`
	DataSourcesUsed          []string          `json:"data_sources_used"`

	// 입력 소스 이름과 매칭되지 않는 evidence_field를 가진 매핑
	UngroundedMappings []EvidenceMapping `json:"ungrounded_mappings"`
}

// EvidenceSummary - 초안 근거가 된 evidence 요약
type EvidenceSummary struct {
	Phase                     string            `json:"phase"`
	IncidentMetadata          IncidentMetadata  `json:"incident_metadata"`
	CustomerSymptomsCount     int               `json:"customer_symptoms_count"`
	CustomerSymptoms          []CustomerSymptom `json:"customer_symptoms"`
	RootCauseIdentified       bool              `json:"root_cause_identified"`
	Diagnosis                 *string           `json:"diagnosis"`
	MitigationAction          *string           `json:"mitigation_action"`
	InternalTermsToAvoidCount int               `json:"internal_terms_to_avoid_count"`
}

// EvaluateRequest - 평가 단계 단독 호출 요청 (draft + evidence)
type EvaluateRequest struct {
	Draft    *GeneratedDraft    `json:"draft"`
	Evidence *ExtractedEvidence `json:"evidence"`
}

// ParsedIncidentResponse - legacy 휴리스틱 파서 응답
type ParsedIncidentResponse struct {
	IncidentStart      *string         `json:"incident_start"`
	DetectedSymptoms   []string        `json:"detected_symptoms"`
	AffectedServices   []string        `json:"affected_services"`
	Severity           *string         `json:"severity"`
	DataSourcesPresent []string        `json:"data_sources_present"`
	RawSummary         string          `json:"raw_summary"`
	LegacyDraft        *GeneratedDraft `json:"legacy_draft,omitempty"`
}

// StatusExamplesResponse - 스타일 가이드 예시 문서
type StatusExamplesResponse struct {
	Examples         string `json:"examples"`
	NegativeExamples string `json:"negative_examples"`
}

// PublishResponse - 승인된 초안 전송 결과
type PublishResponse struct {
	Status     string `json:"status"`
	Target     string `json:"target"`
	StatusCode int    `json:"status_code"`
}

// IncidentSignalsDoc - OpenAPI 문서용 입력 예시 (실제 바인딩은 IncidentSignals)
type IncidentSignalsDoc struct {
	Phase           string          `json:"phase" example:"investigating"`
	IncidentContext string          `json:"incident_context,omitempty"`
	CloudwatchLogs  json.RawMessage `json:"cloudwatch_logs,omitempty" swaggertype:"object"`
}
