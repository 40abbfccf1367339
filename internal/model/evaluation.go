package model

// 평가 결과 상태
const (
	StatusPass    = "pass"
	StatusWarning = "warning"
	StatusFail    = "fail"
)

// 전체 confidence level
const (
	LevelHigh   = "High"
	LevelMedium = "Medium"
	LevelLow    = "Low"
)

// DeterministicCheck - 규칙 기반 단일 체크 결과
type DeterministicCheck struct {
	CheckName     string  `json:"check_name"`
	Status        string  `json:"status"`
	Details       string  `json:"details"`
	ActionableFix *string `json:"actionable_fix"`
}

// EvaluationResult - 4개 체크 집계 + (선택) LLM judge 결과
type EvaluationResult struct {
	OverallStatus       string               `json:"overall_status"`
	DeterministicChecks []DeterministicCheck `json:"deterministic_checks"`
	Warnings            []string             `json:"warnings"`
	PassedChecks        int                  `json:"passed_checks"`
	FailedChecks        int                  `json:"failed_checks"`
	WarningChecks       int                  `json:"warning_checks"`
	LLMJudgeResult      *LLMJudgeResult      `json:"llm_judge_result"`
}

// LLMJudgeDimension - 품질 차원별 점수
type LLMJudgeDimension struct {
	Dimension             string  `json:"dimension"`
	Score                 float64 `json:"score"`
	Rationale             string  `json:"rationale"`
	Status                string  `json:"status"`
	ImprovementSuggestion *string `json:"improvement_suggestion"`
}

// LLMJudgeResult - LLM-as-Judge 평가 결과
// OverallScore, Confidence는 모델 응답값을 쓰지 않고 항상 재계산한다.
type LLMJudgeResult struct {
	Dimensions       []LLMJudgeDimension `json:"dimensions"`
	OverallScore     float64             `json:"overall_score"`
	Confidence       string              `json:"confidence"`
	OverallRationale string              `json:"overall_rationale"`
}
