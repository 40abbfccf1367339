package model

// Incident 단계 (status page 업데이트의 lifecycle)
// 알 수 없는 값도 그대로 통과시키고, 평가 단계에서 warning으로 처리한다.
const (
	PhaseInvestigating = "investigating"
	PhaseIdentified    = "identified"
	PhaseMonitoring    = "monitoring"
	PhaseResolved      = "resolved"
)

// KnownPhases - 정의된 4개 단계 (순서 유지)
var KnownPhases = []string{PhaseInvestigating, PhaseIdentified, PhaseMonitoring, PhaseResolved}

