package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kube-rca/incident-comms/internal/client"
	"github.com/kube-rca/incident-comms/internal/styleguide"
)

// LLMClient - JSON 모드 생성 capability
type LLMClient interface {
	GenerateJSON(ctx context.Context, req client.GenerateRequest) (json.RawMessage, error)
}

// StyleGuide - 호출 시점에 예시 문서 로드
type StyleGuide interface {
	Load() (styleguide.Documents, error)
}

// 단계별 temperature
const (
	extractionTemperature = 0.2
	generationTemperature = 0.3
	judgeTemperature      = 0.1
)

// 모델 응답을 out에 디코딩. 실패 시 ErrSchemaViolation
func decodeResponse(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return nil
}
