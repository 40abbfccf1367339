package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest - 외부 호출 전에 거부된 호출자 입력
	ErrInvalidRequest = errors.New("invalid request")
	// ErrSchemaViolation - 모델 출력이 기대 레코드 형식과 불일치
	ErrSchemaViolation = errors.New("schema violation")
	// ErrPublishNotConfigured - PUBLISH_WEBHOOK_URL 미설정
	ErrPublishNotConfigured = errors.New("publish webhook not configured")
)

// 파이프라인 단계 이름
const (
	StageExtraction = "extraction"
	StageGeneration = "generation"
	StageEvaluation = "evaluation"
	StageJudge      = "judge"
)

// StageError - 실패한 단계와 원인
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
