package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/kube-rca/incident-comms/internal/client"
	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/prompt"
	"github.com/kube-rca/incident-comms/internal/sanitize"
	"github.com/kube-rca/incident-comms/internal/scoring"
)

// Judge - 5개 품질 차원 rubric 기반 LLM 평가
type Judge struct {
	llm   LLMClient
	model string
	guide StyleGuide
}

func NewJudge(llm LLMClient, modelName string, guide StyleGuide) *Judge {
	return &Judge{llm: llm, model: modelName, guide: guide}
}

// Judge - 모델 점수를 받은 뒤 overall score, confidence, 차원별 status를 재계산
func (j *Judge) Judge(ctx context.Context, draft model.GeneratedDraft, evidence model.ExtractedEvidence) (*model.LLMJudgeResult, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: draft: %v", ErrInvalidRequest, err)
	}
	if strings.TrimSpace(evidence.Phase) == "" {
		return nil, fmt.Errorf("%w: evidence: phase is required", ErrInvalidRequest)
	}

	docs, err := j.guide.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load style guide: %w", err)
	}
	text, err := prompt.BuildJudgePrompt(draft, evidence, docs)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	log.Printf("[Judge] Requesting evaluation (phase=%s, prompt=%d bytes)", evidence.Phase, len(text))
	raw, err := j.llm.GenerateJSON(ctx, client.GenerateRequest{
		Model:             j.model,
		SystemInstruction: prompt.JudgeSystemInstruction,
		Prompt:            text,
		Schema:            prompt.JudgeSchema(),
		Temperature:       judgeTemperature,
	})
	if err != nil {
		return nil, err
	}

	var result model.LLMJudgeResult
	if err := decodeResponse(raw, &result); err != nil {
		return nil, err
	}
	if err := finalizeJudgeResult(&result); err != nil {
		return nil, err
	}

	log.Printf("[Judge] Overall score %.2f (%s) in %s", result.OverallScore, result.Confidence, time.Since(started).Round(time.Millisecond))
	return &result, nil
}

// finalizeJudgeResult - 검증 후 markup 제거 및 점수 재계산 (모델이 반환한 overall/confidence는 버림)
func finalizeJudgeResult(result *model.LLMJudgeResult) error {
	if len(result.Dimensions) == 0 {
		return fmt.Errorf("%w: judge returned no dimensions", ErrSchemaViolation)
	}
	for i := range result.Dimensions {
		d := &result.Dimensions[i]
		d.Dimension = strings.TrimSpace(d.Dimension)
		if d.Dimension == "" {
			return fmt.Errorf("%w: dimensions[%d] has no name", ErrSchemaViolation, i)
		}
		if math.IsNaN(d.Score) || d.Score < 0 || d.Score > 1 {
			return fmt.Errorf("%w: dimension %q score %v outside [0,1]", ErrSchemaViolation, d.Dimension, d.Score)
		}
		d.Rationale = sanitize.StripMarkup(d.Rationale)
		d.ImprovementSuggestion = sanitize.StripMarkupPtr(d.ImprovementSuggestion)
		d.Status = scoring.StatusFor(d.Score)
	}
	result.OverallRationale = sanitize.StripMarkup(result.OverallRationale)
	result.OverallScore = scoring.WeightedScore(result.Dimensions)
	result.Confidence = scoring.LevelFor(result.OverallScore)
	return nil
}
