package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kube-rca/incident-comms/internal/client"
	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/prompt"
	"github.com/kube-rca/incident-comms/internal/sanitize"
)

// Generator - 2단계: evidence -> 고객용 초안
type Generator struct {
	llm   LLMClient
	model string
	guide StyleGuide
}

func NewGenerator(llm LLMClient, modelName string, guide StyleGuide) *Generator {
	return &Generator{llm: llm, model: modelName, guide: guide}
}

// Generate - 단계별 구조 + 스타일 가이드 + 근거 매핑 규칙으로 초안 생성
// 외부 호출 실패 시 대체 문구를 만들지 않는다.
func (g *Generator) Generate(ctx context.Context, evidence model.ExtractedEvidence) (*model.GeneratedDraft, error) {
	if err := evidence.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	docs, err := g.guide.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load style guide: %w", err)
	}
	text, err := prompt.BuildGenerationPrompt(evidence, docs)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	log.Printf("[Generator] Requesting draft (phase=%s, prompt=%d bytes)", evidence.Phase, len(text))
	raw, err := g.llm.GenerateJSON(ctx, client.GenerateRequest{
		Model:             g.model,
		SystemInstruction: prompt.GenerationSystemInstruction,
		Prompt:            text,
		Schema:            prompt.DraftSchema(),
		Temperature:       generationTemperature,
	})
	if err != nil {
		return nil, err
	}

	var draft model.GeneratedDraft
	if err := decodeResponse(raw, &draft); err != nil {
		return nil, err
	}
	sanitizeDraft(&draft)
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	log.Printf("[Generator] Draft generated with %d evidence mappings in %s",
		len(draft.EvidenceMappings), time.Since(started).Round(time.Millisecond))
	return &draft, nil
}

// 텍스트 필드의 markup 제거 + nil 목록 정리
func sanitizeDraft(d *model.GeneratedDraft) {
	d.Title = sanitize.StripMarkup(d.Title)
	d.Status = sanitize.StripMarkup(d.Status)
	d.Message = sanitize.StripMarkup(d.Message)
	d.NextUpdate = sanitize.StripMarkup(d.NextUpdate)
	d.ConfidenceNotes = sanitize.StripMarkupPtr(d.ConfidenceNotes)
	for i := range d.EvidenceMappings {
		m := &d.EvidenceMappings[i]
		m.GeneratedText = sanitize.StripMarkup(m.GeneratedText)
		m.CustomerFacingTerm = sanitize.StripMarkupPtr(m.CustomerFacingTerm)
	}
	if d.EvidenceMappings == nil {
		d.EvidenceMappings = []model.EvidenceMapping{}
	}
	if d.InternalTermsAvoided == nil {
		d.InternalTermsAvoided = []string{}
	}
}
