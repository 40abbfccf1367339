package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kube-rca/incident-comms/internal/client"
	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/prompt"
)

// Extractor - 1단계: incident 신호 -> 소스 인용이 포함된 evidence
type Extractor struct {
	llm   LLMClient
	model string
}

func NewExtractor(llm LLMClient, modelName string) *Extractor {
	return &Extractor{llm: llm, model: modelName}
}

// Extract - 모든 소스를 하나의 컨텍스트로 직렬화하여 evidence 추출
//
// phase가 없거나 소스가 하나도 없으면 외부 호출 없이 ErrInvalidRequest.
// 알 수 없는 phase는 거부하지 않고 단계별 지침 없이 진행한다.
func (e *Extractor) Extract(ctx context.Context, signals model.IncidentSignals) (*model.ExtractedEvidence, error) {
	phase := strings.TrimSpace(signals.Phase)
	if phase == "" {
		return nil, fmt.Errorf("%w: phase is required", ErrInvalidRequest)
	}
	if len(signals.Sources) == 0 {
		return nil, fmt.Errorf("%w: at least one data source is required", ErrInvalidRequest)
	}

	formatted, labels, err := prompt.FormatSources(signals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	text, err := prompt.BuildExtractionPrompt(phase, formatted, labels)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	log.Printf("[Extractor] Requesting extraction (phase=%s, sources=%d, prompt=%d bytes)", phase, len(labels), len(text))
	raw, err := e.llm.GenerateJSON(ctx, client.GenerateRequest{
		Model:             e.model,
		SystemInstruction: prompt.ExtractionSystemInstruction,
		Prompt:            text,
		Schema:            prompt.EvidenceSchema(),
		Temperature:       extractionTemperature,
	})
	if err != nil {
		return nil, err
	}

	var evidence model.ExtractedEvidence
	if err := decodeResponse(raw, &evidence); err != nil {
		return nil, err
	}
	if strings.TrimSpace(evidence.Phase) == "" {
		evidence.Phase = phase
	}
	normalizeEvidence(&evidence)
	if err := evidence.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if err := groundCitations(&evidence, labels); err != nil {
		return nil, err
	}

	log.Printf("[Extractor] Extracted %d symptoms, %d internal terms in %s",
		len(evidence.CustomerSymptoms), len(evidence.InternalTermsToAvoid), time.Since(started).Round(time.Millisecond))
	return &evidence, nil
}

// 입력에 없는 소스 인용 제거 (필드 경로, 존재하지 않는 시스템 이름 등)
// 근거 소스가 하나도 남지 않은 symptom이 있으면 ErrSchemaViolation
func groundCitations(e *model.ExtractedEvidence, labels []string) error {
	dropped := 0
	for i := range e.CustomerSymptoms {
		s := &e.CustomerSymptoms[i]
		kept := make([]string, 0, len(s.EvidenceSources))
		for _, src := range s.EvidenceSources {
			if groundedIn(src, labels) {
				kept = append(kept, src)
				continue
			}
			dropped++
		}
		if len(kept) == 0 {
			return fmt.Errorf("%w: customer_symptoms[%d] cites no observed source (got %s)",
				ErrSchemaViolation, i, strings.Join(s.EvidenceSources, ", "))
		}
		s.EvidenceSources = kept
	}
	for i := range e.TimelineEvents {
		ev := &e.TimelineEvents[i]
		if ev.Source != "" && !groundedIn(ev.Source, labels) {
			ev.Source = ""
			dropped++
		}
	}
	if dropped > 0 {
		log.Printf("[Extractor] Dropped %d citations not matching observed sources", dropped)
	}
	return nil
}

// nil 목록을 빈 목록으로 (응답 JSON에서 null 대신 [])
func normalizeEvidence(e *model.ExtractedEvidence) {
	if e.CustomerSymptoms == nil {
		e.CustomerSymptoms = []model.CustomerSymptom{}
	}
	if e.InternalTermsToAvoid == nil {
		e.InternalTermsToAvoid = []string{}
	}
	if e.TimelineEvents == nil {
		e.TimelineEvents = []model.TimelineEvent{}
	}
}
