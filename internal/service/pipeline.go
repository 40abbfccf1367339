package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/scoring"
	"golang.org/x/sync/errgroup"
)

// Pipeline - Extract -> Generate -> (Evaluate, Judge) -> 병합
//
// 실행 간 공유하는 가변 상태가 없으며, 어느 단계든 실패하면 전체 실행을 중단한다.
type Pipeline struct {
	extractor *Extractor
	generator *Generator
	judge     *Judge
	reviewer  *ReviewNotifier
	newRunID  func() string
}

// PipelineOption - Pipeline 선택 구성
type PipelineOption func(*Pipeline)

// WithReviewNotifier - 완료된 응답을 검토 채널로 전송
func WithReviewNotifier(r *ReviewNotifier) PipelineOption {
	return func(p *Pipeline) { p.reviewer = r }
}

func NewPipeline(extractor *Extractor, generator *Generator, judge *Judge, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		extractor: extractor,
		generator: generator,
		judge:     judge,
		newRunID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run - 전체 파이프라인 실행. 실패 시 *StageError 반환
func (p *Pipeline) Run(ctx context.Context, signals model.IncidentSignals) (*model.DraftResponse, error) {
	runID := p.newRunID()
	started := time.Now()
	log.Printf("[Pipeline] run=%s started (phase=%s, sources=%d)", runID, signals.Phase, len(signals.Sources))

	// 1. Evidence 추출
	evidence, err := p.extractor.Extract(ctx, signals)
	if err != nil {
		log.Printf("[Pipeline] run=%s extraction failed: %v", runID, err)
		return nil, stageError(StageExtraction, err)
	}

	// 2. 초안 생성
	draft, err := p.generator.Generate(ctx, *evidence)
	if err != nil {
		log.Printf("[Pipeline] run=%s generation failed: %v", runID, err)
		return nil, stageError(StageGeneration, err)
	}

	// 3. 규칙 기반 평가와 judge 평가는 서로 독립이므로 동시에 실행
	var (
		evaluation model.EvaluationResult
		judged     *model.LLMJudgeResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return stageError(StageEvaluation, err)
		}
		evaluation = Evaluate(*draft, *evidence)
		return nil
	})
	g.Go(func() error {
		result, err := p.judge.Judge(gctx, *draft, *evidence)
		if err != nil {
			return stageError(StageJudge, err)
		}
		judged = result
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("[Pipeline] run=%s evaluation failed: %v", runID, err)
		return nil, err
	}

	// 4. 병합
	evaluation.LLMJudgeResult = judged
	resp := buildDraftResponse(runID, signals, *evidence, *draft, evaluation)

	log.Printf("[Pipeline] run=%s completed in %s (checks=%s, confidence=%.2f %s)",
		runID, time.Since(started).Round(time.Millisecond), evaluation.OverallStatus, resp.ConfidenceScore, resp.ConfidenceLevel)

	if p.reviewer != nil {
		go p.reviewer.Notify(context.WithoutCancel(ctx), *resp)
	}
	return resp, nil
}

func buildDraftResponse(runID string, signals model.IncidentSignals, evidence model.ExtractedEvidence, draft model.GeneratedDraft, evaluation model.EvaluationResult) *model.DraftResponse {
	qualityScores := LegacyQualityScores(evaluation.DeterministicChecks)
	score, level := ConfidenceFor(evaluation, qualityScores)

	return &model.DraftResponse{
		RunID:      runID,
		Title:      draft.Title,
		Status:     draft.Status,
		Message:    draft.Message,
		NextUpdate: draft.NextUpdate,

		ConfidenceScore:  score,
		ConfidenceLevel:  level,
		EvidenceSummary:  fmt.Sprintf("Based on %d symptoms, %d internal terms identified", len(evidence.CustomerSymptoms), len(evidence.InternalTermsToAvoid)),
		QualityScores:    qualityScores,
		Warnings:         evaluation.Warnings,
		EvaluationResult: &evaluation,

		EvidenceMappings:         draft.EvidenceMappings,
		InternalTermsAvoided:     draft.InternalTermsAvoided,
		ExtractedEvidenceSummary: SummarizeEvidence(evidence),
		DataSourcesUsed:          signals.Labels(),

		UngroundedMappings: UngroundedMappings(draft.EvidenceMappings, signals.Labels()),
	}
}

// LegacyQualityScores - 하위 호환용 체크별 점수 (pass=1.0, warning=0.7, fail=0.3)
func LegacyQualityScores(checks []model.DeterministicCheck) []model.QualityScore {
	scores := make([]model.QualityScore, 0, len(checks))
	for _, c := range checks {
		scores = append(scores, model.QualityScore{
			Dimension: c.CheckName,
			Score:     scoring.LegacyScore(c.Status),
			Rationale: c.Details,
		})
	}
	return scores
}

// ConfidenceFor - judge 결과가 있으면 그대로, 없으면 legacy 점수 평균을 같은 임계값으로 변환
//
// 메인 파이프라인은 항상 judge를 실행하므로 fallback 경로는 judge 결과가 빠진 경우에만 사용된다.
func ConfidenceFor(evaluation model.EvaluationResult, legacy []model.QualityScore) (float64, string) {
	if j := evaluation.LLMJudgeResult; j != nil {
		return j.OverallScore, j.Confidence
	}
	avg := 0.5
	if len(legacy) > 0 {
		var sum float64
		for _, s := range legacy {
			sum += s.Score
		}
		avg = sum / float64(len(legacy))
	}
	return avg, scoring.LevelFor(avg)
}

// SummarizeEvidence - 응답 투명성용 evidence 요약
func SummarizeEvidence(evidence model.ExtractedEvidence) model.EvidenceSummary {
	symptoms := evidence.CustomerSymptoms
	if symptoms == nil {
		symptoms = []model.CustomerSymptom{}
	}
	return model.EvidenceSummary{
		Phase:                     evidence.Phase,
		IncidentMetadata:          evidence.IncidentMetadata,
		CustomerSymptomsCount:     len(symptoms),
		CustomerSymptoms:          symptoms,
		RootCauseIdentified:       evidence.InvestigationStatus.RootCauseIdentified,
		Diagnosis:                 evidence.InvestigationStatus.DiagnosisSummary,
		MitigationAction:          evidence.InvestigationStatus.MitigationAction,
		InternalTermsToAvoidCount: len(evidence.InternalTermsToAvoid),
	}
}

// UngroundedMappings - 어떤 입력 소스 label과도 매칭되지 않는 evidence_field를 가진 매핑
// (대소문자 무시, 양방향 부분 문자열). 정보 제공용이며 오류로 취급하지 않는다.
func UngroundedMappings(mappings []model.EvidenceMapping, labels []string) []model.EvidenceMapping {
	out := []model.EvidenceMapping{}
	for _, m := range mappings {
		if !groundedIn(m.EvidenceField, labels) {
			out = append(out, m)
		}
	}
	return out
}

func groundedIn(field string, labels []string) bool {
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return false
	}
	for _, label := range labels {
		label = strings.ToLower(label)
		if label == "" {
			continue
		}
		if strings.Contains(field, label) || strings.Contains(label, field) {
			return true
		}
	}
	return false
}
