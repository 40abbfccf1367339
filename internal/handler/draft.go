package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/incident-comms/internal/model"
	"github.com/kube-rca/incident-comms/internal/service"
)

// DraftHandler - 파이프라인 전체 및 단계별 엔드포인트
type DraftHandler struct {
	pipeline  *service.Pipeline
	extractor *service.Extractor
	generator *service.Generator
	judge     *service.Judge
	guide     service.StyleGuide
	publisher *service.PublishService
}

// DraftHandler 객체 생성
func NewDraftHandler(
	pipeline *service.Pipeline,
	extractor *service.Extractor,
	generator *service.Generator,
	judge *service.Judge,
	guide service.StyleGuide,
	publisher *service.PublishService,
) *DraftHandler {
	return &DraftHandler{
		pipeline:  pipeline,
		extractor: extractor,
		generator: generator,
		judge:     judge,
		guide:     guide,
		publisher: publisher,
	}
}

// GenerateDraft godoc
// @Summary Generate a status page draft
// @Description Runs extraction, generation, deterministic checks and the LLM judge over the supplied incident signals.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.IncidentSignalsDoc true "Phase plus any number of named data sources"
// @Success 200 {object} model.DraftResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/generate-draft [post]
func (h *DraftHandler) GenerateDraft(c *gin.Context) {
	var signals model.IncidentSignals
	if err := c.ShouldBindJSON(&signals); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.pipeline.Run(c.Request.Context(), signals)
	if err != nil {
		respondError(c, "Error generating draft", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExtractEvidence godoc
// @Summary Extract structured evidence
// @Tags stages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.IncidentSignalsDoc true "Phase plus any number of named data sources"
// @Success 200 {object} model.ExtractedEvidence
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/extract-evidence [post]
func (h *DraftHandler) ExtractEvidence(c *gin.Context) {
	var signals model.IncidentSignals
	if err := c.ShouldBindJSON(&signals); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	evidence, err := h.extractor.Extract(c.Request.Context(), signals)
	if err != nil {
		respondError(c, "Error extracting evidence", err)
		return
	}
	c.JSON(http.StatusOK, evidence)
}

// GenerateFromEvidence godoc
// @Summary Generate a draft from extracted evidence
// @Tags stages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ExtractedEvidence true "Evidence produced by extract-evidence"
// @Success 200 {object} model.GeneratedDraft
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/generate-from-evidence [post]
func (h *DraftHandler) GenerateFromEvidence(c *gin.Context) {
	var evidence model.ExtractedEvidence
	if err := c.ShouldBindJSON(&evidence); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	draft, err := h.generator.Generate(c.Request.Context(), evidence)
	if err != nil {
		respondError(c, "Error generating draft", err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// EvaluateDraft godoc
// @Summary Run the deterministic checks on a draft
// @Tags stages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.EvaluateRequest true "Draft and the evidence it was generated from"
// @Success 200 {object} model.EvaluationResult
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/evaluate-draft [post]
func (h *DraftHandler) EvaluateDraft(c *gin.Context) {
	req, ok := bindEvaluateRequest(c, "Error evaluating draft")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service.Evaluate(*req.Draft, *req.Evidence))
}

// EvaluateWithJudge godoc
// @Summary Score a draft with the LLM judge
// @Tags stages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.EvaluateRequest true "Draft and the evidence it was generated from"
// @Success 200 {object} model.LLMJudgeResult
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/evaluate-with-llm-judge [post]
func (h *DraftHandler) EvaluateWithJudge(c *gin.Context) {
	req, ok := bindEvaluateRequest(c, "Error in LLM-as-Judge evaluation")
	if !ok {
		return
	}

	result, err := h.judge.Judge(c.Request.Context(), *req.Draft, *req.Evidence)
	if err != nil {
		respondError(c, "Error in LLM-as-Judge evaluation", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ParseIncident godoc
// @Summary Summarize incident signals without an LLM (legacy)
// @Tags legacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.IncidentSignalsDoc true "Phase plus any number of named data sources"
// @Success 200 {object} model.ParsedIncidentResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/parse-incident [post]
func (h *DraftHandler) ParseIncident(c *gin.Context) {
	var signals model.IncidentSignals
	if err := c.ShouldBindJSON(&signals); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Error parsing incident data: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, service.ParseIncident(signals))
}

// GetStatusExamples godoc
// @Summary Get the style guide exemplars
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StatusExamplesResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/status-examples [get]
func (h *DraftHandler) GetStatusExamples(c *gin.Context) {
	docs, err := h.guide.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Error reading status examples: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.StatusExamplesResponse{
		Examples:         docs.Positive,
		NegativeExamples: docs.Negative,
	})
}

// PublishDraft godoc
// @Summary Publish an approved draft
// @Description Renders the configured webhook body template with the draft and sends it.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.GeneratedDraft true "Approved draft"
// @Success 200 {object} model.PublishResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/publish-draft [post]
func (h *DraftHandler) PublishDraft(c *gin.Context) {
	var draft model.GeneratedDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.publisher.Publish(c.Request.Context(), draft)
	if err != nil {
		respondError(c, "Error publishing draft", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// draft, evidence 모두 필요
func bindEvaluateRequest(c *gin.Context, prefix string) (*model.EvaluateRequest, bool) {
	var req model.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: fmt.Sprintf("%s: %v", prefix, err)})
		return nil, false
	}
	if req.Draft == nil || req.Evidence == nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: prefix + ": draft and evidence are required"})
		return nil, false
	}
	return &req, true
}

// 호출자 입력 오류는 400, 나머지는 500
func respondError(c *gin.Context, prefix string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrInvalidRequest) || errors.Is(err, service.ErrPublishNotConfigured) {
		status = http.StatusBadRequest
	}
	c.JSON(status, model.ErrorResponse{Error: fmt.Sprintf("%s: %v", prefix, err)})
}
