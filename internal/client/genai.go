package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/kube-rca/incident-comms/internal/config"
	"google.golang.org/genai"
)

// ErrEmptyResponse - 모델이 빈 응답을 반환
var ErrEmptyResponse = errors.New("empty model response")

// GenerateRequest - JSON 모드 생성 요청
type GenerateRequest struct {
	Model             string
	SystemInstruction string
	Prompt            string
	Schema            *genai.Schema
	Temperature       float32
}

// GeminiClient - genai SDK 기반 structured output 클라이언트
type GeminiClient struct {
	client *genai.Client
}

// GeminiClient 객체 생성
func NewGeminiClient(ctx context.Context, cfg config.LLMConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client}, nil
}

// GenerateJSON - 응답 스키마를 강제하여 JSON 생성
func (c *GeminiClient) GenerateJSON(ctx context.Context, req GenerateRequest) (json.RawMessage, error) {
	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
		Temperature:      genai.Ptr(req.Temperature),
	}
	if req.SystemInstruction != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, ErrEmptyResponse
	}
	return json.RawMessage(trimCodeFence(text)), nil
}

// 일부 모델이 JSON을 ```json ... ``` 로 감싸서 반환하는 경우 처리
func trimCodeFence(text string) []byte {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return []byte(text)
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return bytes.TrimSpace([]byte(text))
}

// JSONGenerator - GeminiClient, OpenAIClient 공통 인터페이스
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, req GenerateRequest) (json.RawMessage, error)
}

// LLM_PROVIDER 설정에 따라 클라이언트 선택
func NewJSONGenerator(ctx context.Context, cfg config.LLMConfig) (JSONGenerator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		c, err := NewOpenAIClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderGemini, "":
		c, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.Provider)
	}
}
