package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/kube-rca/incident-comms/internal/config"
	"github.com/kube-rca/incident-comms/internal/model"
	tmpl "github.com/kube-rca/incident-comms/internal/template"
)

// PublishService - 승인된 초안을 설정된 webhook으로 전송
type PublishService struct {
	cfg        config.PublishConfig
	httpClient *http.Client
	now        func() time.Time
}

// NewPublishService 생성자
func NewPublishService(cfg config.PublishConfig) *PublishService {
	return &PublishService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

func (s *PublishService) IsConfigured() bool {
	return s.cfg.URL != ""
}

// Publish - body 템플릿 렌더링 후 HTTP 전송. 2xx 이외 응답은 오류
func (s *PublishService) Publish(ctx context.Context, draft model.GeneratedDraft) (*model.PublishResponse, error) {
	if !s.IsConfigured() {
		return nil, ErrPublishNotConfigured
	}
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	data := tmpl.DraftDataFromModel(draft, s.now())
	rendered := tmpl.RenderBody(s.cfg.Body, &data)

	status, err := s.sendHTTP(ctx, rendered)
	target := targetHost(s.cfg.URL)
	if err != nil {
		log.Printf("[Publish] Failed to deliver to %s: %v", target, err)
		return nil, err
	}
	log.Printf("[Publish] Delivered to %s (status=%d)", target, status)
	return &model.PublishResponse{Status: "published", Target: target, StatusCode: status}, nil
}

// sendHTTP - webhook으로 HTTP 요청 전송
func (s *PublishService) sendHTTP(ctx context.Context, body string) (int, error) {
	method := s.cfg.Method
	if method == "" {
		method = http.MethodPost
	}
	req, err := http.NewRequestWithContext(ctx, method, s.cfg.URL, bytes.NewBufferString(body))
	if err != nil {
		return 0, err
	}

	// Content-Type 기본값 설정 (없으면 application/json)
	hasContentType := false
	for _, h := range s.cfg.Headers {
		req.Header.Set(h.Key, h.Value)
		if http.CanonicalHeaderKey(h.Key) == "Content-Type" {
			hasContentType = true
		}
	}
	if !hasContentType {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resp.StatusCode, fmt.Errorf("publish webhook returned status %d: %s", resp.StatusCode, string(snippet))
	}
	return resp.StatusCode, nil
}

// URL path/query에 토큰이 포함될 수 있으므로 host만 노출
func targetHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "webhook"
	}
	return u.Host
}
