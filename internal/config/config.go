package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Auth       AuthConfig
	LLM        LLMConfig
	StyleGuide StyleGuideConfig
	Slack      SlackConfig
	Publish    PublishConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// AuthConfig - JWTSecret이 비어 있으면 API 인증 비활성화
type AuthConfig struct {
	JWTSecret string
}

type LLMConfig struct {
	Provider      string
	APIKey        string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	ExtractModel  string
	GenerateModel string
	JudgeModel    string
	Timeout       time.Duration
}

type StyleGuideConfig struct {
	Dir string
}

type SlackConfig struct {
	BotToken  string
	ChannelID string
}

type PublishConfig struct {
	URL     string
	Method  string
	Body    string
	Headers []Header
}

// Header - PUBLISH_WEBHOOK_HEADERS 항목 ("Key: Value" 를 세미콜론으로 구분)
type Header struct {
	Key   string
	Value string
}

// LLM provider
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const defaultModel = "gemini-2.5-flash"

// DefaultPublishBody - PUBLISH_WEBHOOK_BODY 미설정 시 사용하는 body 템플릿
const DefaultPublishBody = `{"title":"{{draft.title}}","status":"{{draft.status}}","message":"{{draft.message}}","next_update":"{{draft.next_update}}","published_at":"{{draft.published_at}}"}`

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8000"),
			AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("API_JWT_SECRET"),
		},
		LLM: LLMConfig{
			Provider:      strings.ToLower(getenv("LLM_PROVIDER", ProviderGemini)),
			APIKey:        os.Getenv("AI_API_KEY"),
			OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL: getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			ExtractModel:  getenv("LLM_EXTRACT_MODEL", defaultModel),
			GenerateModel: getenv("LLM_GENERATE_MODEL", defaultModel),
			JudgeModel:    getenv("LLM_JUDGE_MODEL", defaultModel),
			Timeout:       getduration("LLM_TIMEOUT", 180*time.Second),
		},
		StyleGuide: StyleGuideConfig{
			Dir: os.Getenv("STYLE_GUIDE_DIR"),
		},
		Slack: SlackConfig{
			BotToken:  os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
		},
		Publish: PublishConfig{
			URL:     os.Getenv("PUBLISH_WEBHOOK_URL"),
			Method:  strings.ToUpper(getenv("PUBLISH_WEBHOOK_METHOD", "POST")),
			Body:    getenv("PUBLISH_WEBHOOK_BODY", DefaultPublishBody),
			Headers: parseHeaders(os.Getenv("PUBLISH_WEBHOOK_HEADERS")),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// 파싱 실패 시 fallback 사용
func getduration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseHeaders(raw string) []Header {
	var headers []Header
	for _, entry := range strings.Split(raw, ";") {
		key, value, ok := strings.Cut(entry, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		headers = append(headers, Header{Key: key, Value: strings.TrimSpace(value)})
	}
	return headers
}
