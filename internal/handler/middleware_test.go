package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/incident-comms/internal/config"
	"github.com/kube-rca/incident-comms/internal/service"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth, err := service.NewAuthService(config.AuthConfig{JWTSecret: "test-secret"})
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	token, err := auth.IssueToken("oncall", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	r := gin.New()
	r.Use(AuthMiddleware(auth))
	r.GET("/api/v1/status-examples", func(c *gin.Context) {
		c.String(http.StatusOK, GetAuthSubject(c))
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-token", want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/status-examples", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.want == http.StatusOK && w.Body.String() != "oncall" {
				t.Fatalf("expected subject oncall, got %q", w.Body.String())
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "https://status.example", want: "*"},
		{name: "listed", allowed: []string{"https://a.example"}, origin: "https://a.example", want: "https://a.example"},
		{name: "not listed", allowed: []string{"https://a.example"}, origin: "https://b.example", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSMiddleware(tt.allowed, false))
			r.GET("/health", Health)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			r.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Fatalf("allow-origin = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("preflight", func(t *testing.T) {
		r := gin.New()
		r.Use(CORSMiddleware([]string{"*"}, false))
		r.POST("/api/v1/generate-draft", func(c *gin.Context) { c.Status(http.StatusTeapot) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/generate-draft", nil)
		req.Header.Set("Origin", "https://status.example")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
