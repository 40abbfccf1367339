// @title AI-Enhanced Incident Communications API
// @version 0.1.0
// @description Generates customer-appropriate status page drafts from incident signals.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kube-rca/incident-comms/internal/client"
	"github.com/kube-rca/incident-comms/internal/config"
	"github.com/kube-rca/incident-comms/internal/handler"
	"github.com/kube-rca/incident-comms/internal/service"
	"github.com/kube-rca/incident-comms/internal/styleguide"
)

func main() {
	// .env 파일이 없으면 환경변수만 사용
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	cfg := config.Load()

	// LLM 클라이언트 생성 (provider별)
	llm, err := client.NewJSONGenerator(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	guide := styleguide.NewLoader(cfg.StyleGuide.Dir)

	// 단계별 서비스 생성
	extractor := service.NewExtractor(llm, cfg.LLM.ExtractModel)
	generator := service.NewGenerator(llm, cfg.LLM.GenerateModel, guide)
	judge := service.NewJudge(llm, cfg.LLM.JudgeModel, guide)

	var opts []service.PipelineOption
	slackClient := client.NewSlackClient(cfg.Slack)
	if slackClient.IsConfigured() {
		opts = append(opts, service.WithReviewNotifier(service.NewReviewNotifier(slackClient)))
		log.Printf("Slack review notifications enabled")
	}
	pipeline := service.NewPipeline(extractor, generator, judge, opts...)

	publisher := service.NewPublishService(cfg.Publish)
	if !publisher.IsConfigured() {
		log.Printf("PUBLISH_WEBHOOK_URL not set, publish-draft will reject requests")
	}

	draftHandler := handler.NewDraftHandler(pipeline, extractor, generator, judge, guide, publisher)

	// Gin의 기본 라우터 생성
	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins, false))

	// 건강 체크 및 문서 엔드포인트
	router.GET("/ping", handler.Ping)
	router.GET("/", handler.Root)
	router.GET("/health", handler.Health)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	api := router.Group("/api/v1")
	// API_JWT_SECRET이 설정된 경우에만 인증 적용
	if cfg.Auth.JWTSecret != "" {
		authService, err := service.NewAuthService(cfg.Auth)
		if err != nil {
			log.Fatalf("Failed to initialize auth: %v", err)
		}
		api.Use(handler.AuthMiddleware(authService))
	}
	api.POST("/generate-draft", draftHandler.GenerateDraft)
	api.POST("/extract-evidence", draftHandler.ExtractEvidence)
	api.POST("/generate-from-evidence", draftHandler.GenerateFromEvidence)
	api.POST("/evaluate-draft", draftHandler.EvaluateDraft)
	api.POST("/evaluate-with-llm-judge", draftHandler.EvaluateWithJudge)
	api.POST("/parse-incident", draftHandler.ParseIncident)
	api.GET("/status-examples", draftHandler.GetStatusExamples)
	api.POST("/publish-draft", draftHandler.PublishDraft)

	log.Printf("Starting server on :%s (provider=%s)", cfg.Server.Port, cfg.LLM.Provider)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
