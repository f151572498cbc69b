package bootstrap

import (
	"context"
	"log"
	"time"

	"hr-support-be/internal/config"
	"hr-support-be/internal/controller"
	"hr-support-be/internal/pkg/logger"
	"hr-support-be/internal/pkg/mailer"
	"hr-support-be/internal/repository/implementation"
	"hr-support-be/internal/repository/memory"
	"hr-support-be/internal/repository/unitofwork"
	"hr-support-be/internal/service"
	"hr-support-be/pkg/embedding"
	"hr-support-be/pkg/llm/factory"
	pktNats "hr-support-be/pkg/nats"
	"hr-support-be/pkg/triage"
	"hr-support-be/pkg/webhook"
	"hr-support-be/pkg/workflow"
	"hr-support-be/pkg/workflow/responder"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SupportController  controller.ISupportController
	WebhookController  controller.IWebhookController
	FeedbackController controller.IFeedbackController

	// Background Services (Exposed for main.go to run)
	DispatcherService service.IDispatcherService

	// Shared infrastructure
	Redis  *redis.Client
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	historyStore := memory.NewHistoryStore()

	deliverer := webhook.NewDeliverer(
		time.Duration(cfg.Webhook.TimeoutSeconds)*time.Second,
		cfg.Webhook.MaxAttempts,
		time.Duration(cfg.Webhook.BackoffSeconds)*time.Second,
		cfg.Webhook.UserAgent,
	)

	// 5. Triage Pipeline
	knowledgeService := service.NewKnowledgeService(uowFactory, embeddingProvider, sysLogger)
	engine := workflow.NewEngine(
		triage.NewClassifier(llmProvider),
		triage.NewSentimentAnalyzer(llmProvider),
		knowledgeService,
		responder.NewDefaultRouter(llmProvider),
		log.Default(),
	)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub, natsPub, sysLogger)

	supportService := service.NewSupportService(
		uowFactory,
		engine,
		historyStore,
		rdb,
		publisherService,
		emailService,
		cfg.App.EscalationEmail,
		sysLogger,
	)

	webhookService := service.NewWebhookService(uowFactory, deliverer, sysLogger)
	feedbackService := service.NewFeedbackService(uowFactory, publisherService, sysLogger)

	// Dispatch logs go to their own file so delivery noise stays out of the
	// main application log.
	dispatchLogger := logger.NewIsolatedLogger("logs/webhook_dispatch.log")
	dispatcherService := service.NewDispatcherService(
		pubSub,
		cfg.App.EventTopic,
		implementation.NewWebhookRepository(db),
		implementation.NewWebhookDeliveryRepository(db),
		deliverer,
		dispatchLogger,
	)

	// 7. Controllers
	return &Container{
		SupportController:  controller.NewSupportController(supportService),
		WebhookController:  controller.NewWebhookController(webhookService),
		FeedbackController: controller.NewFeedbackController(feedbackService),

		DispatcherService: dispatcherService,

		Redis:  rdb,
		Logger: sysLogger,
	}
}
