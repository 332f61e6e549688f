package bootstrap

import (
	"context"
	"fmt"
	"log"

	"contentcraft-be/internal/config"
	"contentcraft-be/internal/controller"
	"contentcraft-be/internal/pkg/logger"
	"contentcraft-be/internal/pkg/mailer"
	"contentcraft-be/internal/repository/unitofwork"
	"contentcraft-be/internal/service"
	"contentcraft-be/pkg/llm/factory"
	pktNats "contentcraft-be/pkg/nats"
	"contentcraft-be/pkg/quota"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const contentEventsTopic = "CONTENT_EVENTS"

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	ContentController    controller.IContentController
	GenerationController controller.IGenerationController

	// Background Services (Exposed for main.go to run)
	AuditConsumerService service.IAuditConsumerService
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
		fmt.Sprintf("%s <%s>", cfg.SMTP.SenderName, cfg.SMTP.Email),
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (generation quota)
	var limiter *quota.Limiter
	if cfg.Ai.DailyGenerateLimit > 0 {
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
		limiter = quota.NewLimiter(rdb, cfg.Ai.DailyGenerateLimit)
		log.Printf("[INFO] Generation quota enabled: %d calls/day", cfg.Ai.DailyGenerateLimit)
	}

	// 3. Services
	publisherService := service.NewPublisherService(contentEventsTopic, pubSub)
	auditConsumerService := service.NewAuditConsumerService(
		pubSub,
		contentEventsTopic,
		uowFactory,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory)
	contentService := service.NewContentService(uowFactory, publisherService, natsPub, sysLogger)
	generationService := service.NewGenerationService(llmProvider, limiter, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		UserController:       controller.NewUserController(userService),
		ContentController:    controller.NewContentController(contentService),
		GenerationController: controller.NewGenerationController(generationService),
		AuditConsumerService: auditConsumerService,
	}
}
