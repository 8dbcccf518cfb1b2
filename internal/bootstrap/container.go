package bootstrap

import (
	"log"

	"warehouse-chat-be/internal/config"
	"warehouse-chat-be/internal/controller"
	"warehouse-chat-be/internal/pkg/logger"
	"warehouse-chat-be/internal/repository/implementation"
	"warehouse-chat-be/internal/service"
	"warehouse-chat-be/pkg/chat/rag"
	"warehouse-chat-be/pkg/chat/response"
	"warehouse-chat-be/pkg/chat/sqlgen"
	"warehouse-chat-be/pkg/chat/structured"
	"warehouse-chat-be/pkg/embedding"
	"warehouse-chat-be/pkg/llm/factory"
	"warehouse-chat-be/pkg/schemacache"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	IngestService   service.IIngestService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Repositories
	orderRepo := implementation.NewOrderRepository(db)
	reportRepo := implementation.NewReportRepository(db)
	docRepo := implementation.NewDocumentEmbeddingRepository(db)
	queryRunner := implementation.NewQueryRunner(db)
	schemaRepo := schemacache.New(implementation.NewSchemaRepository(db))

	// 4. AI Providers
	embeddingProvider := embedding.NewOpenAIProvider(
		cfg.Ai.OpenAIBaseURL,
		cfg.Keys.OpenAI,
		cfg.Ai.EmbeddingModel,
	)
	log.Printf("[INFO] Using Embedding Model: %s", cfg.Ai.EmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OpenAIBaseURL,
		cfg.Keys.OpenAI,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Pipeline Components
	responseGenerator := response.NewGenerator(llmProvider, sysLogger)
	structuredExecutor := structured.NewExecutor(orderRepo, reportRepo, schemaRepo, sysLogger)
	sqlSynthesizer := sqlgen.NewSynthesizer(
		llmProvider,
		responseGenerator,
		schemaRepo,
		queryRunner,
		cfg.Ai.SQLRowCap,
		cfg.Ai.SQLByteCap,
		sysLogger,
	)
	retriever := rag.NewRetriever(embeddingProvider, docRepo, cfg.Ai.RetrievalTopK, sysLogger)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.IngestTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.IngestTopic,
		docRepo,
		embeddingProvider,
	)
	ingestService := service.NewIngestService(queryRunner, publisherService, sysLogger)

	chatService := service.NewChatService(
		structuredExecutor,
		sqlSynthesizer,
		retriever,
		responseGenerator,
		sysLogger,
	)

	return &Container{
		ChatController: controller.NewChatController(chatService, ingestService),

		ConsumerService: consumerService,
		IngestService:   ingestService,
	}
}
