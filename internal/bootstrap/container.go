package bootstrap

import (
	"log"

	"financegpt-be/internal/config"
	"financegpt-be/internal/controller"
	"financegpt-be/internal/pkg/logger"
	"financegpt-be/internal/pkg/serverutils"
	"financegpt-be/internal/repository/unitofwork"
	"financegpt-be/internal/service"
	"financegpt-be/pkg/agents"
	"financegpt-be/pkg/embedding"
	llmfactory "financegpt-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const queryCompletedTopic = "QUERY_COMPLETED"

// Container wires every dependency explicitly. Nothing in the request
// path reaches for a global.
type Container struct {
	Logger logger.ILogger

	AuthService     service.IAuthService
	OfferService    service.IOfferService
	TraceService    service.ITraceService
	QueryService    service.IQueryService
	ConsumerService service.IConsumerService

	AuthController   controller.IAuthController
	OfferController  controller.IOfferController
	TraceController  controller.ITraceController
	StreamController controller.IStreamController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	uowFactory := unitofwork.NewRepositoryFactory(db)

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	publisherService := service.NewPublisherService(queryCompletedTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, queryCompletedTopic, uowFactory, sysLogger)

	llmProvider, err := llmfactory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Panicf("Unable to initialize LLM provider: %v", err)
	}
	embeddingProvider := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)

	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, cfg.Auth.TokenTTLHours, cfg.Auth.SessionTTLMins)
	offerService := service.NewOfferService(uowFactory)
	traceService := service.NewTraceService(uowFactory)

	classifier := agents.NewClassifier(llmProvider)
	sqlAgent := agents.NewSQLAgent(llmProvider, service.NewProductSelector(uowFactory))
	documentAgent := agents.NewDocumentAgent(embeddingProvider, service.NewBrochureSearcher(uowFactory), cfg.Ai.RetrievalLimit)
	offersAgent := agents.NewOffersAgent(offerService)
	dispatcher := agents.NewDispatcher(sqlAgent, documentAgent, offersAgent)
	streamer := agents.NewStreamer(llmProvider)
	recommender := agents.NewRecommender(llmProvider)

	queryService := service.NewQueryService(
		authService,
		classifier,
		dispatcher,
		streamer,
		recommender,
		uowFactory,
		publisherService,
		sysLogger,
	)

	return &Container{
		Logger: sysLogger,

		AuthService:     authService,
		OfferService:    offerService,
		TraceService:    traceService,
		QueryService:    queryService,
		ConsumerService: consumerService,

		AuthController:   controller.NewAuthController(authService, serverutils.JwtMiddleware),
		OfferController:  controller.NewOfferController(offerService, serverutils.JwtMiddleware),
		TraceController:  controller.NewTraceController(traceService, serverutils.JwtMiddleware),
		StreamController: controller.NewStreamController(queryService, sysLogger, cfg.Ai.StreamIdleSeconds),
	}
}
