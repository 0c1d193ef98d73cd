package routes

import (
	"context"
	_ "inspection_billing/docs"
	"inspection_billing/internal/adapter/http/dto/request"
	"inspection_billing/internal/adapter/http/handlers"
	"inspection_billing/internal/adapter/http/middleware"
	"inspection_billing/internal/adapter/persistence/repository"
	"inspection_billing/internal/config"
	"inspection_billing/internal/infrastructure/database"
	"inspection_billing/internal/infrastructure/locker"
	"inspection_billing/internal/infrastructure/logger"
	"inspection_billing/internal/infrastructure/messaging"
	"inspection_billing/internal/infrastructure/payments"
	"inspection_billing/internal/usecase"
	"inspection_billing/internal/usecase/interfaces"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Pricing        *handlers.PricingHandler
	PaymentHistory *handlers.PaymentHistoryHandler
	ClientView     *handlers.ClientViewHandler
	Webhook        *handlers.WebhookHandler
	DiscountCode   *handlers.DiscountCodeHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	zl := logger.NewZapLogger(cfg.LogLevel, cfg.AppEnv)
	defer func() { _ = zl.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	request.RegisterJSONFieldNames()

	h, cleanup := buildHandlers(context.Background(), cfg, zl)
	defer cleanup()

	router := NewRouter(h, cfg.JWTSecret, zl)
	zl.Info("[routes] starting server", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := router.Run(":" + cfg.Port); err != nil {
		zl.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter mounts every route. Client view and webhook routes are public;
// the rest requires a bearer token carrying the company scope.
func NewRouter(h Handlers, jwtSecret string, zl *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, zl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClientViewRoutes(v1, h.ClientView)
	addWebhookRoutes(v1, h.Webhook)

	// Rotas autenticadas
	private := v1.Group("", middleware.JWTAuth(jwtSecret))
	addInspectionRoutes(private, h.Pricing, h.PaymentHistory)
	addDiscountCodeRoutes(private, h.DiscountCode)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, zl *zap.Logger) (Handlers, func()) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("Failed to connect to DynamoDB", zap.Error(err))
	}
	inspectionRepo := repository.NewInspectionDynamoRepository(ddb, cfg.InspectionsTable)
	discountRepo := repository.NewDiscountCodeDynamoRepository(ddb, cfg.DiscountCodesTable)

	var cleanups []func()

	var ledgerLocker interfaces.ILedgerLocker
	rdb, err := database.NewRedisClient(ctx, cfg, zl)
	if err != nil {
		zl.Warn("[routes] redis unavailable; ledger lock disabled", zap.Error(err))
	} else if rdb != nil {
		ledgerLocker = locker.NewRedisLedgerLocker(rdb, cfg.LedgerLockTTL, zl)
		cleanups = append(cleanups, func() { _ = rdb.Close() })
	}

	var dispatcher interfaces.IAutomationDispatcher = messaging.NewLogDispatcher(zl)
	conn, err := messaging.ConnectRabbitMQ(cfg.RabbitMQURL, zl)
	if err != nil {
		zl.Warn("[routes] rabbitmq unavailable; automation events will only be logged", zap.Error(err))
	} else if conn != nil {
		rabbit, err := messaging.NewRabbitMQDispatcher(conn, cfg.AutomationQueue, zl)
		if err != nil {
			zl.Warn("[routes] rabbitmq dispatcher setup failed", zap.Error(err))
		} else {
			dispatcher = rabbit
		}
		cleanups = append(cleanups, func() { _ = conn.Close() })
	}

	async := messaging.NewAsyncDispatcher(dispatcher, cfg.AutomationBuffer, cfg.AutomationPublishTimeout, zl)
	dispatcher = async
	// The queue is drained before the broker connection closes.
	cleanups = append([]func(){func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), cfg.AutomationPublishTimeout)
		defer cancel()
		if err := async.Stop(stopCtx); err != nil {
			zl.Warn("[routes] automation queue not drained", zap.Error(err))
		}
	}}, cleanups...)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, zl)
	if err != nil {
		zl.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	settlementUseCase := usecase.NewSettlementUseCase(inspectionRepo, discountRepo, zl)
	pricingUseCase := usecase.NewPricingUseCase(inspectionRepo, discountRepo, dispatcher, zl)
	paymentHistoryUseCase := usecase.NewPaymentHistoryUseCase(inspectionRepo, discountRepo, ledgerLocker, dispatcher, zl)
	confirmationUseCase := usecase.NewPaymentConfirmationUseCase(inspectionRepo, discountRepo, gateway, dispatcher, usecase.CheckoutOptions{
		MockMode:        cfg.PaymentGatewayMock,
		Sandbox:         cfg.MercadoPagoSandbox(),
		TestPayerEmail:  cfg.MercadoPagoTestPayer,
		TestPayerUserID: cfg.MercadoPagoTestPayerID,
	}, zl)
	discountCodeUseCase := usecase.NewDiscountCodeUseCase(discountRepo, zl)

	h := Handlers{
		Pricing:        handlers.NewPricingHandler(pricingUseCase, settlementUseCase, zl),
		PaymentHistory: handlers.NewPaymentHistoryHandler(paymentHistoryUseCase, zl),
		ClientView:     handlers.NewClientViewHandler(confirmationUseCase, cfg.PaymentGatewayMock, zl),
		Webhook:        handlers.NewWebhookHandler(confirmationUseCase, cfg.MercadoPagoWebhookSecret, zl),
		DiscountCode:   handlers.NewDiscountCodeHandler(discountCodeUseCase, zl),
	}
	return h, func() {
		for _, c := range cleanups {
			c()
		}
	}
}

func setMiddlewares(router *gin.Engine, zl *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zl.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
