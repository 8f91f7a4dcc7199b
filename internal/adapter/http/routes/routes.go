package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "theater_billing/docs"
	"theater_billing/internal/adapter/http/handlers"
	"theater_billing/internal/adapter/persistence/catalog"
	"theater_billing/internal/adapter/persistence/repository"
	"theater_billing/internal/config"
	"theater_billing/internal/domain/pricing"
	"theater_billing/internal/domain/statement"
	"theater_billing/internal/infrastructure/database"
	"theater_billing/internal/infrastructure/payments"
	"theater_billing/internal/logger"
	"theater_billing/internal/usecase"
	"theater_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the collaborators the HTTP API is built from.
type Dependencies struct {
	Statements    interfaces.IStatementRepository
	Payments      interfaces.IBillingPaymentRepository
	Catalog       interfaces.IPlayCatalog
	Gateway       interfaces.IPaymentGateway
	Pricing       pricing.Table
	PaymentOpts   usecase.PaymentOptions
	Log           *zap.Logger
	SwaggerEnable bool
}

// Run wires DynamoDB, Mercado Pago and the HTTP API, then serves until ctx is done.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ddb, err := database.ConnectDynamoDB(ctx, database.Options{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return err
	}
	tables := []string{cfg.StatementsTable, cfg.PaymentsTable}
	if err := database.WaitForTables(ctx, ddb, tables, cfg.DynamoDBStartupTimeout, log.Named("dynamodb")); err != nil {
		return err
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentsMocked(), log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	router, err := NewRouter(Dependencies{
		Statements: repository.NewStatementDynamoRepository(ddb, cfg.StatementsTable),
		Payments:   repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable),
		Catalog:    catalog.NewInMemoryCatalog(catalog.Default()),
		Gateway:    gateway,
		Pricing:    cfg.Pricing,
		PaymentOpts: usecase.PaymentOptions{
			MockMode:        cfg.PaymentsMocked(),
			SandboxToken:    cfg.SandboxToken(),
			TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
			TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
		},
		Log:           log,
		SwaggerEnable: !cfg.Production(),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine serving /v1. It fails when deps.Pricing is not a valid table.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	calc, err := pricing.NewCalculator(deps.Pricing)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, deps.Log)

	if deps.SwaggerEnable {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	generator := statement.NewGenerator(calc)
	statementUseCase := usecase.NewStatementUseCase(deps.Statements, deps.Catalog, generator, deps.Log)
	paymentUseCase := usecase.NewBillingPaymentUseCase(deps.Payments, deps.Statements, deps.Gateway, deps.PaymentOpts, deps.Log)

	statementHandler := handlers.NewStatementHandler(statementUseCase, deps.Pricing.PercentFactor, deps.Log)
	billingPaymentHandler := handlers.NewBillingPaymentHandler(paymentUseCase, deps.PaymentOpts.MockMode, deps.Log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, statementHandler, billingPaymentHandler)
	return router, nil
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
