package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "theater_billing/docs"
	"theater_billing/internal/adapter/http/routes"
	"theater_billing/internal/config"
	"theater_billing/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Theater Billing API
// @version         1.0
// @description     Statements for theatrical performance invoices, stored in DynamoDB and paid through Mercado Pago.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Production())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting billing service",
		zap.String("env", cfg.AppEnv),
		zap.Int("port", cfg.Port),
		zap.Bool("payments_mocked", cfg.PaymentsMocked()),
		zap.String("mercadopago_token", logger.MaskSecret(cfg.MercadoPagoAccessToken)))

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
}
