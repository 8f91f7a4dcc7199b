package routes

import (
	"theater_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing       = "/ping"
	PathPlays      = "/plays"
	PathStatements = "/statements"
	PathPayments   = "/payments"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addBillingRoutes(rg *gin.RouterGroup, statementHandler *handlers.StatementHandler, paymentHandler *handlers.BillingPaymentHandler) {
	rg.GET(PathPlays, statementHandler.ListPlays)

	statements := rg.Group(PathStatements)
	{
		statements.POST("", statementHandler.CreateStatement)
		statements.GET("", statementHandler.ListStatements)
		statements.GET("/:id", statementHandler.GetStatement)
		statements.GET("/:id/rendered", statementHandler.GetRenderedStatement)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:statement_id", paymentHandler.CreatePaymentByStatementID)
		payments.GET("/:statement_id", paymentHandler.GetPaymentByStatementID)
	}
}
