package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "pazes_checkout/docs" // This will be auto-generated
	"pazes_checkout/internal/adapter/http/handlers"
	repository2 "pazes_checkout/internal/adapter/persistence/repository"
	"pazes_checkout/internal/domain/contract"
	"pazes_checkout/internal/domain/pricing"
	"pazes_checkout/internal/infrastructure/database"
	"pazes_checkout/internal/infrastructure/ledger"
	"pazes_checkout/internal/infrastructure/notifier"
	"pazes_checkout/internal/infrastructure/payments"
	"pazes_checkout/internal/usecase"
	"pazes_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const (
	defaultPort     = 8080
	maxInstallments = 6

	contractVersion = "v1.0"
	contractHash    = "88559760E4DAF2CEF94D9F5B7069CBCC9A5196106CD771227DB2500EFFBEDD0E"

	checkoutObjective = "inscricao-tdah"
	senderDisplayName = "Fazendo as Pazes com o TDAH"

	defaultTokenHeader = "asaas-access-token"
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", strconv.Itoa(defaultPort))
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	resolver := pricing.NewResolver(pricing.DefaultTable(), pricing.DefaultCoupons(), maxInstallments)
	guard := contract.NewGuard(
		getenvDefault("CONTRACT_VERSION", contractVersion),
		getenvDefault("CONTRACT_HASH", contractHash),
	)

	// A checkout service without gateway credentials cannot do anything
	// useful; fail at startup, not per request.
	gateway, err := payments.NewAsaasGateway(os.Getenv("ASAAS_API_URL"), os.Getenv("ASAAS_API_KEY"))
	if err != nil {
		log.Fatalf("Payment gateway not configured: %v", err)
	}

	webhookToken := os.Getenv("ASAAS_WEBHOOK_TOKEN")
	if webhookToken == "" {
		log.Fatalf("ASAAS_WEBHOOK_TOKEN must be configured")
	}

	var ledgerSink interfaces.ILedger
	if l, err := ledger.NewSheetsLedger(ctx,
		os.Getenv("GOOGLE_SHEET_ID"),
		os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		os.Getenv("GOOGLE_PRIVATE_KEY"),
	); err != nil {
		log.Printf("Sheets ledger not configured: %v", err)
	} else {
		ledgerSink = l
	}

	var notifierSink interfaces.INotifier
	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if n, err := notifier.NewSMTPNotifier(
		os.Getenv("SMTP_HOST"),
		smtpPort,
		os.Getenv("GMAIL_ADDRESS"),
		os.Getenv("GMAIL_APP_PASSWORD"),
		senderDisplayName,
	); err != nil {
		log.Printf("SMTP notifier not configured: %v", err)
	} else {
		notifierSink = n
	}

	var processedRepo interfaces.IProcessedSaleRepository
	if os.Getenv("PROCESSED_SALES_TABLE") != "" {
		ddb := database.ConnectDynamoDB()
		processedRepo = repository2.NewProcessedSaleDynamoRepository(ddb)
		log.Printf("Durable webhook dedup enabled table=%s", os.Getenv("PROCESSED_SALES_TABLE"))
	}

	successURL := getenvDefault("SITE_URL", "") + "/obrigado/"
	checkoutUseCase := usecase.NewCheckoutUseCase(resolver, guard, gateway, successURL, checkoutObjective)

	dispatcher := usecase.NewSideEffectDispatcher(ledgerSink, notifierSink)
	webhookUseCase := usecase.NewWebhookUseCase(gateway, processedRepo, dispatcher)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase, webhookToken, getenvDefault("WEBHOOK_TOKEN_HEADER", defaultTokenHeader))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, webhookHandler)
}

func setMiddlewares() {
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
