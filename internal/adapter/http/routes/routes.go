package routes

import (
	"log"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gbzindabb123-ops/mlb2/internal/adapter/http/handlers"
	"github.com/gbzindabb123-ops/mlb2/internal/infrastructure/config"
	"github.com/gbzindabb123-ops/mlb2/internal/infrastructure/payments"
	"github.com/gbzindabb123-ops/mlb2/internal/usecase"
	"github.com/gbzindabb123-ops/mlb2/internal/usecase/interfaces"
)

var router = gin.Default()

// Run wires the providers and starts the server.
func Run() {
	cfg := config.Load()

	setMiddlewares()
	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	// A provider with missing credentials stays nil; its routes then answer
	// with a provider-not-configured failure instead of refusing to boot.
	var preferenceProvider interfaces.IPreferenceProvider
	var statusSource interfaces.IPaymentStatusSource
	mpGateway, err := payments.NewMercadoPagoGateway(cfg)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		preferenceProvider = mpGateway
		statusSource = mpGateway
	}

	var orderProvider interfaces.IOrderProvider
	ppGateway, err := payments.NewPayPalGateway(cfg)
	if err != nil {
		log.Printf("PayPal gateway not configured: %v", err)
	} else {
		orderProvider = ppGateway
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(preferenceProvider, orderProvider)
	webhookUseCase := usecase.NewWebhookUseCase(cfg.MercadoPago.WebhookSecret, statusSource)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addCheckoutRoutes(api, checkoutHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	// The storefront runs on a different origin and calls these routes from
	// the browser.
	router.Use(cors.Default())
}
