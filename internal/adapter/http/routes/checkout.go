package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gbzindabb123-ops/mlb2/internal/adapter/http/handlers"
)

const (
	PathMercadoPago = "/mercadopago"
	PathPayPal      = "/paypal"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, webhookHandler *handlers.WebhookHandler) {
	mercadopago := rg.Group(PathMercadoPago)
	{
		mercadopago.POST("/create-preference", checkoutHandler.CreatePreference)
		mercadopago.POST("/webhook", webhookHandler.Receive)
	}

	paypal := rg.Group(PathPayPal)
	{
		paypal.POST("/create-order", checkoutHandler.CreateOrder)
		paypal.POST("/capture/:orderId", checkoutHandler.CaptureOrder)
	}
}
