package routes

import (
	"pazes_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathWebhook  = "/webhook"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, webhookHandler *handlers.WebhookHandler) {
	rg.POST(PathCheckout, checkoutHandler.Checkout)
	rg.POST(PathWebhook, webhookHandler.Receive)
}
