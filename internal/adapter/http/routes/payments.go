package routes

import (
	"madinah_tours/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/session", paymentHandler.StartCheckoutSession)
		payments.GET("/status/:session_id", paymentHandler.GetPaymentStatus)
		payments.POST("/webhook", paymentHandler.HandleWebhook)
	}
}
