package routes

import (
	"borewell_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathProducts = "/products"
	PathPayments = "/payments"
)

func addRequestRoutes(rg *gin.RouterGroup, requestHandler *handlers.ServiceRequestHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.POST("/quote", requestHandler.Quote)
		requests.GET("", requestHandler.ListRequests)
		requests.GET("/:id", requestHandler.GetRequest)
		requests.PATCH("/:id/approve", requestHandler.ApproveRequest)
		requests.PATCH("/:id/reject", requestHandler.RejectRequest)
		requests.PATCH("/:id/cancel", requestHandler.CancelRequest)
		requests.PUT("/:id/pricing", requestHandler.UpdatePricing)
	}
}

func addProductRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.PATCH("/:id/price", productHandler.UpdateProductPrice)
		products.POST("/:id/freeze", productHandler.FreezeItem)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.JobPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:request_id", paymentHandler.CreatePaymentByRequestID)
		payments.GET("/:request_id", paymentHandler.GetPaymentByRequestID)
	}
}
