package routes

import (
	"log"
	"os"
	"strconv"

	_ "borewell_ops/docs" // This will be auto-generated
	"borewell_ops/internal/adapter/http/handlers"
	repository2 "borewell_ops/internal/adapter/persistence/repository"
	"borewell_ops/internal/infrastructure/database"
	"borewell_ops/internal/infrastructure/payments"
	"borewell_ops/internal/usecase"
	"borewell_ops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewServiceRequestDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	paymentRepo := repository2.NewJobPaymentDynamoRepository(ddb)

	requestUseCase := usecase.NewServiceRequestUseCase(requestRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewJobPaymentUseCase(paymentRepo, requestRepo, paymentGateway)

	requestHandler := handlers.NewServiceRequestHandler(requestUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	paymentHandler := handlers.NewJobPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRequestRoutes(v1, requestHandler)
	addProductRoutes(v1, productHandler)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
