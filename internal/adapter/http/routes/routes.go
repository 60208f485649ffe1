package routes

import (
	"log"
	_ "madinah_tours/docs" // This will be auto-generated
	"madinah_tours/internal/adapter/http/handlers"
	repository2 "madinah_tours/internal/adapter/persistence/repository"
	"madinah_tours/internal/infrastructure/database"
	"madinah_tours/internal/infrastructure/payments"
	"madinah_tours/internal/usecase"
	"madinah_tours/internal/usecase/interfaces"
	"os"
	"strconv"

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

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	txRepo := repository2.NewPaymentTransactionDynamoRepository(ddb)
	siteRepo := repository2.NewSiteDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		checkoutGateway = mpGateway
	}

	bookingUseCase := usecase.NewBookingUseCase(bookingRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(txRepo, bookingRepo, checkoutGateway)
	reconciliationUseCase := usecase.NewPaymentReconciliationUseCase(txRepo, bookingRepo, checkoutGateway)
	siteUseCase := usecase.NewSiteUseCase(siteRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	paymentHandler := handlers.NewPaymentHandler(checkoutUseCase, reconciliationUseCase)
	siteHandler := handlers.NewSiteHandler(siteUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, bookingHandler)
	addPaymentRoutes(v1, paymentHandler)
	addSiteRoutes(v1, siteHandler)
	addUserRoutes(v1, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
