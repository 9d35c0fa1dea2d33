package routes

import (
	"context"
	"log"
	"os"

	_ "flight_price_api/docs" // swag-generated documentation
	"flight_price_api/internal/adapter/http/handlers"
	repository2 "flight_price_api/internal/adapter/persistence/repository"
	"flight_price_api/internal/domain/entities"
	"flight_price_api/internal/infrastructure/database"
	"flight_price_api/internal/infrastructure/exchange"
	"flight_price_api/internal/infrastructure/flights"
	"flight_price_api/internal/usecase"
	"flight_price_api/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	airports, routeTable, fallbackRates := loadReferenceData()

	resolver := usecase.NewLocationResolver(airports)
	estimator := usecase.NewRouteEstimator(routeTable, entities.DefaultRouteBasePriceUSD)

	rateSource := exchange.NewFrankfurterClient(os.Getenv("EXCHANGE_RATE_API_URL"))
	normalizer := usecase.NewCurrencyNormalizer(rateSource, fallbackRates)

	var flightSearch interfaces.IFlightSearch
	gateway, err := flights.NewGoogleFlightsGateway(os.Getenv("FLIGHT_PROVIDER_URL"))
	if err != nil {
		log.Printf("Flight search provider not configured: %v", err)
	} else {
		flightSearch = gateway
	}

	mode := usecase.ValidationMode(getenvDefault("VALIDATION_MODE", string(usecase.ValidationLenient)))
	priceUseCase := usecase.NewPriceResolutionUseCase(resolver, estimator, normalizer, flightSearch, mode)

	flightPriceHandler := handlers.NewFlightPriceHandler(priceUseCase)

	addPingRoutes(router)
	addFlightPriceRoutes(router, flightPriceHandler)
}

// loadReferenceData returns the static lookup tables. With
// REFDATA_SOURCE=dynamodb the tables come from DynamoDB; any load failure
// degrades to the embedded defaults so the service always starts.
func loadReferenceData() ([]entities.AirportEntry, []entities.RouteEntry, map[string]float64) {
	airports := entities.DefaultAirportEntries()
	routeTable := entities.DefaultRouteEntries()
	fallbackRates := entities.DefaultFallbackRates()

	if getenvDefault("REFDATA_SOURCE", "static") != "dynamodb" {
		return airports, routeTable, fallbackRates
	}

	ctx := context.Background()
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Printf("[refdata][routes] dynamodb unavailable, using embedded tables err=%v", err)
		return airports, routeTable, fallbackRates
	}

	repo := repository2.NewRefDataDynamoRepository(ddb)
	if loaded, err := repo.LoadAirports(ctx); err != nil {
		log.Printf("[refdata][routes] airport table load failed, using embedded err=%v", err)
	} else if len(loaded) > 0 {
		airports = loaded
	}
	if loaded, err := repo.LoadRoutes(ctx); err != nil {
		log.Printf("[refdata][routes] route table load failed, using embedded err=%v", err)
	} else if len(loaded) > 0 {
		routeTable = loaded
	}
	if loaded, err := repo.LoadFallbackRates(ctx); err != nil {
		log.Printf("[refdata][routes] rate table load failed, using embedded err=%v", err)
	} else if len(loaded) > 0 {
		fallbackRates = loaded
	}
	return airports, routeTable, fallbackRates
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
