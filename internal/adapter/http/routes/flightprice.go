package routes

import (
	"flight_price_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFlightPrice = "/getFlightPrice"
)

func addFlightPriceRoutes(r *gin.Engine, flightPriceHandler *handlers.FlightPriceHandler) {
	api := r.Group("/api")
	{
		api.GET(PathFlightPrice, flightPriceHandler.GetFlightPrice)
	}
}
