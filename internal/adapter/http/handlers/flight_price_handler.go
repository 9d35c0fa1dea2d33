package handlers

import (
	"errors"
	"net/http"

	request "flight_price_api/internal/adapter/http/dto/request"
	response "flight_price_api/internal/adapter/http/dto/response"
	"flight_price_api/internal/usecase"
	"flight_price_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFlightPriceQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

// FlightPriceHandler handles HTTP requests for flight price resolution.
type FlightPriceHandler struct {
	usecase usecase.IPriceQuoteUseCase
}

func NewFlightPriceHandler(uc usecase.IPriceQuoteUseCase) *FlightPriceHandler {
	return &FlightPriceHandler{usecase: uc}
}

// GetFlightPrice resolves a price for the requested route.
//
// @Summary      Resolve a flight price
// @Description  Attempts a live quote and falls back to a deterministic estimate.
// @Tags         flights
// @Produce      json
// @Param        departureCity       query  string  false  "Departure city"
// @Param        departureCountry    query  string  false  "Departure country"
// @Param        destinationCity     query  string  false  "Destination city"
// @Param        destinationCountry  query  string  false  "Destination country"
// @Param        targetDate          query  string  false  "Departure date (YYYY-MM-DD)"
// @Param        travelDays          query  int     false  "Days until return; 0 means one-way"  default(7)
// @Param        fareClass           query  string  false  "economy|premium-economy|business|first"  default(economy)
// @Param        numberOfPeople      query  int     false  "Passenger count"  default(1)
// @Success      200  {object}  response.FlightPriceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /api/getFlightPrice [get]
func (h *FlightPriceHandler) GetFlightPrice(c *gin.Context) {
	var payload request.FlightPriceRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidFlightPriceQuery.HTTPStatus, errInvalidFlightPriceQuery.ToHTTPError())
		return
	}

	query, err := payload.ToRouteQuery()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_QUERY", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.ResolvePrice(c.Request.Context(), query)
	if err != nil {
		appErr := mapFlightPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceQuote(quote))
}

func mapFlightPriceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingQueryField):
		return pkg.NewDomainError("MISSING_REQUIRED_FIELD", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
