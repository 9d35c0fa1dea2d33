package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"flight_price_api/internal/adapter/http/handlers/mocks"
	"flight_price_api/internal/domain/entities"
	"flight_price_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newFlightPriceRouter(h *FlightPriceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/getFlightPrice", h.GetFlightPrice)
	return r
}

func TestFlightPriceHandler_GetFlightPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resolved quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceQuoteUseCase(ctrl)
		h := NewFlightPriceHandler(uc)

		uc.EXPECT().ResolvePrice(gomock.Any(), gomock.AssignableToTypeOf(entities.RouteQuery{})).DoAndReturn(
			func(_ context.Context, q entities.RouteQuery) (entities.PriceQuote, error) {
				if q.DepartureCity != "Manila" || q.DestinationCity != "Tokyo" {
					t.Fatalf("unexpected query: %+v", q)
				}
				if q.TravelDays != 7 || q.Passengers != 1 {
					t.Fatalf("expected defaults, got %+v", q)
				}
				return entities.PriceQuote{
					ID:        "q-1",
					Price:     650,
					Currency:  "USD",
					Source:    entities.PriceSourceEstimated,
					Route:     "Manila to Tokyo",
					FareClass: entities.FareClassEconomy,
					SearchURL: "https://www.google.com/travel/flights?q=x",
					Trace:     []string{"estimated"},
				}, nil
			},
		)

		r := newFlightPriceRouter(h)
		req := httptest.NewRequest(http.MethodGet,
			"/api/getFlightPrice?departureCity=Manila&departureCountry=Philippines&destinationCity=Tokyo&destinationCountry=Japan", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["error"] != false || body["price"] != float64(650) || body["source"] != "estimated" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["currency"] != "USD" || body["search_url"] == "" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid target date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceQuoteUseCase(ctrl)
		h := NewFlightPriceHandler(uc)

		r := newFlightPriceRouter(h)
		req := httptest.NewRequest(http.MethodGet, "/api/getFlightPrice?targetDate=tomorrow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid travel days type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceQuoteUseCase(ctrl)
		h := NewFlightPriceHandler(uc)

		r := newFlightPriceRouter(h)
		req := httptest.NewRequest(http.MethodGet, "/api/getFlightPrice?travelDays=soon", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("strict mode validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceQuoteUseCase(ctrl)
		h := NewFlightPriceHandler(uc)

		uc.EXPECT().ResolvePrice(gomock.Any(), gomock.Any()).Return(
			entities.PriceQuote{}, fmt.Errorf("%w: destinationCity", usecase.ErrMissingQueryField))

		r := newFlightPriceRouter(h)
		req := httptest.NewRequest(http.MethodGet, "/api/getFlightPrice?departureCity=Manila", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "MISSING_REQUIRED_FIELD" {
			t.Fatalf("unexpected error body: %v", body)
		}
	})
}
