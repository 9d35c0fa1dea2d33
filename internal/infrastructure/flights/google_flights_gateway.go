package flights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"flight_price_api/internal/domain/entities"
	"flight_price_api/internal/usecase/interfaces"
)

var ErrMissingProviderURL = errors.New("missing FLIGHT_PROVIDER_URL")

// GoogleFlightsGateway calls an external flight-search service speaking the
// fast-flights JSON contract (a sidecar that scrapes Google Flights).
//
// Mirrors the payment-gateway conventions used elsewhere: an env toggle
// switches it into mock mode for local development, and a nil gateway is a
// valid state the use case degrades around.
type GoogleFlightsGateway struct {
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IFlightSearch = (*GoogleFlightsGateway)(nil)

func NewGoogleFlightsGateway(baseURL string) (*GoogleFlightsGateway, error) {
	if isFlightProviderMockEnabled() {
		log.Printf("[flights][gateway] mock mode enabled")
		return &GoogleFlightsGateway{mockMode: true}, nil
	}

	if baseURL == "" {
		log.Printf("[flights][gateway] missing FLIGHT_PROVIDER_URL")
		return nil, ErrMissingProviderURL
	}

	log.Printf("[flights][gateway] flight search client initialized url=%s", baseURL)
	return &GoogleFlightsGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type searchLegPayload struct {
	Date        string `json:"date"`
	FromAirport string `json:"from_airport"`
	ToAirport   string `json:"to_airport"`
}

type searchRequestPayload struct {
	FlightData []searchLegPayload `json:"flight_data"`
	Trip       string             `json:"trip"`
	Seat       string             `json:"seat"`
	Passengers int                `json:"passengers"`
}

type offerPayload struct {
	Name      string          `json:"name"`
	Duration  string          `json:"duration"`
	Stops     *int            `json:"stops"`
	Departure string          `json:"departure"`
	Arrival   string          `json:"arrival"`
	Price     json.RawMessage `json:"price"`
}

type searchResponsePayload struct {
	Flights []offerPayload `json:"flights"`
}

func (g *GoogleFlightsGateway) Search(ctx context.Context, query entities.FlightSearchQuery) ([]entities.FlightOffer, error) {
	if g.mockMode {
		return g.mockOffers(query), nil
	}

	payload := searchRequestPayload{
		Trip:       string(query.Trip),
		Seat:       string(query.FareClass),
		Passengers: query.Passengers,
	}
	for _, leg := range query.Legs {
		payload.FlightData = append(payload.FlightData, searchLegPayload{
			Date:        leg.Date.Format("2006-01-02"),
			FromAirport: leg.Origin.String(),
			ToAirport:   leg.Dest.String(),
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("flights: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("flights: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[flights][gateway] search start legs=%d trip=%s seat=%s", len(query.Legs), query.Trip, query.FareClass)
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flights: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("flights: status %d: %s", resp.StatusCode, string(b))
	}

	var result searchResponsePayload
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("flights: decode response: %w", err)
	}

	offers := make([]entities.FlightOffer, 0, len(result.Flights))
	for _, f := range result.Flights {
		offers = append(offers, entities.FlightOffer{
			Airline:   f.Name,
			Duration:  f.Duration,
			Stops:     f.Stops,
			Departure: f.Departure,
			Arrival:   f.Arrival,
			Price:     decodeRawPrice(f.Price),
		})
	}
	log.Printf("[flights][gateway] search success offers=%d", len(offers))
	return offers, nil
}

// decodeRawPrice keeps the provider's price representation intact: a JSON
// number maps to a numeric amount, anything else to its string form.
func decodeRawPrice(raw json.RawMessage) entities.RawPrice {
	if len(raw) == 0 {
		return entities.RawPrice{}
	}
	var amount float64
	if err := json.Unmarshal(raw, &amount); err == nil {
		return entities.RawPrice{Amount: &amount}
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return entities.RawPrice{Text: text}
	}
	return entities.RawPrice{Text: string(raw)}
}

// mockOffers returns a deterministic offer set for local development.
func (g *GoogleFlightsGateway) mockOffers(query entities.FlightSearchQuery) []entities.FlightOffer {
	stops := 1
	departure := "8:30 AM"
	arrival := "1:45 PM"
	if len(query.Legs) > 0 {
		departure = query.Legs[0].Date.Format("2006-01-02") + " " + departure
	}
	log.Printf("[flights][gateway] mock search legs=%d seat=%s", len(query.Legs), query.FareClass)
	return []entities.FlightOffer{
		{
			Airline:   "Mock Air",
			Duration:  "5 hr 15 min",
			Stops:     &stops,
			Departure: departure,
			Arrival:   arrival,
			Price:     entities.RawPrice{Text: "$499"},
		},
	}
}

func isFlightProviderMockEnabled() bool {
	for _, key := range []string{"FLIGHT_PROVIDER_MOCK", "FLIGHT_SEARCH_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
