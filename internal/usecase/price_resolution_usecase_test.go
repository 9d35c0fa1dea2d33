package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"flight_price_api/internal/domain/entities"
	"flight_price_api/internal/usecase/interfaces"
	mock_interfaces "flight_price_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestPipeline(search *mock_interfaces.MockIFlightSearch, rates *mock_interfaces.MockIRateSource, mode ValidationMode) *PriceResolutionUseCase {
	resolver := NewLocationResolver(entities.DefaultAirportEntries())
	estimator := NewRouteEstimator(entities.DefaultRouteEntries(), entities.DefaultRouteBasePriceUSD)

	// Avoid typed-nil interfaces when a seam is unused by a test.
	var rateSource interfaces.IRateSource
	if rates != nil {
		rateSource = rates
	}
	var flightSearch interfaces.IFlightSearch
	if search != nil {
		flightSearch = search
	}

	currency := NewCurrencyNormalizer(rateSource, entities.DefaultFallbackRates())
	return NewPriceResolutionUseCase(resolver, estimator, currency, flightSearch, mode)
}

func testDate(t *testing.T) *time.Time {
	t.Helper()
	d := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestPriceResolution_EstimatedWithoutTargetDate(t *testing.T) {
	uc := newTestPipeline(nil, nil, ValidationLenient)

	quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		DepartureCity:      "Manila",
		DepartureCountry:   "Philippines",
		DestinationCity:    "Tokyo",
		DestinationCountry: "Japan",
		TravelDays:         7,
		FareClassRaw:       "economy",
		Passengers:         1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Source != entities.PriceSourceEstimated {
		t.Fatalf("expected estimated source, got %s", quote.Source)
	}
	if quote.Price != 650 {
		t.Fatalf("expected 650, got %.2f", quote.Price)
	}
	if quote.Currency != "USD" || quote.Route != "Manila to Tokyo" {
		t.Fatalf("unexpected quote: %+v", quote)
	}
	if quote.Details != nil {
		t.Fatalf("expected no flight details on estimated quote")
	}
	if len(quote.Trace) == 0 {
		t.Fatalf("expected a populated decision trace")
	}
}

func TestPriceResolution_LiveOfferWithConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	search := mock_interfaces.NewMockIFlightSearch(ctrl)
	rates := mock_interfaces.NewMockIRateSource(ctrl)

	stops := 1
	rates.EXPECT().Rate(gomock.Any(), "EUR", "USD").Return(1.05, nil)
	search.EXPECT().Search(gomock.Any(), gomock.AssignableToTypeOf(entities.FlightSearchQuery{})).DoAndReturn(
		func(_ context.Context, q entities.FlightSearchQuery) ([]entities.FlightOffer, error) {
			if len(q.Legs) != 2 || q.Trip != entities.TripTypeRoundTrip {
				t.Fatalf("expected round-trip with two legs, got %+v", q)
			}
			if q.Legs[0].Origin != "MNL" || q.Legs[0].Dest != "NRT" {
				t.Fatalf("unexpected outbound leg: %+v", q.Legs[0])
			}
			if q.Legs[1].Origin != "NRT" || q.Legs[1].Dest != "MNL" {
				t.Fatalf("unexpected return leg: %+v", q.Legs[1])
			}
			wantReturn := time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC)
			if !q.Legs[1].Date.Equal(wantReturn) {
				t.Fatalf("expected return date %s, got %s", wantReturn, q.Legs[1].Date)
			}
			return []entities.FlightOffer{
				{
					Airline:   "Philippine Airlines",
					Duration:  "4 hr 25 min",
					Stops:     &stops,
					Departure: "7:45 AM",
					Arrival:   "1:10 PM",
					Price:     entities.RawPrice{Text: "€850"},
				},
			}, nil
		},
	)

	uc := newTestPipeline(search, rates, ValidationLenient)
	quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		DepartureCity:      "Manila",
		DepartureCountry:   "Philippines",
		DestinationCity:    "Tokyo",
		DestinationCountry: "Japan",
		TargetDate:         testDate(t),
		TravelDays:         7,
		FareClassRaw:       "economy",
		Passengers:         1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Source != entities.PriceSourceLive {
		t.Fatalf("expected live source, got %s", quote.Source)
	}
	if quote.Price != 892.50 {
		t.Fatalf("expected 892.50, got %.2f", quote.Price)
	}
	if quote.Details == nil || quote.Details.Airline != "Philippine Airlines" || quote.Details.Stops != "1" {
		t.Fatalf("unexpected details: %+v", quote.Details)
	}
	if !strings.Contains(quote.SearchURL, "MNL") || !strings.Contains(quote.SearchURL, "NRT") {
		t.Fatalf("expected search url built from codes, got %s", quote.SearchURL)
	}
}

func TestPriceResolution_SelectsCheapestParsedOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	search := mock_interfaces.NewMockIFlightSearch(ctrl)

	search.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]entities.FlightOffer{
		{Airline: "Carrier A", Price: entities.RawPrice{Text: "$900"}},
		{Airline: "Carrier B", Price: entities.RawPrice{Text: "see website"}},
		{Airline: "Carrier C", Price: entities.RawPrice{Text: "$640"}},
	}, nil)

	uc := newTestPipeline(search, nil, ValidationLenient)
	quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		DepartureCity:      "Manila",
		DepartureCountry:   "Philippines",
		DestinationCity:    "Tokyo",
		DestinationCountry: "Japan",
		TargetDate:         testDate(t),
		TravelDays:         7,
		Passengers:         1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Source != entities.PriceSourceLive {
		t.Fatalf("expected live source, got %s", quote.Source)
	}
	if quote.Price != 640 {
		t.Fatalf("expected cheapest parsed offer 640, got %.2f", quote.Price)
	}
	if quote.Details == nil || quote.Details.Airline != "Carrier C" {
		t.Fatalf("expected Carrier C details, got %+v", quote.Details)
	}
}

func TestPriceResolution_LiveDetailsEstimatedPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	search := mock_interfaces.NewMockIFlightSearch(ctrl)

	search.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]entities.FlightOffer{
		{
			Airline:  "Cebu Pacific",
			Duration: "4 hr 50 min",
			Price:    entities.RawPrice{Text: "call for fare"},
		},
	}, nil)

	uc := newTestPipeline(search, nil, ValidationLenient)
	quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		DepartureCity:      "Manila",
		DepartureCountry:   "Philippines",
		DestinationCity:    "Tokyo",
		DestinationCountry: "Japan",
		TargetDate:         testDate(t),
		TravelDays:         7,
		FareClassRaw:       "economy",
		Passengers:         1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Source != entities.PriceSourceLiveEstimatedDetails {
		t.Fatalf("expected live-estimated-details source, got %s", quote.Source)
	}
	if quote.Price != 650 {
		t.Fatalf("expected route estimate 650, got %.2f", quote.Price)
	}
	if quote.Details == nil || quote.Details.Airline != "Cebu Pacific" {
		t.Fatalf("expected live offer details, got %+v", quote.Details)
	}
	if quote.Details.Stops != entities.UnknownField || quote.Details.Departure != entities.UnknownField {
		t.Fatalf("expected Unknown sentinels for absent fields, got %+v", quote.Details)
	}
}

func TestPriceResolution_ProviderFailureFallsBack(t *testing.T) {
	cases := []struct {
		name   string
		offers []entities.FlightOffer
		err    error
	}{
		{name: "provider error", err: errors.New("connection refused")},
		{name: "provider timeout", err: context.DeadlineExceeded},
		{name: "no offers", offers: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			search := mock_interfaces.NewMockIFlightSearch(ctrl)
			search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(tc.offers, tc.err)

			uc := newTestPipeline(search, nil, ValidationLenient)
			quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
				DepartureCity:      "Manila",
				DepartureCountry:   "Philippines",
				DestinationCity:    "Tokyo",
				DestinationCountry: "Japan",
				TargetDate:         testDate(t),
				TravelDays:         7,
				FareClassRaw:       "business",
				Passengers:         1,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if quote.Source != entities.PriceSourceEstimated {
				t.Fatalf("expected estimated source, got %s", quote.Source)
			}
			if quote.Price != 1625 {
				t.Fatalf("expected 1625, got %.2f", quote.Price)
			}
		})
	}
}

func TestPriceResolution_ResolverMissSkipsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// No EXPECT: the provider must not be called when a code is missing.
	search := mock_interfaces.NewMockIFlightSearch(ctrl)

	uc := newTestPipeline(search, nil, ValidationLenient)
	quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		DepartureCity:      "Manila",
		DepartureCountry:   "Philippines",
		DestinationCity:    "Reykjavik",
		DestinationCountry: "Iceland",
		TargetDate:         testDate(t),
		TravelDays:         7,
		Passengers:         1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Source != entities.PriceSourceEstimated {
		t.Fatalf("expected estimated source, got %s", quote.Source)
	}
	if quote.Price != float64(entities.DefaultRouteBasePriceUSD) {
		t.Fatalf("expected default base price, got %.2f", quote.Price)
	}
}

func TestPriceResolution_OneWayTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	search := mock_interfaces.NewMockIFlightSearch(ctrl)
	search.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.FlightSearchQuery) ([]entities.FlightOffer, error) {
			if len(q.Legs) != 1 || q.Trip != entities.TripTypeOneWay {
				t.Fatalf("expected one-way single leg, got %+v", q)
			}
			return []entities.FlightOffer{{Airline: "JAL", Price: entities.RawPrice{Text: "$320"}}}, nil
		},
	)

	uc := newTestPipeline(search, nil, ValidationLenient)
	quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		DepartureCity:      "Manila",
		DepartureCountry:   "Philippines",
		DestinationCity:    "Tokyo",
		DestinationCountry: "Japan",
		TargetDate:         testDate(t),
		TravelDays:         0,
		Passengers:         1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Price != 320 || quote.Source != entities.PriceSourceLive {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestPriceResolution_StrictModeValidation(t *testing.T) {
	uc := newTestPipeline(nil, nil, ValidationStrict)

	_, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		DepartureCity:    "Manila",
		DepartureCountry: "Philippines",
		// destinationCity missing
		DestinationCountry: "Japan",
		TargetDate:         testDate(t),
		TravelDays:         7,
		Passengers:         1,
	})
	if !errors.Is(err, ErrMissingQueryField) {
		t.Fatalf("expected ErrMissingQueryField, got %v", err)
	}
}

func TestPriceResolution_LenientModeDefaults(t *testing.T) {
	uc := newTestPipeline(nil, nil, ValidationLenient)

	quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		TravelDays: 7,
		Passengers: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Route != "Manila to Tokyo" {
		t.Fatalf("expected default route, got %s", quote.Route)
	}
	if quote.Price != 650 || quote.Source != entities.PriceSourceEstimated {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestPriceResolution_LenientModeDefaultsCountryIndependently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	search := mock_interfaces.NewMockIFlightSearch(ctrl)
	search.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.FlightSearchQuery) ([]entities.FlightOffer, error) {
			if q.Legs[0].Origin != "MNL" || q.Legs[0].Dest != "NRT" {
				t.Fatalf("unexpected legs: %+v", q.Legs)
			}
			return []entities.FlightOffer{{Airline: "PAL", Price: entities.RawPrice{Text: "$600"}}}, nil
		},
	)

	uc := newTestPipeline(search, nil, ValidationLenient)
	// Cities named, countries omitted: the countries default on their own and
	// the route still resolves to airport codes for the live path.
	quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		DepartureCity:   "Manila",
		DestinationCity: "Tokyo",
		TargetDate:      testDate(t),
		TravelDays:      7,
		Passengers:      1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Source != entities.PriceSourceLive {
		t.Fatalf("expected live source, got %s", quote.Source)
	}
	if quote.Price != 600 {
		t.Fatalf("expected 600, got %.2f", quote.Price)
	}
}

func TestPriceResolution_StrictModeReportsFirstMissingField(t *testing.T) {
	uc := newTestPipeline(nil, nil, ValidationStrict)

	for i := 0; i < 5; i++ {
		_, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
			TravelDays: 7,
			Passengers: 1,
		})
		if !errors.Is(err, ErrMissingQueryField) {
			t.Fatalf("expected ErrMissingQueryField, got %v", err)
		}
		if !strings.HasSuffix(err.Error(), "departureCity") {
			t.Fatalf("expected departureCity reported first, got %q", err.Error())
		}
	}
}

func TestPriceResolution_Idempotent(t *testing.T) {
	uc := newTestPipeline(nil, nil, ValidationLenient)
	query := entities.RouteQuery{
		DepartureCity:      "Manila",
		DepartureCountry:   "Philippines",
		DestinationCity:    "Sydney",
		DestinationCountry: "Australia",
		TravelDays:         7,
		FareClassRaw:       "first",
		Passengers:         2,
	}

	first, err := uc.ResolvePrice(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.ResolvePrice(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Price != second.Price || first.Source != second.Source {
		t.Fatalf("expected identical results, got %.2f/%s and %.2f/%s",
			first.Price, first.Source, second.Price, second.Source)
	}
	if first.Price != 3200 {
		t.Fatalf("expected 3200 (800x4), got %.2f", first.Price)
	}
}

func TestPriceResolution_UnexpectedFailureBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	search := mock_interfaces.NewMockIFlightSearch(ctrl)
	search.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]entities.FlightOffer{
		{Airline: "Broken Air", Price: entities.RawPrice{Text: "€500"}},
	}, nil)

	// A nil currency normalizer panics on the rate lookup a non-USD price
	// forces; the failure boundary must still price the request.
	resolver := NewLocationResolver(entities.DefaultAirportEntries())
	estimator := NewRouteEstimator(entities.DefaultRouteEntries(), entities.DefaultRouteBasePriceUSD)
	uc := NewPriceResolutionUseCase(resolver, estimator, nil, search, ValidationLenient)

	quote, err := uc.ResolvePrice(context.Background(), entities.RouteQuery{
		DepartureCity:      "Manila",
		DepartureCountry:   "Philippines",
		DestinationCity:    "Tokyo",
		DestinationCountry: "Japan",
		TargetDate:         testDate(t),
		TravelDays:         7,
		Passengers:         1,
	})
	if err != nil {
		t.Fatalf("expected recovered result, got error: %v", err)
	}
	if quote.Source != entities.PriceSourceErrorFallback {
		t.Fatalf("expected error-fallback source, got %s", quote.Source)
	}
	if quote.Price != 650 {
		t.Fatalf("expected conservative estimate 650, got %.2f", quote.Price)
	}
}
