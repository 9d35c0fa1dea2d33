package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"flight_price_api/internal/domain/entities"
	"flight_price_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingQueryField = errors.New("missing required query field")
)

// ValidationMode selects how the pipeline treats missing required fields.
type ValidationMode string

const (
	// ValidationLenient substitutes documented defaults for anything missing.
	ValidationLenient ValidationMode = "lenient"
	// ValidationStrict rejects the request when departure/destination
	// city+country or the target date is missing.
	ValidationStrict ValidationMode = "strict"
)

// Lenient-mode defaults for an under-specified request.
const (
	defaultDepartureCity      = "Manila"
	defaultDepartureCountry   = "Philippines"
	defaultDestinationCity    = "Tokyo"
	defaultDestinationCountry = "Japan"
)

// defaultSearchTimeout bounds the external flight-search call so a slow
// provider cannot stall the request.
const defaultSearchTimeout = 10 * time.Second

// IPriceQuoteUseCase exposes the price resolution pipeline.
//
// ResolvePrice always returns a priced quote; the only error it ever
// surfaces is the strict-mode validation failure. Every other failure tier
// (provider unavailable, timeout, no offers, unparseable prices, resolver
// misses, unexpected internal failures) degrades to an estimated price and
// is recorded in the quote's trace.
type IPriceQuoteUseCase interface {
	ResolvePrice(ctx context.Context, query entities.RouteQuery) (entities.PriceQuote, error)
}

type PriceResolutionUseCase struct {
	locations     *LocationResolver
	estimator     *RouteEstimator
	currency      *CurrencyNormalizer
	search        interfaces.IFlightSearch
	mode          ValidationMode
	searchTimeout time.Duration
}

var _ IPriceQuoteUseCase = (*PriceResolutionUseCase)(nil)

func NewPriceResolutionUseCase(
	locations *LocationResolver,
	estimator *RouteEstimator,
	currency *CurrencyNormalizer,
	search interfaces.IFlightSearch,
	mode ValidationMode,
) *PriceResolutionUseCase {
	if mode != ValidationStrict {
		mode = ValidationLenient
	}
	return &PriceResolutionUseCase{
		locations:     locations,
		estimator:     estimator,
		currency:      currency,
		search:        search,
		mode:          mode,
		searchTimeout: defaultSearchTimeout,
	}
}

func (u *PriceResolutionUseCase) ResolvePrice(ctx context.Context, query entities.RouteQuery) (quote entities.PriceQuote, err error) {
	quoteID := uuid.NewString()
	trace := entities.NewDecisionTrace()

	// Top-level failure boundary: anything unexpected escaping the ladder
	// below still produces a priced response, never a bare error.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[price][usecase] unexpected failure quote_id=%s recovered=%v", quoteID, r)
			trace.Add("unexpected internal failure: %v", r)
			quote = u.errorFallback(query, trace, quoteID)
			err = nil
		}
	}()

	log.Printf("[price][usecase] resolve start quote_id=%s from=%q/%q to=%q/%q", quoteID,
		query.DepartureCity, query.DepartureCountry, query.DestinationCity, query.DestinationCountry)

	if err := u.validate(&query, trace); err != nil {
		log.Printf("[price][usecase] validation failed quote_id=%s err=%v", quoteID, err)
		return entities.PriceQuote{}, err
	}

	fareClass := NormalizeFareClass(query.FareClassRaw)
	trace.Add("fare class %q normalized to %s", query.FareClassRaw, fareClass)
	trace.Add("parameters: %s -> %s, date=%s, travel days=%d, passengers=%d",
		query.DepartureCity, query.DestinationCity, formatDate(query.TargetDate), query.TravelDays, query.Passengers)

	if quote, ok := u.tryLiveQuote(ctx, query, fareClass, trace, quoteID); ok {
		return quote, nil
	}

	trace.Add("falling back to route estimate")
	price := u.estimator.Estimate(query.DepartureCity, query.DestinationCity, fareClass)
	trace.Add("estimated %s to %s at %d USD (%s)", query.DepartureCity, query.DestinationCity, price, fareClass)
	log.Printf("[price][usecase] resolved from estimate quote_id=%s price=%d fare_class=%s", quoteID, price, fareClass)

	return entities.PriceQuote{
		ID:        quoteID,
		Price:     float64(price),
		Currency:  usdCode,
		Source:    entities.PriceSourceEstimated,
		Route:     fmt.Sprintf("%s to %s", query.DepartureCity, query.DestinationCity),
		FareClass: fareClass,
		SearchURL: buildSearchURL(query.DepartureCity, query.DestinationCity),
		Trace:     trace.Steps(),
	}, nil
}

// validate applies the configured validation policy. In lenient mode missing
// fields are replaced with documented defaults and noted in the trace.
func (u *PriceResolutionUseCase) validate(query *entities.RouteQuery, trace *entities.DecisionTrace) error {
	fields := []struct {
		name  string
		value *string
		def   string
	}{
		{"departureCity", &query.DepartureCity, defaultDepartureCity},
		{"departureCountry", &query.DepartureCountry, defaultDepartureCountry},
		{"destinationCity", &query.DestinationCity, defaultDestinationCity},
		{"destinationCountry", &query.DestinationCountry, defaultDestinationCountry},
	}

	if u.mode == ValidationStrict {
		for _, f := range fields {
			if *f.value == "" {
				return fmt.Errorf("%w: %s", ErrMissingQueryField, f.name)
			}
		}
		if query.TargetDate == nil {
			return fmt.Errorf("%w: targetDate", ErrMissingQueryField)
		}
		return nil
	}

	// Each field defaults on its own: a named city with a missing country
	// still resolves against the airport table.
	for _, f := range fields {
		if *f.value == "" {
			*f.value = f.def
			trace.Add("%s missing, defaulting to %s", f.name, f.def)
		}
	}
	return nil
}

// tryLiveQuote attempts the live provider path. ok=false means the caller
// should fall through to the route estimate; the reason is already traced.
func (u *PriceResolutionUseCase) tryLiveQuote(
	ctx context.Context,
	query entities.RouteQuery,
	fareClass entities.FareClass,
	trace *entities.DecisionTrace,
	quoteID string,
) (entities.PriceQuote, bool) {
	if query.TargetDate == nil {
		trace.Add("no target date provided, skipping live search")
		return entities.PriceQuote{}, false
	}
	if u.search == nil {
		trace.Add("flight search capability unavailable, skipping live search")
		return entities.PriceQuote{}, false
	}

	from, okFrom := u.locations.Resolve(query.DepartureCity, query.DepartureCountry)
	to, okTo := u.locations.Resolve(query.DestinationCity, query.DestinationCountry)
	if !okFrom || !okTo {
		trace.Add("missing airport codes (from=%s ok=%t, to=%s ok=%t)", from, okFrom, to, okTo)
		return entities.PriceQuote{}, false
	}
	trace.Add("airport codes: %s -> %s", from, to)

	departure := *query.TargetDate
	legs := []entities.FlightLeg{{Date: departure, Origin: from, Dest: to}}
	trip := entities.TripTypeOneWay
	if query.TravelDays > 0 {
		returnDate := departure.AddDate(0, 0, query.TravelDays)
		legs = append(legs, entities.FlightLeg{Date: returnDate, Origin: to, Dest: from})
		trip = entities.TripTypeRoundTrip
		trace.Add("dates: %s -> %s (round-trip)", departure.Format("2006-01-02"), returnDate.Format("2006-01-02"))
	} else {
		trace.Add("dates: %s (one-way)", departure.Format("2006-01-02"))
	}

	searchCtx, cancel := context.WithTimeout(ctx, u.searchTimeout)
	defer cancel()

	trace.Add("calling flight search provider")
	offers, err := u.search.Search(searchCtx, entities.FlightSearchQuery{
		Legs:       legs,
		Trip:       trip,
		FareClass:  fareClass,
		Passengers: query.Passengers,
	})
	if err != nil {
		log.Printf("[price][usecase] provider search failed quote_id=%s err=%v", quoteID, err)
		trace.Add("provider search failed: %v", err)
		return entities.PriceQuote{}, false
	}
	if len(offers) == 0 {
		trace.Add("provider returned no offers")
		return entities.PriceQuote{}, false
	}
	trace.Add("provider returned %d offer(s)", len(offers))

	route := fmt.Sprintf("%s to %s", query.DepartureCity, query.DestinationCity)
	searchURL := buildSearchURL(from.String(), to.String())

	best, money, ok := u.cheapestOffer(ctx, offers, trace)
	if ok {
		log.Printf("[price][usecase] resolved from live offer quote_id=%s price=%.2f airline=%q", quoteID, money.Amount, best.Airline)
		trace.Add("selected cheapest parsed offer at %.2f USD", money.Amount)
		return entities.PriceQuote{
			ID:        quoteID,
			Price:     money.Amount,
			Currency:  usdCode,
			Source:    entities.PriceSourceLive,
			Route:     route,
			FareClass: fareClass,
			Details:   offerDetails(best),
			SearchURL: searchURL,
			Trace:     trace.Steps(),
		}, true
	}

	// No offer price parsed: keep the first offer's details and price the
	// quote from the route table instead.
	first := offers[0]
	price := u.estimator.Estimate(query.DepartureCity, query.DestinationCity, fareClass)
	trace.Add("no offer price parseable, using route estimate %d USD with live flight details", price)
	log.Printf("[price][usecase] resolved from estimate with live details quote_id=%s price=%d", quoteID, price)
	return entities.PriceQuote{
		ID:        quoteID,
		Price:     float64(price),
		Currency:  usdCode,
		Source:    entities.PriceSourceLiveEstimatedDetails,
		Route:     route,
		FareClass: fareClass,
		Details:   offerDetails(first),
		SearchURL: searchURL,
		Trace:     trace.Steps(),
	}, true
}

// cheapestOffer normalizes every offer price to USD and returns the offer
// with the lowest converted amount. ok=false means no offer price parsed.
func (u *PriceResolutionUseCase) cheapestOffer(
	ctx context.Context,
	offers []entities.FlightOffer,
	trace *entities.DecisionTrace,
) (entities.FlightOffer, entities.Money, bool) {
	var (
		best  entities.FlightOffer
		money entities.Money
		found bool
	)
	for _, offer := range offers {
		m, ok := u.currency.ToUSD(ctx, offer.Price, trace)
		if !ok {
			continue
		}
		if !found || m.Amount < money.Amount {
			best, money, found = offer, m, true
		}
	}
	return best, money, found
}

// errorFallback is the last resort of the failure boundary: a conservative
// estimate from best-effort inputs.
func (u *PriceResolutionUseCase) errorFallback(query entities.RouteQuery, trace *entities.DecisionTrace, quoteID string) entities.PriceQuote {
	if query.DepartureCity == "" {
		query.DepartureCity = defaultDepartureCity
	}
	if query.DestinationCity == "" {
		query.DestinationCity = defaultDestinationCity
	}
	fareClass := NormalizeFareClass(query.FareClassRaw)
	price := u.estimator.Estimate(query.DepartureCity, query.DestinationCity, fareClass)
	trace.Add("error fallback estimate %d USD for %s to %s", price, query.DepartureCity, query.DestinationCity)

	return entities.PriceQuote{
		ID:        quoteID,
		Price:     float64(price),
		Currency:  usdCode,
		Source:    entities.PriceSourceErrorFallback,
		Route:     fmt.Sprintf("%s to %s", query.DepartureCity, query.DestinationCity),
		FareClass: fareClass,
		SearchURL: buildSearchURL(query.DepartureCity, query.DestinationCity),
		Trace:     trace.Steps(),
	}
}

// offerDetails copies the display attributes of an offer, substituting the
// Unknown sentinel for anything the provider omitted.
func offerDetails(offer entities.FlightOffer) *entities.FlightDetails {
	d := &entities.FlightDetails{
		Airline:   orUnknown(offer.Airline),
		Duration:  orUnknown(offer.Duration),
		Stops:     entities.UnknownField,
		Departure: orUnknown(offer.Departure),
		Arrival:   orUnknown(offer.Arrival),
	}
	if offer.Stops != nil {
		d.Stops = strconv.Itoa(*offer.Stops)
	}
	return d
}

func orUnknown(s string) string {
	if s == "" {
		return entities.UnknownField
	}
	return s
}

// buildSearchURL produces the human-searchable deep link included in every
// response, from airport codes when resolved and city names otherwise.
func buildSearchURL(from, to string) string {
	return "https://www.google.com/travel/flights?q=" + url.PathEscape(fmt.Sprintf("Flights from %s to %s", from, to))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Format("2006-01-02")
}
