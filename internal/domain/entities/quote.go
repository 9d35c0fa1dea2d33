package entities

import "fmt"

// PriceSource labels which tier of the fallback ladder produced the price.
type PriceSource string

const (
	// PriceSourceLive means the price was taken from a parsed provider offer.
	PriceSourceLive PriceSource = "live"
	// PriceSourceLiveEstimatedDetails means a provider offer supplied the
	// flight details but its price could not be parsed, so the price itself
	// came from the route estimator.
	PriceSourceLiveEstimatedDetails PriceSource = "live-estimated-details"
	// PriceSourceEstimated means the whole result came from the static
	// route table.
	PriceSourceEstimated PriceSource = "estimated"
	// PriceSourceErrorFallback means an unexpected failure was swallowed and
	// a conservative estimate returned instead.
	PriceSourceErrorFallback PriceSource = "error-fallback"
)

// UnknownField is rendered for any offer attribute the provider omitted.
const UnknownField = "Unknown"

// FlightDetails carries the display attributes of the offer that informed a
// live or live-estimated-details result.
type FlightDetails struct {
	Airline   string
	Duration  string
	Stops     string
	Departure string
	Arrival   string
}

// PriceQuote is the single result of one pipeline run. It is constructed
// once, serialized, and discarded; nothing mutates it afterwards.
type PriceQuote struct {
	ID        string
	Price     float64
	Currency  string
	Source    PriceSource
	Route     string
	FareClass FareClass
	Details   *FlightDetails
	SearchURL string
	Trace     []string
}

// DecisionTrace is the append-only log of what the pipeline attempted and
// decided during a single request. It is local to one request and is never
// shared across requests; no locking is needed.
type DecisionTrace struct {
	steps []string
}

func NewDecisionTrace() *DecisionTrace {
	return &DecisionTrace{}
}

// Add appends one formatted step to the trace.
func (t *DecisionTrace) Add(format string, args ...any) {
	t.steps = append(t.steps, fmt.Sprintf(format, args...))
}

// Steps returns the recorded entries in insertion order.
func (t *DecisionTrace) Steps() []string {
	return t.steps
}
