package entities

// AirportEntry maps one (city, country) pair to its location code.
type AirportEntry struct {
	City    string
	Country string
	Code    LocationCode
}

// RouteEntry is one directed edge of the static route-price table.
// The table is not auto-symmetrized; both directions must be listed
// explicitly where applicable.
type RouteEntry struct {
	FromCity string
	ToCity   string
	PriceUSD int
}

// DefaultAirportEntries is the built-in airport table, used whenever no
// external reference-data source is configured or its load fails.
func DefaultAirportEntries() []AirportEntry {
	return []AirportEntry{
		{City: "Manila", Country: "Philippines", Code: "MNL"},
		{City: "Tokyo", Country: "Japan", Code: "NRT"},
		{City: "Seoul", Country: "Korea", Code: "ICN"},
		{City: "Hong Kong", Country: "Hong Kong, China", Code: "HKG"},
		{City: "Bangkok", Country: "Thailand", Code: "BKK"},
		{City: "Singapore", Country: "Singapore", Code: "SIN"},
		{City: "Sydney", Country: "Australia", Code: "SYD"},
		{City: "London", Country: "United Kingdom", Code: "LHR"},
		{City: "New York", Country: "United States", Code: "JFK"},
	}
}

// DefaultRouteEntries is the built-in route-price table in USD.
func DefaultRouteEntries() []RouteEntry {
	return []RouteEntry{
		{FromCity: "Manila", ToCity: "Tokyo", PriceUSD: 650},
		{FromCity: "Manila", ToCity: "Seoul", PriceUSD: 580},
		{FromCity: "Manila", ToCity: "Hong Kong", PriceUSD: 300},
		{FromCity: "Manila", ToCity: "Singapore", PriceUSD: 350},
		{FromCity: "Manila", ToCity: "Bangkok", PriceUSD: 400},
		{FromCity: "Manila", ToCity: "Sydney", PriceUSD: 800},
		{FromCity: "Manila", ToCity: "London", PriceUSD: 1200},
		{FromCity: "Manila", ToCity: "New York", PriceUSD: 1400},
		{FromCity: "Tokyo", ToCity: "Manila", PriceUSD: 650},
		{FromCity: "Seoul", ToCity: "Manila", PriceUSD: 580},
	}
}

// DefaultRouteBasePriceUSD is charged for any route pair not in the table.
const DefaultRouteBasePriceUSD = 750

// DefaultFallbackRates are approximate X→USD conversion factors used when
// the live exchange-rate lookup fails. They are intentionally coarse; the
// live lookup is always attempted first.
func DefaultFallbackRates() map[string]float64 {
	return map[string]float64{
		"EUR": 1.09,
		"GBP": 1.27,
		"JPY": 0.0067,
		"SGD": 0.74,
		"AUD": 0.66,
		"HKD": 0.13,
		"THB": 0.028,
		"KRW": 0.00075,
		"PHP": 0.018,
		"CNY": 0.14,
	}
}
