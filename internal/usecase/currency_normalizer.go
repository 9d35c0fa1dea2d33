package usecase

import (
	"context"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"flight_price_api/internal/domain/entities"
	"flight_price_api/internal/usecase/interfaces"
)

const usdCode = "USD"

// pricePattern is one recognizer in the ordered precedence list. Either
// currency is fixed (symbol patterns) or the pattern captures the ISO code
// in its own group.
type pricePattern struct {
	re       *regexp.Regexp
	currency string // fixed currency; empty when captured by the pattern
	codeIdx  int    // capture index of the ISO code when currency is empty
	amtIdx   int    // capture index of the numeric amount
}

// Tried strictly in order; the first match wins and no further patterns are
// considered.
var pricePatterns = []pricePattern{
	{re: regexp.MustCompile(`(?i)\b([A-Z]{3})\s*([0-9][0-9,]*(?:\.[0-9]+)?)`), codeIdx: 1, amtIdx: 2},
	{re: regexp.MustCompile(`\$\s*([0-9][0-9,]*(?:\.[0-9]+)?)`), currency: "USD", amtIdx: 1},
	{re: regexp.MustCompile(`€\s*([0-9][0-9,]*(?:\.[0-9]+)?)`), currency: "EUR", amtIdx: 1},
	{re: regexp.MustCompile(`£\s*([0-9][0-9,]*(?:\.[0-9]+)?)`), currency: "GBP", amtIdx: 1},
	{re: regexp.MustCompile(`¥\s*([0-9][0-9,]*(?:\.[0-9]+)?)`), currency: "JPY", amtIdx: 1},
	{re: regexp.MustCompile(`(?i)([0-9][0-9,]*(?:\.[0-9]+)?)\s*([A-Z]{3})\b`), codeIdx: 2, amtIdx: 1},
}

var bareNumberPattern = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)

// CurrencyNormalizer parses raw provider prices into a currency and amount
// and converts the result to USD.
//
// Conversion ladder per currency:
//  1. one live lookup through the rate source (bounded by the caller's ctx
//     plus the client's own timeout);
//  2. the static fallback rate table;
//  3. factor 1.0 — the amount is treated as already being USD. This is a
//     deliberate worst-case fallback and is recorded in the trace.
type CurrencyNormalizer struct {
	rates         interfaces.IRateSource
	fallbackRates map[string]float64
}

func NewCurrencyNormalizer(rates interfaces.IRateSource, fallbackRates map[string]float64) *CurrencyNormalizer {
	return &CurrencyNormalizer{rates: rates, fallbackRates: fallbackRates}
}

// ToUSD converts a raw offer price to USD. ok=false means the raw value held
// no numeric content at all; a price that parses always converts.
//
// Numeric raw prices are assumed pre-denominated in USD and pass through
// without conversion.
func (n *CurrencyNormalizer) ToUSD(ctx context.Context, raw entities.RawPrice, trace *entities.DecisionTrace) (entities.Money, bool) {
	if raw.Amount != nil {
		amount := round2(*raw.Amount)
		if amount < 0 {
			trace.Add("price rejected: negative numeric amount %.2f", *raw.Amount)
			return entities.Money{}, false
		}
		trace.Add("numeric price %.2f taken as USD", amount)
		return entities.Money{Currency: usdCode, Amount: amount}, true
	}

	text := strings.TrimSpace(raw.Text)
	if text == "" {
		return entities.Money{}, false
	}

	currency, amount, ok := extractPrice(text)
	if !ok {
		trace.Add("price %q has no numeric content", text)
		return entities.Money{}, false
	}
	trace.Add("price %q parsed as %s %.2f", text, currency, amount)

	if currency != usdCode {
		rate := n.rate(ctx, currency, trace)
		amount *= rate
	}
	return entities.Money{Currency: usdCode, Amount: round2(amount)}, true
}

func extractPrice(text string) (currency string, amount float64, ok bool) {
	for _, p := range pricePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		currency = p.currency
		if currency == "" {
			currency = strings.ToUpper(m[p.codeIdx])
		}
		amount, ok = parseAmount(m[p.amtIdx])
		return currency, amount, ok
	}

	// No currency indicator; a bare number is assumed to be USD.
	if m := bareNumberPattern.FindString(text); m != "" {
		amount, ok = parseAmount(m)
		return usdCode, amount, ok
	}
	return "", 0, false
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// rate resolves the currency→USD conversion factor through the fallback
// ladder. It never fails.
func (n *CurrencyNormalizer) rate(ctx context.Context, currency string, trace *entities.DecisionTrace) float64 {
	if n.rates != nil {
		rate, err := n.rates.Rate(ctx, currency, usdCode)
		if err == nil && rate > 0 {
			trace.Add("live exchange rate %s->USD = %.6f", currency, rate)
			return rate
		}
		log.Printf("[currency][usecase] live rate lookup failed currency=%s err=%v", currency, err)
		trace.Add("live exchange rate lookup failed for %s, using static rates", currency)
	}

	if rate, ok := n.fallbackRates[currency]; ok {
		trace.Add("static exchange rate %s->USD = %.6f", currency, rate)
		return rate
	}

	trace.Add("no rate known for %s, converting at 1.0", currency)
	return 1.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
