package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"flight_price_api/internal/usecase/interfaces"
)

const defaultBaseURL = "https://api.frankfurter.app"

// rateTimeout bounds the single live lookup; the caller falls back to static
// rates on any failure.
const rateTimeout = 5 * time.Second

// FrankfurterClient resolves live exchange rates from a Frankfurter-compatible
// rates API.
type FrankfurterClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IRateSource = (*FrankfurterClient)(nil)

func NewFrankfurterClient(baseURL string) *FrankfurterClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &FrankfurterClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: rateTimeout,
		},
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Rate fetches the from→to conversion factor. One attempt, no retries.
func (c *FrankfurterClient) Rate(ctx context.Context, from, to string) (float64, error) {
	endpoint := fmt.Sprintf("%s/latest?from=%s&to=%s", c.baseURL, url.QueryEscape(from), url.QueryEscape(to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("exchange: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("exchange: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("exchange: status %d: %s", resp.StatusCode, string(body))
	}

	var result ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("exchange: decode response: %w", err)
	}

	rate, ok := result.Rates[to]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("exchange: no %s rate in response", to)
	}
	log.Printf("[exchange][client] rate fetched from=%s to=%s rate=%.6f", from, to, rate)
	return rate, nil
}
