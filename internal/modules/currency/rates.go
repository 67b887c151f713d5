package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RateSource supplies the current USD→INR exchange rate.
type RateSource interface {
	USDToINR(ctx context.Context) (float64, error)
}

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPRateSource reads an open exchange-rate style payload:
// {"rates": {"INR": 83.12, ...}}.
type HTTPRateSource struct {
	doer Doer
	url  string
}

func NewHTTPRateSource(doer Doer, url string) *HTTPRateSource {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &HTTPRateSource{doer: doer, url: url}
}

func (s *HTTPRateSource) USDToINR(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.doer.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate source: status %d", resp.StatusCode)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, err
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return 0, fmt.Errorf("rate source: bad json: %w", err)
	}

	rate, ok := payload.Rates["INR"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("rate source: missing or invalid INR rate")
	}
	return rate, nil
}
