package currency

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/metaadsspider/UrbanixStore/internal/shared/apperr"
)

const (
	USD = "USD"
	INR = "INR"

	// FallbackINRRate keeps prices displayable before the first successful
	// rate fetch and across failed refreshes. Never reset to zero.
	FallbackINRRate = 83.0
)

// State is a read snapshot of the display layer.
type State struct {
	Currency      string     `json:"currency"`
	ExchangeRate  float64    `json:"exchangeRate"`
	IsLoadingRate bool       `json:"isLoadingRate"`
	LastUpdated   *time.Time `json:"lastUpdated"`
}

type Service struct {
	source RateSource
	log    *slog.Logger

	mu          sync.Mutex
	currency    string
	rate        float64
	loading     bool
	lastUpdated *time.Time
}

// inrPrinter applies en-IN digit grouping (1,65,917).
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

func NewService(source RateSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:   source,
		log:      logger,
		currency: INR,
		rate:     FallbackINRRate,
	}
}

// Start refreshes the rate immediately, then on every tick until ctx is
// cancelled. Cancellation must stop the loop so no update lands after the
// owner is gone.
func (s *Service) Start(ctx context.Context, interval time.Duration) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	go func() {
		s.Refresh(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Refresh(ctx)
			}
		}
	}()
}

// Refresh fetches a fresh rate. Failures keep the last known good value
// (sticky fallback) and are logged, never surfaced.
func (s *Service) Refresh(ctx context.Context) {
	rate, err := s.source.USDToINR(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.log.Warn("rate_fetch_failed",
			slog.Any("err", err),
			slog.Float64("keeping_rate", s.rate),
		)
		return
	}

	now := time.Now()
	s.rate = rate
	s.lastUpdated = &now
	s.log.Info("rate_updated", slog.Float64("usd_inr", rate))
}

// Select switches the active display currency.
func (s *Service) Select(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != USD && code != INR {
		return apperr.InvalidErr("Unsupported currency", map[string]string{"currency": "must be USD or INR"})
	}
	s.mu.Lock()
	s.currency = code
	s.mu.Unlock()
	return nil
}

// Convert maps a USD amount into the active display currency. No rounding
// here; Format owns presentation.
func (s *Service) Convert(amountUSD float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currency == INR {
		return amountUSD * s.rate
	}
	return amountUSD
}

// Format renders a USD amount for display. USD: $ with two decimals. INR:
// ₹ rounded to whole rupees with en-IN grouping. Stored values stay in USD.
func (s *Service) Format(amountUSD float64) string {
	s.mu.Lock()
	cur := s.currency
	rate := s.rate
	s.mu.Unlock()

	if cur == INR {
		rupees := int64(math.Round(amountUSD * rate))
		return "₹" + inrPrinter.Sprintf("%d", rupees)
	}
	return fmt.Sprintf("$%.2f", amountUSD)
}

func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Currency:      s.currency,
		ExchangeRate:  s.rate,
		IsLoadingRate: s.loading,
		LastUpdated:   s.lastUpdated,
	}
}
