package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/metaadsspider/UrbanixStore/internal/printify"
	"github.com/metaadsspider/UrbanixStore/internal/shared/apperr"
)

// Client-facing messages. Upstream detail never leaves the server logs.
const (
	msgConfigError   = "Service configuration error"
	msgShopsError    = "Unable to load store information"
	msgProductsError = "Unable to load products"
	msgNotFound      = "Product not found"
)

// RetryPolicy controls re-attempts for transient upstream failures.
type RetryPolicy struct {
	Retries int
	Backoff time.Duration
}

// FetchResult is the proxy response contract. ShopID is nil when upstream
// reports no shops; that case is a success with an empty product list.
type FetchResult struct {
	Products []Product `json:"products"`
	ShopID   *string   `json:"shopId"`
}

type Service struct {
	api   printify.API
	log   *slog.Logger
	retry RetryPolicy
	ttl   time.Duration

	mu        sync.Mutex
	cached    *FetchResult
	fetchedAt time.Time
}

func NewService(api printify.API, retry RetryPolicy, ttl time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{api: api, log: logger, retry: retry, ttl: ttl}
}

// Fetch returns the normalized catalog, serving a briefly cached copy when
// fresh enough. A failed fetch yields no products at all.
func (s *Service) Fetch(ctx context.Context) (FetchResult, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		res := *s.cached
		s.mu.Unlock()
		return res, nil
	}
	s.mu.Unlock()

	res, err := s.fetchWithRetry(ctx)
	if err != nil {
		return FetchResult{}, err
	}

	s.mu.Lock()
	s.cached = &res
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return res, nil
}

// Product looks up one normalized product by its upstream id.
func (s *Service) Product(ctx context.Context, id string) (Product, error) {
	res, err := s.Fetch(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range res.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, apperr.NotFoundErr(msgNotFound)
}

// Invalidate drops the cached catalog so the next Fetch hits upstream.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *Service) fetchWithRetry(ctx context.Context) (FetchResult, error) {
	attempts := s.retry.Retries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			s.log.Warn("catalog_fetch_retry", slog.Int("attempt", i+1), slog.Any("err", lastErr))
			if s.retry.Backoff > 0 {
				select {
				case <-ctx.Done():
					return FetchResult{}, apperr.UpstreamErr(msgProductsError, ctx.Err())
				case <-time.After(s.retry.Backoff):
				}
			}
		}

		res, err := s.fetchOnce(ctx)
		if err == nil {
			return res, nil
		}
		lastErr = err

		// Configuration errors never heal on retry.
		if ae, ok := apperr.As(err); ok && ae.Kind == apperr.Unavailable {
			return FetchResult{}, err
		}
	}
	return FetchResult{}, lastErr
}

func (s *Service) fetchOnce(ctx context.Context) (FetchResult, error) {
	shops, err := s.api.ListShops(ctx)
	if err != nil {
		if errors.Is(err, printify.ErrMissingToken) {
			return FetchResult{}, apperr.UnavailableErr(msgConfigError, err)
		}
		return FetchResult{}, apperr.UpstreamErr(msgShopsError, err)
	}

	if len(shops) == 0 {
		s.log.Info("catalog_no_shops")
		return FetchResult{Products: []Product{}, ShopID: nil}, nil
	}

	shopID := shops[0].ID
	raw, err := s.api.ListProducts(ctx, shopID)
	if err != nil {
		return FetchResult{}, apperr.UpstreamErr(msgProductsError, err)
	}

	products := make([]Product, 0, len(raw))
	for _, rp := range raw {
		products = append(products, Normalize(rp))
	}

	id := strconv.FormatInt(shopID, 10)
	s.log.Info("catalog_fetched",
		slog.String("shop_id", id),
		slog.Int("products", len(products)),
	)
	return FetchResult{Products: products, ShopID: &id}, nil
}
