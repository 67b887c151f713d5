package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/metaadsspider/UrbanixStore/internal/config"
	apphttp "github.com/metaadsspider/UrbanixStore/internal/http"
	"github.com/metaadsspider/UrbanixStore/internal/http/cartcookie"
	"github.com/metaadsspider/UrbanixStore/internal/modules/cart"
	"github.com/metaadsspider/UrbanixStore/internal/modules/catalog"
	"github.com/metaadsspider/UrbanixStore/internal/modules/checkout"
	"github.com/metaadsspider/UrbanixStore/internal/modules/currency"
	"github.com/metaadsspider/UrbanixStore/internal/printify"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()
	if cfg.PrintifyToken == "" {
		// Not fatal: catalog routes answer with a configuration error until
		// the token is provided.
		logger.Warn("PRINTIFY_API_TOKEN not set, catalog routes will fail")
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	printifyClient := printify.NewClient(httpClient, cfg.PrintifyBaseURL, cfg.PrintifyToken, logger)
	catalogSvc := catalog.NewService(
		printifyClient,
		catalog.RetryPolicy{Retries: cfg.CatalogRetries, Backoff: 500 * time.Millisecond},
		cfg.CatalogCacheTTL,
		logger,
	)

	rateSource := currency.NewHTTPRateSource(httpClient, cfg.RateAPIURL)
	currencySvc := currency.NewService(rateSource, logger)

	cartSvc := cart.NewService()
	checkoutSvc := checkout.NewService(cfg.InstagramURL, currencySvc)
	cookie := cartcookie.New([]byte(cfg.CartCookieSecret), "urbanix_cart", cfg.CookieSecure)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	currencySvc.Start(ctx, cfg.RateRefreshInterval)

	r := apphttp.NewRouter(logger, apphttp.Deps{
		Catalog:  catalogSvc,
		Currency: currencySvc,
		Carts:    cartSvc,
		Checkout: checkoutSvc,
		Cookie:   cookie,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		logger.Info("server_started", slog.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", slog.Any("err", err))
	}
}
