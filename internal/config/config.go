package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr string

	PrintifyToken   string
	PrintifyBaseURL string

	RateAPIURL          string
	RateRefreshInterval time.Duration

	CatalogCacheTTL time.Duration
	CatalogRetries  int

	CartCookieSecret string
	CookieSecure     bool

	InstagramURL string
}

func Load() Config {
	return Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		PrintifyToken:   os.Getenv("PRINTIFY_API_TOKEN"),
		PrintifyBaseURL: getenv("PRINTIFY_BASE_URL", "https://api.printify.com"),

		RateAPIURL:          getenv("RATE_API_URL", "https://open.er-api.com/v6/latest/USD"),
		RateRefreshInterval: getduration("RATE_REFRESH_INTERVAL", time.Hour),

		CatalogCacheTTL: getduration("CATALOG_CACHE_TTL", 5*time.Minute),
		CatalogRetries:  getint("CATALOG_RETRIES", 2),

		CartCookieSecret: getenv("CART_COOKIE_SECRET", "dev-only-cart-secret"),
		CookieSecure:     getbool("COOKIE_SECURE", false),

		InstagramURL: getenv("INSTAGRAM_URL", "https://www.instagram.com/urbanixstore07"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
