package printify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const maxBodyBytes = 4 * 1024 * 1024

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// API is the surface the catalog service consumes.
type API interface {
	ListShops(ctx context.Context) ([]Shop, error)
	ListProducts(ctx context.Context, shopID int64) ([]Product, error)
}

type Client struct {
	doer    Doer
	baseURL string
	token   string
	log     *slog.Logger
}

func NewClient(doer Doer, baseURL, token string, logger *slog.Logger) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = "https://api.printify.com"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		doer:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		log:     logger,
	}
}

func (c *Client) ListShops(ctx context.Context) ([]Shop, error) {
	var shops []Shop
	if err := c.getJSON(ctx, "/v1/shops.json", &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

func (c *Client) ListProducts(ctx context.Context, shopID int64) ([]Product, error) {
	var page productsPage
	path := fmt.Sprintf("/v1/shops/%d/products.json", shopID)
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c.token == "" {
		return ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("printify_request_failed",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(b[:min(len(b), 1024)])),
		)
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(b[:min(len(b), 1024)]))}
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("printify: bad json from %s: %w", path, err)
	}
	return nil
}
