package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaadsspider/UrbanixStore/internal/printify"
	"github.com/metaadsspider/UrbanixStore/internal/shared/apperr"
)

type fakeAPI struct {
	shops    []printify.Shop
	shopsErr error

	products    []printify.Product
	productsErr error

	shopCalls    int
	productCalls int
}

func (f *fakeAPI) ListShops(ctx context.Context) ([]printify.Shop, error) {
	f.shopCalls++
	return f.shops, f.shopsErr
}

func (f *fakeAPI) ListProducts(ctx context.Context, shopID int64) ([]printify.Product, error) {
	f.productCalls++
	return f.products, f.productsErr
}

func newTestService(api printify.API, retries int) *Service {
	return NewService(api, RetryPolicy{Retries: retries}, time.Minute, nil)
}

func TestFetchEmptyShopList(t *testing.T) {
	svc := newTestService(&fakeAPI{shops: []printify.Shop{}}, 0)

	res, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Products)
	assert.NotNil(t, res.Products)
	assert.Nil(t, res.ShopID)
}

func TestFetchNormalizesProducts(t *testing.T) {
	api := &fakeAPI{
		shops: []printify.Shop{{ID: 42, Title: "Urbanix"}},
		products: []printify.Product{
			{ID: "p1", Title: "Tee", Variants: []printify.Variant{{ID: 1, Title: "M", Price: 1999, IsEnabled: true}}},
		},
	}
	svc := newTestService(api, 0)

	res, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res.ShopID)
	assert.Equal(t, "42", *res.ShopID)
	require.Len(t, res.Products, 1)
	assert.Equal(t, 19.99, res.Products[0].PriceUSD)
}

func TestFetchUpstreamFailureYieldsNoProducts(t *testing.T) {
	svc := newTestService(&fakeAPI{shopsErr: errors.New("boom")}, 0)

	res, err := svc.Fetch(context.Background())
	require.Error(t, err)
	assert.Empty(t, res.Products)

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Upstream, ae.Kind)
	assert.Equal(t, "Unable to load store information", ae.PublicMsg)
}

func TestFetchProductsFailureMessage(t *testing.T) {
	api := &fakeAPI{
		shops:       []printify.Shop{{ID: 1}},
		productsErr: errors.New("boom"),
	}
	svc := newTestService(api, 0)

	_, err := svc.Fetch(context.Background())
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Upstream, ae.Kind)
	assert.Equal(t, "Unable to load products", ae.PublicMsg)
}

func TestFetchMissingTokenIsConfigError(t *testing.T) {
	svc := newTestService(&fakeAPI{shopsErr: printify.ErrMissingToken}, 2)

	_, err := svc.Fetch(context.Background())
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Unavailable, ae.Kind)
	assert.Equal(t, "Service configuration error", ae.PublicMsg)
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	api := &fakeAPI{shopsErr: errors.New("boom")}
	svc := newTestService(api, 2)

	_, err := svc.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, api.shopCalls)
}

func TestFetchConfigErrorNotRetried(t *testing.T) {
	api := &fakeAPI{shopsErr: printify.ErrMissingToken}
	svc := newTestService(api, 2)

	_, err := svc.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, api.shopCalls)
}

func TestFetchServesCachedCopy(t *testing.T) {
	api := &fakeAPI{shops: []printify.Shop{{ID: 1}}}
	svc := newTestService(api, 0)

	_, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	_, err = svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, api.shopCalls)

	svc.Invalidate()
	_, err = svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, api.shopCalls)
}

func TestProductLookup(t *testing.T) {
	api := &fakeAPI{
		shops: []printify.Shop{{ID: 1}},
		products: []printify.Product{
			{ID: "p1", Title: "Tee"},
			{ID: "p2", Title: "Cap"},
		},
	}
	svc := newTestService(api, 0)

	p, err := svc.Product(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Cap", p.Title)

	_, err = svc.Product(context.Background(), "nope")
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}
