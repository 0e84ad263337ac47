package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_FirstSourceWins(t *testing.T) {
	t.Parallel()

	first := rateServer(t, http.StatusOK, `{"rates":{"KRW":1384.5}}`)
	second := rateServer(t, http.StatusOK, `{"rates":{"KRW":9999}}`)

	c := NewConverter(WithSources([]Source{
		{Name: "first", URL: first.URL},
		{Name: "second", URL: second.URL},
	}))

	rate, err := c.Fetch(context.Background(), "KRW")
	require.NoError(t, err)
	assert.InDelta(t, 1384.5, rate.Value, 1e-9)
	assert.Equal(t, OriginLive, rate.Origin)
}

func TestFetch_FallsThroughFailingSources(t *testing.T) {
	t.Parallel()

	down := rateServer(t, http.StatusInternalServerError, `oops`)
	empty := rateServer(t, http.StatusOK, `{"rates":{"EUR":0.91}}`) // no KRW
	good := rateServer(t, http.StatusOK, `{"conversion_rates":{"KRW":1380}}`)

	c := NewConverter(WithSources([]Source{
		{Name: "down", URL: down.URL},
		{Name: "empty", URL: empty.URL},
		{Name: "good", URL: good.URL},
	}))

	rate, err := c.Fetch(context.Background(), "KRW")
	require.NoError(t, err)
	assert.InDelta(t, 1380.0, rate.Value, 1e-9)
}

func TestFetch_AllSourcesDown(t *testing.T) {
	t.Parallel()

	down := rateServer(t, http.StatusBadGateway, ``)
	c := NewConverter(WithSources([]Source{{Name: "down", URL: down.URL}}))

	_, err := c.Fetch(context.Background(), "KRW")
	assert.Error(t, err)
}

func TestFetch_RejectsGarbageRates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>`},
		{"zero rate", `{"rates":{"KRW":0}}`},
		{"negative rate", `{"rates":{"KRW":-3}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := rateServer(t, http.StatusOK, tt.body)
			c := NewConverter(WithSources([]Source{{Name: "bad", URL: srv.URL}}))
			_, err := c.Fetch(context.Background(), "KRW")
			assert.Error(t, err)
		})
	}
}

func TestFetch_ContextCancelledBetweenAttempts(t *testing.T) {
	t.Parallel()

	srv := rateServer(t, http.StatusOK, `{"rates":{"KRW":1380}}`)
	c := NewConverter(WithSources([]Source{{Name: "src", URL: srv.URL}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, "KRW")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolve_FallbackLadder(t *testing.T) {
	t.Parallel()

	down := rateServer(t, http.StatusServiceUnavailable, ``)

	cache, err := NewCache(filepath.Join(t.TempDir(), "rates.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	c := NewConverter(
		WithSources([]Source{{Name: "down", URL: down.URL}}),
		WithCache(cache),
	)

	// Nothing cached yet: static table.
	rate := c.Resolve(context.Background(), "KRW")
	assert.Equal(t, OriginStatic, rate.Origin)
	assert.InDelta(t, 1350.0, rate.Value, 1e-9)

	// With a cached value the outage degrades to the previously held rate.
	require.NoError(t, cache.Put("KRW", 1391.25, time.Now()))
	rate = c.Resolve(context.Background(), "KRW")
	assert.Equal(t, OriginCache, rate.Origin)
	assert.InDelta(t, 1391.25, rate.Value, 1e-9)
}

func TestResolve_USDIsIdentity(t *testing.T) {
	t.Parallel()

	c := NewConverter(WithSources(nil))

	for _, quote := range []string{"", "USD"} {
		rate := c.Resolve(context.Background(), quote)
		assert.InDelta(t, 1.0, rate.Value, 1e-12)
	}
}

func TestResolve_UnknownQuoteDefaultsToIdentity(t *testing.T) {
	t.Parallel()

	c := NewConverter(WithSources(nil))
	rate := c.Resolve(context.Background(), "XYZ")
	assert.Equal(t, OriginStatic, rate.Origin)
	assert.InDelta(t, 1.0, rate.Value, 1e-12)
}
