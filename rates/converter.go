package rates

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
)

// Origin says where a resolved rate actually came from.
type Origin string

const (
	OriginLive   Origin = "live"
	OriginCache  Origin = "cache"
	OriginStatic Origin = "static"
)

// Rate is a resolved USD->quote conversion rate plus its provenance.
type Rate struct {
	Quote     string
	Value     float64
	Origin    Origin
	FetchedAt time.Time
}

// staticRates are the hardcoded fallbacks of last resort. Stale by
// definition, which is acceptable: the rate only formats display amounts
// and never feeds any decision.
var staticRates = map[string]float64{
	"USD": 1,
	"KRW": 1350,
	"EUR": 0.92,
	"JPY": 150,
	"GBP": 0.79,
	"AUD": 1.52,
	"VND": 25400,
}

// Converter resolves USD->quote display rates from a ranked source list,
// falling back to the last cached rate and finally to a static table.
//
// Sources are tried strictly in order within one Resolve call, so a slow
// loser can never overwrite a fresher winner.
type Converter struct {
	client  *resty.Client
	sources []Source
	cache   *Cache // optional
}

// Option configures a Converter.
type Option func(*Converter)

// WithSources replaces the default ranked source list.
func WithSources(sources []Source) Option {
	return func(c *Converter) { c.sources = sources }
}

// WithCache attaches a last-known-rate cache.
func WithCache(cache *Cache) Option {
	return func(c *Converter) { c.cache = cache }
}

// WithTimeout overrides the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) { c.client.SetTimeout(d) }
}

func NewConverter(opts ...Option) *Converter {
	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetHeader("Accept", "application/json")

	c := &Converter{
		client:  client,
		sources: DefaultSources(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns a usable USD->quote rate. It never fails: a total fetch
// outage degrades to the cached rate, then to the static table, then to
// identity.
func (c *Converter) Resolve(ctx context.Context, quote string) Rate {
	if quote == "" || quote == "USD" {
		return Rate{Quote: "USD", Value: 1, Origin: OriginStatic}
	}

	if rate, err := c.Fetch(ctx, quote); err == nil {
		return rate
	}

	if c.cache != nil {
		if value, fetchedAt, err := c.cache.Get(quote); err == nil {
			return Rate{Quote: quote, Value: value, Origin: OriginCache, FetchedAt: fetchedAt}
		}
	}

	value, ok := staticRates[quote]
	if !ok {
		value = 1
	}
	return Rate{Quote: quote, Value: value, Origin: OriginStatic}
}

// Fetch tries each source in order and returns the first usable live rate.
// Individual source failures are logged and swallowed; the error reports
// only total exhaustion.
func (c *Converter) Fetch(ctx context.Context, quote string) (Rate, error) {
	for _, src := range c.sources {
		if err := ctx.Err(); err != nil {
			return Rate{}, err
		}

		value, err := c.fetchOne(ctx, src, quote)
		if err != nil {
			log.Printf("rates: %s: %v", src.Name, err)
			continue
		}

		now := time.Now().UTC()
		if c.cache != nil {
			if err := c.cache.Put(quote, value, now); err != nil {
				log.Printf("rates: cache put %s: %v", quote, err)
			}
		}
		return Rate{Quote: quote, Value: value, Origin: OriginLive, FetchedAt: now}, nil
	}

	return Rate{}, fmt.Errorf("all %d rate sources failed for %s", len(c.sources), quote)
}

func (c *Converter) fetchOne(ctx context.Context, src Source, quote string) (float64, error) {
	resp, err := c.client.R().SetContext(ctx).Get(src.URL)
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, fmt.Errorf("status %s", resp.Status())
	}

	value := extractRate(resp.Body(), quote)
	if value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("no usable %s rate in response", quote)
	}
	return value, nil
}
