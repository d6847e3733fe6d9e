package bridge

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	ROUTE_TTL = time.Second * 60
)

// QuoteCache keeps recently aggregated routes so repeated requests for the
// exact same transfer do not re-quote every provider. Individual quotes are
// additionally indexed by ID until they expire, so a quote handed out
// earlier can still be built into a transaction.
type QuoteCache struct {
	routeCache *ttlcache.Cache[string, []*Quote]
	quoteCache *ttlcache.Cache[string, *Quote]
}

func NewQuoteCache() *QuoteCache {
	routeCache := ttlcache.New(
		ttlcache.WithTTL[string, []*Quote](ROUTE_TTL),
	)
	quoteCache := ttlcache.New(
		ttlcache.WithTTL[string, *Quote](QuoteTTL),
	)

	go routeCache.Start()
	go quoteCache.Start()

	return &QuoteCache{
		routeCache: routeCache,
		quoteCache: quoteCache,
	}
}

func (c *QuoteCache) Routes(req *QuoteRequest) ([]*Quote, bool) {
	item := c.routeCache.Get(req.CacheKey())
	if item == nil {
		return nil, false
	}

	return item.Value(), true
}

func (c *QuoteCache) StoreRoutes(req *QuoteRequest, quotes []*Quote) {
	c.routeCache.Set(req.CacheKey(), quotes, ttlcache.DefaultTTL)
	for _, q := range quotes {
		c.quoteCache.Set(q.ID, q, time.Until(q.ExpiresAt))
	}
}

func (c *QuoteCache) Quote(id string) (*Quote, error) {
	item := c.quoteCache.Get(id)
	if item == nil {
		return nil, ErrQuoteNotFound
	}

	return item.Value(), nil
}

func (c *QuoteCache) Stop() {
	c.routeCache.Stop()
	c.quoteCache.Stop()
}
