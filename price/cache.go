package price

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	PRICE_TTL = time.Minute * 5
)

type Pricer interface {
	TokenPrice(symbol string) (float64, error)
}

// CachedPricer memoizes upstream prices so repeated USD conversions inside
// the quote window do not hit the rate limited price API.
type CachedPricer struct {
	pricer Pricer
	cache  *ttlcache.Cache[string, float64]
}

func NewCachedPricer(pricer Pricer) *CachedPricer {
	cache := ttlcache.New(ttlcache.WithTTL[string, float64](PRICE_TTL))
	go cache.Start()

	return &CachedPricer{
		pricer: pricer,
		cache:  cache,
	}
}

func (p *CachedPricer) TokenPrice(symbol string) (float64, error) {
	item := p.cache.Get(symbol)
	if item != nil {
		return item.Value(), nil
	}

	price, err := p.pricer.TokenPrice(symbol)
	if err != nil {
		return 0, err
	}

	p.cache.Set(symbol, price, ttlcache.DefaultTTL)
	return price, nil
}

func (p *CachedPricer) Stop() {
	p.cache.Stop()
}
