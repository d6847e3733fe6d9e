package bridge

import (
	"context"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

type TokenPricer interface {
	TokenPrice(symbol string) (float64, error)
}

type QuoteMetrics interface {
	TrackQuoteRequest()
	TrackProviderError()
	TrackRoutesServed(count int)
}

// Aggregator fans a quote request out to every registered provider and
// merges the answers into one ranked candidate list.
type Aggregator struct {
	providers []Provider
	cache     *QuoteCache
	pricer    TokenPricer
	metrics   QuoteMetrics
}

func NewAggregator(providers []Provider, cache *QuoteCache, pricer TokenPricer) *Aggregator {
	return &Aggregator{
		providers: providers,
		cache:     cache,
		pricer:    pricer,
	}
}

// WithMetrics enables instrumentation of quote traffic.
func (a *Aggregator) WithMetrics(metrics QuoteMetrics) *Aggregator {
	a.metrics = metrics
	return a
}

// GetRoutes returns every viable quote for the transfer, ordered by the
// request priority. Provider failures are logged and skipped so that one
// broken upstream does not take down the whole aggregation.
func (a *Aggregator) GetRoutes(ctx context.Context, req *QuoteRequest) ([]*Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !req.Force {
		if quotes, ok := a.cache.Routes(req); ok {
			ranked, err := Rank(quotes, req.Priority)
			if err == nil {
				return ranked, nil
			}
			// cached quotes all expired, requery providers
		}
	}

	p := pool.NewWithResults[*Quote]().WithContext(ctx)
	for _, provider := range a.providers {
		provider := provider
		if req.Excludes(provider.Name()) {
			continue
		}
		if !provider.SupportsRoute(req.SourceChainID, req.DestinationChainID, req.SourceToken) {
			continue
		}

		p.Go(func(ctx context.Context) (*Quote, error) {
			if a.metrics != nil {
				a.metrics.TrackQuoteRequest()
			}

			quote, err := provider.GetQuote(ctx, req)
			if err != nil {
				if a.metrics != nil {
					a.metrics.TrackProviderError()
				}
				log.Warn().Msgf("Provider %s failed to quote: %s", provider.Name(), err)
				return nil, nil
			}

			return quote, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	quotes := make([]*Quote, 0, len(results))
	for _, quote := range results {
		if quote == nil {
			continue
		}

		a.priceFees(quote)
		quotes = append(quotes, quote)
	}

	Tag(quotes)
	a.cache.StoreRoutes(req, quotes)
	if a.metrics != nil {
		a.metrics.TrackRoutesServed(len(quotes))
	}
	return Rank(quotes, req.Priority)
}

// FindBestRoute returns the top ranked quote or nil when no provider has an
// offer for the transfer.
func (a *Aggregator) FindBestRoute(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	quotes, err := a.GetRoutes(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, nil
	}

	return quotes[0], nil
}

// Quote resolves a previously aggregated quote by ID.
func (a *Aggregator) Quote(id string) (*Quote, error) {
	quote, err := a.cache.Quote(id)
	if err != nil {
		return nil, err
	}
	if quote.Expired(time.Now()) {
		return nil, ErrQuoteExpired
	}

	return quote, nil
}

// priceFees converts component fees denominated in the source token into a
// USD total. Quotes whose provider already reports a USD total keep it.
func (a *Aggregator) priceFees(quote *Quote) {
	if a.pricer == nil || quote.Fees.TotalUSD != 0 {
		return
	}

	componentTotal := quote.Fees.Total()
	if componentTotal.Sign() == 0 {
		return
	}

	price, err := a.pricer.TokenPrice(quote.SourceToken.Symbol)
	if err != nil {
		log.Warn().Msgf("Failed fetching %s price: %s", quote.SourceToken.Symbol, err)
		return
	}

	total := new(big.Float).SetInt(componentTotal)
	decimals := new(big.Float).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(int64(quote.SourceToken.Decimals)), nil,
	))
	usd, _ := new(big.Float).Quo(total, decimals).Float64()
	quote.Fees.TotalUSD = usd * price
}
