package bridge

import (
	"context"
	"fmt"
	"time"
)

// Builder turns an accepted quote into a signable transaction. Building the
// same quote twice yields byte-identical calldata because providers encode
// the contract call at quote time.
type Builder struct {
	providers map[ProviderName]Provider
	quotes    QuoteStore
}

type QuoteStore interface {
	Quote(id string) (*Quote, error)
}

func NewBuilder(providers []Provider, quotes QuoteStore) *Builder {
	byName := make(map[ProviderName]Provider)
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &Builder{
		providers: byName,
		quotes:    quotes,
	}
}

func (b *Builder) BuildTransaction(ctx context.Context, quoteID string) (*BridgeTransaction, error) {
	quote, err := b.quotes.Quote(quoteID)
	if err != nil {
		return nil, err
	}

	return b.Build(ctx, quote)
}

func (b *Builder) Build(ctx context.Context, quote *Quote) (*BridgeTransaction, error) {
	if quote.Expired(time.Now()) {
		return nil, fmt.Errorf("quote %s: %w", quote.ID, ErrQuoteExpired)
	}

	provider, ok := b.providers[quote.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, quote.Provider)
	}

	tx, err := provider.BuildTransaction(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("building %s transaction: %w", quote.Provider, err)
	}

	return tx, nil
}
