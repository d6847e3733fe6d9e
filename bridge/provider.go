package bridge

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Provider quotes and executes transfers through one bridging protocol.
//
// GetQuote may return (nil, nil) when the provider has no offer for the
// route, as opposed to an error when quoting itself failed.
type Provider interface {
	Name() ProviderName
	// SupportsRoute answers from static route tables without network calls.
	SupportsRoute(srcChainID, dstChainID uint64, token common.Address) bool
	GetQuote(ctx context.Context, req *QuoteRequest) (*Quote, error)
	BuildTransaction(ctx context.Context, quote *Quote) (*BridgeTransaction, error)
	GetStatus(ctx context.Context, srcTxHash common.Hash, srcChainID uint64) (*BridgeReceipt, error)
}

// ReliabilityScores orders providers by historical settlement dependability.
var ReliabilityScores = map[ProviderName]int{
	ProviderAcross:   15,
	ProviderStargate: 12,
	ProviderHop:      10,
	ProviderCbridge:  10,
	ProviderSocket:   8,
}
