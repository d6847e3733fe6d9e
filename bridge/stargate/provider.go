package stargate

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sweeplabs/sweep-bridging/bridge"
	"github.com/sweeplabs/sweep-bridging/config"
)

const (
	DEFAULT_ESTIMATED_TIME = time.Minute * 5
	SWAP_GAS_LIMIT         = 400000
)

type lzTxObj struct {
	DstGasForCall   *big.Int
	DstNativeAmount *big.Int
	DstNativeAddr   []byte
}

// StargateProvider bridges through Stargate liquidity pools over LayerZero
// messaging. When the quote API is unavailable it falls back to the typical
// 0.06% pool fee estimate.
type StargateProvider struct {
	api        *StargateAPI
	tokenStore config.TokenStore
}

func NewStargateProvider(api *StargateAPI, tokenStore config.TokenStore) *StargateProvider {
	return &StargateProvider{
		api:        api,
		tokenStore: tokenStore,
	}
}

func (p *StargateProvider) Name() bridge.ProviderName {
	return bridge.ProviderStargate
}

func (p *StargateProvider) SupportsRoute(srcChainID, dstChainID uint64, token common.Address) bool {
	if _, ok := Routers[srcChainID]; !ok {
		return false
	}
	if _, ok := Routers[dstChainID]; !ok {
		return false
	}

	symbol := p.symbol(srcChainID, token)
	if symbol == "" {
		return false
	}

	_, srcOk := PoolIDs[srcChainID][symbol]
	_, dstOk := PoolIDs[dstChainID][symbol]
	return srcOk && dstOk
}

func (p *StargateProvider) GetQuote(ctx context.Context, req *bridge.QuoteRequest) (*bridge.Quote, error) {
	router, ok := Routers[req.SourceChainID]
	if !ok {
		return nil, nil
	}
	endpointID, ok := EndpointIDs[req.DestinationChainID]
	if !ok {
		return nil, nil
	}

	symbol := p.symbol(req.SourceChainID, req.SourceToken)
	if symbol == "" {
		return nil, nil
	}
	srcPoolID, srcOk := PoolIDs[req.SourceChainID][symbol]
	dstPoolID, dstOk := PoolIDs[req.DestinationChainID][symbol]
	if !srcOk || !dstOk {
		return nil, nil
	}

	slippage := req.SlippageOrDefault()
	outputAmount, fees, estimatedTime := p.quoteAmounts(ctx, req, srcPoolID, dstPoolID)
	if outputAmount.Sign() <= 0 {
		return nil, nil
	}
	minOutput := bridge.ApplySlippage(outputAmount, slippage)

	calldata, err := RouterABI.Pack(
		"swap",
		endpointID,
		big.NewInt(srcPoolID),
		big.NewInt(dstPoolID),
		req.Sender,
		req.Amount,
		minOutput,
		lzTxObj{
			DstGasForCall:   big.NewInt(0),
			DstNativeAmount: big.NewInt(0),
			DstNativeAddr:   []byte{},
		},
		common.LeftPadBytes(req.Recipient.Bytes(), 32),
		[]byte{},
	)
	if err != nil {
		return nil, fmt.Errorf("packing swap: %w", err)
	}

	// The messaging fee rides along as native value.
	value := big.NewInt(0)
	if fees.GasFee != nil {
		value = fees.GasFee
	}

	now := time.Now()
	return &bridge.Quote{
		ID:               bridge.QuoteID(bridge.ProviderStargate, req.SourceChainID, req.DestinationChainID, calldata),
		Provider:         bridge.ProviderStargate,
		SourceToken:      p.token(req.SourceChainID, req.SourceToken),
		DestinationToken: p.token(req.DestinationChainID, req.DestinationToken),
		InputAmount:      req.Amount,
		OutputAmount:     outputAmount,
		MinOutputAmount:  minOutput,
		Fees:             fees,
		EstimatedTime:    estimatedTime,
		Steps: []bridge.Step{
			{
				Type:           bridge.StepBridge,
				ChainID:        req.SourceChainID,
				Protocol:       "Stargate V2",
				FromToken:      req.SourceToken,
				ToToken:        req.DestinationToken,
				Amount:         req.Amount,
				ExpectedOutput: outputAmount,
			},
		},
		Call: &bridge.ContractCall{
			To:       router,
			Data:     calldata,
			Value:    value,
			GasLimit: SWAP_GAS_LIMIT,
		},
		Approval: &bridge.Approval{
			Token:   req.SourceToken,
			Spender: router,
			Amount:  req.Amount,
		},
		IssuedAt:  now,
		ExpiresAt: now.Add(bridge.QuoteTTL),
	}, nil
}

func (p *StargateProvider) quoteAmounts(ctx context.Context, req *bridge.QuoteRequest, srcPoolID, dstPoolID int64) (*big.Int, bridge.Fees, time.Duration) {
	quote, err := p.api.Quote(ctx, req.SourceChainID, req.DestinationChainID, srcPoolID, dstPoolID, req.Amount)
	if err == nil {
		estimatedTime := DEFAULT_ESTIMATED_TIME
		if quote.ExpectedTime > 0 {
			estimatedTime = time.Duration(quote.ExpectedTime) * time.Second
		}

		return quote.MinAmountLD.Int, bridge.Fees{
			BridgeFee:  quote.ProtocolFee.Int,
			GasFee:     quote.LzFee.Int,
			RelayerFee: big.NewInt(0),
		}, estimatedTime
	}

	log.Warn().Msgf("Stargate quote API unavailable, falling back to estimate: %s", err)

	estimatedFee := new(big.Int).Div(new(big.Int).Mul(req.Amount, big.NewInt(6)), big.NewInt(10000))
	outputAmount := new(big.Int).Sub(req.Amount, estimatedFee)
	return outputAmount, bridge.Fees{
		BridgeFee:  new(big.Int).Div(estimatedFee, big.NewInt(2)),
		GasFee:     new(big.Int).Div(estimatedFee, big.NewInt(4)),
		RelayerFee: new(big.Int).Div(estimatedFee, big.NewInt(4)),
	}, DEFAULT_ESTIMATED_TIME
}

func (p *StargateProvider) BuildTransaction(ctx context.Context, quote *bridge.Quote) (*bridge.BridgeTransaction, error) {
	if quote.Provider != bridge.ProviderStargate {
		return nil, fmt.Errorf("%w: %s", bridge.ErrProviderMismatch, quote.Provider)
	}

	now := time.Now()
	return &bridge.BridgeTransaction{
		ID:                 fmt.Sprintf("tx-%s", quote.ID),
		Provider:           bridge.ProviderStargate,
		QuoteID:            quote.ID,
		Quote:              quote,
		SourceChainID:      quote.SourceToken.ChainID,
		DestinationChainID: quote.DestinationToken.ChainID,
		To:                 quote.Call.To,
		Data:               quote.Call.Data,
		Value:              quote.Call.Value,
		GasLimit:           quote.Call.GasLimit,
		Approval:           quote.Approval,
		Status:             bridge.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

func (p *StargateProvider) GetStatus(ctx context.Context, srcTxHash common.Hash, srcChainID uint64) (*bridge.BridgeReceipt, error) {
	status, err := p.api.MessageStatus(ctx, srcTxHash)
	if err != nil {
		return nil, fmt.Errorf("fetching message status: %w", err)
	}

	receipt := &bridge.BridgeReceipt{
		Provider:           bridge.ProviderStargate,
		Status:             mapStatus(status.StatusName),
		SourceTxHash:       srcTxHash,
		SourceChainID:      srcChainID,
		DestinationChainID: ChainIDByEndpoint(status.DstChainID),
	}
	if status.SrcBlockNumber > 0 {
		receipt.SourceConfirmations = 12
	}
	if status.DstTxHash != "" {
		receipt.DestinationTxHash = common.HexToHash(status.DstTxHash)
	}
	if status.DstBlockNumber > 0 {
		receipt.DestinationConfirmations = 1
	}
	return receipt, nil
}

func mapStatus(raw string) bridge.Status {
	switch strings.ToLower(raw) {
	case "delivered":
		return bridge.StatusCompleted
	case "inflight":
		return bridge.StatusBridging
	case "failed":
		return bridge.StatusFailed
	default:
		log.Warn().Msgf("Unknown LayerZero message status %s", raw)
		return bridge.StatusPending
	}
}

func (p *StargateProvider) symbol(chainID uint64, token common.Address) string {
	if bridge.IsNativeToken(token) {
		return "ETH"
	}

	symbol, _, err := p.tokenStore.ConfigByAddress(chainID, token)
	if err != nil {
		return ""
	}
	return symbol
}

func (p *StargateProvider) token(chainID uint64, address common.Address) bridge.Token {
	token := bridge.Token{
		Address:  address,
		ChainID:  chainID,
		Decimals: 18,
	}

	symbol, c, err := p.tokenStore.ConfigByAddress(chainID, address)
	if err != nil {
		return token
	}

	token.Symbol = symbol
	token.Decimals = c.Decimals
	return token
}
