package socket

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"

	"github.com/sweeplabs/sweep-bridging/bridge"
)

const (
	DEFAULT_GAS_LIMIT = uint64(500000)
)

var SupportedChains = map[uint64]struct{}{
	1:     {},
	10:    {},
	56:    {},
	137:   {},
	8453:  {},
	42161: {},
	59144: {},
}

// SocketProvider aggregates third party bridges behind the Socket gateway.
// Calldata is resolved while quoting so a quote fully describes the
// transaction it will produce.
type SocketProvider struct {
	api *SocketAPI
}

func NewSocketProvider(api *SocketAPI) *SocketProvider {
	return &SocketProvider{
		api: api,
	}
}

func (p *SocketProvider) Name() bridge.ProviderName {
	return bridge.ProviderSocket
}

func (p *SocketProvider) SupportsRoute(srcChainID, dstChainID uint64, token common.Address) bool {
	_, srcOk := SupportedChains[srcChainID]
	_, dstOk := SupportedChains[dstChainID]
	return srcOk && dstOk
}

func (p *SocketProvider) GetQuote(ctx context.Context, req *bridge.QuoteRequest) (*bridge.Quote, error) {
	resp, err := p.api.Quote(
		ctx,
		req.SourceChainID,
		req.DestinationChainID,
		req.SourceToken,
		req.DestinationToken,
		req.Sender,
		req.Recipient,
		req.Amount,
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Result.Routes) == 0 {
		return nil, nil
	}

	// Routes are sorted by output so the first one is the best offer.
	route := &resp.Result.Routes[0]
	buildTx, err := p.api.BuildTx(ctx, route)
	if err != nil {
		return nil, err
	}

	value := big.NewInt(0)
	if buildTx.Result.Value != nil {
		value = buildTx.Result.Value.Int
	}
	data, err := hexutil.Decode(buildTx.Result.TxData)
	if err != nil {
		return nil, err
	}

	outputAmount := route.ToAmount.Int
	minOutput := bridge.ApplySlippage(outputAmount, req.SlippageOrDefault())
	now := time.Now()
	quote := &bridge.Quote{
		ID:       bridge.QuoteID(bridge.ProviderSocket, req.SourceChainID, req.DestinationChainID, data),
		Provider: bridge.ProviderSocket,
		SourceToken: bridge.Token{
			Address:  req.SourceToken,
			Symbol:   resp.Result.FromAsset.Symbol,
			Decimals: resp.Result.FromAsset.Decimals,
			ChainID:  req.SourceChainID,
		},
		DestinationToken: bridge.Token{
			Address:  req.DestinationToken,
			Symbol:   resp.Result.ToAsset.Symbol,
			Decimals: resp.Result.ToAsset.Decimals,
			ChainID:  req.DestinationChainID,
		},
		InputAmount:     new(big.Int).Set(req.Amount),
		OutputAmount:    outputAmount,
		MinOutputAmount: minOutput,
		Fees: bridge.Fees{
			TotalUSD: route.TotalGasFeesInUsd,
		},
		EstimatedTime: time.Duration(route.ServiceTime) * time.Second,
		Steps:         routeSteps(route, req),
		Call: &bridge.ContractCall{
			To:       common.HexToAddress(buildTx.Result.TxTarget),
			Data:     data,
			Value:    value,
			GasLimit: DEFAULT_GAS_LIMIT,
		},
		IssuedAt:  now,
		ExpiresAt: now.Add(bridge.QuoteTTL),
		Tags:      routeTags(route),
	}

	if buildTx.Result.ApprovalData != nil {
		approval := buildTx.Result.ApprovalData
		quote.Approval = &bridge.Approval{
			Token:   common.HexToAddress(approval.ApprovalTokenAddress),
			Spender: common.HexToAddress(approval.AllowanceTarget),
			Amount:  approval.MinimumApprovalAmount.Int,
		}
	}

	return quote, nil
}

func (p *SocketProvider) BuildTransaction(ctx context.Context, quote *bridge.Quote) (*bridge.BridgeTransaction, error) {
	if quote.Provider != bridge.ProviderSocket {
		return nil, bridge.ErrProviderMismatch
	}
	now := time.Now()
	if quote.Expired(now) {
		return nil, bridge.ErrQuoteExpired
	}

	return &bridge.BridgeTransaction{
		ID:                 fmt.Sprintf("tx-%s", quote.ID),
		Provider:           bridge.ProviderSocket,
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

func (p *SocketProvider) GetStatus(ctx context.Context, txHash common.Hash, srcChainID uint64) (*bridge.BridgeReceipt, error) {
	resp, err := p.api.BridgeStatus(ctx, srcChainID, txHash)
	if err != nil {
		return nil, err
	}

	receipt := &bridge.BridgeReceipt{
		Provider:           bridge.ProviderSocket,
		Status:             mapStatus(resp.Result.SourceTxStatus, resp.Result.DestinationTxStatus),
		SourceTxHash:       txHash,
		SourceChainID:      srcChainID,
		DestinationChainID: resp.Result.ToChainID,
	}
	if resp.Result.DestinationTx != "" {
		receipt.DestinationTxHash = common.HexToHash(resp.Result.DestinationTx)
	}
	return receipt, nil
}

func mapStatus(src, dst string) bridge.Status {
	src = strings.ToUpper(src)
	dst = strings.ToUpper(dst)
	switch {
	case src == "FAILED" || dst == "FAILED":
		return bridge.StatusFailed
	case dst == "COMPLETED":
		return bridge.StatusCompleted
	case src == "COMPLETED":
		return bridge.StatusBridging
	case src == "PENDING":
		return bridge.StatusPendingSource
	default:
		log.Warn().Msgf("Unknown Socket status %s/%s", src, dst)
		return bridge.StatusPending
	}
}

func routeSteps(route *Route, req *bridge.QuoteRequest) []bridge.Step {
	steps := make([]bridge.Step, 0)
	for _, tx := range route.UserTxs {
		for _, s := range tx.Steps {
			step := bridge.Step{
				Type:      mapStepType(s.Type),
				ChainID:   s.FromChainID,
				Protocol:  s.Protocol.DisplayName,
				FromToken: common.HexToAddress(s.FromAsset.Address),
				ToToken:   common.HexToAddress(s.ToAsset.Address),
			}
			if s.FromAmount != nil {
				step.Amount = s.FromAmount.Int
			}
			if s.ToAmount != nil {
				step.ExpectedOutput = s.ToAmount.Int
			}
			steps = append(steps, step)
		}
	}
	if len(steps) == 0 {
		steps = append(steps, bridge.Step{
			Type:           bridge.StepBridge,
			ChainID:        req.SourceChainID,
			Protocol:       strings.Join(route.UsedBridgeNames, ","),
			FromToken:      req.SourceToken,
			ToToken:        req.DestinationToken,
			Amount:         req.Amount,
			ExpectedOutput: route.ToAmount.Int,
		})
	}
	return steps
}

func mapStepType(raw string) bridge.StepType {
	switch strings.ToLower(raw) {
	case "swap", "dex":
		return bridge.StepSwap
	case "bridge", "middleware":
		return bridge.StepBridge
	case "wrap":
		return bridge.StepWrap
	case "unwrap":
		return bridge.StepUnwrap
	default:
		return bridge.StepBridge
	}
}

func routeTags(route *Route) []string {
	tags := make([]string, 0)
	if route.ServiceTime > 0 && route.ServiceTime < 120 {
		tags = append(tags, "fast_route")
	}
	if len(route.UsedBridgeNames) == 1 {
		tags = append(tags, "direct")
	}
	return tags
}
