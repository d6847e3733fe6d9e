package cbridge

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
	"github.com/sweeplabs/sweep-bridging/bridge"
)

const (
	CONFIG_TTL     = time.Hour
	ESTIMATED_TIME = time.Minute * 4
	SEND_GAS_LIMIT = 250000
)

// CbridgeProvider bridges through the Celer liquidity network. Token support
// comes from the gateway transfer config, so route viability is only fully
// known at quote time.
type CbridgeProvider struct {
	api *CbridgeAPI

	mu            sync.Mutex
	config        *TransferConfigResponse
	configFetched time.Time
}

func NewCbridgeProvider(api *CbridgeAPI) *CbridgeProvider {
	return &CbridgeProvider{
		api: api,
	}
}

func (p *CbridgeProvider) Name() bridge.ProviderName {
	return bridge.ProviderCbridge
}

func (p *CbridgeProvider) SupportsRoute(srcChainID, dstChainID uint64, token common.Address) bool {
	_, srcOk := Contracts[srcChainID]
	_, dstOk := Contracts[dstChainID]
	return srcOk && dstOk
}

func (p *CbridgeProvider) GetQuote(ctx context.Context, req *bridge.QuoteRequest) (*bridge.Quote, error) {
	contract, ok := Contracts[req.SourceChainID]
	if !ok {
		return nil, nil
	}

	config, err := p.transferConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching transfer config: %w", err)
	}

	srcToken := findTokenByAddress(config, req.SourceChainID, req.SourceToken)
	if srcToken == nil {
		log.Debug().Msgf("cBridge does not list token %s on chain %d", req.SourceToken.Hex(), req.SourceChainID)
		return nil, nil
	}
	dstToken := findTokenBySymbol(config, req.DestinationChainID, srcToken.Symbol)
	if dstToken == nil {
		return nil, nil
	}

	slippage := req.SlippageOrDefault()
	estimate, err := p.api.EstimateAmt(
		ctx,
		req.SourceChainID,
		req.DestinationChainID,
		srcToken.Symbol,
		req.Sender,
		req.Amount,
		uint32(math.Floor(slippage*1000000)),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching estimate: %w", err)
	}

	outputAmount := estimate.EstimatedReceiveAmt.Int
	if outputAmount.Sign() <= 0 {
		return nil, nil
	}
	minOutput := bridge.ApplySlippage(outputAmount, slippage)

	nonce := sendNonce(req, estimate.MaxSlippage)
	isNative := srcToken.Symbol == "ETH"

	var calldata []byte
	value := big.NewInt(0)
	if isNative {
		calldata, err = BridgeABI.Pack(
			"sendNative",
			req.Recipient,
			req.Amount,
			req.DestinationChainID,
			nonce,
			estimate.MaxSlippage,
		)
		value = req.Amount
	} else {
		calldata, err = BridgeABI.Pack(
			"send",
			req.Recipient,
			req.SourceToken,
			req.Amount,
			req.DestinationChainID,
			nonce,
			estimate.MaxSlippage,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("packing send: %w", err)
	}

	var approval *bridge.Approval
	if !isNative {
		approval = &bridge.Approval{
			Token:   req.SourceToken,
			Spender: contract,
			Amount:  req.Amount,
		}
	}

	now := time.Now()
	return &bridge.Quote{
		ID:       bridge.QuoteID(bridge.ProviderCbridge, req.SourceChainID, req.DestinationChainID, calldata),
		Provider: bridge.ProviderCbridge,
		SourceToken: bridge.Token{
			Address:  req.SourceToken,
			Symbol:   srcToken.Symbol,
			Decimals: srcToken.Decimal,
			ChainID:  req.SourceChainID,
		},
		DestinationToken: bridge.Token{
			Address:  common.HexToAddress(dstToken.Address),
			Symbol:   dstToken.Symbol,
			Decimals: dstToken.Decimal,
			ChainID:  req.DestinationChainID,
		},
		InputAmount:     req.Amount,
		OutputAmount:    outputAmount,
		MinOutputAmount: minOutput,
		Fees: bridge.Fees{
			BridgeFee:  estimate.BaseFee.Int,
			GasFee:     big.NewInt(0),
			RelayerFee: estimate.PercFee.Int,
		},
		EstimatedTime: ESTIMATED_TIME,
		Steps: []bridge.Step{
			{
				Type:           bridge.StepBridge,
				ChainID:        req.SourceChainID,
				Protocol:       "Celer cBridge",
				FromToken:      req.SourceToken,
				ToToken:        common.HexToAddress(dstToken.Address),
				Amount:         req.Amount,
				ExpectedOutput: outputAmount,
			},
		},
		Call: &bridge.ContractCall{
			To:       contract,
			Data:     calldata,
			Value:    value,
			GasLimit: SEND_GAS_LIMIT,
		},
		Approval:  approval,
		IssuedAt:  now,
		ExpiresAt: now.Add(bridge.QuoteTTL),
	}, nil
}

func (p *CbridgeProvider) BuildTransaction(ctx context.Context, quote *bridge.Quote) (*bridge.BridgeTransaction, error) {
	if quote.Provider != bridge.ProviderCbridge {
		return nil, fmt.Errorf("%w: %s", bridge.ErrProviderMismatch, quote.Provider)
	}

	now := time.Now()
	return &bridge.BridgeTransaction{
		ID:                 fmt.Sprintf("tx-%s", quote.ID),
		Provider:           bridge.ProviderCbridge,
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

func (p *CbridgeProvider) GetStatus(ctx context.Context, srcTxHash common.Hash, srcChainID uint64) (*bridge.BridgeReceipt, error) {
	status, err := p.api.TransferStatus(ctx, srcTxHash)
	if err != nil {
		return nil, fmt.Errorf("fetching transfer status: %w", err)
	}

	receipt := &bridge.BridgeReceipt{
		Provider:            bridge.ProviderCbridge,
		Status:              mapStatus(status.Status),
		SourceTxHash:        srcTxHash,
		SourceChainID:       srcChainID,
		SourceConfirmations: status.BlockDelay,
	}
	if hash, ok := txHashFromLink(status.DstBlockTxLink); ok {
		receipt.DestinationTxHash = hash
		receipt.DestinationConfirmations = 1
	}
	return receipt, nil
}

func mapStatus(raw int) bridge.Status {
	switch raw {
	case TransferCompleted:
		return bridge.StatusCompleted
	case TransferFailed:
		return bridge.StatusFailed
	case TransferRefunded:
		return bridge.StatusRefunded
	case TransferSubmitting, TransferPending:
		return bridge.StatusBridging
	case TransferUnknown:
		return bridge.StatusPending
	default:
		log.Warn().Msgf("Unknown cBridge transfer status %d", raw)
		return bridge.StatusPending
	}
}

// txHashFromLink pulls the transaction hash out of an explorer link.
func txHashFromLink(link string) (common.Hash, bool) {
	idx := strings.Index(link, "0x")
	if idx < 0 || len(link) < idx+66 {
		return common.Hash{}, false
	}

	candidate := link[idx : idx+66]
	for _, c := range candidate[2:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return common.Hash{}, false
		}
	}

	return common.HexToHash(candidate), true
}

// sendNonce derives the contract nonce from the quote inputs so re-encoding
// the same quote always produces identical calldata.
func sendNonce(req *bridge.QuoteRequest, maxSlippage uint32) uint64 {
	h := crypto.Keccak256(
		req.Sender.Bytes(),
		req.Recipient.Bytes(),
		req.SourceToken.Bytes(),
		req.Amount.Bytes(),
		binary.BigEndian.AppendUint64(nil, req.DestinationChainID),
		binary.BigEndian.AppendUint32(nil, maxSlippage),
	)
	return binary.BigEndian.Uint64(h[:8])
}

func (p *CbridgeProvider) transferConfig(ctx context.Context) (*TransferConfigResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.config != nil && time.Since(p.configFetched) < CONFIG_TTL {
		return p.config, nil
	}

	config, err := p.api.TransferConfigs(ctx)
	if err != nil {
		return nil, err
	}

	p.config = config
	p.configFetched = time.Now()
	return config, nil
}

func findTokenByAddress(config *TransferConfigResponse, chainID uint64, address common.Address) *ChainToken {
	tokens, ok := config.ChainToken[fmt.Sprintf("%d", chainID)]
	if !ok {
		return nil
	}

	for _, t := range tokens.Token {
		if t.XferDisabled {
			continue
		}
		if common.HexToAddress(t.Address) == address {
			return &t
		}
	}
	return nil
}

func findTokenBySymbol(config *TransferConfigResponse, chainID uint64, symbol string) *ChainToken {
	tokens, ok := config.ChainToken[fmt.Sprintf("%d", chainID)]
	if !ok {
		return nil
	}

	for _, t := range tokens.Token {
		if t.XferDisabled {
			continue
		}
		if t.Symbol == symbol {
			return &t
		}
	}
	return nil
}
