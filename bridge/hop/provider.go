package hop

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sweeplabs/sweep-bridging/bridge"
	"github.com/sweeplabs/sweep-bridging/config"
)

const (
	ESTIMATED_TIME = time.Minute * 3
	SEND_GAS_LIMIT = 300000
	// DEADLINE_BUFFER bounds how long the AMM swap on each side stays valid.
	DEADLINE_BUFFER             = 1800
	DESTINATION_DEADLINE_BUFFER = 3600
)

// HopProvider bridges through the Hop bonder network. Mainnet deposits go
// through the L1 bridge, rollup exits through the AMM wrapper.
type HopProvider struct {
	api        *HopAPI
	tokenStore config.TokenStore
}

func NewHopProvider(api *HopAPI, tokenStore config.TokenStore) *HopProvider {
	return &HopProvider{
		api:        api,
		tokenStore: tokenStore,
	}
}

func (p *HopProvider) Name() bridge.ProviderName {
	return bridge.ProviderHop
}

func (p *HopProvider) SupportsRoute(srcChainID, dstChainID uint64, token common.Address) bool {
	if _, ok := ChainSlugs[srcChainID]; !ok {
		return false
	}
	if _, ok := ChainSlugs[dstChainID]; !ok {
		return false
	}

	symbol := p.symbol(srcChainID, token)
	if symbol == "" {
		return false
	}

	_, srcOk := BridgeAddresses[srcChainID][symbol]
	_, dstOk := BridgeAddresses[dstChainID][symbol]
	return srcOk && dstOk
}

func (p *HopProvider) GetQuote(ctx context.Context, req *bridge.QuoteRequest) (*bridge.Quote, error) {
	srcSlug, ok := ChainSlugs[req.SourceChainID]
	if !ok {
		return nil, nil
	}
	dstSlug, ok := ChainSlugs[req.DestinationChainID]
	if !ok {
		return nil, nil
	}

	symbol := p.symbol(req.SourceChainID, req.SourceToken)
	if symbol == "" {
		return nil, nil
	}
	bridgeAddress, ok := BridgeAddresses[req.SourceChainID][symbol]
	if !ok {
		return nil, nil
	}

	slippage := req.SlippageOrDefault()
	quote, err := p.api.Quote(ctx, srcSlug, dstSlug, symbol, req.Amount, slippage*100)
	if err != nil {
		return nil, fmt.Errorf("fetching quote: %w", err)
	}

	outputAmount := quote.AmountOut.Int
	if outputAmount.Sign() <= 0 {
		return nil, nil
	}
	minOutput := quote.AmountOutMin.Int

	now := time.Now()
	deadline := quote.Deadline
	if deadline == 0 {
		deadline = now.Unix() + DEADLINE_BUFFER
	}

	isNative := symbol == "ETH" && bridge.IsNativeToken(req.SourceToken)

	var calldata []byte
	if req.SourceChainID == 1 {
		calldata, err = L1BridgeABI.Pack(
			"sendToL2",
			new(big.Int).SetUint64(req.DestinationChainID),
			req.Recipient,
			req.Amount,
			minOutput,
			big.NewInt(deadline),
			common.Address{},
			big.NewInt(0),
		)
	} else {
		calldata, err = AmmWrapperABI.Pack(
			"swapAndSend",
			new(big.Int).SetUint64(req.DestinationChainID),
			req.Recipient,
			req.Amount,
			quote.BonderFee.Int,
			minOutput,
			big.NewInt(deadline),
			minOutput,
			big.NewInt(deadline+DESTINATION_DEADLINE_BUFFER),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("packing transfer: %w", err)
	}

	value := big.NewInt(0)
	var approval *bridge.Approval
	if isNative {
		value = req.Amount
	} else {
		approval = &bridge.Approval{
			Token:   req.SourceToken,
			Spender: bridgeAddress,
			Amount:  req.Amount,
		}
	}

	destTxFee := big.NewInt(0)
	if quote.DestinationTxFee != nil {
		destTxFee = quote.DestinationTxFee.Int
	}

	return &bridge.Quote{
		ID:               bridge.QuoteID(bridge.ProviderHop, req.SourceChainID, req.DestinationChainID, calldata),
		Provider:         bridge.ProviderHop,
		SourceToken:      p.token(req.SourceChainID, req.SourceToken, symbol),
		DestinationToken: p.token(req.DestinationChainID, req.DestinationToken, symbol),
		InputAmount:      req.Amount,
		OutputAmount:     outputAmount,
		MinOutputAmount:  minOutput,
		Fees: bridge.Fees{
			BridgeFee:  quote.BonderFee.Int,
			GasFee:     destTxFee,
			RelayerFee: big.NewInt(0),
		},
		EstimatedTime: ESTIMATED_TIME,
		Steps: []bridge.Step{
			{
				Type:           bridge.StepBridge,
				ChainID:        req.SourceChainID,
				Protocol:       "Hop Protocol",
				FromToken:      req.SourceToken,
				ToToken:        req.DestinationToken,
				Amount:         req.Amount,
				ExpectedOutput: outputAmount,
			},
		},
		Call: &bridge.ContractCall{
			To:       bridgeAddress,
			Data:     calldata,
			Value:    value,
			GasLimit: SEND_GAS_LIMIT,
		},
		Approval:  approval,
		IssuedAt:  now,
		ExpiresAt: now.Add(bridge.QuoteTTL),
	}, nil
}

func (p *HopProvider) BuildTransaction(ctx context.Context, quote *bridge.Quote) (*bridge.BridgeTransaction, error) {
	if quote.Provider != bridge.ProviderHop {
		return nil, fmt.Errorf("%w: %s", bridge.ErrProviderMismatch, quote.Provider)
	}

	now := time.Now()
	return &bridge.BridgeTransaction{
		ID:                 fmt.Sprintf("tx-%s", quote.ID),
		Provider:           bridge.ProviderHop,
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

func (p *HopProvider) GetStatus(ctx context.Context, srcTxHash common.Hash, srcChainID uint64) (*bridge.BridgeReceipt, error) {
	status, err := p.api.TransferStatus(ctx, srcTxHash)
	if err != nil {
		return nil, fmt.Errorf("fetching transfer status: %w", err)
	}

	receipt := &bridge.BridgeReceipt{
		Provider:           bridge.ProviderHop,
		Status:             bridge.StatusPending,
		SourceTxHash:       srcTxHash,
		SourceChainID:      srcChainID,
		DestinationChainID: status.DestinationChainID,
	}
	if status.Amount != nil {
		receipt.InputAmount = status.Amount.Int
	}

	switch {
	case status.Bonded && status.BondTransactionHash != "":
		receipt.Status = bridge.StatusCompleted
		receipt.SourceConfirmations = 12
		receipt.DestinationTxHash = common.HexToHash(status.BondTransactionHash)
		receipt.DestinationConfirmations = 1
		if status.ReceivedTimestamp > 0 {
			receipt.CompletedAt = time.Unix(status.ReceivedTimestamp, 0)
		}
	case status.TransactionHash != "":
		receipt.Status = bridge.StatusBridging
		receipt.SourceConfirmations = 12
	}
	return receipt, nil
}

// Hop identifies wrapped ether routes by the ETH symbol.
func (p *HopProvider) symbol(chainID uint64, token common.Address) string {
	if bridge.IsNativeToken(token) {
		return "ETH"
	}

	symbol, _, err := p.tokenStore.ConfigByAddress(chainID, token)
	if err != nil {
		return ""
	}
	if symbol == "WETH" {
		return "ETH"
	}
	return symbol
}

func (p *HopProvider) token(chainID uint64, address common.Address, symbol string) bridge.Token {
	token := bridge.Token{
		Address:  address,
		Symbol:   symbol,
		ChainID:  chainID,
		Decimals: 18,
	}

	_, c, err := p.tokenStore.ConfigByAddress(chainID, address)
	if err != nil {
		return token
	}

	token.Decimals = c.Decimals
	return token
}
