package across

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sweeplabs/sweep-bridging/bridge"
	"github.com/sweeplabs/sweep-bridging/config"
)

const (
	// FILL_DEADLINE_BUFFER is how long relayers have to fill a deposit.
	FILL_DEADLINE_BUFFER = 3600
	FAST_FILL_TIME       = time.Minute
	DEPOSIT_GAS_LIMIT    = 200000
)

// AcrossProvider bridges through Across V3 spoke pools. Relayers front the
// destination funds, so fills for supported tokens usually land within a
// minute.
type AcrossProvider struct {
	api        *AcrossAPI
	tokenStore config.TokenStore
}

func NewAcrossProvider(api *AcrossAPI, tokenStore config.TokenStore) *AcrossProvider {
	return &AcrossProvider{
		api:        api,
		tokenStore: tokenStore,
	}
}

func (p *AcrossProvider) Name() bridge.ProviderName {
	return bridge.ProviderAcross
}

func (p *AcrossProvider) SupportsRoute(srcChainID, dstChainID uint64, token common.Address) bool {
	_, srcOk := SpokePools[srcChainID]
	_, dstOk := SpokePools[dstChainID]
	return srcOk && dstOk
}

func (p *AcrossProvider) GetQuote(ctx context.Context, req *bridge.QuoteRequest) (*bridge.Quote, error) {
	spokePool, ok := SpokePools[req.SourceChainID]
	if !ok {
		return nil, nil
	}

	limits, err := p.api.Limits(ctx, req.SourceChainID, req.DestinationChainID, req.SourceToken)
	if err != nil {
		return nil, fmt.Errorf("fetching deposit limits: %w", err)
	}
	if limits.MaxDeposit != nil && req.Amount.Cmp(limits.MaxDeposit.Int) > 0 {
		log.Debug().Msgf("Across amount %s above max deposit for %d -> %d", req.Amount, req.SourceChainID, req.DestinationChainID)
		return nil, nil
	}

	fees, err := p.api.SuggestedFees(
		ctx,
		req.SourceChainID,
		req.DestinationChainID,
		req.SourceToken,
		req.DestinationToken,
		req.Recipient,
		req.Amount,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching suggested fees: %w", err)
	}
	if fees.IsAmountTooLow {
		log.Debug().Msgf("Across amount %s too low for %d -> %d", req.Amount, req.SourceChainID, req.DestinationChainID)
		return nil, nil
	}

	outputAmount := new(big.Int).Sub(req.Amount, fees.TotalRelayFee.Total.Int)
	if outputAmount.Sign() <= 0 {
		return nil, nil
	}
	minOutput := bridge.ApplySlippage(outputAmount, req.SlippageOrDefault())

	quoteTimestamp, err := strconv.ParseInt(fees.Timestamp, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quote timestamp %s: %w", fees.Timestamp, err)
	}
	exclusivityDeadline, _ := strconv.ParseInt(fees.ExclusivityDeadline, 10, 64)

	calldata, err := SpokePoolABI.Pack(
		"depositV3",
		req.Sender,
		req.Recipient,
		req.SourceToken,
		req.DestinationToken,
		req.Amount,
		minOutput,
		new(big.Int).SetUint64(req.DestinationChainID),
		common.HexToAddress(fees.ExclusiveRelayer),
		uint32(quoteTimestamp),
		uint32(quoteTimestamp+FILL_DEADLINE_BUFFER),
		uint32(exclusivityDeadline),
		[]byte{},
	)
	if err != nil {
		return nil, fmt.Errorf("packing depositV3: %w", err)
	}

	value := big.NewInt(0)
	var approval *bridge.Approval
	if bridge.IsNativeToken(req.SourceToken) {
		value = req.Amount
	} else {
		approval = &bridge.Approval{
			Token:   req.SourceToken,
			Spender: spokePool,
			Amount:  req.Amount,
		}
	}

	estimatedTime := time.Duration(fees.ExpectedFillTimeSec) * time.Second
	if p.isFastFill(req.SourceChainID, req.SourceToken, outputAmount) {
		estimatedTime = FAST_FILL_TIME
	}

	now := time.Now()
	return &bridge.Quote{
		ID:               bridge.QuoteID(bridge.ProviderAcross, req.SourceChainID, req.DestinationChainID, calldata),
		Provider:         bridge.ProviderAcross,
		SourceToken:      p.token(req.SourceChainID, req.SourceToken),
		DestinationToken: p.token(req.DestinationChainID, req.DestinationToken),
		InputAmount:      req.Amount,
		OutputAmount:     outputAmount,
		MinOutputAmount:  minOutput,
		Fees: bridge.Fees{
			BridgeFee:  fees.LpFee.Total.Int,
			GasFee:     fees.RelayerGasFee.Total.Int,
			RelayerFee: fees.RelayerCapitalFee.Total.Int,
		},
		EstimatedTime: estimatedTime,
		Steps: []bridge.Step{
			{
				Type:           bridge.StepBridge,
				ChainID:        req.SourceChainID,
				Protocol:       "Across V3",
				FromToken:      req.SourceToken,
				ToToken:        req.DestinationToken,
				Amount:         req.Amount,
				ExpectedOutput: outputAmount,
			},
		},
		Call: &bridge.ContractCall{
			To:       spokePool,
			Data:     calldata,
			Value:    value,
			GasLimit: DEPOSIT_GAS_LIMIT,
		},
		Approval:  approval,
		IssuedAt:  now,
		ExpiresAt: now.Add(bridge.QuoteTTL),
	}, nil
}

func (p *AcrossProvider) BuildTransaction(ctx context.Context, quote *bridge.Quote) (*bridge.BridgeTransaction, error) {
	if quote.Provider != bridge.ProviderAcross {
		return nil, fmt.Errorf("%w: %s", bridge.ErrProviderMismatch, quote.Provider)
	}

	now := time.Now()
	return &bridge.BridgeTransaction{
		ID:                 fmt.Sprintf("tx-%s", quote.ID),
		Provider:           bridge.ProviderAcross,
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

func (p *AcrossProvider) GetStatus(ctx context.Context, srcTxHash common.Hash, srcChainID uint64) (*bridge.BridgeReceipt, error) {
	status, err := p.api.DepositStatus(ctx, srcChainID, srcTxHash)
	if err != nil {
		return nil, fmt.Errorf("fetching deposit status: %w", err)
	}

	receipt := &bridge.BridgeReceipt{
		Provider:           bridge.ProviderAcross,
		Status:             mapStatus(status.Status),
		SourceTxHash:       srcTxHash,
		SourceChainID:      srcChainID,
		DestinationChainID: status.DestinationChainID,
	}
	if status.Amount != nil {
		receipt.InputAmount = status.Amount.Int
	}
	if status.OutputAmount != nil {
		receipt.OutputAmount = status.OutputAmount.Int
	}
	if status.FillTx != "" {
		receipt.DestinationTxHash = common.HexToHash(status.FillTx)
		receipt.DestinationConfirmations = 1
	}
	return receipt, nil
}

func mapStatus(raw string) bridge.Status {
	switch raw {
	case "filled":
		return bridge.StatusCompleted
	case "expired":
		return bridge.StatusFailed
	case "pending":
		return bridge.StatusBridging
	default:
		log.Warn().Msgf("Unknown Across deposit status %s", raw)
		return bridge.StatusPending
	}
}

func (p *AcrossProvider) token(chainID uint64, address common.Address) bridge.Token {
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

// Relayers fill USDC and WETH deposits under their inventory limits almost
// immediately.
func (p *AcrossProvider) isFastFill(chainID uint64, token common.Address, amount *big.Int) bool {
	symbol, _, err := p.tokenStore.ConfigByAddress(chainID, token)
	if err != nil {
		return false
	}

	switch symbol {
	case "USDC":
		max := new(big.Int).Mul(big.NewInt(250000), new(big.Int).Exp(big.NewInt(10), big.NewInt(6), nil))
		return amount.Cmp(max) <= 0
	case "WETH":
		max := new(big.Int).Mul(big.NewInt(100), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
		return amount.Cmp(max) <= 0
	default:
		return false
	}
}
