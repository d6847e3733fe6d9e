package cbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sweeplabs/sweep-bridging/bridge"
)

const (
	CBRIDGE_URL = "https://cbridge-prod2.celer.app/v2"
)

// Transfer states reported by the gateway.
const (
	TransferUnknown    = 0
	TransferSubmitting = 1
	TransferPending    = 2
	TransferCompleted  = 3
	TransferFailed     = 4
	TransferRefunded   = 5
)

type APIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type EstimateResponse struct {
	Err                 *APIError      `json:"err"`
	EstimatedReceiveAmt *bridge.BigInt `json:"estimated_receive_amt"`
	BaseFee             *bridge.BigInt `json:"base_fee"`
	PercFee             *bridge.BigInt `json:"perc_fee"`
	SlippageTolerance   uint32         `json:"slippage_tolerance"`
	MaxSlippage         uint32         `json:"max_slippage"`
	BridgeRate          float64        `json:"bridge_rate"`
	OpType              string         `json:"op_type"`
}

type TransferStatusResponse struct {
	Err            *APIError `json:"err"`
	Status         int       `json:"status"`
	WdOnchain      bool      `json:"wd_onchain"`
	RefundReason   int       `json:"refund_reason"`
	BlockDelay     uint64    `json:"block_delay"`
	SrcBlockTxLink string    `json:"src_block_tx_link"`
	DstBlockTxLink string    `json:"dst_block_tx_link"`
}

type ChainToken struct {
	Address      string `json:"address"`
	Symbol       string `json:"symbol"`
	Decimal      uint8  `json:"decimal"`
	XferDisabled bool   `json:"xfer_disabled"`
}

type TransferConfigResponse struct {
	Err    *APIError `json:"err"`
	Chains []struct {
		ID           uint64 `json:"id"`
		Name         string `json:"name"`
		ContractAddr string `json:"contract_addr"`
	} `json:"chains"`
	ChainToken map[string]struct {
		Token []ChainToken `json:"token"`
	} `json:"chain_token"`
}

type CbridgeAPI struct {
	URL        string
	HTTPClient *http.Client
}

func NewCbridgeAPI() *CbridgeAPI {
	return &CbridgeAPI{
		URL: CBRIDGE_URL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// TransferConfigs lists the chains and tokens the gateway currently bridges.
func (a *CbridgeAPI) TransferConfigs(ctx context.Context) (*TransferConfigResponse, error) {
	config := new(TransferConfigResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/getTransferConfigs", a.URL), config); err != nil {
		return nil, err
	}
	if config.Err != nil {
		return nil, fmt.Errorf("API error: %d - %s", config.Err.Code, config.Err.Msg)
	}

	return config, nil
}

// EstimateAmt quotes the receive amount for a transfer. Slippage tolerance is
// expressed in parts per million.
func (a *CbridgeAPI) EstimateAmt(
	ctx context.Context,
	srcChainID, dstChainID uint64,
	tokenSymbol string,
	sender common.Address,
	amount *big.Int,
	slippageTolerance uint32,
) (*EstimateResponse, error) {
	query := url.Values{}
	query.Set("src_chain_id", fmt.Sprintf("%d", srcChainID))
	query.Set("dst_chain_id", fmt.Sprintf("%d", dstChainID))
	query.Set("token_symbol", tokenSymbol)
	query.Set("amt", amount.String())
	query.Set("usr_addr", sender.Hex())
	query.Set("slippage_tolerance", fmt.Sprintf("%d", slippageTolerance))

	estimate := new(EstimateResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/estimateAmt?%s", a.URL, query.Encode()), estimate); err != nil {
		return nil, err
	}
	if estimate.Err != nil {
		return nil, fmt.Errorf("API error: %d - %s", estimate.Err.Code, estimate.Err.Msg)
	}

	return estimate, nil
}

// TransferStatus fetches the state of a transfer by its transfer ID.
func (a *CbridgeAPI) TransferStatus(ctx context.Context, transferID common.Hash) (*TransferStatusResponse, error) {
	query := url.Values{}
	query.Set("transfer_id", transferID.Hex())

	status := new(TransferStatusResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/getTransferStatus?%s", a.URL, query.Encode()), status); err != nil {
		return nil, err
	}
	if status.Err != nil {
		return nil, fmt.Errorf("API error: %d - %s", status.Err.Code, status.Err.Msg)
	}

	return status, nil
}

func (a *CbridgeAPI) get(ctx context.Context, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}
