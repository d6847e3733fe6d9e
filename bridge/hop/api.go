package hop

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
	HOP_URL = "https://api.hop.exchange/v1"
)

type QuoteResponse struct {
	AmountOut        *bridge.BigInt `json:"amountOut"`
	AmountOutMin     *bridge.BigInt `json:"amountOutMin"`
	BonderFee        *bridge.BigInt `json:"bonderFee"`
	DestinationTxFee *bridge.BigInt `json:"destinationTxFee"`
	Deadline         int64          `json:"deadline"`
}

type TransferStatusResponse struct {
	TransferID          string         `json:"transferId"`
	TransactionHash     string         `json:"transactionHash"`
	SourceChainID       uint64         `json:"sourceChainId"`
	DestinationChainID  uint64         `json:"destinationChainId"`
	Amount              *bridge.BigInt `json:"amount"`
	BonderFee           *bridge.BigInt `json:"bonderFee"`
	BondTransactionHash string         `json:"bondTransactionHash"`
	Bonded              bool           `json:"bonded"`
	BondedTimestamp     int64          `json:"bondedTimestamp"`
	ReceivedTimestamp   int64          `json:"receivedTimestamp"`
}

type HopAPI struct {
	URL        string
	HTTPClient *http.Client
}

func NewHopAPI() *HopAPI {
	return &HopAPI{
		URL: HOP_URL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Quote fetches the AMM output and bonder fee for a transfer. Slippage is
// expressed in percent.
func (a *HopAPI) Quote(ctx context.Context, fromSlug, toSlug, tokenSymbol string, amount *big.Int, slippagePct float64) (*QuoteResponse, error) {
	query := url.Values{}
	query.Set("amount", amount.String())
	query.Set("token", tokenSymbol)
	query.Set("fromChain", fromSlug)
	query.Set("toChain", toSlug)
	query.Set("slippage", fmt.Sprintf("%g", slippagePct))

	quote := new(QuoteResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/quote?%s", a.URL, query.Encode()), quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// TransferStatus fetches the bond state of a transfer by source tx hash.
func (a *HopAPI) TransferStatus(ctx context.Context, txHash common.Hash) (*TransferStatusResponse, error) {
	query := url.Values{}
	query.Set("transactionHash", txHash.Hex())

	status := new(TransferStatusResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/transfer-status?%s", a.URL, query.Encode()), status); err != nil {
		return nil, err
	}

	return status, nil
}

func (a *HopAPI) get(ctx context.Context, url string, result interface{}) error {
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
