package stargate

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
	STARGATE_URL = "https://api.stargate.finance"
	LZ_SCAN_URL  = "https://api-mainnet.layerzero-scan.com"
)

type QuoteResponse struct {
	SrcPoolID    int64          `json:"srcPoolId"`
	DstPoolID    int64          `json:"dstPoolId"`
	DstChainID   uint64         `json:"dstChainId"`
	AmountSD     *bridge.BigInt `json:"amountSD"`
	AmountLD     *bridge.BigInt `json:"amountLD"`
	EqFee        *bridge.BigInt `json:"eqFee"`
	EqReward     *bridge.BigInt `json:"eqReward"`
	LpFee        *bridge.BigInt `json:"lpFee"`
	ProtocolFee  *bridge.BigInt `json:"protocolFee"`
	LzFee        *bridge.BigInt `json:"lzFee"`
	MinAmountLD  *bridge.BigInt `json:"minAmountLD"`
	ExpectedTime int64          `json:"expectedTime"`
}

type MessageStatusResponse struct {
	Status         string `json:"status"`
	StatusName     string `json:"status_name"`
	SrcTxHash      string `json:"srcTxHash"`
	DstTxHash      string `json:"dstTxHash"`
	SrcChainID     uint64 `json:"srcChainId"`
	DstChainID     uint64 `json:"dstChainId"`
	SrcBlockNumber uint64 `json:"srcBlockNumber"`
	DstBlockNumber uint64 `json:"dstBlockNumber"`
	Nonce          uint64 `json:"nonce"`
}

type StargateAPI struct {
	URL        string
	ScanURL    string
	HTTPClient *http.Client
}

func NewStargateAPI() *StargateAPI {
	return &StargateAPI{
		URL:     STARGATE_URL,
		ScanURL: LZ_SCAN_URL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Quote fetches the pool transfer quote for moving the amount between pools.
func (a *StargateAPI) Quote(ctx context.Context, srcChainID, dstChainID uint64, srcPoolID, dstPoolID int64, amount *big.Int) (*QuoteResponse, error) {
	query := url.Values{}
	query.Set("srcChain", fmt.Sprintf("%d", srcChainID))
	query.Set("dstChain", fmt.Sprintf("%d", dstChainID))
	query.Set("srcPoolId", fmt.Sprintf("%d", srcPoolID))
	query.Set("dstPoolId", fmt.Sprintf("%d", dstPoolID))
	query.Set("amount", amount.String())

	quote := new(QuoteResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/v1/quote?%s", a.URL, query.Encode()), quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// MessageStatus looks a transfer up on LayerZero scan by its source tx hash.
func (a *StargateAPI) MessageStatus(ctx context.Context, srcTxHash common.Hash) (*MessageStatusResponse, error) {
	status := new(MessageStatusResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/tx/%s", a.ScanURL, srcTxHash.Hex()), status); err != nil {
		return nil, err
	}

	return status, nil
}

func (a *StargateAPI) get(ctx context.Context, url string, result interface{}) error {
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
