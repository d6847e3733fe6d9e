package across

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
	ACROSS_URL = "https://app.across.to/api"
)

type SuggestedFeesResponse struct {
	TotalRelayFee struct {
		Total *bridge.BigInt `json:"total"`
		Pct   string         `json:"pct"`
	} `json:"totalRelayFee"`
	RelayerCapitalFee struct {
		Total *bridge.BigInt `json:"total"`
		Pct   string         `json:"pct"`
	} `json:"relayerCapitalFee"`
	RelayerGasFee struct {
		Total *bridge.BigInt `json:"total"`
		Pct   string         `json:"pct"`
	} `json:"relayerGasFee"`
	LpFee struct {
		Total *bridge.BigInt `json:"total"`
		Pct   string         `json:"pct"`
	} `json:"lpFee"`
	Timestamp           string `json:"timestamp"`
	IsAmountTooLow      bool   `json:"isAmountTooLow"`
	QuoteBlock          string `json:"quoteBlock"`
	ExclusiveRelayer    string `json:"exclusiveRelayer"`
	ExclusivityDeadline string `json:"exclusivityDeadline"`
	SpokePoolAddress    string `json:"spokePoolAddress"`
	ExpectedFillTimeSec int64  `json:"expectedFillTimeSec"`
}

type LimitsResponse struct {
	MinDeposit                *bridge.BigInt `json:"minDeposit"`
	MaxDeposit                *bridge.BigInt `json:"maxDeposit"`
	MaxDepositInstant         *bridge.BigInt `json:"maxDepositInstant"`
	MaxDepositShortDelay      *bridge.BigInt `json:"maxDepositShortDelay"`
	RecommendedDepositInstant *bridge.BigInt `json:"recommendedDepositInstant"`
}

type DepositStatusResponse struct {
	Status             string         `json:"status"`
	FillTx             string         `json:"fillTx"`
	DepositTxHash      string         `json:"depositTxHash"`
	DepositID          int64          `json:"depositId"`
	OriginChainID      uint64         `json:"originChainId"`
	DestinationChainID uint64         `json:"destinationChainId"`
	Amount             *bridge.BigInt `json:"amount"`
	OutputAmount       *bridge.BigInt `json:"outputAmount"`
	FillDeadline       int64          `json:"fillDeadline"`
}

type AcrossAPI struct {
	URL        string
	HTTPClient *http.Client
}

func NewAcrossAPI() *AcrossAPI {
	return &AcrossAPI{
		URL: ACROSS_URL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SuggestedFees quotes the relay fees for moving the amount between chains.
func (a *AcrossAPI) SuggestedFees(
	ctx context.Context,
	srcChainID, dstChainID uint64,
	inputToken, outputToken, recipient common.Address,
	amount *big.Int,
) (*SuggestedFeesResponse, error) {
	query := url.Values{}
	query.Set("token", inputToken.Hex())
	query.Set("inputToken", inputToken.Hex())
	query.Set("outputToken", outputToken.Hex())
	query.Set("originChainId", fmt.Sprintf("%d", srcChainID))
	query.Set("destinationChainId", fmt.Sprintf("%d", dstChainID))
	query.Set("amount", amount.String())
	query.Set("recipient", recipient.Hex())

	fees := new(SuggestedFeesResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/suggested-fees?%s", a.URL, query.Encode()), fees); err != nil {
		return nil, err
	}

	return fees, nil
}

// Limits returns the deposit bounds for a route.
func (a *AcrossAPI) Limits(ctx context.Context, srcChainID, dstChainID uint64, token common.Address) (*LimitsResponse, error) {
	query := url.Values{}
	query.Set("token", token.Hex())
	query.Set("originChainId", fmt.Sprintf("%d", srcChainID))
	query.Set("destinationChainId", fmt.Sprintf("%d", dstChainID))

	limits := new(LimitsResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/limits?%s", a.URL, query.Encode()), limits); err != nil {
		return nil, err
	}

	return limits, nil
}

// DepositStatus fetches the fill status of a deposit by its source tx hash.
func (a *AcrossAPI) DepositStatus(ctx context.Context, srcChainID uint64, depositTxHash common.Hash) (*DepositStatusResponse, error) {
	query := url.Values{}
	query.Set("originChainId", fmt.Sprintf("%d", srcChainID))
	query.Set("depositTxHash", depositTxHash.Hex())

	status := new(DepositStatusResponse)
	if err := a.get(ctx, fmt.Sprintf("%s/deposit/status?%s", a.URL, query.Encode()), status); err != nil {
		return nil, err
	}

	return status, nil
}

func (a *AcrossAPI) get(ctx context.Context, url string, result interface{}) error {
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
