package socket

import (
	"bytes"
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
	SOCKET_URL = "https://api.socket.tech/v2"
)

type Asset struct {
	ChainID  uint64 `json:"chainId"`
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
}

type Protocol struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type RouteStep struct {
	Type        string         `json:"type"`
	Protocol    Protocol       `json:"protocol"`
	FromChainID uint64         `json:"fromChainId"`
	FromAsset   Asset          `json:"fromAsset"`
	FromAmount  *bridge.BigInt `json:"fromAmount"`
	ToChainID   uint64         `json:"toChainId"`
	ToAsset     Asset          `json:"toAsset"`
	ToAmount    *bridge.BigInt `json:"toAmount"`
}

type UserTx struct {
	UserTxType string         `json:"userTxType"`
	TxType     string         `json:"txType"`
	ChainID    uint64         `json:"chainId"`
	ToAmount   *bridge.BigInt `json:"toAmount"`
	ToAsset    Asset          `json:"toAsset"`
	Protocol   Protocol       `json:"protocol"`
	GasFees    struct {
		GasLimit  uint64  `json:"gasLimit"`
		FeesInUsd float64 `json:"feesInUsd"`
	} `json:"gasFees"`
	ServiceTime int64       `json:"serviceTime"`
	Steps       []RouteStep `json:"steps"`
}

// Route is kept as raw JSON alongside its parsed fields because the build-tx
// endpoint expects the route echoed back verbatim.
type Route struct {
	RouteID           string         `json:"routeId"`
	FromAmount        *bridge.BigInt `json:"fromAmount"`
	ToAmount          *bridge.BigInt `json:"toAmount"`
	UsedBridgeNames   []string       `json:"usedBridgeNames"`
	TotalGasFeesInUsd float64        `json:"totalGasFeesInUsd"`
	UserTxs           []UserTx       `json:"userTxs"`
	ServiceTime       int64          `json:"serviceTime"`
	MaxServiceTime    int64          `json:"maxServiceTime"`

	Raw json.RawMessage `json:"-"`
}

func (r *Route) UnmarshalJSON(data []byte) error {
	type alias Route
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return err
	}

	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}

type QuoteResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Routes      []Route `json:"routes"`
		FromChainID uint64  `json:"fromChainId"`
		ToChainID   uint64  `json:"toChainId"`
		FromAsset   Asset   `json:"fromAsset"`
		ToAsset     Asset   `json:"toAsset"`
	} `json:"result"`
}

type ApprovalData struct {
	MinimumApprovalAmount *bridge.BigInt `json:"minimumApprovalAmount"`
	ApprovalTokenAddress  string         `json:"approvalTokenAddress"`
	AllowanceTarget       string         `json:"allowanceTarget"`
	Owner                 string         `json:"owner"`
}

type BuildTxResponse struct {
	Success bool `json:"success"`
	Result  struct {
		UserTxType   string         `json:"userTxType"`
		TxType       string         `json:"txType"`
		TxData       string         `json:"txData"`
		TxTarget     string         `json:"txTarget"`
		ChainID      uint64         `json:"chainId"`
		Value        *bridge.BigInt `json:"value"`
		ApprovalData *ApprovalData  `json:"approvalData"`
	} `json:"result"`
}

type StatusResponse struct {
	Success bool `json:"success"`
	Result  struct {
		SourceTxStatus      string `json:"sourceTxStatus"`
		DestinationTxStatus string `json:"destinationTxStatus"`
		SourceTx            string `json:"sourceTx"`
		DestinationTx       string `json:"destinationTx"`
		FromChainID         uint64 `json:"fromChainId"`
		ToChainID           uint64 `json:"toChainId"`
	} `json:"result"`
}

type SocketAPI struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

func NewSocketAPI(apiKey string) *SocketAPI {
	return &SocketAPI{
		URL:    SOCKET_URL,
		APIKey: apiKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Quote lists routes for a transfer sorted by output amount.
func (a *SocketAPI) Quote(
	ctx context.Context,
	srcChainID, dstChainID uint64,
	srcToken, dstToken, sender, recipient common.Address,
	amount *big.Int,
) (*QuoteResponse, error) {
	query := url.Values{}
	query.Set("fromChainId", fmt.Sprintf("%d", srcChainID))
	query.Set("toChainId", fmt.Sprintf("%d", dstChainID))
	query.Set("fromTokenAddress", srcToken.Hex())
	query.Set("toTokenAddress", dstToken.Hex())
	query.Set("fromAmount", amount.String())
	query.Set("userAddress", sender.Hex())
	query.Set("recipient", recipient.Hex())
	query.Set("uniqueRoutesPerBridge", "true")
	query.Set("sort", "output")
	query.Set("singleTxOnly", "false")

	quote := new(QuoteResponse)
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("%s/quote?%s", a.URL, query.Encode()), nil, quote); err != nil {
		return nil, err
	}
	if !quote.Success {
		return nil, fmt.Errorf("quote request unsuccessful")
	}

	return quote, nil
}

// BuildTx turns a quoted route into calldata for the Socket gateway.
func (a *SocketAPI) BuildTx(ctx context.Context, route *Route) (*BuildTxResponse, error) {
	payload, err := json.Marshal(map[string]json.RawMessage{
		"route": route.Raw,
	})
	if err != nil {
		return nil, err
	}

	buildTx := new(BuildTxResponse)
	if err := a.do(ctx, http.MethodPost, fmt.Sprintf("%s/build-tx", a.URL), payload, buildTx); err != nil {
		return nil, err
	}
	if !buildTx.Success {
		return nil, fmt.Errorf("build-tx request unsuccessful")
	}

	return buildTx, nil
}

// BridgeStatus fetches source and destination settlement state.
func (a *SocketAPI) BridgeStatus(ctx context.Context, srcChainID uint64, txHash common.Hash) (*StatusResponse, error) {
	query := url.Values{}
	query.Set("transactionHash", txHash.Hex())
	query.Set("fromChainId", fmt.Sprintf("%d", srcChainID))

	status := new(StatusResponse)
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("%s/bridge-status?%s", a.URL, query.Encode()), nil, status); err != nil {
		return nil, err
	}
	if !status.Success {
		return nil, fmt.Errorf("bridge-status request unsuccessful")
	}

	return status, nil
}

func (a *SocketAPI) do(ctx context.Context, method, url string, payload []byte, result interface{}) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.APIKey != "" {
		req.Header.Set("API-KEY", a.APIKey)
	}

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}
