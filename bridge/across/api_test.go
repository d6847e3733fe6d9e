package across_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/big"
	"net/http"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sweeplabs/sweep-bridging/bridge/across"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const suggestedFeesResponse = `{
	"totalRelayFee": {"total": "12500", "pct": "125000000000000"},
	"relayerCapitalFee": {"total": "2500", "pct": "25000000000000"},
	"relayerGasFee": {"total": "5000", "pct": "50000000000000"},
	"lpFee": {"total": "5000", "pct": "50000000000000"},
	"timestamp": "1719000000",
	"isAmountTooLow": false,
	"spokePoolAddress": "0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
	"expectedFillTimeSec": 4
}`

const limitsResponse = `{
	"minDeposit": "10000",
	"maxDeposit": "5000000000",
	"maxDepositInstant": "1000000000",
	"maxDepositShortDelay": "2500000000",
	"recommendedDepositInstant": "500000000"
}`

func Test_AcrossAPI_Limits(t *testing.T) {
	tests := []struct {
		name         string
		mockResponse []byte
		statusCode   int
		wantErr      bool
	}{
		{
			name:         "successful response",
			mockResponse: []byte(limitsResponse),
			statusCode:   http.StatusOK,
		},
		{
			name:         "non-200 status",
			mockResponse: []byte("unsupported route"),
			statusCode:   http.StatusBadRequest,
			wantErr:      true,
		},
	}

	token := common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := across.NewAcrossAPI()
			client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				if !strings.HasPrefix(req.URL.String(), across.ACROSS_URL+"/limits?") {
					t.Errorf("unexpected URL: %s", req.URL.String())
				}
				query := req.URL.Query()
				if query.Get("originChainId") != "1" || query.Get("destinationChainId") != "8453" {
					t.Errorf("unexpected chain params: %s", req.URL.RawQuery)
				}

				return &http.Response{
					StatusCode: tc.statusCode,
					Body:       io.NopCloser(bytes.NewReader(tc.mockResponse)),
					Header:     make(http.Header),
				}, nil
			})

			limits, err := client.Limits(context.Background(), 1, 8453, token)

			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if limits.MaxDeposit.Cmp(big.NewInt(5000000000)) != 0 {
				t.Errorf("unexpected max deposit: %s", limits.MaxDeposit)
			}
			if limits.MinDeposit.Cmp(big.NewInt(10000)) != 0 {
				t.Errorf("unexpected min deposit: %s", limits.MinDeposit)
			}
		})
	}
}

func Test_AcrossAPI_SuggestedFees(t *testing.T) {
	tests := []struct {
		name         string
		mockResponse []byte
		statusCode   int
		mockError    error
		wantErr      bool
	}{
		{
			name:         "successful response",
			mockResponse: []byte(suggestedFeesResponse),
			statusCode:   http.StatusOK,
		},
		{
			name:      "HTTP error",
			mockError: errors.New("connection refused"),
			wantErr:   true,
		},
		{
			name:         "non-200 status",
			mockResponse: []byte("amount too low"),
			statusCode:   http.StatusBadRequest,
			wantErr:      true,
		},
		{
			name:         "invalid JSON",
			mockResponse: []byte("{invalid"),
			statusCode:   http.StatusOK,
			wantErr:      true,
		},
	}

	inputToken := common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	outputToken := common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	recipient := common.HexToAddress("0x5c1F5d74Fc1B46444ef1574b1b31e0fdBAA921c3")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := across.NewAcrossAPI()
			client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				if !strings.HasPrefix(req.URL.String(), across.ACROSS_URL+"/suggested-fees?") {
					t.Errorf("unexpected URL: %s", req.URL.String())
				}
				query := req.URL.Query()
				if query.Get("originChainId") != "1" || query.Get("destinationChainId") != "8453" {
					t.Errorf("unexpected chain params: %s", req.URL.RawQuery)
				}
				if query.Get("amount") != "1000000" {
					t.Errorf("unexpected amount: %s", query.Get("amount"))
				}

				if tc.mockError != nil {
					return nil, tc.mockError
				}

				return &http.Response{
					StatusCode: tc.statusCode,
					Body:       io.NopCloser(bytes.NewReader(tc.mockResponse)),
					Header:     make(http.Header),
				}, nil
			})

			fees, err := client.SuggestedFees(context.Background(), 1, 8453, inputToken, outputToken, recipient, big.NewInt(1000000))

			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if fees.TotalRelayFee.Total.Cmp(big.NewInt(12500)) != 0 {
				t.Errorf("unexpected total relay fee: %s", fees.TotalRelayFee.Total)
			}
			if fees.ExpectedFillTimeSec != 4 {
				t.Errorf("unexpected fill time: %d", fees.ExpectedFillTimeSec)
			}
		})
	}
}

func Test_AcrossAPI_DepositStatus(t *testing.T) {
	tests := []struct {
		name         string
		mockResponse []byte
		statusCode   int
		wantStatus   string
		wantErr      bool
	}{
		{
			name:         "filled deposit",
			mockResponse: []byte(`{"status": "filled", "fillTx": "0xabc", "originChainId": 1, "destinationChainId": 8453}`),
			statusCode:   http.StatusOK,
			wantStatus:   "filled",
		},
		{
			name:         "pending deposit",
			mockResponse: []byte(`{"status": "pending", "originChainId": 1}`),
			statusCode:   http.StatusOK,
			wantStatus:   "pending",
		},
		{
			name:         "unknown deposit",
			mockResponse: []byte("deposit not found"),
			statusCode:   http.StatusNotFound,
			wantErr:      true,
		},
	}

	txHash := common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := across.NewAcrossAPI()
			client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				query := req.URL.Query()
				if query.Get("depositTxHash") != txHash.Hex() {
					t.Errorf("unexpected tx hash: %s", query.Get("depositTxHash"))
				}

				return &http.Response{
					StatusCode: tc.statusCode,
					Body:       io.NopCloser(bytes.NewReader(tc.mockResponse)),
					Header:     make(http.Header),
				}, nil
			})

			status, err := client.DepositStatus(context.Background(), 1, txHash)

			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if status.Status != tc.wantStatus {
				t.Errorf("expected status %s, got %s", tc.wantStatus, status.Status)
			}
		})
	}
}
