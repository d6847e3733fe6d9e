package bridge

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	DefaultSlippage = 0.005
	QuoteTTL        = time.Minute * 5
)

type ProviderName string

const (
	ProviderAcross   ProviderName = "across"
	ProviderStargate ProviderName = "stargate"
	ProviderCbridge  ProviderName = "cbridge"
	ProviderHop      ProviderName = "hop"
	ProviderSocket   ProviderName = "socket"
)

type Priority string

const (
	PrioritySpeed       Priority = "speed"
	PriorityCost        Priority = "cost"
	PriorityReliability Priority = "reliability"
)

type Token struct {
	Address  common.Address `json:"address"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
	ChainID  uint64         `json:"chainId"`
}

type StepType string

const (
	StepApprove StepType = "approve"
	StepSwap    StepType = "swap"
	StepBridge  StepType = "bridge"
	StepWrap    StepType = "wrap"
	StepUnwrap  StepType = "unwrap"
)

type Step struct {
	Type           StepType       `json:"type"`
	ChainID        uint64         `json:"chainId"`
	Protocol       string         `json:"protocol"`
	FromToken      common.Address `json:"fromToken"`
	ToToken        common.Address `json:"toToken"`
	Amount         *big.Int       `json:"amount"`
	ExpectedOutput *big.Int       `json:"expectedOutput"`
	Calldata       []byte         `json:"calldata,omitempty"`
}

type Fees struct {
	BridgeFee  *big.Int `json:"bridgeFee"`
	GasFee     *big.Int `json:"gasFee"`
	RelayerFee *big.Int `json:"relayerFee"`
	TotalUSD   float64  `json:"totalUsd"`
}

// Total sums the fee components denominated in the source token.
func (f Fees) Total() *big.Int {
	total := new(big.Int)
	if f.BridgeFee != nil {
		total.Add(total, f.BridgeFee)
	}
	if f.GasFee != nil {
		total.Add(total, f.GasFee)
	}
	if f.RelayerFee != nil {
		total.Add(total, f.RelayerFee)
	}
	return total
}

// ContractCall is the on-chain call a quote resolves to. Providers encode it
// when the quote is issued so that building the transaction later is
// deterministic.
type ContractCall struct {
	To       common.Address `json:"to"`
	Data     []byte         `json:"data"`
	Value    *big.Int       `json:"value"`
	GasLimit uint64         `json:"gasLimit"`
}

type Approval struct {
	Token   common.Address `json:"token"`
	Spender common.Address `json:"spender"`
	Amount  *big.Int       `json:"amount"`
}

type Quote struct {
	ID               string       `json:"id"`
	Provider         ProviderName `json:"provider"`
	SourceToken      Token        `json:"sourceToken"`
	DestinationToken Token        `json:"destinationToken"`
	InputAmount      *big.Int     `json:"inputAmount"`
	OutputAmount     *big.Int     `json:"outputAmount"`
	MinOutputAmount  *big.Int     `json:"minOutputAmount"`
	Fees             Fees         `json:"fees"`
	// EstimatedTime is the expected source-to-destination settlement time.
	EstimatedTime time.Duration `json:"estimatedTime"`
	Steps         []Step        `json:"steps"`
	Call          *ContractCall `json:"call"`
	Approval      *Approval     `json:"approval,omitempty"`
	IssuedAt      time.Time     `json:"issuedAt"`
	ExpiresAt     time.Time     `json:"expiresAt"`
	Tags          []string      `json:"tags,omitempty"`
}

func (q *Quote) Expired(now time.Time) bool {
	return !now.Before(q.ExpiresAt)
}

type QuoteRequest struct {
	SourceChainID      uint64
	DestinationChainID uint64
	SourceToken        common.Address
	DestinationToken   common.Address
	Amount             *big.Int
	Sender             common.Address
	Recipient          common.Address
	Slippage           float64
	Priority           Priority
	ExcludeProviders   []ProviderName
	// Force bypasses the route cache and re-quotes every provider.
	Force bool
}

func (r *QuoteRequest) Validate() error {
	if r.Amount == nil || r.Amount.Sign() <= 0 {
		return fmt.Errorf("amount has to be larger than zero")
	}
	if r.SourceChainID == r.DestinationChainID {
		return fmt.Errorf("source and destination chain cannot both be %d", r.SourceChainID)
	}
	return nil
}

func (r *QuoteRequest) SlippageOrDefault() float64 {
	if r.Slippage == 0 {
		return DefaultSlippage
	}
	return r.Slippage
}

func (r *QuoteRequest) Excludes(name ProviderName) bool {
	for _, p := range r.ExcludeProviders {
		if p == name {
			return true
		}
	}
	return false
}

// CacheKey normalizes the request for route caching. Priority, sender and
// recipient do not change the quoted price and are left out.
func (r *QuoteRequest) CacheKey() string {
	return fmt.Sprintf(
		"%d:%d:%s:%s:%s",
		r.SourceChainID,
		r.DestinationChainID,
		r.SourceToken.Hex(),
		r.DestinationToken.Hex(),
		r.Amount.String(),
	)
}

type BridgeTransaction struct {
	ID                 string         `json:"id"`
	Provider           ProviderName   `json:"provider"`
	QuoteID            string         `json:"quoteId"`
	Quote              *Quote         `json:"quote"`
	SourceChainID      uint64         `json:"sourceChainId"`
	DestinationChainID uint64         `json:"destinationChainId"`
	To                 common.Address `json:"to"`
	Data               []byte         `json:"data"`
	Value              *big.Int       `json:"value"`
	GasLimit           uint64         `json:"gasLimit"`
	Approval           *Approval      `json:"approval,omitempty"`
	Status             Status         `json:"status"`
	SourceTxHash       common.Hash    `json:"sourceTxHash"`
	DestinationTxHash  common.Hash    `json:"destinationTxHash"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

type BridgeReceipt struct {
	Provider                 ProviderName `json:"provider"`
	Status                   Status       `json:"status"`
	SourceTxHash             common.Hash  `json:"sourceTxHash"`
	SourceChainID            uint64       `json:"sourceChainId"`
	SourceConfirmations      uint64       `json:"sourceConfirmations"`
	DestinationTxHash        common.Hash  `json:"destinationTxHash"`
	DestinationChainID       uint64       `json:"destinationChainId"`
	DestinationConfirmations uint64       `json:"destinationConfirmations"`
	InputAmount              *big.Int     `json:"inputAmount"`
	OutputAmount             *big.Int     `json:"outputAmount"`
	InitiatedAt              time.Time    `json:"initiatedAt"`
	CompletedAt              time.Time    `json:"completedAt"`
	Error                    string       `json:"error,omitempty"`
}
