package sweep

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/sweeplabs/sweep-bridging/bridge"
	"github.com/sweeplabs/sweep-bridging/config"
)

const (
	// Chains holding less are not worth the gas to sweep.
	MIN_CHAIN_VALUE_USD = float64(1)
	SWAP_FEE_RATE       = 0.003
	TIME_BUFFER         = time.Minute * 5
)

// GasEstimatesUSD approximates the cost of a swap plus bridge submission per
// chain. Chains without an entry are charged $1.
var GasEstimatesUSD = map[uint64]float64{
	1:     15,
	10:    0.05,
	56:    0.2,
	137:   0.01,
	8453:  0.05,
	42161: 0.1,
	59144: 0.1,
}

type SweepToken struct {
	Address  common.Address `json:"address"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
	Amount   *big.Int       `json:"amount"`
	ValueUSD float64        `json:"valueUsd"`
}

type ChainTokens struct {
	ChainID uint64       `json:"chainId"`
	Tokens  []SweepToken `json:"tokens"`
}

type PlanRequest struct {
	UserID             string         `json:"userId"`
	Sources            []ChainTokens  `json:"sources"`
	DestinationChainID uint64         `json:"destinationChainId"`
	DestinationToken   common.Address `json:"destinationToken"`
	Sender             common.Address `json:"sender"`
	Recipient          common.Address `json:"recipient"`
	Slippage           float64        `json:"slippage,omitempty"`
}

func (r *PlanRequest) Validate() error {
	if len(r.Sources) == 0 {
		return fmt.Errorf("no sweep sources")
	}
	if r.DestinationChainID == 0 {
		return fmt.Errorf("missing destination chain")
	}
	return nil
}

// ChainSweepSource is the set of tokens being liquidated on one chain along
// with the token they are swapped into before bridging.
type ChainSweepSource struct {
	ChainID          uint64         `json:"chainId"`
	Tokens           []SweepToken   `json:"tokens"`
	SwapOutputToken  common.Address `json:"swapOutputToken"`
	SwapOutputAmount *big.Int       `json:"swapOutputAmount"`
	ValueUSD         float64        `json:"valueUsd"`
}

// PlannedBridge is one bridge leg of a plan. Lower priority values execute
// first.
type PlannedBridge struct {
	SourceChainID      uint64         `json:"sourceChainId"`
	DestinationChainID uint64         `json:"destinationChainId"`
	Token              common.Address `json:"token"`
	Amount             *big.Int       `json:"amount"`
	Quote              *bridge.Quote  `json:"quote"`
	Priority           int            `json:"priority"`
	ValueUSD           float64        `json:"valueUsd"`
}

type Plan struct {
	ID                     string             `json:"id"`
	UserID                 string             `json:"userId"`
	DestinationChainID     uint64             `json:"destinationChainId"`
	DestinationToken       common.Address     `json:"destinationToken"`
	Recipient              common.Address     `json:"recipient"`
	Sources                []ChainSweepSource `json:"sources"`
	Bridges                []PlannedBridge    `json:"bridges"`
	TotalInputValueUSD     float64            `json:"totalInputValueUsd"`
	TotalFeesUSD           float64            `json:"totalFeesUsd"`
	ExpectedOutputValueUSD float64            `json:"expectedOutputValueUsd"`
	EstimatedTotalTime     time.Duration      `json:"estimatedTotalTime"`
	CreatedAt              time.Time          `json:"createdAt"`
	ExpiresAt              time.Time          `json:"expiresAt"`
}

type CostAnalysis struct {
	TotalInputValueUSD     float64 `json:"totalInputValueUsd"`
	SwapFeesUSD            float64 `json:"swapFeesUsd"`
	BridgeFeesUSD          float64 `json:"bridgeFeesUsd"`
	GasFeesUSD             float64 `json:"gasFeesUsd"`
	TotalFeesUSD           float64 `json:"totalFeesUsd"`
	ExpectedOutputValueUSD float64 `json:"expectedOutputValueUsd"`
	FeePercentage          float64 `json:"feePercentage"`
}

type RouteFinder interface {
	FindBestRoute(ctx context.Context, req *bridge.QuoteRequest) (*bridge.Quote, error)
}

type PlanStore interface {
	StorePlan(plan *Plan) error
	Plan(id string) (*Plan, error)
}

// PlanBuilder turns a multi chain dust inventory into an executable sequence
// of swap and bridge legs towards one destination asset.
type PlanBuilder struct {
	routes     RouteFinder
	store      PlanStore
	tokenStore config.TokenStore
}

func NewPlanBuilder(routes RouteFinder, store PlanStore, tokenStore config.TokenStore) *PlanBuilder {
	return &PlanBuilder{
		routes:     routes,
		store:      store,
		tokenStore: tokenStore,
	}
}

// BuildPlan prices every cross chain leg and fails if any source chain cannot
// be bridged. A partially bridgeable inventory is an error the caller has to
// resolve by dropping sources, not something silently planned around.
func (b *PlanBuilder) BuildPlan(ctx context.Context, req *PlanRequest) (*Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	sources := make([]ChainSweepSource, 0, len(req.Sources))
	totalInputValueUSD := float64(0)
	for _, chainTokens := range req.Sources {
		chainValue := float64(0)
		for _, t := range chainTokens.Tokens {
			chainValue += t.ValueUSD
		}
		totalInputValueUSD += chainValue
		if chainValue < MIN_CHAIN_VALUE_USD {
			log.Debug().Msgf("Skipping chain %d with value %.2f USD", chainTokens.ChainID, chainValue)
			continue
		}

		token, decimals := b.bridgeableToken(chainTokens.ChainID, req.DestinationToken)
		sources = append(sources, ChainSweepSource{
			ChainID:          chainTokens.ChainID,
			Tokens:           chainTokens.Tokens,
			SwapOutputToken:  token,
			SwapOutputAmount: estimateSwapOutput(chainValue, decimals),
			ValueUSD:         chainValue,
		})
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no source chain holds at least %.0f USD", MIN_CHAIN_VALUE_USD)
	}

	bridges := make([]PlannedBridge, 0, len(sources))
	totalFeesUSD := float64(0)
	maxEstimatedTime := time.Duration(0)
	for _, source := range sources {
		// Value already on the destination chain only needs a swap.
		if source.ChainID == req.DestinationChainID {
			continue
		}

		quote, err := b.routes.FindBestRoute(ctx, &bridge.QuoteRequest{
			SourceChainID:      source.ChainID,
			DestinationChainID: req.DestinationChainID,
			SourceToken:        source.SwapOutputToken,
			DestinationToken:   req.DestinationToken,
			Sender:             req.Sender,
			Recipient:          req.Recipient,
			Amount:             source.SwapOutputAmount,
			Slippage:           req.Slippage,
		})
		if err != nil {
			return nil, fmt.Errorf("quoting chain %d: %w", source.ChainID, err)
		}
		if quote == nil {
			return nil, fmt.Errorf("chain %d: %w", source.ChainID, bridge.ErrNoViableRoute)
		}

		bridges = append(bridges, PlannedBridge{
			SourceChainID:      source.ChainID,
			DestinationChainID: req.DestinationChainID,
			Token:              source.SwapOutputToken,
			Amount:             source.SwapOutputAmount,
			Quote:              quote,
			ValueUSD:           source.ValueUSD,
		})

		totalFeesUSD += quote.Fees.TotalUSD
		totalFeesUSD += gasEstimate(source.ChainID)
		if quote.EstimatedTime > maxEstimatedTime {
			maxEstimatedTime = quote.EstimatedTime
		}
	}
	prioritize(bridges)

	// The closing swap on the destination chain costs gas too.
	totalFeesUSD += gasEstimate(req.DestinationChainID)

	grossOutputUSD := float64(0)
	for _, pb := range bridges {
		grossOutputUSD += pb.ValueUSD * (1 - SWAP_FEE_RATE)
	}
	for _, source := range sources {
		if source.ChainID == req.DestinationChainID {
			grossOutputUSD += source.ValueUSD * (1 - SWAP_FEE_RATE)
		}
	}
	expectedOutputValueUSD := grossOutputUSD - totalFeesUSD

	plan := &Plan{
		ID:                     planID(req, now),
		UserID:                 req.UserID,
		DestinationChainID:     req.DestinationChainID,
		DestinationToken:       req.DestinationToken,
		Recipient:              req.Recipient,
		Sources:                sources,
		Bridges:                bridges,
		TotalInputValueUSD:     totalInputValueUSD,
		TotalFeesUSD:           totalFeesUSD,
		ExpectedOutputValueUSD: expectedOutputValueUSD,
		EstimatedTotalTime:     maxEstimatedTime + TIME_BUFFER,
		CreatedAt:              now,
		ExpiresAt:              now.Add(bridge.QuoteTTL),
	}
	if b.store != nil {
		if err := b.store.StorePlan(plan); err != nil {
			log.Warn().Msgf("Failed to store plan %s: %s", plan.ID, err)
		}
	}

	return plan, nil
}

func (b *PlanBuilder) Plan(id string) (*Plan, error) {
	if b.store == nil {
		return nil, fmt.Errorf("no plan store configured")
	}
	return b.store.Plan(id)
}

// AnalyzeCosts breaks a plan's fee load down by category.
func (b *PlanBuilder) AnalyzeCosts(plan *Plan) *CostAnalysis {
	swapFeesUSD := plan.TotalInputValueUSD * SWAP_FEE_RATE
	bridgeFeesUSD := float64(0)
	for _, pb := range plan.Bridges {
		bridgeFeesUSD += pb.Quote.Fees.TotalUSD
	}
	gasFeesUSD := float64(0)
	for _, source := range plan.Sources {
		gasFeesUSD += gasEstimate(source.ChainID)
	}

	totalFeesUSD := swapFeesUSD + bridgeFeesUSD + gasFeesUSD
	feePercentage := float64(0)
	if plan.TotalInputValueUSD > 0 {
		feePercentage = totalFeesUSD / plan.TotalInputValueUSD * 100
	}
	return &CostAnalysis{
		TotalInputValueUSD:     plan.TotalInputValueUSD,
		SwapFeesUSD:            swapFeesUSD,
		BridgeFeesUSD:          bridgeFeesUSD,
		GasFeesUSD:             gasFeesUSD,
		TotalFeesUSD:           totalFeesUSD,
		ExpectedOutputValueUSD: plan.ExpectedOutputValueUSD,
		FeePercentage:          feePercentage,
	}
}

func (b *PlanBuilder) bridgeableToken(chainID uint64, destinationToken common.Address) (common.Address, uint8) {
	if c, err := b.tokenStore.ConfigBySymbol(chainID, "USDC"); err == nil {
		return c.Address, c.Decimals
	}
	if c, err := b.tokenStore.ConfigBySymbol(chainID, "WETH"); err == nil {
		return c.Address, c.Decimals
	}
	return destinationToken, 6
}

// prioritize orders legs so the largest value bridges first, keeping the plan
// front loaded if a later leg fails.
func prioritize(bridges []PlannedBridge) {
	slices.SortStableFunc(bridges, func(a, b PlannedBridge) int {
		switch {
		case a.ValueUSD > b.ValueUSD:
			return -1
		case a.ValueUSD < b.ValueUSD:
			return 1
		default:
			return 0
		}
	})
	for i := range bridges {
		bridges[i].Priority = i
	}
}

func estimateSwapOutput(valueUSD float64, decimals uint8) *big.Int {
	output := valueUSD * (1 - SWAP_FEE_RATE)
	scaled := new(big.Float).Mul(
		big.NewFloat(output),
		new(big.Float).SetFloat64(math.Pow10(int(decimals))),
	)
	amount, _ := scaled.Int(nil)
	return amount
}

func gasEstimate(chainID uint64) float64 {
	if estimate, ok := GasEstimatesUSD[chainID]; ok {
		return estimate
	}
	return 1
}

func planID(req *PlanRequest, now time.Time) string {
	payload := []byte(fmt.Sprintf("%s-%d-%s-%d", req.UserID, req.DestinationChainID, req.Recipient.Hex(), now.UnixNano()))
	return fmt.Sprintf("plan-%d-%x", now.UnixMilli(), crypto.Keccak256(payload)[:4])
}
