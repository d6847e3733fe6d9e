package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/sweeplabs/sweep-bridging/bridge"
	"github.com/sweeplabs/sweep-bridging/store"
	"github.com/sweeplabs/sweep-bridging/sweep"
)

type PlanService interface {
	BuildPlan(ctx context.Context, req *sweep.PlanRequest) (*sweep.Plan, error)
	Plan(id string) (*sweep.Plan, error)
}

type SweepTokenBody struct {
	Address  string         `json:"address"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
	Amount   *bridge.BigInt `json:"amount"`
	ValueUsd float64        `json:"valueUsd"`
}

type SweepSourceBody struct {
	ChainId uint64           `json:"chainId"`
	Tokens  []SweepTokenBody `json:"tokens"`
}

type SweepPlanBody struct {
	UserId             string            `json:"userId"`
	Sources            []SweepSourceBody `json:"sources"`
	DestinationChainId uint64            `json:"destinationChainId"`
	DestinationToken   string            `json:"destinationToken"`
	Sender             string            `json:"sender"`
	Recipient          string            `json:"recipient"`
	Slippage           float64           `json:"slippage,omitempty"`
}

type SweepHandler struct {
	plans PlanService
}

func NewSweepHandler(plans PlanService) *SweepHandler {
	return &SweepHandler{
		plans: plans,
	}
}

// HandleBuildPlan prices a multi chain sweep and returns the full plan, or
// 422 when any source chain cannot be bridged
func (h *SweepHandler) HandleBuildPlan(w http.ResponseWriter, r *http.Request) {
	b := &SweepPlanBody{}
	d := json.NewDecoder(r.Body)
	if err := d.Decode(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	req, err := h.decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	plan, err := h.plans.BuildPlan(r.Context(), req)
	if err != nil {
		if errors.Is(err, bridge.ErrNoViableRoute) {
			JSONError(w, err, http.StatusUnprocessableEntity)
			return
		}
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, plan, http.StatusCreated)
}

// HandlePlan returns a previously built plan by its id
func (h *SweepHandler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planId, ok := vars["planId"]
	if !ok || planId == "" {
		JSONError(w, fmt.Errorf("missing 'planId'"), http.StatusBadRequest)
		return
	}

	plan, err := h.plans.Plan(planId)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			JSONError(w, fmt.Errorf("plan %s not found", planId), http.StatusNotFound)
			return
		}
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, plan, http.StatusOK)
}

func (h *SweepHandler) decode(b *SweepPlanBody) (*sweep.PlanRequest, error) {
	if len(b.Sources) == 0 {
		return nil, errors.New("missing field 'sources'")
	}
	if b.DestinationToken == "" {
		return nil, errors.New("missing field 'destinationToken'")
	}
	if b.Sender == "" {
		return nil, errors.New("missing field 'sender'")
	}
	if b.Recipient == "" {
		b.Recipient = b.Sender
	}

	sources := make([]sweep.ChainTokens, 0, len(b.Sources))
	for _, source := range b.Sources {
		tokens := make([]sweep.SweepToken, 0, len(source.Tokens))
		for _, t := range source.Tokens {
			if t.Amount == nil {
				return nil, fmt.Errorf("missing amount for token %s on chain %d", t.Symbol, source.ChainId)
			}
			tokens = append(tokens, sweep.SweepToken{
				Address:  common.HexToAddress(t.Address),
				Symbol:   t.Symbol,
				Decimals: t.Decimals,
				Amount:   t.Amount.Int,
				ValueUSD: t.ValueUsd,
			})
		}
		sources = append(sources, sweep.ChainTokens{
			ChainID: source.ChainId,
			Tokens:  tokens,
		})
	}

	return &sweep.PlanRequest{
		UserID:             b.UserId,
		Sources:            sources,
		DestinationChainID: b.DestinationChainId,
		DestinationToken:   common.HexToAddress(b.DestinationToken),
		Sender:             common.HexToAddress(b.Sender),
		Recipient:          common.HexToAddress(b.Recipient),
		Slippage:           b.Slippage,
	}, nil
}
