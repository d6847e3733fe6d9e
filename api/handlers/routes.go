package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sweeplabs/sweep-bridging/bridge"
)

type RouteFinder interface {
	GetRoutes(ctx context.Context, req *bridge.QuoteRequest) ([]*bridge.Quote, error)
	FindBestRoute(ctx context.Context, req *bridge.QuoteRequest) (*bridge.Quote, error)
}

type RouteBody struct {
	SourceChainId      uint64         `json:"sourceChainId"`
	DestinationChainId uint64         `json:"destinationChainId"`
	SourceToken        string         `json:"sourceToken"`
	DestinationToken   string         `json:"destinationToken"`
	Sender             string         `json:"sender"`
	Recipient          string         `json:"recipient"`
	Amount             *bridge.BigInt `json:"amount"`
	Slippage           float64        `json:"slippage,omitempty"`
	Priority           string         `json:"priority,omitempty"`
	ExcludeProviders   []string       `json:"excludeProviders,omitempty"`
	Force              bool           `json:"force,omitempty"`
}

type RoutesHandler struct {
	routes RouteFinder
}

func NewRoutesHandler(routes RouteFinder) *RoutesHandler {
	return &RoutesHandler{
		routes: routes,
	}
}

// HandleRoutes returns every viable route for a transfer ranked by the
// requested priority
func (h *RoutesHandler) HandleRoutes(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	quotes, err := h.routes.GetRoutes(r.Context(), req)
	if err != nil {
		if errors.Is(err, bridge.ErrNoViableRoute) {
			JSONError(w, err, http.StatusNotFound)
			return
		}

		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, quotes, http.StatusOK)
}

// HandleBestRoute returns the single top ranked route or 404 when no provider
// can serve the transfer
func (h *RoutesHandler) HandleBestRoute(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	quote, err := h.routes.FindBestRoute(r.Context(), req)
	if err != nil {
		if errors.Is(err, bridge.ErrNoViableRoute) {
			JSONError(w, err, http.StatusNotFound)
			return
		}

		JSONError(w, err, http.StatusInternalServerError)
		return
	}
	if quote == nil {
		JSONError(w, bridge.ErrNoViableRoute, http.StatusNotFound)
		return
	}

	JSONResponse(w, quote, http.StatusOK)
}

func (h *RoutesHandler) decode(r *http.Request) (*bridge.QuoteRequest, error) {
	b := &RouteBody{}
	d := json.NewDecoder(r.Body)
	if err := d.Decode(b); err != nil {
		return nil, err
	}

	if b.Amount == nil {
		return nil, errors.New("missing field 'amount'")
	}
	if b.SourceToken == "" {
		return nil, errors.New("missing field 'sourceToken'")
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

	excluded := make([]bridge.ProviderName, 0, len(b.ExcludeProviders))
	for _, name := range b.ExcludeProviders {
		excluded = append(excluded, bridge.ProviderName(name))
	}

	req := &bridge.QuoteRequest{
		SourceChainID:      b.SourceChainId,
		DestinationChainID: b.DestinationChainId,
		SourceToken:        common.HexToAddress(b.SourceToken),
		DestinationToken:   common.HexToAddress(b.DestinationToken),
		Sender:             common.HexToAddress(b.Sender),
		Recipient:          common.HexToAddress(b.Recipient),
		Amount:             b.Amount.Int,
		Slippage:           b.Slippage,
		Priority:           bridge.Priority(b.Priority),
		ExcludeProviders:   excluded,
		Force:              b.Force,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}
