package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sweeplabs/sweep-bridging/bridge"
)

type TransactionBuilder interface {
	BuildTransaction(ctx context.Context, quoteID string) (*bridge.BridgeTransaction, error)
}

type TransactionBody struct {
	QuoteId string `json:"quoteId"`
}

type TransactionsHandler struct {
	builder TransactionBuilder
}

func NewTransactionsHandler(builder TransactionBuilder) *TransactionsHandler {
	return &TransactionsHandler{
		builder: builder,
	}
}

// HandleBuild turns a previously issued quote into a submittable transaction
// descriptor
func (h *TransactionsHandler) HandleBuild(w http.ResponseWriter, r *http.Request) {
	b := &TransactionBody{}
	d := json.NewDecoder(r.Body)
	if err := d.Decode(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	if b.QuoteId == "" {
		JSONError(w, fmt.Errorf("missing field 'quoteId'"), http.StatusBadRequest)
		return
	}

	tx, err := h.builder.BuildTransaction(r.Context(), b.QuoteId)
	if err != nil {
		switch {
		case errors.Is(err, bridge.ErrQuoteNotFound):
			JSONError(w, err, http.StatusNotFound)
		case errors.Is(err, bridge.ErrQuoteExpired):
			JSONError(w, err, http.StatusGone)
		default:
			JSONError(w, err, http.StatusInternalServerError)
		}
		return
	}

	JSONResponse(w, tx, http.StatusCreated)
}
